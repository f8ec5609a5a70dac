package repository

import "time"

type Wallet struct {
	ID         string    `gorm:"primaryKey;autoIncrement:false"`
	Address    string    `gorm:"size:42;uniqueIndex;not null"` // EIP-55 checksummed
	KeystoreID string    `gorm:"size:36;index;not null"`
	Name       string    `gorm:"size:255;not null"`
	IsHD       bool      `gorm:"not null"`
	IsSelected bool      `gorm:"not null;index"`
	IsImported bool      `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null"`
}

type Network struct {
	ChainID      string `gorm:"primaryKey;autoIncrement:false;size:78"` // decimal, up to 2^256
	Name         string `gorm:"size:32;not null"`
	DisplayName  string `gorm:"size:255;not null"`
	RPCURL       string `gorm:"column:rpc_url;not null"`
	NativeSymbol string `gorm:"size:16;not null"`
	ExplorerURL  string `gorm:"column:explorer_url"`
	IsPreset     bool   `gorm:"not null"`
	IsSelected   bool   `gorm:"not null;index"`
}

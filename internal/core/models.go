package core

import (
	"time"
)

type SendState string

const (
	StateIdle       SendState = "idle"
	StateBuildingTx SendState = "building_tx"
	StateSigning    SendState = "signing"
	StateSubmitting SendState = "submitting"
	StateConfirmed  SendState = "confirmed"
	StateFailed     SendState = "failed"
)

const (
	CodeOK         = 200
	CodeLocalError = -1
)

const (
	DefaultGasPriceGwei = "1"
	sessionTTL          = 24 * time.Hour
)

// SendResult is the outcome of a send. Code is 200 with the hash in Payload
// on success, the node's status code with an empty Payload when the node
// rejected the request, and -1 with a message for everything else.
type SendResult struct {
	Code    int       `json:"code"`
	Payload string    `json:"payload"`
	State   SendState `json:"state"`
	TxHash  string    `json:"txHash,omitempty"`
}

type NativeTransfer struct {
	To           string
	Amount       string
	Password     string
	GasPriceGwei string
	GasLimit     uint64
}

type TokenTransfer struct {
	To           string
	Contract     string
	Amount       string
	Decimals     int
	Password     string
	GasPriceGwei string
	GasLimit     uint64
}

type WalletRecord struct {
	ID         string    `json:"id"`
	Address    string    `json:"address"`
	KeystoreID string    `json:"keystoreId"`
	Name       string    `json:"name"`
	IsHD       bool      `json:"isHD"`
	IsSelected bool      `json:"isSelected"`
	IsImported bool      `json:"isImported"`
	CreatedAt  time.Time `json:"createdAt"`
}

type TokenQuery struct {
	Contract string
	Decimals int
}

type TokenAmount struct {
	Contract string `json:"contract"`
	Amount   string `json:"amount"`
}

type ReceiveInfo struct {
	Address string `json:"address"`
	Network string `json:"network"`
	QRCode  string `json:"qrCode"` // base64 PNG
}

type TxStatusRecord struct {
	Hash        string `json:"hash"`
	Status      string `json:"status"`
	BlockNumber uint64 `json:"blockNumber,omitempty"`
	GasUsed     uint64 `json:"gasUsed,omitempty"`
	ExplorerURL string `json:"explorerUrl,omitempty"`
}

type AuthMessage struct {
	Password string
}

type KeystoreInfo struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Addresses []string  `json:"addresses"`
	CreatedAt time.Time `json:"createdAt"`
}

package payload

import (
	"ethwallet/internal/core"

	"github.com/jellydator/validation"
)

type AuthRequest struct {
	Password string `json:"password"`
}

func (a AuthRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Password, validation.Required, passwordRule),
	)
}

func (a AuthRequest) ToCoreAuthMessage() core.AuthMessage {
	return core.AuthMessage{
		Password: a.Password,
	}
}

type ImportMnemonicRequest struct {
	Mnemonic string `json:"mnemonic"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (i ImportMnemonicRequest) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Mnemonic, validation.Required),
		validation.Field(&i.Password, validation.Required, passwordRule),
		validation.Field(&i.Name, nameRule),
	)
}

type ImportKeyRequest struct {
	PrivateKey string `json:"privateKey"`
	Password   string `json:"password"`
	Name       string `json:"name"`
}

func (i ImportKeyRequest) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.PrivateKey, validation.Required),
		validation.Field(&i.Password, validation.Required, passwordRule),
		validation.Field(&i.Name, nameRule),
	)
}

// CreateRequest is used both for a new mnemonic wallet and for a new child
// account of the current one.
type CreateRequest struct {
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (c CreateRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Password, validation.Required, passwordRule),
		validation.Field(&c.Name, nameRule),
	)
}

type RenameRequest struct {
	Name string `json:"name"`
}

func (r RenameRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, nameRule),
	)
}

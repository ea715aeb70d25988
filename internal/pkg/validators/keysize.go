package validators

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// KeySizeTag is the struct tag that triggers KeySizeValidation.
const KeySizeTag = "keysize"

// KeySizeValidation validates a symmetric key length in bytes based on the sibling Algorithm field (DES, DESede or AES).
func KeySizeValidation(fl validator.FieldLevel) bool {
	algorithm := fl.Parent().FieldByName("Algorithm").String()
	keySize := fl.Field().Int()

	switch algorithm {
	case "DES":
		return keySize == 8
	case "DESede":
		return keySize == 16 || keySize == 24
	case "AES":
		return keySize == 16 || keySize == 24 || keySize == 32
	default:
		return false
	}
}

// New returns a validator with the custom key size tag registered.
func New() *validator.Validate {
	validate := validator.New()
	if err := validate.RegisterValidation(KeySizeTag, KeySizeValidation); err != nil {
		panic(fmt.Sprintf("failed to register %s validation: %v", KeySizeTag, err))
	}
	return validate
}

package v1

import (
	"errors"
	"fmt"
	"time"

	"rsa_vault_service/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// GenerateKeyRequest is the request body for key pair generation.
type GenerateKeyRequest struct {
	Bits uint32 `json:"bits" validate:"required,keybits"`
}

// Validate checks the request fields.
func (r *GenerateKeyRequest) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("keybits", validators.KeyBitsValidation); err != nil {
		return fmt.Errorf("failed to register validation: %w", err)
	}

	err := validate.Struct(r)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// KeyMetaResponse describes one stored key half.
type KeyMetaResponse struct {
	ID              string    `json:"id"`
	KeyPairID       string    `json:"keyPairId"`
	Type            string    `json:"type"`
	Bits            uint32    `json:"bits"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
	UserID          string    `json:"userId"`
}

// KeyMaterialResponse carries the serialized key blob.
type KeyMaterialResponse struct {
	ID       string `json:"id"`
	Material string `json:"material"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse is the uniform confirmation body.
type InfoResponse struct {
	Message string `json:"message"`
}

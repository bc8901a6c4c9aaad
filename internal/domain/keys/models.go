package keys

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// KeyMeta describes one stored key half (public or private) of a generated pair.
type KeyMeta struct {
	ID              string    `validate:"required,uuid"`
	KeyPairID       string    `validate:"required,uuid"`
	Type            string    `validate:"required,oneof=public private"`
	Bits            uint32    `validate:"required,oneof=512 1024 2048 3072 4096"`
	DateTimeCreated time.Time `validate:"required"`
	UserID          string    `validate:"required"`
}

// Validate checks the KeyMeta fields.
func (m *KeyMeta) Validate() error {
	validate := validator.New()

	err := validate.Struct(m)
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

// KeyRecord pairs the metadata with the serialized key material
// (the base64-JSON blob produced by the key codec).
type KeyRecord struct {
	Meta     KeyMeta
	Material string `validate:"required,base64"`
}

// Validate checks the record and its embedded metadata.
func (r *KeyRecord) Validate() error {
	if err := r.Meta.Validate(); err != nil {
		return err
	}
	if r.Material == "" {
		return fmt.Errorf("validation failed: key material is empty")
	}
	return nil
}

// KeyQuery carries the optional filters for listing key metadata.
type KeyQuery struct {
	Type            string    `validate:"omitempty,oneof=public private"`
	DateTimeCreated time.Time `validate:"omitempty"`

	Limit  int `validate:"omitempty,gte=0"`
	Offset int `validate:"omitempty,gte=0"`

	SortBy    string `validate:"omitempty,oneof=id type bits date_time_created"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewKeyQuery returns a query with default pagination.
func NewKeyQuery() *KeyQuery {
	return &KeyQuery{
		Limit:  10,
		Offset: 0,
	}
}

// Validate checks the query parameters.
func (q *KeyQuery) Validate() error {
	validate := validator.New()
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("invalid query parameters: %w", err)
	}
	return nil
}

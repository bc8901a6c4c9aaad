package models

import (
	"time"

	"rsa_vault_service/internal/domain/keys"
)

// KeyModel is the GORM database model for stored key halves
// (infrastructure concern). Material is the base64 key blob.
type KeyModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	KeyPairID       string    `gorm:"not null;index;type:uuid"`
	Type            string    `gorm:"type:varchar(20)"`
	Bits            uint32    `gorm:"type:integer"`
	Material        string    `gorm:"not null;type:text"`
	DateTimeCreated time.Time `gorm:"not null"`
	UserID          string    `gorm:"not null;index;type:varchar(255)"`
}

// TableName specifies the table name for GORM
func (KeyModel) TableName() string {
	return "rsa_keys"
}

// ToDomain converts GORM model to domain entity
func (m *KeyModel) ToDomain() *keys.KeyRecord {
	return &keys.KeyRecord{
		Meta: keys.KeyMeta{
			ID:              m.ID,
			KeyPairID:       m.KeyPairID,
			Type:            m.Type,
			Bits:            m.Bits,
			DateTimeCreated: m.DateTimeCreated,
			UserID:          m.UserID,
		},
		Material: m.Material,
	}
}

// FromDomain converts domain entity to GORM model
func (m *KeyModel) FromDomain(r *keys.KeyRecord) {
	m.ID = r.Meta.ID
	m.KeyPairID = r.Meta.KeyPairID
	m.Type = r.Meta.Type
	m.Bits = r.Meta.Bits
	m.Material = r.Material
	m.DateTimeCreated = r.Meta.DateTimeCreated
	m.UserID = r.Meta.UserID
}

package keys

import (
	"context"
)

// KeyVaultService defines the application-level operations over generated
// key pairs: creation through the RSA engine plus metadata management.
type KeyVaultService interface {
	// GenerateKeyPair generates a key pair of the given modulus size,
	// serializes both halves and persists them. It returns the metadata of
	// the two stored records.
	GenerateKeyPair(ctx context.Context, userID string, bits uint32) ([]*KeyMeta, error)

	// List retrieves key metadata, honoring the query filter when set.
	List(ctx context.Context, query *KeyQuery) ([]*KeyMeta, error)

	// GetByID retrieves the metadata of a single stored key.
	GetByID(ctx context.Context, keyID string) (*KeyMeta, error)

	// DownloadByID retrieves the serialized key material blob.
	DownloadByID(ctx context.Context, keyID string) (string, error)

	// DeleteByID deletes a stored key and its metadata.
	DeleteByID(ctx context.Context, keyID string) error
}

// KeyRepository defines the persistence operations for key records.
type KeyRepository interface {
	Create(ctx context.Context, record *KeyRecord) error
	List(ctx context.Context, query *KeyQuery) ([]*KeyMeta, error)
	GetByID(ctx context.Context, keyID string) (*KeyMeta, error)
	GetMaterialByID(ctx context.Context, keyID string) (string, error)
	DeleteByID(ctx context.Context, keyID string) error
}

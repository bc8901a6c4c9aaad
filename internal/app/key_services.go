package app

import (
	"context"
	"fmt"
	"time"

	"rsa_vault_service/internal/domain/keys"
	rsaDomain "rsa_vault_service/internal/domain/rsa"
	"rsa_vault_service/internal/infrastructure/cryptography"
	"rsa_vault_service/internal/pkg/logger"

	"github.com/google/uuid"
)

// keyVaultService implements the keys.KeyVaultService interface: it drives
// the RSA engine and persists the serialized halves of each generated pair.
type keyVaultService struct {
	keyRepo      keys.KeyRepository
	rsaProcessor rsaDomain.Processor
	logger       logger.Logger
}

// NewKeyVaultService creates a new keyVaultService instance
func NewKeyVaultService(
	keyRepo keys.KeyRepository,
	rsaProcessor rsaDomain.Processor,
	logger logger.Logger,
) (keys.KeyVaultService, error) {
	return &keyVaultService{
		keyRepo:      keyRepo,
		rsaProcessor: rsaProcessor,
		logger:       logger,
	}, nil
}

// GenerateKeyPair generates an RSA key pair, serializes both halves with
// the key codec and stores them under a shared pair id.
func (s *keyVaultService) GenerateKeyPair(ctx context.Context, userID string, bits uint32) ([]*keys.KeyMeta, error) {
	privateKey, publicKey, err := s.rsaProcessor.GenerateKeys(int(bits))
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	privateBlob, err := cryptography.EncodePrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	publicBlob, err := cryptography.EncodePublicKey(publicKey)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	keyPairID := uuid.New().String()
	now := time.Now().UTC()

	records := []*keys.KeyRecord{
		{
			Meta: keys.KeyMeta{
				ID:              uuid.New().String(),
				KeyPairID:       keyPairID,
				Type:            rsaDomain.KeyTypePrivate,
				Bits:            bits,
				DateTimeCreated: now,
				UserID:          userID,
			},
			Material: privateBlob,
		},
		{
			Meta: keys.KeyMeta{
				ID:              uuid.New().String(),
				KeyPairID:       keyPairID,
				Type:            rsaDomain.KeyTypePublic,
				Bits:            bits,
				DateTimeCreated: now,
				UserID:          userID,
			},
			Material: publicBlob,
		},
	}

	keyMetas := make([]*keys.KeyMeta, 0, len(records))
	for _, record := range records {
		if err := s.keyRepo.Create(ctx, record); err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		meta := record.Meta
		keyMetas = append(keyMetas, &meta)
	}

	s.logger.Info("Stored key pair ", keyPairID)
	return keyMetas, nil
}

// List retrieves key metadata, honoring the query filter when set.
func (s *keyVaultService) List(ctx context.Context, query *keys.KeyQuery) ([]*keys.KeyMeta, error) {
	keyMetas, err := s.keyRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return keyMetas, nil
}

// GetByID retrieves the metadata of a single stored key.
func (s *keyVaultService) GetByID(ctx context.Context, keyID string) (*keys.KeyMeta, error) {
	keyMeta, err := s.keyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return keyMeta, nil
}

// DownloadByID retrieves the serialized key material blob.
func (s *keyVaultService) DownloadByID(ctx context.Context, keyID string) (string, error) {
	material, err := s.keyRepo.GetMaterialByID(ctx, keyID)
	if err != nil {
		return "", fmt.Errorf("%w", err)
	}
	return material, nil
}

// DeleteByID deletes a stored key and its metadata.
func (s *keyVaultService) DeleteByID(ctx context.Context, keyID string) error {
	if err := s.keyRepo.DeleteByID(ctx, keyID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

package v1

import (
	"context"

	"rsa_vault_service/internal/domain/keys"

	"github.com/stretchr/testify/mock"
)

// MockKeyVaultService is a testify mock for the keys.KeyVaultService interface.
type MockKeyVaultService struct {
	mock.Mock
}

// GenerateKeyPair mocks KeyVaultService.GenerateKeyPair
func (m *MockKeyVaultService) GenerateKeyPair(ctx context.Context, userID string, bits uint32) ([]*keys.KeyMeta, error) {
	args := m.Called(ctx, userID, bits)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.KeyMeta), args.Error(1)
}

// List mocks KeyVaultService.List
func (m *MockKeyVaultService) List(ctx context.Context, query *keys.KeyQuery) ([]*keys.KeyMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.KeyMeta), args.Error(1)
}

// GetByID mocks KeyVaultService.GetByID
func (m *MockKeyVaultService) GetByID(ctx context.Context, keyID string) (*keys.KeyMeta, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyMeta), args.Error(1)
}

// DownloadByID mocks KeyVaultService.DownloadByID
func (m *MockKeyVaultService) DownloadByID(ctx context.Context, keyID string) (string, error) {
	args := m.Called(ctx, keyID)
	return args.String(0), args.Error(1)
}

// DeleteByID mocks KeyVaultService.DeleteByID
func (m *MockKeyVaultService) DeleteByID(ctx context.Context, keyID string) error {
	args := m.Called(ctx, keyID)
	return args.Error(0)
}

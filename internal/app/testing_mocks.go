package app

import (
	"context"

	"rsa_vault_service/internal/domain/keys"

	"github.com/stretchr/testify/mock"
)

// MockKeyRepository is a testify mock for the keys.KeyRepository interface.
type MockKeyRepository struct {
	mock.Mock
}

// Create mocks KeyRepository.Create
func (m *MockKeyRepository) Create(ctx context.Context, record *keys.KeyRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// List mocks KeyRepository.List
func (m *MockKeyRepository) List(ctx context.Context, query *keys.KeyQuery) ([]*keys.KeyMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.KeyMeta), args.Error(1)
}

// GetByID mocks KeyRepository.GetByID
func (m *MockKeyRepository) GetByID(ctx context.Context, keyID string) (*keys.KeyMeta, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyMeta), args.Error(1)
}

// GetMaterialByID mocks KeyRepository.GetMaterialByID
func (m *MockKeyRepository) GetMaterialByID(ctx context.Context, keyID string) (string, error) {
	args := m.Called(ctx, keyID)
	return args.String(0), args.Error(1)
}

// DeleteByID mocks KeyRepository.DeleteByID
func (m *MockKeyRepository) DeleteByID(ctx context.Context, keyID string) error {
	args := m.Called(ctx, keyID)
	return args.Error(0)
}

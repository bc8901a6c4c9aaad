//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"rsa_vault_service/internal/domain/keys"
	rsaDomain "rsa_vault_service/internal/domain/rsa"
	"rsa_vault_service/internal/pkg/config"
	"rsa_vault_service/internal/infrastructure/persistence/models"
	"rsa_vault_service/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupKeyRepository(t *testing.T) keys.KeyRepository {
	t.Helper()

	log := testutil.SetupTestLogger(t)

	db, err := NewDBConnection(config.DatabaseSettings{
		Type:   config.SqliteDbType,
		DSN:    ":memory:",
		DBName: "rsa_vault_test",
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.KeyModel{}))

	repo, err := NewGormKeyRepository(db, log)
	require.NoError(t, err)
	return repo
}

func newTestRecord(keyType string) *keys.KeyRecord {
	return &keys.KeyRecord{
		Meta: keys.KeyMeta{
			ID:              uuid.New().String(),
			KeyPairID:       uuid.New().String(),
			Type:            keyType,
			Bits:            1024,
			DateTimeCreated: time.Now().UTC(),
			UserID:          uuid.New().String(),
		},
		Material: "eyJuIjoiMTQzbiIsImUiOiI3biJ9",
	}
}

func TestGormKeyRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("CreateAndGet", func(t *testing.T) {
		repo := setupKeyRepository(t)
		record := newTestRecord(rsaDomain.KeyTypePublic)

		require.NoError(t, repo.Create(ctx, record))

		meta, err := repo.GetByID(ctx, record.Meta.ID)
		require.NoError(t, err)
		assert.Equal(t, record.Meta.ID, meta.ID)
		assert.Equal(t, record.Meta.KeyPairID, meta.KeyPairID)
		assert.Equal(t, rsaDomain.KeyTypePublic, meta.Type)

		material, err := repo.GetMaterialByID(ctx, record.Meta.ID)
		require.NoError(t, err)
		assert.Equal(t, record.Material, material)
	})

	t.Run("CreateRejectsInvalidRecord", func(t *testing.T) {
		repo := setupKeyRepository(t)
		record := newTestRecord("symmetric") // not a valid type
		assert.Error(t, repo.Create(ctx, record))
	})

	t.Run("ListWithTypeFilter", func(t *testing.T) {
		repo := setupKeyRepository(t)
		require.NoError(t, repo.Create(ctx, newTestRecord(rsaDomain.KeyTypePublic)))
		require.NoError(t, repo.Create(ctx, newTestRecord(rsaDomain.KeyTypePrivate)))

		query := keys.NewKeyQuery()
		query.Type = rsaDomain.KeyTypePrivate

		metas, err := repo.List(ctx, query)
		require.NoError(t, err)
		require.Len(t, metas, 1)
		assert.Equal(t, rsaDomain.KeyTypePrivate, metas[0].Type)
	})

	t.Run("DeleteByID", func(t *testing.T) {
		repo := setupKeyRepository(t)
		record := newTestRecord(rsaDomain.KeyTypePublic)
		require.NoError(t, repo.Create(ctx, record))

		require.NoError(t, repo.DeleteByID(ctx, record.Meta.ID))

		_, err := repo.GetByID(ctx, record.Meta.ID)
		assert.Error(t, err)
	})

	t.Run("DeleteMissingKey", func(t *testing.T) {
		repo := setupKeyRepository(t)
		assert.Error(t, repo.DeleteByID(ctx, uuid.New().String()))
	})
}

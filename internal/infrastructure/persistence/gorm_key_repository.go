package persistence

import (
	"context"
	"errors"
	"fmt"

	"rsa_vault_service/internal/domain/keys"
	"rsa_vault_service/internal/infrastructure/persistence/models"
	"rsa_vault_service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormKeyRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormKeyRepository creates a new GORM-based KeyRepository implementation
func NewGormKeyRepository(db *gorm.DB, logger logger.Logger) (keys.KeyRepository, error) {
	return &gormKeyRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormKeyRepository) Create(ctx context.Context, record *keys.KeyRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.KeyModel{}
	model.FromDomain(record)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create key record: %w", err)
	}

	r.logger.Info("Created key record with id ", record.Meta.ID)
	return nil
}

func (r *gormKeyRepository) List(ctx context.Context, query *keys.KeyQuery) ([]*keys.KeyMeta, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.KeyModel
	dbQuery := r.db.WithContext(ctx).Model(&models.KeyModel{})

	if query.Type != "" {
		dbQuery = dbQuery.Where("type = ?", query.Type)
	}
	if !query.DateTimeCreated.IsZero() {
		dbQuery = dbQuery.Where("date_time_created >= ?", query.DateTimeCreated)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch key metadata: %w", err)
	}

	domainList := make([]*keys.KeyMeta, len(modelList))
	for i, model := range modelList {
		record := model.ToDomain()
		domainList[i] = &record.Meta
	}

	return domainList, nil
}

func (r *gormKeyRepository) GetByID(ctx context.Context, keyID string) (*keys.KeyMeta, error) {
	model, err := r.fetch(ctx, keyID)
	if err != nil {
		return nil, err
	}
	record := model.ToDomain()
	return &record.Meta, nil
}

func (r *gormKeyRepository) GetMaterialByID(ctx context.Context, keyID string) (string, error) {
	model, err := r.fetch(ctx, keyID)
	if err != nil {
		return "", err
	}
	return model.Material, nil
}

func (r *gormKeyRepository) DeleteByID(ctx context.Context, keyID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", keyID).Delete(&models.KeyModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete key record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("key with ID %s not found", keyID)
	}

	r.logger.Info("Deleted key record with id ", keyID)
	return nil
}

func (r *gormKeyRepository) fetch(ctx context.Context, keyID string) (*models.KeyModel, error) {
	var model models.KeyModel
	if err := r.db.WithContext(ctx).Where("id = ?", keyID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("key with ID %s not found", keyID)
		}
		return nil, fmt.Errorf("failed to fetch key record: %w", err)
	}
	return &model, nil
}

package repositories

import (
	"context"
	"fmt"

	"core-banking-statements/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// clientRepository implements ClientRepositoryInterface
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) ClientRepositoryInterface {
	return &clientRepository{
		db: db,
	}
}

func (r *clientRepository) Create(ctx context.Context, client *models.Client) error {
	return mapWriteError(r.db.WithContext(ctx).Create(client).Error, "client", "client_no", "create")
}

// GetByIDs loads clients keyed by id. Missing ids are absent from the map.
func (r *clientRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Client, error) {
	result := make(map[uuid.UUID]*models.Client, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var clients []*models.Client
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("failed to get clients: %w", err)
	}
	for _, client := range clients {
		result[client.ID] = client
	}
	return result, nil
}

func (r *clientRepository) AddIdentifier(ctx context.Context, identifier *models.AccountIdentifier) error {
	return mapWriteError(r.db.WithContext(ctx).Create(identifier).Error, "account identifier", "identifier_type", "create")
}

// GetIdentifiers returns the identifier map of every account that has one.
func (r *clientRepository) GetIdentifiers(ctx context.Context, accountIDs []uuid.UUID) (map[uuid.UUID]models.AccountIdentifiers, error) {
	result := make(map[uuid.UUID]models.AccountIdentifiers, len(accountIDs))
	if len(accountIDs) == 0 {
		return result, nil
	}

	var identifiers []models.AccountIdentifier
	if err := r.db.WithContext(ctx).Where("account_id IN ?", accountIDs).Find(&identifiers).Error; err != nil {
		return nil, fmt.Errorf("failed to get account identifiers: %w", err)
	}

	for _, identifier := range identifiers {
		ids, ok := result[identifier.AccountID]
		if !ok {
			ids = models.AccountIdentifiers{}
			result[identifier.AccountID] = ids
		}
		ids[identifier.IdentifierType] = identifier.Value
	}
	return result, nil
}

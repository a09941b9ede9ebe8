package postgres

import (
	"context"
	"time"

	"medremind/internal/domain/entity"
	domainerrors "medremind/internal/domain/errors"
	"medremind/internal/domain/repository"
	"medremind/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

// UpsertToken registers a token keyed on the token string. A conflict
// reassigns the token to the registering user and refreshes its metadata.
func (repo *deviceRepository) UpsertToken(ctx context.Context, token *entity.DeviceToken) error {
	tokenM := fromDeviceTokenDomain(token)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{"user_id", "platform", "last_used_at", "updated_at"}),
		}).
		Create(tokenM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert device token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt
	token.UpdatedAt = tokenM.UpdatedAt

	return nil
}

// FindTokensByUser retrieves all tokens registered by a user, newest first.
func (repo *deviceRepository) FindTokensByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceToken, error) {
	var tokenModels []*model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find device tokens by user")
	}

	tokens := make([]*entity.DeviceToken, 0, len(tokenModels))
	for _, tokenM := range tokenModels {
		tokens = append(tokens, toDeviceTokenDomain(tokenM))
	}

	return tokens, nil
}

// DeleteToken removes a single token.
func (repo *deviceRepository) DeleteToken(ctx context.Context, token string) error {
	result := repo.db.WithContext(ctx).
		Where("token = ?", token).
		Delete(&model.DeviceTokenModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceTokenNotFound
	}

	return nil
}

// DeleteTokens removes every listed token. Absent tokens are not an error: a
// token may already have been unregistered by the client mid-send.
func (repo *deviceRepository) DeleteTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("token IN ?", tokens).
		Delete(&model.DeviceTokenModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete device tokens")
	}

	return nil
}

// --- Mapper Functions ---

func toDeviceTokenDomain(data *model.DeviceTokenModel) *entity.DeviceToken {
	if data == nil {
		return nil
	}

	return &entity.DeviceToken{
		ID:         data.ID,
		UserID:     data.UserID,
		Token:      data.Token,
		Platform:   data.Platform,
		LastUsedAt: data.LastUsedAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromDeviceTokenDomain(data *entity.DeviceToken) *model.DeviceTokenModel {
	if data == nil {
		return nil
	}

	lastUsedAt := data.LastUsedAt
	if lastUsedAt.IsZero() {
		lastUsedAt = time.Now()
	}

	return &model.DeviceTokenModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Token:      data.Token,
		Platform:   data.Platform,
		LastUsedAt: lastUsedAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

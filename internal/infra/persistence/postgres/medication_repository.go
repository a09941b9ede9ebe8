package postgres

import (
	"context"

	"medremind/internal/domain/entity"
	"medremind/internal/domain/repository"
	"medremind/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type medicationRepository struct {
	db *gorm.DB
}

// NewMedicationRepository is the constructor for medicationRepository.
func NewMedicationRepository(db *gorm.DB) repository.MedicationRepository {
	return &medicationRepository{db: db}
}

// FindMedicationByID retrieves a medication by its unique ID.
func (repo *medicationRepository) FindMedicationByID(ctx context.Context, id uuid.UUID) (*entity.Medication, error) {
	var medicationM model.MedicationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&medicationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMedicationNotFound
		}

		return nil, errors.Wrap(err, "failed to find medication by ID")
	}

	return toMedicationDomain(&medicationM), nil
}

func toMedicationDomain(data *model.MedicationModel) *entity.Medication {
	if data == nil {
		return nil
	}

	return &entity.Medication{
		ID:           data.ID,
		UserID:       data.UserID,
		Name:         data.Name,
		Dosage:       data.Dosage,
		Instructions: data.Instructions,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

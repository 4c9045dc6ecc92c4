// Package adapters provides repository implementations for the analysis feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"jobmatch_backend/internal/feature/analysis/domain"
	"jobmatch_backend/internal/feature/analysis/domain/entity"
	"jobmatch_backend/internal/feature/analysis/usecase"
)

// historyGorm is a SQL implementation of the HistoryRepository interface.
type historyGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure historyGorm implements HistoryRepository.
var _ usecase.HistoryRepository = (*historyGorm)(nil)

// NewHistoryGorm creates a new instance of historyGorm.
func NewHistoryGorm(db *gorm.DB) *historyGorm {
	return &historyGorm{db: db}
}

// Save persists a new analysis record.
func (r *historyGorm) Save(ctx context.Context, record *entity.AnalysisRecord) error {
	return r.db.WithContext(ctx).Create(AnalysisRecordModelFromEntity(record)).Error
}

// FindByID retrieves an analysis record by its ID.
func (r *historyGorm) FindByID(ctx context.Context, id string) (*entity.AnalysisRecord, error) {
	var model AnalysisRecordModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

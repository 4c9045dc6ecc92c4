package adapters

import (
	"time"

	"jobmatch_backend/internal/feature/analysis/domain/entity"
)

// AnalysisRecordModel is the GORM model for the analysis_records table.
type AnalysisRecordModel struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Position  string    `gorm:"size:2048;not null"`
	Skills    []string  `gorm:"serializer:json"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index;not null"`
}

// TableName returns the table name for GORM.
func (AnalysisRecordModel) TableName() string {
	return "analysis_records"
}

// ToEntity converts the GORM model to a domain entity.
func (m *AnalysisRecordModel) ToEntity() *entity.AnalysisRecord {
	skills := m.Skills
	if skills == nil {
		skills = []string{}
	}
	return &entity.AnalysisRecord{
		ID:        m.ID,
		Position:  m.Position,
		Skills:    skills,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

// AnalysisRecordModelFromEntity converts a domain entity to a GORM model.
func AnalysisRecordModelFromEntity(r *entity.AnalysisRecord) *AnalysisRecordModel {
	return &AnalysisRecordModel{
		ID:        r.ID,
		Position:  r.Position,
		Skills:    r.Skills,
		Message:   r.Message,
		CreatedAt: r.CreatedAt,
	}
}

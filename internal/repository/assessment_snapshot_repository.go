package repository

import (
	"gorm.io/gorm"

	"english_edu_backend/internal/model"
)

type AssessmentSnapshotRepository struct {
	DB *gorm.DB
}

func NewAssessmentSnapshotRepository(db *gorm.DB) *AssessmentSnapshotRepository {
	return &AssessmentSnapshotRepository{DB: db}
}

func (r *AssessmentSnapshotRepository) Create(snapshot *model.AssessmentSnapshot) error {
	return r.DB.Create(snapshot).Error
}

func (r *AssessmentSnapshotRepository) ListByLearner(learnerID uint, limit int) ([]model.AssessmentSnapshot, error) {
	var snapshots []model.AssessmentSnapshot
	err := r.DB.Where("learner_id = ?", learnerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&snapshots).Error
	return snapshots, err
}

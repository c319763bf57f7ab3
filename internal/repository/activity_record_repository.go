package repository

import (
	"time"

	"gorm.io/gorm"

	"english_edu_backend/internal/model"
)

type ActivityRecordRepository struct {
	DB *gorm.DB
}

func NewActivityRecordRepository(db *gorm.DB) *ActivityRecordRepository {
	return &ActivityRecordRepository{DB: db}
}

func (r *ActivityRecordRepository) Create(record *model.ActivityRecord) error {
	return r.DB.Create(record).Error
}

// FindInWindow 取窗口内某学习者的全部活动记录，按发生时间升序
func (r *ActivityRecordRepository) FindInWindow(learnerID uint, from, to time.Time) ([]model.ActivityRecord, error) {
	var records []model.ActivityRecord
	err := r.DB.Where("learner_id = ? AND occurred_at BETWEEN ? AND ?", learnerID, from, to).
		Order("occurred_at ASC").
		Find(&records).Error
	return records, err
}

// RecentGradedAccuracies 某模块最近 limit 条带成绩记录的准确率，从新到旧
func (r *ActivityRecordRepository) RecentGradedAccuracies(learnerID uint, module model.SkillModule, limit int) ([]float64, error) {
	var accuracies []float64
	err := r.DB.Model(&model.ActivityRecord{}).
		Where("learner_id = ? AND module = ? AND accuracy IS NOT NULL", learnerID, module).
		Order("occurred_at DESC").
		Limit(limit).
		Pluck("accuracy", &accuracies).Error
	return accuracies, err
}

func (r *ActivityRecordRepository) ListByLearner(learnerID uint, page, limit int) ([]model.ActivityRecord, int64, error) {
	var records []model.ActivityRecord
	var total int64

	query := r.DB.Model(&model.ActivityRecord{}).Where("learner_id = ?", learnerID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("occurred_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&records).Error
	return records, total, err
}

package repository

import (
	"time"

	"gorm.io/gorm"

	"english_edu_backend/internal/model"
)

type LearnerRepository struct {
	DB *gorm.DB
}

func NewLearnerRepository(db *gorm.DB) *LearnerRepository {
	return &LearnerRepository{DB: db}
}

func (r *LearnerRepository) Create(learner *model.Learner) error {
	return r.DB.Create(learner).Error
}

func (r *LearnerRepository) FindByID(id uint) (*model.Learner, error) {
	var learner model.Learner
	err := r.DB.First(&learner, id).Error
	if err != nil {
		return nil, err
	}
	return &learner, nil
}

func (r *LearnerRepository) Update(learner *model.Learner) error {
	return r.DB.Save(learner).Error
}

func (r *LearnerRepository) List(page, limit int) ([]model.Learner, int64, error) {
	var learners []model.Learner
	var total int64

	if err := r.DB.Model(&model.Learner{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.DB.Order("id ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&learners).Error
	return learners, total, err
}

// TouchLastActive 刷新活跃时间，失败不影响主流程
func (r *LearnerRepository) TouchLastActive(id uint, at time.Time) error {
	return r.DB.Model(&model.Learner{}).
		Where("id = ?", id).
		Update("last_active_at", at).Error
}

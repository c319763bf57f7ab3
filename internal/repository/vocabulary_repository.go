package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"english_edu_backend/internal/model"
)

type VocabularyRepository struct {
	DB *gorm.DB
}

func NewVocabularyRepository(db *gorm.DB) *VocabularyRepository {
	return &VocabularyRepository{DB: db}
}

func (r *VocabularyRepository) Create(entry *model.VocabularyEntry) error {
	return r.DB.Create(entry).Error
}

func (r *VocabularyRepository) FindByID(learnerID, id uint) (*model.VocabularyEntry, error) {
	var entry model.VocabularyEntry
	err := r.DB.Where("learner_id = ?", learnerID).First(&entry, id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *VocabularyRepository) FindByText(learnerID uint, text string) (*model.VocabularyEntry, error) {
	var entry model.VocabularyEntry
	err := r.DB.Where("learner_id = ? AND text = ?", learnerID, text).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// FindByIDForUpdate 在事务内加行锁读取，用来串行化同一个词的并发复习
func (r *VocabularyRepository) FindByIDForUpdate(tx *gorm.DB, learnerID, id uint) (*model.VocabularyEntry, error) {
	var entry model.VocabularyEntry
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("learner_id = ?", learnerID).
		First(&entry, id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *VocabularyRepository) Save(tx *gorm.DB, entry *model.VocabularyEntry) error {
	return tx.Save(entry).Error
}

func (r *VocabularyRepository) ListByLearner(learnerID uint, page, limit int) ([]model.VocabularyEntry, int64, error) {
	var entries []model.VocabularyEntry
	var total int64

	query := r.DB.Model(&model.VocabularyEntry{}).Where("learner_id = ?", learnerID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&entries).Error
	return entries, total, err
}

// ListDue 取候选的待复习条目：从未复习过的新词加上到期的老词，
// 最终顺序由 engine.DueForReview 决定
func (r *VocabularyRepository) ListDue(learnerID uint, now time.Time) ([]model.VocabularyEntry, error) {
	var entries []model.VocabularyEntry
	err := r.DB.Where("learner_id = ? AND (review_count = 0 OR next_review_due_at <= ?)", learnerID, now).
		Find(&entries).Error
	return entries, err
}

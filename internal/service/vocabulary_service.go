package service

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"english_edu_backend/internal/engine"
	"english_edu_backend/internal/model"
	"english_edu_backend/internal/repository"
	"english_edu_backend/internal/util"
	"english_edu_backend/pkg/logger"
	"english_edu_backend/pkg/monitoring"
)

type VocabularyService struct {
	VocabRepo *repository.VocabularyRepository
	DB        *gorm.DB
}

func NewVocabularyService(vocabRepo *repository.VocabularyRepository, db *gorm.DB) *VocabularyService {
	return &VocabularyService{VocabRepo: vocabRepo, DB: db}
}

type AddWordRequest struct {
	Text       string `json:"text" binding:"required"`
	Definition string `json:"definition"`
}

type SubmitReviewRequest struct {
	Outcome string `json:"outcome" binding:"required"`
}

// AddWord 新词加入生词本，掌握等级从 0 开始
func (s *VocabularyService) AddWord(learnerID uint, req *AddWordRequest) (*model.VocabularyEntry, error) {
	if _, err := s.VocabRepo.FindByText(learnerID, req.Text); err == nil {
		return nil, util.ErrWordExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	entry := &model.VocabularyEntry{
		LearnerID:    learnerID,
		Text:         req.Text,
		Definition:   req.Definition,
		MasteryLevel: model.MinMasteryLevel,
	}
	if err := s.VocabRepo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *VocabularyService) GetWord(learnerID, wordID uint) (*model.VocabularyEntry, error) {
	entry, err := s.VocabRepo.FindByID(learnerID, wordID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrWordNotFound
	}
	return entry, err
}

func (s *VocabularyService) ListWords(learnerID uint, page, limit int) ([]model.VocabularyEntry, int64, error) {
	return s.VocabRepo.ListByLearner(learnerID, page, limit)
}

// SubmitReview 提交一次复习结果。行锁串行化同一条目的并发复习，
// 调度计算在事务内完成后一并落库
func (s *VocabularyService) SubmitReview(learnerID, wordID uint, req *SubmitReviewRequest) (*model.VocabularyEntry, error) {
	outcome := model.ReviewOutcome(req.Outcome)
	if !outcome.Valid() {
		return nil, util.ErrInvalidOutcome
	}

	var updated *model.VocabularyEntry
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		entry, err := s.VocabRepo.FindByIDForUpdate(tx, learnerID, wordID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrWordNotFound
			}
			return err
		}

		result := engine.ApplyReview(*entry, outcome, time.Now())
		for _, warning := range result.Warnings {
			logger.Log.Warn("复习调度警告",
				zap.Uint("wordId", wordID),
				zap.String("warning", warning))
		}

		updated = &result.Entry
		return s.VocabRepo.Save(tx, updated)
	})
	if err != nil {
		return nil, err
	}

	monitoring.ReviewSubmissions.WithLabelValues(string(outcome)).Inc()
	return updated, nil
}

// GetReviewQueue 今日复习队列：逾期老词优先，新词靠后
func (s *VocabularyService) GetReviewQueue(learnerID uint, limit int) ([]model.VocabularyEntry, error) {
	now := time.Now()
	entries, err := s.VocabRepo.ListDue(learnerID, now)
	if err != nil {
		return nil, err
	}

	queue := engine.DueForReview(entries, now)
	if limit > 0 && len(queue) > limit {
		queue = queue[:limit]
	}
	return queue, nil
}

package service

import (
	"errors"

	"gorm.io/gorm"

	"english_edu_backend/internal/model"
	"english_edu_backend/internal/repository"
	"english_edu_backend/internal/util"
)

type LearnerService struct {
	LearnerRepo *repository.LearnerRepository
	RecordRepo  *repository.ActivityRecordRepository
}

func NewLearnerService(learnerRepo *repository.LearnerRepository, recordRepo *repository.ActivityRecordRepository) *LearnerService {
	return &LearnerService{LearnerRepo: learnerRepo, RecordRepo: recordRepo}
}

type CreateLearnerRequest struct {
	Name           string `json:"name" binding:"required"`
	NativeLanguage string `json:"nativeLanguage"`
	TargetLevel    string `json:"targetLevel"`
}

type UpdateLearnerRequest struct {
	Name           string `json:"name"`
	NativeLanguage string `json:"nativeLanguage"`
	TargetLevel    string `json:"targetLevel"`
}

func (s *LearnerService) Create(req *CreateLearnerRequest) (*model.Learner, error) {
	learner := &model.Learner{
		Name:           req.Name,
		NativeLanguage: req.NativeLanguage,
	}
	if req.TargetLevel != "" {
		level := model.CEFRLevel(req.TargetLevel)
		if !level.Valid() {
			return nil, errors.New("无效的目标等级")
		}
		learner.TargetLevel = level
	}
	if err := s.LearnerRepo.Create(learner); err != nil {
		return nil, err
	}
	return learner, nil
}

func (s *LearnerService) Get(id uint) (*model.Learner, error) {
	learner, err := s.LearnerRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrLearnerNotFound
	}
	return learner, err
}

func (s *LearnerService) Update(id uint, req *UpdateLearnerRequest) (*model.Learner, error) {
	learner, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		learner.Name = req.Name
	}
	if req.NativeLanguage != "" {
		learner.NativeLanguage = req.NativeLanguage
	}
	if req.TargetLevel != "" {
		level := model.CEFRLevel(req.TargetLevel)
		if !level.Valid() {
			return nil, errors.New("无效的目标等级")
		}
		learner.TargetLevel = level
	}

	if err := s.LearnerRepo.Update(learner); err != nil {
		return nil, err
	}
	return learner, nil
}

func (s *LearnerService) List(page, limit int) ([]model.Learner, int64, error) {
	return s.LearnerRepo.List(page, limit)
}

func (s *LearnerService) ListRecords(learnerID uint, page, limit int) ([]model.ActivityRecord, int64, error) {
	return s.RecordRepo.ListByLearner(learnerID, page, limit)
}

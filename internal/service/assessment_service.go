package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"english_edu_backend/internal/config"
	"english_edu_backend/internal/engine"
	"english_edu_backend/internal/model"
	"english_edu_backend/internal/repository"
	"english_edu_backend/internal/util"
	"english_edu_backend/pkg/logger"
	"english_edu_backend/pkg/monitoring"
)

const proficiencyCachePrefix = "assessment:proficiency:"

// trendHistorySize 走势判定需要最近 3 条与再往前 3 条
const trendHistorySize = 6

type AssessmentService struct {
	RecordRepo   *repository.ActivityRecordRepository
	SnapshotRepo *repository.AssessmentSnapshotRepository
	Redis        *redis.Client
	Cfg          *config.Config
}

func NewAssessmentService(
	recordRepo *repository.ActivityRecordRepository,
	snapshotRepo *repository.AssessmentSnapshotRepository,
	rdb *redis.Client,
	cfg *config.Config,
) *AssessmentService {
	return &AssessmentService{
		RecordRepo:   recordRepo,
		SnapshotRepo: snapshotRepo,
		Redis:        rdb,
		Cfg:          cfg,
	}
}

// GetProficiency 计算四模块综合评估。结果短期缓存，新练习记录写入时失效
func (s *AssessmentService) GetProficiency(ctx context.Context, learnerID uint) (*model.ProficiencyAssessment, error) {
	cacheKey := s.cacheKey(learnerID)
	if cached, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
		var assessment model.ProficiencyAssessment
		if json.Unmarshal([]byte(cached), &assessment) == nil {
			return &assessment, nil
		}
	}

	assessment, err := s.compute(learnerID)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(assessment)
	if err == nil {
		if err := s.Redis.Set(ctx, cacheKey, payload, s.Cfg.Assessment.CacheTTL()).Err(); err != nil {
			logger.Log.Warn("写入评估缓存失败", zap.Error(err))
		}
		snapshot := &model.AssessmentSnapshot{
			LearnerID:    learnerID,
			OverallLevel: assessment.OverallLevel,
			Payload:      string(payload),
		}
		if err := s.SnapshotRepo.Create(snapshot); err != nil {
			logger.Log.Warn("写入评估快照失败", zap.Error(err))
		}
	}

	return assessment, nil
}

func (s *AssessmentService) compute(learnerID uint) (*model.ProficiencyAssessment, error) {
	start := time.Now()
	defer func() {
		monitoring.AssessmentComputations.Inc()
		monitoring.AssessmentDuration.Observe(time.Since(start).Seconds())
	}()

	now := time.Now()
	window := engine.Window{From: now.Add(-s.Cfg.Assessment.Window()), To: now}

	records, err := s.RecordRepo.FindInWindow(learnerID, window.From, window.To)
	if err != nil {
		return nil, err
	}

	byModule := make(map[model.SkillModule][]model.ActivityRecord, len(model.AssessedModules))
	for _, r := range records {
		byModule[r.Module] = append(byModule[r.Module], r)
	}

	assessments := make([]model.ModuleAssessment, len(model.AssessedModules))
	for i, module := range model.AssessedModules {
		agg := engine.Aggregate(byModule[module], window, now)

		history, err := s.RecordRepo.RecentGradedAccuracies(learnerID, module, trendHistorySize)
		if err != nil {
			return nil, err
		}

		assessments[i] = engine.Evaluate(module, agg, history, s.Cfg.Assessment.Table)
	}

	result := engine.Decide(assessments, now)
	return &result, nil
}

// GetModuleAssessment 单模块评估（translation 不参与评估）
func (s *AssessmentService) GetModuleAssessment(learnerID uint, module model.SkillModule) (*model.ModuleAssessment, error) {
	if !module.Assessed() {
		return nil, util.ErrInvalidModule
	}

	now := time.Now()
	window := engine.Window{From: now.Add(-s.Cfg.Assessment.Window()), To: now}

	records, err := s.RecordRepo.FindInWindow(learnerID, window.From, window.To)
	if err != nil {
		return nil, err
	}

	var moduleRecords []model.ActivityRecord
	for _, r := range records {
		if r.Module == module {
			moduleRecords = append(moduleRecords, r)
		}
	}

	agg := engine.Aggregate(moduleRecords, window, now)
	history, err := s.RecordRepo.RecentGradedAccuracies(learnerID, module, trendHistorySize)
	if err != nil {
		return nil, err
	}

	assessment := engine.Evaluate(module, agg, history, s.Cfg.Assessment.Table)
	return &assessment, nil
}

// GetOverview 全窗口的学习概览（含 translation 等全部活动）
func (s *AssessmentService) GetOverview(learnerID uint) (*engine.AggregateResult, error) {
	now := time.Now()
	window := engine.Window{From: now.Add(-s.Cfg.Assessment.Window()), To: now}

	records, err := s.RecordRepo.FindInWindow(learnerID, window.From, window.To)
	if err != nil {
		return nil, err
	}

	result := engine.Aggregate(records, window, now)
	return &result, nil
}

// GetHistory 评估历史快照
func (s *AssessmentService) GetHistory(learnerID uint, limit int) ([]model.AssessmentSnapshot, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.SnapshotRepo.ListByLearner(learnerID, limit)
}

// InvalidateCache 新练习记录落库后让缓存过期
func (s *AssessmentService) InvalidateCache(ctx context.Context, learnerID uint) {
	if err := s.Redis.Del(ctx, s.cacheKey(learnerID)).Err(); err != nil {
		logger.Log.Warn("清除评估缓存失败", zap.Error(err))
	}
}

func (s *AssessmentService) cacheKey(learnerID uint) string {
	return proficiencyCachePrefix + util.FormatUint(learnerID)
}

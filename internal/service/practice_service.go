package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"english_edu_backend/internal/config"
	"english_edu_backend/internal/engine"
	"english_edu_backend/internal/model"
	"english_edu_backend/internal/repository"
	"english_edu_backend/internal/util"
	"english_edu_backend/pkg/logger"
	"english_edu_backend/pkg/monitoring"
)

type PracticeService struct {
	RecordRepo        *repository.ActivityRecordRepository
	LearnerRepo       *repository.LearnerRepository
	StorageService    *StorageService
	AssessmentService *AssessmentService
	Cfg               *config.Config
}

func NewPracticeService(
	recordRepo *repository.ActivityRecordRepository,
	learnerRepo *repository.LearnerRepository,
	storageService *StorageService,
	assessmentService *AssessmentService,
	cfg *config.Config,
) *PracticeService {
	return &PracticeService{
		RecordRepo:        recordRepo,
		LearnerRepo:       learnerRepo,
		StorageService:    storageService,
		AssessmentService: assessmentService,
		Cfg:               cfg,
	}
}

type SubmitRecordRequest struct {
	Module           string   `json:"module" binding:"required"`
	OccurredAt       string   `json:"occurredAt"`
	TimeSpentSeconds int      `json:"timeSpentSeconds"`
	Accuracy         *float64 `json:"accuracy"`
	WordRef          string   `json:"wordRef"`
}

type ScoreSpeakingRequest struct {
	OriginalText string  `json:"originalText" binding:"required"`
	SpokenText   string  `json:"spokenText" binding:"required"`
	Confidence   float64 `json:"confidence"`
	AudioURL     string  `json:"audioUrl"`
}

type ScoreWritingRequest struct {
	Content   string                  `json:"content" binding:"required"`
	WordLimit int                     `json:"wordLimit"`
	Keywords  []string                `json:"keywords"`
	Rubric    []model.RubricCriterion `json:"rubric"` // 省略时用默认评分标准
}

// SubmitRecord 记录一次练习活动并使评估缓存失效
func (s *PracticeService) SubmitRecord(ctx context.Context, learnerID uint, req *SubmitRecordRequest) (*model.ActivityRecord, error) {
	module := model.SkillModule(req.Module)
	if !module.Valid() {
		return nil, util.ErrInvalidModule
	}
	if req.Accuracy != nil && (*req.Accuracy < 0 || *req.Accuracy > 100) {
		return nil, util.ErrInvalidAccuracy
	}
	if req.TimeSpentSeconds < 0 {
		return nil, util.ErrInvalidTimeSpan
	}

	occurredAt := time.Now()
	if req.OccurredAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.OccurredAt)
		if err != nil {
			return nil, fmt.Errorf("无效的时间格式: %v", err)
		}
		occurredAt = parsed
	}

	record := &model.ActivityRecord{
		LearnerID:        learnerID,
		Module:           module,
		OccurredAt:       occurredAt,
		TimeSpentSeconds: req.TimeSpentSeconds,
		Accuracy:         req.Accuracy,
		WordRef:          req.WordRef,
	}

	if err := s.RecordRepo.Create(record); err != nil {
		return nil, err
	}

	if err := s.LearnerRepo.TouchLastActive(learnerID, occurredAt); err != nil {
		logger.Log.Warn("更新学习者活跃时间失败", zap.Error(err))
	}

	s.AssessmentService.InvalidateCache(ctx, learnerID)
	return record, nil
}

// ScoreSpeaking 朗读跟读打分，并自动落一条口语练习记录
func (s *PracticeService) ScoreSpeaking(ctx context.Context, learnerID uint, req *ScoreSpeakingRequest) (*model.ScoreResult, error) {
	result := engine.ScorePronunciation(req.OriginalText, req.SpokenText, req.Confidence)
	monitoring.ScoringRuns.WithLabelValues("speaking").Inc()

	accuracy := result.OverallScore
	record := &model.ActivityRecord{
		LearnerID:  learnerID,
		Module:     model.ModuleSpeaking,
		OccurredAt: time.Now(),
		Accuracy:   &accuracy,
		AudioURL:   req.AudioURL,
	}
	if err := s.RecordRepo.Create(record); err != nil {
		return nil, err
	}

	s.AssessmentService.InvalidateCache(ctx, learnerID)
	return &result, nil
}

// ScoreWriting 作文打分，并自动落一条写作练习记录
func (s *PracticeService) ScoreWriting(ctx context.Context, learnerID uint, req *ScoreWritingRequest) (*model.ScoreResult, error) {
	rubric := req.Rubric
	if len(rubric) == 0 {
		rubric = model.DefaultWritingRubric()
	}
	result := engine.ScoreWriting(req.Content, rubric, req.WordLimit, req.Keywords)
	monitoring.ScoringRuns.WithLabelValues("writing").Inc()

	accuracy := result.OverallScore
	record := &model.ActivityRecord{
		LearnerID:  learnerID,
		Module:     model.ModuleWriting,
		OccurredAt: time.Now(),
		Accuracy:   &accuracy,
	}
	if err := s.RecordRepo.Create(record); err != nil {
		return nil, err
	}

	s.AssessmentService.InvalidateCache(ctx, learnerID)
	return &result, nil
}

// UploadAudio 上传口语录音，返回可访问的 URL 与时长
func (s *PracticeService) UploadAudio(ctx context.Context, file *multipart.FileHeader) (string, float64, error) {
	if file.Size > util.MaxAudioUploadBytes {
		return "", 0, fmt.Errorf("录音文件过大，上限 %dMB", util.MaxAudioUploadBytes>>20)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	isValidExt := false
	for _, e := range util.AllowedAudioExtensions {
		if ext == e {
			isValidExt = true
			break
		}
	}
	if !isValidExt {
		return "", 0, fmt.Errorf("不支持的录音格式: %s", ext)
	}

	// 临时保存到本地进行处理
	tempDir := filepath.Join(s.Cfg.Storage.LocalPath, "temp")
	if err := os.MkdirAll(tempDir, 0755); err != nil {
		return "", 0, err
	}

	tempFilename := fmt.Sprintf("temp_audio_%d%s", time.Now().UnixNano(), ext)
	audioPath := filepath.Join(tempDir, tempFilename)
	defer os.Remove(audioPath) // 上传完成后立即清理

	src, err := file.Open()
	if err != nil {
		return "", 0, err
	}
	defer src.Close()

	// 深度验证 MIME 类型
	mimeType, err := util.ValidateMimeType(src, []string{util.MimeAudio, util.MimeVideo, util.MimeOctetStream})
	if err != nil || !util.IsAudio(mimeType) {
		return "", 0, fmt.Errorf("非法的文件内容，仅允许音频格式")
	}
	// 重置读取指针
	if seeker, ok := src.(io.Seeker); ok {
		seeker.Seek(0, io.SeekStart)
	}

	dst, err := os.Create(audioPath)
	if err != nil {
		return "", 0, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", 0, err
	}

	// 探测录音时长
	var duration float64
	audioInfo, err := util.GetAudioInfo(audioPath)
	if err != nil {
		logger.Log.Warn("探测录音时长失败", zap.Error(err))
	} else {
		duration = audioInfo.Duration
	}

	filename := "recordings/" + time.Now().Format("20060102150405") + "_" + uuid.New().String()[:8] + ext

	url, err := s.StorageService.UploadFile(ctx, filename, audioPath, file.Header.Get("Content-Type"))
	if err != nil {
		return "", 0, err
	}

	return url, duration, nil
}

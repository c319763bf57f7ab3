package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"english_edu_backend/internal/middleware"
	"english_edu_backend/internal/service"
	"english_edu_backend/internal/util"
)

type PracticeController struct {
	Service *service.PracticeService
}

func NewPracticeController(svc *service.PracticeService) *PracticeController {
	return &PracticeController{Service: svc}
}

// @Summary 提交练习记录
// @Tags 练习
// @Accept json
// @Produce json
// @Param learnerId path int true "学习者ID"
// @Param body body service.SubmitRecordRequest true "练习记录"
// @Success 201 {object} util.Response
// @Router /api/learners/{learnerId}/practice/records [post]
func (c *PracticeController) SubmitRecord(ctx *gin.Context) {
	var req service.SubmitRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	record, err := c.Service.SubmitRecord(ctx, middleware.LearnerID(ctx), &req)
	if err != nil {
		if errors.Is(err, util.ErrInvalidModule) ||
			errors.Is(err, util.ErrInvalidAccuracy) ||
			errors.Is(err, util.ErrInvalidTimeSpan) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, record)
}

// @Summary 口语跟读打分
// @Description 对比原文与语音识别结果，返回发音评分与错误定位
// @Tags 练习
// @Accept json
// @Produce json
// @Param learnerId path int true "学习者ID"
// @Param body body service.ScoreSpeakingRequest true "跟读内容"
// @Success 200 {object} util.Response
// @Router /api/learners/{learnerId}/practice/speaking/score [post]
func (c *PracticeController) ScoreSpeaking(ctx *gin.Context) {
	var req service.ScoreSpeakingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.ScoreSpeaking(ctx, middleware.LearnerID(ctx), &req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// @Summary 作文打分
// @Description 按内容、结构、语法、词汇、规范五个维度评分
// @Tags 练习
// @Accept json
// @Produce json
// @Param learnerId path int true "学习者ID"
// @Param body body service.ScoreWritingRequest true "作文内容"
// @Success 200 {object} util.Response
// @Router /api/learners/{learnerId}/practice/writing/score [post]
func (c *PracticeController) ScoreWriting(ctx *gin.Context) {
	var req service.ScoreWritingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.ScoreWriting(ctx, middleware.LearnerID(ctx), &req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// @Summary 上传口语录音
// @Tags 练习
// @Accept multipart/form-data
// @Produce json
// @Param learnerId path int true "学习者ID"
// @Param file formData file true "录音文件"
// @Success 200 {object} util.Response
// @Router /api/learners/{learnerId}/practice/speaking/audio [post]
func (c *PracticeController) UploadAudio(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "缺少录音文件")
		return
	}

	url, duration, err := c.Service.UploadAudio(ctx, file)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, gin.H{
		"url":      url,
		"duration": duration,
	})
}

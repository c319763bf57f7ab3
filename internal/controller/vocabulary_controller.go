package controller

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"english_edu_backend/internal/middleware"
	"english_edu_backend/internal/service"
	"english_edu_backend/internal/util"
)

type VocabularyController struct {
	Service *service.VocabularyService
}

func NewVocabularyController(svc *service.VocabularyService) *VocabularyController {
	return &VocabularyController{Service: svc}
}

// @Summary 添加生词
// @Tags 生词本
// @Accept json
// @Produce json
// @Param learnerId path int true "学习者ID"
// @Param body body service.AddWordRequest true "单词信息"
// @Success 201 {object} util.Response
// @Router /api/learners/{learnerId}/vocabulary [post]
func (c *VocabularyController) AddWord(ctx *gin.Context) {
	var req service.AddWordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	entry, err := c.Service.AddWord(middleware.LearnerID(ctx), &req)
	if err != nil {
		if errors.Is(err, util.ErrWordExists) {
			util.Conflict(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, entry)
}

// @Summary 获取生词列表
// @Tags 生词本
// @Produce json
// @Param learnerId path int true "学习者ID"
// @Param page query int false "页码"
// @Param limit query int false "每页数量"
// @Success 200 {object} util.Response
// @Router /api/learners/{learnerId}/vocabulary [get]
func (c *VocabularyController) ListWords(ctx *gin.Context) {
	page, limit := pagination(ctx)

	entries, total, err := c.Service.ListWords(middleware.LearnerID(ctx), page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  entries,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary 获取生词详情
// @Tags 生词本
// @Produce json
// @Param learnerId path int true "学习者ID"
// @Param id path int true "生词ID"
// @Success 200 {object} util.Response
// @Router /api/learners/{learnerId}/vocabulary/{id} [get]
func (c *VocabularyController) GetWord(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	entry, err := c.Service.GetWord(middleware.LearnerID(ctx), id)
	if err != nil {
		if errors.Is(err, util.ErrWordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, entry)
}

// @Summary 提交复习结果
// @Description 根据复习结果调整掌握等级并计算下次复习时间
// @Tags 生词本
// @Accept json
// @Produce json
// @Param learnerId path int true "学习者ID"
// @Param id path int true "生词ID"
// @Param body body service.SubmitReviewRequest true "复习结果"
// @Success 200 {object} util.Response
// @Router /api/learners/{learnerId}/vocabulary/{id}/review [post]
func (c *VocabularyController) SubmitReview(ctx *gin.Context) {
	var req service.SubmitReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	id := util.MustParseUint(ctx.Param("id"))

	entry, err := c.Service.SubmitReview(middleware.LearnerID(ctx), id, &req)
	if err != nil {
		if errors.Is(err, util.ErrInvalidOutcome) {
			util.BadRequest(ctx, err.Error())
			return
		}
		if errors.Is(err, util.ErrWordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, entry)
}

// @Summary 获取今日复习队列
// @Description 逾期越久排得越前，从未复习的新词排在老词之后
// @Tags 生词本
// @Produce json
// @Param learnerId path int true "学习者ID"
// @Param limit query int false "数量上限"
// @Success 200 {object} util.Response
// @Router /api/learners/{learnerId}/vocabulary/review-queue [get]
func (c *VocabularyController) GetReviewQueue(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "0"))

	queue, err := c.Service.GetReviewQueue(middleware.LearnerID(ctx), limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, queue)
}

package controller

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"english_edu_backend/internal/middleware"
	"english_edu_backend/internal/service"
	"english_edu_backend/internal/util"
)

type LearnerController struct {
	Service *service.LearnerService
}

func NewLearnerController(svc *service.LearnerService) *LearnerController {
	return &LearnerController{Service: svc}
}

// @Summary 创建学习者
// @Tags 学习者
// @Accept json
// @Produce json
// @Param body body service.CreateLearnerRequest true "学习者信息"
// @Success 201 {object} util.Response
// @Router /api/learners [post]
func (c *LearnerController) Create(ctx *gin.Context) {
	var req service.CreateLearnerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	learner, err := c.Service.Create(&req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Created(ctx, learner)
}

// @Summary 获取学习者列表
// @Tags 学习者
// @Produce json
// @Param page query int false "页码"
// @Param limit query int false "每页数量"
// @Success 200 {object} util.Response
// @Router /api/learners [get]
func (c *LearnerController) List(ctx *gin.Context) {
	page, limit := pagination(ctx)

	learners, total, err := c.Service.List(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  learners,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary 获取学习者详情
// @Tags 学习者
// @Produce json
// @Param learnerId path int true "学习者ID"
// @Success 200 {object} util.Response
// @Router /api/learners/{learnerId} [get]
func (c *LearnerController) Get(ctx *gin.Context) {
	learner, err := c.Service.Get(middleware.LearnerID(ctx))
	if err != nil {
		if errors.Is(err, util.ErrLearnerNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, learner)
}

// @Summary 更新学习者信息
// @Tags 学习者
// @Accept json
// @Produce json
// @Param learnerId path int true "学习者ID"
// @Param body body service.UpdateLearnerRequest true "更新内容"
// @Success 200 {object} util.Response
// @Router /api/learners/{learnerId} [put]
func (c *LearnerController) Update(ctx *gin.Context) {
	var req service.UpdateLearnerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	learner, err := c.Service.Update(middleware.LearnerID(ctx), &req)
	if err != nil {
		if errors.Is(err, util.ErrLearnerNotFound) {
			util.NotFound(ctx)
			return
		}
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, learner)
}

// @Summary 获取学习者练习记录
// @Tags 学习者
// @Produce json
// @Param learnerId path int true "学习者ID"
// @Param page query int false "页码"
// @Param limit query int false "每页数量"
// @Success 200 {object} util.Response
// @Router /api/learners/{learnerId}/records [get]
func (c *LearnerController) ListRecords(ctx *gin.Context) {
	page, limit := pagination(ctx)

	records, total, err := c.Service.ListRecords(middleware.LearnerID(ctx), page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  records,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

func pagination(ctx *gin.Context) (int, int) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

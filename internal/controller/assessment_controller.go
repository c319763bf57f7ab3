package controller

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"english_edu_backend/internal/middleware"
	"english_edu_backend/internal/model"
	"english_edu_backend/internal/service"
	"english_edu_backend/internal/util"
)

type AssessmentController struct {
	Service *service.AssessmentService
}

func NewAssessmentController(svc *service.AssessmentService) *AssessmentController {
	return &AssessmentController{Service: svc}
}

// @Summary 获取综合能力评估
// @Description 基于近期练习记录评估四个模块的 CEFR 等级与升级进度
// @Tags 能力评估
// @Produce json
// @Param learnerId path int true "学习者ID"
// @Success 200 {object} util.Response
// @Router /api/learners/{learnerId}/assessment [get]
func (c *AssessmentController) GetProficiency(ctx *gin.Context) {
	assessment, err := c.Service.GetProficiency(ctx, middleware.LearnerID(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, assessment)
}

// @Summary 获取单模块评估
// @Tags 能力评估
// @Produce json
// @Param learnerId path int true "学习者ID"
// @Param module path string true "技能模块" Enums(reading, listening, speaking, writing)
// @Success 200 {object} util.Response
// @Router /api/learners/{learnerId}/assessment/modules/{module} [get]
func (c *AssessmentController) GetModuleAssessment(ctx *gin.Context) {
	module := model.SkillModule(ctx.Param("module"))

	assessment, err := c.Service.GetModuleAssessment(middleware.LearnerID(ctx), module)
	if err != nil {
		if errors.Is(err, util.ErrInvalidModule) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, assessment)
}

// @Summary 获取学习概览
// @Description 评估窗口内的练习量、平均准确率与连续学习天数
// @Tags 能力评估
// @Produce json
// @Param learnerId path int true "学习者ID"
// @Success 200 {object} util.Response
// @Router /api/learners/{learnerId}/assessment/overview [get]
func (c *AssessmentController) GetOverview(ctx *gin.Context) {
	overview, err := c.Service.GetOverview(middleware.LearnerID(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, overview)
}

// @Summary 获取评估历史
// @Tags 能力评估
// @Produce json
// @Param learnerId path int true "学习者ID"
// @Param limit query int false "数量上限"
// @Success 200 {object} util.Response
// @Router /api/learners/{learnerId}/assessment/history [get]
func (c *AssessmentController) GetHistory(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	history, err := c.Service.GetHistory(middleware.LearnerID(ctx), limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, history)
}

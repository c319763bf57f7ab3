package middleware

import (
	"english_edu_backend/internal/repository"
	"english_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const learnerContextKey = "learner_id"

// LearnerMiddleware 解析路径中的学习者 ID 并确认其存在
func LearnerMiddleware(learnerRepo *repository.LearnerRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := util.MustParseUint(c.Param("learnerId"))
		if id == 0 {
			util.BadRequest(c, "无效的学习者ID")
			c.Abort()
			return
		}

		if _, err := learnerRepo.FindByID(id); err != nil {
			util.NotFound(c)
			c.Abort()
			return
		}

		c.Set(learnerContextKey, id)
		c.Next()
	}
}

// LearnerID 从上下文取出已校验的学习者 ID
func LearnerID(c *gin.Context) uint {
	if v, ok := c.Get(learnerContextKey); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

package model

import "time"

// NextLevelRequirement 距下一等级的差距。已达 C2 时两个门槛为空且进度恒为 100
type NextLevelRequirement struct {
	TargetAccuracy  *float64 `json:"targetAccuracy"`
	MinimumAttempts *int     `json:"minimumAttempts"`
	CurrentProgress float64  `json:"currentProgress"` // 0~100
}

// ModuleAssessment 单个技能模块的评估结果，按需重算，核心不落库
type ModuleAssessment struct {
	Module               SkillModule          `json:"module"`
	CurrentLevel         CEFRLevel            `json:"currentLevel"`
	Accuracy             float64              `json:"accuracy"`
	TotalAttempts        int                  `json:"totalAttempts"`
	CorrectAttempts      int                  `json:"correctAttempts"`
	RecentTrend          TrendDirection       `json:"recentTrend"`
	NextLevelRequirement NextLevelRequirement `json:"nextLevelRequirement"`
}

// LevelUpgrade 晋级判定
type LevelUpgrade struct {
	CanUpgrade      bool       `json:"canUpgrade"`
	NextLevel       *CEFRLevel `json:"nextLevel"` // 已是 C2 时为空
	OverallProgress float64    `json:"overallProgress"`
}

// ProficiencyAssessment 四模块综合评估（短板策略：总体等级取四个模块的最低档）
type ProficiencyAssessment struct {
	OverallLevel    CEFRLevel          `json:"overallLevel"`
	Modules         []ModuleAssessment `json:"modules"`
	LevelUpgrade    LevelUpgrade       `json:"levelUpgrade"`
	WeakestModule   SkillModule        `json:"weakestModule"`
	StrongestModule SkillModule        `json:"strongestModule"`
	GeneratedAt     time.Time          `json:"generatedAt"`
}

// AssessmentSnapshot 评估结果的历史快照（派生数据缓存，便于回看变化）
type AssessmentSnapshot struct {
	UUIDBase
	LearnerID    uint      `gorm:"index;type:bigint unsigned" json:"learnerId"`
	OverallLevel CEFRLevel `gorm:"size:4" json:"overallLevel"`
	Payload      string    `gorm:"type:json" json:"payload"`
}

func (AssessmentSnapshot) TableName() string {
	return "assessment_snapshots"
}

package model

import "time"

// ActivityRecord 一次练习活动的原始记录，写入后不再修改
type ActivityRecord struct {
	BaseModel
	LearnerID        uint        `gorm:"index;type:bigint unsigned" json:"learnerId"`
	Module           SkillModule `gorm:"size:20;index" json:"module"`
	OccurredAt       time.Time   `gorm:"index" json:"occurredAt"`
	TimeSpentSeconds int         `gorm:"default:0" json:"timeSpentSeconds"`
	Accuracy         *float64    `json:"accuracy"` // 0~100，未评分的活动为空
	WordRef          string      `gorm:"size:255" json:"wordRef,omitempty"`
	AudioURL         string      `gorm:"size:512" json:"audioUrl,omitempty"`
}

func (ActivityRecord) TableName() string {
	return "activity_records"
}

// Graded 是否带有成绩
func (r ActivityRecord) Graded() bool {
	return r.Accuracy != nil
}

package model

import "time"

// Learner 学习者档案（应用无登录体系，按 ID 直接定位）
type Learner struct {
	BaseModel
	Name           string     `gorm:"size:255;not null" json:"name"`
	NativeLanguage string     `gorm:"size:50;default:zh" json:"nativeLanguage"`
	TargetLevel    CEFRLevel  `gorm:"size:4;default:B2" json:"targetLevel"`
	LastActiveAt   *time.Time `json:"lastActiveAt"`
}

func (Learner) TableName() string {
	return "learners"
}

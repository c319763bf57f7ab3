package model

import "time"

// 单词掌握度范围
const (
	MinMasteryLevel = 0
	MaxMasteryLevel = 5
)

// VocabularyEntry 生词本条目。掌握度状态只由复习状态机（engine 包）推进，
// 存储层负责持久化和同词并发复习的串行化
type VocabularyEntry struct {
	BaseModel
	LearnerID       uint       `gorm:"uniqueIndex:idx_learner_word;type:bigint unsigned" json:"learnerId"`
	Text            string     `gorm:"size:255;uniqueIndex:idx_learner_word" json:"text"`
	Definition      string     `gorm:"type:text" json:"definition,omitempty"`
	MasteryLevel    int        `gorm:"default:0" json:"masteryLevel"` // 0~5
	ReviewCount     int        `gorm:"default:0" json:"reviewCount"`
	CorrectCount    int        `gorm:"default:0" json:"correctCount"`
	LastReviewedAt  *time.Time `json:"lastReviewedAt"`
	NextReviewDueAt *time.Time `gorm:"index" json:"nextReviewDueAt"`
}

func (VocabularyEntry) TableName() string {
	return "vocabulary_entries"
}

// Due 是否到期待复习：从未复习过的词始终待复习
func (e VocabularyEntry) Due(now time.Time) bool {
	if e.ReviewCount == 0 {
		return true
	}
	return e.NextReviewDueAt != nil && !e.NextReviewDueAt.After(now)
}

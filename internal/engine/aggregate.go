package engine

import (
	"time"

	"english_edu_backend/internal/model"
)

// CorrectThreshold 一次带成绩的练习视为"正确"的分数线
const CorrectThreshold = 60.0

// Window 统计时间窗（闭区间）
type Window struct {
	From time.Time
	To   time.Time
}

// Contains 判断时间点是否落在窗口内
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && !t.After(w.To)
}

// AggregateResult 一批活动记录在窗口内的汇总统计
type AggregateResult struct {
	TotalTimeSpent  int                         `json:"totalTimeSpent"` // 秒
	TotalAttempts   int                         `json:"totalAttempts"`
	CorrectAttempts int                         `json:"correctAttempts"`
	AverageAccuracy float64                     `json:"averageAccuracy"`
	StreakDays      int                         `json:"streakDays"`
	CountsByModule  map[model.SkillModule]int   `json:"countsByModule"`
}

// Aggregate 把原始活动记录归并为窗口统计。空输入产出全零结果，永不报错。
// averageAccuracy 只对带成绩的记录求算术平均；streakDays 以 now 所在日历日为起点
// 向前连续扫描，遇到第一个没有记录的日子即停止。
func Aggregate(records []model.ActivityRecord, window Window, now time.Time) AggregateResult {
	result := AggregateResult{
		CountsByModule: make(map[model.SkillModule]int),
	}

	var accuracySum float64
	var gradedCount int
	coveredDays := make(map[string]bool)

	for _, r := range records {
		if !window.Contains(r.OccurredAt) {
			continue
		}

		result.TotalAttempts++
		if r.TimeSpentSeconds > 0 {
			result.TotalTimeSpent += r.TimeSpentSeconds
		}
		result.CountsByModule[r.Module]++
		// 日历日按 now 所在时区归一，避免带其他时区的记录落错天
		coveredDays[r.OccurredAt.In(now.Location()).Format("2006-01-02")] = true

		if r.Graded() {
			accuracySum += *r.Accuracy
			gradedCount++
			if *r.Accuracy >= CorrectThreshold {
				result.CorrectAttempts++
			}
		}
	}

	if gradedCount > 0 {
		result.AverageAccuracy = accuracySum / float64(gradedCount)
	}

	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for coveredDays[day.Format("2006-01-02")] {
		result.StreakDays++
		day = day.AddDate(0, 0, -1)
	}

	return result
}

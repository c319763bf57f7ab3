package engine

import (
	"fmt"
	"sort"
	"time"

	"english_edu_backend/internal/model"
)

// IntervalBand 复习间隔档位
type IntervalBand int

const (
	BandShort IntervalBand = iota
	BandMedium
	BandLong
)

// Interval 给定掌握度和档位的复习间隔。对固定档位随掌握度严格递增，
// 且任一掌握度下 long > medium > short，上限 30 天。
func Interval(level int, band IntervalBand) time.Duration {
	if level < model.MinMasteryLevel {
		level = model.MinMasteryLevel
	}
	if level > model.MaxMasteryLevel {
		level = model.MaxMasteryLevel
	}

	step := level + 1
	var days int
	switch band {
	case BandShort:
		days = step
	case BandMedium:
		days = (3*step + 1) / 2 // ceil(1.5×step)
	case BandLong:
		days = 3 * step
	}
	if days > 30 {
		days = 30
	}
	return time.Duration(days) * 24 * time.Hour
}

// ReviewResult 复习状态机的输出。Warnings 记录被钳制的异常存量数据，非致命。
type ReviewResult struct {
	Entry    model.VocabularyEntry
	Warnings []string
}

// ApplyReview 纯状态转移：输入旧条目和一次复习反馈，产出新条目。
// 间隔按转移后的掌握度计算。持久化以及同词并发复习的串行化由调用方负责。
func ApplyReview(entry model.VocabularyEntry, outcome model.ReviewOutcome, now time.Time) ReviewResult {
	result := ReviewResult{Entry: entry}

	level := entry.MasteryLevel
	if level < model.MinMasteryLevel || level > model.MaxMasteryLevel {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("mastery level %d out of range, clamped", level))
		if level < model.MinMasteryLevel {
			level = model.MinMasteryLevel
		} else {
			level = model.MaxMasteryLevel
		}
	}

	var band IntervalBand
	switch outcome {
	case model.OutcomeUnknown:
		if level > model.MinMasteryLevel {
			level--
		}
		band = BandShort
	case model.OutcomeFamiliar:
		band = BandMedium
	case model.OutcomeKnown:
		if level < model.MaxMasteryLevel {
			level++
		}
		result.Entry.CorrectCount++
		band = BandLong
	default:
		// 非法反馈属于调用方契约被破坏，此处不改动状态只带回警告
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("unknown review outcome %q, entry left unchanged", outcome))
		return result
	}

	due := now.Add(Interval(level, band))
	result.Entry.MasteryLevel = level
	result.Entry.ReviewCount++
	result.Entry.LastReviewedAt = &now
	result.Entry.NextReviewDueAt = &due
	return result
}

// DueForReview 从条目集中选出到期待复习的词并排序：逾期的老词在前
// （逾期越久越靠前），从未复习过的新词排在所有老词之后（按建档先后）。
// 只做筛选排序，不改动任何条目。
func DueForReview(entries []model.VocabularyEntry, now time.Time) []model.VocabularyEntry {
	var reviewed, fresh []model.VocabularyEntry
	for _, e := range entries {
		if !e.Due(now) {
			continue
		}
		if e.ReviewCount == 0 {
			fresh = append(fresh, e)
		} else {
			reviewed = append(reviewed, e)
		}
	}

	sort.SliceStable(reviewed, func(i, j int) bool {
		return reviewed[i].NextReviewDueAt.Before(*reviewed[j].NextReviewDueAt)
	})
	sort.SliceStable(fresh, func(i, j int) bool {
		return fresh[i].CreatedAt.Before(fresh[j].CreatedAt)
	})

	return append(reviewed, fresh...)
}

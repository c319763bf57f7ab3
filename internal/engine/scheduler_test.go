package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"english_edu_backend/internal/model"
)

func TestIntervalMonotonicity(t *testing.T) {
	bands := []IntervalBand{BandShort, BandMedium, BandLong}

	for _, band := range bands {
		prev := time.Duration(0)
		for level := model.MinMasteryLevel; level <= model.MaxMasteryLevel; level++ {
			current := Interval(level, band)
			assert.Greater(t, current, prev, "band %d level %d", band, level)
			assert.LessOrEqual(t, current, 30*24*time.Hour)
			prev = current
		}
	}

	for level := model.MinMasteryLevel; level <= model.MaxMasteryLevel; level++ {
		short := Interval(level, BandShort)
		medium := Interval(level, BandMedium)
		long := Interval(level, BandLong)
		assert.Greater(t, medium, short, "level %d", level)
		assert.Greater(t, long, medium, "level %d", level)
	}
}

func TestApplyReviewScenarioC(t *testing.T) {
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	entry := model.VocabularyEntry{MasteryLevel: 3, ReviewCount: 7, CorrectCount: 4}

	result := ApplyReview(entry, model.OutcomeKnown, now)

	assert.Empty(t, result.Warnings)
	assert.Equal(t, 4, result.Entry.MasteryLevel)
	assert.Equal(t, 8, result.Entry.ReviewCount)
	assert.Equal(t, 5, result.Entry.CorrectCount)
	require.NotNil(t, result.Entry.NextReviewDueAt)
	assert.Equal(t, now.Add(Interval(4, BandLong)), *result.Entry.NextReviewDueAt)
	require.NotNil(t, result.Entry.LastReviewedAt)
	assert.False(t, result.Entry.NextReviewDueAt.Before(*result.Entry.LastReviewedAt))
}

func TestApplyReviewBounds(t *testing.T) {
	now := time.Now()

	for level := model.MinMasteryLevel; level <= model.MaxMasteryLevel; level++ {
		entry := model.VocabularyEntry{MasteryLevel: level}

		known := ApplyReview(entry, model.OutcomeKnown, now)
		assert.LessOrEqual(t, known.Entry.MasteryLevel, model.MaxMasteryLevel)
		assert.LessOrEqual(t, known.Entry.MasteryLevel-level, 1)

		unknown := ApplyReview(entry, model.OutcomeUnknown, now)
		assert.GreaterOrEqual(t, unknown.Entry.MasteryLevel, model.MinMasteryLevel)
		assert.LessOrEqual(t, level-unknown.Entry.MasteryLevel, 1)

		familiar := ApplyReview(entry, model.OutcomeFamiliar, now)
		assert.Equal(t, level, familiar.Entry.MasteryLevel)
		assert.Equal(t, entry.CorrectCount, familiar.Entry.CorrectCount)
	}
}

func TestApplyReviewClampsCorruptedState(t *testing.T) {
	now := time.Now()
	entry := model.VocabularyEntry{MasteryLevel: 9}

	result := ApplyReview(entry, model.OutcomeFamiliar, now)

	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "clamped")
	assert.Equal(t, model.MaxMasteryLevel, result.Entry.MasteryLevel)
}

func TestApplyReviewInvalidOutcome(t *testing.T) {
	now := time.Now()
	entry := model.VocabularyEntry{MasteryLevel: 2, ReviewCount: 3}

	result := ApplyReview(entry, model.ReviewOutcome("perfect"), now)

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, entry, result.Entry)
}

func TestDueForReviewOrdering(t *testing.T) {
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	due := func(hoursAgo int) *time.Time {
		t := now.Add(-time.Duration(hoursAgo) * time.Hour)
		return &t
	}

	entries := []model.VocabularyEntry{
		{Text: "future", ReviewCount: 2, NextReviewDueAt: due(-48)}, // 未到期
		{Text: "slightly", ReviewCount: 1, NextReviewDueAt: due(2)},
		{Text: "fresh-old", ReviewCount: 0},
		{Text: "very-overdue", ReviewCount: 5, NextReviewDueAt: due(100)},
		{Text: "fresh-new", ReviewCount: 0},
	}
	entries[2].CreatedAt = now.AddDate(0, 0, -3)
	entries[4].CreatedAt = now.AddDate(0, 0, -1)

	queue := DueForReview(entries, now)

	require.Len(t, queue, 4)
	assert.Equal(t, "very-overdue", queue[0].Text)
	assert.Equal(t, "slightly", queue[1].Text)
	assert.Equal(t, "fresh-old", queue[2].Text)
	assert.Equal(t, "fresh-new", queue[3].Text)
}

func TestDueForReviewDoesNotMutate(t *testing.T) {
	now := time.Now()
	entries := []model.VocabularyEntry{{Text: "word", ReviewCount: 0, MasteryLevel: 2}}

	_ = DueForReview(entries, now)

	assert.Equal(t, 2, entries[0].MasteryLevel)
	assert.Equal(t, 0, entries[0].ReviewCount)
}

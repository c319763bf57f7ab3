package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"english_edu_backend/internal/model"
)

// scenarioTable 按 A1→C2 单调递增的测试门槛表
func scenarioTable(t *testing.T) model.LevelRequirementTable {
	t.Helper()

	base := map[model.CEFRLevel]model.LevelRequirement{
		model.LevelA1: {Accuracy: 50, MinAttempts: 5},
		model.LevelA2: {Accuracy: 60, MinAttempts: 10},
		model.LevelB1: {Accuracy: 75, MinAttempts: 20},
		model.LevelB2: {Accuracy: 80, MinAttempts: 25},
		model.LevelC1: {Accuracy: 85, MinAttempts: 40},
		model.LevelC2: {Accuracy: 90, MinAttempts: 60},
	}
	table := make(model.LevelRequirementTable)
	for level, req := range base {
		row := make(map[model.SkillModule]model.LevelRequirement)
		for _, m := range model.AssessedModules {
			row[m] = req
		}
		table[level] = row
	}
	require.NoError(t, table.Validate())
	return table
}

func TestEvaluateScenarioA(t *testing.T) {
	agg := AggregateResult{AverageAccuracy: 78, TotalAttempts: 20}

	result := Evaluate(model.ModuleReading, agg, nil, scenarioTable(t))

	assert.Equal(t, model.LevelB1, result.CurrentLevel)
	assert.InDelta(t, 80.0, result.NextLevelRequirement.CurrentProgress, 0.001)
	require.NotNil(t, result.NextLevelRequirement.TargetAccuracy)
	assert.Equal(t, 80.0, *result.NextLevelRequirement.TargetAccuracy)
	require.NotNil(t, result.NextLevelRequirement.MinimumAttempts)
	assert.Equal(t, 25, *result.NextLevelRequirement.MinimumAttempts)
}

func TestEvaluateScenarioEZeroStats(t *testing.T) {
	result := Evaluate(model.ModuleReading, AggregateResult{}, nil, scenarioTable(t))

	assert.Equal(t, model.LevelA1, result.CurrentLevel)
	assert.Zero(t, result.NextLevelRequirement.CurrentProgress)
	assert.Equal(t, model.TrendStable, result.RecentTrend)
}

func TestEvaluateA1IsFloorLevel(t *testing.T) {
	// A1 自身不达标时仍保底 A1
	agg := AggregateResult{AverageAccuracy: 30, TotalAttempts: 2}
	result := Evaluate(model.ModuleWriting, agg, nil, scenarioTable(t))
	assert.Equal(t, model.LevelA1, result.CurrentLevel)
}

func TestEvaluateC2HasNoNextLevel(t *testing.T) {
	agg := AggregateResult{AverageAccuracy: 95, TotalAttempts: 100}
	result := Evaluate(model.ModuleListening, agg, nil, scenarioTable(t))

	assert.Equal(t, model.LevelC2, result.CurrentLevel)
	assert.Nil(t, result.NextLevelRequirement.TargetAccuracy)
	assert.Nil(t, result.NextLevelRequirement.MinimumAttempts)
	assert.Equal(t, 100.0, result.NextLevelRequirement.CurrentProgress)
}

func TestEvaluateStopsAtFirstUnmetLevel(t *testing.T) {
	// 准确率够 B2 但练习量卡在 B1 门槛，扫描应止步于 B1
	agg := AggregateResult{AverageAccuracy: 82, TotalAttempts: 12}
	result := Evaluate(model.ModuleReading, agg, nil, scenarioTable(t))
	assert.Equal(t, model.LevelA2, result.CurrentLevel)
}

func TestEvaluateIdempotent(t *testing.T) {
	agg := AggregateResult{AverageAccuracy: 66, TotalAttempts: 18}
	history := []float64{70, 65, 60, 66, 64, 68}
	table := scenarioTable(t)

	first := Evaluate(model.ModuleSpeaking, agg, history, table)
	second := Evaluate(model.ModuleSpeaking, agg, history, table)
	assert.Equal(t, first, second)
}

func TestEvaluateMonotonicInInputs(t *testing.T) {
	table := scenarioTable(t)
	prevLevel := model.LevelA1

	// 准确率和练习量同时递增时等级不得回退
	for attempts := 0; attempts <= 80; attempts += 5 {
		agg := AggregateResult{
			AverageAccuracy: float64(attempts) + 15,
			TotalAttempts:   attempts,
		}
		result := Evaluate(model.ModuleReading, agg, nil, table)
		assert.GreaterOrEqual(t, result.CurrentLevel.Index(), prevLevel.Index())
		assert.GreaterOrEqual(t, result.NextLevelRequirement.CurrentProgress, 0.0)
		assert.LessOrEqual(t, result.NextLevelRequirement.CurrentProgress, 100.0)
		prevLevel = result.CurrentLevel
	}
}

func TestTrend(t *testing.T) {
	tests := []struct {
		name    string
		history []float64 // 从新到旧
		want    model.TrendDirection
	}{
		{"样本不足保持平稳", []float64{90, 80, 85}, model.TrendStable},
		{"明显上升", []float64{90, 85, 88, 70, 72, 75}, model.TrendUp},
		{"明显下降", []float64{60, 62, 58, 80, 85, 82}, model.TrendDown},
		{"差距两分以内算平稳", []float64{71, 72, 70, 70, 71, 70}, model.TrendStable},
		{"空输入", nil, model.TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Trend(tt.history))
		})
	}
}

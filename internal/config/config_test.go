package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"english_edu_backend/internal/model"
)

func TestBuildLevelTableDefaults(t *testing.T) {
	table, err := buildLevelTable(nil)
	require.NoError(t, err)

	req, ok := table.Lookup(model.LevelB1, model.ModuleReading)
	require.True(t, ok)
	assert.Equal(t, 70.0, req.Accuracy)
	assert.Equal(t, 15, req.MinAttempts)
}

func TestBuildLevelTableOverride(t *testing.T) {
	// viper 解析出的键是小写的
	overrides := map[string]map[string]model.LevelRequirement{
		"b1": {"reading": {Accuracy: 75, MinAttempts: 20}},
	}

	table, err := buildLevelTable(overrides)
	require.NoError(t, err)

	req, _ := table.Lookup(model.LevelB1, model.ModuleReading)
	assert.Equal(t, 75.0, req.Accuracy)
	assert.Equal(t, 20, req.MinAttempts)

	// 其余组合保持默认
	req, _ = table.Lookup(model.LevelB1, model.ModuleListening)
	assert.Equal(t, 70.0, req.Accuracy)
}

func TestBuildLevelTableRejectsUnknownKeys(t *testing.T) {
	_, err := buildLevelTable(map[string]map[string]model.LevelRequirement{
		"d1": {"reading": {Accuracy: 50, MinAttempts: 1}},
	})
	assert.Error(t, err)

	_, err = buildLevelTable(map[string]map[string]model.LevelRequirement{
		"b1": {"chess": {Accuracy: 50, MinAttempts: 1}},
	})
	assert.Error(t, err)
}

func TestBuildLevelTableRejectsNonMonotonicOverride(t *testing.T) {
	// B2 门槛被压到 B1 之下，必须拒绝
	_, err := buildLevelTable(map[string]map[string]model.LevelRequirement{
		"b2": {"writing": {Accuracy: 55, MinAttempts: 3}},
	})
	assert.Error(t, err)
}

func TestAssessmentConfigDefaults(t *testing.T) {
	cfg := AssessmentConfig{}
	assert.Equal(t, 30*24.0, cfg.Window().Hours())
	assert.Equal(t, 10.0, cfg.CacheTTL().Minutes())

	cfg = AssessmentConfig{WindowDays: 7, CacheTTLMinutes: 1}
	assert.Equal(t, 7*24.0, cfg.Window().Hours())
	assert.Equal(t, 1.0, cfg.CacheTTL().Minutes())
}

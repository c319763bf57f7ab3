package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"english_edu_backend/internal/model"
)

func moduleAssessment(module model.SkillModule, level model.CEFRLevel, accuracy, progress float64) model.ModuleAssessment {
	return model.ModuleAssessment{
		Module:       module,
		CurrentLevel: level,
		Accuracy:     accuracy,
		RecentTrend:  model.TrendStable,
		NextLevelRequirement: model.NextLevelRequirement{
			CurrentProgress: progress,
		},
	}
}

func TestDecideScenarioBAllModulesReady(t *testing.T) {
	assessments := []model.ModuleAssessment{
		moduleAssessment(model.ModuleReading, model.LevelB1, 85, 100),
		moduleAssessment(model.ModuleListening, model.LevelB1, 82, 100),
		moduleAssessment(model.ModuleSpeaking, model.LevelB1, 80, 100),
		moduleAssessment(model.ModuleWriting, model.LevelB1, 81, 100),
	}

	result := Decide(assessments, time.Now())

	assert.Equal(t, model.LevelB1, result.OverallLevel)
	assert.True(t, result.LevelUpgrade.CanUpgrade)
	require.NotNil(t, result.LevelUpgrade.NextLevel)
	assert.Equal(t, model.LevelB2, *result.LevelUpgrade.NextLevel)
	assert.Equal(t, 100.0, result.LevelUpgrade.OverallProgress)
}

func TestDecideWeakestLinkPolicy(t *testing.T) {
	assessments := []model.ModuleAssessment{
		moduleAssessment(model.ModuleReading, model.LevelC1, 90, 80),
		moduleAssessment(model.ModuleListening, model.LevelB2, 85, 90),
		moduleAssessment(model.ModuleSpeaking, model.LevelA2, 62, 40),
		moduleAssessment(model.ModuleWriting, model.LevelB1, 75, 70),
	}

	result := Decide(assessments, time.Now())

	assert.Equal(t, model.LevelA2, result.OverallLevel)
	assert.False(t, result.LevelUpgrade.CanUpgrade)
	require.NotNil(t, result.LevelUpgrade.NextLevel)
	assert.Equal(t, model.LevelB1, *result.LevelUpgrade.NextLevel)
	assert.Equal(t, model.ModuleSpeaking, result.WeakestModule)
	assert.Equal(t, model.ModuleListening, result.StrongestModule)
	assert.InDelta(t, 70.0, result.LevelUpgrade.OverallProgress, 0.001)
}

func TestDecideSingleModuleBlocksUpgrade(t *testing.T) {
	assessments := []model.ModuleAssessment{
		moduleAssessment(model.ModuleReading, model.LevelB1, 85, 100),
		moduleAssessment(model.ModuleListening, model.LevelB1, 85, 100),
		moduleAssessment(model.ModuleSpeaking, model.LevelB1, 85, 99.5),
		moduleAssessment(model.ModuleWriting, model.LevelB1, 85, 100),
	}

	result := Decide(assessments, time.Now())
	assert.False(t, result.LevelUpgrade.CanUpgrade)
}

func TestDecideTieBreakByAccuracyThenOrder(t *testing.T) {
	// 进度并列时比原始准确率
	assessments := []model.ModuleAssessment{
		moduleAssessment(model.ModuleReading, model.LevelB1, 80, 60),
		moduleAssessment(model.ModuleListening, model.LevelB1, 70, 60),
		moduleAssessment(model.ModuleSpeaking, model.LevelB1, 75, 60),
		moduleAssessment(model.ModuleWriting, model.LevelB1, 78, 60),
	}

	result := Decide(assessments, time.Now())
	assert.Equal(t, model.ModuleListening, result.WeakestModule)
	assert.Equal(t, model.ModuleReading, result.StrongestModule)
}

func TestDecideFullTieKeepsEnumerationOrder(t *testing.T) {
	assessments := []model.ModuleAssessment{
		moduleAssessment(model.ModuleReading, model.LevelB1, 75, 60),
		moduleAssessment(model.ModuleListening, model.LevelB1, 75, 60),
		moduleAssessment(model.ModuleSpeaking, model.LevelB1, 75, 60),
		moduleAssessment(model.ModuleWriting, model.LevelB1, 75, 60),
	}

	result := Decide(assessments, time.Now())
	// 全部并列：最弱取枚举序最靠前的，最强取最靠后的
	assert.Equal(t, model.ModuleReading, result.WeakestModule)
	assert.Equal(t, model.ModuleWriting, result.StrongestModule)
}

func TestDecideAtC2NoFurtherUpgrade(t *testing.T) {
	assessments := []model.ModuleAssessment{
		moduleAssessment(model.ModuleReading, model.LevelC2, 95, 100),
		moduleAssessment(model.ModuleListening, model.LevelC2, 96, 100),
		moduleAssessment(model.ModuleSpeaking, model.LevelC2, 94, 100),
		moduleAssessment(model.ModuleWriting, model.LevelC2, 93, 100),
	}

	result := Decide(assessments, time.Now())

	assert.Equal(t, model.LevelC2, result.OverallLevel)
	assert.Nil(t, result.LevelUpgrade.NextLevel)
	assert.False(t, result.LevelUpgrade.CanUpgrade)
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCEFRLevelOrder(t *testing.T) {
	for i, level := range CEFRLevels {
		assert.True(t, level.Valid())
		assert.Equal(t, i, level.Index())
	}

	next, ok := LevelB1.Next()
	assert.True(t, ok)
	assert.Equal(t, LevelB2, next)

	_, ok = LevelC2.Next()
	assert.False(t, ok)

	assert.False(t, CEFRLevel("D1").Valid())
	assert.Equal(t, -1, CEFRLevel("D1").Index())
}

func TestSkillModuleAssessed(t *testing.T) {
	for _, m := range AssessedModules {
		assert.True(t, m.Assessed())
	}
	assert.True(t, ModuleTranslation.Valid())
	assert.False(t, ModuleTranslation.Assessed())
	assert.False(t, SkillModule("chess").Valid())
}

func TestDefaultLevelRequirementsValid(t *testing.T) {
	assert.NoError(t, DefaultLevelRequirements().Validate())
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDBaseBeforeCreate(t *testing.T) {
	snapshot := &AssessmentSnapshot{LearnerID: 1}
	require.NoError(t, snapshot.BeforeCreate(nil))
	assert.NotEmpty(t, snapshot.ID)

	// 已有 ID 不被覆盖
	fixed := &UUIDBase{ID: "existing-id"}
	require.NoError(t, fixed.BeforeCreate(nil))
	assert.Equal(t, "existing-id", fixed.ID)
}

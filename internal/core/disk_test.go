package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVolumeUsage(t *testing.T) {
	usage, err := GetVolumeUsage(t.TempDir())
	require.NoError(t, err)

	assert.NotZero(t, usage.Total)
	assert.LessOrEqual(t, usage.Free, usage.Total)
}

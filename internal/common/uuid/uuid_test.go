package uuid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCycleIDIsUniqueUUID(t *testing.T) {
	gen := New()

	first := gen.NewCycleID()
	second := gen.NewCycleID()

	_, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, idLength)

	other, err := GenerateID()
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 50.0, Percent(1, 2))
	assert.Equal(t, 33.33, Percent(1, 3))
	assert.Equal(t, 0.0, Percent(5, 0))
}

func TestFormatDecimal(t *testing.T) {
	assert.Equal(t, "1.5", FormatDecimal(1.5))
	assert.Equal(t, "1.47", FormatDecimal(1.4721))
	assert.Equal(t, "2", FormatDecimal(2))
}

package ga

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetricLaysOutSigns(t *testing.T) {
	m, err := NewMetric(3, 1, 2)
	require.NoError(t, err)

	assert.Equal(t, 6, m.Dim())
	assert.Equal(t, Metric{1, 1, 1, -1, 0, 0}, m)
}

func TestNewMetricRejectsTooManyDimensions(t *testing.T) {
	_, err := NewMetric(4, 4, 4)
	require.Error(t, err)
}

func TestSquare(t *testing.T) {
	m, err := NewMetric(3, 2, 1)
	require.NoError(t, err)

	lastPositive, err := m.Square(2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, lastPositive)

	lastNegative, err := m.Square(4)
	require.NoError(t, err)
	assert.Equal(t, -1.0, lastNegative)

	zero, err := m.Square(5)
	require.NoError(t, err)
	assert.Equal(t, 0.0, zero)
}

func TestSquareOutOfRange(t *testing.T) {
	m := Conformal3

	_, err := m.Square(10)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = m.Square(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

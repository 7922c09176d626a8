package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Clamp(tt.v, tt.lo, tt.hi))
	}
}

func TestFrameScale(t *testing.T) {
	assert.InDelta(t, 1.0, FrameScale(FrameMillis), 1e-12)
	assert.Equal(t, 0.0, FrameScale(0))
}

func TestSign(t *testing.T) {
	assert.Equal(t, 1.0, Sign(3))
	assert.Equal(t, -1.0, Sign(-0.5))
	assert.Equal(t, 0.0, Sign(0))
}

func TestWrapText(t *testing.T) {
	lines := WrapText("the quick brown fox jumps over the lazy dog", 10)
	assert.Greater(t, len(lines), 1)
	for _, l := range lines {
		assert.LessOrEqual(t, len(strings.TrimSpace(l)), 10, l)
	}
	assert.Equal(t, "the quick brown fox jumps over the lazy dog", strings.Join(lines, " "))

	assert.Equal(t, []string{"short"}, WrapText("short", 0))
}

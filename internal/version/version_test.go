package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"v1.2.3", "v1.2.3"},
		{"1.2.3", "v1.2.3"},
		{"v1.2", "v1.2.0"},
		{"v1.0.0-rc.1+build5", "v1.0.0-rc.1"},
		{"(devel)", Dev},
		{"", Dev},
		{"main", Dev},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestIsRelease(t *testing.T) {
	assert.True(t, IsRelease("v0.3.1"))
	assert.False(t, IsRelease("v0.4.0-beta.1"))
	assert.False(t, IsRelease(Dev))
}

func TestString(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })

	Version = "0.9.0"
	assert.Equal(t, "v0.9.0", String())
}

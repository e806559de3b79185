package flschooldata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldQuiet(t *testing.T) {
	off := false
	on := true

	tests := []struct {
		name     string
		opts     Options
		expected bool
	}{
		{"default", DefaultOptions(), true},
		{"explicit false", Options{Quiet: &off}, false},
		{"explicit true", Options{Quiet: &on}, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.opts.ShouldQuiet(), tt.name)
	}
}

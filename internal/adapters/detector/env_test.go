package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/aot/internal/adapters/detector"
)

func TestInteractive_CI(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "CI true", value: "true"},
		{name: "CI one", value: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CI", tt.value)

			assert.False(t, detector.Interactive())
		})
	}
}

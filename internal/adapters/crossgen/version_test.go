package crossgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/aot/internal/adapters/crossgen"
	"go.trai.ch/aot/internal/core/domain"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    string
		wantErr bool
	}{
		{
			name:   "banner with version",
			output: "Microsoft (R) CoreCLR Native Image Generator - Version 2.0.3",
			want:   "2.0.3",
		},
		{
			name:   "bare version",
			output: "2.1.0",
			want:   "2.1.0",
		},
		{
			name:   "prerelease version",
			output: "crossgen 2.0.0-preview2-25407-01",
			want:   "2.0.0-preview2-25407-01",
		},
		{
			name:   "first version wins",
			output: "tool 1.2.3 built against runtime 4.5.6",
			want:   "1.2.3",
		},
		{
			name:   "version on a later line",
			output: "Native Image Generator\nVersion 2.0.3\n",
			want:   "2.0.3",
		},
		{
			name:    "no version in output",
			output:  "usage: crossgen [options] assembly",
			wantErr: true,
		},
		{
			name:    "empty output",
			output:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := crossgen.ParseVersion(tt.output)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrGeneratorVersionUnknown)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

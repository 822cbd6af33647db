package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{name: "json lower", input: "json", want: FormatJSON},
		{name: "json upper normalized", input: "JSON", want: FormatJSON},
		{name: "text mixed case", input: "TeXt", want: FormatText},
		{name: "unsupported", input: "sarif", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSeverity(t *testing.T) {
	for _, sev := range Severities {
		got, err := ParseSeverity(string(sev))
		require.NoError(t, err)
		assert.Equal(t, sev, got)
	}

	// Matching is exact; lowercase input is not a valid choice.
	_, err := ParseSeverity("medium")
	assert.ErrorIs(t, err, ErrInvalidSeverity)

	_, err = ParseSeverity("INFO")
	assert.ErrorIs(t, err, ErrInvalidSeverity)
}

func TestParseFramework(t *testing.T) {
	for _, fw := range Frameworks {
		got, err := ParseFramework(string(fw))
		require.NoError(t, err)
		assert.Equal(t, fw, got)
	}

	_, err := ParseFramework("Terraform")
	assert.ErrorIs(t, err, ErrInvalidFramework)

	_, err = ParseFramework("ansible")
	assert.ErrorIs(t, err, ErrInvalidFramework)
}

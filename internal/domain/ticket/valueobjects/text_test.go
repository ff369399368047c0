package valueobjects

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTitle(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "plain", input: "Fix bug", want: "Fix bug"},
		{name: "trimmed", input: "  Fix bug \n", want: "Fix bug"},
		{name: "exactly max", input: strings.Repeat("a", MaxTitleLength), want: strings.Repeat("a", MaxTitleLength)},
		{name: "max counted in runes", input: strings.Repeat("é", MaxTitleLength), want: strings.Repeat("é", MaxTitleLength)},
		{name: "padding does not count", input: " " + strings.Repeat("a", MaxTitleLength) + " ", want: strings.Repeat("a", MaxTitleLength)},
		{name: "empty", input: "", wantErr: ErrEmptyTitle},
		{name: "whitespace only", input: " \t\n ", wantErr: ErrEmptyTitle},
		{name: "one over max", input: strings.Repeat("a", MaxTitleLength+1), wantErr: ErrTooLongTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTitle(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestNewDescription(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "plain", input: "NPE in handler", want: "NPE in handler"},
		{name: "trimmed", input: "\tNPE in handler  ", want: "NPE in handler"},
		{name: "exactly max", input: strings.Repeat("d", MaxDescriptionLength), want: strings.Repeat("d", MaxDescriptionLength)},
		{name: "empty", input: "", wantErr: ErrEmptyDescription},
		{name: "whitespace only", input: "   ", wantErr: ErrEmptyDescription},
		{name: "one over max", input: strings.Repeat("d", MaxDescriptionLength+1), wantErr: ErrTooLongDescription},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewDescription(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

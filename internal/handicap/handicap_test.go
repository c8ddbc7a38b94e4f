package handicap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Handicap
		wantErr bool
	}{
		{name: "plain", input: "12", want: 12},
		{name: "whitespace", input: "  7\n", want: 7},
		{name: "plus golfer", input: "-3", want: -3},
		{name: "zero", input: "0", want: 0},
		{name: "empty", input: "", wantErr: true},
		{name: "decimal", input: "8.4", wantErr: true},
		{name: "letters", input: "scratch", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHandicapString(t *testing.T) {
	assert.Equal(t, "9", Handicap(9).String())
	assert.Equal(t, "+4", Handicap(-4).String())
	assert.True(t, Handicap(-1).IsPlus())
	assert.False(t, Handicap(0).IsPlus())
}

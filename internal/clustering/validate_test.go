package clustering

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidClusterName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"plain name", "branded queries", true},
		{"surrounded by spaces", "  faq  ", true},
		{"empty", "", false},
		{"only whitespace", " \t\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidClusterName(tt.in))
		})
	}
}

func TestValidateQueryIDsPartitions(t *testing.T) {
	v4a := uuid.NewString()
	v4b := uuid.NewString()
	ids := []string{
		v4a,
		"not-a-uuid",
		v4b,
		"",
		"123e4567-e89b-12d3-a456-426614174000", // well-formed but version 1
	}
	valid, invalid := ValidateQueryIDs(ids)
	assert.Equal(t, []string{v4a, v4b}, valid)
	assert.Equal(t, 3, invalid)
	assert.Equal(t, len(ids), len(valid)+invalid)
}

func TestValidateQueryIDsEmptyInput(t *testing.T) {
	valid, invalid := ValidateQueryIDs(nil)
	assert.Empty(t, valid)
	assert.Zero(t, invalid)
}

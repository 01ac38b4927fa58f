package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/workboard/internal/models"
)

type sampleInput struct {
	ID    int          `flag:"id" validate:"gt=0"`
	Name  string       `flag:"name" validate:"required,max=5"`
	Email string       `flag:"email" validate:"omitempty,email"`
	State models.State `flag:"state" validate:"state"`
}

func TestValidate(t *testing.T) {
	valid := sampleInput{ID: 1, Name: "bug", State: models.StateNew}

	tests := []struct {
		name     string
		mutate   func(*sampleInput)
		contains string
	}{
		{"missing name", func(in *sampleInput) { in.Name = "" }, "--name is required"},
		{"long name", func(in *sampleInput) { in.Name = "toolong" }, "--name must be at most 5 characters"},
		{"zero id", func(in *sampleInput) { in.ID = 0 }, "--id must be greater than 0"},
		{"bad email", func(in *sampleInput) { in.Email = "nope" }, "--email must be a valid email address"},
		{"bad state", func(in *sampleInput) { in.State = "Doing" }, "--state must be one of New, Active, Resolved, Closed, Removed"},
	}

	require.NoError(t, Validate(valid))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			err := Validate(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestValidateJoinsMessages(t *testing.T) {
	err := Validate(sampleInput{State: models.StateActive})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--id must be greater than 0; --name is required")
}

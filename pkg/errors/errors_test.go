package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmitError_WrapsSentinel(t *testing.T) {
	err := SubmitError("Slot already taken")
	assert.ErrorIs(t, err, ErrSubmitFailed)

	assert.Equal(t, ErrSubmitFailed, SubmitError(""))
}

func TestSubmitMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"carries server message", SubmitError("Slot already taken"), "Slot already taken"},
		{"no message", SubmitError(""), ""},
		{"not a submit failure", FetchError("listing", errors.New("boom")), ""},
		{"wrapped further", fmt.Errorf("publish: %w", SubmitError("Nope")), "publish: Nope"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SubmitMessage(tc.err))
		})
	}
}

func TestValidationError_NamesField(t *testing.T) {
	err := ValidationError("experience", "must be a whole number")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "experience")
}

package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"heatzyctl/internal/domain"
)

func TestValidateSelector(t *testing.T) {
	var usage usageError

	err := validateSelector("Bedroom", "dev1")
	assert.ErrorAs(t, err, &usage, "both selectors set")

	err = validateSelector("", "")
	assert.ErrorAs(t, err, &usage, "no selector set")

	assert.NoError(t, validateSelector("Bedroom", ""))
	assert.NoError(t, validateSelector("", "dev1"))
}

func TestExitCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"usage", usageError{errors.New("one of --name or --id is required")}, 2},
		{"unauthorized", fmt.Errorf("login: %w", domain.ErrUnauthorized), 3},
		{"no token", domain.ErrNoToken, 3},
		{"malformed response", domain.ErrMalformedResponse, 3},
		{"not found", fmt.Errorf("device x: %w", domain.ErrNotFound), 4},
		{"ambiguous alias", fmt.Errorf("%w: 2 devices", domain.ErrAmbiguousAlias), 5},
		{"unknown mode", fmt.Errorf("%w: %q", domain.ErrUnknownMode, "warm"), 6},
		{"unrecognized wire code", fmt.Errorf("device x: %w", domain.ErrUnrecognizedWireCode), 6},
		{"anything else", errors.New("connection refused"), 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, exitCode(tc.err))
		})
	}
}

package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestExitCode(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"config", NewConfigError("bad format %q", "xml"), ExitErrorConfig},
		{"wrapped config", fmt.Errorf("load: %w", NewConfigError("missing")), ExitErrorConfig},
		{"canceled", fmt.Errorf("analyze: %w", context.Canceled), ExitErrorCanceled},
		{"other", errors.New("boom"), ExitErrorGeneric},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExitCode(tc.err); got != tc.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}

func TestConfigErrorMessage(t *testing.T) {
	err := NewConfigError("unknown format %q", "xml")
	if err.Error() != `unknown format "xml"` {
		t.Errorf("Error() = %q", err.Error())
	}
}

package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	codes := []string{
		ErrConfig,
		ErrSource,
		ErrTerminal,
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Invalid configuration in .pidash.yaml",
			suggestion: "Check your configuration file syntax",
		},
		{
			name:       "terminal error",
			code:       ErrTerminal,
			message:    "pidash needs an interactive terminal",
			suggestion: "Run it from a TTY, not through a pipe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	cause := fmt.Errorf("open /dev/tty: no such device")
	err := WrapWithCode(cause, ErrTerminal, "Terminal went away", "Restart pidash")

	out := err.Error()
	lines := strings.Split(out, "\n")
	assert.Equal(t, "✗ Terminal went away", lines[0])
	assert.Contains(t, out, "  open /dev/tty: no such device")
	assert.Contains(t, out, "  Restart pidash")

	// Cause comes before the suggestion
	assert.Less(t, strings.Index(out, "no such device"), strings.Index(out, "Restart pidash"))
}

func TestErrorFormatting_NoCauseNoSuggestion(t *testing.T) {
	err := New(ErrConfig, "Bad interval", "")
	assert.Equal(t, "✗ Bad interval\n", err.Error())
}

func TestUnwrap(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := WrapWithCode(sentinel, ErrConfig, "wrapped", "")

	assert.True(t, errors.Is(err, sentinel))
	assert.Equal(t, sentinel, err.Unwrap())
}

func TestIsCode(t *testing.T) {
	err := New(ErrTerminal, "no tty", "")
	wrapped := fmt.Errorf("running dashboard: %w", err)

	assert.True(t, IsCode(err, ErrTerminal))
	assert.True(t, IsCode(wrapped, ErrTerminal))
	assert.False(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(nil, ErrConfig))
	assert.False(t, IsCode(errors.New("plain"), ErrConfig))
}

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLogger_NotNil verifies that NewLogger returns a non-nil *Logger.
func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test")
	require.NotNil(t, l)
}

// TestNewLogger_RoleField verifies that every log entry produced by a logger
// created with NewLogger contains the expected "role" field.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role")
	// redirect output to buffer for inspection
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
}

// TestNewLogger_CallerFieldName verifies that the caller field is named "func".
func TestNewLogger_CallerFieldName(t *testing.T) {
	NewLogger("caller-role") // sets zerolog.CallerFieldName as a side-effect
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

// TestNop_DiscardsOutput verifies that the Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	l.Error().Msg("should go nowhere")
}

// TestFromContext_RoundTrip verifies that a logger attached to a context via
// WithContext is returned by FromContext.
func TestFromContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("ctx-role")
	l.Logger = l.Output(&buf)

	ctx := l.WithContext(context.Background())
	got := FromContext(ctx)
	require.NotNil(t, got)

	got.Info().Msg("via context")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ctx-role", entry["role"])
}

// TestErrorSink_Capture verifies that captured errors are written to the
// underlying logger and that nil errors are ignored.
func TestErrorSink_Capture(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("sink")
	l.Logger = l.Output(&buf)

	sink := NewErrorSink(l)
	sink.Capture(nil, "ignored")
	assert.Zero(t, buf.Len())

	sink.Capture(errors.New("boom"), "item skipped")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "item skipped", entry["message"])
}

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewClientLogger_NotNil verifies that NewClientLogger returns a non-nil *Logger.
func TestNewClientLogger_NotNil(t *testing.T) {
	l := NewClientLogger("test")
	require.NotNil(t, l)
}

// TestNewClientLogger_RoleField verifies that every log entry produced by a
// logger created with NewClientLogger contains the expected "role" field.
func TestNewClientLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewClientLogger("test-role")
	// redirect output to buffer for inspection
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
}

// TestNewClientLogger_CallerFieldName verifies that the caller field is named "func".
func TestNewClientLogger_CallerFieldName(t *testing.T) {
	NewClientLogger("caller-role") // sets zerolog.CallerFieldName as a side-effect
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

// TestNop_DiscardsOutput verifies that the Nop logger emits nothing.
func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	l.Error().Msg("should disappear")
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

// TestFromContext_ReturnsAttachedLogger verifies that FromContext round-trips
// a logger attached via zerolog's WithContext.
func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf).With().Str("role", "ctx-role").Logger()
	ctx := base.WithContext(context.Background())

	l := FromContext(ctx)
	require.NotNil(t, l)
	l.Info().Msg("from ctx")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ctx-role", entry["role"])
}

// TestGetChildLogger_InheritsFields verifies that a child logger carries the
// parent's fields.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf).With().Str("role", "parent").Logger()}

	child := parent.GetChildLogger()
	child.Info().Msg("child entry")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "parent", entry["role"])
}

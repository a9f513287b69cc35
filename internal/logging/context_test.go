package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext_NoLoggerIsDisabled(t *testing.T) {
	logger := FromContext(context.Background())

	require.NotNil(t, logger)
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestContextFields(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), zerolog.New(&buf))

	ctx = WithComponent(ctx, "dock-renderer")
	ctx = WithContainerID(ctx, "c-1")
	ctx = WithNodeID(ctx, "n-7")
	ctx = With(ctx, map[string]any{"zone": "left"})
	FromContext(ctx).Info().Msg("drop")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "dock-renderer", entry["component"])
	assert.Equal(t, "c-1", entry["container_id"])
	assert.Equal(t, "n-7", entry["node_id"])
	assert.Equal(t, "left", entry["zone"])
}

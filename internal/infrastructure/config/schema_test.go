package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, schemaID, doc["$id"])
	assert.Equal(t, "Docking Configuration", doc["title"])
	assert.Contains(t, string(data), "splitter_width")
	assert.Contains(t, string(data), "resize_step_percent")
	assert.Contains(t, string(data), "focus_color")
}

func TestWriteSchemaFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.schema.json")

	require.NoError(t, WriteSchemaFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}

func TestSchemaProvider_GetSchema(t *testing.T) {
	keys := NewSchemaProvider().GetSchema()

	sections := map[string]int{}
	seen := map[string]bool{}
	for _, k := range keys {
		assert.False(t, seen[k.Key], "duplicate key %s", k.Key)
		seen[k.Key] = true
		sections[k.Section]++
		assert.NotEmpty(t, k.Description, k.Key)
	}

	assert.Equal(t, 4, sections[SectionDock])
	assert.Equal(t, 7, sections[SectionLogging])
	assert.Equal(t, 5, sections[SectionAppearance])
	assert.True(t, seen["dock.min_split_ratio"])
}

func TestSchemaProvider_DefaultsMatchConfig(t *testing.T) {
	defaults := DefaultConfig()

	for _, k := range NewSchemaProvider().GetSchema() {
		switch k.Key {
		case "dock.default_split_ratio":
			assert.Equal(t, "0.5", k.Default)
		case "logging.level":
			assert.Equal(t, defaults.Logging.Level, k.Default)
		case "appearance.preview_color":
			assert.Equal(t, defaults.Appearance.PreviewColor, k.Default)
		}
	}
}

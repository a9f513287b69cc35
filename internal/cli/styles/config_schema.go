package styles

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/docking/internal/domain/entity"
)

// ConfigSchemaRenderer renders configuration schema information.
type ConfigSchemaRenderer struct {
	theme *Theme
}

// NewConfigSchemaRenderer creates a new ConfigSchemaRenderer.
func NewConfigSchemaRenderer(theme *Theme) *ConfigSchemaRenderer {
	return &ConfigSchemaRenderer{theme: theme}
}

// Render renders the keys grouped by section, sections in the order they
// first appear.
func (r *ConfigSchemaRenderer) Render(keys []entity.ConfigKeyInfo) string {
	if len(keys) == 0 {
		return r.theme.Subtle.Render("No configuration keys found")
	}

	order, sections := groupBySection(keys)

	parts := []string{r.renderHeader(), ""}
	for _, section := range order {
		parts = append(parts, r.renderSection(section, sections[section]), "")
	}
	return strings.Join(parts, "\n")
}

// RenderJSON renders the configuration schema as JSON.
func (*ConfigSchemaRenderer) RenderJSON(keys []entity.ConfigKeyInfo) (string, error) {
	data, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}
	return string(data), nil
}

func (r *ConfigSchemaRenderer) renderHeader() string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("%s %s", iconStyle.Render(IconConfig), r.theme.Title.Render("Config Schema Reference"))
}

func groupBySection(keys []entity.ConfigKeyInfo) ([]string, map[string][]entity.ConfigKeyInfo) {
	var order []string
	sections := make(map[string][]entity.ConfigKeyInfo)
	for _, key := range keys {
		if _, seen := sections[key.Section]; !seen {
			order = append(order, key.Section)
		}
		sections[key.Section] = append(sections[key.Section], key)
	}
	return order, sections
}

func (r *ConfigSchemaRenderer) renderSection(name string, keys []entity.ConfigKeyInfo) string {
	lines := make([]string, 0, len(keys)+1)
	lines = append(lines, r.theme.Highlight.Render(name))
	for _, key := range keys {
		lines = append(lines, r.renderKey(key))
	}
	return r.theme.Box.PaddingTop(0).Render(strings.Join(lines, "\n"))
}

func (r *ConfigSchemaRenderer) renderKey(key entity.ConfigKeyInfo) string {
	defaultStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	lines := []string{
		fmt.Sprintf("%s  %s  %s",
			r.theme.Normal.Bold(true).Render(key.Key),
			r.theme.Subtle.Render(key.Type),
			defaultStyle.Render(key.Default),
		),
		"  " + r.theme.Subtle.Render(key.Description),
	}

	if constraint := key.Constraint(); constraint != "" {
		lines = append(lines, "  "+r.theme.Normal.Render(constraint))
	}
	return strings.Join(lines, "\n")
}

// Package topics provides the embedded help topics shown by "tsfix topics".
// Topic files are markdown documents compiled into the binary, so the help
// is available wherever the binary runs.
package topics

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed docs/*.md
var docsFS embed.FS

// Topic represents one help topic
type Topic struct {
	Name    string
	Content string
}

// Manager loads and serves embedded help topics
type Manager struct {
	topics   map[string]*Topic
	renderer Renderer
}

// NewManager creates a Manager over the embedded docs using the given
// renderer (PlainRenderer when nil)
func NewManager(renderer Renderer) (*Manager, error) {
	if renderer == nil {
		renderer = &PlainRenderer{}
	}

	m := &Manager{
		topics:   make(map[string]*Topic),
		renderer: renderer,
	}

	entries, err := fs.ReadDir(docsFS, "docs")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded topics: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))
		data, err := docsFS.ReadFile(path.Join("docs", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read topic %s: %w", name, err)
		}
		m.topics[name] = &Topic{Name: name, Content: string(data)}
	}

	return m, nil
}

// Names returns the available topic names, sorted
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Show returns the rendered content of a topic
func (m *Manager) Show(name string) (string, error) {
	topic, ok := m.topics[name]
	if !ok {
		return "", fmt.Errorf("unknown topic %q (available: %s)", name, strings.Join(m.Names(), ", "))
	}
	return m.renderer.Render(topic.Content), nil
}

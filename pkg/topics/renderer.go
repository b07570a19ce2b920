package topics

// Renderer formats topic content for display
type Renderer interface {
	Render(content string) string
}

// PlainRenderer passes content through untouched, for piped output and tests
type PlainRenderer struct{}

// Render returns the content as-is
func (r *PlainRenderer) Render(content string) string {
	return content
}

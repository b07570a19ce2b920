package topics

// Message constants
const (
	MsgShort   = "Show help topics"
	MsgLong    = "List the available help topics, or show one rendered for the terminal."
	MsgExample = `  tsfix topics            # List available topics
  tsfix topics rules      # Explain every rewrite rule`
)

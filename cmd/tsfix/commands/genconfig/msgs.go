package genconfig

// Message constants
const (
	MsgShort   = "Generate a default configuration file"
	MsgLong    = "Output the default configuration with every value commented out, to stdout or to a file."
	MsgExample = `  tsfix gen-config                 # Output to stdout
  tsfix gen-config -w              # Write to ./tsfix.toml`
)

package topics

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/EhssanAtassi/tsfix/pkg/style"
	"github.com/EhssanAtassi/tsfix/pkg/topics"
)

// NewCommand creates the topics command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "topics [topic]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := topics.NewManager(newRenderer())
			if err != nil {
				return err
			}

			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Available topics:")
				for _, name := range manager.Names() {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
				}
				return nil
			}

			content, err := manager.Show(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		},
	}
}

// newRenderer picks markdown rendering for interactive terminals and plain
// passthrough for pipes
func newRenderer() topics.Renderer {
	if style.DetectFormat(os.Stdout) == style.FormatTerminal {
		return topics.NewGlamourRenderer()
	}
	return &topics.PlainRenderer{}
}

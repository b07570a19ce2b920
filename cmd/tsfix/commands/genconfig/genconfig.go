package genconfig

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/EhssanAtassi/tsfix/pkg/config"
)

const configFileName = "tsfix.toml"

// NewCommand creates the gen-config command
func NewCommand() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.GenerateConfigContent()
			if err != nil {
				return err
			}

			if !write {
				fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			}

			if _, err := os.Stat(configFileName); err == nil {
				return fmt.Errorf("%s already exists, refusing to overwrite", configFileName)
			}
			if err := os.WriteFile(configFileName, []byte(content), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", configFileName, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configFileName)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write config to ./"+configFileName+" instead of stdout")

	return cmd
}

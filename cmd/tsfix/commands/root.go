package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/EhssanAtassi/tsfix/cmd/tsfix/commands/genconfig"
	"github.com/EhssanAtassi/tsfix/cmd/tsfix/commands/topics"
	"github.com/EhssanAtassi/tsfix/internal/version"
	"github.com/EhssanAtassi/tsfix/pkg/config"
	"github.com/EhssanAtassi/tsfix/pkg/filesystem"
	"github.com/EhssanAtassi/tsfix/pkg/logging"
	"github.com/EhssanAtassi/tsfix/pkg/patcher"
	"github.com/EhssanAtassi/tsfix/pkg/report"
	"github.com/EhssanAtassi/tsfix/pkg/rules"
	"github.com/EhssanAtassi/tsfix/pkg/style"
)

// NewRootCmd creates the tsfix root command. Running it with no subcommand
// executes the fix pipeline, so a bare "tsfix" behaves like the original
// flagless tool.
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		dryRun     bool
		rootDir    string
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:   "tsfix",
		Short: MsgRootShort,
		Long:  MsgRootLong,
		Args:  cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFix(rootDir, configPath, dryRun)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ./tsfix.toml, ./tsfix.yaml, or XDG config dir)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without writing any file")
	rootCmd.Flags().StringVar(&rootDir, "root", "", "Directory to scan (overrides scan.root)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(genconfig.NewCommand())
	rootCmd.AddCommand(topics.NewCommand())

	return rootCmd
}

func runFix(rootDir, configPath string, dryRun bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if rootDir != "" {
		cfg.Scan.Root = rootDir
	}

	format := style.FormatAuto.Resolve(os.Stdout)
	reporter := report.New(os.Stdout, format)

	p := patcher.New(patcher.Options{
		FS:            filesystem.NewOS(),
		Rules:         rules.ForConfig(cfg.Rules.Enabled()),
		Reporter:      reporter,
		Extensions:    cfg.Scan.Extensions,
		Exclude:       cfg.Scan.Exclude,
		VerifyCommand: cfg.Verify.Command,
		DryRun:        dryRun,
	})

	_, err = p.Run(cfg.Scan.Root)
	return err
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("tsfix version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}

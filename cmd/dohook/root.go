package dohook

import (
	"errors"
	"fmt"

	"github.com/arthur-debert/dohook/internal/version"
	"github.com/arthur-debert/dohook/pkg/config"
	"github.com/arthur-debert/dohook/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		configPath string
		cfg        = config.Default()
	)

	rootCmd := &cobra.Command{
		Use:     "dohook",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.LoadConfiguration(configPath)
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}
			*cfg = *loaded

			if cfg.Log.Verbosity > verbosity {
				verbosity = cfg.Log.Verbosity
			}
			logging.SetupLogger(verbosity, cfg.Log.File)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", MsgFlagConfig)

	rootCmd.AddCommand(newEventsCmd())
	rootCmd.AddCommand(newPluginsCmd())
	rootCmd.AddCommand(newConfigCmd(cfg))
	rootCmd.AddCommand(newRunCmd(cfg))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

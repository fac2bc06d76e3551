package dohook

import (
	"fmt"

	"github.com/arthur-debert/dohook/pkg/config"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(cfg *config.Config) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				out []byte
				err error
			)
			switch format {
			case "toml":
				out, err = toml.Marshal(cfg)
			case "yaml":
				out, err = yaml.Marshal(cfg)
			default:
				return fmt.Errorf(MsgErrUnknownFormat, format)
			}
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "toml", MsgFlagFormat)
	return cmd
}

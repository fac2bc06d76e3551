package dohook

import (
	"fmt"

	"github.com/arthur-debert/dohook/pkg/events"
	"github.com/arthur-debert/dohook/pkg/plugins"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newEventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: MsgEventsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data := pterm.TableData{{"#", "Event type"}}
			for _, k := range events.KnownTypes() {
				data = append(data, []string{fmt.Sprint(int(k)), k.String()})
			}
			return renderTable(cmd, data)
		},
	}
}

func newPluginsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plugins",
		Short: MsgPluginsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := plugins.Catalog()
			data := pterm.TableData{{"Plugin", "Handlers", "Description"}}
			for _, name := range catalog.List() {
				p, err := catalog.Get(name)
				if err != nil {
					return err
				}
				data = append(data, []string{p.Name, fmt.Sprint(p.Bindings(cmd.OutOrStdout()).Len()), p.Description})
			}
			return renderTable(cmd, data)
		},
	}
}

func renderTable(cmd *cobra.Command, data pterm.TableData) error {
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), table)
	return nil
}

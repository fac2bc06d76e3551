package dohook

import (
	"fmt"

	"github.com/arthur-debert/dohook/pkg/config"
	"github.com/arthur-debert/dohook/pkg/events"
	"github.com/arthur-debert/dohook/pkg/logging"
	"github.com/arthur-debert/dohook/pkg/manager"
	"github.com/arthur-debert/dohook/pkg/plugins"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newRunCmd(cfg *config.Config) *cobra.Command {
	var (
		pluginNames []string
		failTask    string
	)

	cmd := &cobra.Command{
		Use:   "run [task...]",
		Short: MsgRunShort,
		Long:  MsgRunLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			reg := events.NewRegistry(
				events.WithLogger(logging.GetLogger("events")),
				events.WithDefaultPriority(cfg.Registry.DefaultPriority),
				events.WithPriorityOverrides(cfg.Registry.PriorityOverrides()),
			)
			if err := plugins.Install(reg, plugins.Catalog(), pluginNames, out); err != nil {
				return fmt.Errorf(MsgErrInstall, err)
			}

			names := args
			if len(names) == 0 {
				names = cfg.Manager.Tasks
			}
			tasks := make([]*manager.Task, 0, len(names))
			for _, name := range names {
				tasks = append(tasks, demoTask(name, name == failTask))
			}

			m := manager.New(reg)
			if err := m.Initialize(); err != nil {
				return err
			}
			if err := m.Startup(); err != nil {
				return err
			}
			if _, err := m.LoadConfig(map[string]any{"tasks": names}); err != nil {
				return err
			}
			if err := m.Execute(tasks); err != nil {
				return err
			}
			if err := m.Shutdown(); err != nil {
				return err
			}

			fmt.Fprintln(out, MsgRunSummary)
			data := pterm.TableData{{"Task", "Status", "Reason"}}
			for _, task := range tasks {
				data = append(data, []string{task.Name, string(task.Status), task.AbortReason})
			}
			return renderTable(cmd, data)
		},
	}

	cmd.Flags().StringSliceVarP(&pluginNames, "plugins", "p", []string{"announce"}, MsgFlagPlugins)
	cmd.Flags().StringVar(&failTask, "fail", "", MsgFlagFail)
	return cmd
}

// demoTask builds a task with an input and an output step
func demoTask(name string, fail bool) *manager.Task {
	output := manager.Step{Plugin: "output"}
	if fail {
		output.Run = func(task *manager.Task) error {
			return fmt.Errorf("output for %s refused", task.Name)
		}
	}
	return manager.NewTask(name, manager.Step{Plugin: "input"}, output)
}

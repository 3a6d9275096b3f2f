package cmd

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/manus/internal/i18n"
	"github.com/zhubert/manus/internal/tasks"
	"github.com/zhubert/manus/internal/ui"
)

var (
	tasksStatus string
	tasksTable  bool
	tasksWidth  int
	tasksLocale string
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Print the task list",
	Long: `Prints the tasks shown on the Tasks screen, as cards by default or as a
compact table with --table.`,
	Args: cobra.NoArgs,
	RunE: runTasks,
}

func init() {
	tasksCmd.Flags().StringVar(&tasksStatus, "status", "", "Only show tasks with this status (running, completed, paused, failed)")
	tasksCmd.Flags().BoolVar(&tasksTable, "table", false, "Print a compact table instead of cards")
	tasksCmd.Flags().IntVar(&tasksWidth, "width", 80, "Output width in columns")
	tasksCmd.Flags().StringVar(&tasksLocale, "locale", "", "Print in this language instead of the saved one (en or ar)")
	rootCmd.AddCommand(tasksCmd)
}

// parseTaskFilter maps --status to a filter; empty means all tasks.
func parseTaskFilter(s string) (tasks.Filter, error) {
	if s == "" {
		return tasks.FilterAll, nil
	}
	st, ok := tasks.ParseStatus(s)
	if !ok {
		return tasks.Filter{}, fmt.Errorf("unknown status %q (want running, completed, paused or failed)", s)
	}
	return tasks.Only(st), nil
}

func runTasks(cmd *cobra.Command, args []string) error {
	filter, err := parseTaskFilter(tasksStatus)
	if err != nil {
		return err
	}
	if tasksWidth < 20 {
		return fmt.Errorf("--width must be at least 20, got %d", tasksWidth)
	}

	env, err := openEnvironment(cmd.Context())
	if err != nil {
		return err
	}
	defer env.Close()

	t, dir, err := env.translator(tasksLocale)
	if err != nil {
		return err
	}

	now := time.Now()
	store := tasks.NewStore(tasks.SeedTasks(now), tasks.WithRefreshIncrement(env.cfg.Tasks.RefreshIncrement))
	list := store.Filter(filter)
	if len(list) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), t.T("noTasksFound"))
		return nil
	}

	if tasksTable {
		return writeTable(cmd.OutOrStdout(), taskRows(list, t), tasksWidth)
	}
	styles := ui.NewStyles(ui.PaletteFor(env.themes.Theme()))
	return writeTaskCards(cmd.OutOrStdout(), list, styles, dir, t, now, tasksWidth)
}

// taskRows lays tasks out as table rows, header first.
func taskRows(list []tasks.Task, t i18n.Translator) [][]string {
	rows := [][]string{{"ID", "STATUS", "PROGRESS", "TITLE"}}
	for _, task := range list {
		progress := "-"
		if task.Status == tasks.StatusRunning {
			progress = strconv.Itoa(task.Progress) + "%"
		}
		rows = append(rows, []string{
			task.ID,
			t.T(ui.StatusKey(task.Status)),
			progress,
			task.Title,
		})
	}
	return rows
}

func writeTaskCards(w io.Writer, list []tasks.Task, s *ui.Styles, dir i18n.Direction, t i18n.Translator, now time.Time, width int) error {
	for _, task := range list {
		card := ui.RenderTaskCard(task, width, s, dir, t, now, false)
		if _, err := lipgloss.Fprintln(w, card); err != nil {
			return err
		}
	}
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diegomathiasDD/interfaces/internal/config"
	"github.com/diegomathiasDD/interfaces/internal/formatter"
	"github.com/diegomathiasDD/interfaces/internal/todo"
)

var todoCmd = &cobra.Command{
	Use:   "todo",
	Short: "Walk through the in-memory task repository",
	Long: `Seed an in-memory task list, complete one entry, and print the result
with task titles run through the selected formatting mode. The list only
lives for this invocation; nothing is stored.`,
	RunE: runTodo,
}

var todoMode string

func init() {
	todoCmd.Flags().StringVarP(&todoMode, "mode", "m", "", "formatting mode for task titles")
}

func runTodo(cmd *cobra.Command, args []string) error {
	repo := todo.NewMemoryRepository()

	seeded := []string{
		"learn interface-based design",
		"swap a formatter without touching callers",
		"replace the real formatter with a fake in tests",
	}
	for _, title := range seeded {
		repo.Add(title)
	}

	first := repo.List()[0]
	if err := repo.Complete(first.ID); err != nil {
		return fmt.Errorf("failed to complete task %d: %w", first.ID, err)
	}

	mode := chooseMode(todoMode, "", config.Get().GetMode())
	f := formatter.Resolve(mode)

	printInfo(fmt.Sprintf("%d tasks, titles formatted with %q", len(repo.List()), mode))
	for _, task := range repo.List() {
		box := "[ ]"
		if task.Done {
			box = "[x]"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %d. %s\n", box, task.ID, f.Format(task.Title))
	}

	printSuccess("task list complete (in memory only)")
	return nil
}

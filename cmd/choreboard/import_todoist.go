package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"choreboard/internal/repositories"
	"choreboard/internal/service"
	"choreboard/internal/todoist"
)

var importDryRun bool

var importTodoistCmd = &cobra.Command{
	Use:   "import-todoist",
	Short: "Copy active Todoist tasks into the chore list",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client := todoist.NewClient(cfg.Todoist.BaseURL, cfg.Todoist.Token, lg)

		remote, err := client.ListTasks(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if importDryRun {
			for _, t := range remote {
				m := t.ToModel()
				fmt.Fprintf(out, "would import %q (priority %s)\n", m.Title, *m.Priority)
			}
			return nil
		}

		db, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer db.Close()
		svc := service.NewTaskService(repositories.NewTaskRepository(db))

		imported := 0
		for _, t := range remote {
			created, err := svc.Create(ctx, t.ToModel())
			if err != nil {
				lg.Warn("skipping todoist task", zap.String("todoist_id", t.ID), zap.Error(err))
				continue
			}
			imported++
			lg.Debug("imported todoist task", zap.String("todoist_id", t.ID), zap.Int64("task_id", created.ID))
		}
		fmt.Fprintf(out, "imported %d of %d tasks\n", imported, len(remote))
		return nil
	},
}

func init() {
	importTodoistCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "print the tasks without writing them")
}

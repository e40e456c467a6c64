package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	config "todolist.com/todolist/internal/configs"
	dto "todolist.com/todolist/internal/data_models"
	repository "todolist.com/todolist/internal/repositories"
	"todolist.com/todolist/internal/services"
)

var seedForce bool

func demoTasks() []dto.CreateTaskRequest {
	completed := true
	due := "2024-12-31"
	return []dto.CreateTaskRequest{
		{
			Title:       "Example task 1",
			Description: "A completed sample task",
			Completed:   &completed,
			Tags:        []string{"example", "demo"},
		},
		{
			Title:       "Example task 2",
			Description: "A pending sample task",
			Tags:        []string{"pending", "work"},
			DueDate:     &due,
		},
		{
			Title:       "Example task 3",
			Description: "A task with several tags",
			Tags:        []string{"urgent", "review", "important"},
		},
	}
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		database, err := config.NewDatabaseClient(cfg)
		if err != nil {
			return err
		}

		taskRepo := repository.NewTaskRepository(database)
		ctx := cmd.Context()

		count, err := taskRepo.Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 && !seedForce {
			fmt.Fprintf(cmd.OutOrStdout(), "%d tasks already present, skipping (use --force to seed anyway)\n", count)
			return nil
		}

		taskService := services.NewTaskService(taskRepo, nil, nil)
		for _, req := range demoTasks() {
			task, err := taskService.CreateTask(ctx, req)
			if err != nil {
				return fmt.Errorf("seed %q: %w", req.Title, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created task %d: %s\n", task.ID, task.Title)
		}
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "seed even when tasks exist")
	rootCmd.AddCommand(seedCmd)
}

package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"todolist.com/todolist/pkg/client"
	model "todolist.com/todolist/pkg/models"
	"todolist.com/todolist/pkg/viewmodel"
)

var (
	listCompleted string
	listFrom      string
	listTo        string
	listSort      string

	addTitle       string
	addDescription string
	addTags        []string
	addDue         string

	removeConfirmed bool
)

func newViewModel() (*viewmodel.ViewModel, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return viewmodel.New(client.New(cfg.APIBaseURL), viewmodel.NewSession()), nil
}

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Manage tasks through the HTTP API",
}

var tasksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		filters, err := listFilters()
		if err != nil {
			return err
		}
		order, err := viewmodel.ParseSortOrder(listSort)
		if err != nil {
			return err
		}

		vm, err := newViewModel()
		if err != nil {
			return err
		}
		if err := vm.EnsureLoaded(cmd.Context()); err != nil {
			return err
		}

		vm.SetFilters(filters)
		vm.SetSortOrder(order)

		fmt.Fprint(cmd.OutOrStdout(), renderView(vm.View()))
		return nil
	},
}

func listFilters() (model.TaskFilters, error) {
	var filters model.TaskFilters

	if listCompleted != "" {
		completed, err := strconv.ParseBool(listCompleted)
		if err != nil {
			return filters, errors.New("--completed must be true or false")
		}
		filters.Completed = &completed
	}
	if listFrom != "" {
		from, err := model.ParseDate(listFrom)
		if err != nil {
			return filters, fmt.Errorf("--from: %w", err)
		}
		filters.DateFrom = &from
	}
	if listTo != "" {
		to, err := model.ParseDate(listTo)
		if err != nil {
			return filters, fmt.Errorf("--to: %w", err)
		}
		filters.DateTo = &to
	}

	return filters, nil
}

var tasksAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a task",
	RunE: func(cmd *cobra.Command, args []string) error {
		var tags []string
		for _, tag := range addTags {
			tags, _ = viewmodel.AddTag(tags, tag)
		}

		vm, err := newViewModel()
		if err != nil {
			return err
		}

		res := vm.AddTask(cmd.Context(), client.CreateTaskData{
			Title:       addTitle,
			Description: addDescription,
			Tags:        tags,
			DueDate:     addDue,
		})
		if !res.Success() {
			return res.Err
		}

		fmt.Fprint(cmd.OutOrStdout(), renderTask(*res.Task))
		return nil
	},
}

func setCompletedCmd(use, short string, completed bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			vm, err := newViewModel()
			if err != nil {
				return err
			}

			res := vm.EditTask(cmd.Context(), id, client.UpdateTaskData{Completed: &completed})
			if !res.Success() {
				return res.Err
			}

			fmt.Fprint(cmd.OutOrStdout(), renderTask(*res.Task))
			return nil
		},
	}
}

var tasksRemoveCmd = &cobra.Command{
	Use:   "rm ID",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}

		vm, err := newViewModel()
		if err != nil {
			return err
		}

		res := vm.RemoveTask(cmd.Context(), id, func(model.Task) bool { return removeConfirmed })
		if errors.Is(res.Err, viewmodel.ErrDeleteNotConfirmed) {
			return errors.New("refusing to delete without --yes")
		}
		if !res.Success() {
			return res.Err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "deleted task %d\n", id)
		return nil
	},
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List distinct tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		vm, err := newViewModel()
		if err != nil {
			return err
		}

		tags, err := vm.Tags(cmd.Context())
		if err != nil {
			return err
		}

		if len(tags) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("no tags"))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(tags, "\n"))
		return nil
	},
}

func parseTaskID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid task id %q", raw)
	}
	return uint(id), nil
}

func init() {
	tasksListCmd.Flags().StringVar(&listCompleted, "completed", "", "filter by completion (true|false)")
	tasksListCmd.Flags().StringVar(&listFrom, "from", "", "earliest effective date (YYYY-MM-DD)")
	tasksListCmd.Flags().StringVar(&listTo, "to", "", "latest effective date, inclusive (YYYY-MM-DD)")
	tasksListCmd.Flags().StringVar(&listSort, "sort", "desc", "sort by effective date (asc|desc)")

	tasksAddCmd.Flags().StringVar(&addTitle, "title", "", "task title")
	tasksAddCmd.Flags().StringVar(&addDescription, "description", "", "task description")
	tasksAddCmd.Flags().StringSliceVar(&addTags, "tag", nil, "tag to attach (repeatable)")
	tasksAddCmd.Flags().StringVar(&addDue, "due", "", "due date (YYYY-MM-DD)")
	_ = tasksAddCmd.MarkFlagRequired("title")

	tasksRemoveCmd.Flags().BoolVar(&removeConfirmed, "yes", false, "confirm deletion")

	tasksCmd.AddCommand(
		tasksListCmd,
		tasksAddCmd,
		setCompletedCmd("done", "Mark a task completed", true),
		setCompletedCmd("undo", "Mark a task pending", false),
		tasksRemoveCmd,
	)
	rootCmd.AddCommand(tasksCmd, tagsCmd)
}

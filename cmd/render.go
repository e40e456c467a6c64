package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	model "todolist.com/todolist/pkg/models"
	"todolist.com/todolist/pkg/viewmodel"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	tagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func renderView(view viewmodel.View) string {
	var b strings.Builder

	s := view.Stats
	fmt.Fprintf(&b, "%s\n", headerStyle.Render(fmt.Sprintf(
		"%d tasks  %d completed  %d pending  %d overdue", s.Total, s.Completed, s.Pending, s.Overdue)))
	if s.HasActiveFilters {
		fmt.Fprintf(&b, "%s\n", mutedStyle.Render(fmt.Sprintf("showing %d of %d", s.Filtered, s.Total)))
	}

	if len(view.Tasks) == 0 {
		fmt.Fprintf(&b, "%s\n", mutedStyle.Render("no tasks"))
		return b.String()
	}

	now := time.Now()
	for _, task := range view.Tasks {
		b.WriteString(renderTaskLine(task, now))
		b.WriteByte('\n')
	}
	return b.String()
}

func renderTask(task model.Task) string {
	line := renderTaskLine(task, time.Now()) + "\n"
	if task.Description != "" {
		line += "    " + mutedStyle.Render(task.Description) + "\n"
	}
	return line
}

func renderTaskLine(task model.Task, now time.Time) string {
	mark := pendingStyle.Render("[ ]")
	if task.Completed {
		mark = doneStyle.Render("[x]")
	}

	parts := []string{fmt.Sprintf("%4d", task.ID), mark, task.Title}
	if task.DueDate != nil {
		due := "due " + task.DueDate.Format("2006-01-02")
		if task.Overdue(now) {
			due = overdueStyle.Render(due + " (overdue)")
		} else {
			due = mutedStyle.Render(due)
		}
		parts = append(parts, due)
	}
	if len(task.Tags) > 0 {
		parts = append(parts, tagStyle.Render("#"+strings.Join(task.Tags, " #")))
	}

	return strings.Join(parts, "  ")
}

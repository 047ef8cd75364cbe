// Task commands: create, list, complete, update, delete, attachments.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/princewidd/widhi-productivity-hub/internal/attach"
	"github.com/princewidd/widhi-productivity-hub/internal/collection"
	"github.com/princewidd/widhi-productivity-hub/internal/models"
	"github.com/princewidd/widhi-productivity-hub/internal/render"
)

var (
	flagTaskSubject  string
	flagTaskDeadline string
	flagTaskTitle    string
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks and deadlines",
}

var taskAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.close() }()

		task, err := a.tasks.Create(args[0], flagTaskSubject, flagTaskDeadline)
		if err != nil {
			return err
		}
		fmt.Printf("Added task %d: %s\n", task.ID, task.Title)
		return nil
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks, open ones first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.close() }()

		fmt.Print(render.Tasks(a.tasks.List(flagTaskSubject), time.Now()))
		return nil
	},
}

var taskDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task completed",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return setTaskStatus(args[0], models.StatusDone) },
}

var taskTodoCmd = &cobra.Command{
	Use:   "todo <id>",
	Short: "Reopen a completed task",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return setTaskStatus(args[0], models.StatusTodo) },
}

var taskUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update task fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		a, err := newApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.close() }()

		var upd collection.TaskUpdate
		if cmd.Flags().Changed("title") {
			upd.Title = &flagTaskTitle
		}
		if cmd.Flags().Changed("subject") {
			upd.Subject = &flagTaskSubject
		}
		if cmd.Flags().Changed("deadline") {
			upd.Deadline = &flagTaskDeadline
		}
		return a.tasks.Update(id, upd)
	},
}

var taskDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		a, err := newApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.close() }()
		return a.tasks.Delete(id)
	},
}

var taskAttachCmd = &cobra.Command{
	Use:   "attach <id> <path>",
	Short: "Upload a file and attach it to a task",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		a, err := newApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.close() }()

		if _, ok := a.tasks.Get(id); !ok {
			return fmt.Errorf("no task with id %d", id)
		}

		client, err := attachClient()
		if err != nil {
			return err
		}

		f, err := os.Open(args[1])
		if err != nil {
			return fmt.Errorf("open file: %w", err)
		}
		defer f.Close()
		info, err := f.Stat()
		if err != nil {
			return fmt.Errorf("stat file: %w", err)
		}

		att, err := client.Upload(cmd.Context(), filepath.Base(args[1]), info.Size(), f)
		if err != nil {
			return err
		}
		if err := a.tasks.AddAttachment(id, att); err != nil {
			return err
		}
		fmt.Printf("Attached %s (%s)\n", att.Name, att.URL)
		return nil
	},
}

var taskDetachCmd = &cobra.Command{
	Use:   "detach <id> <index>",
	Short: "Delete an attachment from a task",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid attachment index %q", args[1])
		}
		a, err := newApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.close() }()

		task, ok := a.tasks.Get(id)
		if !ok {
			return fmt.Errorf("no task with id %d", id)
		}
		if index < 0 || index >= len(task.Files) {
			return fmt.Errorf("no attachment %d on task %d", index, id)
		}

		client, err := attachClient()
		if err != nil {
			return err
		}

		// The record is dropped only after the server confirms deletion.
		if err := client.Remove(cmd.Context(), task.Files[index].Filename); err != nil {
			return err
		}
		return a.tasks.RemoveAttachment(id, index)
	},
}

var taskSubjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "List distinct subjects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.close() }()

		for _, s := range a.tasks.Subjects() {
			fmt.Println(s)
		}
		return nil
	},
}

func setTaskStatus(rawID string, status models.TaskStatus) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.close() }()
	return a.tasks.Update(id, collection.TaskUpdate{Status: &status})
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

func attachClient() (*attach.Client, error) {
	url := resolveServerURL()
	if url == "" {
		return nil, fmt.Errorf("no attachment server configured (set --server-url or server_url in config.yaml)")
	}
	return attach.NewClient(url), nil
}

func init() {
	taskAddCmd.Flags().StringVar(&flagTaskSubject, "subject", "", "subject the task belongs to")
	taskAddCmd.Flags().StringVar(&flagTaskDeadline, "deadline", "", "deadline as YYYY-MM-DD")
	taskAddCmd.MarkFlagRequired("subject")
	taskAddCmd.MarkFlagRequired("deadline")

	taskListCmd.Flags().StringVar(&flagTaskSubject, "subject", "", "only tasks for this subject")

	taskUpdateCmd.Flags().StringVar(&flagTaskTitle, "title", "", "new title")
	taskUpdateCmd.Flags().StringVar(&flagTaskSubject, "subject", "", "new subject")
	taskUpdateCmd.Flags().StringVar(&flagTaskDeadline, "deadline", "", "new deadline as YYYY-MM-DD")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskTodoCmd)
	taskCmd.AddCommand(taskUpdateCmd)
	taskCmd.AddCommand(taskDeleteCmd)
	taskCmd.AddCommand(taskAttachCmd)
	taskCmd.AddCommand(taskDetachCmd)
	taskCmd.AddCommand(taskSubjectsCmd)
}

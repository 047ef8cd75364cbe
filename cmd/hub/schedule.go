// Schedule commands: weekly class entries and reminders.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/princewidd/widhi-productivity-hub/internal/render"
)

var (
	flagScheduleDay    int
	flagScheduleStart  string
	flagScheduleEnd    string
	flagScheduleRoom   string
	flagScheduleRemind int
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Manage the weekly class schedule",
}

var scheduleAddCmd = &cobra.Command{
	Use:   "add <subject>",
	Short: "Add a class entry",
	Long: `Add a class entry to the weekly schedule.

Days are numbered 0 (Sunday) through 6 (Saturday). Times use 24-hour
HH:MM. A reminder lead of N minutes fires a notification N minutes
before the class starts while "hub watch" is running.

Example:
  hub schedule add calculus --day 1 --start 08:00 --end 09:40 --room B201 --remind 30`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.close() }()

		s, err := a.schedules.Create(args[0], flagScheduleDay, flagScheduleStart, flagScheduleEnd, flagScheduleRoom, flagScheduleRemind)
		if err != nil {
			return err
		}
		fmt.Printf("Added schedule %d: %s\n", s.ID, s.Subject)
		return nil
	},
}

var scheduleListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the week grouped by day",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.close() }()

		fmt.Print(render.Schedules(a.schedules.List()))
		return nil
	},
}

var scheduleDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a class entry",
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
		return a.schedules.Delete(id)
	},
}

func init() {
	scheduleAddCmd.Flags().IntVar(&flagScheduleDay, "day", 0, "day of week, 0=Sunday through 6=Saturday")
	scheduleAddCmd.Flags().StringVar(&flagScheduleStart, "start", "", "start time as HH:MM")
	scheduleAddCmd.Flags().StringVar(&flagScheduleEnd, "end", "", "end time as HH:MM")
	scheduleAddCmd.Flags().StringVar(&flagScheduleRoom, "room", "", "room or location")
	scheduleAddCmd.Flags().IntVar(&flagScheduleRemind, "remind", 0, "reminder lead in minutes, 0 disables")
	scheduleAddCmd.MarkFlagRequired("day")
	scheduleAddCmd.MarkFlagRequired("start")
	scheduleAddCmd.MarkFlagRequired("end")

	scheduleCmd.AddCommand(scheduleAddCmd)
	scheduleCmd.AddCommand(scheduleListCmd)
	scheduleCmd.AddCommand(scheduleDeleteCmd)
}

// Watch command: run the reminder scanner until interrupted.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/princewidd/widhi-productivity-hub/internal/logger"
	"github.com/princewidd/widhi-productivity-hub/internal/models"
	"github.com/princewidd/widhi-productivity-hub/internal/reminder"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run in the foreground and fire schedule reminders",
	Long: `Watch scans the weekly schedule once a minute and prints a reminder
shortly before each class with a reminder lead starts. Reminders fire at
most once per class per day, also across restarts.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.close() }()

		log := logger.New()
		if err := log.Init("Info"); err != nil {
			return err
		}
		defer func() { _ = log.Log.Sync() }()

		notify := reminder.NotifierFunc(func(s models.Schedule, startsIn time.Duration) {
			fmt.Printf("Reminder: %s starts at %s (in %d minutes)", s.Subject, s.Start, int(startsIn.Minutes()))
			if s.Room != "" {
				fmt.Printf(", room %s", s.Room)
			}
			fmt.Println()
		})
		scanner := reminder.NewScanner(a.schedules, a.store, notify, log.Log)

		scheduler := reminder.NewScheduler(time.Local)
		if _, err := scheduler.ScheduleScan(time.Minute, scanner); err != nil {
			return err
		}
		scheduler.Start()
		defer scheduler.Stop()

		// Scan immediately so a reminder due right now is not missed.
		scanner.Scan(time.Now())

		fmt.Println("Watching schedules, Ctrl-C to stop.")
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		return nil
	},
}

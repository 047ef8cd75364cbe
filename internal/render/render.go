// Package render turns derived collection views into plain-text output.
// Every function is pure: it formats the view it is given and never
// touches collection state.
package render

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/princewidd/widhi-productivity-hub/internal/collection"
	"github.com/princewidd/widhi-productivity-hub/internal/models"
)

// DaysLeft describes how far the exchange-format deadline is from now,
// comparing calendar dates only. An unparseable deadline yields "".
func DaysLeft(deadline string, now time.Time) string {
	due, err := models.ParseDate(deadline)
	if err != nil {
		return ""
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(math.Round(due.Sub(today).Hours() / 24))

	switch {
	case days > 1:
		return fmt.Sprintf("%d days left", days)
	case days == 1:
		return "1 day left"
	case days == 0:
		return "due today"
	case days == -1:
		return "1 day overdue"
	default:
		return fmt.Sprintf("%d days overdue", -days)
	}
}

// Currency formats an amount in the smallest rupiah unit, with dot
// thousand separators: 1234567 -> "Rp 1.234.567".
func Currency(amount int64) string {
	digits := fmt.Sprintf("%d", amount)
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}

	var sb strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte('.')
		}
		sb.WriteRune(r)
	}
	if neg {
		return "Rp -" + sb.String()
	}
	return "Rp " + sb.String()
}

// Tasks renders a task view, one line per task with a completion mark,
// deadline distance, and indented attachment lines.
func Tasks(tasks []models.Task, now time.Time) string {
	if len(tasks) == 0 {
		return "No tasks.\n"
	}

	var sb strings.Builder
	for _, task := range tasks {
		mark := " "
		if task.Status == models.StatusDone {
			mark = "x"
		}
		sb.WriteString(fmt.Sprintf("[%s] %d  %s - %s (due %s", mark, task.ID, task.Title, task.Subject, task.Deadline))
		if left := DaysLeft(task.Deadline, now); left != "" {
			sb.WriteString(", " + left)
		}
		sb.WriteString(")\n")
		for i, file := range task.Files {
			sb.WriteString(fmt.Sprintf("      %d: %s (%s) %s\n", i, file.Name, byteSize(file.Size), file.URL))
		}
	}
	return sb.String()
}

// Schedules renders the weekly schedule grouped by day.
func Schedules(schedules []models.Schedule) string {
	if len(schedules) == 0 {
		return "No schedules.\n"
	}

	var sb strings.Builder
	lastDay := -1
	for _, s := range schedules {
		if s.Day != lastDay {
			sb.WriteString(time.Weekday(s.Day).String() + "\n")
			lastDay = s.Day
		}
		sb.WriteString(fmt.Sprintf("  %d  %s-%s  %s", s.ID, s.Start, s.End, s.Subject))
		if s.Room != "" {
			sb.WriteString(fmt.Sprintf("  (%s)", s.Room))
		}
		if s.ReminderMinutes > 0 {
			sb.WriteString(fmt.Sprintf("  [remind %dm before]", s.ReminderMinutes))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Expenses renders an expense view, one line per record, newest first as
// delivered by the manager.
func Expenses(expenses []models.Expense) string {
	if len(expenses) == 0 {
		return "No expenses.\n"
	}

	var sb strings.Builder
	for _, e := range expenses {
		sb.WriteString(fmt.Sprintf("%d  %s  %12s  %-12s %s\n", e.ID, e.Date, Currency(e.Amount), e.Category, e.Description))
	}
	return sb.String()
}

// BudgetSummary renders the aggregate lines shown under an expense view.
func BudgetSummary(sum collection.Summary) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total:          %s\n", Currency(sum.Total)))
	if sum.TopCategory != "" {
		sb.WriteString(fmt.Sprintf("Top category:   %s (%s)\n", sum.TopCategory, Currency(sum.ByCategory[sum.TopCategory])))
	} else {
		sb.WriteString("Top category:   -\n")
	}
	sb.WriteString(fmt.Sprintf("Daily average:  %s\n", Currency(int64(math.Round(sum.DailyAverage)))))
	return sb.String()
}

// Notes renders a note view with title, category, and modification date
// headers.
func Notes(notes []models.Note) string {
	if len(notes) == 0 {
		return "No notes.\n"
	}

	var sb strings.Builder
	for i, n := range notes {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(fmt.Sprintf("%d  %s [%s] (%s)\n", n.ID, n.Title, n.Category, n.Date))
		sb.WriteString(n.Body + "\n")
	}
	return sb.String()
}

// Quote renders a motivational quote with its author.
func Quote(content, author string) string {
	return fmt.Sprintf("%q\n  - %s\n", content, author)
}

func byteSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

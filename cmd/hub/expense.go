// Expense commands: spending records with period filters and totals.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/princewidd/widhi-productivity-hub/internal/collection"
	"github.com/princewidd/widhi-productivity-hub/internal/render"
)

var (
	flagExpenseCategory    string
	flagExpenseDate        string
	flagExpenseDescription string
	flagExpensePeriod      string
)

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Track spending",
}

var expenseAddCmd = &cobra.Command{
	Use:   "add <amount>",
	Short: "Record an expense",
	Long: `Record an expense in whole rupiah.

Example:
  hub expense add 25000 --category food --date 2025-03-12
  hub expense add 150000 --category books --date 2025-03-12 --desc "algorithms textbook"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := parseID(args[0])
		if err != nil {
			return fmt.Errorf("invalid amount %q", args[0])
		}
		a, err := newApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.close() }()

		date := flagExpenseDate
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}
		e, err := a.expenses.Create(amount, flagExpenseCategory, date, flagExpenseDescription)
		if err != nil {
			return err
		}
		fmt.Printf("Recorded expense %d: %s %s\n", e.ID, render.Currency(e.Amount), e.Category)
		return nil
	},
}

var expenseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List expenses, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		period, err := parsePeriod(flagExpensePeriod)
		if err != nil {
			return err
		}
		a, err := newApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.close() }()

		now := time.Now()
		fmt.Print(render.Expenses(a.expenses.List(period, flagExpenseCategory, now)))
		fmt.Println()
		fmt.Print(render.BudgetSummary(a.expenses.Summarize(period, flagExpenseCategory, now)))
		return nil
	},
}

var expenseDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an expense",
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
		return a.expenses.Delete(id)
	},
}

var expenseCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List distinct categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.close() }()

		for _, c := range a.expenses.Categories() {
			fmt.Println(c)
		}
		return nil
	},
}

func parsePeriod(raw string) (collection.Period, error) {
	switch p := collection.Period(raw); p {
	case collection.PeriodAll, collection.PeriodToday, collection.PeriodThisWeek,
		collection.PeriodThisMonth, collection.PeriodLastMonth:
		return p, nil
	default:
		return "", fmt.Errorf("unknown period %q (valid: all, today, this-week, this-month, last-month)", raw)
	}
}

func init() {
	expenseAddCmd.Flags().StringVar(&flagExpenseCategory, "category", "", "spending category")
	expenseAddCmd.Flags().StringVar(&flagExpenseDate, "date", "", "date as YYYY-MM-DD (default: today)")
	expenseAddCmd.Flags().StringVar(&flagExpenseDescription, "desc", "", "description (default: \"<category> expense\")")
	expenseAddCmd.MarkFlagRequired("category")

	expenseListCmd.Flags().StringVar(&flagExpensePeriod, "period", "all", "all, today, this-week, this-month, or last-month")
	expenseListCmd.Flags().StringVar(&flagExpenseCategory, "category", "", "only this category")

	expenseCmd.AddCommand(expenseAddCmd)
	expenseCmd.AddCommand(expenseListCmd)
	expenseCmd.AddCommand(expenseDeleteCmd)
	expenseCmd.AddCommand(expenseCategoriesCmd)
}

// Note commands: freeform notes with category and text search.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/princewidd/widhi-productivity-hub/internal/collection"
	"github.com/princewidd/widhi-productivity-hub/internal/render"
)

var (
	flagNoteCategory string
	flagNoteSearch   string
	flagNoteTitle    string
	flagNoteBody     string
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage freeform notes",
}

var noteAddCmd = &cobra.Command{
	Use:   "add <title> <body>",
	Short: "Add a note",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.close() }()

		n, err := a.notes.Create(args[0], flagNoteCategory, args[1], time.Now())
		if err != nil {
			return err
		}
		fmt.Printf("Added note %d: %s\n", n.ID, n.Title)
		return nil
	},
}

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.close() }()

		fmt.Print(render.Notes(a.notes.List(flagNoteCategory, flagNoteSearch)))
		return nil
	},
}

var noteUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update note fields and refresh its date",
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

		var upd collection.NoteUpdate
		if cmd.Flags().Changed("title") {
			upd.Title = &flagNoteTitle
		}
		if cmd.Flags().Changed("category") {
			upd.Category = &flagNoteCategory
		}
		if cmd.Flags().Changed("body") {
			upd.Body = &flagNoteBody
		}
		return a.notes.Update(id, upd, time.Now())
	},
}

var noteDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a note",
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
		return a.notes.Delete(id)
	},
}

var noteCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List distinct categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.close() }()

		for _, c := range a.notes.Categories() {
			fmt.Println(c)
		}
		return nil
	},
}

func init() {
	noteAddCmd.Flags().StringVar(&flagNoteCategory, "category", "", "note category")
	noteAddCmd.MarkFlagRequired("category")

	noteListCmd.Flags().StringVar(&flagNoteCategory, "category", "", "only this category")
	noteListCmd.Flags().StringVar(&flagNoteSearch, "search", "", "case-insensitive match on title or body")

	noteUpdateCmd.Flags().StringVar(&flagNoteTitle, "title", "", "new title")
	noteUpdateCmd.Flags().StringVar(&flagNoteCategory, "category", "", "new category")
	noteUpdateCmd.Flags().StringVar(&flagNoteBody, "body", "", "new body")

	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteUpdateCmd)
	noteCmd.AddCommand(noteDeleteCmd)
	noteCmd.AddCommand(noteCategoriesCmd)
}

// Backup commands: export all collections, import with replace or merge.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/princewidd/widhi-productivity-hub/internal/backup"
)

var flagImportMode string

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export and import all data",
}

var backupExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write an export document, to stdout when no file is given",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.close() }()

		raw, err := a.engine.ExportJSON(time.Now())
		if err != nil {
			return err
		}
		if len(args) == 0 {
			fmt.Println(string(raw))
			return nil
		}
		if err := os.WriteFile(args[0], raw, 0o644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		fmt.Printf("Exported to %s\n", args[0])
		return nil
	},
}

var backupImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import an export document",
	Long: `Import an export document produced by "hub backup export".

With --mode replace, current data is discarded and the document is
installed as-is. With --mode merge, imported records are added next to
existing ones under fresh ids.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := backup.ImportMode(flagImportMode)
		if mode != backup.ModeReplace && mode != backup.ModeMerge {
			return fmt.Errorf("unknown mode %q (valid: replace, merge)", flagImportMode)
		}

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read import: %w", err)
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.close() }()

		if err := a.engine.Import(raw, mode, time.Now()); err != nil {
			return err
		}
		fmt.Println("Import complete")
		return nil
	},
}

func init() {
	backupImportCmd.Flags().StringVar(&flagImportMode, "mode", "merge", "replace or merge")

	backupCmd.AddCommand(backupExportCmd)
	backupCmd.AddCommand(backupImportCmd)
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/leadhub/app/repositories"
	"github.com/shashiranjanraj/leadhub/app/services"
	"github.com/shashiranjanraj/leadhub/config"
	"github.com/shashiranjanraj/leadhub/internal/importer"
	"github.com/shashiranjanraj/leadhub/internal/store"
	"github.com/shashiranjanraj/leadhub/pkg/storage"
)

var importURLFlag string

// leadhub import <file> — run a bulk lead import from the terminal.
// Progress prints line by line, same messages the web upload streams.
var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Bulk import leads from a CSV or Excel file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && importURLFlag == "" {
			return fmt.Errorf("import: pass a file path or --url")
		}

		if err := config.Load(); err != nil {
			return err
		}
		ctx := context.Background()
		if err := store.Connect(ctx); err != nil {
			return err
		}
		defer store.Close(ctx)
		storage.Connect()

		svc := services.NewImportService(repositories.NewLeadRepository())
		sink := func(e importer.Event) { fmt.Println(e.Message) }

		var err error
		if importURLFlag != "" {
			_, err = svc.FromURL(ctx, importURLFlag, sink)
		} else {
			var f *os.File
			f, err = os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			_, err = svc.FromUpload(ctx, args[0], f, sink)
		}
		return err
	},
}

// Command reviewlog exports the posted-comment history database as CSV or
// a sanitized HTML report.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	sqliteadapter "github.com/ericfisherdev/prreview/internal/adapter/driven/sqlite"
	"github.com/ericfisherdev/prreview/internal/adapter/driving/export"
	"github.com/ericfisherdev/prreview/internal/domain/port/driven"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		format  = flag.String("format", "csv", "output format: csv or html")
		repo    = flag.String("repo", "", "filter by repository (owner/repo)")
		pr      = flag.Int("pr", 0, "filter by pull request number")
		outPath = flag.String("o", "", "output file (default stdout)")
	)
	flag.Parse()

	dbPath := os.Getenv("PRREVIEW_DB_PATH")
	if dbPath == "" {
		dbPath = "prreview.db"
	}

	db, err := sqliteadapter.NewDB(dbPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()
	if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
		return err
	}

	store := sqliteadapter.NewCommentRepo(db)
	comments, err := store.ListPostedComments(context.Background(), driven.PostedCommentFilter{
		Repo:     *repo,
		PRNumber: *pr,
	})
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch *format {
	case "csv":
		return export.WriteCSV(out, comments)
	case "html":
		return export.WriteHTML(out, comments)
	default:
		return fmt.Errorf("unknown format %q: expected csv or html", *format)
	}
}

// Package export renders posted-comment history for the reviewlog binary.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/ericfisherdev/prreview/internal/domain/model"
)

// csvHeader is the column order of the CSV export.
var csvHeader = []string{"repo", "pr_number", "path", "line", "body", "model", "posted_at"}

// WriteCSV writes the comments as CSV with a header row. Timestamps are
// formatted as UTC RFC 3339.
func WriteCSV(w io.Writer, comments []model.PostedComment) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, c := range comments {
		record := []string{
			c.Repo,
			strconv.Itoa(c.PRNumber),
			c.Path,
			strconv.Itoa(c.Line),
			c.Body,
			c.Model,
			c.PostedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

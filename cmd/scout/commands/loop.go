package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/couchcryptid/hackathon-scout/internal/domain"
	"github.com/couchcryptid/hackathon-scout/internal/export"
	"github.com/couchcryptid/hackathon-scout/internal/observability"
	"github.com/couchcryptid/hackathon-scout/internal/pipeline"
)

const banner = `Enter a region to find 2024-25 community hackathons.
Commands: :history  :csv  :xls  :quit`

// runLoop drives the interactive prompt until EOF, :quit, or cancellation.
func runLoop(ctx context.Context, in io.Reader, out io.Writer, p *pipeline.Pipeline, metrics *observability.Metrics) error {
	fmt.Fprintln(out, banner)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "region> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			// Empty input is silently ignored.
		case ":quit", ":q":
			return nil
		case ":history":
			renderHistory(out, p.History())
		case ":csv":
			exportActive(out, p, metrics, "csv")
		case ":xls":
			exportActive(out, p, metrics, "xls")
		default:
			set, err := p.Lookup(ctx, line)
			if errors.Is(err, domain.ErrEmptyRegion) {
				continue
			}
			if err != nil {
				fmt.Fprintf(out, "lookup failed: %v\n", err)
				continue
			}
			renderRecords(out, set)
		}
	}
}

// renderRecords prints a condensed table; the exports carry the full ten
// columns.
func renderRecords(w io.Writer, set domain.RecordSet) {
	fmt.Fprintf(w, "%-30s %-24s %-18s %-12s %s\n",
		"HACKATHON", "COMMUNITY", "LEADER", "PHONE", "EMAIL")
	for _, rec := range set {
		fmt.Fprintf(w, "%-30s %-24s %-18s %-12s %s\n",
			truncate(rec.HackathonName, 30),
			truncate(rec.CommunityName, 24),
			truncate(rec.LeaderName, 18),
			truncate(rec.LeaderPhone, 12),
			rec.LeaderEmail,
		)
	}

	noun := "record"
	if len(set) != 1 {
		noun = "records"
	}
	fmt.Fprintf(w, "\n%d %s found; use :csv or :xls for all fields\n", len(set), noun)
}

func renderHistory(w io.Writer, regions []string) {
	if len(regions) == 0 {
		fmt.Fprintln(w, "no regions looked up yet")
		return
	}
	fmt.Fprintln(w, "Recent regions (newest first):")
	for i, r := range regions {
		fmt.Fprintf(w, "%2d. %s\n", i+1, r)
	}
}

func exportActive(out io.Writer, p *pipeline.Pipeline, metrics *observability.Metrics, format string) {
	st := p.Snapshot()
	if st.Viewing == "" || len(st.Active) == 0 {
		fmt.Fprintln(out, "nothing to export yet; look up a region first")
		return
	}

	var data []byte
	switch format {
	case "csv":
		data = export.EncodeCSV(st.Active)
	case "xls":
		data = export.EncodeSpreadsheet(st.Active)
	}

	name := export.FileName(st.Viewing, format)
	if err := os.WriteFile(name, data, 0o644); err != nil {
		fmt.Fprintf(out, "export failed: %v\n", err)
		return
	}

	metrics.Exports.WithLabelValues(format).Inc()
	fmt.Fprintf(out, "wrote %s (%d records)\n", name, len(st.Active))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

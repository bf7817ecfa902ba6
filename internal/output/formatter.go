// Package output renders scan results as aligned tables or JSON. Every
// document carries the mode and granularity labels of the algorithm that
// produced it so downstream consumers can tell results apart.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/gitgauge/gitgauge-go/internal/churn"
	"github.com/gitgauge/gitgauge-go/internal/ownership"
)

// Format selects the rendering style.
type Format int

const (
	FormatTable Format = iota
	FormatJSON
)

// Detect picks the output format: JSON when forced or when stdout is not a
// terminal, aligned tables otherwise.
func Detect(forceJSON bool) Format {
	if forceJSON {
		return FormatJSON
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return FormatJSON
	}
	return FormatTable
}

// OwnershipDoc is a ranked ownership result set.
type OwnershipDoc struct {
	Mode       ownership.Mode        `json:"mode"`
	By         ownership.Granularity `json:"by"`
	Threshold  float64               `json:"threshold"`
	Matches    []ownership.Score     `json:"matches"`
	Candidates []ownership.Score     `json:"candidates"`
}

// ChurnDoc is a ranked churn result set.
type ChurnDoc struct {
	By         ownership.Granularity `json:"by"`
	WindowDays int                   `json:"window_days"`
	Depth      int                   `json:"depth,omitempty"`
	Rows       []churn.Entry         `json:"rows"`
}

// WriteJSON renders any document as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Table writes an aligned table with the given header and rows.
func Table(w io.Writer, header []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// OwnershipTable renders the candidates of an ownership document, marking
// rows above the threshold.
func OwnershipTable(w io.Writer, doc *OwnershipDoc) error {
	fmt.Fprintf(w, "Ownership (%s mode, by %s): %d above threshold %.2f\n",
		doc.Mode, doc.By, len(doc.Matches), doc.Threshold)
	header := []string{"", "Path", "Top author", "Share", "Total"}
	rows := make([][]string, 0, len(doc.Candidates))
	for _, s := range doc.Candidates {
		flag := ""
		if s.Ratio > doc.Threshold {
			flag = "!"
		}
		rows = append(rows, []string{
			flag,
			s.Path,
			s.TopAuthor,
			fmt.Sprintf("%.1f%%", s.Ratio*100),
			fmt.Sprintf("%d", s.Total),
		})
	}
	return Table(w, header, rows)
}

// ChurnTable renders a churn document.
func ChurnTable(w io.Writer, doc *ChurnDoc) error {
	if doc.By == ownership.ByDir {
		fmt.Fprintf(w, "Churn (last %d days), by directory (depth %d)\n", doc.WindowDays, doc.Depth)
	} else {
		fmt.Fprintf(w, "Churn (last %d days), by file\n", doc.WindowDays)
	}
	header := []string{"Path", "Churn", "Adds", "Dels", "Touches"}
	rows := make([][]string, 0, len(doc.Rows))
	for _, e := range doc.Rows {
		rows = append(rows, []string{
			e.Path,
			fmt.Sprintf("%.1f", e.Churn),
			fmt.Sprintf("%d", e.Adds),
			fmt.Sprintf("%d", e.Dels),
			fmt.Sprintf("%d", e.Touches),
		})
	}
	return Table(w, header, rows)
}

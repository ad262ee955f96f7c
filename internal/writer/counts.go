// =============================================================================
// Escheatment Mailing Preparation - Counts Report
// =============================================================================
//
// Per-category record counts for the run, printed to the operator and
// persisted next to the other artifacts. The counts are the first thing
// checked when a mailing run is signed off, so the layout is stable.
//
// =============================================================================

package writer

import (
	"fmt"
	"os"
	"strings"
)

// Counts holds the per-category record counts for one batch.
type Counts struct {
	Domestic int
	Mexico   int
	Canada   int
	Other    int
}

// Foreign is the total of the three foreign categories.
func (c Counts) Foreign() int {
	return c.Mexico + c.Canada + c.Other
}

// Total is the full batch size.
func (c Counts) Total() int {
	return c.Domestic + c.Foreign()
}

// RenderCounts formats the counts report for the given input file name.
func RenderCounts(filename string, counts Counts) string {
	return strings.Join([]string{
		fmt.Sprintf("Filename: %s", filename),
		fmt.Sprintf("Domestic count: %d", counts.Domestic),
		fmt.Sprintf("Foreign count: %d", counts.Foreign()),
		fmt.Sprintf("Total Records: %d", counts.Total()),
		"",
		fmt.Sprintf("Mexico count: %d", counts.Mexico),
		fmt.Sprintf("Canada count: %d", counts.Canada),
		fmt.Sprintf("Other count: %d", counts.Other),
	}, "\r\n")
}

// WriteCounts persists the counts report to path.
func WriteCounts(path, filename string, counts Counts) error {
	if err := os.WriteFile(path, []byte(RenderCounts(filename, counts)), 0644); err != nil {
		return fmt.Errorf("failed to write counts report: %w", err)
	}
	return nil
}

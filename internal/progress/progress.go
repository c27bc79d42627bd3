// Package progress derives completion figures from the catalog and answers.
package progress

import (
	"fmt"
	"strings"

	"diagnostic-canvas/internal/catalog"
)

// Stats is the filled/total ratio of a canvas.
type Stats struct {
	Filled  int
	Total   int
	Percent int
}

// Calculate counts blocks whose trimmed answer is non-empty. Completed
// flags are deliberately not part of the count.
func Calculate(blocks []catalog.Block, answers map[string]string) Stats {
	stats := Stats{Total: len(blocks)}
	for _, b := range blocks {
		if strings.TrimSpace(answers[b.ID]) != "" {
			stats.Filled++
		}
	}
	stats.Percent = Percent(stats.Filled, stats.Total)
	return stats
}

// Percent rounds filled/total*100 half up using integer arithmetic.
func Percent(filled, total int) int {
	if total <= 0 || filled <= 0 {
		return 0
	}
	if filled >= total {
		return 100
	}
	return (200*filled + total) / (2 * total)
}

// Ratio returns Percent as a 0..1 float for progress bars.
func (s Stats) Ratio() float64 {
	return float64(s.Percent) / 100
}

func (s Stats) String() string {
	return fmt.Sprintf("%d/%d (%d%%)", s.Filled, s.Total, s.Percent)
}

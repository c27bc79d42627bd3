package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"diagnostic-canvas/internal/catalog"
	"diagnostic-canvas/internal/progress"
	"diagnostic-canvas/internal/storage"
)

const (
	// NoAnswer replaces blank answers in the report.
	NoAnswer = "[Sin respuesta]"
	// Filename is the fixed name of the exported report.
	Filename = "canvas-diagnostico.txt"
)

// Build renders the plain-text report: title, progress line, a blank line
// and then four lines per block (heading, question, answer, blank).
func Build(title string, blocks []catalog.Block, answers map[string]string) string {
	stats := progress.Calculate(blocks, answers)

	lines := make([]string, 0, 3+4*len(blocks))
	lines = append(lines,
		title,
		fmt.Sprintf("Progreso: %s", stats),
		"",
	)

	for _, b := range blocks {
		answer := strings.TrimSpace(answers[b.ID])
		if answer == "" {
			answer = NoAnswer
		}
		lines = append(lines,
			fmt.Sprintf("%s %s", b.Number, b.Title),
			b.Question,
			answer,
			"",
		)
	}

	return strings.Join(lines, "\n")
}

// BuildCanvas renders the report for the embedded catalog.
func BuildCanvas(answers map[string]string) string {
	return Build(catalog.Title(), catalog.Blocks(), answers)
}

// Export writes the canvas report to dir/Filename as UTF-8 and returns
// the written path.
func Export(dir string, answers map[string]string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create export directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, Filename)
	if err := storage.WriteFileAtomic(path, []byte(BuildCanvas(answers))); err != nil {
		return "", fmt.Errorf("export report: %w", err)
	}
	return path, nil
}

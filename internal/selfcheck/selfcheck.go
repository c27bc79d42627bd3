// Package selfcheck verifies the catalog, progress and report invariants
// against the running build.
package selfcheck

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"diagnostic-canvas/internal/answers"
	"diagnostic-canvas/internal/catalog"
	"diagnostic-canvas/internal/progress"
	"diagnostic-canvas/internal/report"
	"diagnostic-canvas/internal/storage"
)

// Result is the outcome of one check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

type check struct {
	name string
	run  func() error
}

var checks = []check{
	{"catalog has 12 valid blocks", checkCatalog},
	{"progress stays within bounds", checkProgressBounds},
	{"answers survive save and reload", checkRoundTrip},
	{"empty report lists every block", checkEmptyReport},
	{"answer follows its question", checkAnswerAdjacent},
	{"report is deterministic", checkIdempotent},
	{"trimmed answer counts as filled", checkTrimmedScenario},
	{"completed flag does not count as filled", checkCompletedScenario},
}

// Run executes every check. It never stops early.
func Run(logger *zap.Logger) []Result {
	if logger == nil {
		logger = zap.NewNop()
	}

	results := make([]Result, 0, len(checks))
	for _, c := range checks {
		res := Result{Name: c.name, Passed: true}
		if err := c.run(); err != nil {
			res.Passed = false
			res.Detail = err.Error()
			logger.Warn("self-check failed", zap.String("check", c.name), zap.Error(err))
		}
		results = append(results, res)
	}
	return results
}

// Passed reports whether every result passed.
func Passed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}

func checkCatalog() error {
	return catalog.Validate(catalog.Blocks())
}

func checkProgressBounds() error {
	blocks := catalog.Blocks()
	filled := map[string]string{}
	for i := 0; i <= len(blocks); i++ {
		s := progress.Calculate(blocks, filled)
		if s.Filled < 0 || s.Filled > s.Total {
			return fmt.Errorf("filled %d outside [0,%d]", s.Filled, s.Total)
		}
		if s.Percent < 0 || s.Percent > 100 {
			return fmt.Errorf("percent %d outside [0,100]", s.Percent)
		}
		if s.Total != catalog.Size {
			return fmt.Errorf("total is %d, expected %d", s.Total, catalog.Size)
		}
		if i < len(blocks) {
			filled[blocks[i].ID] = "x"
		}
	}
	return nil
}

func checkRoundTrip() error {
	mem := storage.NewMemoryStorage()
	store := answers.NewStore(mem, answers.DefaultKey, nil, nil)
	if err := store.SetAnswer("b1", "ok"); err != nil {
		return err
	}
	if err := store.ToggleComplete("b1"); err != nil {
		return err
	}

	reloaded := answers.NewStore(mem, answers.DefaultKey, nil, nil)
	reloaded.Load()
	if got := reloaded.Answer("b1"); got != "ok" {
		return fmt.Errorf("reloaded answer is %q", got)
	}
	if !reloaded.IsCompleted("b1") {
		return fmt.Errorf("reloaded state lost the completed flag")
	}
	return nil
}

func checkEmptyReport() error {
	out := report.BuildCanvas(nil)
	for _, want := range []string{catalog.Title(), "01.", "12."} {
		if !strings.Contains(out, want) {
			return fmt.Errorf("report misses %q", want)
		}
	}
	if strings.Contains(out, "undefined") || strings.Contains(out, "<nil>") {
		return fmt.Errorf("report contains an unresolved value")
	}
	return nil
}

func checkAnswerAdjacent() error {
	b1, err := catalog.Lookup("b1")
	if err != nil {
		return err
	}
	out := report.BuildCanvas(map[string]string{"b1": "  respuesta de prueba "})
	if !strings.Contains(out, b1.Question+"\nrespuesta de prueba\n") {
		return fmt.Errorf("answer is not on the line after the question")
	}
	return nil
}

func checkIdempotent() error {
	in := map[string]string{"b1": "uno", "b6": "seis", "b12": "doce"}
	if report.BuildCanvas(in) != report.BuildCanvas(in) {
		return fmt.Errorf("two builds differ")
	}
	return nil
}

func checkTrimmedScenario() error {
	in := map[string]string{"b5": "  Necesita mayor automatización  "}
	s := progress.Calculate(catalog.Blocks(), in)
	if s.Filled != 1 || s.Percent != 8 {
		return fmt.Errorf("got %s, expected 1/12 (8%%)", s)
	}

	out := report.BuildCanvas(in)
	if !strings.Contains(out, "\nNecesita mayor automatización\n") {
		return fmt.Errorf("trimmed answer missing from report")
	}
	if n := strings.Count(out, report.NoAnswer); n != catalog.Size-1 {
		return fmt.Errorf("found %d placeholders, expected %d", n, catalog.Size-1)
	}
	return nil
}

func checkCompletedScenario() error {
	store := answers.NewStore(storage.NewMemoryStorage(), answers.DefaultKey, nil, nil)
	if err := store.ToggleComplete("b2"); err != nil {
		return err
	}
	if s := progress.Calculate(catalog.Blocks(), store.Answers()); s.Filled != 0 {
		return fmt.Errorf("filled is %d, expected 0", s.Filled)
	}
	if !store.VisuallyComplete("b2") {
		return fmt.Errorf("b2 is not shown as complete")
	}
	return nil
}

package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diagnostic-canvas/internal/catalog"
)

func TestBuild_EmptyAnswers(t *testing.T) {
	out := BuildCanvas(nil)

	assert.True(t, strings.HasPrefix(out, catalog.Title()+"\n"))
	assert.Contains(t, out, "Progreso: 0/12 (0%)")
	assert.Contains(t, out, "01.")
	assert.Contains(t, out, "12.")
	assert.NotContains(t, out, "undefined")
	assert.NotContains(t, out, "<nil>")
	assert.Equal(t, 12, strings.Count(out, NoAnswer))
}

func TestBuild_Layout(t *testing.T) {
	blocks := catalog.Blocks()
	out := Build("T", blocks, map[string]string{"b1": " uno "})
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 3+4*len(blocks))
	assert.Equal(t, "T", lines[0])
	assert.Equal(t, "Progreso: 1/12 (8%)", lines[1])
	assert.Equal(t, "", lines[2])
	assert.Equal(t, blocks[0].Number+" "+blocks[0].Title, lines[3])
	assert.Equal(t, blocks[0].Question, lines[4])
	assert.Equal(t, "uno", lines[5])
	assert.Equal(t, "", lines[6])
	assert.Equal(t, blocks[1].Question, lines[8])
	assert.Equal(t, NoAnswer, lines[9])
}

func TestBuild_AnswerFollowsQuestion(t *testing.T) {
	b1, err := catalog.Lookup("b1")
	require.NoError(t, err)

	out := BuildCanvas(map[string]string{"b1": "\n  Vender café de especialidad \t"})
	assert.Contains(t, out, b1.Question+"\nVender café de especialidad\n")
}

func TestBuild_Scenario(t *testing.T) {
	b5, err := catalog.Lookup("b5")
	require.NoError(t, err)

	out := BuildCanvas(map[string]string{"b5": "  Necesita mayor automatización  "})
	assert.Contains(t, out, "Progreso: 1/12 (8%)")
	assert.Contains(t, out, b5.Question+"\nNecesita mayor automatización\n")
	assert.NotContains(t, out, "  Necesita")
	assert.Equal(t, 11, strings.Count(out, NoAnswer))
}

func TestBuild_Idempotent(t *testing.T) {
	answers := map[string]string{"b1": "a", "b7": "b", "b12": "c"}
	assert.Equal(t, BuildCanvas(answers), BuildCanvas(answers))
}

func TestBuild_DoesNotAlterCatalog(t *testing.T) {
	before := catalog.Blocks()
	BuildCanvas(map[string]string{"b1": "01. hack"})
	assert.Equal(t, before, catalog.Blocks())
}

func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	answers := map[string]string{"b2": "clientes"}

	path, err := Export(dir, answers)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, Filename), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, BuildCanvas(answers), string(data))
}

package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

var (
	canvasTitle string
	blocks      []Block
	index       map[string]int
)

func init() {
	doc, err := parse(catalogYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded catalog is invalid: %v", err))
	}
	canvasTitle = doc.Title
	blocks = doc.Blocks
	index = make(map[string]int, len(blocks))
	for i, b := range blocks {
		index[b.ID] = i
	}
}

// parse decodes and validates a catalog document
func parse(data []byte) (*document, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog yaml: %w", err)
	}
	if err := Validate(doc.Blocks); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}
	if strings.TrimSpace(doc.Title) == "" {
		return nil, fmt.Errorf("catalog title must not be empty")
	}
	return &doc, nil
}

// Title returns the canvas name used in headers and reports.
func Title() string {
	return canvasTitle
}

// Blocks returns the ordered catalog. Every call returns a fresh copy.
func Blocks() []Block {
	out := make([]Block, len(blocks))
	copy(out, blocks)
	return out
}

// Lookup returns the block with the given id.
func Lookup(id string) (Block, error) {
	i, ok := index[id]
	if !ok {
		return Block{}, fmt.Errorf("%w: %q", ErrUnknownBlock, id)
	}
	return blocks[i], nil
}

// Index returns the catalog position of id, or -1.
func Index(id string) int {
	if i, ok := index[id]; ok {
		return i
	}
	return -1
}

// Contains reports whether id belongs to the catalog.
func Contains(id string) bool {
	_, ok := index[id]
	return ok
}

// Validate checks the structural invariants of a block list: exact size,
// unique ids, "NN." numbering in order, non-empty texts and a question
// mark in every question.
func Validate(list []Block) error {
	if len(list) != Size {
		return fmt.Errorf("catalog must have %d blocks, got %d", Size, len(list))
	}

	seen := make(map[string]bool, len(list))
	for i, block := range list {
		if strings.TrimSpace(block.ID) == "" {
			return fmt.Errorf("block %d must have an id", i+1)
		}
		if seen[block.ID] {
			return fmt.Errorf("duplicate block id %q", block.ID)
		}
		seen[block.ID] = true

		expected := fmt.Sprintf("%02d.", i+1)
		if block.Number != expected {
			return fmt.Errorf("block %q has number %q, expected %q", block.ID, block.Number, expected)
		}

		if strings.TrimSpace(block.Title) == "" {
			return fmt.Errorf("block %q must have a title", block.ID)
		}

		if strings.TrimSpace(block.Question) == "" {
			return fmt.Errorf("block %q must have a question", block.ID)
		}

		if !HasInterrogative(block.Question) {
			return fmt.Errorf("block %q question has no question mark", block.ID)
		}
	}

	return nil
}

// HasInterrogative reports whether s contains '?' or '¿'.
func HasInterrogative(s string) bool {
	return strings.ContainsAny(s, "?¿")
}

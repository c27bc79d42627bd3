package catalog

import "errors"

// Size is the fixed number of blocks in the canvas.
const Size = 12

// ErrUnknownBlock is returned for ids that are not part of the catalog.
var ErrUnknownBlock = errors.New("unknown block")

// Block is one fixed survey question of the canvas.
type Block struct {
	ID       string `yaml:"id"`
	Number   string `yaml:"number"`
	Title    string `yaml:"title"`
	Question string `yaml:"question"`
}

// document mirrors catalog.yaml.
type document struct {
	Title  string  `yaml:"title"`
	Blocks []Block `yaml:"blocks"`
}

package model

// Block is one record from a data source: a stable identifier plus the text
// shown for it.
type Block struct {
	ID    string `json:"blockId" yaml:"blockId"`
	Label string `json:"language" yaml:"language"`
}

// Identifier returns the stable identifier the reorder engine keys on.
func (b Block) Identifier() string { return b.ID }

// Title is what list renderers display.
func (b Block) Title() string {
	if b.Label == "" {
		return b.ID
	}
	return b.Label
}

// KeyedBlock pairs a block with the identity key assigned to it.
type KeyedBlock struct {
	Key      string `json:"key" yaml:"key"`
	Position int    `json:"position" yaml:"position"`
	Block    `yaml:",inline"`
}

package deck

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// file is the on-disk YAML layout of a deck.
type file struct {
	Title  string  `yaml:"title"`
	Slides []Slide `yaml:"slides"`
}

// Load reads and validates a YAML deck file.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck %q: %w", path, err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("deck %q: %w", path, err)
	}
	return d, nil
}

// Parse decodes a YAML deck. Unknown fields are rejected.
func Parse(data []byte) (*Deck, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return NewDeck(f.Title, f.Slides)
}

// Marshal encodes d in the same YAML layout Parse accepts.
func Marshal(d *Deck) ([]byte, error) {
	return yaml.Marshal(file{Title: d.title, Slides: d.slides})
}

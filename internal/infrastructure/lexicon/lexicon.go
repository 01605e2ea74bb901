// Package lexicon reads simplification lexicons written in TOML:
//
//	prefixes = ["meng", "me"]
//
//	[words]
//	"menggunakan" = "pakai"
package lexicon

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"bacabot/internal/domain/simplifier"
)

//go:embed default.toml
var defaultLexicon []byte

// File is the decoded form of a lexicon file.
type File struct {
	Prefixes []string          `toml:"prefixes"`
	Words    map[string]string `toml:"words"`
}

// Default returns the embedded Indonesian lexicon.
func Default() (*File, error) {
	return parse(defaultLexicon, "default.toml")
}

// LoadFile reads a lexicon file from disk.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon %s: %w", path, err)
	}
	return parse(data, path)
}

// Load reads a lexicon from r; name is used in error messages.
func Load(r io.Reader, name string) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read lexicon %s: %w", name, err)
	}
	return parse(data, name)
}

func parse(data []byte, name string) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse lexicon %s: %w", name, err)
	}
	if f.Words == nil {
		f.Words = map[string]string{}
	}
	return &f, nil
}

// Merge returns a new File with other's words laid over f's. Prefixes of
// other that f lacks are appended after f's, keeping f's order first. A nil
// other yields a copy of f.
func (f *File) Merge(other *File) *File {
	if other == nil {
		other = &File{}
	}
	out := &File{
		Prefixes: append([]string(nil), f.Prefixes...),
		Words:    make(map[string]string, len(f.Words)+len(other.Words)),
	}
	for k, v := range f.Words {
		out.Words[k] = v
	}
	for k, v := range other.Words {
		out.Words[k] = v
	}
	seen := make(map[string]bool, len(out.Prefixes))
	for _, p := range out.Prefixes {
		seen[p] = true
	}
	for _, p := range other.Prefixes {
		if !seen[p] {
			seen[p] = true
			out.Prefixes = append(out.Prefixes, p)
		}
	}
	return out
}

// Lexicon builds the immutable simplifier lexicon.
func (f *File) Lexicon() *simplifier.Lexicon {
	return simplifier.NewLexicon(f.Words, f.Prefixes)
}

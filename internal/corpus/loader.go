package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/typesnip/internal/model"
)

// TextSeparator splits snippets in plain-text snippet files.
const TextSeparator = "---"

// Pack is a YAML snippet pack.
type Pack struct {
	Category model.Category `yaml:"category"`
	Snippets []string       `yaml:"snippets"`
}

// LoadText reads snippets from a plain-text file. Snippets are separated by
// lines containing only "---".
func LoadText(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only snippet file.
			_ = cerr
		}
	}()
	return ParseText(file)
}

// ParseText splits r into normalized snippets.
func ParseText(r io.Reader) ([]string, error) {
	var (
		snippets []string
		current  []string
	)
	flush := func() {
		if s := Normalize(strings.Join(current, "\n")); s != "" {
			snippets = append(snippets, s)
		}
		current = current[:0]
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == TextSeparator {
			flush()
			continue
		}
		current = append(current, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	if len(snippets) == 0 {
		return nil, fmt.Errorf("snippet file is empty")
	}
	return snippets, nil
}

// LoadPack reads a YAML snippet pack.
func LoadPack(path string) (Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pack{}, err
	}
	return ParsePack(data)
}

// ParsePack decodes a YAML snippet pack and normalizes its snippets.
func ParsePack(data []byte) (Pack, error) {
	var pack Pack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return Pack{}, fmt.Errorf("failed to decode pack: %w", err)
	}
	pack.Category = model.Category(strings.TrimSpace(string(pack.Category)))
	if pack.Category == "" {
		return Pack{}, fmt.Errorf("pack category must not be empty")
	}
	pack.Snippets = NormalizeAll(pack.Snippets)
	if len(pack.Snippets) == 0 {
		return Pack{}, fmt.Errorf("pack %q has no snippets", pack.Category)
	}
	return pack, nil
}

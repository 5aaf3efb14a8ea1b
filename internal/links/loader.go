// Package links reads the declared repository links file.
//
// Two loaders exist: YAMLLoader parses the file into ordered links, and
// RawLoader echoes the file for the operator and returns ErrParsingUnavailable.
// The capability is picked once with NewLoader and not consulted again.
package links

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/wahlandcase/repostatus/internal/models"

	"github.com/rs/zerolog/log"
	"go.yaml.in/yaml/v3"
)

var (
	// ErrConfigNotFound means the links file does not exist
	ErrConfigNotFound = errors.New("links file not found")
	// ErrParsingUnavailable means no structured data is available; the raw
	// file was shown instead. It is distinct from an empty link set.
	ErrParsingUnavailable = errors.New("structured parsing unavailable")
)

// Capability selects how the links file is read
type Capability int

const (
	Structured Capability = iota
	Raw
)

func (c Capability) String() string {
	if c == Raw {
		return "raw"
	}
	return "yaml"
}

// DetectCapability maps the scan.parser setting to a Capability
func DetectCapability(parser string) Capability {
	if parser == "raw" {
		return Raw
	}
	return Structured
}

// Loader reads the links file at path
type Loader interface {
	Load(path string) ([]models.RepoLink, error)
}

// NewLoader returns the loader for the given capability. out receives the
// raw file in degraded mode.
func NewLoader(c Capability, out io.Writer) Loader {
	if c == Raw {
		return RawLoader{Out: out}
	}
	return YAMLLoader{}
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// YAMLLoader parses `links: {name: url}` keeping document order
type YAMLLoader struct{}

func (YAMLLoader) Load(path string) ([]models.RepoLink, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes links file content. A missing or empty links mapping
// returns an empty, non-nil slice.
func Parse(data []byte) ([]models.RepoLink, error) {
	var doc struct {
		Links yaml.Node `yaml:"links"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing links file: %w", err)
	}

	links := []models.RepoLink{}
	node := doc.Links
	switch {
	case node.Kind == 0:
		return links, nil
	case node.Kind == yaml.ScalarNode && node.Tag == "!!null":
		return links, nil
	case node.Kind != yaml.MappingNode:
		return nil, fmt.Errorf("parsing links file: line %d: links must be a mapping of name to URL", node.Line)
	}

	// Mapping content alternates key, value. A repeated name keeps its
	// first position and takes the last URL.
	seen := make(map[string]int)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if val.Kind != yaml.ScalarNode || val.Tag == "!!null" {
			return nil, fmt.Errorf("parsing links file: line %d: link %q must be a URL string", val.Line, key.Value)
		}
		if idx, ok := seen[key.Value]; ok {
			log.Warn().Str("link", key.Value).Int("line", key.Line).Msg("duplicate link, last entry wins")
			links[idx].URL = val.Value
			continue
		}
		seen[key.Value] = len(links)
		links = append(links, models.NewRepoLink(key.Value, val.Value))
	}

	log.Debug().Int("count", len(links)).Msg("loaded links")
	return links, nil
}

// RawLoader shows the file contents without parsing them
type RawLoader struct {
	Out io.Writer
}

func (l RawLoader) Load(path string) ([]models.RepoLink, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(l.Out, "⚠️  YAML parsing unavailable. Showing file contents only.")
	if _, err := l.Out.Write(data); err != nil {
		return nil, fmt.Errorf("showing %s: %w", path, err)
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		fmt.Fprintln(l.Out)
	}
	return nil, ErrParsingUnavailable
}

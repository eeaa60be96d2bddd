// Package catalog loads and validates the model catalog.
//
// The built-in catalog is embedded as YAML. A replacement catalog can be read
// from a YAML, TOML or JSON file. Every document is checked against the
// embedded JSON schema before it is decoded, so benchmark keys, precisions,
// architectures and capability levels are closed sets by the time the ranking
// engine sees them.
package catalog

import (
	"bytes"
	"crypto/sha256"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/huangsam/llmpick/schema"
	"gopkg.in/yaml.v3"
)

//go:embed data/models.yaml
var embeddedFS embed.FS

const embeddedName = "data/models.yaml"

// Catalog is an immutable, ordered list of model records.
type Catalog struct {
	source      string
	models      []schema.ModelRecord
	byID        map[string]int
	fingerprint string
}

// catalogFile is the top-level document shape.
type catalogFile struct {
	Models []schema.ModelRecord `json:"models"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the embedded catalog. It is decoded once per process.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		data, err := embeddedFS.ReadFile(embeddedName)
		if err != nil {
			defaultErr = fmt.Errorf("reading embedded catalog: %w", err)
			return
		}
		defaultCatalog, defaultErr = Parse("embedded", data, FormatYAML)
	})
	return defaultCatalog, defaultErr
}

// Load returns the catalog at path, or the embedded catalog when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// LoadFile reads a catalog file. The format is chosen by extension.
func LoadFile(path string) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return Parse(filepath.Base(path), data, format)
}

// Format is a supported catalog file encoding.
type Format string

// All catalog formats supported.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath maps a file extension to a catalog format.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported catalog file %q. must end in .yaml, .yml, .toml or .json", path)
	}
}

// Parse decodes, validates and indexes a catalog document.
func Parse(name string, data []byte, format Format) (*Catalog, error) {
	doc, err := decodeGeneric(data, format)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", name, err)
	}

	// Normalize through JSON so YAML and TOML numbers and maps validate the same way.
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("normalizing catalog %s: %w", name, err)
	}
	if errs := validateDocument(raw); len(errs) > 0 {
		return nil, fmt.Errorf("catalog %s does not match schema: %s", name, strings.Join(errs, "; "))
	}

	var file catalogFile
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decoding catalog %s: %w", name, err)
	}

	return newCatalog(name, file.Models)
}

// decodeGeneric decodes a document into plain maps, slices and scalars.
func decodeGeneric(data []byte, format Format) (any, error) {
	var doc any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	case FormatTOML:
		var m map[string]any
		if _, err := toml.Decode(string(data), &m); err != nil {
			return nil, err
		}
		doc = m
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	if doc == nil {
		return nil, fmt.Errorf("empty document")
	}
	return doc, nil
}

// newCatalog runs the checks the JSON schema cannot express and builds the index.
func newCatalog(source string, models []schema.ModelRecord) (*Catalog, error) {
	byID := make(map[string]int, len(models))
	for i, m := range models {
		if prev, dup := byID[m.ID]; dup {
			return nil, fmt.Errorf("catalog %s: duplicate model id %q at positions %d and %d", source, m.ID, prev, i)
		}
		if m.ActiveParams > m.TotalParams {
			return nil, fmt.Errorf("catalog %s: model %q has active_params %v greater than total_params %v", source, m.ID, m.ActiveParams, m.TotalParams)
		}
		if m.BenchmarkScores == nil {
			models[i].BenchmarkScores = map[schema.BenchmarkKey]float64{}
		}
		if m.MemoryFootprint == nil {
			models[i].MemoryFootprint = map[schema.Precision]float64{}
		}
		byID[m.ID] = i
	}

	canonical, err := json.Marshal(models)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: fingerprinting: %w", source, err)
	}

	return &Catalog{
		source:      source,
		models:      models,
		byID:        byID,
		fingerprint: fmt.Sprintf("%x", sha256.Sum256(canonical)),
	}, nil
}

// New builds a catalog from in-memory records, applying the same invariants as Parse.
func New(source string, models []schema.ModelRecord) (*Catalog, error) {
	return newCatalog(source, append([]schema.ModelRecord(nil), models...))
}

// Models returns a copy of the records in catalog order.
func (c *Catalog) Models() []schema.ModelRecord {
	return append([]schema.ModelRecord(nil), c.models...)
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.models)
}

// Get returns the record with the given id.
func (c *Catalog) Get(id string) (schema.ModelRecord, bool) {
	i, ok := c.byID[id]
	if !ok {
		return schema.ModelRecord{}, false
	}
	return c.models[i], true
}

// Source names where the catalog was loaded from.
func (c *Catalog) Source() string {
	return c.source
}

// Fingerprint is a content hash of the records. It changes whenever any record changes.
func (c *Catalog) Fingerprint() string {
	return c.fingerprint
}

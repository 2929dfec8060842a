// Package catalog loads the store and product reference data from YAML documents.
package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	domainErrors "github.com/polkiloo/pricecompare/internal/domain/errors"
	"github.com/polkiloo/pricecompare/internal/domain/model"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

// Source loads a catalog once at startup.
type Source interface {
	Load(ctx context.Context) (*model.Catalog, error)
	Name() string
}

type document struct {
	Stores   []model.Store   `yaml:"stores"`
	Products []model.Product `yaml:"products"`
}

// Parse decodes a YAML catalog document. Unknown fields are rejected.
func Parse(data []byte) (*model.Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", domainErrors.ErrInvalidCatalog)
		}
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrInvalidCatalog, err)
	}
	if len(doc.Stores) == 0 {
		return nil, fmt.Errorf("%w: no stores declared", domainErrors.ErrInvalidCatalog)
	}
	return model.NewCatalog(doc.Stores, doc.Products)
}

// EmbeddedSource serves the mock catalog compiled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Name() string { return "embedded" }

func (EmbeddedSource) Load(context.Context) (*model.Catalog, error) {
	return Parse(defaultCatalog)
}

// FileSource reads a catalog from the local filesystem.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return "file:" + s.Path }

func (s FileSource) Load(context.Context) (*model.Catalog, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

package catalog

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/pricecompare/internal/config"
	"github.com/polkiloo/pricecompare/internal/domain/model"
)

// Module resolves the configured catalog source and loads the catalog.
var Module = fx.Provide(newSource, loadAtStartup)

type sourceParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// newSource prefers a remote document, then a local file, then the embedded catalog.
func newSource(p sourceParams) (Source, error) {
	switch {
	case p.Config.CatalogURL != "":
		return NewHTTPSource(p.Config.CatalogURL, p.Config.CatalogTimeout, p.Logger)
	case p.Config.CatalogPath != "":
		return FileSource{Path: p.Config.CatalogPath}, nil
	default:
		return EmbeddedSource{}, nil
	}
}

// loadAtStartup runs while the container is built; remote sources are bounded by their own timeout.
func loadAtStartup(source Source, logger *slog.Logger) (*model.Catalog, error) {
	return load(context.Background(), source, logger)
}

func load(ctx context.Context, source Source, logger *slog.Logger) (*model.Catalog, error) {
	c, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info("catalog loaded",
		slog.String("source", source.Name()),
		slog.Int("stores", len(c.Stores())),
		slog.Int("products", len(c.Products())),
	)
	return c, nil
}

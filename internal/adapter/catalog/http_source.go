package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/polkiloo/pricecompare/internal/domain/model"
)

const maxDocumentSize = 8 << 20

// HTTPSource fetches a catalog document over HTTP.
type HTTPSource struct {
	url        *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPSource creates a source with the given request timeout.
func NewHTTPSource(rawURL string, timeout time.Duration, logger *slog.Logger) (*HTTPSource, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse catalog url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("catalog url must be absolute")
	}
	return &HTTPSource{
		url:        parsed,
		logger:     logger,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

func (s *HTTPSource) Name() string { return s.url.String() }

func (s *HTTPSource) Load(ctx context.Context) (*model.Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/yaml")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		s.logger.Error("catalog request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("catalog error: %s", resp.Status)
	}

	return Parse(body)
}

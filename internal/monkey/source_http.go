package monkey

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	ErrSourceBadStatus   = errors.New("source bad status")
	ErrSourceUnavailable = errors.New("source unavailable")
)

const maxSourceBody = 4 << 20

// HTTPSource fetches the catalog as a JSON array from <BaseURL>/monkeys.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPSource(baseURL string) *HTTPSource {
	if u, err := url.Parse(baseURL); err == nil && u.Scheme != "" && u.Host != "" {
		baseURL = strings.TrimRight(baseURL, "/")
	}
	return &HTTPSource{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 3 * time.Second},
	}
}

func (s *HTTPSource) Name() string { return "http" }

func (s *HTTPSource) LoadAll(ctx context.Context) ([]Species, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"/monkeys", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: status=%d", ErrSourceBadStatus, resp.StatusCode)
	}

	var out []Species
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxSourceBody)).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode monkeys: %w", err)
	}
	return out, nil
}

package source

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/evscope-org/evscope/dataset"
)

// ============================================================================
// SOCRATA SOURCE — Frames from a Socrata open-data portal
// ============================================================================
// The Washington EV population dataset lives on data.wa.gov, a Socrata
// portal. Dataset names are Socrata view IDs (e.g. "f6w7-q2d2"); the
// CSV export endpoint streams the full table.
// ============================================================================

// SocrataSource fetches dataset CSV exports over HTTP.
type SocrataSource struct {
	domain string
	token  string
	client *http.Client
}

// Socrata creates a source for the given portal domain. token is the
// optional app token sent as X-App-Token; unauthenticated requests are
// throttled harder by the portal.
func Socrata(domain, token string) *SocrataSource {
	return &SocrataSource{
		domain: domain,
		token:  token,
		client: &http.Client{Timeout: 5 * time.Minute},
	}
}

// GetTable downloads and parses the CSV export of a Socrata view.
func (s *SocrataSource) GetTable(ctx context.Context, name string) (*dataset.Frame, error) {
	url := fmt.Sprintf("https://%s/api/views/%s/rows.csv?accessType=DOWNLOAD", s.domain, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if s.token != "" {
		req.Header.Set("X-App-Token", s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch dataset %q: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch dataset %q: unexpected status %s", name, resp.Status)
	}

	return ParseCSV(resp.Body)
}

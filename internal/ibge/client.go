package ibge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/greenpoint/backend/internal/domain"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const DefaultBaseURL = "https://servicodados.ibge.gov.br/api/v1/localidades"

// APIError is returned for any non 200 answer of the localities API.
type APIError struct {
	Code int
	Body string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ibge api error: %d - %s", e.Code, e.Body)
}

type stateResponse struct {
	ID    int    `json:"id"`
	Sigla string `json:"sigla"`
	Nome  string `json:"nome"`
}

type cityResponse struct {
	ID   int    `json:"id"`
	Nome string `json:"nome"`
}

// Client talks to the IBGE localities API. It lists states (UF) and the
// cities of a state.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ListRegions returns the UF codes sorted alphabetically.
func (c *Client) ListRegions(ctx context.Context) ([]domain.RegionCode, error) {
	var states []stateResponse
	if err := c.get(ctx, "/estados", &states); err != nil {
		return nil, errors.Wrap(err, "list states")
	}

	codes := lo.Map(states, func(s stateResponse, _ int) domain.RegionCode {
		return domain.RegionCode(s.Sigla)
	})
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	return codes, nil
}

// ListSubRegions returns the city names of a UF in the order IBGE sends them.
func (c *Client) ListSubRegions(ctx context.Context, region domain.RegionCode) ([]domain.SubRegionName, error) {
	if region.IsZero() {
		return nil, errors.New("empty uf")
	}

	var cities []cityResponse
	if err := c.get(ctx, "/estados/"+url.PathEscape(string(region))+"/municipios", &cities); err != nil {
		return nil, errors.Wrapf(err, "list cities of %s", region)
	}

	return lo.Map(cities, func(c cityResponse, _ int) domain.SubRegionName {
		return domain.SubRegionName(c.Nome)
	}), nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "create request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "do request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &APIError{Code: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode response")
	}

	return nil
}

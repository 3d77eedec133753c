package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/greenpoint/backend/internal/domain"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// APIError is a non 2xx answer of the Green Point API.
type APIError struct {
	Status  int
	Code    int
	Message string
	Fields  map[string]string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: %d", e.Status)
	}
	if len(e.Fields) == 0 {
		return fmt.Sprintf("api error: %d - %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error: %d - %s %v", e.Status, e.Message, e.Fields)
}

type errorBody struct {
	ErrorCode    int    `json:"error_code"`
	ErrorMessage string `json:"error_message"`
	Errors       []struct {
		FieldKey     string `json:"field_key"`
		ErrorMessage string `json:"error_message"`
	} `json:"validation_errors"`
}

type itemResponse struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
}

type createPointResponse struct {
	ID string `json:"id"`
}

// Client calls the Green Point API. baseURL includes the version prefix,
// e.g. http://localhost:8080/api/v1.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) FetchCatalogItems(ctx context.Context) ([]domain.CatalogItem, error) {
	var items []itemResponse
	if err := c.do(ctx, http.MethodGet, "/items", nil, &items); err != nil {
		return nil, errors.Wrap(err, "fetch items")
	}

	return lo.Map(items, func(item itemResponse, _ int) domain.CatalogItem {
		return domain.CatalogItem{ID: item.ID, Label: item.Title, IconRef: item.ImageURL}
	}), nil
}

// SubmitRegistrationPoint posts the payload and returns the id of the created point.
func (c *Client) SubmitRegistrationPoint(ctx context.Context, payload domain.PointPayload) (string, error) {
	var resp createPointResponse
	if err := c.do(ctx, http.MethodPost, "/points", payload, &resp); err != nil {
		return "", errors.Wrap(err, "create point")
	}
	return resp.ID, nil
}

func (c *Client) ListRegions(ctx context.Context) ([]domain.RegionCode, error) {
	var regions []domain.RegionCode
	if err := c.do(ctx, http.MethodGet, "/regions", nil, &regions); err != nil {
		return nil, errors.Wrap(err, "list regions")
	}
	return regions, nil
}

func (c *Client) ListSubRegions(ctx context.Context, region domain.RegionCode) ([]domain.SubRegionName, error) {
	if region.IsZero() {
		return nil, errors.New("empty uf")
	}

	var cities []domain.SubRegionName
	if err := c.do(ctx, http.MethodGet, "/regions/"+url.PathEscape(string(region))+"/cities", nil, &cities); err != nil {
		return nil, errors.Wrapf(err, "list cities of %s", region)
	}
	return cities, nil
}

func (c *Client) do(ctx context.Context, method, path string, in any, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "encode request")
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Wrap(err, "create request")
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "do request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode response")
	}

	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		apiErr.Message = strings.TrimSpace(string(raw))
		return apiErr
	}

	apiErr.Code = body.ErrorCode
	apiErr.Message = body.ErrorMessage
	if len(body.Errors) > 0 {
		apiErr.Fields = make(map[string]string, len(body.Errors))
		for _, fe := range body.Errors {
			apiErr.Fields[fe.FieldKey] = fe.ErrorMessage
		}
	}

	return apiErr
}

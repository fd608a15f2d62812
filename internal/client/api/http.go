package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/avoronkov/wellfinder/internal/catalog"
	"github.com/avoronkov/wellfinder/internal/common"
	"github.com/avoronkov/wellfinder/internal/geo"
	"github.com/avoronkov/wellfinder/internal/models"
)

// HTTPClient talks JSON over HTTP to the server's /api/v1 endpoints.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type signUpRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Account     models.Account `json:"account"`
	AccessToken string         `json:"accessToken"`
	ExpiresAt   time.Time      `json:"expiresAt"`
}

type categoriesResponse struct {
	Categories []string `json:"categories"`
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, "/ping", "", nil)
	if err != nil {
		return common.ErrUnavailable
	}
	defer drain(resp)

	if resp.StatusCode != http.StatusOK {
		return common.ErrUnavailable
	}
	return nil
}

func (c *HTTPClient) SignUp(ctx context.Context, email, name, password string) (*models.Session, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/v1/auth/signup", "", signUpRequest{
		Email: email, Name: name, Password: password,
	})
	if err != nil {
		return nil, common.ErrUnavailable
	}
	defer drain(resp)

	switch resp.StatusCode {
	case http.StatusCreated:
		return decodeSession(resp.Body)
	case http.StatusConflict:
		return nil, common.ErrDuplicateAccount
	default:
		return nil, common.ErrUnavailable
	}
}

func (c *HTTPClient) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/v1/auth/signin", "", signInRequest{
		Email: email, Password: password,
	})
	if err != nil {
		return nil, common.ErrUnavailable
	}
	defer drain(resp)

	switch resp.StatusCode {
	case http.StatusOK:
		return decodeSession(resp.Body)
	case http.StatusUnauthorized:
		return nil, common.ErrInvalidCredentials
	default:
		return nil, common.ErrUnavailable
	}
}

func (c *HTTPClient) SearchLocations(ctx context.Context, token, query string) ([]catalog.Location, error) {
	path := "/api/v1/locations"
	if query != "" {
		path += "?q=" + url.QueryEscape(query)
	}
	return c.getLocations(ctx, token, path)
}

func (c *HTTPClient) GetLocation(ctx context.Context, token, id string) (*catalog.Location, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/v1/locations/"+url.PathEscape(id), token, nil)
	if err != nil {
		return nil, common.ErrUnavailable
	}
	defer drain(resp)

	switch resp.StatusCode {
	case http.StatusOK:
		var location catalog.Location
		if err := json.NewDecoder(resp.Body).Decode(&location); err != nil {
			return nil, common.ErrUnavailable
		}
		return &location, nil
	case http.StatusNotFound:
		return nil, nil
	case http.StatusUnauthorized:
		return nil, common.ErrInvalidToken
	default:
		return nil, common.ErrUnavailable
	}
}

func (c *HTTPClient) GetNearby(ctx context.Context, token string, origin geo.Coordinate, radiusMiles float64) ([]catalog.Location, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(origin.Lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(origin.Lon, 'f', -1, 64))
	q.Set("radius", strconv.FormatFloat(radiusMiles, 'f', -1, 64))

	return c.getLocations(ctx, token, "/api/v1/locations/nearby?"+q.Encode())
}

func (c *HTTPClient) GetCategories(ctx context.Context, token string) ([]string, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/v1/categories", token, nil)
	if err != nil {
		return nil, common.ErrUnavailable
	}
	defer drain(resp)

	switch resp.StatusCode {
	case http.StatusOK:
		var cr categoriesResponse
		if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
			return nil, common.ErrUnavailable
		}
		return cr.Categories, nil
	case http.StatusUnauthorized:
		return nil, common.ErrInvalidToken
	default:
		return nil, common.ErrUnavailable
	}
}

func (c *HTTPClient) getLocations(ctx context.Context, token, path string) ([]catalog.Location, error) {
	resp, err := c.do(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return nil, common.ErrUnavailable
	}
	defer drain(resp)

	switch resp.StatusCode {
	case http.StatusOK:
		var locations []catalog.Location
		if err := json.NewDecoder(resp.Body).Decode(&locations); err != nil {
			return nil, common.ErrUnavailable
		}
		return locations, nil
	case http.StatusUnauthorized:
		return nil, common.ErrInvalidToken
	default:
		return nil, common.ErrUnavailable
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path, token string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("request encode error: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AccessTokenHeaderName, "Bearer "+token)
	}

	return c.client.Do(req)
}

func decodeSession(r io.Reader) (*models.Session, error) {
	var sr sessionResponse
	if err := json.NewDecoder(r).Decode(&sr); err != nil {
		return nil, common.ErrUnavailable
	}
	return &models.Session{
		Account:     sr.Account,
		AccessToken: sr.AccessToken,
		ExpiresAt:   sr.ExpiresAt,
	}, nil
}

// drain discards the rest of the body so the connection can be reused.
func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// Package client provides an HTTP client for the HBnB REST API.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Aluranae/hbnb-cli/internal/listing"
	"github.com/Aluranae/hbnb-cli/internal/session"
)

// Client is an HTTP client for the HBnB API. The session token is an
// explicit parameter on each call; an empty token means anonymous.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client for the given base URL
// (e.g. http://localhost:5000/api/v1).
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Login authenticates with email and password and returns the issued
// session token. The caller is responsible for persisting it.
func (c *Client) Login(email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}

	status, respBody, err := c.post("/auth/login", "", body)
	if err != nil {
		return "", err
	}

	switch {
	case status == http.StatusUnauthorized:
		return "", &APIError{Kind: KindAuth, Message: "Invalid credentials. Please try again.", Status: status}
	case status < 200 || status > 299:
		return "", serverError(status, respBody)
	}

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", &APIError{Kind: KindParse, Message: "login response is not valid JSON", Status: status}
	}
	if resp.AccessToken == "" {
		return "", &APIError{Kind: KindProtocol, Message: "login response has no access_token", Status: status}
	}

	return resp.AccessToken, nil
}

// ListListings fetches the listing collection. The endpoint tolerates
// anonymous calls, so the Authorization header is attached only when a
// token is present. Order is preserved.
func (c *Client) ListListings(token string) ([]listing.Listing, error) {
	status, respBody, err := c.get("/places/", token)
	if err != nil {
		return nil, err
	}
	if apiErr := statusError(status, respBody); apiErr != nil {
		return nil, apiErr
	}

	var envelope struct {
		Places json.RawMessage `json:"places"`
	}
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return nil, &APIError{Kind: KindParse, Message: "listing response is not valid JSON", Status: status}
	}

	places := bytes.TrimSpace(envelope.Places)
	if len(places) == 0 || places[0] != '[' {
		return nil, &APIError{Kind: KindSchema, Message: "places field is missing or not a list", Status: status}
	}

	var listings []listing.Listing
	if err := json.Unmarshal(places, &listings); err != nil {
		return nil, &APIError{Kind: KindSchema, Message: "places entries have an unexpected shape", Status: status}
	}

	return listings, nil
}

// GetListing fetches a single listing by id. The request is attempted with
// whatever token is supplied, including none; the server decides.
func (c *Client) GetListing(token, id string) (*listing.Listing, error) {
	status, respBody, err := c.get("/places/"+url.PathEscape(id), token)
	if err != nil {
		return nil, err
	}
	if apiErr := statusError(status, respBody); apiErr != nil {
		return nil, apiErr
	}

	if !json.Valid(respBody) {
		return nil, &APIError{Kind: KindParse, Message: "listing response is not valid JSON", Status: status}
	}

	var l listing.Listing
	if err := json.Unmarshal(respBody, &l); err != nil {
		return nil, &APIError{Kind: KindSchema, Message: "listing has an unexpected shape", Status: status}
	}

	return &l, nil
}

// SubmitReview posts a review for a listing. The reviewer's user id comes
// from the (unverified) token payload. On success the listing detail is
// re-fetched so the caller can show the new review; if only that refresh
// fails, the error is logged and (nil, nil) is returned, because the write
// itself succeeded.
func (c *Client) SubmitReview(token, placeID, text, rating string) (*listing.Listing, error) {
	claims, ok := session.DecodeClaims(token)
	if !ok {
		return nil, &APIError{Kind: KindAuth, Message: "You must be logged in to write a review."}
	}

	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("review text must not be empty")
	}
	ratingValue, err := strconv.Atoi(strings.TrimSpace(rating))
	if err != nil {
		return nil, fmt.Errorf("rating must be a whole number, got %q", rating)
	}
	if ratingValue < 1 || ratingValue > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5, got %d", ratingValue)
	}

	body := map[string]interface{}{
		"text":     text,
		"rating":   ratingValue,
		"user_id":  claims.UserID,
		"place_id": placeID,
	}

	status, respBody, err := c.post("/reviews/", token, body)
	if err != nil {
		return nil, err
	}
	if apiErr := statusError(status, respBody); apiErr != nil {
		return nil, apiErr
	}
	if len(bytes.TrimSpace(respBody)) > 0 && !json.Valid(respBody) {
		return nil, &APIError{Kind: KindParse, Message: "review response is not valid JSON", Status: status}
	}

	refreshed, err := c.GetListing(token, placeID)
	if err != nil {
		// The review was stored; the refresh is best-effort.
		slog.Warn("refreshing listing after review", "place_id", placeID, "error", err)
		return nil, nil
	}

	return refreshed, nil
}

// get performs a GET request and returns status and body.
func (c *Client) get(path, token string) (int, []byte, error) {
	req, err := http.NewRequest("GET", c.baseURL+path, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, token)
}

// post performs a POST request with a JSON body and returns status and body.
func (c *Client) post(path, token string, body interface{}) (int, []byte, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return 0, nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequest("POST", c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return 0, nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, token)
}

// do executes an HTTP request, attaching the bearer token when present.
func (c *Client) do(req *http.Request, token string) (int, []byte, error) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			slog.Warn("closing response body", "error", cerr)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("reading response: %w", err)
	}

	return resp.StatusCode, respBody, nil
}

// statusError maps a non-2xx status to an APIError, or nil for success.
func statusError(status int, body []byte) *APIError {
	switch {
	case status == http.StatusUnauthorized:
		return &APIError{Kind: KindAuth, Message: "Please log in and try again.", Status: status}
	case status >= 200 && status <= 299:
		return nil
	}
	return serverError(status, body)
}

// serverError builds a ServerError, preferring the server's own error text.
func serverError(status int, body []byte) *APIError {
	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	msg := http.StatusText(status)
	if json.Unmarshal(body, &errResp) == nil {
		if errResp.Error != "" {
			msg = errResp.Error
		} else if errResp.Message != "" {
			msg = errResp.Message
		}
	}
	return &APIError{Kind: KindServer, Message: msg, Status: status}
}

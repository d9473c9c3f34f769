package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/blogdrown/blogdrown-go/internal/types"
)

// All endpoints live under a versioned base path.
const basePath = "/api/v1"

func apiURL(baseURL, route string) string {
	return baseURL + basePath + route
}

// decodeAPIError reads a structured {message, errors} body from a non-2xx
// response and pairs it with the status code. A body that does not decode is
// reported as a plain transport-class error.
func decodeAPIError(resp *http.Response) error {
	var apiErr types.APIError
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil {
		return fmt.Errorf("status %d with unreadable error body: %w", resp.StatusCode, err)
	}
	apiErr.Status = resp.StatusCode
	return &apiErr
}

func ok(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// sendJSON issues a request with a JSON body and decodes the success
// response into out (skipped when out is nil).
func sendJSON(ctx context.Context, httpClient *http.Client, method, url string, body, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !ok(resp) {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// getJSON issues a GET and decodes the success response into out.
func getJSON(ctx context.Context, httpClient *http.Client, url string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !ok(resp) {
		return decodeAPIError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// dataless issues a body-less request whose success response carries no
// payload the caller needs.
func dataless(ctx context.Context, httpClient *http.Client, method, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !ok(resp) {
		return decodeAPIError(resp)
	}
	return nil
}

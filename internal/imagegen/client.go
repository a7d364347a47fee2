// Package imagegen talks to the diffusion backend that paints card
// backgrounds and illustrations. The client is a thin paced HTTP wrapper;
// retry policy belongs to the caller.
package imagegen

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Request describes one image to generate.
type Request struct {
	Prompt         string
	Width          int
	Height         int
	NegativePrompt string
}

// Generator produces one raster image per call.
type Generator interface {
	Generate(ctx context.Context, req Request) ([]byte, error)
}

// Options configures the backend client.
type Options struct {
	BaseURL           string
	APIKey            string
	HTTPClient        *http.Client
	Timeout           time.Duration
	RequestsPerSecond float64
}

// Client posts generation requests to an OpenAI-compatible diffusion
// endpoint and decodes the base64 payload. Calls are paced by a shared rate
// limiter.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	limiter    *rate.Limiter
}

var _ Generator = (*Client)(nil)

// NewClient builds a client from options, filling unset fields with
// defaults.
func NewClient(opts Options) *Client {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = "http://localhost:7860/v1"
	}
	client := opts.HTTPClient
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 120 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	rps := opts.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		httpClient: client,
		baseURL:    base,
		token:      strings.TrimSpace(opts.APIKey),
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
	}
}

type generateRequest struct {
	Prompt         string `json:"prompt"`
	NegativePrompt string `json:"negative_prompt,omitempty"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	N              int    `json:"n"`
	ResponseFormat string `json:"response_format"`
}

type generateResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
}

// Generate renders one image. HTTP failures come back as *Error classified
// by status; timeouts classify as ErrorKindTimeout.
func (c *Client) Generate(ctx context.Context, req Request) ([]byte, error) {
	if c == nil {
		return nil, errors.New("imagegen: client not configured")
	}
	if c.token == "" {
		return nil, errors.New("imagegen: API key is missing")
	}
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return nil, errors.New("imagegen: prompt required")
	}
	if req.Width <= 0 || req.Height <= 0 {
		return nil, fmt.Errorf("imagegen: bad dimensions %dx%d", req.Width, req.Height)
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	body, err := json.Marshal(generateRequest{
		Prompt:         prompt,
		NegativePrompt: strings.TrimSpace(req.NegativePrompt),
		Width:          req.Width,
		Height:         req.Height,
		N:              1,
		ResponseFormat: "b64_json",
	})
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/images/generations", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			return nil, &Error{Kind: ErrorKindTimeout, Msg: "request timed out"}
		}
		return nil, err
	}
	defer resp.Body.Close()

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return nil, statusError(resp.StatusCode, "")
		}
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, statusError(resp.StatusCode, out.Error.Message)
	}
	if len(out.Data) == 0 || out.Data[0].B64JSON == "" {
		return nil, errors.New("imagegen: empty response")
	}
	img, err := base64.StdEncoding.DecodeString(out.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("imagegen: decode payload: %w", err)
	}
	return img, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

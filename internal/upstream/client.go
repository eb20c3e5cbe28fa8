package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"gebeya/internal/domain/entity"
	"gebeya/pkg/errors"
	"gebeya/pkg/logger"
)

// Client talks to the remote marketplace API. It is the only way the
// gateway reaches persistent state; wire shapes are owned by the API and
// mirrored as-is. Requests are plain fire-and-await: no retry, no
// deduplication.
type Client struct {
	baseURL   string
	assetBase string
	http      *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	base := strings.TrimRight(baseURL, "/")
	return &Client{
		baseURL:   base,
		assetBase: base,
		http:      &http.Client{Timeout: timeout},
	}
}

// WithAssetBase overrides the host used to absolutize relative asset paths,
// for setups that serve uploads from a CDN instead of the API host.
func (c *Client) WithAssetBase(base string) *Client {
	if base != "" {
		c.assetBase = strings.TrimRight(base, "/")
	}
	return c
}

// assetURL absolutizes a relative upload path against the asset host.
func (c *Client) assetURL(path string) string {
	if path == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return c.assetBase + "/" + strings.TrimLeft(path, "/")
}

func (c *Client) absolutizeProducts(products []entity.Product) {
	for i := range products {
		for j := range products[i].Images {
			products[i].Images[j].URL = c.assetURL(products[i].Images[j].URL)
		}
	}
}

// apiMessage is the machine-readable message most error bodies carry.
type apiMessage struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) doJSON(ctx context.Context, method, path, token string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Internal("Failed to encode request", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Internal("Failed to build request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, token, out)
}

func (c *Client) doMultipart(ctx context.Context, method, path, token string, build func(w *multipart.Writer) error, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := build(writer); err != nil {
		return errors.Internal("Failed to encode form", err)
	}
	if err := writer.Close(); err != nil {
		return errors.Internal("Failed to encode form", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return errors.Internal("Failed to build request", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.send(req, token, out)
}

func (c *Client) send(req *http.Request, token string, out interface{}) error {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Error("upstream %s %s: %v", req.Method, req.URL.Path, err)
		return errors.Unavailable("The marketplace service could not be reached", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Unavailable("The marketplace service could not be reached", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(req, resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return errors.Internal("Unexpected response format from server", err)
		}
	}
	return nil
}

func errUnexpectedShape() error {
	return errors.Internal("Unexpected response format from server", nil)
}

func (c *Client) statusError(req *http.Request, status int, body []byte) error {
	var msg apiMessage
	_ = json.Unmarshal(body, &msg)
	message := msg.Message
	if message == "" {
		message = msg.Error
	}

	switch status {
	case http.StatusUnauthorized:
		if message == "" {
			message = "Session expired. Please login again."
		}
		return errors.Unauthorized(message, nil)
	case http.StatusForbidden:
		if message == "" {
			message = "You are not allowed to do that"
		}
		return errors.Forbidden(message, nil)
	case http.StatusNotFound:
		return errors.NotFound("Resource", nil)
	default:
		if message == "" {
			message = fmt.Sprintf("Request failed with status %d", status)
		}
		logger.Warn("upstream %s %s: %d %s", req.Method, req.URL.Path, status, message)
		return errors.New("UPSTREAM_ERROR", message, status, nil)
	}
}

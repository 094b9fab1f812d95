package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Emman225/bos/internal/localstore"
)

const RequestTimeout = 15 * time.Second

// Client is the single choke point for calls to the remote API. It owns
// the bearer token (mirrored into the local store under a fixed key),
// applies the request timeout, unwraps {data: ...} envelopes and turns
// error bodies into typed errors.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  localstore.Store
	log     *zap.Logger

	mu    sync.RWMutex
	token string
}

func NewClient(baseURL string, tokens localstore.Store, log *zap.Logger) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: RequestTimeout},
		tokens:  tokens,
		log:     log,
	}
	// Restore a previously held token so a restart keeps the session.
	if data, err := tokens.Get(context.Background(), localstore.KeyToken); err == nil {
		c.token = string(data)
	}
	return c
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
	if err := c.tokens.Set(context.Background(), localstore.KeyToken, []byte(token)); err != nil {
		c.log.Warn("failed to persist token", zap.Error(err))
	}
}

func (c *Client) ClearToken() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
	if err := c.tokens.Delete(context.Background(), localstore.KeyToken); err != nil {
		c.log.Warn("failed to clear persisted token", zap.Error(err))
	}
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out, false)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	reader, err := encodeBody(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, reader, "application/json", out, true)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	reader, err := encodeBody(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, reader, "application/json", out, true)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	reader, err := encodeBody(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPatch, path, reader, "application/json", out, true)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", nil, false)
}

// PostForm sends a multipart request (avatar uploads). Fields are written
// first, then the single file part.
func (c *Client) PostForm(ctx context.Context, path string, fields map[string]string, fileField, fileName string, file io.Reader, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return &Error{Kind: KindTransport, Verb: http.MethodPost, Path: path, Message: "failed to encode form", cause: err}
		}
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		if err != nil {
			return &Error{Kind: KindTransport, Verb: http.MethodPost, Path: path, Message: "failed to encode form", cause: err}
		}
		if _, err := io.Copy(part, file); err != nil {
			return &Error{Kind: KindTransport, Verb: http.MethodPost, Path: path, Message: "failed to encode form", cause: err}
		}
	}
	if err := writer.Close(); err != nil {
		return &Error{Kind: KindTransport, Verb: http.MethodPost, Path: path, Message: "failed to encode form", cause: err}
	}
	return c.do(ctx, http.MethodPost, path, &buf, writer.FormDataContentType(), out, true)
}

func encodeBody(body any) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request body failed: %w", err)
	}
	return bytes.NewReader(data), nil
}

func (c *Client) do(ctx context.Context, verb, path string, body io.Reader, contentType string, out any, parseErrBody bool) error {
	req, err := http.NewRequestWithContext(ctx, verb, c.baseURL+path, body)
	if err != nil {
		return &Error{Kind: KindTransport, Verb: verb, Path: path, Message: "failed to build request", cause: err}
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindTransport, Verb: verb, Path: path, Message: fmt.Sprintf("%s %s failed", verb, path), cause: err}
	}
	defer res.Body.Close()

	// Expired tokens are dropped here so no later call can reuse them,
	// whether or not the caller looks at the error.
	if res.StatusCode == http.StatusUnauthorized {
		c.ClearToken()
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		apiErr := &Error{Kind: KindServer, Verb: verb, Path: path, Status: res.StatusCode}
		if res.StatusCode == http.StatusUnauthorized {
			apiErr.Kind = KindAuth
		}
		if parseErrBody {
			apiErr.Message = extractErrorMessage(safeJSON(res.Body))
		}
		return apiErr
	}

	if out == nil {
		io.Copy(io.Discard, res.Body)
		return nil
	}
	return decodeEnvelope(res.Body, out)
}

// decodeEnvelope unwraps {data: T} when present, otherwise decodes the raw
// body. Malformed bodies leave out untouched rather than failing.
func decodeEnvelope(body io.Reader, out any) error {
	raw, err := io.ReadAll(body)
	if err != nil || len(raw) == 0 {
		return nil
	}
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Data != nil {
		raw = envelope.Data
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return nil
	}
	return nil
}

type errorBody struct {
	Message string              `json:"message"`
	Err     string              `json:"error"`
	Errors  map[string][]string `json:"errors"`
}

func safeJSON(body io.Reader) errorBody {
	var parsed errorBody
	raw, err := io.ReadAll(body)
	if err != nil {
		return parsed
	}
	json.Unmarshal(raw, &parsed)
	return parsed
}

// extractErrorMessage prefers the first message of the first field in a
// validation errors map, then the top-level message/error fields. Fields
// are walked in sorted order; Go maps have none of their own.
func extractErrorMessage(parsed errorBody) string {
	if len(parsed.Errors) > 0 {
		fields := make([]string, 0, len(parsed.Errors))
		for field := range parsed.Errors {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			if msgs := parsed.Errors[field]; len(msgs) > 0 {
				return msgs[0]
			}
		}
	}
	if parsed.Message != "" {
		return parsed.Message
	}
	return parsed.Err
}

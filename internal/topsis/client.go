package topsis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultPrefix = "/api/v1"

type Client interface {
	ListModels(ctx context.Context) ([]Model, error)
	CreateModel(ctx context.Context, req ModelCreate) (*Model, error)
	ImportModel(ctx context.Context, filename string, r io.Reader) (*Model, error)
	GetModel(ctx context.Context, id string) (*Model, error)
	DeleteModel(ctx context.Context, id string) (*Model, error)
	ExportModel(ctx context.Context, id string) (*Model, error)
	SubmitExpertInput(ctx context.Context, id string, input ExpertInput) (*Model, error)
	GetRanking(ctx context.Context, id string) (*Ranking, error)
}

type HTTPClient struct {
	baseURL    string
	prefix     string
	httpClient *http.Client
}

func NewHTTPClient(baseURL, prefix string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		prefix:     "/" + strings.Trim(prefix, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// envelope is the success shape of every API response.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

func (c *HTTPClient) url(path string) string {
	if c.prefix == "/" {
		return c.baseURL + path
	}
	return c.baseURL + c.prefix + path
}

func (c *HTTPClient) do(ctx context.Context, op, method, path string, body io.Reader, contentType string, out interface{}) error {
	start := time.Now()
	defer func() {
		upstreamDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		upstreamRequests.WithLabelValues(op, outcomeTransport).Inc()
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		upstreamRequests.WithLabelValues(op, outcomeTransport).Inc()
		return fmt.Errorf("%s: read body: %w", op, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		upstreamRequests.WithLabelValues(op, outcomeAPIError).Inc()
		return parseError(resp.StatusCode, data)
	}
	upstreamRequests.WithLabelValues(op, outcomeOK).Inc()

	if out == nil {
		return nil
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("%s: decode envelope: %w", op, err)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%s: decode data: %w", op, err)
	}
	return nil
}

func (c *HTTPClient) doJSON(ctx context.Context, op, method, path string, in, out interface{}) error {
	if in == nil {
		return c.do(ctx, op, method, path, nil, "", out)
	}
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%s: encode body: %w", op, err)
	}
	return c.do(ctx, op, method, path, bytes.NewReader(payload), "application/json", out)
}

func modelPath(id string) string {
	return "/models/" + url.PathEscape(id)
}

func (c *HTTPClient) ListModels(ctx context.Context) ([]Model, error) {
	var models []Model
	if err := c.doJSON(ctx, "list_models", http.MethodGet, "/models", nil, &models); err != nil {
		return nil, err
	}
	if models == nil {
		models = []Model{}
	}
	return models, nil
}

func (c *HTTPClient) CreateModel(ctx context.Context, req ModelCreate) (*Model, error) {
	var m Model
	if err := c.doJSON(ctx, "create_model", http.MethodPost, "/models", req, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// ImportModel uploads r as the multipart field "file".
func (c *HTTPClient) ImportModel(ctx context.Context, filename string, r io.Reader) (*Model, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("import_model: create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("import_model: copy file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("import_model: close multipart: %w", err)
	}

	var m Model
	if err := c.do(ctx, "import_model", http.MethodPost, "/models/import/", &buf, mw.FormDataContentType(), &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *HTTPClient) GetModel(ctx context.Context, id string) (*Model, error) {
	var m Model
	if err := c.doJSON(ctx, "get_model", http.MethodGet, modelPath(id), nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *HTTPClient) DeleteModel(ctx context.Context, id string) (*Model, error) {
	var m Model
	if err := c.doJSON(ctx, "delete_model", http.MethodDelete, modelPath(id), nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *HTTPClient) ExportModel(ctx context.Context, id string) (*Model, error) {
	var m Model
	if err := c.doJSON(ctx, "export_model", http.MethodGet, modelPath(id)+"/export", nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *HTTPClient) SubmitExpertInput(ctx context.Context, id string, input ExpertInput) (*Model, error) {
	var m Model
	if err := c.doJSON(ctx, "submit_expert_input", http.MethodPost, modelPath(id)+"/experts", input, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *HTTPClient) GetRanking(ctx context.Context, id string) (*Ranking, error) {
	var r Ranking
	if err := c.doJSON(ctx, "get_ranking", http.MethodGet, modelPath(id)+"/rankings", nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

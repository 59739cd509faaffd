package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/roksva123/go-breeze-dashboard/internal/model"
)

// ErrNotList is returned when an endpoint that should answer with a JSON
// array answered with something else.
var ErrNotList = errors.New("response is not a list")

// UpstreamError reports a failed Breeze call. Status is 0 for transport
// failures, timeouts included.
type UpstreamError struct {
	Status   int
	Endpoint string
	Err      error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("HTTP %d from %s: %v", e.Status, e.Endpoint, e.Err)
	}
	return fmt.Sprintf("HTTP %d from %s", e.Status, e.Endpoint)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// BreezeAPI is the subset of the Breeze REST API the dashboard reads.
type BreezeAPI interface {
	RunningTimers(ctx context.Context) (json.RawMessage, error)
	TimeReport(ctx context.Context, q model.ReportQuery) ([]model.ReportEntry, error)
	Users(ctx context.Context) ([]model.BreezeUser, error)
	CurrentUser(ctx context.Context) (model.BreezeUser, error)
	Projects(ctx context.Context) ([]model.BreezeProject, error)
}

type BreezeClient struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

func NewBreezeClient(baseURL, apiKey string, timeout time.Duration) *BreezeClient {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &BreezeClient{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: timeout},
	}
}

// Call performs one request against endpoint. A non-nil body is sent as a
// JSON POST, otherwise the call is a GET. There are no retries.
func (c *BreezeClient) Call(ctx context.Context, endpoint string, body interface{}) (json.RawMessage, error) {
	sep := "?"
	if strings.Contains(endpoint, "?") {
		sep = "&"
	}
	target := c.BaseURL + endpoint + sep + "api_token=" + url.QueryEscape(c.APIKey)

	method := http.MethodGet
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s body: %w", endpoint, err)
		}
		method = http.MethodPost
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, &UpstreamError{Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	res, err := c.Client.Do(req)
	if err != nil {
		return nil, &UpstreamError{Endpoint: endpoint, Err: scrubToken(err, c.APIKey)}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &UpstreamError{Status: res.StatusCode, Endpoint: endpoint}
	}
	if err != nil {
		return nil, &UpstreamError{Status: res.StatusCode, Endpoint: endpoint, Err: err}
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("invalid JSON from %s", endpoint)
	}
	return raw, nil
}

// scrubToken keeps the api key out of url.Error messages, which end up in
// debug_info.
func scrubToken(err error, key string) error {
	var uerr *url.Error
	if key == "" || !errors.As(err, &uerr) {
		return err
	}
	return &url.Error{
		Op:  uerr.Op,
		URL: strings.ReplaceAll(uerr.URL, url.QueryEscape(key), "***"),
		Err: uerr.Err,
	}
}

func (c *BreezeClient) RunningTimers(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "running_timers.json", nil)
}

func (c *BreezeClient) TimeReport(ctx context.Context, q model.ReportQuery) ([]model.ReportEntry, error) {
	raw, err := c.Call(ctx, "reports.json", q)
	if err != nil {
		return nil, err
	}
	items, err := decodeList(raw)
	if err != nil {
		return nil, err
	}
	entries := make([]model.ReportEntry, 0, len(items))
	for _, it := range items {
		entries = append(entries, model.ParseReportEntry(it))
	}
	return entries, nil
}

func (c *BreezeClient) Users(ctx context.Context) ([]model.BreezeUser, error) {
	raw, err := c.Call(ctx, "users.json", nil)
	if err != nil {
		return nil, err
	}
	items, err := decodeList(raw)
	if err != nil {
		return nil, err
	}
	users := make([]model.BreezeUser, 0, len(items))
	for _, it := range items {
		users = append(users, model.ParseBreezeUser(it))
	}
	return users, nil
}

// CurrentUser returns the owner of the api key. A body that is not an object
// yields an empty user.
func (c *BreezeClient) CurrentUser(ctx context.Context) (model.BreezeUser, error) {
	raw, err := c.Call(ctx, "users/me.json", nil)
	if err != nil {
		return model.BreezeUser{}, err
	}
	var obj map[string]interface{}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return model.BreezeUser{}, nil
	}
	return model.ParseBreezeUser(obj), nil
}

func (c *BreezeClient) Projects(ctx context.Context) ([]model.BreezeProject, error) {
	raw, err := c.Call(ctx, "projects.json", nil)
	if err != nil {
		return nil, err
	}
	items, err := decodeList(raw)
	if err != nil {
		return nil, err
	}
	projects := make([]model.BreezeProject, 0, len(items))
	for _, it := range items {
		projects = append(projects, model.ParseBreezeProject(it))
	}
	return projects, nil
}

// decodeList splits a JSON array into objects. Elements that are not objects
// come back as empty maps so they still count as entries.
func decodeList(raw json.RawMessage) ([]map[string]interface{}, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotList
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return nil, ErrNotList
	}
	out := make([]map[string]interface{}, 0, len(elems))
	for _, e := range elems {
		var m map[string]interface{}
		if err := json.Unmarshal(e, &m); err != nil || m == nil {
			m = map[string]interface{}{}
		}
		out = append(out, m)
	}
	return out, nil
}

package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/river/pkg/cache"
	"github.com/matzehuels/river/pkg/errors"
	"github.com/matzehuels/river/pkg/frame"
	"github.com/matzehuels/river/pkg/observability"
	"github.com/matzehuels/river/pkg/pipeline"
)

const testID = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"

const jsonForm = `{
  "title": "Note",
  "components": [
    {"id": "a", "kind": "box", "width": 40, "height": 20},
    {"id": "b", "text": "Hi", "constraints": "br"}
  ]
}`

const tomlForm = `
title = "Note"

[[component]]
id = "a"
kind = "box"
width = 40
height = 20
`

func newTestServer(t *testing.T) (*httptest.Server, *cache.MemoryCache) {
	t.Helper()
	logger := log.New(io.Discard)
	c := cache.NewMemoryCache()
	s := New(pipeline.NewRunner(c, nil, logger), logger)
	s.newID = func() string { return testID }
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts, c
}

func post(t *testing.T, url, contentType, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, contentType, strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestHealth(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := get(t, ts.URL+"/healthz")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if got := resp.Header.Get("Server"); !strings.HasPrefix(got, "river/") {
		t.Errorf("Server header = %q", got)
	}
	body := decode[map[string]string](t, resp)
	if body["status"] != "ok" {
		t.Errorf("status = %q, want ok", body["status"])
	}
}

func TestCreateAndFetch(t *testing.T) {
	ts, c := newTestServer(t)

	resp := post(t, ts.URL+"/v1/layouts?width=300", "application/json", jsonForm)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	if got := resp.Header.Get("Location"); got != "/v1/layouts/"+testID {
		t.Errorf("Location = %q", got)
	}
	created := decode[LayoutResponse](t, resp)
	if created.ID != testID || created.Cached {
		t.Errorf("response id = %q cached = %v", created.ID, created.Cached)
	}
	if created.Frame.Width != 300 || len(created.Frame.Rows) != 2 {
		t.Errorf("frame = %dx%d with %d rows", created.Frame.Width, created.Frame.Height, len(created.Frame.Rows))
	}
	if _, ok, _ := c.Get(context.Background(), "frame:"+testID); !ok {
		t.Error("frame should be stored under its id")
	}

	resp = get(t, ts.URL+"/v1/layouts/"+testID)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET status = %d, want 200", resp.StatusCode)
	}
	fr := decode[frame.Frame](t, resp)
	if fr.Width != 300 || len(fr.Elements) != 2 {
		t.Errorf("stored frame = %+v", fr)
	}

	// The same form again is a layout cache hit.
	resp = post(t, ts.URL+"/v1/layouts?width=300", "application/json", jsonForm)
	if again := decode[LayoutResponse](t, resp); !again.Cached {
		t.Error("second POST should hit the layout cache")
	}
}

func TestCreateTOML(t *testing.T) {
	ts, _ := newTestServer(t)

	for name, req := range map[string]struct{ url, contentType string }{
		"content type": {"/v1/layouts", "application/toml"},
		"query":        {"/v1/layouts?format=toml", "text/plain"},
	} {
		t.Run(name, func(t *testing.T) {
			resp := post(t, ts.URL+req.url, req.contentType, tomlForm)
			if resp.StatusCode != http.StatusCreated {
				t.Fatalf("status = %d, want 201", resp.StatusCode)
			}
			created := decode[LayoutResponse](t, resp)
			if created.Frame.Title != "Note" {
				t.Errorf("title = %q, want Note", created.Frame.Title)
			}
		})
	}
}

func TestExport(t *testing.T) {
	ts, _ := newTestServer(t)
	post(t, ts.URL+"/v1/layouts", "application/json", jsonForm)

	tests := map[string]struct {
		contentType string
		prefix      string
	}{
		"svg":  {"image/svg+xml", "<svg"},
		"png":  {"image/png", "\x89PNG"},
		"json": {"application/json", "{"},
		"txt":  {"text/plain; charset=utf-8", "Note"},
	}

	for format, tt := range tests {
		t.Run(format, func(t *testing.T) {
			resp := get(t, ts.URL+"/v1/layouts/"+testID+"/"+format+"?rows")
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, want 200", resp.StatusCode)
			}
			if got := resp.Header.Get("Content-Type"); got != tt.contentType {
				t.Errorf("Content-Type = %q, want %q", got, tt.contentType)
			}
			body, _ := io.ReadAll(resp.Body)
			if !strings.HasPrefix(string(body), tt.prefix) {
				t.Errorf("body starts with %q, want %q", string(body[:min(len(body), 8)]), tt.prefix)
			}
		})
	}
}

func TestErrors(t *testing.T) {
	ts, _ := newTestServer(t)
	post(t, ts.URL+"/v1/layouts", "application/json", jsonForm)

	tests := map[string]struct {
		method, url, body string
		status            int
		code              errors.Code
	}{
		"malformed json":  {"POST", "/v1/layouts", `{"title":`, 400, errors.ErrCodeInvalidForm},
		"unknown field":   {"POST", "/v1/layouts", `{"colour":"red"}`, 400, errors.ErrCodeInvalidForm},
		"unknown kind":    {"POST", "/v1/layouts", `{"components":[{"id":"x","kind":"slider"}]}`, 400, errors.ErrCodeInvalidForm},
		"bad width":       {"POST", "/v1/layouts?width=wide", jsonForm, 400, errors.ErrCodeInvalidDimensions},
		"negative height": {"POST", "/v1/layouts?height=-5", jsonForm, 400, errors.ErrCodeInvalidDimensions},
		"form format":     {"POST", "/v1/layouts?format=yaml", jsonForm, 400, errors.ErrCodeInvalidFormat},
		"unknown id":      {"GET", "/v1/layouts/00000000-0000-0000-0000-000000000000", "", 404, errors.ErrCodeNotFound},
		"malformed id":    {"GET", "/v1/layouts/latest", "", 404, errors.ErrCodeNotFound},
		"export format":   {"GET", "/v1/layouts/" + testID + "/pdf", "", 400, errors.ErrCodeInvalidFormat},
		"export scale":    {"GET", "/v1/layouts/" + testID + "/svg?scale=big", "", 400, errors.ErrCodeInvalidInput},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var resp *http.Response
			if tt.method == "POST" {
				resp = post(t, ts.URL+tt.url, "application/json", tt.body)
			} else {
				resp = get(t, ts.URL+tt.url)
			}
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			body := decode[errorResponse](t, resp)
			if body.Code != tt.code {
				t.Errorf("code = %s, want %s (%s)", body.Code, tt.code, body.Error)
			}
		})
	}
}

func TestExportCanvasLimit(t *testing.T) {
	ts, _ := newTestServer(t)
	if resp := post(t, ts.URL+"/v1/layouts?width=32768&height=32768", "application/json", jsonForm); resp.StatusCode != http.StatusCreated {
		t.Fatalf("POST status = %d, want 201", resp.StatusCode)
	}

	resp := get(t, ts.URL+"/v1/layouts/"+testID+"/png?scale=8")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if body := decode[errorResponse](t, resp); body.Code != errors.ErrCodeInvalidInput {
		t.Errorf("code = %s, want %s (%s)", body.Code, errors.ErrCodeInvalidInput, body.Error)
	}
}

func TestExpiredFrame(t *testing.T) {
	ts, c := newTestServer(t)
	post(t, ts.URL+"/v1/layouts", "application/json", jsonForm)

	if err := c.Delete(context.Background(), "frame:"+testID); err != nil {
		t.Fatal(err)
	}
	if resp := get(t, ts.URL+"/v1/layouts/"+testID); resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

type recordingHTTPHooks struct {
	mu     sync.Mutex
	routes []string
	status []int
}

func (h *recordingHTTPHooks) OnRequest(context.Context, string, string) {}

func (h *recordingHTTPHooks) OnResponse(_ context.Context, method, route string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.routes = append(h.routes, method+" "+route)
	h.status = append(h.status, status)
}

func TestHTTPHooks(t *testing.T) {
	hooks := &recordingHTTPHooks{}
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	ts, _ := newTestServer(t)
	post(t, ts.URL+"/v1/layouts", "application/json", jsonForm)
	get(t, ts.URL+"/v1/layouts/"+testID)
	get(t, ts.URL+"/v1/layouts/"+testID+"/svg")

	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	want := []string{
		"POST /v1/layouts",
		"GET /v1/layouts/{id}",
		"GET /v1/layouts/{id}/{format}",
	}
	if len(hooks.routes) != len(want) {
		t.Fatalf("routes = %v, want %v", hooks.routes, want)
	}
	for i := range want {
		// The mounted root may be reported with or without its trailing slash.
		if got := strings.TrimSuffix(hooks.routes[i], "/"); got != want[i] {
			t.Errorf("route %d = %q, want %q", i, hooks.routes[i], want[i])
		}
	}
	if hooks.status[0] != http.StatusCreated {
		t.Errorf("POST status = %d, want 201", hooks.status[0])
	}
}

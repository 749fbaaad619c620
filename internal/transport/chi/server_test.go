package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/shoplens/shoplens/internal/domain"
	"github.com/shoplens/shoplens/internal/usecase/pipeline"
)

// --- Mocks ---

type mockQuerier struct {
	resp      pipeline.Response
	err       error
	lastQuery string
	lastOpts  pipeline.Options
}

func (m *mockQuerier) Answer(_ context.Context, query string, opts pipeline.Options) (pipeline.Response, error) {
	m.lastQuery = query
	m.lastOpts = opts
	return m.resp, m.err
}

type mockHealth struct {
	err error
}

func (m *mockHealth) Ping(context.Context) error { return m.err }

func newTestServer(q Querier, h HealthChecker) http.Handler {
	return NewServer(q, h, zap.NewNop()).Router()
}

// --- Tests ---

func TestHandleQuery(t *testing.T) {
	q := &mockQuerier{resp: pipeline.Response{
		Query:   "gift ideas",
		Answer:  "Try a saree.",
		Intent:  "PERSONAL",
		Sources: []pipeline.Source{},
	}}
	srv := newTestServer(q, &mockHealth{})

	req := httptest.NewRequest(http.MethodPost, "/query",
		strings.NewReader(`{"query":"gift ideas","max_results":3}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if q.lastQuery != "gift ideas" || q.lastOpts.MaxResults != 3 {
		t.Errorf("querier got %q / %+v", q.lastQuery, q.lastOpts)
	}

	var resp pipeline.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Answer != "Try a saree." {
		t.Errorf("Answer = %q", resp.Answer)
	}
}

func TestHandleQueryBadJSON(t *testing.T) {
	srv := newTestServer(&mockQuerier{}, &mockHealth{})

	req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleQueryEmptyQuery(t *testing.T) {
	srv := newTestServer(&mockQuerier{}, &mockHealth{})

	req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader(`{"query":""}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleQueryLLMFailure(t *testing.T) {
	q := &mockQuerier{err: domain.ErrLLMFailure}
	srv := newTestServer(q, &mockHealth{})

	req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader(`{"query":"x"}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}

	var er errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &er); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if er.Code != "llm_error" {
		t.Errorf("error code = %q", er.Code)
	}
}

func TestHandleQueryInternalError(t *testing.T) {
	q := &mockQuerier{err: errors.New("boom")}
	srv := newTestServer(q, &mockHealth{})

	req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader(`{"query":"x"}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(&mockQuerier{}, &mockHealth{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestHandleHealthUnavailable(t *testing.T) {
	srv := newTestServer(&mockQuerier{}, &mockHealth{err: errors.New("redis down")})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestRequestIDPropagated(t *testing.T) {
	srv := newTestServer(&mockQuerier{}, &mockHealth{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header not set")
	}
}

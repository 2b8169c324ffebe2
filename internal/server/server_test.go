package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/butterfly/internal/config"
	"github.com/san-kum/butterfly/internal/lorenz"
	"github.com/san-kum/butterfly/internal/view"
)

func testHandler() http.Handler {
	return New("127.0.0.1:0", NewLogger(io.Discard, log.ErrorLevel)).httpServer.Handler
}

func postViews(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/views", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	h := testHandler()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestViews_Defaults(t *testing.T) {
	// Empty body runs the default configuration end to end; shorten the
	// horizon to keep the test quick.
	rec := postViews(t, testHandler(), `{"tf": 2}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ViewsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 200, resp.Samples)
	require.NotNil(t, resp.Views)
	assert.Len(t, resp.Views.Time.Panels, 3)
	assert.Len(t, resp.Views.Plane.Panels, 3)
	assert.Len(t, resp.Views.Portrait.Panels, 1)
	assert.Equal(t, 200, resp.Views.Time.Frames[len(resp.Views.Time.Frames)-1].PrefixLen)
}

func TestViews_CustomRuns(t *testing.T) {
	body := `{
		"tf": 1,
		"path_a": {"sigma": 10, "rho": 28, "beta": 2.6666, "x0": 0, "y0": 1, "z0": 0},
		"path_b": {"sigma": 10, "rho": 28, "beta": 2.6666, "x0": 0, "y0": 1.0001, "z0": 0},
		"strides": {"time": 20, "plane": 10, "portrait": 5}
	}`
	rec := postViews(t, testHandler(), body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ViewsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 100, resp.Samples)
	assert.Equal(t, 20, resp.Views.Time.Frames[1].PrefixLen-resp.Views.Time.Frames[0].PrefixLen)
}

func TestViews_BadRequests(t *testing.T) {
	h := testHandler()

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{`},
		{"zero dt", `{"dt": 0}`},
		{"reversed grid", `{"t0": 10, "tf": 1}`},
		{"bad stride", `{"tf": 1, "strides": {"time": 0, "plane": 10, "portrait": 5}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postViews(t, h, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "error")
		})
	}
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(lorenz.ErrInvalidTimeGrid))
	assert.Equal(t, http.StatusBadRequest, statusFor(lorenz.ErrInvalidStride))
	assert.Equal(t, http.StatusUnprocessableEntity,
		statusFor(fmt.Errorf("path A: %w", &lorenz.InstabilityError{T: 1, Index: 3})))
	assert.Equal(t, http.StatusInternalServerError, statusFor(io.ErrUnexpectedEOF))
}

func TestGenerate_Stateless(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Tf = 2

	a, n1, err := Generate(cfg)
	require.NoError(t, err)
	b, n2, err := Generate(cfg)
	require.NoError(t, err)

	// Identical configs produce identical views with nothing carried
	// between calls.
	assert.Equal(t, n1, n2)
	assert.Equal(t, a.Time.Panels[0].YBounds, b.Time.Panels[0].YBounds)
	assert.Equal(t, a.Portrait.Panels[0].Series[0].X, b.Portrait.Panels[0].Series[0].X)
}

func TestViewsRequest_PartialOverride(t *testing.T) {
	var req ViewsRequest
	require.NoError(t, json.Unmarshal([]byte(`{"dt": 0.02}`), &req))

	cfg := req.config()
	assert.Equal(t, 0.02, cfg.Dt)
	assert.Equal(t, config.DefaultTf, cfg.Tf)
	assert.Equal(t, view.DefaultStrides(), cfg.Strides)
}

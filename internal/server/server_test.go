package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/brandlint/internal/accessibility"
	"github.com/jmylchreest/brandlint/internal/colour"
	"github.com/jmylchreest/brandlint/internal/version"
)

var fixedTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestServer(opts Options) *Server {
	opts.Validator = accessibility.New(accessibility.WithClock(func() time.Time { return fixedTime }))
	return New(opts)
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(ContentTypeHeaderKey, ContentTypeJSON)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

const blackOnWhite = `{
	"primary": "#888888", "secondary": "#888888", "accent": "#888888",
	"background": "#ffffff", "surface": "#888888", "text": "#000000",
	"success": "#888888", "warning": "#888888", "error": "#888888"
}`

func TestValidateColors(t *testing.T) {
	h := newTestServer(Options{}).Handler()

	rec := do(t, h, http.MethodPost, "/api/v1/validate/colors", blackOnWhite)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ContentTypeJSON, rec.Header().Get(ContentTypeHeaderKey))
	assert.Equal(t, CacheControlHeaderNoCache, rec.Header().Get(CacheControlHeaderKey))

	results := decode[accessibility.Results](t, rec)
	assert.True(t, results.IsCompliant)
	assert.Equal(t, 63, results.Score)
	assert.InDelta(t, 21.0, results.ContrastRatios[accessibility.PairTextBackground], 0.01)
	assert.Equal(t, fixedTime, results.LastValidated.UTC())
}

func TestValidateColorsMalformedColourIsAWarning(t *testing.T) {
	h := newTestServer(Options{}).Handler()

	body := strings.Replace(blackOnWhite, `"#ffffff"`, `"notacolor"`, 1)
	rec := do(t, h, http.MethodPost, "/api/v1/validate/colors", body)
	require.Equal(t, http.StatusOK, rec.Code)

	results := decode[accessibility.Results](t, rec)
	assert.False(t, results.IsCompliant)
	assert.True(t, results.HasSeverity(accessibility.SeverityHigh))
}

func TestValidateTypography(t *testing.T) {
	h := newTestServer(Options{}).Handler()

	rec := do(t, h, http.MethodPost, "/api/v1/validate/typography",
		`{"fontFamily": "Inter, sans-serif", "fontSizes": {"base": "0.5rem"}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	results := decode[accessibility.Results](t, rec)
	assert.False(t, results.IsCompliant)
	assert.Equal(t, 80, results.Score)
}

func TestValidateTheme(t *testing.T) {
	h := newTestServer(Options{}).Handler()

	body := `{"id": "brand", "colors": ` + blackOnWhite + `, "typography": {"fontFamily": "Inter"}}`
	rec := do(t, h, http.MethodPost, "/api/v1/validate/theme", body)
	require.Equal(t, http.StatusOK, rec.Code)

	results := decode[accessibility.Results](t, rec)
	assert.True(t, results.IsCompliant)
	assert.Equal(t, 82, results.Score)
}

func TestValidateBadRequests(t *testing.T) {
	h := newTestServer(Options{}).Handler()

	tests := []struct {
		name   string
		target string
		body   string
	}{
		{"malformed json", "/api/v1/validate/colors", `{"text": `},
		{"unknown field", "/api/v1/validate/colors", `{"txt": "#000000"}`},
		{"trailing data", "/api/v1/validate/typography", `{"fontFamily": "Inter"} {}`},
		{"wrong shape", "/api/v1/presets/preview", `{"id": "x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, tt.target, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			resp := decode[errorResponse](t, rec)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestValidateBodyTooLarge(t *testing.T) {
	h := newTestServer(Options{}).Handler()

	body := `{"fontFamily": "` + strings.Repeat("a", 2<<20) + `"}`
	rec := do(t, h, http.MethodPost, "/api/v1/validate/typography", body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestContrast(t *testing.T) {
	h := newTestServer(Options{}).Handler()

	rec := do(t, h, http.MethodGet, "/api/v1/contrast?foreground=%23777777&background=%23ffffff", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[ContrastResponse](t, rec)
	assert.Equal(t, colour.LevelFail, resp.Level)
	assert.False(t, resp.Compliant)
	assert.Equal(t, "4.48:1", resp.RatioText)

	rec = do(t, h, http.MethodGet, "/api/v1/contrast?foreground=%23777777&background=%23ffffff&large=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decode[ContrastResponse](t, rec)
	assert.Equal(t, colour.LevelAA, resp.Level)
	assert.True(t, resp.LargeText)
}

func TestContrastErrors(t *testing.T) {
	h := newTestServer(Options{}).Handler()

	for _, target := range []string{
		"/api/v1/contrast?foreground=%23fff&background=%23000000",
		"/api/v1/contrast?foreground=%23ffffff",
		"/api/v1/contrast?foreground=%23ffffff&background=%23000000&large=maybe",
	} {
		rec := do(t, h, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestSuggest(t *testing.T) {
	h := newTestServer(Options{}).Handler()

	rec := do(t, h, http.MethodGet, "/api/v1/suggest?current=%23777777&target=%23ffffff", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[SuggestResponse](t, rec)
	assert.False(t, resp.AlreadyPass)
	require.NotEmpty(t, resp.Suggestions)
	assert.LessOrEqual(t, len(resp.Suggestions), colour.MaxSuggestions)
	assert.Equal(t, "#1a1a1a", resp.Suggestions[0].Hex)
	for _, s := range resp.Suggestions {
		assert.GreaterOrEqual(t, s.Ratio, colour.MinRatioAANormal)
	}

	rec = do(t, h, http.MethodGet, "/api/v1/suggest?current=%23000000&target=%23ffffff", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decode[SuggestResponse](t, rec)
	assert.True(t, resp.AlreadyPass)
	require.Len(t, resp.Suggestions, 1)
	assert.Equal(t, "#000000", resp.Suggestions[0].Hex)

	rec = do(t, h, http.MethodGet, "/api/v1/suggest?current=red&target=%23ffffff", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPresetPreview(t *testing.T) {
	h := newTestServer(Options{PresetWorkers: 2}).Handler()

	body := `[
		{"id": "mono", "colors": ` + blackOnWhite + `, "typography": {"fontFamily": "Inter"}},
		{"name": "Blank", "colors": {}, "typography": {}}
	]`
	rec := do(t, h, http.MethodPost, "/api/v1/presets/preview", body)
	require.Equal(t, http.StatusOK, rec.Code)

	previews := decode[[]accessibility.PresetPreview](t, rec)
	require.Len(t, previews, 2)
	assert.Equal(t, "mono", previews[0].ID)
	assert.Equal(t, accessibility.BadgeAAA, previews[0].Badge)
	assert.Equal(t, "preset-2", previews[1].ID)
	assert.Equal(t, "Blank", previews[1].Name)
	assert.Equal(t, accessibility.BadgeFail, previews[1].Badge)

	rec = do(t, h, http.MethodPost, "/api/v1/presets/preview", `[]`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHealthAndVersion(t *testing.T) {
	h := newTestServer(Options{}).Handler()

	rec := do(t, h, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/version", "")
	require.Equal(t, http.StatusOK, rec.Code)
	info := decode[version.Info](t, rec)
	assert.Equal(t, version.Version, info.Version)
}

func TestRoutingErrors(t *testing.T) {
	h := newTestServer(Options{}).Handler()

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/api/v1/validate/colors", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/v1/validate/theme", http.StatusMethodNotAllowed},
		{http.MethodPost, "/api/v1/contrast", http.StatusMethodNotAllowed},
		{http.MethodPost, "/healthz", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/v1/nope", http.StatusNotFound},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.path, "")
			assert.Equal(t, tt.want, rec.Code)
			assert.NotEmpty(t, decode[errorResponse](t, rec).Error)
		})
	}
}

func TestCORS(t *testing.T) {
	h := newTestServer(Options{AllowedOrigins: []string{"https://console.example.com"}}).Handler()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://console.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://console.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	plain := newTestServer(Options{}).Handler()
	rec = httptest.NewRecorder()
	plain.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestWrapRecoversPanics(t *testing.T) {
	s := newTestServer(Options{})
	h := s.wrap(func(http.ResponseWriter, *http.Request) { panic("boom") })

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, decode[errorResponse](t, rec).Error, "boom")
}

func TestServeShutsDownOnCancel(t *testing.T) {
	s := newTestServer(Options{ReadTimeout: time.Second, WriteTimeout: time.Second})

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, listener) }()

	url := "http://" + listener.Addr().String() + "/healthz"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url) //nolint:noctx // test-only request
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

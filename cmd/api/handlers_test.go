package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/therealutkarshpriyadarshi/dashmpd/internal/logging"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/manifest"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/middleware"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/packager"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/storage"
	"github.com/therealutkarshpriyadarshi/dashmpd/pkg/models"
	"github.com/therealutkarshpriyadarshi/dashmpd/pkg/mpd"
)

const testMPD = `<MPD xmlns="urn:mpeg:dash:schema:mpd:2011" type="static" mediaPresentationDuration="PT10S">
  <Period><AdaptationSet><Representation id="v1" bandwidth="500000"/></AdaptationSet></Period>
</MPD>`

// stubService answers from an in-memory map and records calls
type stubService struct {
	docs      map[string][]byte
	published []string
	metadata  models.Metadata
	err       error
}

func (s *stubService) Validate(ctx context.Context, data []byte) (mpd.MPD, *models.ManifestSummary, error) {
	m, err := mpd.Unmarshal(data)
	if err != nil {
		return mpd.MPD{}, nil, err
	}
	return m, manifest.Summarize("", m), nil
}

func (s *stubService) Publish(ctx context.Context, name string, data []byte, metadata models.Metadata) (*models.Manifest, error) {
	if s.err != nil {
		return nil, s.err
	}
	if err := manifest.ValidateName(name); err != nil {
		return nil, err
	}
	if _, _, err := s.Validate(ctx, data); err != nil {
		return nil, err
	}
	s.docs[name] = data
	s.published = append(s.published, name)
	s.metadata = metadata
	return &models.Manifest{Name: name, Revision: int64(len(s.published)), Type: "static"}, nil
}

func (s *stubService) Get(ctx context.Context, name string) ([]byte, error) {
	data, ok := s.docs[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, manifest.ErrManifestNotFound)
	}
	return data, nil
}

func (s *stubService) Summary(ctx context.Context, name string) (*models.ManifestSummary, error) {
	data, err := s.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	m, err := mpd.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return manifest.Summarize(name, m), nil
}

func (s *stubService) List(ctx context.Context, limit, offset int) ([]*models.Manifest, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := []*models.Manifest{}
	for name := range s.docs {
		out = append(out, &models.Manifest{Name: name})
	}
	return out, nil
}

func (s *stubService) Revisions(ctx context.Context, name string) ([]*models.ManifestRevision, error) {
	if _, err := s.Get(ctx, name); err != nil {
		return nil, err
	}
	return []*models.ManifestRevision{{Name: name, Revision: 1}}, nil
}

func (s *stubService) Delete(ctx context.Context, name string) error {
	if _, err := s.Get(ctx, name); err != nil {
		return err
	}
	delete(s.docs, name)
	return nil
}

func (s *stubService) Query(ctx context.Context, name, expr string) (*manifest.QueryResult, error) {
	data, err := s.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return manifest.Query(data, expr)
}

func (s *stubService) URL(ctx context.Context, name string, expiry time.Duration) (string, error) {
	if _, err := s.Get(ctx, name); err != nil {
		return "", err
	}
	if expiry <= 0 || expiry > manifest.MaxURLExpiry {
		return "", manifest.ErrInvalidRequest
	}
	return "https://objects.test/manifests/" + name + "/manifest.mpd", nil
}

func (s *stubService) Generate(ctx context.Context, req manifest.GenerateRequest) ([]byte, *packager.DASHResult, error) {
	opts, err := req.Options([]mpd.Profile{mpd.ProfileISOLive})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", manifest.ErrInvalidRequest, err)
	}
	result, err := packager.GenerateDASH(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", manifest.ErrInvalidRequest, err)
	}
	data, err := mpd.Marshal(result.Manifest)
	return data, result, err
}

type quotaStub struct {
	allowed bool
}

func (q *quotaStub) CheckRateLimit(ctx context.Context, key string, limit int64, window time.Duration) (bool, error) {
	return q.allowed, nil
}

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetJWTSecret("api-test-secret")
}

func setupTestRouter(t *testing.T, svc *stubService, opts routeOptions) *gin.Engine {
	t.Helper()
	api := &API{
		manifests: svc,
		checks: map[string]healthCheck{
			"database": func(ctx context.Context) error { return nil },
		},
		maxDocBytes: 4096,
		logger:      logging.NewNopLogger(),
	}
	return setupRouter(api, opts)
}

func newStub() *stubService {
	return &stubService{docs: make(map[string][]byte)}
}

func writeToken(t *testing.T) string {
	t.Helper()
	token, err := middleware.GenerateToken("studio-a", []string{middleware.ScopeWrite}, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(router *gin.Engine, method, path string, body []byte, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthCheck(t *testing.T) {
	router := setupTestRouter(t, newStub(), routeOptions{})

	w := doRequest(router, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decodeBody(t, w)["status"])

	api := &API{
		manifests: newStub(),
		checks: map[string]healthCheck{
			"cache": func(ctx context.Context) error { return errors.New("connection refused") },
		},
		logger: logging.NewNopLogger(),
	}
	w = doRequest(setupRouter(api, routeOptions{}), http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "unhealthy", body["status"])
	assert.Equal(t, "connection refused", body["components"].(map[string]interface{})["cache"])
}

func TestValidateManifest(t *testing.T) {
	router := setupTestRouter(t, newStub(), routeOptions{})

	w := doRequest(router, http.MethodPost, "/api/v1/manifests/validate", []byte(testMPD), "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["valid"])
	assert.Equal(t, "static", body["summary"].(map[string]interface{})["type"])
}

func TestValidateManifestRejections(t *testing.T) {
	router := setupTestRouter(t, newStub(), routeOptions{})

	tests := []struct {
		name   string
		doc    string
		status int
		kind   string
	}{
		{
			name:   "missing bandwidth",
			doc:    `<MPD xmlns="urn:mpeg:dash:schema:mpd:2011"><Period><AdaptationSet><Representation id="v1"/></AdaptationSet></Period></MPD>`,
			status: http.StatusUnprocessableEntity,
			kind:   "missing required field",
		},
		{
			name:   "malformed duration",
			doc:    `<MPD xmlns="urn:mpeg:dash:schema:mpd:2011" mediaPresentationDuration="ten"/>`,
			status: http.StatusUnprocessableEntity,
			kind:   manifest.KindMalformedValue,
		},
		{
			name:   "wrong root",
			doc:    `<SmoothStreamingMedia/>`,
			status: http.StatusUnprocessableEntity,
			kind:   manifest.KindNotMPD,
		},
		{
			name:   "truncated xml",
			doc:    `<MPD xmlns="urn:mpeg:dash:schema:mpd:2011"><Period>`,
			status: http.StatusUnprocessableEntity,
			kind:   manifest.KindMalformedXML,
		},
		{
			name:   "unknown encoding",
			doc:    `<?xml version="1.0" encoding="bogus"?><MPD xmlns="urn:mpeg:dash:schema:mpd:2011"/>`,
			status: http.StatusUnprocessableEntity,
			kind:   manifest.KindMalformedXML,
		},
		{
			name:   "mismatched end tag",
			doc:    `<MPD xmlns="urn:mpeg:dash:schema:mpd:2011"><Period></AdaptationSet></MPD>`,
			status: http.StatusUnprocessableEntity,
			kind:   manifest.KindMalformedXML,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, "/api/v1/manifests/validate", []byte(tt.doc), "")
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.kind, decodeBody(t, w)["kind"])
		})
	}
}

func TestValidateManifestTooLarge(t *testing.T) {
	router := setupTestRouter(t, newStub(), routeOptions{})

	w := doRequest(router, http.MethodPost, "/api/v1/manifests/validate", bytes.Repeat([]byte(" "), 5000), "")
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestPublishRequiresAuth(t *testing.T) {
	svc := newStub()
	router := setupTestRouter(t, svc, routeOptions{})

	w := doRequest(router, http.MethodPut, "/api/v1/manifests/bunny", []byte(testMPD), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	readOnly, err := middleware.GenerateToken("viewer", nil, time.Hour)
	require.NoError(t, err)
	w = doRequest(router, http.MethodPut, "/api/v1/manifests/bunny", []byte(testMPD), "Bearer "+readOnly)
	assert.Equal(t, http.StatusForbidden, w.Code)

	assert.Empty(t, svc.published)
}

func TestPublishAndRead(t *testing.T) {
	svc := newStub()
	router := setupTestRouter(t, svc, routeOptions{})
	auth := writeToken(t)

	w := doRequest(router, http.MethodPut, "/api/v1/manifests/bunny", []byte(testMPD), auth)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "bunny", decodeBody(t, w)["name"])
	assert.Equal(t, "studio-a", svc.metadata["publisher"])
	assert.NotEmpty(t, svc.metadata["request_id"])

	w = doRequest(router, http.MethodGet, "/api/v1/manifests/bunny", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, storage.ContentTypeMPD, w.Header().Get("Content-Type"))
	assert.Equal(t, testMPD, w.Body.String())

	w = doRequest(router, http.MethodGet, "/api/v1/manifests/bunny/summary", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "PT10S", decodeBody(t, w)["media_presentation_duration"])

	w = doRequest(router, http.MethodGet, "/api/v1/manifests/bunny/revisions", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["revisions"], 1)

	w = doRequest(router, http.MethodGet, "/api/v1/manifests?limit=5", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Len(t, body["manifests"], 1)
	assert.Equal(t, float64(5), body["limit"])

	w = doRequest(router, http.MethodDelete, "/api/v1/manifests/bunny", nil, auth)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/manifests/bunny", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublishErrors(t *testing.T) {
	svc := newStub()
	router := setupTestRouter(t, svc, routeOptions{})
	auth := writeToken(t)

	w := doRequest(router, http.MethodPut, "/api/v1/manifests/bad..name", []byte(testMPD), auth)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	invalid := `<MPD xmlns="urn:mpeg:dash:schema:mpd:2011"><Period><AdaptationSet><Representation bandwidth="1"/></AdaptationSet></Period></MPD>`
	w = doRequest(router, http.MethodPut, "/api/v1/manifests/bunny", []byte(invalid), auth)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Representation", body["entity"])
	assert.Empty(t, svc.published)

	svc.err = fmt.Errorf("bunny: %w", manifest.ErrPublishInProgress)
	w = doRequest(router, http.MethodPut, "/api/v1/manifests/bunny", []byte(testMPD), auth)
	assert.Equal(t, http.StatusConflict, w.Code)

	svc.err = errors.New("connection reset by peer")
	w = doRequest(router, http.MethodPut, "/api/v1/manifests/bunny", []byte(testMPD), auth)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", decodeBody(t, w)["error"])
}

func TestPublishQuota(t *testing.T) {
	svc := newStub()
	quota := &quotaStub{allowed: false}
	router := setupTestRouter(t, svc, routeOptions{quota: quota, publishPerMinute: 1})

	w := doRequest(router, http.MethodPut, "/api/v1/manifests/bunny", []byte(testMPD), writeToken(t))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Empty(t, svc.published)

	quota.allowed = true
	w = doRequest(router, http.MethodPut, "/api/v1/manifests/bunny", []byte(testMPD), writeToken(t))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRateLimitedRoutes(t *testing.T) {
	router := setupTestRouter(t, newStub(), routeOptions{limiter: middleware.NewRateLimiter(1, 1)})

	w := doRequest(router, http.MethodGet, "/api/v1/manifests", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	w = doRequest(router, http.MethodGet, "/api/v1/manifests", nil, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// Health is outside the limited group
	w = doRequest(router, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListManifestsBadParams(t *testing.T) {
	router := setupTestRouter(t, newStub(), routeOptions{})

	w := doRequest(router, http.MethodGet, "/api/v1/manifests?limit=ten", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = doRequest(router, http.MethodGet, "/api/v1/manifests?offset=-", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQueryManifest(t *testing.T) {
	svc := newStub()
	svc.docs["bunny"] = []byte(testMPD)
	router := setupTestRouter(t, svc, routeOptions{})

	w := doRequest(router, http.MethodGet, "/api/v1/manifests/bunny/query?xpath=//Representation/@bandwidth", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	nodes := decodeBody(t, w)["nodes"].([]interface{})
	require.Len(t, nodes, 1)
	assert.Equal(t, "500000", nodes[0].(map[string]interface{})["value"])

	w = doRequest(router, http.MethodGet, "/api/v1/manifests/bunny/query", nil, "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/manifests/bunny/query?xpath=//[", nil, "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/manifests/missing/query?xpath=//Period", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestManifestURL(t *testing.T) {
	svc := newStub()
	svc.docs["bunny"] = []byte(testMPD)
	router := setupTestRouter(t, svc, routeOptions{})

	w := doRequest(router, http.MethodGet, "/api/v1/manifests/bunny/url?expires=30m", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "https://objects.test/manifests/bunny/manifest.mpd", body["url"])
	assert.NotEmpty(t, body["expires_at"])

	w = doRequest(router, http.MethodGet, "/api/v1/manifests/bunny/url?expires=soon", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/manifests/bunny/url?expires=9000h", nil, "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/manifests/missing/url", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGenerateManifest(t *testing.T) {
	router := setupTestRouter(t, newStub(), routeOptions{})

	body := `{"title":"Bunny","ladder":["720p","360p"],"duration":"30s"}`
	w := doRequest(router, http.MethodPost, "/api/v1/manifests/generate", []byte(body), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, storage.ContentTypeMPD, w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "<?xml"))

	_, err := mpd.Unmarshal(w.Body.Bytes())
	assert.NoError(t, err)

	w = doRequest(router, http.MethodPost, "/api/v1/manifests/generate", []byte(`{"ladder":["8K"],"duration":"30s"}`), "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doRequest(router, http.MethodPost, "/api/v1/manifests/generate", []byte(`{"ladder":["720p"]}`), "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doRequest(router, http.MethodPost, "/api/v1/manifests/generate", []byte(`{`), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

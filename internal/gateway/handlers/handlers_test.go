package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func service(status int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
}

func readiness(t *testing.T, upstreams map[string]string) (int, map[string]any) {
	t.Helper()
	app := fiber.New()
	app.Get("/health/ready", ReadinessProbe(upstreams))
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestReadinessProbe_AllReady(t *testing.T) {
	a, b := service(http.StatusOK), service(http.StatusOK)
	defer a.Close()
	defer b.Close()

	status, body := readiness(t, map[string]string{"configurator": a.URL, "projects": b.URL})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ready", body["status"])
}

func TestReadinessProbe_UpstreamDown(t *testing.T) {
	ok, failing := service(http.StatusOK), service(http.StatusServiceUnavailable)
	defer ok.Close()
	defer failing.Close()
	gone := service(http.StatusOK)
	goneURL := gone.URL
	gone.Close()

	status, body := readiness(t, map[string]string{"configurator": ok.URL, "projects": failing.URL, "extra": goneURL})
	assert.Equal(t, http.StatusServiceUnavailable, status)
	services := body["services"].(map[string]any)
	assert.Equal(t, "ready", services["configurator"])
	assert.Equal(t, "unavailable", services["projects"])
	assert.Equal(t, "unreachable", services["extra"])
}

func TestSwaggerSpec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "openapi.yaml")
	require.NoError(t, os.WriteFile(path, []byte("openapi: 3.0.3\n"), 0o644))

	app := fiber.New()
	app.Get("/docs/openapi.yaml", SwaggerSpec(path))
	app.Get("/docs/missing.yaml", SwaggerSpec(filepath.Join(t.TempDir(), "none.yaml")))
	app.Get("/docs", SwaggerUI)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs/openapi.yaml", nil))
	require.NoError(t, err)
	data, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "openapi: 3.0.3\n", string(data))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/docs/missing.yaml", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil))
	require.NoError(t, err)
	data, _ = io.ReadAll(resp.Body)
	assert.Contains(t, string(data), "SwaggerUIBundle")
}

func TestOpenAPIDocument(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "..", "docs", "furniture-configurator.openapi.yaml"))
	require.NoError(t, err)

	var doc struct {
		OpenAPI string                    `yaml:"openapi"`
		Paths   map[string]map[string]any `yaml:"paths"`
	}
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Equal(t, "3.0.3", doc.OpenAPI)
	for path, method := range map[string]string{
		"/api/v1/generate":                               "post",
		"/api/v1/render":                                 "post",
		"/api/v1/cutlist":                                "post",
		"/api/v1/materials":                              "get",
		"/api/v1/projects":                               "post",
		"/api/v1/projects/{id}/cabinets":                 "post",
		"/api/v1/projects/{id}/cabinets/{cabinetId}/svg": "get",
		"/api/v1/projects/{id}/export":                   "post",
	} {
		require.Contains(t, doc.Paths, path)
		assert.Contains(t, doc.Paths[path], method, path)
	}
}

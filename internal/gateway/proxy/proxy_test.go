package proxy

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upstream(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "text/plain")
		w.Header().Set("X-Upstream-Path", r.URL.Path)
		w.Header().Set("X-Upstream-Query", r.URL.RawQuery)
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte(r.Method + " " + r.Header.Get("Content-Type") + " " + string(body)))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestProxyTo_ForwardsBodyAndQuery(t *testing.T) {
	srv := upstream(t)
	app := fiber.New()
	app.Post("/api/v1/render", ProxyTo(srv.URL+"/render"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/render?scale=1&dimensions=true", strings.NewReader(`{"a":1}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, "/render", resp.Header.Get("X-Upstream-Path"))
	assert.Equal(t, "scale=1&dimensions=true", resp.Header.Get("X-Upstream-Query"))
	data, _ := io.ReadAll(resp.Body)
	assert.Equal(t, `POST application/json {"a":1}`, string(data))
}

func TestProxyPath_StripsPrefix(t *testing.T) {
	srv := upstream(t)
	app := fiber.New()
	app.Get("/api/v1/projects/:id/parts", ProxyPath(srv.URL+"/", "/api/v1"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/projects/p1/parts?cabinet=c1", nil))
	require.NoError(t, err)
	assert.Equal(t, "/projects/p1/parts", resp.Header.Get("X-Upstream-Path"))
	assert.Equal(t, "cabinet=c1", resp.Header.Get("X-Upstream-Query"))
}

func TestForward_UpstreamDown(t *testing.T) {
	srv := upstream(t)
	target := srv.URL
	srv.Close()

	app := fiber.New()
	app.Get("/x", ProxyTo(target))
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

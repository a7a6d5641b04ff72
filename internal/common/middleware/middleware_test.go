package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORS_ExposesContentDisposition(t *testing.T) {
	app := fiber.New()
	app.Use(Logger())
	app.Use(CORS())
	app.Get("/cutlist", func(c fiber.Ctx) error {
		c.Set("Content-Disposition", `attachment; filename="cutlist.csv"`)
		return c.SendString("cabinet,name\n")
	})

	req := httptest.NewRequest(http.MethodGet, "/cutlist?waste=5", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Content-Disposition", resp.Header.Get("Access-Control-Expose-Headers"))
}

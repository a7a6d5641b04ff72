package handlers

import (
	"net/http"
	"sort"
	"time"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Health Check Handlers
// ============================================================

var probeClient = &http.Client{Timeout: 2 * time.Second}

// LivenessProbe проверяет, что приложение работает
func LivenessProbe(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "alive",
	})
}

// ReadinessProbe опрашивает /health/ready каждого сервиса.
// Gateway готов, только если готовы все сервисы.
func ReadinessProbe(upstreams map[string]string) fiber.Handler {
	names := make([]string, 0, len(upstreams))
	for name := range upstreams {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(c fiber.Ctx) error {
		services := fiber.Map{}
		ready := true
		for _, name := range names {
			status := probe(upstreams[name] + "/health/ready")
			if status != "ready" {
				ready = false
			}
			services[name] = status
		}

		if !ready {
			return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{
				"status":   "unavailable",
				"services": services,
			})
		}
		return c.JSON(fiber.Map{
			"status":   "ready",
			"services": services,
		})
	}
}

func probe(url string) string {
	resp, err := probeClient.Get(url)
	if err != nil {
		return "unreachable"
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "unavailable"
	}
	return "ready"
}

// StartupProbe проверяет, что приложение успешно запустилось
func StartupProbe(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "started",
	})
}

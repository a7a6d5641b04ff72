package config

import (
	"os"
	"strconv"
)

// ============================================================
// Configuration
// ============================================================

type Config struct {
	Port         string
	Environment  string
	ReadTimeout  int
	WriteTimeout int

	// Configurator
	MaterialsPath string

	// Projects
	ProjectsDBPath string
	MigrationsPath string
	ExportsDir     string

	// Gateway upstreams
	ConfiguratorURL string
	ProjectsURL     string
	OpenAPIPath     string
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "3000"),
		Environment:  getEnv("ENV", "development"),
		ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 10),
		WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 10),

		MaterialsPath: getEnv("MATERIALS_PATH", "configs/materials.yaml"),

		ProjectsDBPath: getEnv("PROJECTS_DB_PATH", "data/db/projects.db"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations/001_init_projects.sql"),
		ExportsDir:     getEnv("EXPORTS_DIR", "data/exports"),

		ConfiguratorURL: getEnv("CONFIGURATOR_URL", "http://localhost:3001"),
		ProjectsURL:     getEnv("PROJECTS_URL", "http://localhost:3002"),
		OpenAPIPath:     getEnv("OPENAPI_PATH", "docs/furniture-configurator.openapi.yaml"),
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

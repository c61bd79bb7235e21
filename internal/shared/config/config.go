package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds application configuration.
type Config struct {
	Port               string
	Env                string
	DatabaseURL        string
	CORSAllowOrigin    []string
	ObjectStoreType    string
	LocalStoreDir      string
	AWSRegion          string
	S3Bucket           string
	S3Prefix           string
	ModelBundleKey     string
	APIKey             string
	APIKeyRequired     bool
	RateLimitPerMinute int
}

// fileConfig is the optional YAML config file shape. Environment
// variables take precedence over file values.
type fileConfig struct {
	Port               string   `yaml:"port"`
	Env                string   `yaml:"env"`
	DatabaseURL        string   `yaml:"database_url"`
	CORSAllowOrigins   []string `yaml:"cors_allow_origins"`
	ObjectStore        string   `yaml:"object_store"`
	LocalStoreDir      string   `yaml:"local_store_dir"`
	AWSRegion          string   `yaml:"aws_region"`
	S3Bucket           string   `yaml:"s3_bucket"`
	S3Prefix           string   `yaml:"s3_prefix"`
	ModelBundleKey     string   `yaml:"model_bundle_key"`
	APIKey             string   `yaml:"api_key"`
	APIKeyRequired     *bool    `yaml:"api_key_required"`
	RateLimitPerMinute int      `yaml:"rate_limit_per_minute"`
}

// Load reads configuration from environment variables with sensible
// defaults, optionally layered on top of a YAML file named by
// CONFIG_FILE.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	file := loadFile(os.Getenv("CONFIG_FILE"))

	env := normalizeEnv(getEnv("ENV", fallback(file.Env, "dev")))
	dbURL := getEnv("DATABASE_URL", file.DatabaseURL)

	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}

	corsDefault := "http://localhost:5173"
	if len(file.CORSAllowOrigins) > 0 {
		corsDefault = strings.Join(file.CORSAllowOrigins, ",")
	}

	apiKeyRequired := env == "production"
	if file.APIKeyRequired != nil {
		apiKeyRequired = *file.APIKeyRequired
	}
	if raw := os.Getenv("API_KEY_REQUIRED"); raw != "" {
		apiKeyRequired = parseBool(raw, apiKeyRequired)
	}

	return Config{
		Port:               getEnv("PORT", fallback(file.Port, "8080")),
		Env:                env,
		DatabaseURL:        dbURL,
		CORSAllowOrigin:    splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", corsDefault)),
		ObjectStoreType:    normalizeStoreType(getEnv("OBJECT_STORE", fallback(file.ObjectStore, "local"))),
		LocalStoreDir:      getEnv("LOCAL_STORE_DIR", fallback(file.LocalStoreDir, "./data")),
		AWSRegion:          getEnv("AWS_REGION", file.AWSRegion),
		S3Bucket:           getEnv("S3_BUCKET", file.S3Bucket),
		S3Prefix:           getEnv("S3_PREFIX", file.S3Prefix),
		ModelBundleKey:     getEnv("MODEL_BUNDLE_KEY", fallback(file.ModelBundleKey, "models/bundle.json")),
		APIKey:             getEnv("API_KEY", file.APIKey),
		APIKeyRequired:     apiKeyRequired,
		RateLimitPerMinute: parseInt(getEnv("RATE_LIMIT_PER_MINUTE", ""), fallbackInt(file.RateLimitPerMinute, 120)),
	}
}

func loadFile(path string) fileConfig {
	var out fileConfig
	if path == "" {
		return out
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("config file %s: %v", path, err)
		return out
	}
	if err := yaml.Unmarshal(data, &out); err != nil {
		log.Printf("config file %s: %v", path, err)
		return fileConfig{}
	}
	return out
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func fallback(val, def string) string {
	if strings.TrimSpace(val) != "" {
		return val
	}
	return def
}

func fallbackInt(val, def int) int {
	if val > 0 {
		return val
	}
	return def
}

func parseBool(raw string, def bool) bool {
	parsed, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return parsed
}

func parseInt(raw string, def int) int {
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}

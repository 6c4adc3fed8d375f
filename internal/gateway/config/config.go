package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	DatabaseURL string
	LLM         LLMConfig
	Report      ReportConfig
}

type LLMConfig struct {
	Provider   string
	APIKey     string
	BaseURL    string
	Model      string
	Timeout    time.Duration
	MaxRetries int
	RPS        float64
	Burst      int
}

type ReportConfig struct {
	Enabled   bool
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// CanUseS3 reports whether enough of the S3 config is present to reach
// an object store.
func (c ReportConfig) CanUseS3() bool {
	return c.Enabled && c.Endpoint != "" && c.AccessKey != "" && c.SecretKey != "" && c.Bucket != ""
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", ":8081", "server port")
	flag.Parse()

	if envPort := os.Getenv("PORT"); envPort != "" {
		if strings.HasPrefix(envPort, ":") {
			*port = envPort
		} else {
			*port = ":" + envPort
		}
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	cfg := &Config{
		Port:        *port,
		Env:         env,
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		LLM:         loadLLMConfig(),
		Report:      loadReportConfig(env),
	}
	if cfg.DatabaseURL == "" && isLocal(env) {
		cfg.DatabaseURL = localDatabaseURL()
	}
	return cfg, nil
}

func loadLLMConfig() LLMConfig {
	provider := strings.ToLower(strings.TrimSpace(os.Getenv("LLM_PROVIDER")))
	if provider == "" {
		provider = "openai"
	}
	apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if provider == "gemini" {
		apiKey = strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	}
	return LLMConfig{
		Provider:   provider,
		APIKey:     apiKey,
		BaseURL:    strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")),
		Model:      strings.TrimSpace(os.Getenv("LLM_MODEL")),
		Timeout:    envDuration("LLM_TIMEOUT_MS", 30*time.Second),
		MaxRetries: envInt("LLM_MAX_RETRIES", 3),
		RPS:        envFloat("LLM_RPS", 0),
		Burst:      envInt("LLM_BURST", 1),
	}
}

func loadReportConfig(env string) ReportConfig {
	endpoint := resolveReportEndpoint(env)
	return ReportConfig{
		Enabled:   isLocal(env) || endpoint != "",
		Endpoint:  endpoint,
		Region:    firstNonEmpty(strings.TrimSpace(os.Getenv("REPORT_S3_REGION")), "us-east-1"),
		AccessKey: firstNonEmpty(strings.TrimSpace(os.Getenv("REPORT_S3_ACCESS_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_USER"))),
		SecretKey: firstNonEmpty(strings.TrimSpace(os.Getenv("REPORT_S3_SECRET_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_PASSWORD"))),
		Bucket:    firstNonEmpty(strings.TrimSpace(os.Getenv("REPORT_S3_BUCKET")), "querylens-reports"),
		UseSSL:    resolveReportUseSSL(env),
	}
}

func resolveReportEndpoint(env string) string {
	if isLocal(env) {
		return firstNonEmpty(strings.TrimSpace(os.Getenv("REPORT_MINIO_ENDPOINT")), "minio:9000")
	}
	return strings.TrimSpace(os.Getenv("REPORT_S3_ENDPOINT"))
}

func resolveReportUseSSL(env string) bool {
	if isLocal(env) {
		return false
	}
	raw := strings.TrimSpace(os.Getenv("REPORT_S3_USE_SSL"))
	if raw == "" {
		return true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return true
	}
	return v
}

func isLocal(env string) bool {
	return strings.EqualFold(strings.TrimSpace(env), "local")
}

func envInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func envFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

func envDuration(key string, def time.Duration) time.Duration {
	ms := envInt(key, 0)
	if ms <= 0 {
		return def
	}
	return time.Duration(ms) * time.Millisecond
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

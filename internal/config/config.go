package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort            string  `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL         string  `env:"DATABASE_URL"`
	LLMAPIKey           string  `env:"LLM_API_KEY,required"`
	LLMBaseURL          string  `env:"LLM_BASE_URL" envDefault:"https://api.openai.com/v1"`
	LLMModel            string  `env:"LLM_MODEL" envDefault:"gpt-5.1"`
	SampleCount         int     `env:"SAMPLE_COUNT" envDefault:"5"`
	Concurrency         int     `env:"SAMPLE_CONCURRENCY" envDefault:"5"`
	Temperature         float64 `env:"SAMPLE_TEMPERATURE" envDefault:"1.0"`
	JWTSecret           string  `env:"JWT_SECRET"`
	APISecret           string  `env:"API_SECRET"`
	JWTAccessTTLMinutes int     `env:"JWT_ACCESS_TTL_MINUTES" envDefault:"60"`
	RedisAddr           string  `env:"REDIS_ADDR"`
	RedisPassword       string  `env:"REDIS_PASSWORD"`
	RedisDB             int     `env:"REDIS_DB" envDefault:"0"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Стратегии видео-резолвера; выбор фиксируется на время жизни процесса.
const (
	StrategyAuto   = "auto"
	StrategyHybrid = "hybrid"
	StrategyIndex  = "index"
	StrategyProbe  = "probe"
)

type Config struct {
	AppPort string `mapstructure:"APP_PORT"`

	// --- API ключи ---
	FirecrawlAPIKey string `mapstructure:"FIRECRAWL_API_KEY"`
	GeminiAPIKey    string `mapstructure:"GEMINI_API_KEY"`
	SerperAPIKey    string `mapstructure:"SERPER_API_KEY"`
	YouTubeAPIKey   string `mapstructure:"YOUTUBE_API_KEY"`

	// --- пайплайн ---
	VideoStrategy   string `mapstructure:"VIDEO_STRATEGY"`
	RoadmapCacheTTL int    `mapstructure:"ROADMAP_CACHE_TTL"` // секунды
	CourseCacheTTL  int    `mapstructure:"COURSE_CACHE_TTL"`  // секунды
	MaxVideos       int    `mapstructure:"MAX_VIDEOS"`
	MaxDocs         int    `mapstructure:"MAX_DOCS"`
}

// String реализует интерфейс Stringer
func (c *Config) String() string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  AppPort: %s\n", c.AppPort))
	sb.WriteString(fmt.Sprintf("  VideoStrategy: %s\n", c.VideoStrategy))
	sb.WriteString(fmt.Sprintf("  RoadmapCacheTTL: %ds\n", c.RoadmapCacheTTL))
	sb.WriteString(fmt.Sprintf("  CourseCacheTTL: %ds\n", c.CourseCacheTTL))
	sb.WriteString(fmt.Sprintf("  MaxVideos: %d\n", c.MaxVideos))
	sb.WriteString(fmt.Sprintf("  MaxDocs: %d\n", c.MaxDocs))

	// ключи маскируем
	mask := func(name, v string) {
		if v != "" {
			sb.WriteString(fmt.Sprintf("  %s: ********\n", name))
		} else {
			sb.WriteString(fmt.Sprintf("  %s: (empty)\n", name))
		}
	}
	mask("FirecrawlAPIKey", c.FirecrawlAPIKey)
	mask("GeminiAPIKey", c.GeminiAPIKey)
	mask("SerperAPIKey", c.SerperAPIKey)
	mask("YouTubeAPIKey", c.YouTubeAPIKey)

	return sb.String()
}

// LoadFromEnv загружает конфигурацию из переменных окружения
func LoadFromEnv() (*Config, error) {
	// Загружаем .env только для локальной разработки
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, errors.New("failed to load .env")
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	// Регистрируем интересующие ключи окружения
	keys := []string{
		"APP_PORT",
		"FIRECRAWL_API_KEY", "GEMINI_API_KEY", "SERPER_API_KEY", "YOUTUBE_API_KEY",
		"VIDEO_STRATEGY", "ROADMAP_CACHE_TTL", "COURSE_CACHE_TTL",
		"MAX_VIDEOS", "MAX_DOCS",
	}
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("VIDEO_STRATEGY", StrategyAuto)
	v.SetDefault("ROADMAP_CACHE_TTL", 86400)
	v.SetDefault("COURSE_CACHE_TTL", 86400)
	v.SetDefault("MAX_VIDEOS", 3)
	v.SetDefault("MAX_DOCS", 2)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}

// Missing возвращает список отсутствующих обязательных ключей.
// YOUTUBE_API_KEY обязателен только для стратегии hybrid.
func (c *Config) Missing() []string {
	var missing []string
	if c.FirecrawlAPIKey == "" {
		missing = append(missing, "FIRECRAWL_API_KEY")
	}
	if c.GeminiAPIKey == "" {
		missing = append(missing, "GEMINI_API_KEY")
	}
	if c.SerperAPIKey == "" {
		missing = append(missing, "SERPER_API_KEY")
	}
	if c.VideoStrategy == StrategyHybrid && c.YouTubeAPIKey == "" {
		missing = append(missing, "YOUTUBE_API_KEY")
	}
	return missing
}

func (c *Config) RoadmapTTL() time.Duration {
	return time.Duration(c.RoadmapCacheTTL) * time.Second
}

func (c *Config) CourseTTL() time.Duration {
	return time.Duration(c.CourseCacheTTL) * time.Second
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Logging  LoggingConfig  `yaml:"logging"`
	LLM      LLMConfig      `yaml:"llm"`
	Storage  StorageConfig  `yaml:"storage"`
	EventBus EventBusConfig `yaml:"eventbus"`
}

type ServerConfig struct {
	Port        int      `yaml:"port"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// LLMConfig 는 리뷰 답변/요약 생성에 사용하는 Gemini 호출 설정이다.
// API 키는 설정 파일에 두지 않고 GEMINI_API_KEY 환경변수로만 받는다.
type LLMConfig struct {
	Provider       string `yaml:"provider"`
	ModelName      string `yaml:"model_name"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	// BaseURL 은 비워두면 genai 기본 엔드포인트를 사용한다.
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"-"`
}

// Timeout 은 단일 생성 호출의 최대 대기 시간이다. 0 이하면 30초를 사용한다.
func (c LLMConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

const (
	StorageDriverFile  = "file"
	StorageDriverMongo = "mongo"
)

type StorageConfig struct {
	Driver      string `yaml:"driver"`
	FilePath    string `yaml:"file_path"`
	MongoURI    string `yaml:"mongo_uri"`
	MongoDBName string `yaml:"mongo_db_name"`
}

// EventBusConfig 는 리뷰 이벤트 발행 설정이다. Brokers 가 비어 있으면 발행하지 않는다.
type EventBusConfig struct {
	Brokers string `yaml:"brokers"`
	Topic   string `yaml:"topic"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	c, err := Load(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}
	config = &c
}

// Load 는 주어진 경로의 yaml 을 읽고 기본값과 환경변수 오버라이드를 적용한다.
func Load(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var c AppConfig
	if err := yaml.Unmarshal(data, &c); err != nil {
		return AppConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	applyDefaults(&c)
	applyEnv(&c)
	return c, nil
}

func applyDefaults(c *AppConfig) {
	if c.Server.Port == 0 {
		c.Server.Port = 5000
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = "google"
	}
	if c.LLM.ModelName == "" {
		c.LLM.ModelName = "gemini-2.5-flash"
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = StorageDriverFile
	}
	if c.Storage.FilePath == "" {
		c.Storage.FilePath = "submissions.json"
	}
	if c.Storage.MongoDBName == "" {
		c.Storage.MongoDBName = "reviewdesk"
	}
	if c.EventBus.Topic == "" {
		c.EventBus.Topic = "review-desk.review.events"
	}
}

func applyEnv(c *AppConfig) {
	c.LLM.APIKey = os.Getenv("GEMINI_API_KEY")
	if v := os.Getenv("MONGO_URI"); v != "" {
		c.Storage.MongoURI = v
	}
	if v := os.Getenv("KAFKA_BOOTSTRAP_SERVERS"); v != "" {
		c.EventBus.Brokers = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

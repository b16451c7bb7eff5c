package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), CONFIG_FILE)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("MONGO_URI", "")
	t.Setenv("KAFKA_BOOTSTRAP_SERVERS", "")
	t.Setenv("LOG_LEVEL", "")

	c, err := Load(writeConfig(t, "server:\n  cors_origins: [\"http://localhost:3000\"]\n"))
	require.NoError(t, err)

	assert.Equal(t, 5000, c.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, c.Server.CORSOrigins)
	assert.Equal(t, "info", c.Logging.Level)
	assert.Equal(t, "google", c.LLM.Provider)
	assert.Equal(t, "gemini-2.5-flash", c.LLM.ModelName)
	assert.Equal(t, 30*time.Second, c.LLM.Timeout())
	assert.Equal(t, StorageDriverFile, c.Storage.Driver)
	assert.Equal(t, "submissions.json", c.Storage.FilePath)
	assert.Empty(t, c.EventBus.Brokers)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("MONGO_URI", "mongodb://mongo:27017")
	t.Setenv("KAFKA_BOOTSTRAP_SERVERS", "kafka:9092")
	t.Setenv("LOG_LEVEL", "debug")

	c, err := Load(writeConfig(t, "llm:\n  timeout_seconds: 5\nstorage:\n  driver: mongo\n"))
	require.NoError(t, err)

	assert.Equal(t, "secret", c.LLM.APIKey)
	assert.Equal(t, 5*time.Second, c.LLM.Timeout())
	assert.Equal(t, StorageDriverMongo, c.Storage.Driver)
	assert.Equal(t, "mongodb://mongo:27017", c.Storage.MongoURI)
	assert.Equal(t, "kafka:9092", c.EventBus.Brokers)
	assert.Equal(t, "debug", c.Logging.Level)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "server: [not a map"))
	assert.Error(t, err)
}

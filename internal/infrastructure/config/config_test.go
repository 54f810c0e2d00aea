package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "printhub", cfg.App.Name)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "printhub", cfg.Database.DBName)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "./templates/design", cfg.Template.DesignRoot)
	assert.Equal(t, "./templates/web", cfg.Template.WebRoot)
	assert.Equal(t, 30*time.Second, cfg.Renderer.Timeout)
	assert.Equal(t, 15*time.Minute, cfg.Archive.PresignExpiration)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		applyDefaults(cfg)
		return cfg
	}

	t.Run("defaults pass", func(t *testing.T) {
		assert.NoError(t, valid().validate())
	})

	t.Run("idle conns above open conns fails", func(t *testing.T) {
		cfg := valid()
		cfg.Database.MaxIdleConns = 50
		assert.Error(t, cfg.validate())
	})

	t.Run("production requires database password", func(t *testing.T) {
		cfg := valid()
		cfg.App.Env = "production"
		cfg.Database.SSLMode = "require"
		assert.Error(t, cfg.validate())

		cfg.Database.Password = "secret"
		assert.NoError(t, cfg.validate())
	})

	t.Run("production rejects sslmode disable", func(t *testing.T) {
		cfg := valid()
		cfg.App.Env = "production"
		cfg.Database.Password = "secret"
		assert.Error(t, cfg.validate())
	})

	t.Run("s3 archive requires bucket and credentials", func(t *testing.T) {
		cfg := valid()
		cfg.Archive.S3Enabled = true
		assert.Error(t, cfg.validate())

		cfg.Archive.Bucket = "labels"
		assert.Error(t, cfg.validate())

		cfg.Archive.AccessKey = "key"
		cfg.Archive.SecretKey = "secret"
		assert.NoError(t, cfg.validate())
	})
}

func TestDatabaseDSN(t *testing.T) {
	cfg := &DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "printhub",
		Password: "p@ss/word",
		DBName:   "printhub",
		SSLMode:  "require",
	}
	dsn := cfg.DSN()
	require.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.internal:5432")
	assert.Contains(t, dsn, "sslmode=require")
	// Special characters in the password must be escaped.
	assert.NotContains(t, dsn, "p@ss/word")
}

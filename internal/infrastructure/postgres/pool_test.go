package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-carnes/pkg/config"
)

func TestNewPoolConfig_UsaConfiguracion(t *testing.T) {
	cfg := config.DBConfig{
		Host: "db.interno", Port: 5433, User: "carnes", Password: "secreto", DBName: "carnes", SSLMode: "disable",
		MaxConns: 4, MinConns: 1,
		MaxConnLifetime:   15 * time.Minute,
		MaxConnIdleTime:   2 * time.Minute,
		HealthCheckPeriod: 20 * time.Second,
	}

	pc, err := newPoolConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, int32(4), pc.MaxConns)
	assert.Equal(t, int32(1), pc.MinConns)
	assert.Equal(t, 15*time.Minute, pc.MaxConnLifetime)
	assert.Equal(t, 2*time.Minute, pc.MaxConnIdleTime)
	assert.Equal(t, 20*time.Second, pc.HealthCheckPeriod)
	// el host se usa tal cual, sin resolverlo
	assert.Equal(t, "db.interno", pc.ConnConfig.Host)
	assert.Equal(t, uint16(5433), pc.ConnConfig.Port)
	assert.NotNil(t, pc.AfterConnect)
}

func TestNewPoolConfig_PrefiereDatabaseURL(t *testing.T) {
	cfg := config.DBConfig{
		DatabaseURL: "postgres://u:p@remoto:6543/otra?sslmode=disable",
		Host:        "ignorado", Port: 5432,
		MaxConns: 2,
	}

	pc, err := newPoolConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "remoto", pc.ConnConfig.Host)
	assert.Equal(t, "otra", pc.ConnConfig.Database)
	assert.Equal(t, int32(2), pc.MaxConns)
}

func TestNewPoolConfig_DSNInvalido(t *testing.T) {
	_, err := newPoolConfig(config.DBConfig{DatabaseURL: "postgres://u:p@host:puerto/db", MaxConns: 1})
	assert.Error(t, err)
}

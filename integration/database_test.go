//go:build database

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/huangsam/llmpick/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// exerciseCacheBackend runs the cache lifecycle against a live backend:
// clear, migrate, rank twice (miss then hit), status, prune.
func exerciseCacheBackend(t *testing.T, env []string) {
	t.Helper()

	_, err := runLLMPick(t, env, "cache", "clear")
	require.NoError(t, err)

	out, err := runLLMPick(t, env, "cache", "migrate")
	require.NoError(t, err)
	assert.Contains(t, string(out), "Successfully migrated")

	args := []string{"rank", "--scenario", "documents", "--benchmark", "ifeval", "--output", "json", "--limit", "5"}
	first, err := runLLMPick(t, env, args...)
	require.NoError(t, err)
	second, err := runLLMPick(t, env, args...)
	require.NoError(t, err)

	var a, b schema.RankedOutput
	require.NoError(t, json.Unmarshal(first, &a))
	require.NoError(t, json.Unmarshal(second, &b))
	assert.Equal(t, a, b, "cached ranking should match the computed one")
	assert.Len(t, a.Models, 5)

	out, err = runLLMPick(t, env, "cache", "status")
	require.NoError(t, err)
	assert.Contains(t, string(out), "Connected: true")
	assert.Contains(t, string(out), "Total Entries: 1")

	out, err = runLLMPick(t, env, "cache", "prune", "--max-age", "1h")
	require.NoError(t, err)
	assert.Contains(t, string(out), "Pruned 0")
}

// TestLLMPickWithMySQL tests the llmpick CLI with a MySQL cache backend.
func TestLLMPickWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "llmpick",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(60 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/llmpick?parseTime=true&multiStatements=true", host, port.Port())
	exerciseCacheBackend(t, []string{
		"LLMPICK_CACHE_BACKEND=mysql",
		"LLMPICK_CACHE_DB_CONNECT=" + connStr,
	})
}

// TestLLMPickWithPostgres tests the llmpick CLI with a PostgreSQL cache backend.
func TestLLMPickWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres sslmode=disable", host, port.Port())
	exerciseCacheBackend(t, []string{
		"LLMPICK_CACHE_BACKEND=postgresql",
		"LLMPICK_CACHE_DB_CONNECT=" + connStr,
	})
}

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/llmpick/internal/contract"
	"github.com/huangsam/llmpick/internal/iocache"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// maxPruneAge is the default age after which cached rankings are pruned.
const maxPruneAge = 7 * 24 * time.Hour

// cacheConfig resolves and validates the cache backend settings only.
func cacheConfig() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend, err := contract.ParseDatabaseBackend(viper.GetString("cache-backend"))
	if err != nil {
		return err
	}
	connStr := viper.GetString("cache-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.CacheBackend = backend
	cfg.CacheDBConnect = connStr
	return nil
}

// cacheSetup loads minimal configuration needed for cache operations.
// This is used by commands that need cache access without full shared setup.
func cacheSetup() error {
	if err := cacheConfig(); err != nil {
		return err
	}
	if err := iocache.InitStores(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}
	return nil
}

// cacheSetupWrapper wraps cacheSetup to provide PreRunE for cache commands.
func cacheSetupWrapper(cmd *cobra.Command, _ []string) error {
	if err := bindCommandFlags(cmd); err != nil {
		return err
	}
	return cacheSetup()
}

// cacheConfigWrapper resolves the backend without opening the store,
// so migrations can run on a fresh database and clear can remove the file.
func cacheConfigWrapper(cmd *cobra.Command, _ []string) error {
	if err := bindCommandFlags(cmd); err != nil {
		return err
	}
	return cacheConfig()
}

// cacheCmd focused on cache management.
//
// Note: Cache subcommands use minimal initialization (cacheSetup) instead of
// the full sharedSetup used by ranking commands. This avoids catalog and
// selection validation for simple cache operations.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the ranking cache",
	Long: `Manage the cache of computed rankings.

llmpick stores every computed ranking keyed by the catalog contents and the
selection, so repeated queries skip the ranking work. Editing the catalog
changes the key, so stale entries are never served for new data.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show cache statistics and connection info
  clear   - Remove all cached data
  migrate - Run cache schema migrations
  prune   - Remove old cached rankings

Examples:
  # Check cache status
  llmpick cache status

  # Clear cache
  llmpick cache clear`,
}

// cacheClearCmd clears the cache.
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached rankings",
	Long: `Delete all cached rankings from the configured backend.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the cache table

Examples:
  # Clear SQLite cache (default)
  llmpick cache clear

  # Clear MySQL cache (set connection string via env variable)
  LLMPICK_CACHE_BACKEND=mysql LLMPICK_CACHE_DB_CONNECT="..." llmpick cache clear`,
	PreRunE: cacheConfigWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		dbFilePath := iocache.ResolveSQLitePath(cfg.CacheDBConnect)
		if err := iocache.ClearCache(cfg.CacheBackend, dbFilePath, cfg.CacheDBConnect); err != nil {
			contract.LogFatal("Failed to clear cache", err)
		}
		fmt.Println("Cache cleared successfully.")
	},
}

// cacheStatusCmd shows cache status.
var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display cache statistics and connection details",
	Long: `Show detailed information about the ranking cache.

Displays:
- Backend type and connection status
- Total number of cached rankings
- Last and oldest cache entry timestamps
- Cache table size

Examples:
  llmpick cache status`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := iocache.Manager.GetRankStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get cache status", err)
		}
		iocache.PrintCacheStatus(os.Stdout, status)
	},
}

// cacheMigrateCmd runs schema migrations for the cache store.
var cacheMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run cache schema migrations (upgrades/downgrades)",
	Long: `Manage schema versions for the ranking cache.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  llmpick cache migrate

  # Migrate to specific version
  llmpick cache migrate --target-version 1

  # Rollback to initial state
  llmpick cache migrate --target-version 0`,
	PreRunE: cacheConfigWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iocache.MigrateCache(os.Stdout, cfg.CacheBackend, cfg.CacheDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}

// cachePruneCmd removes old cache entries.
var cachePruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove cached rankings older than --max-age",
	Long: `Delete cached rankings written before now minus --max-age.

Rankings older than a week are already ignored on read; pruning reclaims their space.

Examples:
  llmpick cache prune
  llmpick cache prune --max-age 24h`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		maxAge := viper.GetDuration("max-age")
		if maxAge <= 0 {
			contract.LogFatal("Invalid --max-age", fmt.Errorf("must be positive (received %s)", maxAge))
		}
		store := iocache.Manager.GetRankStore()
		if store == nil {
			contract.LogFatal("Failed to prune cache", fmt.Errorf("cache store is not initialized"))
		}
		removed, err := store.Prune(time.Now().Add(-maxAge).Unix())
		if err != nil {
			contract.LogFatal("Failed to prune cache", err)
		}
		fmt.Printf("Pruned %d cached rankings older than %s.\n", removed, maxAge)
	},
}

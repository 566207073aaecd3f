package core

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type LogLevel int

const (
	LogLevelSilent LogLevel = iota + 1
	LogLevelError
	LogLevelWarn
	LogLevelInfo
)

// DatabaseManager owns a single MySQL pool shared by every tenant. Each
// request borrows one connection, switches to the tenant schema and wraps
// it in GORM.
type DatabaseManager struct {
	SqlDB    *sql.DB
	LogLevel LogLevel

	// ResolveSchema, when set, is consulted before the hostname-derived
	// schema name. Lets deployments map hostnames via an external
	// registry instead of DNS conventions.
	ResolveSchema func(ctx context.Context, hostname string) (string, error)
}

// New creates the global pool. dsn should NOT include a schema (just
// host/user/pass).
func New(dsn string, maxConnection int) (*DatabaseManager, error) {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open pool: %w", err)
	}

	sqlDB.SetMaxOpenConns(maxConnection)
	sqlDB.SetMaxIdleConns(maxConnection)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping pool: %w", err)
	}

	return &DatabaseManager{SqlDB: sqlDB}, nil
}

// TenantSchema maps a request hostname to the tenant schema, e.g.
// "acme.worksight.com" -> "acme". Local development resolves against the
// schema embedded in the DSN.
func TenantSchema(hostname string) string {
	if hostname == "localhost" {
		dsn := os.Getenv("WORKSIGHT_DSN")

		// Strip query params, then take the DB name after the last "/".
		parts := strings.SplitN(dsn, "?", 2)
		segments := strings.Split(parts[0], "/")
		return segments[len(segments)-1]
	}

	parts := strings.Split(hostname, ".")
	return parts[0]
}

// GetDB gets a *gorm.DB bound to a single connection with the tenant
// schema selected. The caller owns closing the returned conn.
func (dm *DatabaseManager) GetDB(ctx context.Context, hostname string) (*gorm.DB, *sql.Conn, error) {
	schema := ""
	if dm.ResolveSchema != nil {
		resolved, err := dm.ResolveSchema(ctx, hostname)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to resolve schema for %s: %w", hostname, err)
		}
		schema = resolved
	}
	if schema == "" {
		schema = TenantSchema(hostname)
	}

	conn, err := dm.SqlDB.Conn(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get conn: %w", err)
	}
	defer func() {
		if conn != nil {
			conn.Close()
		}
	}()

	if _, err := conn.ExecContext(ctx, "USE `"+schema+"`"); err != nil {
		return nil, nil, fmt.Errorf("failed to use schema %s: %w", schema, err)
	}

	dialector := mysql.New(mysql.Config{
		Conn: conn, // lock GORM to this connection
	})

	gormLogLevel := logger.Silent
	switch dm.LogLevel {
	case LogLevelError:
		gormLogLevel = logger.Error
	case LogLevelWarn:
		gormLogLevel = logger.Warn
	case LogLevelInfo:
		gormLogLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open gorm: %w", err)
	}

	// cancel the deferred close; caller will close
	defer func() { conn = nil }()
	return db, conn, nil
}

// Exec runs fn against the tenant's schema and releases the connection.
func (dm *DatabaseManager) Exec(ctx context.Context, hostname string, fn func(db *gorm.DB) error) error {
	db, conn, err := dm.GetDB(ctx, hostname)
	if err != nil {
		return err
	}
	defer conn.Close()

	return fn(db)
}

// GetAllTenants lists every tenant schema on the server.
func (dm *DatabaseManager) GetAllTenants(ctx context.Context) ([]string, error) {
	rows, err := dm.SqlDB.QueryContext(ctx, "SHOW DATABASES")
	if err != nil {
		return nil, fmt.Errorf("failed to query databases: %w", err)
	}
	defer rows.Close()

	var tenants []string
	for rows.Next() {
		var db string
		if err := rows.Scan(&db); err != nil {
			return nil, fmt.Errorf("failed to scan database name: %w", err)
		}

		switch db {
		case "information_schema", "mysql", "performance_schema", "sys":
			continue
		}
		tenants = append(tenants, db)
	}

	return tenants, nil
}

// Close closes the global pool
func (dm *DatabaseManager) Close() error {
	return dm.SqlDB.Close()
}

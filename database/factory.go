package database

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jing2uo/top100db/database/duckdb"
	"github.com/jing2uo/top100db/database/mysql"
	"github.com/jing2uo/top100db/database/postgres"
	"github.com/jing2uo/top100db/database/sqlite"
	"github.com/jing2uo/top100db/model"
)

// ParseURI 解析数据库地址, 仅检查协议
func ParseURI(uri string) (model.DBConfig, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return model.DBConfig{}, fmt.Errorf("invalid database uri: %w", err)
	}

	var dbType model.DBType
	switch strings.ToLower(u.Scheme) {
	case "duckdb":
		dbType = model.DBTypeDuckDB
	case "postgres", "postgresql":
		dbType = model.DBTypePostgres
	case "mysql":
		dbType = model.DBTypeMySQL
	case "sqlite", "sqlite3":
		dbType = model.DBTypeSQLite
	case "":
		return model.DBConfig{}, fmt.Errorf("database uri %q has no scheme", uri)
	default:
		return model.DBConfig{}, fmt.Errorf("unsupported db type: %s", u.Scheme)
	}

	return model.DBConfig{Type: dbType, DSN: uri}, nil
}

func NewDatabase(cfg model.DBConfig) (DataRepository, error) {
	u, err := url.Parse(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("invalid database uri: %w", err)
	}
	meta := model.TableTop100.Named(cfg.Table)

	switch cfg.Type {
	case model.DBTypeDuckDB:
		return duckdb.NewDriver(u, meta), nil
	case model.DBTypePostgres:
		d, err := postgres.NewDriver(u, meta)
		if err != nil {
			return nil, err
		}
		return d, nil
	case model.DBTypeMySQL:
		d, err := mysql.NewDriver(u, meta)
		if err != nil {
			return nil, err
		}
		return d, nil
	case model.DBTypeSQLite:
		return sqlite.NewDriver(u, meta), nil
	default:
		return nil, fmt.Errorf("unsupported db type: %s", cfg.Type)
	}
}

// NewDB 根据地址协议创建对应的后端
func NewDB(uri, table string) (DataRepository, error) {
	cfg, err := ParseURI(uri)
	if err != nil {
		return nil, err
	}
	cfg.Table = table
	return NewDatabase(cfg)
}

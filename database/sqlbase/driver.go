// Package sqlbase 实现各数据库后端共用的 sqlx 逻辑, 方言差异由 Dialect 提供
package sqlbase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jing2uo/top100db/model"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

var ErrConnection = errors.New("database connection failed")

type Dialect interface {
	// DriverName 是 database/sql 注册的驱动名
	DriverName() string
	MapType(dt model.DataType) string
	// KeyColumn 返回自增主键列的定义
	KeyColumn(meta *model.TableMeta) string
	// PreCreate 返回建表前需要执行的语句, 如 DuckDB 的序列
	PreCreate(meta *model.TableMeta) []string
	// ListTables 返回列出当前库所有表名的查询
	ListTables() string
	QuoteIdent(name string) string
	// BindDate 把日期转换为驱动可直接绑定的值
	BindDate(t time.Time) any
}

type Driver struct {
	dialect Dialect
	dsn     string
	meta    *model.TableMeta
	db      *sqlx.DB
}

func New(dialect Dialect, dsn string, meta *model.TableMeta) *Driver {
	if meta == nil {
		meta = model.TableTop100
	}
	return &Driver{dialect: dialect, dsn: dsn, meta: meta}
}

func (d *Driver) Connect(ctx context.Context) error {
	db, err := sqlx.Open(d.dialect.DriverName(), d.dsn)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrConnection, d.dialect.DriverName(), err)
	}

	// 单次导入只需要一个连接
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("%w: %s ping failed: %w", ErrConnection, d.dialect.DriverName(), err)
	}

	log.Debug().Str("driver", d.dialect.DriverName()).Str("table", d.meta.TableName).Msg("connected")
	d.db = db
	return nil
}

func (d *Driver) Ping(ctx context.Context) error {
	db, err := d.conn()
	if err != nil {
		return err
	}
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}
	return nil
}

func (d *Driver) Close() error {
	if d.db != nil {
		err := d.db.Close()
		d.db = nil
		return err
	}
	return nil
}

func (d *Driver) Table() *model.TableMeta {
	return d.meta
}

// DB 暴露底层连接, 供测试和导出使用
func (d *Driver) DB() *sqlx.DB {
	return d.db
}

// conn 在 Connect 之前返回 ErrConnection
func (d *Driver) conn() (*sqlx.DB, error) {
	if d.db == nil {
		return nil, fmt.Errorf("%w: not connected", ErrConnection)
	}
	return d.db, nil
}

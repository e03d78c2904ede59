package database

import (
	"context"
	"time"

	"github.com/jing2uo/top100db/database/sqlbase"
	"github.com/jing2uo/top100db/model"
)

var ErrConnection = sqlbase.ErrConnection

type DataRepository interface {
	Connect(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error

	Table() *model.TableMeta
	TableExists(ctx context.Context) (bool, error)
	CreateTable(ctx context.Context) error

	AlreadyLoaded(ctx context.Context, date time.Time) (bool, error)
	InsertRows(ctx context.Context, rows []model.TopStock) (int, error)

	QueryRows(ctx context.Context, date *time.Time) ([]model.TopStock, error)
	ReportDates(ctx context.Context) ([]time.Time, error)
}

// EnsureTable 在表不存在时建表, created 表示本次是否新建
func EnsureTable(ctx context.Context, db DataRepository) (created bool, err error) {
	exists, err := db.TableExists(ctx)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	if err := db.CreateTable(ctx); err != nil {
		return false, err
	}
	return true, nil
}

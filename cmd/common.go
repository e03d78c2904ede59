package cmd

import (
	"context"
	"fmt"

	"github.com/jing2uo/top100db/database"
	"github.com/rs/zerolog/log"
)

// Options 是已解析的运行参数
type Options struct {
	DB    string
	File  string
	Table string
}

// openDB 创建并连接数据库, 调用方负责 Close
func openDB(ctx context.Context, opts Options) (database.DataRepository, error) {
	db, err := database.NewDB(opts.DB, opts.Table)
	if err != nil {
		return nil, fmt.Errorf("failed to create database driver: %w", err)
	}

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func closeDB(db database.DataRepository) {
	if err := db.Close(); err != nil {
		log.Warn().Err(err).Msg("failed to close database")
	}
}

package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/jing2uo/top100db/loader"
	"github.com/jing2uo/top100db/workflow"
	"github.com/rs/zerolog/log"
)

// Load 连接数据库、确保表存在并导入当前文件
func Load(ctx context.Context, opts Options) (*loader.Result, error) {
	start := time.Now()

	db, err := openDB(ctx, opts)
	if err != nil {
		return nil, err
	}
	defer closeDB(db)

	executor := workflow.NewTaskExecutor(db, workflow.GetRegisteredTasks())
	args := &workflow.TaskArgs{File: opts.File}

	if _, err := executor.Run(ctx, workflow.GetLoadTaskNames(), args); err != nil {
		return nil, fmt.Errorf("workflow execution failed: %w", err)
	}
	if args.Result == nil {
		return nil, fmt.Errorf("dataset was not loaded")
	}

	log.Info().Dur("elapsed", time.Since(start)).Msg(args.Result.String())
	return args.Result, nil
}

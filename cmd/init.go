package cmd

import (
	"context"
	"fmt"

	"github.com/jing2uo/top100db/workflow"
	"github.com/rs/zerolog/log"
)

// Init 只确保目标表存在
func Init(ctx context.Context, opts Options) error {
	db, err := openDB(ctx, opts)
	if err != nil {
		return err
	}
	defer closeDB(db)

	executor := workflow.NewTaskExecutor(db, workflow.GetRegisteredTasks())
	results, err := executor.Run(ctx, workflow.GetInitTaskNames(), &workflow.TaskArgs{})
	if err != nil {
		return fmt.Errorf("failed to initialize table: %w", err)
	}

	table := db.Table().TableName
	if r := results[workflow.NameEnsureTable]; r != nil && r.State == workflow.StateSkipped {
		log.Info().Str("table", table).Msg("🌲 table already exists")
	} else {
		log.Info().Str("table", table).Msg("🚀 table created")
	}
	return nil
}

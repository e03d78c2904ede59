package workflow

import (
	"context"
	"fmt"

	"github.com/jing2uo/top100db/database"
	"github.com/jing2uo/top100db/loader"
	"github.com/jing2uo/top100db/mapper"
	"github.com/rs/zerolog/log"
)

const (
	NameEnsureTable = "ensure_table"
	NameReadDataset = "read_dataset"
	NameLoadDataset = "load_dataset"
)

var (
	TaskEnsureTable *Task
	TaskReadDataset *Task
	TaskLoadDataset *Task
)

func init() {
	TaskEnsureTable = &Task{
		Name:      NameEnsureTable,
		DependsOn: []string{},
		Executor:  executeEnsureTable,
	}

	TaskReadDataset = &Task{
		Name:      NameReadDataset,
		DependsOn: []string{},
		Executor:  executeReadDataset,
	}

	TaskLoadDataset = &Task{
		Name:      NameLoadDataset,
		DependsOn: []string{NameEnsureTable, NameReadDataset},
		Executor:  executeLoadDataset,
	}
}

func executeEnsureTable(ctx context.Context, db database.DataRepository, args *TaskArgs) (*TaskResult, error) {
	created, err := database.EnsureTable(ctx, db)
	if err != nil {
		return nil, err
	}
	if !created {
		return &TaskResult{State: StateSkipped, Message: "table exists"}, nil
	}

	log.Info().Str("table", db.Table().TableName).Msg("🛠️  table created")
	return &TaskResult{State: StateCompleted, Message: "table created"}, nil
}

func executeReadDataset(ctx context.Context, db database.DataRepository, args *TaskArgs) (*TaskResult, error) {
	log.Info().Str("file", args.File).Msg("📦 reading dataset")

	ds, err := mapper.ReadDataset(args.File)
	if err != nil {
		return nil, err
	}
	args.Dataset = ds
	return &TaskResult{State: StateCompleted, Rows: ds.Len(), Message: "dataset read"}, nil
}

func executeLoadDataset(ctx context.Context, db database.DataRepository, args *TaskArgs) (*TaskResult, error) {
	if args.Dataset == nil {
		return nil, fmt.Errorf("no dataset to load")
	}

	result, err := loader.New(db).Load(ctx, args.Dataset)
	if err != nil {
		return nil, err
	}
	args.Result = result

	if result.Outcome == loader.OutcomeAlreadyLoaded {
		return &TaskResult{State: StateSkipped, Message: result.String()}, nil
	}
	return &TaskResult{State: StateCompleted, Rows: result.Inserted, Message: result.String()}, nil
}

// GetLoadTaskNames 是默认命令执行的任务
func GetLoadTaskNames() []string {
	return []string{
		NameEnsureTable,
		NameReadDataset,
		NameLoadDataset,
	}
}

// GetInitTaskNames 只建表
func GetInitTaskNames() []string {
	return []string{
		NameEnsureTable,
	}
}

func GetRegisteredTasks() map[string]*Task {
	return map[string]*Task{
		NameEnsureTable: TaskEnsureTable,
		NameReadDataset: TaskReadDataset,
		NameLoadDataset: TaskLoadDataset,
	}
}

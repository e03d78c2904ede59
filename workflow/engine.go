package workflow

import (
	"context"
	"fmt"

	"github.com/jing2uo/top100db/database"
	"github.com/jing2uo/top100db/loader"
	"github.com/jing2uo/top100db/model"
	"github.com/rs/zerolog/log"
)

// TaskState represents the state of a task execution
type TaskState string

const (
	StatePending   TaskState = "pending"
	StateRunning   TaskState = "running"
	StateCompleted TaskState = "completed"
	StateSkipped   TaskState = "skipped"
	StateFailed    TaskState = "failed"
)

// TaskResult holds the execution result of a task
type TaskResult struct {
	State   TaskState
	Rows    int
	Message string
	Error   error
}

// TaskFunc is the function that executes a task
type TaskFunc func(ctx context.Context, db database.DataRepository, args *TaskArgs) (*TaskResult, error)

// Task represents a unit of work with dependencies
type Task struct {
	Name      string
	DependsOn []string
	Executor  TaskFunc
}

// TaskArgs carries the input file and the values tasks hand to each other
type TaskArgs struct {
	File string

	Dataset *model.Dataset
	Result  *loader.Result
}

// TaskExecutor runs tasks one at a time in dependency order
type TaskExecutor struct {
	db    database.DataRepository
	tasks map[string]*Task
}

func NewTaskExecutor(db database.DataRepository, tasks map[string]*Task) *TaskExecutor {
	return &TaskExecutor{
		db:    db,
		tasks: tasks,
	}
}

// Run executes taskNames and returns the result of every task that ran
func (te *TaskExecutor) Run(ctx context.Context, taskNames []string, args *TaskArgs) (map[string]*TaskResult, error) {
	results := make(map[string]*TaskResult)
	if len(taskNames) == 0 {
		return results, nil
	}

	order, err := te.topologicalSort(taskNames)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve task dependencies: %w", err)
	}

	for _, name := range order {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		task := te.tasks[name]
		if !te.depsDone(task, results) {
			results[name] = &TaskResult{State: StatePending, Message: "dependency did not complete"}
			continue
		}

		result := te.executeTask(ctx, task, args)
		results[name] = result
		log.Debug().Str("task", name).Str("state", string(result.State)).Int("rows", result.Rows).Msg(result.Message)

		if result.Error != nil {
			return results, fmt.Errorf("task %s failed: %w", name, result.Error)
		}
	}

	return results, nil
}

func (te *TaskExecutor) executeTask(ctx context.Context, task *Task, args *TaskArgs) *TaskResult {
	result, err := task.Executor(ctx, te.db, args)
	if err != nil {
		return &TaskResult{
			State: StateFailed,
			Error: err,
		}
	}
	if result == nil {
		return &TaskResult{State: StateCompleted}
	}
	return result
}

// topologicalSort keeps the caller's order among tasks whose dependencies are met
func (te *TaskExecutor) topologicalSort(taskNames []string) ([]string, error) {
	inDegree := make(map[string]int)
	adj := make(map[string][]string)
	taskSet := make(map[string]bool)

	for _, name := range taskNames {
		if _, exists := te.tasks[name]; !exists {
			return nil, fmt.Errorf("task %s not found", name)
		}
		taskSet[name] = true
		inDegree[name] = 0
	}

	for _, name := range taskNames {
		task := te.tasks[name]
		for _, dep := range task.DependsOn {
			if !taskSet[dep] {
				continue
			}
			adj[dep] = append(adj[dep], name)
			inDegree[name]++
		}
	}

	var order []string
	done := make(map[string]bool)
	for len(order) < len(taskNames) {
		progressed := false
		for _, name := range taskNames {
			if done[name] || inDegree[name] > 0 {
				continue
			}
			done[name] = true
			order = append(order, name)
			for _, next := range adj[name] {
				inDegree[next]--
			}
			progressed = true
		}
		if !progressed {
			return nil, fmt.Errorf("circular dependency detected")
		}
	}

	return order, nil
}

func (te *TaskExecutor) depsDone(task *Task, results map[string]*TaskResult) bool {
	for _, dep := range task.DependsOn {
		result, exists := results[dep]
		if !exists {
			continue
		}
		if result.State != StateCompleted && result.State != StateSkipped {
			return false
		}
	}
	return true
}


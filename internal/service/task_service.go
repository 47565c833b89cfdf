package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"choreboard/internal/metric"
	"choreboard/internal/model"
	"choreboard/internal/repositories"
)

var ErrInvalidInput = errors.New("invalid input")

// TaskService defines business-logic operations for tasks.
type TaskService interface {
	Create(ctx context.Context, task *model.Task) (*model.Task, error)

	GetByID(ctx context.Context, id int64) (*model.Task, error)

	List(ctx context.Context) ([]model.Task, error)
	ListDetailed(ctx context.Context) ([]model.TaskView, error)

	// Update applies either a completion or an overwrite and returns the
	// task as stored afterwards.
	Update(ctx context.Context, id int64, upd model.TaskUpdate) (*model.Task, error)

	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)

	Upcoming(ctx context.Context) ([]model.TaskView, error)
	Overdue(ctx context.Context) ([]model.TaskView, error)
	CompletedThisWeek(ctx context.Context) ([]model.Task, error)

	SetCacheClient(rdb *redis.Client)
}

type taskService struct {
	repo repositories.TaskRepository
}

func NewTaskService(repo repositories.TaskRepository) TaskService {
	return &taskService{repo: repo}
}

func (s *taskService) SetCacheClient(rdb *redis.Client) {
	s.repo.SetCacheClient(rdb)
}

func (s *taskService) Create(ctx context.Context, task *model.Task) (*model.Task, error) {
	task.Title = strings.TrimSpace(task.Title)
	if task.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if task.Priority == nil {
		p := model.PriorityLow
		task.Priority = &p
	}
	if err := validateFields(task.Priority, task.DueDate); err != nil {
		return nil, err
	}
	task.Status = model.StatusPending
	task.CompletedAt = model.NullTime{}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	// Update metrics
	metric.IncTaskCount()

	return task, nil
}

func (s *taskService) GetByID(ctx context.Context, id int64) (*model.Task, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *taskService) List(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx)
}

func (s *taskService) ListDetailed(ctx context.Context) ([]model.TaskView, error) {
	return s.repo.ListDetailed(ctx)
}

func (s *taskService) Update(ctx context.Context, id int64, upd model.TaskUpdate) (*model.Task, error) {
	switch u := upd.(type) {
	case model.CompleteTask:
		if err := s.repo.Complete(ctx, id); err != nil {
			return nil, err
		}
	case model.OverwriteTask:
		u.Title = strings.TrimSpace(u.Title)
		if u.Title == "" {
			return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
		}
		if err := validateFields(u.Priority, u.DueDate); err != nil {
			return nil, err
		}
		if err := s.repo.Overwrite(ctx, id, u); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: unsupported update %T", ErrInvalidInput, upd)
	}

	return s.repo.GetByID(ctx, id)
}

// Delete removes a task. Deleting an id that does not exist succeeds.
func (s *taskService) Delete(ctx context.Context, id int64) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if ok {
		metric.DecTaskCount()
	}
	return nil
}

func (s *taskService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func (s *taskService) Upcoming(ctx context.Context) ([]model.TaskView, error) {
	return s.repo.Upcoming(ctx)
}

func (s *taskService) Overdue(ctx context.Context) ([]model.TaskView, error) {
	return s.repo.Overdue(ctx)
}

func (s *taskService) CompletedThisWeek(ctx context.Context) ([]model.Task, error) {
	return s.repo.CompletedThisWeek(ctx)
}

func validateFields(priority, dueDate *string) error {
	if priority != nil && !model.ValidPriority(*priority) {
		return fmt.Errorf("%w: priority must be one of Low, Medium, High", ErrInvalidInput)
	}
	if dueDate != nil {
		if _, err := time.Parse(model.DueDateLayout, *dueDate); err != nil {
			return fmt.Errorf("%w: due_date must be YYYY-MM-DD", ErrInvalidInput)
		}
	}
	return nil
}

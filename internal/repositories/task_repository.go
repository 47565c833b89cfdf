package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"choreboard/internal/model"
)

// TaskRepository defines DB operations for tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	GetByID(ctx context.Context, id int64) (*model.Task, error)
	List(ctx context.Context) ([]model.Task, error)
	// ListDetailed returns every task with its room and roommate names.
	ListDetailed(ctx context.Context) ([]model.TaskView, error)
	// Overwrite replaces the editable fields of a task.
	Overwrite(ctx context.Context, id int64, o model.OverwriteTask) error
	// Complete marks a task done. It is a no-op for tasks already done.
	Complete(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int, error)

	Upcoming(ctx context.Context) ([]model.TaskView, error)
	Overdue(ctx context.Context) ([]model.TaskView, error)
	CompletedThisWeek(ctx context.Context) ([]model.Task, error)

	// Optional: attach a Redis client for cache-aside behavior
	SetCacheClient(rdb *redis.Client)
}

const taskColumns = `t.id, t.title, t.description, t.roommate_id, t.room_id, t.due_date, t.priority, t.status, t.completed_at`

type taskRepo struct {
	db    *sqlx.DB
	cache listCache
	sql   dialect
}

// NewTaskRepository creates a new TaskRepository backed by sqlx.DB.
func NewTaskRepository(db *sqlx.DB) TaskRepository {
	return &taskRepo{db: db, sql: dialectFor(db)}
}

// SetCacheClient attaches a Redis client to the repository to enable cache-aside
// behavior for List() and invalidation on writes.
func (r *taskRepo) SetCacheClient(rdb *redis.Client) {
	r.cache.rdb = rdb
}

// Create inserts a new task, filling in the generated id.
func (r *taskRepo) Create(ctx context.Context, task *model.Task) error {
	if task == nil {
		return errors.New("task is nil")
	}
	if task.Status == "" {
		task.Status = model.StatusPending
	}

	query := r.db.Rebind(`INSERT INTO tasks (title, description, roommate_id, room_id, due_date, priority, status)
VALUES (?, ?, ?, ?, ?, ?, ?) RETURNING id`)

	err := r.db.QueryRowxContext(ctx, query,
		task.Title, task.Description, task.RoommateID, task.RoomID, task.DueDate, task.Priority, task.Status,
	).Scan(&task.ID)
	if err != nil {
		return fmt.Errorf("insert task: %w", translate(err))
	}

	r.cache.invalidate(ctx, taskListKey)
	return nil
}

func (r *taskRepo) GetByID(ctx context.Context, id int64) (*model.Task, error) {
	var t model.Task
	err := r.db.GetContext(ctx, &t, r.db.Rebind("SELECT "+taskColumns+" FROM tasks t WHERE t.id = ?"), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// List attempts to return a cached result (if Redis client provided) using cache-aside pattern.
// If cache miss or no Redis configured, it queries DB and populates cache.
func (r *taskRepo) List(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if r.cache.get(ctx, taskListKey, &tasks) {
		return tasks, nil
	}

	tasks = []model.Task{}
	if err := r.db.SelectContext(ctx, &tasks, "SELECT "+taskColumns+" FROM tasks t ORDER BY t.id"); err != nil {
		return nil, err
	}

	r.cache.set(ctx, taskListKey, tasks)
	return tasks, nil
}

func (r *taskRepo) ListDetailed(ctx context.Context) ([]model.TaskView, error) {
	query := `SELECT ` + taskColumns + `, r.name AS room_name, m.name AS roommate_name, m.email AS roommate_email
FROM tasks t
LEFT JOIN rooms r ON r.id = t.room_id
LEFT JOIN roommates m ON m.id = t.roommate_id
ORDER BY t.id`
	return r.selectViews(ctx, query)
}

func (r *taskRepo) Overwrite(ctx context.Context, id int64, o model.OverwriteTask) error {
	query := r.db.Rebind(`UPDATE tasks SET title = ?, description = ?, due_date = ?, priority = ?, room_id = ? WHERE id = ?`)
	res, err := r.db.ExecContext(ctx, query, o.Title, o.Description, o.DueDate, o.Priority, o.RoomID, id)
	if err != nil {
		return fmt.Errorf("overwrite task %d: %w", id, translate(err))
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if ra == 0 {
		return ErrNotFound
	}

	r.cache.invalidate(ctx, taskListKey)
	return nil
}

// Complete stamps completed_at with the database clock. The status guard
// keeps the first stamp when a task is completed twice.
func (r *taskRepo) Complete(ctx context.Context, id int64) error {
	query := r.db.Rebind(`UPDATE tasks SET status = ?, completed_at = CURRENT_TIMESTAMP WHERE id = ? AND status <> ?`)
	res, err := r.db.ExecContext(ctx, query, model.StatusDone, id, model.StatusDone)
	if err != nil {
		return fmt.Errorf("complete task %d: %w", id, err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if ra == 0 {
		var n int
		if err := r.db.GetContext(ctx, &n, r.db.Rebind("SELECT count(1) FROM tasks WHERE id = ?"), id); err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	}

	r.cache.invalidate(ctx, taskListKey)
	return nil
}

func (r *taskRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, r.db.Rebind("DELETE FROM tasks WHERE id = ?"), id)
	if err != nil {
		return false, err
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	deleted := ra > 0

	if deleted {
		r.cache.invalidate(ctx, taskListKey)
	}
	return deleted, nil
}

func (r *taskRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT count(1) FROM tasks"); err != nil {
		return 0, err
	}
	return count, nil
}

// Upcoming returns open tasks due after today, soonest first.
func (r *taskRepo) Upcoming(ctx context.Context) ([]model.TaskView, error) {
	query := fmt.Sprintf(`SELECT %s, r.name AS room_name
FROM tasks t
LEFT JOIN rooms r ON r.id = t.room_id
WHERE t.due_date > %s AND t.status <> '%s'
ORDER BY t.due_date ASC`, taskColumns, r.sql.today, model.StatusDone)
	return r.selectViews(ctx, query)
}

// Overdue returns open tasks due before today that belong to an existing
// roommate, oldest first. Unassigned tasks have nobody to remind and are left out.
func (r *taskRepo) Overdue(ctx context.Context) ([]model.TaskView, error) {
	query := fmt.Sprintf(`SELECT %s, r.name AS room_name, m.name AS roommate_name, m.email AS roommate_email
FROM tasks t
JOIN roommates m ON m.id = t.roommate_id
LEFT JOIN rooms r ON r.id = t.room_id
WHERE t.due_date < %s AND t.status <> '%s'
ORDER BY t.due_date ASC`, taskColumns, r.sql.today, model.StatusDone)
	return r.selectViews(ctx, query)
}

// CompletedThisWeek returns tasks completed within the last seven days,
// most recent first.
func (r *taskRepo) CompletedThisWeek(ctx context.Context) ([]model.Task, error) {
	query := fmt.Sprintf(`SELECT %s
FROM tasks t
WHERE t.status = '%s' AND t.completed_at >= %s AND t.completed_at <= %s
ORDER BY t.completed_at DESC`, taskColumns, model.StatusDone, r.sql.weekAgo, r.sql.now)

	tasks := []model.Task{}
	if err := r.db.SelectContext(ctx, &tasks, query); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepo) selectViews(ctx context.Context, query string) ([]model.TaskView, error) {
	views := []model.TaskView{}
	if err := r.db.SelectContext(ctx, &views, query); err != nil {
		return nil, err
	}
	return views, nil
}

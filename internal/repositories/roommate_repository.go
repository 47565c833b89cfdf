package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"choreboard/internal/model"
)

// RoommateRepository defines DB operations for roommates.
type RoommateRepository interface {
	Create(ctx context.Context, rm *model.Roommate) error
	List(ctx context.Context) ([]model.Roommate, error)
	// Update overwrites name and email.
	Update(ctx context.Context, rm *model.Roommate) error
	// Delete unassigns the roommate's tasks and removes the roommate in one
	// transaction. It reports how many tasks were unassigned and whether a
	// roommate row was removed.
	Delete(ctx context.Context, id int64) (unassigned int64, deleted bool, err error)
	Count(ctx context.Context) (int, error)

	SetCacheClient(rdb *redis.Client)
}

type roommateRepo struct {
	db    *sqlx.DB
	cache listCache
}

// NewRoommateRepository creates a new RoommateRepository backed by sqlx.DB.
func NewRoommateRepository(db *sqlx.DB) RoommateRepository {
	return &roommateRepo{db: db}
}

func (r *roommateRepo) SetCacheClient(rdb *redis.Client) {
	r.cache.rdb = rdb
}

func (r *roommateRepo) Create(ctx context.Context, rm *model.Roommate) error {
	if rm == nil {
		return errors.New("roommate is nil")
	}
	query := r.db.Rebind(`INSERT INTO roommates (name, email) VALUES (?, ?) RETURNING id`)
	if err := r.db.QueryRowxContext(ctx, query, rm.Name, rm.Email).Scan(&rm.ID); err != nil {
		return fmt.Errorf("insert roommate: %w", translate(err))
	}

	r.cache.invalidate(ctx, roommateListKey)
	return nil
}

func (r *roommateRepo) List(ctx context.Context) ([]model.Roommate, error) {
	var roommates []model.Roommate
	if r.cache.get(ctx, roommateListKey, &roommates) {
		return roommates, nil
	}

	roommates = []model.Roommate{}
	if err := r.db.SelectContext(ctx, &roommates, "SELECT id, name, email FROM roommates ORDER BY id"); err != nil {
		return nil, err
	}

	r.cache.set(ctx, roommateListKey, roommates)
	return roommates, nil
}

func (r *roommateRepo) Update(ctx context.Context, rm *model.Roommate) error {
	if rm == nil {
		return errors.New("roommate is nil")
	}
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`UPDATE roommates SET name = ?, email = ? WHERE id = ?`), rm.Name, rm.Email, rm.ID)
	if err != nil {
		return fmt.Errorf("update roommate %d: %w", rm.ID, translate(err))
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if ra == 0 {
		return ErrNotFound
	}

	r.cache.invalidate(ctx, roommateListKey)
	return nil
}

// Delete nulls tasks.roommate_id before removing the row so no task is left
// pointing at a roommate that no longer exists.
func (r *roommateRepo) Delete(ctx context.Context, id int64) (int64, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, false, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, tx.Rebind(`UPDATE tasks SET roommate_id = NULL WHERE roommate_id = ?`), id)
	if err != nil {
		return 0, false, fmt.Errorf("unassign tasks of roommate %d: %w", id, err)
	}
	unassigned, err := res.RowsAffected()
	if err != nil {
		return 0, false, err
	}

	res, err = tx.ExecContext(ctx, tx.Rebind(`DELETE FROM roommates WHERE id = ?`), id)
	if err != nil {
		return 0, false, fmt.Errorf("delete roommate %d: %w", id, translate(err))
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return 0, false, err
	}

	if err := tx.Commit(); err != nil {
		return 0, false, err
	}

	r.cache.invalidate(ctx, roommateListKey, taskListKey)
	return unassigned, ra > 0, nil
}

func (r *roommateRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT count(1) FROM roommates"); err != nil {
		return 0, err
	}
	return count, nil
}

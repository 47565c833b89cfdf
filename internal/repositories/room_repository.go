package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"choreboard/internal/model"
)

// RoomRepository reads the seeded rooms. Rooms are reference data and are
// only written by migrations.SeedRooms.
type RoomRepository interface {
	List(ctx context.Context) ([]model.Room, error)
}

type roomRepo struct {
	db *sqlx.DB
}

func NewRoomRepository(db *sqlx.DB) RoomRepository {
	return &roomRepo{db: db}
}

func (r *roomRepo) List(ctx context.Context) ([]model.Room, error) {
	rooms := []model.Room{}
	if err := r.db.SelectContext(ctx, &rooms, "SELECT id, name, pos_x, pos_y, color FROM rooms ORDER BY id"); err != nil {
		return nil, err
	}
	return rooms, nil
}

package migrations

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"choreboard/internal/model"
)

// DefaultRooms is the fixed household map.
var DefaultRooms = []model.Room{
	{Name: "Kitchen", PosX: 150, PosY: 200, Color: "blue"},
	{Name: "Laundry", PosX: 400, PosY: 100, Color: "purple"},
	{Name: "Living Room", PosX: 300, PosY: 250, Color: "orange"},
	{Name: "Trash Area", PosX: 350, PosY: 450, Color: "green"},
}

// SeedRooms inserts rooms whose name is not present yet and returns how many
// were added. Seeding twice leaves the table unchanged.
func SeedRooms(ctx context.Context, db *sqlx.DB, rooms []model.Room) (int, error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	inserted := 0
	for _, room := range rooms {
		var n int
		if err := tx.GetContext(ctx, &n, tx.Rebind("SELECT count(1) FROM rooms WHERE name = ?"), room.Name); err != nil {
			return 0, fmt.Errorf("look up room %q: %w", room.Name, err)
		}
		if n > 0 {
			continue
		}
		_, err := tx.ExecContext(ctx, tx.Rebind("INSERT INTO rooms (name, pos_x, pos_y, color) VALUES (?, ?, ?, ?)"),
			room.Name, room.PosX, room.PosY, room.Color)
		if err != nil {
			return 0, fmt.Errorf("insert room %q: %w", room.Name, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return inserted, nil
}

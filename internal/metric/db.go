package metric

import (
	"github.com/jmoiron/sqlx"
)

// UpdateCountsFromDB queries the tasks and roommates tables and updates the
// gauges. It returns any underlying error from the DB query.
func UpdateCountsFromDB(db *sqlx.DB) error {
	var tasks, roommates int
	if err := db.Get(&tasks, "SELECT count(1) FROM tasks"); err != nil {
		return err
	}
	if err := db.Get(&roommates, "SELECT count(1) FROM roommates"); err != nil {
		return err
	}
	SetTasksCount(tasks)
	SetRoommatesCount(roommates)
	return nil
}

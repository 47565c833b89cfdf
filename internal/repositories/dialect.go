package repositories

import "github.com/jmoiron/sqlx"

// dialect holds the SQL fragments that read the storage engine's clock.
// Derived views compare against these so "now" is always the database's now.
type dialect struct {
	today   string // current date as YYYY-MM-DD text
	now     string // current timestamp
	weekAgo string // current timestamp minus seven days
}

var (
	sqliteDialect = dialect{
		today:   "date('now')",
		now:     "datetime('now')",
		weekAgo: "datetime('now', '-7 days')",
	}
	postgresDialect = dialect{
		today:   "to_char(CURRENT_DATE, 'YYYY-MM-DD')",
		now:     "now()",
		weekAgo: "now() - interval '7 days'",
	}
)

func dialectFor(db *sqlx.DB) dialect {
	switch db.DriverName() {
	case "postgres", "pgx":
		return postgresDialect
	}
	return sqliteDialect
}

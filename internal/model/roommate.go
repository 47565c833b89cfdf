package model

// Roommate is a household member. Email is unique across roommates.
type Roommate struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
}

// Room is a named location on the household map.
type Room struct {
	ID    int64   `db:"id" json:"id"`
	Name  string  `db:"name" json:"name"`
	PosX  float64 `db:"pos_x" json:"pos_x"`
	PosY  float64 `db:"pos_y" json:"pos_y"`
	Color string  `db:"color" json:"color"`
}

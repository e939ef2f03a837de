package types

import "time"

type Profile struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Nickname  *string   `db:"nickname"`
	Colour    *string   `db:"colour"`
	XP        int64     `db:"xp"`
	Team      *string   `db:"team"`
	UserID    *string   `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}

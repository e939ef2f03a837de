package types

type Activity struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	Title       string  `db:"title"`
	Description *string `db:"description"`
	XP          int64   `db:"xp"`
}

package types

// Account is the slice of the identity record this service reads: the
// owning account behind a profile, used only for notification lookup.
type Account struct {
	ID    string  `db:"id"`
	Email *string `db:"email"`
}

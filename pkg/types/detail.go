package types

// PhotoDetail is the cross-entity view the moderation dashboard renders for a
// single photo. Photo is always present; the related lookups are independent
// and may be absent without the aggregation failing.
type PhotoDetail struct {
	Photo    *Photo
	Profile  *Profile
	Activity *Activity
	User     *Account
}

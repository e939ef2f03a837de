package types

import "time"

type PhotoStatus string

const (
	PhotoStatusAwaitingReview PhotoStatus = "awaiting_review"
	PhotoStatusApproved       PhotoStatus = "approved"
	PhotoStatusDenied         PhotoStatus = "denied"
)

// ValidPhotoStatus reports whether s is one of the known moderation statuses.
func ValidPhotoStatus(s PhotoStatus) bool {
	switch s {
	case PhotoStatusAwaitingReview, PhotoStatusApproved, PhotoStatusDenied:
		return true
	}
	return false
}

type Photo struct {
	ID             int64       `db:"id"`
	PhotoURL       string      `db:"photo_url"`
	UploadedAt     time.Time   `db:"uploaded_at"`
	Status         PhotoStatus `db:"status"`
	Reason         *string     `db:"reason"`
	ProfileID      int64       `db:"profile_id"`
	ActivityID     *int64      `db:"activity_id"`
	UserActivityID int64       `db:"user_activity_id"`
}

// DisplayReason returns the deny reason only while the photo is denied.
// A stale reason left behind by a return-to-review must never surface.
func (p *Photo) DisplayReason() *string {
	if p.Status != PhotoStatusDenied {
		return nil
	}
	return p.Reason
}

package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"questclub/pkg/types"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"
)

type PhotoStore interface {
	Photo(ctx context.Context, photoID int64) (*types.Photo, error)
}

type ProfileStore interface {
	Profile(ctx context.Context, profileID int64) (*types.Profile, error)
}

type ActivityStore interface {
	Activity(ctx context.Context, activityID int64) (*types.Activity, error)
}

type IdentityStore interface {
	Account(ctx context.Context, userID string) (*types.Account, error)
}

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Processor is the dispatch target: it resolves, per photo, the submitting
// profile, the owning account's email and the related activity title, and
// sends one denial notice per photo. One unresolvable recipient never blocks
// the rest of the batch.
type Processor struct {
	logger     *logrus.Logger
	photos     PhotoStore
	profiles   ProfileStore
	activities ActivityStore
	identities IdentityStore
	mailer     Mailer
}

func NewProcessor(
	logger *logrus.Logger,
	photos PhotoStore,
	profiles ProfileStore,
	activities ActivityStore,
	identities IdentityStore,
	mailer Mailer,
) *Processor {
	return &Processor{
		logger:     logger,
		photos:     photos,
		profiles:   profiles,
		activities: activities,
		identities: identities,
		mailer:     mailer,
	}
}

// Handler registers the denial dispatch handler on an asynq mux.
func (p *Processor) Handler() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskPhotoDenied, p.handlePhotoDenied)
	return mux
}

func (p *Processor) handlePhotoDenied(ctx context.Context, task *asynq.Task) error {
	var payload DeniedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("decode denied payload: %w", err)
	}

	for _, photoID := range payload.PhotoIDs {
		if err := p.notifyOne(ctx, photoID); err != nil {
			p.logger.WithError(err).WithField("photo_id", photoID).
				Warn("denial notice skipped")
		}
	}

	return nil
}

func (p *Processor) notifyOne(ctx context.Context, photoID int64) error {
	photo, err := p.photos.Photo(ctx, photoID)
	if err != nil {
		return fmt.Errorf("load photo: %w", err)
	}

	// The photo may have been re-approved or returned between the deny and
	// this task running; a stale notice would only confuse the family.
	if photo.Status != types.PhotoStatusDenied {
		p.logger.WithField("photo_id", photoID).Info("photo no longer denied, notice dropped")
		return nil
	}

	profile, err := p.profiles.Profile(ctx, photo.ProfileID)
	if err != nil {
		return fmt.Errorf("load profile %d: %w", photo.ProfileID, err)
	}
	if profile.UserID == nil {
		return fmt.Errorf("profile %d has no owning account", profile.ID)
	}

	account, err := p.identities.Account(ctx, *profile.UserID)
	if err != nil {
		return fmt.Errorf("load account %s: %w", *profile.UserID, err)
	}
	if account.Email == nil || *account.Email == "" {
		return fmt.Errorf("account %s has no email", account.ID)
	}

	activityTitle := "a mission"
	if photo.ActivityID != nil {
		activity, err := p.activities.Activity(ctx, *photo.ActivityID)
		if err != nil {
			p.logger.WithError(err).WithField("activity_id", *photo.ActivityID).
				Warn("activity title unavailable for denial notice")
		} else {
			activityTitle = activity.Title
		}
	}

	subject, body := composeDenialNotice(profile.Name, activityTitle, photo.DisplayReason())

	if err := p.mailer.Send(ctx, *account.Email, subject, body); err != nil {
		return fmt.Errorf("send denial notice: %w", err)
	}

	p.logger.WithFields(logrus.Fields{
		"photo_id":   photoID,
		"profile_id": profile.ID,
	}).Info("denial notice sent")

	return nil
}

func composeDenialNotice(profileName, activityTitle string, reason *string) (string, string) {
	subject := fmt.Sprintf("A photo from %s needs another try", profileName)

	body := fmt.Sprintf(
		"Hi,\n\nThe photo %s uploaded for %q was not approved by the club moderators.",
		profileName, activityTitle,
	)
	if reason != nil {
		body += fmt.Sprintf("\n\nReason: %s", *reason)
	}
	body += "\n\nYou can upload a new photo from the app at any time."

	return subject, body
}

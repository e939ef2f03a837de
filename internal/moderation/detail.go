package moderation

import (
	"context"
	"errors"

	"questclub/pkg/types"
)

// PhotoDetail assembles the moderation detail view: the photo plus its
// submitting profile, the related activity and, when the profile's owning
// account resolves, that account's contact email. The related lookups are
// independent and soft; a missing photo is the only hard failure.
func (s *Service) PhotoDetail(ctx context.Context, photoID int64) (*types.PhotoDetail, error) {
	photo, err := s.photos.Photo(ctx, photoID)
	if err != nil {
		return nil, err
	}

	detail := &types.PhotoDetail{Photo: photo}

	profile, err := s.profiles.Profile(ctx, photo.ProfileID)
	if err != nil {
		s.logger.WithError(err).WithField("profile_id", photo.ProfileID).
			Warn("photo detail: profile lookup failed")
	} else {
		detail.Profile = profile
	}

	if photo.ActivityID != nil {
		activity, err := s.activities.Activity(ctx, *photo.ActivityID)
		if err != nil {
			s.logger.WithError(err).WithField("activity_id", *photo.ActivityID).
				Warn("photo detail: activity lookup failed")
		} else {
			detail.Activity = activity
		}
	}

	if detail.Profile != nil && detail.Profile.UserID != nil {
		account, err := s.identities.Account(ctx, *detail.Profile.UserID)
		if err != nil {
			if !errors.Is(err, types.ErrAccountNotFound) {
				s.logger.WithError(err).WithField("user_id", *detail.Profile.UserID).
					Warn("photo detail: identity lookup failed")
			}
		} else {
			detail.User = account
		}
	}

	return detail, nil
}

// Package moderation holds the photo moderation pipeline: the status
// transitions, their storage and notification side effects, and the read
// views the admin dashboard is built on.
package moderation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"questclub/internal/storage"
	"questclub/pkg/types"

	"github.com/sirupsen/logrus"
)

// PhotoStore is the slice of the record store the pipeline mutates. The
// set-oriented methods are atomic per call: all matched rows change together.
type PhotoStore interface {
	Photo(ctx context.Context, photoID int64) (*types.Photo, error)
	PhotoURL(ctx context.Context, photoID int64) (string, error)
	PhotoURLs(ctx context.Context, photoIDs []int64) (map[int64]string, error)
	SetStatus(ctx context.Context, photoIDs []int64, status types.PhotoStatus, reason *string) (int64, error)
	DeletePhotos(ctx context.Context, photoIDs []int64) (int64, error)
	PhotosByStatus(ctx context.Context, status types.PhotoStatus) ([]*types.Photo, error)
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

// ObjectStore removes backing objects from the photo bucket. Removal of an
// already-deleted object must succeed.
type ObjectStore interface {
	Bucket() string
	RemoveObject(ctx context.Context, key string) error
	RemoveObjects(ctx context.Context, keys []string) error
}

// Notifier is the fire-and-forget denial dispatch boundary.
type Notifier interface {
	PhotosDenied(ctx context.Context, photoIDs []int64) error
}

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

type Service struct {
	logger     *logrus.Logger
	photos     PhotoStore
	profiles   ProfileStore
	activities ActivityStore
	identities IdentityStore
	objects    ObjectStore
	notifier   Notifier
}

func New(
	logger *logrus.Logger,
	photos PhotoStore,
	profiles ProfileStore,
	activities ActivityStore,
	identities IdentityStore,
	objects ObjectStore,
	notifier Notifier,
) *Service {
	return &Service{
		logger:     logger,
		photos:     photos,
		profiles:   profiles,
		activities: activities,
		identities: identities,
		objects:    objects,
		notifier:   notifier,
	}
}

// Approve marks a photo approved. Allowed from any prior status.
func (s *Service) Approve(ctx context.Context, photoID int64) error {
	return s.setStatus(ctx, photoID, types.PhotoStatusApproved, nil)
}

// Deny marks a photo denied with a reason and dispatches a denial notice.
// The reason is validated before any mutation; dispatch failure never fails
// the operation.
func (s *Service) Deny(ctx context.Context, photoID int64, reason string) error {
	reason, err := validDenyReason(reason)
	if err != nil {
		return err
	}

	if err := s.setStatus(ctx, photoID, types.PhotoStatusDenied, &reason); err != nil {
		return err
	}

	s.dispatchDenied(ctx, []int64{photoID})
	return nil
}

// ReturnToReview puts a photo back into the review queue. Any stored reason
// is left untouched; read views hide it while the photo is not denied.
func (s *Service) ReturnToReview(ctx context.Context, photoID int64) error {
	return s.setStatus(ctx, photoID, types.PhotoStatusAwaitingReview, nil)
}

// Delete removes the photo record permanently, attempting best-effort removal
// of the backing storage object first. The record is deleted even when the
// object removal fails, so an unreachable remote object can never pin a
// record forever.
func (s *Service) Delete(ctx context.Context, photoID int64) error {
	photoURL, err := s.photos.PhotoURL(ctx, photoID)
	if err != nil {
		if errors.Is(err, types.ErrPhotoNotFound) {
			return err
		}
		return fmt.Errorf("read photo url: %w", err)
	}

	if key, ok := storage.ResolveKey(photoURL, s.objects.Bucket()); ok {
		if err := s.objects.RemoveObject(ctx, key); err != nil {
			s.logger.WithError(err).WithFields(logrus.Fields{
				"photo_id":    photoID,
				"storage_key": key,
			}).Warn("best-effort storage removal failed")
		}
	}

	deleted, err := s.photos.DeletePhotos(ctx, []int64{photoID})
	if err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}
	if deleted == 0 {
		return types.ErrPhotoNotFound
	}

	return nil
}

func (s *Service) setStatus(ctx context.Context, photoID int64, status types.PhotoStatus, reason *string) error {
	updated, err := s.photos.SetStatus(ctx, []int64{photoID}, status, reason)
	if err != nil {
		return fmt.Errorf("update photo status: %w", err)
	}
	if updated == 0 {
		return types.ErrPhotoNotFound
	}
	return nil
}

// dispatchDenied is best-effort: failures are logged and swallowed so the
// already-committed status change stands.
func (s *Service) dispatchDenied(ctx context.Context, photoIDs []int64) {
	if err := s.notifier.PhotosDenied(ctx, photoIDs); err != nil {
		s.logger.WithError(err).WithField("photo_ids", photoIDs).
			Warn("best-effort denial dispatch failed")
	}
}

func validDenyReason(reason string) (string, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return "", &ValidationError{Message: "a deny reason is required"}
	}
	return reason, nil
}

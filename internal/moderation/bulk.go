package moderation

import (
	"context"
	"fmt"

	"questclub/internal/storage"
	"questclub/pkg/types"

	"github.com/sirupsen/logrus"
)

// The bulk operations mirror the single-photo transitions over an id set. An
// empty set is a successful no-op, never an error. The record-store mutation
// is one atomic set-update or set-delete; storage cleanup and notification
// dispatch stay best-effort around it.

func (s *Service) BulkApprove(ctx context.Context, photoIDs []int64) error {
	if len(photoIDs) == 0 {
		return nil
	}

	_, err := s.photos.SetStatus(ctx, photoIDs, types.PhotoStatusApproved, nil)
	if err != nil {
		return fmt.Errorf("bulk approve photos: %w", err)
	}

	return nil
}

// BulkDeny denies every photo in the set with the shared reason and fires a
// single dispatch call carrying the full id list. The reason is validated
// before any record is touched.
func (s *Service) BulkDeny(ctx context.Context, photoIDs []int64, reason string) error {
	if len(photoIDs) == 0 {
		return nil
	}

	reason, err := validDenyReason(reason)
	if err != nil {
		return err
	}

	_, err = s.photos.SetStatus(ctx, photoIDs, types.PhotoStatusDenied, &reason)
	if err != nil {
		return fmt.Errorf("bulk deny photos: %w", err)
	}

	s.dispatchDenied(ctx, photoIDs)
	return nil
}

func (s *Service) BulkReturnToReview(ctx context.Context, photoIDs []int64) error {
	if len(photoIDs) == 0 {
		return nil
	}

	_, err := s.photos.SetStatus(ctx, photoIDs, types.PhotoStatusAwaitingReview, nil)
	if err != nil {
		return fmt.Errorf("bulk return photos to review: %w", err)
	}

	return nil
}

// BulkDelete reads every photo url in one query, best-effort removes the
// resolvable storage objects, then drops all matched records in one atomic
// set-delete. Cleanup and record deletion are deliberately not transactional
// with each other; object removal is idempotent so a partial run can be
// re-attempted.
func (s *Service) BulkDelete(ctx context.Context, photoIDs []int64) error {
	if len(photoIDs) == 0 {
		return nil
	}

	urls, err := s.photos.PhotoURLs(ctx, photoIDs)
	if err != nil {
		return fmt.Errorf("read photo urls: %w", err)
	}

	keys := make([]string, 0, len(urls))
	for _, photoURL := range urls {
		if key, ok := storage.ResolveKey(photoURL, s.objects.Bucket()); ok {
			keys = append(keys, key)
		}
	}

	if len(keys) > 0 {
		if err := s.objects.RemoveObjects(ctx, keys); err != nil {
			s.logger.WithError(err).WithFields(logrus.Fields{
				"photo_ids":    photoIDs,
				"storage_keys": keys,
			}).Warn("best-effort storage removal failed")
		}
	}

	_, err = s.photos.DeletePhotos(ctx, photoIDs)
	if err != nil {
		return fmt.Errorf("bulk delete photos: %w", err)
	}

	return nil
}

package moderation

import (
	"context"
	"fmt"

	"questclub/pkg/types"
)

// ReviewQueue returns the awaiting-review photos oldest-upload-first. When
// jumpTo names a photo present in the queue it is pulled to the front with
// the relative order of everything else preserved; an absent id leaves the
// order unchanged. An empty result tells the caller to leave the review flow.
func (s *Service) ReviewQueue(ctx context.Context, jumpTo *int64) ([]*types.Photo, error) {
	photos, err := s.photos.PhotosByStatus(ctx, types.PhotoStatusAwaitingReview)
	if err != nil {
		return nil, fmt.Errorf("load review queue: %w", err)
	}

	if jumpTo == nil {
		return photos, nil
	}

	return promote(photos, *jumpTo), nil
}

// Gallery is the dashboard feed: the ordered scan for any one status.
func (s *Service) Gallery(ctx context.Context, status types.PhotoStatus) ([]*types.Photo, error) {
	photos, err := s.photos.PhotosByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("load gallery: %w", err)
	}
	return photos, nil
}

func promote(photos []*types.Photo, photoID int64) []*types.Photo {
	for i, photo := range photos {
		if photo.ID != photoID {
			continue
		}
		if i == 0 {
			return photos
		}

		out := make([]*types.Photo, 0, len(photos))
		out = append(out, photo)
		out = append(out, photos[:i]...)
		out = append(out, photos[i+1:]...)
		return out
	}

	return photos
}

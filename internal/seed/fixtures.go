package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"questclub/internal/storage"
	"questclub/internal/store"
	"questclub/internal/utils"
	"questclub/pkg/types"
)

type profileSeed struct {
	ID       int64
	Name     string
	Nickname string
	Colour   string
	XP       int64
	Team     string
}

var fakeProfiles = []profileSeed{
	{ID: 1, Name: "Maya", Nickname: "May", Colour: "#f4a261", XP: 320, Team: "Foxes"},
	{ID: 2, Name: "Leo", Nickname: "Leo", Colour: "#2a9d8f", XP: 150, Team: "Owls"},
	{ID: 3, Name: "Sana", Nickname: "Sunny", Colour: "#e76f51", XP: 480, Team: "Foxes"},
}

type activitySeed struct {
	ID          int64
	Name        string
	Title       string
	Description string
	XP          int64
}

var fakeActivities = []activitySeed{
	{ID: 1, Name: "bike-trip", Title: "Bike Trip", Description: "Ride your bike somewhere new and snap a photo.", XP: 50},
	{ID: 2, Name: "bake-bread", Title: "Bake Bread", Description: "Bake a loaf with an adult and show the result.", XP: 40},
	{ID: 3, Name: "star-gazing", Title: "Star Gazing", Description: "Find a constellation after dark.", XP: 60},
}

func SeedProfiles(ctx context.Context, profileRepo *store.ProfileRepository) error {
	for _, p := range fakeProfiles {
		_, err := profileRepo.Profile(ctx, p.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, types.ErrProfileNotFound) {
			return fmt.Errorf("failed to fetch profile %d: %w", p.ID, err)
		}

		profile := &types.Profile{
			ID:        p.ID,
			Name:      p.Name,
			Nickname:  utils.StringPtr(p.Nickname),
			Colour:    utils.StringPtr(p.Colour),
			XP:        p.XP,
			Team:      utils.StringPtr(p.Team),
			CreatedAt: time.Now(),
		}
		if err := profileRepo.CreateProfile(ctx, profile); err != nil {
			return fmt.Errorf("failed to create profile %d: %w", p.ID, err)
		}
	}

	return nil
}

func SeedActivities(ctx context.Context, activityRepo *store.ActivityRepository) error {
	for _, a := range fakeActivities {
		_, err := activityRepo.Activity(ctx, a.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, types.ErrActivityNotFound) {
			return fmt.Errorf("failed to fetch activity %d: %w", a.ID, err)
		}

		activity := &types.Activity{
			ID:          a.ID,
			Name:        a.Name,
			Title:       a.Title,
			Description: utils.StringPtr(a.Description),
			XP:          a.XP,
		}
		if err := activityRepo.CreateActivity(ctx, activity); err != nil {
			return fmt.Errorf("failed to create activity %d: %w", a.ID, err)
		}
	}

	return nil
}

// SeedPhotos drops a handful of awaiting-review submissions into the queue,
// with urls shaped like real storage uploads so delete paths resolve.
func SeedPhotos(ctx context.Context, photoRepo *store.PhotoRepository, objects *storage.SupabaseStorage) error {
	base := time.Now().Add(-6 * time.Hour)

	for i := int64(1); i <= 6; i++ {
		_, err := photoRepo.Photo(ctx, i)
		if err == nil {
			continue
		}
		if !errors.Is(err, types.ErrPhotoNotFound) {
			return fmt.Errorf("failed to fetch photo %d: %w", i, err)
		}

		profileID := (i % int64(len(fakeProfiles))) + 1
		activityID := (i % int64(len(fakeActivities))) + 1
		key := fmt.Sprintf("profile-%d/seed-%d.jpg", profileID, i)

		photo := &types.Photo{
			ID:             i,
			PhotoURL:       objects.PublicURL(key),
			UploadedAt:     base.Add(time.Duration(i) * time.Minute),
			Status:         types.PhotoStatusAwaitingReview,
			ProfileID:      profileID,
			ActivityID:     utils.Int64Ptr(activityID),
			UserActivityID: i * 100,
		}
		if err := photoRepo.CreatePhoto(ctx, photo); err != nil {
			return fmt.Errorf("failed to create photo %d: %w", i, err)
		}
	}

	return nil
}

package moderation

import (
	"context"
	"testing"
	"time"

	"questclub/internal/utils"
	"questclub/pkg/types"
)

func queueIDs(photos []*types.Photo) []int64 {
	ids := make([]int64, 0, len(photos))
	for _, p := range photos {
		ids = append(ids, p.ID)
	}
	return ids
}

func sameIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestReviewQueueOrdering(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	f := newFixture(
		awaitingPhoto(1, base.Add(1*time.Minute)),
		awaitingPhoto(2, base.Add(2*time.Minute)),
		awaitingPhoto(3, base.Add(3*time.Minute)),
	)
	ctx := context.Background()

	cases := []struct {
		name   string
		jumpTo *int64
		want   []int64
	}{
		{name: "fifo", jumpTo: nil, want: []int64{1, 2, 3}},
		{name: "jump to last", jumpTo: utils.Int64Ptr(3), want: []int64{3, 1, 2}},
		{name: "jump to absent", jumpTo: utils.Int64Ptr(9), want: []int64{1, 2, 3}},
		{name: "jump to first", jumpTo: utils.Int64Ptr(1), want: []int64{1, 2, 3}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			photos, err := f.service.ReviewQueue(ctx, tc.jumpTo)
			if err != nil {
				t.Fatalf("ReviewQueue: %v", err)
			}
			if got := queueIDs(photos); !sameIDs(got, tc.want) {
				t.Fatalf("queue = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestReviewQueueExcludesModeratedPhotos(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	approved := awaitingPhoto(2, base)
	approved.Status = types.PhotoStatusApproved
	f := newFixture(awaitingPhoto(1, base.Add(time.Minute)), approved)

	photos, err := f.service.ReviewQueue(context.Background(), nil)
	if err != nil {
		t.Fatalf("ReviewQueue: %v", err)
	}
	if got := queueIDs(photos); !sameIDs(got, []int64{1}) {
		t.Fatalf("queue = %v, want [1]", got)
	}
}

func TestReviewQueueEmpty(t *testing.T) {
	f := newFixture()

	photos, err := f.service.ReviewQueue(context.Background(), nil)
	if err != nil {
		t.Fatalf("ReviewQueue: %v", err)
	}
	if len(photos) != 0 {
		t.Fatalf("queue = %v, want empty", queueIDs(photos))
	}
}

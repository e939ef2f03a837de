package notify

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"questclub/internal/utils"
	"questclub/pkg/types"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"
)

type stubPhotos map[int64]*types.Photo

func (s stubPhotos) Photo(_ context.Context, id int64) (*types.Photo, error) {
	if p, ok := s[id]; ok {
		return p, nil
	}
	return nil, types.ErrPhotoNotFound
}

type stubProfiles map[int64]*types.Profile

func (s stubProfiles) Profile(_ context.Context, id int64) (*types.Profile, error) {
	if p, ok := s[id]; ok {
		return p, nil
	}
	return nil, types.ErrProfileNotFound
}

type stubActivities map[int64]*types.Activity

func (s stubActivities) Activity(_ context.Context, id int64) (*types.Activity, error) {
	if a, ok := s[id]; ok {
		return a, nil
	}
	return nil, types.ErrActivityNotFound
}

type stubIdentities map[string]*types.Account

func (s stubIdentities) Account(_ context.Context, id string) (*types.Account, error) {
	if a, ok := s[id]; ok {
		return a, nil
	}
	return nil, types.ErrAccountNotFound
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type stubMailer struct {
	sent []sentMail
}

func (m *stubMailer) Send(_ context.Context, to, subject, body string) error {
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func deniedPhoto(id, profileID int64, activityID *int64, reason string) *types.Photo {
	return &types.Photo{
		ID:         id,
		PhotoURL:   "https://proj.supabase.co/storage/v1/object/public/user-activity-photos/x.jpg",
		UploadedAt: time.Now(),
		Status:     types.PhotoStatusDenied,
		Reason:     utils.StringPtr(reason),
		ProfileID:  profileID,
		ActivityID: activityID,
	}
}

func deniedTask(t *testing.T, ids ...int64) *asynq.Task {
	t.Helper()
	data, err := json.Marshal(DeniedPayload{PhotoIDs: ids})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return asynq.NewTask(TaskPhotoDenied, data)
}

func testProcessor(photos stubPhotos, profiles stubProfiles, activities stubActivities, identities stubIdentities, mailer *stubMailer) *Processor {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewProcessor(logger, photos, profiles, activities, identities, mailer)
}

func TestHandlePhotoDeniedSendsPerPhoto(t *testing.T) {
	photos := stubPhotos{
		1: deniedPhoto(1, 10, utils.Int64Ptr(100), "too dark"),
		2: deniedPhoto(2, 20, nil, "off topic"),
	}
	profiles := stubProfiles{
		10: {ID: 10, Name: "Maya", UserID: utils.StringPtr("acct-a")},
		20: {ID: 20, Name: "Leo", UserID: utils.StringPtr("acct-b")},
	}
	activities := stubActivities{100: {ID: 100, Title: "Bike Trip"}}
	identities := stubIdentities{
		"acct-a": {ID: "acct-a", Email: utils.StringPtr("a@example.com")},
		"acct-b": {ID: "acct-b", Email: utils.StringPtr("b@example.com")},
	}
	mailer := &stubMailer{}

	p := testProcessor(photos, profiles, activities, identities, mailer)
	if err := p.handlePhotoDenied(context.Background(), deniedTask(t, 1, 2)); err != nil {
		t.Fatalf("handlePhotoDenied: %v", err)
	}

	if len(mailer.sent) != 2 {
		t.Fatalf("sent %d mails, want 2", len(mailer.sent))
	}
	if mailer.sent[0].to != "a@example.com" || mailer.sent[1].to != "b@example.com" {
		t.Fatalf("recipients = %v", mailer.sent)
	}
	if !strings.Contains(mailer.sent[0].body, "Bike Trip") || !strings.Contains(mailer.sent[0].body, "too dark") {
		t.Fatalf("first notice missing activity or reason: %q", mailer.sent[0].body)
	}
}

func TestHandlePhotoDeniedContinuesPastUnresolvableRecipient(t *testing.T) {
	photos := stubPhotos{
		1: deniedPhoto(1, 10, nil, "blurry"),
		2: deniedPhoto(2, 20, nil, "blurry"),
	}
	// Profile 10 has no owning account; profile 20 resolves.
	profiles := stubProfiles{
		10: {ID: 10, Name: "Maya"},
		20: {ID: 20, Name: "Leo", UserID: utils.StringPtr("acct-b")},
	}
	identities := stubIdentities{
		"acct-b": {ID: "acct-b", Email: utils.StringPtr("b@example.com")},
	}
	mailer := &stubMailer{}

	p := testProcessor(photos, profiles, stubActivities{}, identities, mailer)
	if err := p.handlePhotoDenied(context.Background(), deniedTask(t, 1, 2)); err != nil {
		t.Fatalf("handlePhotoDenied: %v", err)
	}

	if len(mailer.sent) != 1 || mailer.sent[0].to != "b@example.com" {
		t.Fatalf("sent = %v, want one notice to b@example.com", mailer.sent)
	}
}

func TestHandlePhotoDeniedDropsStaleNotice(t *testing.T) {
	photo := deniedPhoto(1, 10, nil, "blurry")
	photo.Status = types.PhotoStatusAwaitingReview
	photos := stubPhotos{1: photo}
	profiles := stubProfiles{10: {ID: 10, Name: "Maya", UserID: utils.StringPtr("acct-a")}}
	identities := stubIdentities{"acct-a": {ID: "acct-a", Email: utils.StringPtr("a@example.com")}}
	mailer := &stubMailer{}

	p := testProcessor(photos, profiles, stubActivities{}, identities, mailer)
	if err := p.handlePhotoDenied(context.Background(), deniedTask(t, 1)); err != nil {
		t.Fatalf("handlePhotoDenied: %v", err)
	}

	if len(mailer.sent) != 0 {
		t.Fatalf("stale notice sent: %v", mailer.sent)
	}
}

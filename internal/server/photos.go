package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"questclub/pkg/types"

	"github.com/alexedwards/flow"
)

// photoView is what the dashboard sees. Reason comes through DisplayReason so
// a stale deny reason never shows on a non-denied photo.
type photoView struct {
	ID             int64             `json:"id"`
	PhotoURL       string            `json:"photo_url"`
	UploadedAt     time.Time         `json:"uploaded_at"`
	Status         types.PhotoStatus `json:"status"`
	Reason         *string           `json:"reason,omitempty"`
	ProfileID      int64             `json:"profile_id"`
	ActivityID     *int64            `json:"activity_id,omitempty"`
	UserActivityID int64             `json:"user_activity_id"`
}

func newPhotoView(photo *types.Photo) photoView {
	return photoView{
		ID:             photo.ID,
		PhotoURL:       photo.PhotoURL,
		UploadedAt:     photo.UploadedAt,
		Status:         photo.Status,
		Reason:         photo.DisplayReason(),
		ProfileID:      photo.ProfileID,
		ActivityID:     photo.ActivityID,
		UserActivityID: photo.UserActivityID,
	}
}

func newPhotoViews(photos []*types.Photo) []photoView {
	views := make([]photoView, 0, len(photos))
	for _, photo := range photos {
		views = append(views, newPhotoView(photo))
	}
	return views
}

type profileView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Nickname  *string   `json:"nickname,omitempty"`
	Colour    *string   `json:"colour,omitempty"`
	XP        int64     `json:"xp"`
	Team      *string   `json:"team,omitempty"`
	UserID    *string   `json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type activityView struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	XP          int64   `json:"xp"`
}

type accountView struct {
	ID    string  `json:"id"`
	Email *string `json:"email,omitempty"`
}

type photoDetailResponse struct {
	Photo    photoView     `json:"photo"`
	Profile  *profileView  `json:"profile,omitempty"`
	Activity *activityView `json:"activity,omitempty"`
	User     *accountView  `json:"user,omitempty"`
}

type photoListResponse struct {
	Photos []photoView `json:"photos"`
}

type bulkPhotoRequest struct {
	IDs    []int64 `form:"ids"`
	Reason string  `form:"reason"`
}

func photoIDParam(r *http.Request) (int64, error) {
	raw := flow.Param(r.Context(), "photoID")
	return strconv.ParseInt(raw, 10, 64)
}

func (s *Service) handleApprovePhoto(w http.ResponseWriter, r *http.Request) {
	photoID, err := photoIDParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid photo id")
		return
	}

	s.writeResult(w, s.moderation.Approve(r.Context(), photoID))
}

func (s *Service) handleDenyPhoto(w http.ResponseWriter, r *http.Request) {
	photoID, err := photoIDParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid photo id")
		return
	}

	if err := r.ParseForm(); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid form body")
		return
	}

	s.writeResult(w, s.moderation.Deny(r.Context(), photoID, r.PostFormValue("reason")))
}

func (s *Service) handleReturnPhoto(w http.ResponseWriter, r *http.Request) {
	photoID, err := photoIDParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid photo id")
		return
	}

	s.writeResult(w, s.moderation.ReturnToReview(r.Context(), photoID))
}

func (s *Service) handleDeletePhoto(w http.ResponseWriter, r *http.Request) {
	photoID, err := photoIDParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid photo id")
		return
	}

	s.writeResult(w, s.moderation.Delete(r.Context(), photoID))
}

func (s *Service) decodeBulkRequest(r *http.Request) (*bulkPhotoRequest, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}

	var req bulkPhotoRequest
	if err := decoder.Decode(&req, r.PostForm); err != nil {
		return nil, err
	}

	return &req, nil
}

func (s *Service) handleBulkApprove(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeBulkRequest(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid form body")
		return
	}

	s.writeResult(w, s.moderation.BulkApprove(r.Context(), req.IDs))
}

func (s *Service) handleBulkDeny(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeBulkRequest(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid form body")
		return
	}

	s.writeResult(w, s.moderation.BulkDeny(r.Context(), req.IDs, req.Reason))
}

func (s *Service) handleBulkReturn(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeBulkRequest(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid form body")
		return
	}

	s.writeResult(w, s.moderation.BulkReturnToReview(r.Context(), req.IDs))
}

func (s *Service) handleBulkDelete(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeBulkRequest(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid form body")
		return
	}

	s.writeResult(w, s.moderation.BulkDelete(r.Context(), req.IDs))
}

func (s *Service) handleGallery(w http.ResponseWriter, r *http.Request) {
	status := types.PhotoStatus(r.URL.Query().Get("status"))
	if status == "" {
		status = types.PhotoStatusAwaitingReview
	}
	if !types.ValidPhotoStatus(status) {
		s.respondError(w, http.StatusBadRequest, "unknown photo status")
		return
	}

	photos, err := s.moderation.Gallery(r.Context(), status)
	if err != nil {
		s.logger.WithError(err).Error("failed to load gallery")
		s.respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	s.respondJSON(w, http.StatusOK, photoListResponse{Photos: newPhotoViews(photos)})
}

// handleReviewQueue returns the awaiting-review queue. An optional photo_id
// query param pulls that photo to the front; an empty photos list tells the
// dashboard to leave the review flow.
func (s *Service) handleReviewQueue(w http.ResponseWriter, r *http.Request) {
	var jumpTo *int64
	if raw := r.URL.Query().Get("photo_id"); raw != "" {
		photoID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, "invalid photo id")
			return
		}
		jumpTo = &photoID
	}

	photos, err := s.moderation.ReviewQueue(r.Context(), jumpTo)
	if err != nil {
		s.logger.WithError(err).Error("failed to load review queue")
		s.respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	s.respondJSON(w, http.StatusOK, photoListResponse{Photos: newPhotoViews(photos)})
}

func (s *Service) handlePhotoDetail(w http.ResponseWriter, r *http.Request) {
	photoID, err := photoIDParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid photo id")
		return
	}

	detail, err := s.moderation.PhotoDetail(r.Context(), photoID)
	if err != nil {
		if errors.Is(err, types.ErrPhotoNotFound) {
			s.respondError(w, http.StatusNotFound, err.Error())
			return
		}
		s.logger.WithError(err).Error("failed to load photo detail")
		s.respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := photoDetailResponse{Photo: newPhotoView(detail.Photo)}
	if detail.Profile != nil {
		resp.Profile = &profileView{
			ID:        detail.Profile.ID,
			Name:      detail.Profile.Name,
			Nickname:  detail.Profile.Nickname,
			Colour:    detail.Profile.Colour,
			XP:        detail.Profile.XP,
			Team:      detail.Profile.Team,
			UserID:    detail.Profile.UserID,
			CreatedAt: detail.Profile.CreatedAt,
		}
	}
	if detail.Activity != nil {
		resp.Activity = &activityView{
			ID:          detail.Activity.ID,
			Name:        detail.Activity.Name,
			Title:       detail.Activity.Title,
			Description: detail.Activity.Description,
			XP:          detail.Activity.XP,
		}
	}
	if detail.User != nil {
		resp.User = &accountView{
			ID:    detail.User.ID,
			Email: detail.User.Email,
		}
	}

	s.respondJSON(w, http.StatusOK, resp)
}

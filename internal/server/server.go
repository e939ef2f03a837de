package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"questclub/internal/moderation"
	"questclub/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/sirupsen/logrus"
)

var decoder = form.NewDecoder()

// Service exposes the moderation pipeline to the admin dashboard as a JSON
// API. The dashboard owns rendering and selection state; every mutation here
// is a pure request/response operation it refreshes from afterwards.
type Service struct {
	logger     *logrus.Logger
	config     *types.Config
	moderation *moderation.Service

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	moderationSvc *moderation.Service,
) (*Service, error) {
	mux := flow.New()

	s := &Service{
		logger:     logger,
		config:     config,
		moderation: moderationSvc,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	s.buildRouter(mux)

	return s, nil
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.StripTrailingSlash)
	r.Use(s.RequestIDMiddleware)
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)

	r.HandleFunc("/photos", s.handleGallery, http.MethodGet)
	r.HandleFunc("/photos/review", s.handleReviewQueue, http.MethodGet)

	// Bulk transitions operate on an id set posted in the request body.
	r.HandleFunc("/photos/approve", s.handleBulkApprove, http.MethodPost)
	r.HandleFunc("/photos/deny", s.handleBulkDeny, http.MethodPost)
	r.HandleFunc("/photos/return", s.handleBulkReturn, http.MethodPost)
	r.HandleFunc("/photos/delete", s.handleBulkDelete, http.MethodPost)

	r.HandleFunc("/photos/:photoID", s.handlePhotoDetail, http.MethodGet)
	r.HandleFunc("/photos/:photoID", s.handleDeletePhoto, http.MethodDelete)
	r.HandleFunc("/photos/:photoID/approve", s.handleApprovePhoto, http.MethodPost)
	r.HandleFunc("/photos/:photoID/deny", s.handleDenyPhoto, http.MethodPost)
	r.HandleFunc("/photos/:photoID/return", s.handleReturnPhoto, http.MethodPost)
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

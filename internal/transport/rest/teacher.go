package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/rajdhanitech/tuition-backend/internal/domain"
	"github.com/rajdhanitech/tuition-backend/internal/service/teacher"
	"github.com/rajdhanitech/tuition-backend/pkg/ctxutil"
)

// teacherService defines the minimal interface needed by TeacherHandler.
type teacherService interface {
	SaveProfile(ctx context.Context, input teacher.SaveProfileInput) (*domain.TeacherProfile, error)
	GetProfile(ctx context.Context, teacherID uuid.UUID) (*domain.TeacherProfile, error)
}

// TeacherHandler serves teacher profile REST endpoints.
type TeacherHandler struct {
	svc teacherService
	log *slog.Logger
}

// NewTeacherHandler creates a TeacherHandler.
func NewTeacherHandler(svc teacherService, logger *slog.Logger) *TeacherHandler {
	return &TeacherHandler{svc: svc, log: logger.With("handler", "teacher")}
}

type saveProfileRequest struct {
	Subjects []string `json:"subjects"`
}

type profileResponse struct {
	TeacherID string    `json:"teacherId"`
	Subjects  []string  `json:"subjects"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SaveProfile handles PUT /teachers/me/profile.
func (h *TeacherHandler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	var req saveProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := h.svc.SaveProfile(r.Context(), teacher.SaveProfileInput{Subjects: req.Subjects})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(saved))
}

// GetMyProfile handles GET /teachers/me/profile.
func (h *TeacherHandler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	callerID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	p, err := h.svc.GetProfile(r.Context(), callerID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

func (h *TeacherHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toProfileResponse(p *domain.TeacherProfile) profileResponse {
	return profileResponse{
		TeacherID: p.TeacherID.String(),
		Subjects:  p.Subjects,
		UpdatedAt: p.UpdatedAt,
	}
}

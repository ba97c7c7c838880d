package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/rajdhanitech/tuition-backend/internal/domain"
	"github.com/rajdhanitech/tuition-backend/internal/service/teacher"
	"github.com/rajdhanitech/tuition-backend/pkg/ctxutil"
)

// rosterService defines the minimal interface needed by AdminHandler.
type rosterService interface {
	ListTeachers(ctx context.Context) ([]teacher.RosterEntry, error)
	GetProfile(ctx context.Context, teacherID uuid.UUID) (*domain.TeacherProfile, error)
}

// AdminHandler serves admin REST endpoints.
type AdminHandler struct {
	teachers rosterService
	log      *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(teachers rosterService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		teachers: teachers,
		log:      logger.With("handler", "admin"),
	}
}

type rosterEntryResponse struct {
	Account  accountResponse `json:"account"`
	Subjects []string        `json:"subjects"`
}

// ListTeachers returns the teacher roster with subjects.
// GET /admin/teachers
func (h *AdminHandler) ListTeachers(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	roster, err := h.teachers.ListTeachers(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]rosterEntryResponse, 0, len(roster))
	for _, entry := range roster {
		resp = append(resp, rosterEntryResponse{
			Account:  toAccountResponse(&entry.Account),
			Subjects: entry.Subjects,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// TeacherProfile returns one teacher's profile.
// GET /admin/teachers/{id}/profile
func (h *AdminHandler) TeacherProfile(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	teacherID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid teacher id")
		return
	}

	p, err := h.teachers.GetProfile(r.Context(), teacherID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

func (h *AdminHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if !ctxutil.IsAdminCtx(r.Context()) {
		writeError(w, http.StatusForbidden, "admin access required")
		return false
	}
	return true
}

func (h *AdminHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

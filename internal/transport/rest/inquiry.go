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
	"github.com/rajdhanitech/tuition-backend/internal/service/inquiry"
)

// inquiryService defines the minimal interface needed by InquiryHandler.
type inquiryService interface {
	Submit(ctx context.Context, input inquiry.SubmitInput) (*domain.Inquiry, error)
	Update(ctx context.Context, id uuid.UUID, input inquiry.UpdateInput) (*domain.Inquiry, error)
	List(ctx context.Context) ([]domain.Inquiry, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Inquiry, error)
}

// InquiryHandler serves inquiry REST endpoints.
type InquiryHandler struct {
	svc inquiryService
	log *slog.Logger
}

// NewInquiryHandler creates an InquiryHandler.
func NewInquiryHandler(svc inquiryService, logger *slog.Logger) *InquiryHandler {
	return &InquiryHandler{svc: svc, log: logger.With("handler", "inquiry")}
}

type submitInquiryRequest struct {
	StudentName string   `json:"studentName"`
	ClassLevel  string   `json:"classLevel"`
	Subjects    []string `json:"subjects"`
	Location    string   `json:"location"`
	Contact     string   `json:"contact"`
}

type updateInquiryRequest struct {
	Status    *string `json:"status"`
	TeacherID *string `json:"teacherId"`
	Fee       *int    `json:"fee"`
	Force     bool    `json:"force"`
}

type inquiryResponse struct {
	ID          string    `json:"id"`
	ParentID    string    `json:"parentId"`
	StudentName string    `json:"studentName"`
	ClassLevel  string    `json:"classLevel"`
	Subjects    []string  `json:"subjects"`
	Location    string    `json:"location"`
	Contact     string    `json:"contact"`
	Status      string    `json:"status"`
	TeacherID   *string   `json:"teacherId,omitempty"`
	Fee         *int      `json:"fee,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Submit handles POST /inquiries.
func (h *InquiryHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitInquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Submit(r.Context(), inquiry.SubmitInput{
		StudentName: req.StudentName,
		ClassLevel:  req.ClassLevel,
		Subjects:    req.Subjects,
		Location:    req.Location,
		Contact:     req.Contact,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toInquiryResponse(created))
}

// List handles GET /inquiries.
func (h *InquiryHandler) List(w http.ResponseWriter, r *http.Request) {
	inquiries, err := h.svc.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]inquiryResponse, 0, len(inquiries))
	for i := range inquiries {
		resp = append(resp, toInquiryResponse(&inquiries[i]))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /inquiries/{id}.
func (h *InquiryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid inquiry id")
		return
	}

	inq, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toInquiryResponse(inq))
}

// Update handles PATCH /inquiries/{id}.
func (h *InquiryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid inquiry id")
		return
	}

	var req updateInquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := inquiry.UpdateInput{
		Status: req.Status,
		Fee:    req.Fee,
		Force:  req.Force,
	}
	if req.TeacherID != nil {
		teacherID, err := uuid.Parse(*req.TeacherID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid teacher id")
			return
		}
		input.TeacherID = &teacherID
	}

	updated, err := h.svc.Update(r.Context(), id, input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toInquiryResponse(updated))
}

func (h *InquiryHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
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

func toInquiryResponse(inq *domain.Inquiry) inquiryResponse {
	resp := inquiryResponse{
		ID:          inq.ID.String(),
		ParentID:    inq.ParentID.String(),
		StudentName: inq.StudentName,
		ClassLevel:  inq.ClassLevel,
		Subjects:    inq.Subjects,
		Location:    inq.Location,
		Contact:     inq.Contact,
		Status:      inq.Status.String(),
		Fee:         inq.Fee,
		CreatedAt:   inq.CreatedAt,
		UpdatedAt:   inq.UpdatedAt,
	}
	if inq.TeacherID != nil {
		s := inq.TeacherID.String()
		resp.TeacherID = &s
	}
	return resp
}

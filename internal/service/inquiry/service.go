// Package inquiry implements the tuition inquiry lifecycle: parents submit
// inquiries, admins assign teachers and move them through Pending, Assigned
// and Completed, and every caller sees only the slice their role allows.
package inquiry

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rajdhanitech/tuition-backend/internal/domain"
	"github.com/rajdhanitech/tuition-backend/pkg/ctxutil"
)

// inquiryRepo defines the inquiry repository interface needed by this service.
type inquiryRepo interface {
	Create(ctx context.Context, inq *domain.Inquiry) (*domain.Inquiry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Inquiry, error)
	ListByScope(ctx context.Context, scope domain.InquiryScope) ([]domain.Inquiry, error)
	Update(ctx context.Context, id uuid.UUID, upd domain.InquiryUpdate) (*domain.Inquiry, error)
}

// accountRepo defines the account repository interface needed by this service.
type accountRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
}

// txManager defines the transaction manager interface needed by this service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// notifier announces inquiry events without ever failing the caller.
type notifier interface {
	InquiryCreated(inq domain.Inquiry, parentName string)
}

// Service implements inquiry operations.
type Service struct {
	log       *slog.Logger
	inquiries inquiryRepo
	accounts  accountRepo
	tx        txManager
	notify    notifier
}

// NewService creates a new inquiry service instance.
func NewService(
	logger *slog.Logger,
	inquiries inquiryRepo,
	accounts accountRepo,
	tx txManager,
	notify notifier,
) *Service {
	return &Service{
		log:       logger.With("service", "inquiry"),
		inquiries: inquiries,
		accounts:  accounts,
		tx:        tx,
		notify:    notify,
	}
}

// capabilityFromCtx resolves the caller's inquiry capability from the
// authenticated identity in the context.
func capabilityFromCtx(ctx context.Context) (uuid.UUID, domain.InquiryCapability, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.InquiryCapability{}, domain.ErrUnauthorized
	}
	role := domain.Role(ctxutil.RoleFromCtx(ctx))
	return callerID, domain.CapabilityFor(callerID, role), nil
}

package inquiry

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/rajdhanitech/tuition-backend/internal/domain"
)

var _ inquiryRepo = &inquiryRepoMock{}

type inquiryRepoMock struct {
	CreateFunc      func(ctx context.Context, inq *domain.Inquiry) (*domain.Inquiry, error)
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Inquiry, error)
	ListByScopeFunc func(ctx context.Context, scope domain.InquiryScope) ([]domain.Inquiry, error)
	UpdateFunc      func(ctx context.Context, id uuid.UUID, upd domain.InquiryUpdate) (*domain.Inquiry, error)

	calls struct {
		Create []struct {
			Ctx     context.Context
			Inquiry *domain.Inquiry
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByScope []struct {
			Ctx   context.Context
			Scope domain.InquiryScope
		}
		Update []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Update domain.InquiryUpdate
		}
	}
	lockCreate      sync.RWMutex
	lockGetByID     sync.RWMutex
	lockListByScope sync.RWMutex
	lockUpdate      sync.RWMutex
}

func (mock *inquiryRepoMock) Create(ctx context.Context, inq *domain.Inquiry) (*domain.Inquiry, error) {
	if mock.CreateFunc == nil {
		panic("inquiryRepoMock.CreateFunc: method is nil but inquiryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Inquiry *domain.Inquiry
	}{Ctx: ctx, Inquiry: inq}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, inq)
}

func (mock *inquiryRepoMock) CreateCalls() []struct {
	Ctx     context.Context
	Inquiry *domain.Inquiry
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *inquiryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Inquiry, error) {
	if mock.GetByIDFunc == nil {
		panic("inquiryRepoMock.GetByIDFunc: method is nil but inquiryRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *inquiryRepoMock) ListByScope(ctx context.Context, scope domain.InquiryScope) ([]domain.Inquiry, error) {
	if mock.ListByScopeFunc == nil {
		panic("inquiryRepoMock.ListByScopeFunc: method is nil but inquiryRepo.ListByScope was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scope domain.InquiryScope
	}{Ctx: ctx, Scope: scope}
	mock.lockListByScope.Lock()
	mock.calls.ListByScope = append(mock.calls.ListByScope, callInfo)
	mock.lockListByScope.Unlock()
	return mock.ListByScopeFunc(ctx, scope)
}

func (mock *inquiryRepoMock) ListByScopeCalls() []struct {
	Ctx   context.Context
	Scope domain.InquiryScope
} {
	mock.lockListByScope.RLock()
	calls := mock.calls.ListByScope
	mock.lockListByScope.RUnlock()
	return calls
}

func (mock *inquiryRepoMock) Update(ctx context.Context, id uuid.UUID, upd domain.InquiryUpdate) (*domain.Inquiry, error) {
	if mock.UpdateFunc == nil {
		panic("inquiryRepoMock.UpdateFunc: method is nil but inquiryRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Update domain.InquiryUpdate
	}{Ctx: ctx, ID: id, Update: upd}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, upd)
}

func (mock *inquiryRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Update domain.InquiryUpdate
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

var _ accountRepo = &accountRepoMock{}

type accountRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Account, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *accountRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	if mock.GetByIDFunc == nil {
		panic("accountRepoMock.GetByIDFunc: method is nil but accountRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		return fn(ctx)
	}
	return mock.RunInTxFunc(ctx, fn)
}

var _ notifier = &notifierMock{}

type notifierMock struct {
	InquiryCreatedFunc func(inq domain.Inquiry, parentName string)

	calls struct {
		InquiryCreated []struct {
			Inquiry    domain.Inquiry
			ParentName string
		}
	}
	lockInquiryCreated sync.RWMutex
}

func (mock *notifierMock) InquiryCreated(inq domain.Inquiry, parentName string) {
	callInfo := struct {
		Inquiry    domain.Inquiry
		ParentName string
	}{Inquiry: inq, ParentName: parentName}
	mock.lockInquiryCreated.Lock()
	mock.calls.InquiryCreated = append(mock.calls.InquiryCreated, callInfo)
	mock.lockInquiryCreated.Unlock()
	if mock.InquiryCreatedFunc != nil {
		mock.InquiryCreatedFunc(inq, parentName)
	}
}

func (mock *notifierMock) InquiryCreatedCalls() []struct {
	Inquiry    domain.Inquiry
	ParentName string
} {
	mock.lockInquiryCreated.RLock()
	calls := mock.calls.InquiryCreated
	mock.lockInquiryCreated.RUnlock()
	return calls
}

package teacher

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/rajdhanitech/tuition-backend/internal/domain"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	UpsertFunc         func(ctx context.Context, p *domain.TeacherProfile) (*domain.TeacherProfile, error)
	GetByTeacherIDFunc func(ctx context.Context, teacherID uuid.UUID) (*domain.TeacherProfile, error)

	calls struct {
		Upsert []struct {
			Ctx     context.Context
			Profile *domain.TeacherProfile
		}
		GetByTeacherID []struct {
			Ctx       context.Context
			TeacherID uuid.UUID
		}
	}
	lockUpsert         sync.RWMutex
	lockGetByTeacherID sync.RWMutex
}

func (mock *profileRepoMock) Upsert(ctx context.Context, p *domain.TeacherProfile) (*domain.TeacherProfile, error) {
	if mock.UpsertFunc == nil {
		panic("profileRepoMock.UpsertFunc: method is nil but profileRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Profile *domain.TeacherProfile
	}{Ctx: ctx, Profile: p}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, p)
}

func (mock *profileRepoMock) UpsertCalls() []struct {
	Ctx     context.Context
	Profile *domain.TeacherProfile
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *profileRepoMock) GetByTeacherID(ctx context.Context, teacherID uuid.UUID) (*domain.TeacherProfile, error) {
	if mock.GetByTeacherIDFunc == nil {
		panic("profileRepoMock.GetByTeacherIDFunc: method is nil but profileRepo.GetByTeacherID was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		TeacherID uuid.UUID
	}{Ctx: ctx, TeacherID: teacherID}
	mock.lockGetByTeacherID.Lock()
	mock.calls.GetByTeacherID = append(mock.calls.GetByTeacherID, callInfo)
	mock.lockGetByTeacherID.Unlock()
	return mock.GetByTeacherIDFunc(ctx, teacherID)
}

var _ accountRepo = &accountRepoMock{}

type accountRepoMock struct {
	ListByRoleFunc func(ctx context.Context, role domain.Role) ([]domain.Account, error)
}

func (mock *accountRepoMock) ListByRole(ctx context.Context, role domain.Role) ([]domain.Account, error) {
	if mock.ListByRoleFunc == nil {
		panic("accountRepoMock.ListByRoleFunc: method is nil but accountRepo.ListByRole was just called")
	}
	return mock.ListByRoleFunc(ctx, role)
}

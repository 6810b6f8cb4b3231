package user

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/makerclub/toolroom/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg user . userRepo toolRepo

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	ListFunc    func(ctx context.Context) ([]domain.User, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	CreateFunc  func(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateFunc  func(ctx context.Context, id uuid.UUID, patch domain.UserPatch) (*domain.User, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		List []struct {
			Ctx context.Context
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Create []struct {
			Ctx  context.Context
			User *domain.User
		}
		Update []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Patch domain.UserPatch
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockList    sync.RWMutex
	lockGetByID sync.RWMutex
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *userRepoMock) List(ctx context.Context) ([]domain.User, error) {
	if mock.ListFunc == nil {
		panic("userRepoMock.ListFunc: method is nil but userRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *userRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
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

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		User *domain.User
	}{Ctx: ctx, User: user}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, user)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	User *domain.User
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) Update(ctx context.Context, id uuid.UUID, patch domain.UserPatch) (*domain.User, error) {
	if mock.UpdateFunc == nil {
		panic("userRepoMock.UpdateFunc: method is nil but userRepo.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Patch domain.UserPatch
	}{Ctx: ctx, ID: id, Patch: patch}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, patch)
}

func (mock *userRepoMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Patch domain.UserPatch
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *userRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("userRepoMock.DeleteFunc: method is nil but userRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *userRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ toolRepo = &toolRepoMock{}

type toolRepoMock struct {
	CountHeldByFunc func(ctx context.Context, userID uuid.UUID) (int, error)

	calls struct {
		CountHeldBy []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockCountHeldBy sync.RWMutex
}

func (mock *toolRepoMock) CountHeldBy(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountHeldByFunc == nil {
		panic("toolRepoMock.CountHeldByFunc: method is nil but toolRepo.CountHeldBy was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockCountHeldBy.Lock()
	mock.calls.CountHeldBy = append(mock.calls.CountHeldBy, callInfo)
	mock.lockCountHeldBy.Unlock()
	return mock.CountHeldByFunc(ctx, userID)
}

func (mock *toolRepoMock) CountHeldByCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockCountHeldBy.RLock()
	calls := mock.calls.CountHeldBy
	mock.lockCountHeldBy.RUnlock()
	return calls
}

package tool

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/makerclub/toolroom/internal/domain"
)

var _ toolRepo = &toolRepoMock{}

type toolRepoMock struct {
	ListFunc    func(ctx context.Context) ([]domain.Tool, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Tool, error)
	CreateFunc  func(ctx context.Context, tool *domain.Tool) (*domain.Tool, error)
	UpdateFunc  func(ctx context.Context, id uuid.UUID, patch domain.ToolPatch) (*domain.Tool, error)
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
			Tool *domain.Tool
		}
		Update []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Patch domain.ToolPatch
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

func (mock *toolRepoMock) List(ctx context.Context) ([]domain.Tool, error) {
	if mock.ListFunc == nil {
		panic("toolRepoMock.ListFunc: method is nil but toolRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *toolRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *toolRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tool, error) {
	if mock.GetByIDFunc == nil {
		panic("toolRepoMock.GetByIDFunc: method is nil but toolRepo.GetByID was just called")
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

func (mock *toolRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *toolRepoMock) Create(ctx context.Context, tool *domain.Tool) (*domain.Tool, error) {
	if mock.CreateFunc == nil {
		panic("toolRepoMock.CreateFunc: method is nil but toolRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Tool *domain.Tool
	}{Ctx: ctx, Tool: tool}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, tool)
}

func (mock *toolRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Tool *domain.Tool
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *toolRepoMock) Update(ctx context.Context, id uuid.UUID, patch domain.ToolPatch) (*domain.Tool, error) {
	if mock.UpdateFunc == nil {
		panic("toolRepoMock.UpdateFunc: method is nil but toolRepo.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Patch domain.ToolPatch
	}{Ctx: ctx, ID: id, Patch: patch}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, patch)
}

func (mock *toolRepoMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Patch domain.ToolPatch
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *toolRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("toolRepoMock.DeleteFunc: method is nil but toolRepo.Delete was just called")
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

func (mock *toolRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

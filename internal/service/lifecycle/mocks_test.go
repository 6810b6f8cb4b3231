package lifecycle

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/makerclub/toolroom/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg lifecycle . toolRepo historyRepo txManager

var _ toolRepo = &toolRepoMock{}

type toolRepoMock struct {
	GetForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.Tool, error)
	SetCustodyFunc   func(ctx context.Context, id uuid.UUID, status domain.ToolStatus, holder *uuid.UUID, at time.Time) error

	calls struct {
		GetForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		SetCustody []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Status domain.ToolStatus
			Holder *uuid.UUID
			At     time.Time
		}
	}
	lockGetForUpdate sync.RWMutex
	lockSetCustody   sync.RWMutex
}

func (mock *toolRepoMock) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Tool, error) {
	if mock.GetForUpdateFunc == nil {
		panic("toolRepoMock.GetForUpdateFunc: method is nil but toolRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, id)
}

func (mock *toolRepoMock) GetForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetForUpdate.RLock()
	calls := mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *toolRepoMock) SetCustody(ctx context.Context, id uuid.UUID, status domain.ToolStatus, holder *uuid.UUID, at time.Time) error {
	if mock.SetCustodyFunc == nil {
		panic("toolRepoMock.SetCustodyFunc: method is nil but toolRepo.SetCustody was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Status domain.ToolStatus
		Holder *uuid.UUID
		At     time.Time
	}{Ctx: ctx, ID: id, Status: status, Holder: holder, At: at}
	mock.lockSetCustody.Lock()
	mock.calls.SetCustody = append(mock.calls.SetCustody, callInfo)
	mock.lockSetCustody.Unlock()
	return mock.SetCustodyFunc(ctx, id, status, holder, at)
}

func (mock *toolRepoMock) SetCustodyCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Status domain.ToolStatus
	Holder *uuid.UUID
	At     time.Time
} {
	mock.lockSetCustody.RLock()
	calls := mock.calls.SetCustody
	mock.lockSetCustody.RUnlock()
	return calls
}

var _ historyRepo = &historyRepoMock{}

type historyRepoMock struct {
	OpenFunc            func(ctx context.Context, toolID, userID uuid.UUID, at time.Time) (*domain.HistoryRecord, error)
	OpenCountFunc       func(ctx context.Context, toolID uuid.UUID) (int, error)
	CloseLatestOpenFunc func(ctx context.Context, toolID uuid.UUID, at time.Time) (int64, error)

	calls struct {
		Open []struct {
			Ctx    context.Context
			ToolID uuid.UUID
			UserID uuid.UUID
			At     time.Time
		}
		OpenCount []struct {
			Ctx    context.Context
			ToolID uuid.UUID
		}
		CloseLatestOpen []struct {
			Ctx    context.Context
			ToolID uuid.UUID
			At     time.Time
		}
	}
	lockOpen            sync.RWMutex
	lockOpenCount       sync.RWMutex
	lockCloseLatestOpen sync.RWMutex
}

func (mock *historyRepoMock) Open(ctx context.Context, toolID, userID uuid.UUID, at time.Time) (*domain.HistoryRecord, error) {
	if mock.OpenFunc == nil {
		panic("historyRepoMock.OpenFunc: method is nil but historyRepo.Open was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ToolID uuid.UUID
		UserID uuid.UUID
		At     time.Time
	}{Ctx: ctx, ToolID: toolID, UserID: userID, At: at}
	mock.lockOpen.Lock()
	mock.calls.Open = append(mock.calls.Open, callInfo)
	mock.lockOpen.Unlock()
	return mock.OpenFunc(ctx, toolID, userID, at)
}

func (mock *historyRepoMock) OpenCalls() []struct {
	Ctx    context.Context
	ToolID uuid.UUID
	UserID uuid.UUID
	At     time.Time
} {
	mock.lockOpen.RLock()
	calls := mock.calls.Open
	mock.lockOpen.RUnlock()
	return calls
}

func (mock *historyRepoMock) OpenCount(ctx context.Context, toolID uuid.UUID) (int, error) {
	if mock.OpenCountFunc == nil {
		panic("historyRepoMock.OpenCountFunc: method is nil but historyRepo.OpenCount was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ToolID uuid.UUID
	}{Ctx: ctx, ToolID: toolID}
	mock.lockOpenCount.Lock()
	mock.calls.OpenCount = append(mock.calls.OpenCount, callInfo)
	mock.lockOpenCount.Unlock()
	return mock.OpenCountFunc(ctx, toolID)
}

func (mock *historyRepoMock) OpenCountCalls() []struct {
	Ctx    context.Context
	ToolID uuid.UUID
} {
	mock.lockOpenCount.RLock()
	calls := mock.calls.OpenCount
	mock.lockOpenCount.RUnlock()
	return calls
}

func (mock *historyRepoMock) CloseLatestOpen(ctx context.Context, toolID uuid.UUID, at time.Time) (int64, error) {
	if mock.CloseLatestOpenFunc == nil {
		panic("historyRepoMock.CloseLatestOpenFunc: method is nil but historyRepo.CloseLatestOpen was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ToolID uuid.UUID
		At     time.Time
	}{Ctx: ctx, ToolID: toolID, At: at}
	mock.lockCloseLatestOpen.Lock()
	mock.calls.CloseLatestOpen = append(mock.calls.CloseLatestOpen, callInfo)
	mock.lockCloseLatestOpen.Unlock()
	return mock.CloseLatestOpenFunc(ctx, toolID, at)
}

func (mock *historyRepoMock) CloseLatestOpenCalls() []struct {
	Ctx    context.Context
	ToolID uuid.UUID
	At     time.Time
} {
	mock.lockCloseLatestOpen.RLock()
	calls := mock.calls.CloseLatestOpen
	mock.lockCloseLatestOpen.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}

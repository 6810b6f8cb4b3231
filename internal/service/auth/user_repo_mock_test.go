package auth

import (
	"context"
	"sync"

	"github.com/makerclub/toolroom/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByNameFunc func(ctx context.Context, name string) (*domain.User, error)
	CreateFunc    func(ctx context.Context, user *domain.User) (*domain.User, error)

	calls struct {
		GetByName []struct {
			Ctx  context.Context
			Name string
		}
		Create []struct {
			Ctx  context.Context
			User *domain.User
		}
	}
	lockGetByName sync.RWMutex
	lockCreate    sync.RWMutex
}

func (mock *userRepoMock) GetByName(ctx context.Context, name string) (*domain.User, error) {
	if mock.GetByNameFunc == nil {
		panic("userRepoMock.GetByNameFunc: method is nil but userRepo.GetByName was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{Ctx: ctx, Name: name}
	mock.lockGetByName.Lock()
	mock.calls.GetByName = append(mock.calls.GetByName, callInfo)
	mock.lockGetByName.Unlock()
	return mock.GetByNameFunc(ctx, name)
}

func (mock *userRepoMock) GetByNameCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lockGetByName.RLock()
	calls := mock.calls.GetByName
	mock.lockGetByName.RUnlock()
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

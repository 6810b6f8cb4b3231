package auth

import (
	"sync"

	"github.com/google/uuid"

	"github.com/makerclub/toolroom/internal/domain"
)

var _ tokenIssuer = &tokenIssuerMock{}

type tokenIssuerMock struct {
	GenerateAccessTokenFunc func(userID uuid.UUID, name string, role domain.Role) (string, error)

	calls struct {
		GenerateAccessToken []struct {
			UserID uuid.UUID
			Name   string
			Role   domain.Role
		}
	}
	lockGenerateAccessToken sync.RWMutex
}

func (mock *tokenIssuerMock) GenerateAccessToken(userID uuid.UUID, name string, role domain.Role) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("tokenIssuerMock.GenerateAccessTokenFunc: method is nil but tokenIssuer.GenerateAccessToken was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Name   string
		Role   domain.Role
	}{UserID: userID, Name: name, Role: role}
	mock.lockGenerateAccessToken.Lock()
	mock.calls.GenerateAccessToken = append(mock.calls.GenerateAccessToken, callInfo)
	mock.lockGenerateAccessToken.Unlock()
	return mock.GenerateAccessTokenFunc(userID, name, role)
}

func (mock *tokenIssuerMock) GenerateAccessTokenCalls() []struct {
	UserID uuid.UUID
	Name   string
	Role   domain.Role
} {
	mock.lockGenerateAccessToken.RLock()
	calls := mock.calls.GenerateAccessToken
	mock.lockGenerateAccessToken.RUnlock()
	return calls
}

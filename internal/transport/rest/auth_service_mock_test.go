package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/incident-desk/internal/domain"
	"github.com/heartmarshall/incident-desk/internal/service/auth"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	LoginWithPasswordFunc func(ctx context.Context, input auth.LoginPasswordInput) (*auth.Session, error)
	MeFunc                func(ctx context.Context) (*domain.User, error)
	RegisterFunc          func(ctx context.Context, input auth.RegisterInput) (*auth.Session, error)

	calls struct {
		LoginWithPassword []struct {
			Ctx   context.Context
			Input auth.LoginPasswordInput
		}
		Me []struct {
			Ctx context.Context
		}
		Register []struct {
			Ctx   context.Context
			Input auth.RegisterInput
		}
	}
	lockLoginWithPassword sync.RWMutex
	lockMe                sync.RWMutex
	lockRegister          sync.RWMutex
}

func (mock *authServiceMock) LoginWithPassword(ctx context.Context, input auth.LoginPasswordInput) (*auth.Session, error) {
	if mock.LoginWithPasswordFunc == nil {
		panic("authServiceMock.LoginWithPasswordFunc: method is nil but authService.LoginWithPassword was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.LoginPasswordInput
	}{Ctx: ctx, Input: input}
	mock.lockLoginWithPassword.Lock()
	mock.calls.LoginWithPassword = append(mock.calls.LoginWithPassword, callInfo)
	mock.lockLoginWithPassword.Unlock()
	return mock.LoginWithPasswordFunc(ctx, input)
}

func (mock *authServiceMock) LoginWithPasswordCalls() []struct {
	Ctx   context.Context
	Input auth.LoginPasswordInput
} {
	mock.lockLoginWithPassword.RLock()
	calls := mock.calls.LoginWithPassword
	mock.lockLoginWithPassword.RUnlock()
	return calls
}

func (mock *authServiceMock) Me(ctx context.Context) (*domain.User, error) {
	if mock.MeFunc == nil {
		panic("authServiceMock.MeFunc: method is nil but authService.Me was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockMe.Lock()
	mock.calls.Me = append(mock.calls.Me, callInfo)
	mock.lockMe.Unlock()
	return mock.MeFunc(ctx)
}

func (mock *authServiceMock) MeCalls() []struct {
	Ctx context.Context
} {
	mock.lockMe.RLock()
	calls := mock.calls.Me
	mock.lockMe.RUnlock()
	return calls
}

func (mock *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*auth.Session, error) {
	if mock.RegisterFunc == nil {
		panic("authServiceMock.RegisterFunc: method is nil but authService.Register was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.RegisterInput
	}{Ctx: ctx, Input: input}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *authServiceMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input auth.RegisterInput
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

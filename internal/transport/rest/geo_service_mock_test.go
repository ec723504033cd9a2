package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/incident-desk/internal/domain"
	"github.com/heartmarshall/incident-desk/internal/service/geo"
)

var _ geoService = &geoServiceMock{}

type geoServiceMock struct {
	EnabledFunc func() bool
	ResolveFunc func(ctx context.Context, input geo.ResolveInput) (*domain.GeoLocation, error)

	calls struct {
		Enabled []struct{}
		Resolve []struct {
			Ctx   context.Context
			Input geo.ResolveInput
		}
	}
	lockEnabled sync.RWMutex
	lockResolve sync.RWMutex
}

func (mock *geoServiceMock) Enabled() bool {
	if mock.EnabledFunc == nil {
		panic("geoServiceMock.EnabledFunc: method is nil but geoService.Enabled was just called")
	}
	callInfo := struct{}{}
	mock.lockEnabled.Lock()
	mock.calls.Enabled = append(mock.calls.Enabled, callInfo)
	mock.lockEnabled.Unlock()
	return mock.EnabledFunc()
}

func (mock *geoServiceMock) EnabledCalls() []struct{} {
	mock.lockEnabled.RLock()
	calls := mock.calls.Enabled
	mock.lockEnabled.RUnlock()
	return calls
}

func (mock *geoServiceMock) Resolve(ctx context.Context, input geo.ResolveInput) (*domain.GeoLocation, error) {
	if mock.ResolveFunc == nil {
		panic("geoServiceMock.ResolveFunc: method is nil but geoService.Resolve was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input geo.ResolveInput
	}{Ctx: ctx, Input: input}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(ctx, input)
}

func (mock *geoServiceMock) ResolveCalls() []struct {
	Ctx   context.Context
	Input geo.ResolveInput
} {
	mock.lockResolve.RLock()
	calls := mock.calls.Resolve
	mock.lockResolve.RUnlock()
	return calls
}

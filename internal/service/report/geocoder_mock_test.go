package report

import (
	"context"
	"sync"

	"github.com/heartmarshall/incident-desk/internal/domain"
)

var _ geocoder = &geocoderMock{}

type geocoderMock struct {
	EnabledFunc func() bool
	ReverseFunc func(ctx context.Context, lat float64, lng float64) (*domain.GeoLocation, error)

	calls struct {
		Enabled []struct{}
		Reverse []struct {
			Ctx context.Context
			Lat float64
			Lng float64
		}
	}
	lockEnabled sync.RWMutex
	lockReverse sync.RWMutex
}

func (mock *geocoderMock) Enabled() bool {
	if mock.EnabledFunc == nil {
		panic("geocoderMock.EnabledFunc: method is nil but geocoder.Enabled was just called")
	}
	callInfo := struct{}{}
	mock.lockEnabled.Lock()
	mock.calls.Enabled = append(mock.calls.Enabled, callInfo)
	mock.lockEnabled.Unlock()
	return mock.EnabledFunc()
}

func (mock *geocoderMock) EnabledCalls() []struct{} {
	mock.lockEnabled.RLock()
	calls := mock.calls.Enabled
	mock.lockEnabled.RUnlock()
	return calls
}

func (mock *geocoderMock) Reverse(ctx context.Context, lat float64, lng float64) (*domain.GeoLocation, error) {
	if mock.ReverseFunc == nil {
		panic("geocoderMock.ReverseFunc: method is nil but geocoder.Reverse was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Lat float64
		Lng float64
	}{Ctx: ctx, Lat: lat, Lng: lng}
	mock.lockReverse.Lock()
	mock.calls.Reverse = append(mock.calls.Reverse, callInfo)
	mock.lockReverse.Unlock()
	return mock.ReverseFunc(ctx, lat, lng)
}

func (mock *geocoderMock) ReverseCalls() []struct {
	Ctx context.Context
	Lat float64
	Lng float64
} {
	mock.lockReverse.RLock()
	calls := mock.calls.Reverse
	mock.lockReverse.RUnlock()
	return calls
}

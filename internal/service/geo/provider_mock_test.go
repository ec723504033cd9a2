package geo

import (
	"context"
	"sync"

	"github.com/heartmarshall/incident-desk/internal/domain"
)

var _ provider = &providerMock{}

type providerMock struct {
	GeocodeFunc        func(ctx context.Context, address string) (*domain.GeoLocation, error)
	ReverseGeocodeFunc func(ctx context.Context, lat float64, lng float64) (*domain.GeoLocation, error)

	calls struct {
		Geocode []struct {
			Ctx     context.Context
			Address string
		}
		ReverseGeocode []struct {
			Ctx context.Context
			Lat float64
			Lng float64
		}
	}
	lockGeocode        sync.RWMutex
	lockReverseGeocode sync.RWMutex
}

func (mock *providerMock) Geocode(ctx context.Context, address string) (*domain.GeoLocation, error) {
	if mock.GeocodeFunc == nil {
		panic("providerMock.GeocodeFunc: method is nil but provider.Geocode was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Address string
	}{Ctx: ctx, Address: address}
	mock.lockGeocode.Lock()
	mock.calls.Geocode = append(mock.calls.Geocode, callInfo)
	mock.lockGeocode.Unlock()
	return mock.GeocodeFunc(ctx, address)
}

func (mock *providerMock) GeocodeCalls() []struct {
	Ctx     context.Context
	Address string
} {
	mock.lockGeocode.RLock()
	calls := mock.calls.Geocode
	mock.lockGeocode.RUnlock()
	return calls
}

func (mock *providerMock) ReverseGeocode(ctx context.Context, lat float64, lng float64) (*domain.GeoLocation, error) {
	if mock.ReverseGeocodeFunc == nil {
		panic("providerMock.ReverseGeocodeFunc: method is nil but provider.ReverseGeocode was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Lat float64
		Lng float64
	}{Ctx: ctx, Lat: lat, Lng: lng}
	mock.lockReverseGeocode.Lock()
	mock.calls.ReverseGeocode = append(mock.calls.ReverseGeocode, callInfo)
	mock.lockReverseGeocode.Unlock()
	return mock.ReverseGeocodeFunc(ctx, lat, lng)
}

func (mock *providerMock) ReverseGeocodeCalls() []struct {
	Ctx context.Context
	Lat float64
	Lng float64
} {
	mock.lockReverseGeocode.RLock()
	calls := mock.calls.ReverseGeocode
	mock.lockReverseGeocode.RUnlock()
	return calls
}

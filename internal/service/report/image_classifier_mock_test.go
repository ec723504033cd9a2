package report

import (
	"context"
	"sync"

	"github.com/heartmarshall/incident-desk/internal/domain"
)

var _ imageClassifier = &imageClassifierMock{}

type imageClassifierMock struct {
	ClassifyImageFunc func(ctx context.Context, img domain.ImageBlob) (*domain.Classification, error)
	EnabledFunc       func() bool

	calls struct {
		ClassifyImage []struct {
			Ctx context.Context
			Img domain.ImageBlob
		}
		Enabled []struct{}
	}
	lockClassifyImage sync.RWMutex
	lockEnabled       sync.RWMutex
}

func (mock *imageClassifierMock) ClassifyImage(ctx context.Context, img domain.ImageBlob) (*domain.Classification, error) {
	if mock.ClassifyImageFunc == nil {
		panic("imageClassifierMock.ClassifyImageFunc: method is nil but imageClassifier.ClassifyImage was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Img domain.ImageBlob
	}{Ctx: ctx, Img: img}
	mock.lockClassifyImage.Lock()
	mock.calls.ClassifyImage = append(mock.calls.ClassifyImage, callInfo)
	mock.lockClassifyImage.Unlock()
	return mock.ClassifyImageFunc(ctx, img)
}

func (mock *imageClassifierMock) ClassifyImageCalls() []struct {
	Ctx context.Context
	Img domain.ImageBlob
} {
	mock.lockClassifyImage.RLock()
	calls := mock.calls.ClassifyImage
	mock.lockClassifyImage.RUnlock()
	return calls
}

func (mock *imageClassifierMock) Enabled() bool {
	if mock.EnabledFunc == nil {
		panic("imageClassifierMock.EnabledFunc: method is nil but imageClassifier.Enabled was just called")
	}
	callInfo := struct{}{}
	mock.lockEnabled.Lock()
	mock.calls.Enabled = append(mock.calls.Enabled, callInfo)
	mock.lockEnabled.Unlock()
	return mock.EnabledFunc()
}

func (mock *imageClassifierMock) EnabledCalls() []struct{} {
	mock.lockEnabled.RLock()
	calls := mock.calls.Enabled
	mock.lockEnabled.RUnlock()
	return calls
}

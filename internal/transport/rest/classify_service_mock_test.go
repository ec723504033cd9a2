package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/incident-desk/internal/domain"
	"github.com/heartmarshall/incident-desk/internal/service/classify"
)

var _ classifyService = &classifyServiceMock{}

type classifyServiceMock struct {
	ClassifyFunc func(ctx context.Context, input classify.ClassifyInput) (*domain.Classification, error)

	calls struct {
		Classify []struct {
			Ctx   context.Context
			Input classify.ClassifyInput
		}
	}
	lockClassify sync.RWMutex
}

func (mock *classifyServiceMock) Classify(ctx context.Context, input classify.ClassifyInput) (*domain.Classification, error) {
	if mock.ClassifyFunc == nil {
		panic("classifyServiceMock.ClassifyFunc: method is nil but classifyService.Classify was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input classify.ClassifyInput
	}{Ctx: ctx, Input: input}
	mock.lockClassify.Lock()
	mock.calls.Classify = append(mock.calls.Classify, callInfo)
	mock.lockClassify.Unlock()
	return mock.ClassifyFunc(ctx, input)
}

func (mock *classifyServiceMock) ClassifyCalls() []struct {
	Ctx   context.Context
	Input classify.ClassifyInput
} {
	mock.lockClassify.RLock()
	calls := mock.calls.Classify
	mock.lockClassify.RUnlock()
	return calls
}

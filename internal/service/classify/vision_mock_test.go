package classify

import (
	"context"
	"sync"

	"github.com/heartmarshall/incident-desk/internal/domain"
)

var _ vision = &visionMock{}

type visionMock struct {
	DescribeFunc func(ctx context.Context, img domain.ImageBlob, prompt string) (string, error)

	calls struct {
		Describe []struct {
			Ctx    context.Context
			Img    domain.ImageBlob
			Prompt string
		}
	}
	lockDescribe sync.RWMutex
}

func (mock *visionMock) Describe(ctx context.Context, img domain.ImageBlob, prompt string) (string, error) {
	if mock.DescribeFunc == nil {
		panic("visionMock.DescribeFunc: method is nil but vision.Describe was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Img    domain.ImageBlob
		Prompt string
	}{Ctx: ctx, Img: img, Prompt: prompt}
	mock.lockDescribe.Lock()
	mock.calls.Describe = append(mock.calls.Describe, callInfo)
	mock.lockDescribe.Unlock()
	return mock.DescribeFunc(ctx, img, prompt)
}

func (mock *visionMock) DescribeCalls() []struct {
	Ctx    context.Context
	Img    domain.ImageBlob
	Prompt string
} {
	mock.lockDescribe.RLock()
	calls := mock.calls.Describe
	mock.lockDescribe.RUnlock()
	return calls
}

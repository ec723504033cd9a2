package report

import (
	"sync"
)

var _ idGenerator = &idGeneratorMock{}

type idGeneratorMock struct {
	GenerateFunc func() (string, error)

	calls struct {
		Generate []struct{}
	}
	lockGenerate sync.RWMutex
}

func (mock *idGeneratorMock) Generate() (string, error) {
	if mock.GenerateFunc == nil {
		panic("idGeneratorMock.GenerateFunc: method is nil but idGenerator.Generate was just called")
	}
	callInfo := struct{}{}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc()
}

func (mock *idGeneratorMock) GenerateCalls() []struct{} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}

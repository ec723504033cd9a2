package rest

import (
	"context"
	"io"
	"sync"

	"github.com/heartmarshall/incident-desk/internal/domain"
	"github.com/heartmarshall/incident-desk/internal/service/report"
)

var _ reportService = &reportServiceMock{}

type reportServiceMock struct {
	GetFunc        func(ctx context.Context, reportID string) (*domain.Report, error)
	HistoryFunc    func(ctx context.Context, reportID string) ([]domain.StatusChange, error)
	ImageFunc      func(ctx context.Context, reportID string) (io.ReadCloser, string, error)
	ListFunc       func(ctx context.Context, input report.ListInput) ([]domain.ReportSummary, int, error)
	SubmitFunc     func(ctx context.Context, input report.SubmitInput) (*domain.Report, error)
	TransitionFunc func(ctx context.Context, input report.TransitionInput) (*domain.Report, error)

	calls struct {
		Get []struct {
			Ctx      context.Context
			ReportID string
		}
		History []struct {
			Ctx      context.Context
			ReportID string
		}
		Image []struct {
			Ctx      context.Context
			ReportID string
		}
		List []struct {
			Ctx   context.Context
			Input report.ListInput
		}
		Submit []struct {
			Ctx   context.Context
			Input report.SubmitInput
		}
		Transition []struct {
			Ctx   context.Context
			Input report.TransitionInput
		}
	}
	lockGet        sync.RWMutex
	lockHistory    sync.RWMutex
	lockImage      sync.RWMutex
	lockList       sync.RWMutex
	lockSubmit     sync.RWMutex
	lockTransition sync.RWMutex
}

func (mock *reportServiceMock) Get(ctx context.Context, reportID string) (*domain.Report, error) {
	if mock.GetFunc == nil {
		panic("reportServiceMock.GetFunc: method is nil but reportService.Get was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ReportID string
	}{Ctx: ctx, ReportID: reportID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, reportID)
}

func (mock *reportServiceMock) GetCalls() []struct {
	Ctx      context.Context
	ReportID string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *reportServiceMock) History(ctx context.Context, reportID string) ([]domain.StatusChange, error) {
	if mock.HistoryFunc == nil {
		panic("reportServiceMock.HistoryFunc: method is nil but reportService.History was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ReportID string
	}{Ctx: ctx, ReportID: reportID}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, callInfo)
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx, reportID)
}

func (mock *reportServiceMock) HistoryCalls() []struct {
	Ctx      context.Context
	ReportID string
} {
	mock.lockHistory.RLock()
	calls := mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}

func (mock *reportServiceMock) Image(ctx context.Context, reportID string) (io.ReadCloser, string, error) {
	if mock.ImageFunc == nil {
		panic("reportServiceMock.ImageFunc: method is nil but reportService.Image was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ReportID string
	}{Ctx: ctx, ReportID: reportID}
	mock.lockImage.Lock()
	mock.calls.Image = append(mock.calls.Image, callInfo)
	mock.lockImage.Unlock()
	return mock.ImageFunc(ctx, reportID)
}

func (mock *reportServiceMock) ImageCalls() []struct {
	Ctx      context.Context
	ReportID string
} {
	mock.lockImage.RLock()
	calls := mock.calls.Image
	mock.lockImage.RUnlock()
	return calls
}

func (mock *reportServiceMock) List(ctx context.Context, input report.ListInput) ([]domain.ReportSummary, int, error) {
	if mock.ListFunc == nil {
		panic("reportServiceMock.ListFunc: method is nil but reportService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input report.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *reportServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input report.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *reportServiceMock) Submit(ctx context.Context, input report.SubmitInput) (*domain.Report, error) {
	if mock.SubmitFunc == nil {
		panic("reportServiceMock.SubmitFunc: method is nil but reportService.Submit was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input report.SubmitInput
	}{Ctx: ctx, Input: input}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, input)
}

func (mock *reportServiceMock) SubmitCalls() []struct {
	Ctx   context.Context
	Input report.SubmitInput
} {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}

func (mock *reportServiceMock) Transition(ctx context.Context, input report.TransitionInput) (*domain.Report, error) {
	if mock.TransitionFunc == nil {
		panic("reportServiceMock.TransitionFunc: method is nil but reportService.Transition was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input report.TransitionInput
	}{Ctx: ctx, Input: input}
	mock.lockTransition.Lock()
	mock.calls.Transition = append(mock.calls.Transition, callInfo)
	mock.lockTransition.Unlock()
	return mock.TransitionFunc(ctx, input)
}

func (mock *reportServiceMock) TransitionCalls() []struct {
	Ctx   context.Context
	Input report.TransitionInput
} {
	mock.lockTransition.RLock()
	calls := mock.calls.Transition
	mock.lockTransition.RUnlock()
	return calls
}

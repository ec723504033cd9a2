package report

import (
	"context"
	"sync"

	"github.com/heartmarshall/incident-desk/internal/domain"
)

var _ reportRepo = &reportRepoMock{}

type reportRepoMock struct {
	AddStatusChangeFunc   func(ctx context.Context, change *domain.StatusChange) error
	CountFunc             func(ctx context.Context, filter domain.ReportFilter) (int, error)
	CreateFunc            func(ctx context.Context, report *domain.Report) (*domain.Report, error)
	GetByReportIDFunc     func(ctx context.Context, reportID string) (*domain.Report, error)
	ListFunc              func(ctx context.Context, filter domain.ReportFilter) ([]*domain.Report, error)
	ListStatusChangesFunc func(ctx context.Context, reportID string) ([]*domain.StatusChange, error)
	UpdateStatusFunc      func(ctx context.Context, reportID string, expectedVersion int, status domain.ReportStatus) (*domain.Report, error)

	calls struct {
		AddStatusChange []struct {
			Ctx    context.Context
			Change *domain.StatusChange
		}
		Count []struct {
			Ctx    context.Context
			Filter domain.ReportFilter
		}
		Create []struct {
			Ctx    context.Context
			Report *domain.Report
		}
		GetByReportID []struct {
			Ctx      context.Context
			ReportID string
		}
		List []struct {
			Ctx    context.Context
			Filter domain.ReportFilter
		}
		ListStatusChanges []struct {
			Ctx      context.Context
			ReportID string
		}
		UpdateStatus []struct {
			Ctx             context.Context
			ReportID        string
			ExpectedVersion int
			Status          domain.ReportStatus
		}
	}
	lockAddStatusChange   sync.RWMutex
	lockCount             sync.RWMutex
	lockCreate            sync.RWMutex
	lockGetByReportID     sync.RWMutex
	lockList              sync.RWMutex
	lockListStatusChanges sync.RWMutex
	lockUpdateStatus      sync.RWMutex
}

func (mock *reportRepoMock) AddStatusChange(ctx context.Context, change *domain.StatusChange) error {
	if mock.AddStatusChangeFunc == nil {
		panic("reportRepoMock.AddStatusChangeFunc: method is nil but reportRepo.AddStatusChange was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Change *domain.StatusChange
	}{Ctx: ctx, Change: change}
	mock.lockAddStatusChange.Lock()
	mock.calls.AddStatusChange = append(mock.calls.AddStatusChange, callInfo)
	mock.lockAddStatusChange.Unlock()
	return mock.AddStatusChangeFunc(ctx, change)
}

func (mock *reportRepoMock) AddStatusChangeCalls() []struct {
	Ctx    context.Context
	Change *domain.StatusChange
} {
	mock.lockAddStatusChange.RLock()
	calls := mock.calls.AddStatusChange
	mock.lockAddStatusChange.RUnlock()
	return calls
}

func (mock *reportRepoMock) Count(ctx context.Context, filter domain.ReportFilter) (int, error) {
	if mock.CountFunc == nil {
		panic("reportRepoMock.CountFunc: method is nil but reportRepo.Count was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ReportFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, filter)
}

func (mock *reportRepoMock) CountCalls() []struct {
	Ctx    context.Context
	Filter domain.ReportFilter
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *reportRepoMock) Create(ctx context.Context, report *domain.Report) (*domain.Report, error) {
	if mock.CreateFunc == nil {
		panic("reportRepoMock.CreateFunc: method is nil but reportRepo.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Report *domain.Report
	}{Ctx: ctx, Report: report}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, report)
}

func (mock *reportRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	Report *domain.Report
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *reportRepoMock) GetByReportID(ctx context.Context, reportID string) (*domain.Report, error) {
	if mock.GetByReportIDFunc == nil {
		panic("reportRepoMock.GetByReportIDFunc: method is nil but reportRepo.GetByReportID was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ReportID string
	}{Ctx: ctx, ReportID: reportID}
	mock.lockGetByReportID.Lock()
	mock.calls.GetByReportID = append(mock.calls.GetByReportID, callInfo)
	mock.lockGetByReportID.Unlock()
	return mock.GetByReportIDFunc(ctx, reportID)
}

func (mock *reportRepoMock) GetByReportIDCalls() []struct {
	Ctx      context.Context
	ReportID string
} {
	mock.lockGetByReportID.RLock()
	calls := mock.calls.GetByReportID
	mock.lockGetByReportID.RUnlock()
	return calls
}

func (mock *reportRepoMock) List(ctx context.Context, filter domain.ReportFilter) ([]*domain.Report, error) {
	if mock.ListFunc == nil {
		panic("reportRepoMock.ListFunc: method is nil but reportRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ReportFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *reportRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.ReportFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *reportRepoMock) ListStatusChanges(ctx context.Context, reportID string) ([]*domain.StatusChange, error) {
	if mock.ListStatusChangesFunc == nil {
		panic("reportRepoMock.ListStatusChangesFunc: method is nil but reportRepo.ListStatusChanges was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ReportID string
	}{Ctx: ctx, ReportID: reportID}
	mock.lockListStatusChanges.Lock()
	mock.calls.ListStatusChanges = append(mock.calls.ListStatusChanges, callInfo)
	mock.lockListStatusChanges.Unlock()
	return mock.ListStatusChangesFunc(ctx, reportID)
}

func (mock *reportRepoMock) ListStatusChangesCalls() []struct {
	Ctx      context.Context
	ReportID string
} {
	mock.lockListStatusChanges.RLock()
	calls := mock.calls.ListStatusChanges
	mock.lockListStatusChanges.RUnlock()
	return calls
}

func (mock *reportRepoMock) UpdateStatus(ctx context.Context, reportID string, expectedVersion int, status domain.ReportStatus) (*domain.Report, error) {
	if mock.UpdateStatusFunc == nil {
		panic("reportRepoMock.UpdateStatusFunc: method is nil but reportRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx             context.Context
		ReportID        string
		ExpectedVersion int
		Status          domain.ReportStatus
	}{Ctx: ctx, ReportID: reportID, ExpectedVersion: expectedVersion, Status: status}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, reportID, expectedVersion, status)
}

func (mock *reportRepoMock) UpdateStatusCalls() []struct {
	Ctx             context.Context
	ReportID        string
	ExpectedVersion int
	Status          domain.ReportStatus
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

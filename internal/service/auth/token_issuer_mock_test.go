package auth

import (
	"sync"

	"github.com/google/uuid"

	jwtauth "github.com/heartmarshall/incident-desk/internal/auth"
)

var _ tokenIssuer = &tokenIssuerMock{}

type tokenIssuerMock struct {
	IssueFunc  func(userID uuid.UUID, role string) (jwtauth.Token, error)
	VerifyFunc func(token string) (jwtauth.Claims, error)

	calls struct {
		Issue []struct {
			UserID uuid.UUID
			Role   string
		}
		Verify []struct {
			Token string
		}
	}
	lockIssue  sync.RWMutex
	lockVerify sync.RWMutex
}

func (mock *tokenIssuerMock) Issue(userID uuid.UUID, role string) (jwtauth.Token, error) {
	if mock.IssueFunc == nil {
		panic("tokenIssuerMock.IssueFunc: method is nil but tokenIssuer.Issue was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Role   string
	}{UserID: userID, Role: role}
	mock.lockIssue.Lock()
	mock.calls.Issue = append(mock.calls.Issue, callInfo)
	mock.lockIssue.Unlock()
	return mock.IssueFunc(userID, role)
}

func (mock *tokenIssuerMock) IssueCalls() []struct {
	UserID uuid.UUID
	Role   string
} {
	mock.lockIssue.RLock()
	calls := mock.calls.Issue
	mock.lockIssue.RUnlock()
	return calls
}

func (mock *tokenIssuerMock) Verify(token string) (jwtauth.Claims, error) {
	if mock.VerifyFunc == nil {
		panic("tokenIssuerMock.VerifyFunc: method is nil but tokenIssuer.Verify was just called")
	}
	callInfo := struct {
		Token string
	}{Token: token}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, callInfo)
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(token)
}

func (mock *tokenIssuerMock) VerifyCalls() []struct {
	Token string
} {
	mock.lockVerify.RLock()
	calls := mock.calls.Verify
	mock.lockVerify.RUnlock()
	return calls
}

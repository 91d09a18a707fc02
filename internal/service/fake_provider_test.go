package service

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/celebra-rh/assessment-gateway/internal/apiclient"
	"github.com/celebra-rh/assessment-gateway/internal/model"
)

// fakeProvider is a scriptable apiclient.Provider. Unset hooks fail loudly so
// a test never silently reaches an upstream call it did not expect.
type fakeProvider struct {
	createLinkFn  func(ctx context.Context, testType model.TestType, testName string) (string, error)
	questionsFn   func(ctx context.Context, testType model.TestType, token string) ([]model.Question, error)
	linkInfoFn    func(ctx context.Context, testType model.TestType, token string) (string, error)
	updateInfoFn  func(ctx context.Context, testType model.TestType, token string, participant model.Participant) error
	submitFn      func(ctx context.Context, testType model.TestType, token, name string, answers []model.Answer) (apiclient.SubmitResult, error)
	resultFn      func(ctx context.Context, testType model.TestType, resultID string) (model.Result, error)
	listResultsFn func(ctx context.Context, testType model.TestType, query apiclient.ListQuery) (apiclient.ResultPage, error)
	reportFn      func(ctx context.Context, testType model.TestType, resultID string) ([]byte, error)
	metricsFn     func(ctx context.Context) (model.Metrics, error)

	submitCalls     atomic.Int64
	updateInfoCalls atomic.Int64
	createLinkCalls atomic.Int64
}

var errUnexpectedCall = errors.New("unexpected upstream call")

func (f *fakeProvider) CreateLink(ctx context.Context, testType model.TestType, testName string) (string, error) {
	f.createLinkCalls.Add(1)
	if f.createLinkFn == nil {
		return "", errUnexpectedCall
	}
	return f.createLinkFn(ctx, testType, testName)
}

func (f *fakeProvider) Questions(ctx context.Context, testType model.TestType, token string) ([]model.Question, error) {
	if f.questionsFn == nil {
		return nil, errUnexpectedCall
	}
	return f.questionsFn(ctx, testType, token)
}

func (f *fakeProvider) LinkInfo(ctx context.Context, testType model.TestType, token string) (string, error) {
	if f.linkInfoFn == nil {
		return "", errUnexpectedCall
	}
	return f.linkInfoFn(ctx, testType, token)
}

func (f *fakeProvider) UpdateUserInfo(ctx context.Context, testType model.TestType, token string, participant model.Participant) error {
	f.updateInfoCalls.Add(1)
	if f.updateInfoFn == nil {
		return errUnexpectedCall
	}
	return f.updateInfoFn(ctx, testType, token, participant)
}

func (f *fakeProvider) Submit(ctx context.Context, testType model.TestType, token, name string, answers []model.Answer) (apiclient.SubmitResult, error) {
	f.submitCalls.Add(1)
	if f.submitFn == nil {
		return apiclient.SubmitResult{}, errUnexpectedCall
	}
	return f.submitFn(ctx, testType, token, name, answers)
}

func (f *fakeProvider) Result(ctx context.Context, testType model.TestType, resultID string) (model.Result, error) {
	if f.resultFn == nil {
		return model.Result{}, errUnexpectedCall
	}
	return f.resultFn(ctx, testType, resultID)
}

func (f *fakeProvider) ListResults(ctx context.Context, testType model.TestType, query apiclient.ListQuery) (apiclient.ResultPage, error) {
	if f.listResultsFn == nil {
		return apiclient.ResultPage{}, errUnexpectedCall
	}
	return f.listResultsFn(ctx, testType, query)
}

func (f *fakeProvider) Report(ctx context.Context, testType model.TestType, resultID string) ([]byte, error) {
	if f.reportFn == nil {
		return nil, errUnexpectedCall
	}
	return f.reportFn(ctx, testType, resultID)
}

func (f *fakeProvider) Metrics(ctx context.Context) (model.Metrics, error) {
	if f.metricsFn == nil {
		return model.Metrics{}, errUnexpectedCall
	}
	return f.metricsFn(ctx)
}

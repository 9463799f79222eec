package usecase

import (
	service "blog/internal/domain/service"
	context "context"
	mock "github.com/stretchr/testify/mock"
)

// MockShareCodeUsecase is a testify mock of the ShareCodeUsecase interface with typed expecters.
type MockShareCodeUsecase struct {
	mock.Mock
}

type MockShareCodeUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockShareCodeUsecase) EXPECT() *MockShareCodeUsecase_Expecter {
	return &MockShareCodeUsecase_Expecter{mock: &_m.Mock}
}

// HandleBlogEvent provides a mock function with given fields: ctx, event
func (_m *MockShareCodeUsecase) HandleBlogEvent(ctx context.Context, event *service.BlogEvent) error {
	ret := _m.Called(ctx, event)

	if len(ret) == 0 {
		panic("no return value specified for HandleBlogEvent")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *service.BlogEvent) error); ok {
		r0 = rf(ctx, event)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockShareCodeUsecase_HandleBlogEvent_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'HandleBlogEvent'
type MockShareCodeUsecase_HandleBlogEvent_Call struct {
	*mock.Call
}

// HandleBlogEvent is a helper method to define mock.On call
//   - ctx context.Context
//   - event *service.BlogEvent
func (_e *MockShareCodeUsecase_Expecter) HandleBlogEvent(ctx interface{}, event interface{}) *MockShareCodeUsecase_HandleBlogEvent_Call {
	return &MockShareCodeUsecase_HandleBlogEvent_Call{Call: _e.mock.On("HandleBlogEvent", ctx, event)}
}

func (_c *MockShareCodeUsecase_HandleBlogEvent_Call) Run(run func(ctx context.Context, event *service.BlogEvent)) *MockShareCodeUsecase_HandleBlogEvent_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*service.BlogEvent))
	})
	return _c
}

func (_c *MockShareCodeUsecase_HandleBlogEvent_Call) Return(_a0 error) *MockShareCodeUsecase_HandleBlogEvent_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockShareCodeUsecase_HandleBlogEvent_Call) RunAndReturn(run func(context.Context, *service.BlogEvent) error) *MockShareCodeUsecase_HandleBlogEvent_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockShareCodeUsecase creates a new instance of MockShareCodeUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockShareCodeUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockShareCodeUsecase {
	mock := &MockShareCodeUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

package service

import (
	service "blog/internal/domain/service"
	context "context"
	mock "github.com/stretchr/testify/mock"
)

// MockEventPublisher is a testify mock of the EventPublisher interface with typed expecters.
type MockEventPublisher struct {
	mock.Mock
}

type MockEventPublisher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockEventPublisher) EXPECT() *MockEventPublisher_Expecter {
	return &MockEventPublisher_Expecter{mock: &_m.Mock}
}

// Close provides a mock function with no fields
func (_m *MockEventPublisher) Close() error {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Close")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockEventPublisher_Close_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Close'
type MockEventPublisher_Close_Call struct {
	*mock.Call
}

// Close is a helper method to define mock.On call
func (_e *MockEventPublisher_Expecter) Close() *MockEventPublisher_Close_Call {
	return &MockEventPublisher_Close_Call{Call: _e.mock.On("Close")}
}

func (_c *MockEventPublisher_Close_Call) Run(run func()) *MockEventPublisher_Close_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockEventPublisher_Close_Call) Return(_a0 error) *MockEventPublisher_Close_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockEventPublisher_Close_Call) RunAndReturn(run func() error) *MockEventPublisher_Close_Call {
	_c.Call.Return(run)
	return _c
}

// PublishBlogEvent provides a mock function with given fields: ctx, event
func (_m *MockEventPublisher) PublishBlogEvent(ctx context.Context, event *service.BlogEvent) error {
	ret := _m.Called(ctx, event)

	if len(ret) == 0 {
		panic("no return value specified for PublishBlogEvent")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *service.BlogEvent) error); ok {
		r0 = rf(ctx, event)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockEventPublisher_PublishBlogEvent_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'PublishBlogEvent'
type MockEventPublisher_PublishBlogEvent_Call struct {
	*mock.Call
}

// PublishBlogEvent is a helper method to define mock.On call
//   - ctx context.Context
//   - event *service.BlogEvent
func (_e *MockEventPublisher_Expecter) PublishBlogEvent(ctx interface{}, event interface{}) *MockEventPublisher_PublishBlogEvent_Call {
	return &MockEventPublisher_PublishBlogEvent_Call{Call: _e.mock.On("PublishBlogEvent", ctx, event)}
}

func (_c *MockEventPublisher_PublishBlogEvent_Call) Run(run func(ctx context.Context, event *service.BlogEvent)) *MockEventPublisher_PublishBlogEvent_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*service.BlogEvent))
	})
	return _c
}

func (_c *MockEventPublisher_PublishBlogEvent_Call) Return(_a0 error) *MockEventPublisher_PublishBlogEvent_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockEventPublisher_PublishBlogEvent_Call) RunAndReturn(run func(context.Context, *service.BlogEvent) error) *MockEventPublisher_PublishBlogEvent_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockEventPublisher creates a new instance of MockEventPublisher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventPublisher {
	mock := &MockEventPublisher{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

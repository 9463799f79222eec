package service

import (
	entity "blog/internal/domain/entity"
	mock "github.com/stretchr/testify/mock"
	time "time"
)

// MockTokenService is a testify mock of the TokenService interface with typed expecters.
type MockTokenService struct {
	mock.Mock
}

type MockTokenService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenService) EXPECT() *MockTokenService_Expecter {
	return &MockTokenService_Expecter{mock: &_m.Mock}
}

// DefaultTTL provides a mock function with no fields
func (_m *MockTokenService) DefaultTTL() time.Duration {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for DefaultTTL")
	}

	var r0 time.Duration
	if rf, ok := ret.Get(0).(func() time.Duration); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(time.Duration)
	}

	return r0
}

// MockTokenService_DefaultTTL_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DefaultTTL'
type MockTokenService_DefaultTTL_Call struct {
	*mock.Call
}

// DefaultTTL is a helper method to define mock.On call
func (_e *MockTokenService_Expecter) DefaultTTL() *MockTokenService_DefaultTTL_Call {
	return &MockTokenService_DefaultTTL_Call{Call: _e.mock.On("DefaultTTL")}
}

func (_c *MockTokenService_DefaultTTL_Call) Run(run func()) *MockTokenService_DefaultTTL_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockTokenService_DefaultTTL_Call) Return(_a0 time.Duration) *MockTokenService_DefaultTTL_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockTokenService_DefaultTTL_Call) RunAndReturn(run func() time.Duration) *MockTokenService_DefaultTTL_Call {
	_c.Call.Return(run)
	return _c
}

// Issue provides a mock function with given fields: subject, ttl
func (_m *MockTokenService) Issue(subject string, ttl time.Duration) (*entity.AccessToken, error) {
	ret := _m.Called(subject, ttl)

	if len(ret) == 0 {
		panic("no return value specified for Issue")
	}

	var r0 *entity.AccessToken
	var r1 error
	if rf, ok := ret.Get(0).(func(string, time.Duration) (*entity.AccessToken, error)); ok {
		return rf(subject, ttl)
	}
	if rf, ok := ret.Get(0).(func(string, time.Duration) *entity.AccessToken); ok {
		r0 = rf(subject, ttl)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.AccessToken)
		}
	}

	if rf, ok := ret.Get(1).(func(string, time.Duration) error); ok {
		r1 = rf(subject, ttl)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTokenService_Issue_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Issue'
type MockTokenService_Issue_Call struct {
	*mock.Call
}

// Issue is a helper method to define mock.On call
//   - subject string
//   - ttl time.Duration
func (_e *MockTokenService_Expecter) Issue(subject interface{}, ttl interface{}) *MockTokenService_Issue_Call {
	return &MockTokenService_Issue_Call{Call: _e.mock.On("Issue", subject, ttl)}
}

func (_c *MockTokenService_Issue_Call) Run(run func(subject string, ttl time.Duration)) *MockTokenService_Issue_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string), args[1].(time.Duration))
	})
	return _c
}

func (_c *MockTokenService_Issue_Call) Return(_a0 *entity.AccessToken, _a1 error) *MockTokenService_Issue_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTokenService_Issue_Call) RunAndReturn(run func(string, time.Duration) (*entity.AccessToken, error)) *MockTokenService_Issue_Call {
	_c.Call.Return(run)
	return _c
}

// Verify provides a mock function with given fields: tokenString
func (_m *MockTokenService) Verify(tokenString string) (*entity.Principal, error) {
	ret := _m.Called(tokenString)

	if len(ret) == 0 {
		panic("no return value specified for Verify")
	}

	var r0 *entity.Principal
	var r1 error
	if rf, ok := ret.Get(0).(func(string) (*entity.Principal, error)); ok {
		return rf(tokenString)
	}
	if rf, ok := ret.Get(0).(func(string) *entity.Principal); ok {
		r0 = rf(tokenString)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Principal)
		}
	}

	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(tokenString)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTokenService_Verify_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Verify'
type MockTokenService_Verify_Call struct {
	*mock.Call
}

// Verify is a helper method to define mock.On call
//   - tokenString string
func (_e *MockTokenService_Expecter) Verify(tokenString interface{}) *MockTokenService_Verify_Call {
	return &MockTokenService_Verify_Call{Call: _e.mock.On("Verify", tokenString)}
}

func (_c *MockTokenService_Verify_Call) Run(run func(tokenString string)) *MockTokenService_Verify_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})
	return _c
}

func (_c *MockTokenService_Verify_Call) Return(_a0 *entity.Principal, _a1 error) *MockTokenService_Verify_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTokenService_Verify_Call) RunAndReturn(run func(string) (*entity.Principal, error)) *MockTokenService_Verify_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockTokenService creates a new instance of MockTokenService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	mock := &MockTokenService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

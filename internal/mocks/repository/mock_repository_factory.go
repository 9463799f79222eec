package repository

import (
	repository "blog/internal/domain/repository"
	mock "github.com/stretchr/testify/mock"
)

// MockRepositoryFactory is a testify mock of the RepositoryFactory interface with typed expecters.
type MockRepositoryFactory struct {
	mock.Mock
}

type MockRepositoryFactory_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRepositoryFactory) EXPECT() *MockRepositoryFactory_Expecter {
	return &MockRepositoryFactory_Expecter{mock: &_m.Mock}
}

// BlogRepo provides a mock function with no fields
func (_m *MockRepositoryFactory) BlogRepo() repository.BlogRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for BlogRepo")
	}

	var r0 repository.BlogRepository
	if rf, ok := ret.Get(0).(func() repository.BlogRepository); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(repository.BlogRepository)
		}
	}

	return r0
}

// MockRepositoryFactory_BlogRepo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'BlogRepo'
type MockRepositoryFactory_BlogRepo_Call struct {
	*mock.Call
}

// BlogRepo is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) BlogRepo() *MockRepositoryFactory_BlogRepo_Call {
	return &MockRepositoryFactory_BlogRepo_Call{Call: _e.mock.On("BlogRepo")}
}

func (_c *MockRepositoryFactory_BlogRepo_Call) Run(run func()) *MockRepositoryFactory_BlogRepo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRepositoryFactory_BlogRepo_Call) Return(_a0 repository.BlogRepository) *MockRepositoryFactory_BlogRepo_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepositoryFactory_BlogRepo_Call) RunAndReturn(run func() repository.BlogRepository) *MockRepositoryFactory_BlogRepo_Call {
	_c.Call.Return(run)
	return _c
}

// UserRepo provides a mock function with no fields
func (_m *MockRepositoryFactory) UserRepo() repository.UserRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for UserRepo")
	}

	var r0 repository.UserRepository
	if rf, ok := ret.Get(0).(func() repository.UserRepository); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(repository.UserRepository)
		}
	}

	return r0
}

// MockRepositoryFactory_UserRepo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UserRepo'
type MockRepositoryFactory_UserRepo_Call struct {
	*mock.Call
}

// UserRepo is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) UserRepo() *MockRepositoryFactory_UserRepo_Call {
	return &MockRepositoryFactory_UserRepo_Call{Call: _e.mock.On("UserRepo")}
}

func (_c *MockRepositoryFactory_UserRepo_Call) Run(run func()) *MockRepositoryFactory_UserRepo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRepositoryFactory_UserRepo_Call) Return(_a0 repository.UserRepository) *MockRepositoryFactory_UserRepo_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepositoryFactory_UserRepo_Call) RunAndReturn(run func() repository.UserRepository) *MockRepositoryFactory_UserRepo_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockRepositoryFactory creates a new instance of MockRepositoryFactory. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockRepositoryFactory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepositoryFactory {
	mock := &MockRepositoryFactory{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

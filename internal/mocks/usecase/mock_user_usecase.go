package usecase

import (
	entity "blog/internal/domain/entity"
	usecase "blog/internal/usecase"
	context "context"
	uuid "github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"
)

// MockUserUsecase is a testify mock of the UserUsecase interface with typed expecters.
type MockUserUsecase struct {
	mock.Mock
}

type MockUserUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUserUsecase) EXPECT() *MockUserUsecase_Expecter {
	return &MockUserUsecase_Expecter{mock: &_m.Mock}
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *MockUserUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for GetByID")
	}

	var r0 *entity.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.User, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *entity.User); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.User)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockUserUsecase_GetByID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetByID'
type MockUserUsecase_GetByID_Call struct {
	*mock.Call
}

// GetByID is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockUserUsecase_Expecter) GetByID(ctx interface{}, id interface{}) *MockUserUsecase_GetByID_Call {
	return &MockUserUsecase_GetByID_Call{Call: _e.mock.On("GetByID", ctx, id)}
}

func (_c *MockUserUsecase_GetByID_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockUserUsecase_GetByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockUserUsecase_GetByID_Call) Return(_a0 *entity.User, _a1 error) *MockUserUsecase_GetByID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUserUsecase_GetByID_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.User, error)) *MockUserUsecase_GetByID_Call {
	_c.Call.Return(run)
	return _c
}

// Me provides a mock function with given fields: ctx, principal
func (_m *MockUserUsecase) Me(ctx context.Context, principal *entity.Principal) (*entity.User, error) {
	ret := _m.Called(ctx, principal)

	if len(ret) == 0 {
		panic("no return value specified for Me")
	}

	var r0 *entity.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Principal) (*entity.User, error)); ok {
		return rf(ctx, principal)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Principal) *entity.User); ok {
		r0 = rf(ctx, principal)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.User)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *entity.Principal) error); ok {
		r1 = rf(ctx, principal)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockUserUsecase_Me_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Me'
type MockUserUsecase_Me_Call struct {
	*mock.Call
}

// Me is a helper method to define mock.On call
//   - ctx context.Context
//   - principal *entity.Principal
func (_e *MockUserUsecase_Expecter) Me(ctx interface{}, principal interface{}) *MockUserUsecase_Me_Call {
	return &MockUserUsecase_Me_Call{Call: _e.mock.On("Me", ctx, principal)}
}

func (_c *MockUserUsecase_Me_Call) Run(run func(ctx context.Context, principal *entity.Principal)) *MockUserUsecase_Me_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Principal))
	})
	return _c
}

func (_c *MockUserUsecase_Me_Call) Return(_a0 *entity.User, _a1 error) *MockUserUsecase_Me_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUserUsecase_Me_Call) RunAndReturn(run func(context.Context, *entity.Principal) (*entity.User, error)) *MockUserUsecase_Me_Call {
	_c.Call.Return(run)
	return _c
}

// Register provides a mock function with given fields: ctx, input
func (_m *MockUserUsecase) Register(ctx context.Context, input usecase.RegisterUserInput) (*entity.User, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for Register")
	}

	var r0 *entity.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, usecase.RegisterUserInput) (*entity.User, error)); ok {
		return rf(ctx, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, usecase.RegisterUserInput) *entity.User); ok {
		r0 = rf(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.User)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, usecase.RegisterUserInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockUserUsecase_Register_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Register'
type MockUserUsecase_Register_Call struct {
	*mock.Call
}

// Register is a helper method to define mock.On call
//   - ctx context.Context
//   - input usecase.RegisterUserInput
func (_e *MockUserUsecase_Expecter) Register(ctx interface{}, input interface{}) *MockUserUsecase_Register_Call {
	return &MockUserUsecase_Register_Call{Call: _e.mock.On("Register", ctx, input)}
}

func (_c *MockUserUsecase_Register_Call) Run(run func(ctx context.Context, input usecase.RegisterUserInput)) *MockUserUsecase_Register_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(usecase.RegisterUserInput))
	})
	return _c
}

func (_c *MockUserUsecase_Register_Call) Return(_a0 *entity.User, _a1 error) *MockUserUsecase_Register_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUserUsecase_Register_Call) RunAndReturn(run func(context.Context, usecase.RegisterUserInput) (*entity.User, error)) *MockUserUsecase_Register_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockUserUsecase creates a new instance of MockUserUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockUserUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserUsecase {
	mock := &MockUserUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

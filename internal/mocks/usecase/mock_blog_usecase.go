package usecase

import (
	entity "blog/internal/domain/entity"
	usecase "blog/internal/usecase"
	context "context"
	uuid "github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"
)

// MockBlogUsecase is a testify mock of the BlogUsecase interface with typed expecters.
type MockBlogUsecase struct {
	mock.Mock
}

type MockBlogUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockBlogUsecase) EXPECT() *MockBlogUsecase_Expecter {
	return &MockBlogUsecase_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, principal, input
func (_m *MockBlogUsecase) Create(ctx context.Context, principal *entity.Principal, input usecase.CreateBlogInput) (*entity.Blog, error) {
	ret := _m.Called(ctx, principal, input)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 *entity.Blog
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Principal, usecase.CreateBlogInput) (*entity.Blog, error)); ok {
		return rf(ctx, principal, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Principal, usecase.CreateBlogInput) *entity.Blog); ok {
		r0 = rf(ctx, principal, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Blog)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *entity.Principal, usecase.CreateBlogInput) error); ok {
		r1 = rf(ctx, principal, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockBlogUsecase_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockBlogUsecase_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
//   - ctx context.Context
//   - principal *entity.Principal
//   - input usecase.CreateBlogInput
func (_e *MockBlogUsecase_Expecter) Create(ctx interface{}, principal interface{}, input interface{}) *MockBlogUsecase_Create_Call {
	return &MockBlogUsecase_Create_Call{Call: _e.mock.On("Create", ctx, principal, input)}
}

func (_c *MockBlogUsecase_Create_Call) Run(run func(ctx context.Context, principal *entity.Principal, input usecase.CreateBlogInput)) *MockBlogUsecase_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Principal), args[2].(usecase.CreateBlogInput))
	})
	return _c
}

func (_c *MockBlogUsecase_Create_Call) Return(_a0 *entity.Blog, _a1 error) *MockBlogUsecase_Create_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockBlogUsecase_Create_Call) RunAndReturn(run func(context.Context, *entity.Principal, usecase.CreateBlogInput) (*entity.Blog, error)) *MockBlogUsecase_Create_Call {
	_c.Call.Return(run)
	return _c
}

// Delete provides a mock function with given fields: ctx, principal, id
func (_m *MockBlogUsecase) Delete(ctx context.Context, principal *entity.Principal, id uuid.UUID) error {
	ret := _m.Called(ctx, principal, id)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Principal, uuid.UUID) error); ok {
		r0 = rf(ctx, principal, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockBlogUsecase_Delete_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Delete'
type MockBlogUsecase_Delete_Call struct {
	*mock.Call
}

// Delete is a helper method to define mock.On call
//   - ctx context.Context
//   - principal *entity.Principal
//   - id uuid.UUID
func (_e *MockBlogUsecase_Expecter) Delete(ctx interface{}, principal interface{}, id interface{}) *MockBlogUsecase_Delete_Call {
	return &MockBlogUsecase_Delete_Call{Call: _e.mock.On("Delete", ctx, principal, id)}
}

func (_c *MockBlogUsecase_Delete_Call) Run(run func(ctx context.Context, principal *entity.Principal, id uuid.UUID)) *MockBlogUsecase_Delete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Principal), args[2].(uuid.UUID))
	})
	return _c
}

func (_c *MockBlogUsecase_Delete_Call) Return(_a0 error) *MockBlogUsecase_Delete_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockBlogUsecase_Delete_Call) RunAndReturn(run func(context.Context, *entity.Principal, uuid.UUID) error) *MockBlogUsecase_Delete_Call {
	_c.Call.Return(run)
	return _c
}

// Get provides a mock function with given fields: ctx, id
func (_m *MockBlogUsecase) Get(ctx context.Context, id uuid.UUID) (*entity.Blog, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 *entity.Blog
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.Blog, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *entity.Blog); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Blog)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockBlogUsecase_Get_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Get'
type MockBlogUsecase_Get_Call struct {
	*mock.Call
}

// Get is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockBlogUsecase_Expecter) Get(ctx interface{}, id interface{}) *MockBlogUsecase_Get_Call {
	return &MockBlogUsecase_Get_Call{Call: _e.mock.On("Get", ctx, id)}
}

func (_c *MockBlogUsecase_Get_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockBlogUsecase_Get_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockBlogUsecase_Get_Call) Return(_a0 *entity.Blog, _a1 error) *MockBlogUsecase_Get_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockBlogUsecase_Get_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.Blog, error)) *MockBlogUsecase_Get_Call {
	_c.Call.Return(run)
	return _c
}

// List provides a mock function with given fields: ctx, input
func (_m *MockBlogUsecase) List(ctx context.Context, input usecase.ListBlogsInput) ([]*entity.Blog, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	var r0 []*entity.Blog
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, usecase.ListBlogsInput) ([]*entity.Blog, error)); ok {
		return rf(ctx, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, usecase.ListBlogsInput) []*entity.Blog); ok {
		r0 = rf(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Blog)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, usecase.ListBlogsInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockBlogUsecase_List_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'List'
type MockBlogUsecase_List_Call struct {
	*mock.Call
}

// List is a helper method to define mock.On call
//   - ctx context.Context
//   - input usecase.ListBlogsInput
func (_e *MockBlogUsecase_Expecter) List(ctx interface{}, input interface{}) *MockBlogUsecase_List_Call {
	return &MockBlogUsecase_List_Call{Call: _e.mock.On("List", ctx, input)}
}

func (_c *MockBlogUsecase_List_Call) Run(run func(ctx context.Context, input usecase.ListBlogsInput)) *MockBlogUsecase_List_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(usecase.ListBlogsInput))
	})
	return _c
}

func (_c *MockBlogUsecase_List_Call) Return(_a0 []*entity.Blog, _a1 error) *MockBlogUsecase_List_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockBlogUsecase_List_Call) RunAndReturn(run func(context.Context, usecase.ListBlogsInput) ([]*entity.Blog, error)) *MockBlogUsecase_List_Call {
	_c.Call.Return(run)
	return _c
}

// ShareQR provides a mock function with given fields: ctx, id
func (_m *MockBlogUsecase) ShareQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for ShareQR")
	}

	var r0 []byte
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) ([]byte, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) []byte); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]byte)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockBlogUsecase_ShareQR_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ShareQR'
type MockBlogUsecase_ShareQR_Call struct {
	*mock.Call
}

// ShareQR is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockBlogUsecase_Expecter) ShareQR(ctx interface{}, id interface{}) *MockBlogUsecase_ShareQR_Call {
	return &MockBlogUsecase_ShareQR_Call{Call: _e.mock.On("ShareQR", ctx, id)}
}

func (_c *MockBlogUsecase_ShareQR_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockBlogUsecase_ShareQR_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockBlogUsecase_ShareQR_Call) Return(_a0 []byte, _a1 error) *MockBlogUsecase_ShareQR_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockBlogUsecase_ShareQR_Call) RunAndReturn(run func(context.Context, uuid.UUID) ([]byte, error)) *MockBlogUsecase_ShareQR_Call {
	_c.Call.Return(run)
	return _c
}

// Update provides a mock function with given fields: ctx, principal, input
func (_m *MockBlogUsecase) Update(ctx context.Context, principal *entity.Principal, input usecase.UpdateBlogInput) (*entity.Blog, error) {
	ret := _m.Called(ctx, principal, input)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 *entity.Blog
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Principal, usecase.UpdateBlogInput) (*entity.Blog, error)); ok {
		return rf(ctx, principal, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Principal, usecase.UpdateBlogInput) *entity.Blog); ok {
		r0 = rf(ctx, principal, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Blog)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *entity.Principal, usecase.UpdateBlogInput) error); ok {
		r1 = rf(ctx, principal, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockBlogUsecase_Update_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Update'
type MockBlogUsecase_Update_Call struct {
	*mock.Call
}

// Update is a helper method to define mock.On call
//   - ctx context.Context
//   - principal *entity.Principal
//   - input usecase.UpdateBlogInput
func (_e *MockBlogUsecase_Expecter) Update(ctx interface{}, principal interface{}, input interface{}) *MockBlogUsecase_Update_Call {
	return &MockBlogUsecase_Update_Call{Call: _e.mock.On("Update", ctx, principal, input)}
}

func (_c *MockBlogUsecase_Update_Call) Run(run func(ctx context.Context, principal *entity.Principal, input usecase.UpdateBlogInput)) *MockBlogUsecase_Update_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Principal), args[2].(usecase.UpdateBlogInput))
	})
	return _c
}

func (_c *MockBlogUsecase_Update_Call) Return(_a0 *entity.Blog, _a1 error) *MockBlogUsecase_Update_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockBlogUsecase_Update_Call) RunAndReturn(run func(context.Context, *entity.Principal, usecase.UpdateBlogInput) (*entity.Blog, error)) *MockBlogUsecase_Update_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockBlogUsecase creates a new instance of MockBlogUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockBlogUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBlogUsecase {
	mock := &MockBlogUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

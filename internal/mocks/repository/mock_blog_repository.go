package repository

import (
	entity "blog/internal/domain/entity"
	context "context"
	uuid "github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"
)

// MockBlogRepository is a testify mock of the BlogRepository interface with typed expecters.
type MockBlogRepository struct {
	mock.Mock
}

type MockBlogRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockBlogRepository) EXPECT() *MockBlogRepository_Expecter {
	return &MockBlogRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, blog
func (_m *MockBlogRepository) Create(ctx context.Context, blog *entity.Blog) error {
	ret := _m.Called(ctx, blog)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Blog) error); ok {
		r0 = rf(ctx, blog)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockBlogRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockBlogRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
//   - ctx context.Context
//   - blog *entity.Blog
func (_e *MockBlogRepository_Expecter) Create(ctx interface{}, blog interface{}) *MockBlogRepository_Create_Call {
	return &MockBlogRepository_Create_Call{Call: _e.mock.On("Create", ctx, blog)}
}

func (_c *MockBlogRepository_Create_Call) Run(run func(ctx context.Context, blog *entity.Blog)) *MockBlogRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Blog))
	})
	return _c
}

func (_c *MockBlogRepository_Create_Call) Return(_a0 error) *MockBlogRepository_Create_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockBlogRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.Blog) error) *MockBlogRepository_Create_Call {
	_c.Call.Return(run)
	return _c
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockBlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockBlogRepository_Delete_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Delete'
type MockBlogRepository_Delete_Call struct {
	*mock.Call
}

// Delete is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockBlogRepository_Expecter) Delete(ctx interface{}, id interface{}) *MockBlogRepository_Delete_Call {
	return &MockBlogRepository_Delete_Call{Call: _e.mock.On("Delete", ctx, id)}
}

func (_c *MockBlogRepository_Delete_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockBlogRepository_Delete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockBlogRepository_Delete_Call) Return(_a0 error) *MockBlogRepository_Delete_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockBlogRepository_Delete_Call) RunAndReturn(run func(context.Context, uuid.UUID) error) *MockBlogRepository_Delete_Call {
	_c.Call.Return(run)
	return _c
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *MockBlogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Blog, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for FindByID")
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

// MockBlogRepository_FindByID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByID'
type MockBlogRepository_FindByID_Call struct {
	*mock.Call
}

// FindByID is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockBlogRepository_Expecter) FindByID(ctx interface{}, id interface{}) *MockBlogRepository_FindByID_Call {
	return &MockBlogRepository_FindByID_Call{Call: _e.mock.On("FindByID", ctx, id)}
}

func (_c *MockBlogRepository_FindByID_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockBlogRepository_FindByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockBlogRepository_FindByID_Call) Return(_a0 *entity.Blog, _a1 error) *MockBlogRepository_FindByID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockBlogRepository_FindByID_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.Blog, error)) *MockBlogRepository_FindByID_Call {
	_c.Call.Return(run)
	return _c
}

// List provides a mock function with given fields: ctx, filter
func (_m *MockBlogRepository) List(ctx context.Context, filter entity.BlogFilter) ([]*entity.Blog, error) {
	ret := _m.Called(ctx, filter)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	var r0 []*entity.Blog
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.BlogFilter) ([]*entity.Blog, error)); ok {
		return rf(ctx, filter)
	}
	if rf, ok := ret.Get(0).(func(context.Context, entity.BlogFilter) []*entity.Blog); ok {
		r0 = rf(ctx, filter)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Blog)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, entity.BlogFilter) error); ok {
		r1 = rf(ctx, filter)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockBlogRepository_List_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'List'
type MockBlogRepository_List_Call struct {
	*mock.Call
}

// List is a helper method to define mock.On call
//   - ctx context.Context
//   - filter entity.BlogFilter
func (_e *MockBlogRepository_Expecter) List(ctx interface{}, filter interface{}) *MockBlogRepository_List_Call {
	return &MockBlogRepository_List_Call{Call: _e.mock.On("List", ctx, filter)}
}

func (_c *MockBlogRepository_List_Call) Run(run func(ctx context.Context, filter entity.BlogFilter)) *MockBlogRepository_List_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.BlogFilter))
	})
	return _c
}

func (_c *MockBlogRepository_List_Call) Return(_a0 []*entity.Blog, _a1 error) *MockBlogRepository_List_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockBlogRepository_List_Call) RunAndReturn(run func(context.Context, entity.BlogFilter) ([]*entity.Blog, error)) *MockBlogRepository_List_Call {
	_c.Call.Return(run)
	return _c
}

// Update provides a mock function with given fields: ctx, blog
func (_m *MockBlogRepository) Update(ctx context.Context, blog *entity.Blog) error {
	ret := _m.Called(ctx, blog)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Blog) error); ok {
		r0 = rf(ctx, blog)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockBlogRepository_Update_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Update'
type MockBlogRepository_Update_Call struct {
	*mock.Call
}

// Update is a helper method to define mock.On call
//   - ctx context.Context
//   - blog *entity.Blog
func (_e *MockBlogRepository_Expecter) Update(ctx interface{}, blog interface{}) *MockBlogRepository_Update_Call {
	return &MockBlogRepository_Update_Call{Call: _e.mock.On("Update", ctx, blog)}
}

func (_c *MockBlogRepository_Update_Call) Run(run func(ctx context.Context, blog *entity.Blog)) *MockBlogRepository_Update_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Blog))
	})
	return _c
}

func (_c *MockBlogRepository_Update_Call) Return(_a0 error) *MockBlogRepository_Update_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockBlogRepository_Update_Call) RunAndReturn(run func(context.Context, *entity.Blog) error) *MockBlogRepository_Update_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockBlogRepository creates a new instance of MockBlogRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockBlogRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBlogRepository {
	mock := &MockBlogRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

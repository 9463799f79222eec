package service

import (
	context "context"
	mock "github.com/stretchr/testify/mock"
	io "io"
	time "time"
)

// MockPhotoStorage is a testify mock of the PhotoStorage interface with typed expecters.
type MockPhotoStorage struct {
	mock.Mock
}

type MockPhotoStorage_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPhotoStorage) EXPECT() *MockPhotoStorage_Expecter {
	return &MockPhotoStorage_Expecter{mock: &_m.Mock}
}

// Close provides a mock function with no fields
func (_m *MockPhotoStorage) Close() error {
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

// MockPhotoStorage_Close_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Close'
type MockPhotoStorage_Close_Call struct {
	*mock.Call
}

// Close is a helper method to define mock.On call
func (_e *MockPhotoStorage_Expecter) Close() *MockPhotoStorage_Close_Call {
	return &MockPhotoStorage_Close_Call{Call: _e.mock.On("Close")}
}

func (_c *MockPhotoStorage_Close_Call) Run(run func()) *MockPhotoStorage_Close_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockPhotoStorage_Close_Call) Return(_a0 error) *MockPhotoStorage_Close_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockPhotoStorage_Close_Call) RunAndReturn(run func() error) *MockPhotoStorage_Close_Call {
	_c.Call.Return(run)
	return _c
}

// Delete provides a mock function with given fields: ctx, key
func (_m *MockPhotoStorage) Delete(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, key)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockPhotoStorage_Delete_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Delete'
type MockPhotoStorage_Delete_Call struct {
	*mock.Call
}

// Delete is a helper method to define mock.On call
//   - ctx context.Context
//   - key string
func (_e *MockPhotoStorage_Expecter) Delete(ctx interface{}, key interface{}) *MockPhotoStorage_Delete_Call {
	return &MockPhotoStorage_Delete_Call{Call: _e.mock.On("Delete", ctx, key)}
}

func (_c *MockPhotoStorage_Delete_Call) Run(run func(ctx context.Context, key string)) *MockPhotoStorage_Delete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockPhotoStorage_Delete_Call) Return(_a0 error) *MockPhotoStorage_Delete_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockPhotoStorage_Delete_Call) RunAndReturn(run func(context.Context, string) error) *MockPhotoStorage_Delete_Call {
	_c.Call.Return(run)
	return _c
}

// URL provides a mock function with given fields: ctx, key, ttl
func (_m *MockPhotoStorage) URL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	ret := _m.Called(ctx, key, ttl)

	if len(ret) == 0 {
		panic("no return value specified for URL")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, time.Duration) (string, error)); ok {
		return rf(ctx, key, ttl)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, time.Duration) string); ok {
		r0 = rf(ctx, key, ttl)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, time.Duration) error); ok {
		r1 = rf(ctx, key, ttl)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockPhotoStorage_URL_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'URL'
type MockPhotoStorage_URL_Call struct {
	*mock.Call
}

// URL is a helper method to define mock.On call
//   - ctx context.Context
//   - key string
//   - ttl time.Duration
func (_e *MockPhotoStorage_Expecter) URL(ctx interface{}, key interface{}, ttl interface{}) *MockPhotoStorage_URL_Call {
	return &MockPhotoStorage_URL_Call{Call: _e.mock.On("URL", ctx, key, ttl)}
}

func (_c *MockPhotoStorage_URL_Call) Run(run func(ctx context.Context, key string, ttl time.Duration)) *MockPhotoStorage_URL_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(time.Duration))
	})
	return _c
}

func (_c *MockPhotoStorage_URL_Call) Return(_a0 string, _a1 error) *MockPhotoStorage_URL_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockPhotoStorage_URL_Call) RunAndReturn(run func(context.Context, string, time.Duration) (string, error)) *MockPhotoStorage_URL_Call {
	_c.Call.Return(run)
	return _c
}

// Upload provides a mock function with given fields: ctx, key, r, contentType
func (_m *MockPhotoStorage) Upload(ctx context.Context, key string, r io.Reader, contentType string) (int64, error) {
	ret := _m.Called(ctx, key, r, contentType)

	if len(ret) == 0 {
		panic("no return value specified for Upload")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, io.Reader, string) (int64, error)); ok {
		return rf(ctx, key, r, contentType)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, io.Reader, string) int64); ok {
		r0 = rf(ctx, key, r, contentType)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, io.Reader, string) error); ok {
		r1 = rf(ctx, key, r, contentType)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockPhotoStorage_Upload_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Upload'
type MockPhotoStorage_Upload_Call struct {
	*mock.Call
}

// Upload is a helper method to define mock.On call
//   - ctx context.Context
//   - key string
//   - r io.Reader
//   - contentType string
func (_e *MockPhotoStorage_Expecter) Upload(ctx interface{}, key interface{}, r interface{}, contentType interface{}) *MockPhotoStorage_Upload_Call {
	return &MockPhotoStorage_Upload_Call{Call: _e.mock.On("Upload", ctx, key, r, contentType)}
}

func (_c *MockPhotoStorage_Upload_Call) Run(run func(ctx context.Context, key string, r io.Reader, contentType string)) *MockPhotoStorage_Upload_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(io.Reader), args[3].(string))
	})
	return _c
}

func (_c *MockPhotoStorage_Upload_Call) Return(_a0 int64, _a1 error) *MockPhotoStorage_Upload_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockPhotoStorage_Upload_Call) RunAndReturn(run func(context.Context, string, io.Reader, string) (int64, error)) *MockPhotoStorage_Upload_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockPhotoStorage creates a new instance of MockPhotoStorage. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockPhotoStorage(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPhotoStorage {
	mock := &MockPhotoStorage{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

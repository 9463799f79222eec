package service

import (
	uuid "github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"
)

// MockQRCodeService is a testify mock of the QRCodeService interface with typed expecters.
type MockQRCodeService struct {
	mock.Mock
}

type MockQRCodeService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockQRCodeService) EXPECT() *MockQRCodeService_Expecter {
	return &MockQRCodeService_Expecter{mock: &_m.Mock}
}

// GenerateBlogQR provides a mock function with given fields: blogID
func (_m *MockQRCodeService) GenerateBlogQR(blogID uuid.UUID) ([]byte, error) {
	ret := _m.Called(blogID)

	if len(ret) == 0 {
		panic("no return value specified for GenerateBlogQR")
	}

	var r0 []byte
	var r1 error
	if rf, ok := ret.Get(0).(func(uuid.UUID) ([]byte, error)); ok {
		return rf(blogID)
	}
	if rf, ok := ret.Get(0).(func(uuid.UUID) []byte); ok {
		r0 = rf(blogID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]byte)
		}
	}

	if rf, ok := ret.Get(1).(func(uuid.UUID) error); ok {
		r1 = rf(blogID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockQRCodeService_GenerateBlogQR_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GenerateBlogQR'
type MockQRCodeService_GenerateBlogQR_Call struct {
	*mock.Call
}

// GenerateBlogQR is a helper method to define mock.On call
//   - blogID uuid.UUID
func (_e *MockQRCodeService_Expecter) GenerateBlogQR(blogID interface{}) *MockQRCodeService_GenerateBlogQR_Call {
	return &MockQRCodeService_GenerateBlogQR_Call{Call: _e.mock.On("GenerateBlogQR", blogID)}
}

func (_c *MockQRCodeService_GenerateBlogQR_Call) Run(run func(blogID uuid.UUID)) *MockQRCodeService_GenerateBlogQR_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(uuid.UUID))
	})
	return _c
}

func (_c *MockQRCodeService_GenerateBlogQR_Call) Return(_a0 []byte, _a1 error) *MockQRCodeService_GenerateBlogQR_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockQRCodeService_GenerateBlogQR_Call) RunAndReturn(run func(uuid.UUID) ([]byte, error)) *MockQRCodeService_GenerateBlogQR_Call {
	_c.Call.Return(run)
	return _c
}

// ParseBlogQR provides a mock function with given fields: content
func (_m *MockQRCodeService) ParseBlogQR(content string) (uuid.UUID, error) {
	ret := _m.Called(content)

	if len(ret) == 0 {
		panic("no return value specified for ParseBlogQR")
	}

	var r0 uuid.UUID
	var r1 error
	if rf, ok := ret.Get(0).(func(string) (uuid.UUID, error)); ok {
		return rf(content)
	}
	if rf, ok := ret.Get(0).(func(string) uuid.UUID); ok {
		r0 = rf(content)
	} else {
		r0 = ret.Get(0).(uuid.UUID)
	}

	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(content)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockQRCodeService_ParseBlogQR_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ParseBlogQR'
type MockQRCodeService_ParseBlogQR_Call struct {
	*mock.Call
}

// ParseBlogQR is a helper method to define mock.On call
//   - content string
func (_e *MockQRCodeService_Expecter) ParseBlogQR(content interface{}) *MockQRCodeService_ParseBlogQR_Call {
	return &MockQRCodeService_ParseBlogQR_Call{Call: _e.mock.On("ParseBlogQR", content)}
}

func (_c *MockQRCodeService_ParseBlogQR_Call) Run(run func(content string)) *MockQRCodeService_ParseBlogQR_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})
	return _c
}

func (_c *MockQRCodeService_ParseBlogQR_Call) Return(_a0 uuid.UUID, _a1 error) *MockQRCodeService_ParseBlogQR_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockQRCodeService_ParseBlogQR_Call) RunAndReturn(run func(string) (uuid.UUID, error)) *MockQRCodeService_ParseBlogQR_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockQRCodeService creates a new instance of MockQRCodeService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockQRCodeService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQRCodeService {
	mock := &MockQRCodeService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

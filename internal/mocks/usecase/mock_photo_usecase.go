package usecase

import (
	entity "blog/internal/domain/entity"
	usecase "blog/internal/usecase"
	context "context"
	mock "github.com/stretchr/testify/mock"
)

// MockPhotoUsecase is a testify mock of the PhotoUsecase interface with typed expecters.
type MockPhotoUsecase struct {
	mock.Mock
}

type MockPhotoUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPhotoUsecase) EXPECT() *MockPhotoUsecase_Expecter {
	return &MockPhotoUsecase_Expecter{mock: &_m.Mock}
}

// Upload provides a mock function with given fields: ctx, principal, input
func (_m *MockPhotoUsecase) Upload(ctx context.Context, principal *entity.Principal, input usecase.UploadPhotoInput) (*entity.Photo, error) {
	ret := _m.Called(ctx, principal, input)

	if len(ret) == 0 {
		panic("no return value specified for Upload")
	}

	var r0 *entity.Photo
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Principal, usecase.UploadPhotoInput) (*entity.Photo, error)); ok {
		return rf(ctx, principal, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Principal, usecase.UploadPhotoInput) *entity.Photo); ok {
		r0 = rf(ctx, principal, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Photo)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *entity.Principal, usecase.UploadPhotoInput) error); ok {
		r1 = rf(ctx, principal, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockPhotoUsecase_Upload_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Upload'
type MockPhotoUsecase_Upload_Call struct {
	*mock.Call
}

// Upload is a helper method to define mock.On call
//   - ctx context.Context
//   - principal *entity.Principal
//   - input usecase.UploadPhotoInput
func (_e *MockPhotoUsecase_Expecter) Upload(ctx interface{}, principal interface{}, input interface{}) *MockPhotoUsecase_Upload_Call {
	return &MockPhotoUsecase_Upload_Call{Call: _e.mock.On("Upload", ctx, principal, input)}
}

func (_c *MockPhotoUsecase_Upload_Call) Run(run func(ctx context.Context, principal *entity.Principal, input usecase.UploadPhotoInput)) *MockPhotoUsecase_Upload_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Principal), args[2].(usecase.UploadPhotoInput))
	})
	return _c
}

func (_c *MockPhotoUsecase_Upload_Call) Return(_a0 *entity.Photo, _a1 error) *MockPhotoUsecase_Upload_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockPhotoUsecase_Upload_Call) RunAndReturn(run func(context.Context, *entity.Principal, usecase.UploadPhotoInput) (*entity.Photo, error)) *MockPhotoUsecase_Upload_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockPhotoUsecase creates a new instance of MockPhotoUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockPhotoUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPhotoUsecase {
	mock := &MockPhotoUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

package mocks

import (
	"context"
	"io"

	"coachapi/internal/model"
	"coachapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockPDFService struct {
	mock.Mock
}

func (m *MockPDFService) Upload(ctx context.Context, r io.Reader, in service.PDFUpload) (*model.PDFDocument, error) {
	args := m.Called(ctx, r, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PDFDocument), args.Error(1)
}

func (m *MockPDFService) List(ctx context.Context) ([]model.PDFDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PDFDocument), args.Error(1)
}

func (m *MockPDFService) ListByExamType(ctx context.Context, examType string) ([]model.PDFDocument, error) {
	args := m.Called(ctx, examType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PDFDocument), args.Error(1)
}

func (m *MockPDFService) Download(ctx context.Context, id string) (io.ReadCloser, *model.PDFDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(*model.PDFDocument), args.Error(2)
}

func (m *MockPDFService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

package mocks

import (
	"context"

	"coachapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockPDFRepository struct {
	mock.Mock
}

func (m *MockPDFRepository) Create(ctx context.Context, doc *model.PDFDocument) (*model.PDFDocument, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PDFDocument), args.Error(1)
}

func (m *MockPDFRepository) FindByID(ctx context.Context, id string) (*model.PDFDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PDFDocument), args.Error(1)
}

func (m *MockPDFRepository) List(ctx context.Context) ([]model.PDFDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PDFDocument), args.Error(1)
}

func (m *MockPDFRepository) ListByExamType(ctx context.Context, examType string) ([]model.PDFDocument, error) {
	args := m.Called(ctx, examType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PDFDocument), args.Error(1)
}

func (m *MockPDFRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

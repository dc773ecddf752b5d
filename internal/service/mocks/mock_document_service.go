package mocks

import (
	"context"
	"io"

	"docvault/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Upload(ctx context.Context, orgID, localPath string) (*model.Document, error) {
	args := m.Called(ctx, orgID, localPath)
	if doc, ok := args.Get(0).(*model.Document); ok {
		return doc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentService) UploadStream(ctx context.Context, orgID, fileName string, r io.Reader, size int64, contentType string) (*model.Document, error) {
	args := m.Called(ctx, orgID, fileName, r, size, contentType)
	if doc, ok := args.Get(0).(*model.Document); ok {
		return doc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentService) SignedLink(ctx context.Context, orgID, fileName string) (*model.SignedLink, error) {
	args := m.Called(ctx, orgID, fileName)
	if link, ok := args.Get(0).(*model.SignedLink); ok {
		return link, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentService) Delete(ctx context.Context, orgID, fileName string) error {
	args := m.Called(ctx, orgID, fileName)
	return args.Error(0)
}

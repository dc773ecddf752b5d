package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"time"

	"docvault/internal/model"
	"docvault/internal/storage"
)

var (
	ErrOrgIDRequired    = errors.New("organization id is required")
	ErrFileNameRequired = errors.New("file name is required")
	ErrReaderNil        = errors.New("reader is nil")
)

// KeyPrefix is the per-organization namespace prefix every object key
// starts with.
const KeyPrefix = "prod_org_"

// LinkTTL is how long an issued download link stays valid. Links expire
// exactly this long after issuance and cannot be revoked earlier.
const LinkTTL = 15 * time.Minute

// ObjectKey derives the physical object key for an organization/file pair.
// The mapping is deterministic: the same pair always yields the same key,
// and this is the only namespacing rule the system guarantees. There is no
// collision handling and no versioning; writers to one key overwrite each
// other.
func ObjectKey(orgID, fileName string) string {
	return KeyPrefix + orgID + "/" + fileName
}

// DocumentService defines the use cases for organization-scoped documents.
type DocumentService interface {
	// Upload streams the file at localPath into the store under the key
	// derived from orgID and the path's base name. A missing or unreadable
	// local file fails before any store interaction.
	Upload(ctx context.Context, orgID, localPath string) (*model.Document, error)

	// UploadStream uploads content from r under the key derived from orgID
	// and the base name of fileName.
	UploadStream(ctx context.Context, orgID, fileName string, r io.Reader, size int64, contentType string) (*model.Document, error)

	// SignedLink issues a read-only GET URL for an existing object, valid
	// for LinkTTL from issuance. A missing object fails with
	// storage.ErrNotFound.
	SignedLink(ctx context.Context, orgID, fileName string) (*model.SignedLink, error)

	// Delete removes the object for the given pair from the store.
	Delete(ctx context.Context, orgID, fileName string) error
}

// documentService is a concrete implementation of DocumentService. It holds
// no mutable state; every call is a single synchronous request against the
// store.
type documentService struct {
	store storage.Storage
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(store storage.Storage) DocumentService {
	return &documentService{store: store}
}

func (s *documentService) Upload(ctx context.Context, orgID, localPath string) (*model.Document, error) {
	if orgID == "" {
		return nil, ErrOrgIDRequired
	}
	if localPath == "" {
		return nil, ErrFileNameRequired
	}

	f, err := os.Open(localPath)
	if err != nil {
		return nil, classifyLocal(localPath, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, classifyLocal(localPath, err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(localPath))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return s.UploadStream(ctx, orgID, filepath.Base(localPath), f, st.Size(), contentType)
}

func (s *documentService) UploadStream(ctx context.Context, orgID, fileName string, r io.Reader, size int64, contentType string) (*model.Document, error) {
	if orgID == "" {
		return nil, ErrOrgIDRequired
	}
	if fileName == "" {
		return nil, ErrFileNameRequired
	}
	if r == nil {
		return nil, ErrReaderNil
	}

	name := filepath.Base(fileName)
	key := ObjectKey(orgID, name)

	info, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"org-id": orgID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", key, err)
	}

	return &model.Document{
		OrgID:       orgID,
		Filename:    name,
		Key:         info.Key,
		Size:        info.Size,
		ContentType: contentType,
		UploadedAt:  time.Now().UTC(),
	}, nil
}

func (s *documentService) SignedLink(ctx context.Context, orgID, fileName string) (*model.SignedLink, error) {
	if orgID == "" {
		return nil, ErrOrgIDRequired
	}
	if fileName == "" {
		return nil, ErrFileNameRequired
	}

	key := ObjectKey(orgID, fileName)

	exists, err := s.store.Exists(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("check %s: %w", key, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: object %s", storage.ErrNotFound, key)
	}

	issued := time.Now().UTC()
	url, err := s.store.PresignGet(ctx, key, LinkTTL)
	if err != nil {
		return nil, fmt.Errorf("sign %s: %w", key, err)
	}

	return &model.SignedLink{
		URL:       url,
		ExpiresAt: issued.Add(LinkTTL),
	}, nil
}

func (s *documentService) Delete(ctx context.Context, orgID, fileName string) error {
	if orgID == "" {
		return ErrOrgIDRequired
	}
	if fileName == "" {
		return ErrFileNameRequired
	}

	key := ObjectKey(orgID, fileName)
	if err := s.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// classifyLocal maps local filesystem failures into the same closed error
// set the store uses, so callers see one taxonomy regardless of where the
// failure happened.
func classifyLocal(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: file %s", storage.ErrNotFound, path)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: file %s", storage.ErrPermission, path)
	}
	return fmt.Errorf("%w: read %s: %v", storage.ErrTransport, path, err)
}

package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/onboardhq/onboard-go/internal/domain/document"
	"github.com/onboardhq/onboard-go/internal/repository"
	"github.com/onboardhq/onboard-go/internal/storage/minio"
	"gorm.io/gorm"
)

var ErrDocumentNotFound = errors.New("document not found")

type DocumentService struct {
	Repos *repository.Repos
}

func NewDocumentService(repos *repository.Repos) *DocumentService {
	return &DocumentService{
		Repos: repos,
	}
}

// UploadDocument stores the file content in object storage and records its
// metadata. The object key is namespaced per employee and randomized so
// re-uploads of the same filename never collide.
func (s *DocumentService) UploadDocument(ctx context.Context, employeeID, uploadedBy uint, name, contentType string, content io.Reader, size int64) (document.Document, error) {
	objectKey := fmt.Sprintf("documents/%d/%s%s", employeeID, uuid.NewString(), filepath.Ext(name))

	if err := minio.UploadObject(ctx, objectKey, contentType, content, size); err != nil {
		return document.Document{}, err
	}

	doc := document.Document{
		EmployeeID:  employeeID,
		Name:        name,
		ObjectKey:   objectKey,
		ContentType: contentType,
		Size:        size,
		UploadedBy:  uploadedBy,
	}
	if err := s.Repos.Document.Create(&doc); err != nil {
		// best effort: do not leave an orphan object behind
		_ = minio.DeleteObject(ctx, objectKey)
		return document.Document{}, err
	}
	return doc, nil
}

func (s *DocumentService) GetDocument(id uint) (document.Document, error) {
	doc, err := s.Repos.Document.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return document.Document{}, ErrDocumentNotFound
		}
		return document.Document{}, err
	}
	return doc, nil
}

func (s *DocumentService) DownloadDocument(ctx context.Context, id uint) (document.Document, []byte, error) {
	doc, err := s.GetDocument(id)
	if err != nil {
		return document.Document{}, nil, err
	}
	content, err := minio.DownloadObject(ctx, doc.ObjectKey)
	if err != nil {
		return document.Document{}, nil, err
	}
	return doc, content, nil
}

func (s *DocumentService) ListDocuments(employeeID uint) ([]document.Document, error) {
	return s.Repos.Document.ListByEmployeeID(employeeID)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, id uint) error {
	doc, err := s.GetDocument(id)
	if err != nil {
		return err
	}
	if err := s.Repos.Document.Delete(id); err != nil {
		return err
	}
	return minio.DeleteObject(ctx, doc.ObjectKey)
}

package services

import (
	"context"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/userhub/internal/api"
	"github.com/dmitrijs2005/userhub/internal/models"
)

// DocumentService covers the personal document panel. The list is a
// transient per-visit cache owned by the screen: after every mutation the
// screen reloads the full list instead of patching it locally.
type DocumentService interface {
	List(ctx context.Context) ([]models.Document, error)
	CreateNote(ctx context.Context, title, content string) (*models.Document, error)
	Upload(ctx context.Context, title, path string) (*models.Document, error)
	Update(ctx context.Context, id int64, title, content string) (*models.Document, error)
	Delete(ctx context.Context, id int64) (string, error)
	Count(ctx context.Context) (int64, error)
	Download(ctx context.Context, fileName, destPath string) error
}

type documentService struct {
	client api.Client
}

func NewDocumentService(client api.Client) DocumentService {
	return &documentService{client: client}
}

func (s *documentService) List(ctx context.Context) ([]models.Document, error) {
	return s.client.Documents(ctx)
}

func (s *documentService) CreateNote(ctx context.Context, title, content string) (*models.Document, error) {
	return s.client.CreateNote(ctx, title, content)
}

// Upload sends a local file as a multipart request. The server decides
// whether it lands as FILE or IMAGE from the content type.
func (s *documentService) Upload(ctx context.Context, title, path string) (*models.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return s.client.UploadFile(ctx, title, filepath.Base(path), f)
}

func (s *documentService) Update(ctx context.Context, id int64, title, content string) (*models.Document, error) {
	return s.client.UpdateDocument(ctx, id, title, content)
}

func (s *documentService) Delete(ctx context.Context, id int64) (string, error) {
	return s.client.DeleteDocument(ctx, id)
}

func (s *documentService) Count(ctx context.Context) (int64, error) {
	return s.client.DocumentCount(ctx)
}

func (s *documentService) Download(ctx context.Context, fileName, destPath string) error {
	f, err := os.Create(destPath)
	if err != nil {
		return err
	}

	if err := s.client.DownloadFile(ctx, fileName, f); err != nil {
		f.Close()
		os.Remove(destPath)
		return err
	}
	return f.Close()
}

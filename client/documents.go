package client

import (
	"context"
	"net/http"

	"prestabanco/domain"
)

// DocumentsService covers /api/documents.
type DocumentsService struct {
	c *Client
}

func (s *DocumentsService) List(ctx context.Context) ([]domain.StoredDocument, error) {
	var docs []domain.StoredDocument
	err := s.c.do(ctx, http.MethodGet, "/api/documents", nil, &docs)
	return docs, err
}

func (s *DocumentsService) Create(ctx context.Context, doc domain.StoredDocument) (domain.StoredDocument, error) {
	var out domain.StoredDocument
	err := s.c.do(ctx, http.MethodPost, "/api/documents", doc, &out)
	return out, err
}

func (s *DocumentsService) Get(ctx context.Context, id int64) (domain.StoredDocument, error) {
	var out domain.StoredDocument
	err := s.c.do(ctx, http.MethodGet, "/api/documents/"+segment(id), nil, &out)
	return out, err
}

func (s *DocumentsService) Update(ctx context.Context, id int64, doc domain.StoredDocument) (domain.StoredDocument, error) {
	var out domain.StoredDocument
	err := s.c.do(ctx, http.MethodPut, "/api/documents/"+segment(id), doc, &out)
	return out, err
}

func (s *DocumentsService) Delete(ctx context.Context, id int64) error {
	return s.c.do(ctx, http.MethodDelete, "/api/documents/"+segment(id), nil, nil)
}

func (s *DocumentsService) ListByApplication(ctx context.Context, applicationID int64) ([]domain.StoredDocument, error) {
	var docs []domain.StoredDocument
	err := s.c.do(ctx, http.MethodGet, "/api/documents/application/"+segment(applicationID), nil, &docs)
	return docs, err
}

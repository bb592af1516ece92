package service

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"portfolio-api/internal/model"
	"portfolio-api/internal/storage"
	"portfolio-api/pkg/apierror"
)

type itemStore interface {
	List(ctx context.Context) ([]model.Item, error)
	FindByID(ctx context.Context, id string) (model.Item, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	Create(ctx context.Context, it model.Item) error
	Update(ctx context.Context, it model.Item) error
	Delete(ctx context.Context, id string) error
}

type ItemService struct {
	repo   itemStore
	images storage.ImageStore
}

func NewItemService(repo itemStore, images storage.ImageStore) *ItemService {
	return &ItemService{repo: repo, images: images}
}

// ItemParams carries the multipart form fields of a create/update request.
// TechJSON is the raw JSON-encoded tech array as submitted by the client.
// SortKey is nil when the form omitted the field, so a partial update keeps
// the stored display order.
type ItemParams struct {
	Title       string
	Link        string
	Description string
	Type        string
	SortKey     *int
	TechJSON    string
	ImageData   []byte
}

// ParseTechArray decodes the submitted tech array and drops blank entries.
func ParseTechArray(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return []string{}, nil
	}

	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, apierror.New("Invalid tech array format.", err.Error(), http.StatusBadRequest)
	}

	filtered := make([]string, 0, len(tags))
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			continue
		}
		filtered = append(filtered, tag)
	}

	return filtered, nil
}

func (s *ItemService) List(ctx context.Context) ([]model.Item, error) {
	return s.repo.List(ctx)
}

func (s *ItemService) Create(ctx context.Context, params ItemParams) (model.Item, error) {
	tech, err := ParseTechArray(params.TechJSON)
	if err != nil {
		return model.Item{}, err
	}

	if len(params.ImageData) == 0 {
		return model.Item{}, apierror.New("Image file is required.", "", http.StatusBadRequest)
	}

	exists, err := s.repo.ExistsByTitle(ctx, strings.TrimSpace(params.Title))
	if err != nil {
		return model.Item{}, err
	}
	if exists {
		return model.Item{}, model.ErrDuplicateTitle
	}

	showcasePath, err := processAndStoreImage(ctx, s.images, params.ImageData, showcaseMaxSize)
	if err != nil {
		return model.Item{}, err
	}

	sortKey := 0
	if params.SortKey != nil {
		sortKey = *params.SortKey
	}

	now := time.Now().UTC()
	item := model.Item{
		ID:           uuid.NewString(),
		ShowcasePath: showcasePath,
		Title:        strings.TrimSpace(params.Title),
		Link:         params.Link,
		Description:  params.Description,
		Tech:         tech,
		Type:         params.Type,
		SortKey:      sortKey,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return model.Item{}, err
	}

	return item, nil
}

func (s *ItemService) Update(ctx context.Context, id string, params ItemParams) (model.Item, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return model.Item{}, err
	}

	tech, err := ParseTechArray(params.TechJSON)
	if err != nil {
		return model.Item{}, err
	}

	if len(params.ImageData) > 0 {
		showcasePath, err := processAndStoreImage(ctx, s.images, params.ImageData, showcaseMaxSize)
		if err != nil {
			return model.Item{}, err
		}
		item.ShowcasePath = showcasePath
	}

	if params.Title != "" {
		item.Title = strings.TrimSpace(params.Title)
	}
	if params.Link != "" {
		item.Link = params.Link
	}
	if params.Description != "" {
		item.Description = params.Description
	}
	if params.Type != "" {
		item.Type = params.Type
	}
	if params.TechJSON != "" {
		item.Tech = tech
	}
	if params.SortKey != nil {
		item.SortKey = *params.SortKey
	}
	item.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, item); err != nil {
		return model.Item{}, err
	}

	return item, nil
}

// Delete removes an item and returns the deleted record.
func (s *ItemService) Delete(ctx context.Context, id string) (model.Item, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return model.Item{}, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return model.Item{}, err
	}

	return item, nil
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"portfolio-api/internal/model"
	"portfolio-api/pkg/apierror"
)

type stubItemStore struct {
	items map[string]model.Item
}

func newStubItemStore() *stubItemStore {
	return &stubItemStore{items: map[string]model.Item{}}
}

func (s *stubItemStore) List(_ context.Context) ([]model.Item, error) {
	out := make([]model.Item, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, it)
	}
	return out, nil
}

func (s *stubItemStore) FindByID(_ context.Context, id string) (model.Item, error) {
	it, ok := s.items[id]
	if !ok {
		return model.Item{}, model.ErrItemNotFound
	}
	return it, nil
}

func (s *stubItemStore) ExistsByTitle(_ context.Context, title string) (bool, error) {
	for _, it := range s.items {
		if it.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubItemStore) Create(_ context.Context, it model.Item) error {
	s.items[it.ID] = it
	return nil
}

func (s *stubItemStore) Update(_ context.Context, it model.Item) error {
	if _, ok := s.items[it.ID]; !ok {
		return model.ErrItemNotFound
	}
	s.items[it.ID] = it
	return nil
}

func (s *stubItemStore) Delete(_ context.Context, id string) error {
	if _, ok := s.items[id]; !ok {
		return model.ErrItemNotFound
	}
	delete(s.items, id)
	return nil
}

func intPtr(v int) *int {
	return &v
}

func TestParseTechArray(t *testing.T) {
	t.Parallel()

	t.Run("decodes and drops blank entries", func(t *testing.T) {
		tags, err := ParseTechArray(`["Go", "", "Postgres", "  "]`)
		require.NoError(t, err)
		require.Equal(t, []string{"Go", "Postgres"}, tags)
	})

	t.Run("empty input yields an empty array", func(t *testing.T) {
		tags, err := ParseTechArray("")
		require.NoError(t, err)
		require.Empty(t, tags)
		require.NotNil(t, tags)
	})

	t.Run("invalid JSON is a 400", func(t *testing.T) {
		_, err := ParseTechArray(`{"not": "an array"}`)
		require.Error(t, err)

		var apiErr *apierror.APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, "Invalid tech array format.", apiErr.Message)
		require.Equal(t, 400, apiErr.HTTPStatus)
	})
}

func TestItemService_Create(t *testing.T) {
	t.Parallel()

	validParams := func(t *testing.T) ItemParams {
		return ItemParams{
			Title:       "My Project",
			Link:        "https://example.com",
			Description: "A showcase project.",
			Type:        "web",
			SortKey:     intPtr(1),
			TechJSON:    `["Go"]`,
			ImageData:   pngBytes(t, 500, 300),
		}
	}

	t.Run("stores a scaled showcase image", func(t *testing.T) {
		store := newStubItemStore()
		images := &memImageStore{}
		svc := NewItemService(store, images)

		item, err := svc.Create(context.Background(), validParams(t))
		require.NoError(t, err)
		require.NotEmpty(t, item.ID)
		require.NotEmpty(t, item.ShowcasePath)
		require.Equal(t, []string{"Go"}, item.Tech)
		require.Len(t, images.saved, 1)
	})

	t.Run("image file is required", func(t *testing.T) {
		svc := NewItemService(newStubItemStore(), &memImageStore{})

		params := validParams(t)
		params.ImageData = nil

		_, err := svc.Create(context.Background(), params)
		var apiErr *apierror.APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, "Image file is required.", apiErr.Message)
		require.Equal(t, 400, apiErr.HTTPStatus)
	})

	t.Run("non-image uploads are rejected", func(t *testing.T) {
		svc := NewItemService(newStubItemStore(), &memImageStore{})

		params := validParams(t)
		params.ImageData = []byte("%PDF-1.7 definitely not an image")

		_, err := svc.Create(context.Background(), params)
		var apiErr *apierror.APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, "Only images are allowed!", apiErr.Message)
	})

	t.Run("duplicate title is rejected", func(t *testing.T) {
		store := newStubItemStore()
		svc := NewItemService(store, &memImageStore{})

		_, err := svc.Create(context.Background(), validParams(t))
		require.NoError(t, err)

		_, err = svc.Create(context.Background(), validParams(t))
		require.ErrorIs(t, err, model.ErrDuplicateTitle)
	})
}

func TestItemService_Update(t *testing.T) {
	t.Parallel()

	store := newStubItemStore()
	images := &memImageStore{}
	svc := NewItemService(store, images)

	item, err := svc.Create(context.Background(), ItemParams{
		Title:       "My Project",
		Link:        "https://example.com",
		Description: "A showcase project.",
		Type:        "web",
		SortKey:     intPtr(7),
		TechJSON:    `["Go"]`,
		ImageData:   pngBytes(t, 500, 300),
	})
	require.NoError(t, err)

	t.Run("omitted sortKey keeps the stored display order", func(t *testing.T) {
		updated, err := svc.Update(context.Background(), item.ID, ItemParams{
			Description: "New description.",
		})
		require.NoError(t, err)
		require.Equal(t, "New description.", updated.Description)
		require.Equal(t, 7, updated.SortKey)
	})

	t.Run("explicit sortKey replaces the stored one", func(t *testing.T) {
		updated, err := svc.Update(context.Background(), item.ID, ItemParams{
			SortKey: intPtr(2),
		})
		require.NoError(t, err)
		require.Equal(t, 2, updated.SortKey)
	})

	t.Run("keeps the showcase image when none is uploaded", func(t *testing.T) {
		updated, err := svc.Update(context.Background(), item.ID, ItemParams{
			Title: "Renamed Project",
		})
		require.NoError(t, err)
		require.Equal(t, "Renamed Project", updated.Title)
		require.Equal(t, item.ShowcasePath, updated.ShowcasePath)
	})

	t.Run("unknown item id", func(t *testing.T) {
		_, err := svc.Update(context.Background(), "missing", ItemParams{Title: "x"})
		require.ErrorIs(t, err, model.ErrItemNotFound)
	})
}

func TestItemService_Delete(t *testing.T) {
	t.Parallel()

	store := newStubItemStore()
	svc := NewItemService(store, &memImageStore{})

	item, err := svc.Create(context.Background(), ItemParams{
		Title:       "Disposable",
		Link:        "https://example.com",
		Description: "Soon gone.",
		Type:        "web",
		TechJSON:    `[]`,
		ImageData:   pngBytes(t, 100, 100),
	})
	require.NoError(t, err)

	t.Run("returns the deleted record", func(t *testing.T) {
		deleted, err := svc.Delete(context.Background(), item.ID)
		require.NoError(t, err)
		require.Equal(t, item.Title, deleted.Title)

		_, err = svc.Delete(context.Background(), item.ID)
		require.ErrorIs(t, err, model.ErrItemNotFound)
	})
}

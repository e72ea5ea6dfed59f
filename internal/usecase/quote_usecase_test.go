package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/marianela-miguel3/yellow-bear-store-api/internal/domain/entities"
	mock_interfaces "github.com/marianela-miguel3/yellow-bear-store-api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestQuoteUseCase_Create(t *testing.T) {
	t.Run("catalog delegates to repo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		in := entities.Quote{CatalogID: 42, Comments: "c"}
		repo.EXPECT().CreateCatalog(gomock.Any(), in).Return(entities.Quote{ID: 1, Type: entities.QuoteTypeCatalog, CatalogID: 42}, nil)

		out, err := uc.CreateCatalogQuote(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.ID != 1 || out.Type != entities.QuoteTypeCatalog {
			t.Fatalf("unexpected quote: %+v", out)
		}
	})

	t.Run("custom passes repo error through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		repo.EXPECT().CreateCustom(gomock.Any(), gomock.Any()).Return(entities.Quote{}, errors.New("db"))

		_, err := uc.CreateCustomQuote(context.Background(), entities.Quote{})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestQuoteUseCase_GetQuotes(t *testing.T) {
	t.Run("computes total pages", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		f := entities.QuoteFilters{Page: 2, Limit: 10}
		repo.EXPECT().List(gomock.Any(), f).Return(make([]entities.Quote, 10), 25, nil)

		quotes, p, err := uc.GetQuotes(context.Background(), f)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(quotes) != 10 {
			t.Fatalf("expected 10 quotes, got %d", len(quotes))
		}
		if p.CurrentPage != 2 || p.TotalPages != 3 || p.TotalItems != 25 || p.ItemsPerPage != 10 {
			t.Fatalf("unexpected pagination: %+v", p)
		}
	})

	t.Run("empty result has zero pages", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		f := entities.QuoteFilters{Page: 1, Limit: 10}
		repo.EXPECT().List(gomock.Any(), f).Return([]entities.Quote{}, 0, nil)

		_, p, err := uc.GetQuotes(context.Background(), f)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.TotalPages != 0 || p.TotalItems != 0 {
			t.Fatalf("unexpected pagination: %+v", p)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, 0, errors.New("db"))

		_, _, err := uc.GetQuotes(context.Background(), entities.QuoteFilters{Page: 1, Limit: 10})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestQuoteUseCase_GetQuoteByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil)
		for _, id := range []int64{0, -5} {
			if _, err := uc.GetQuoteByID(context.Background(), id); !errors.Is(err, ErrInvalidQuoteID) {
				t.Fatalf("expected ErrInvalidQuoteID for %d, got %v", id, err)
			}
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(entities.Quote{}, nil)

		_, err := uc.GetQuoteByID(context.Background(), 7)
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(entities.Quote{ID: 7}, nil)

		q, err := uc.GetQuoteByID(context.Background(), 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.ID != 7 {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})
}

func TestQuoteUseCase_Update(t *testing.T) {
	name := "New Name"
	patch := entities.QuotePatch{FullName: &name}

	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil)
		if _, err := uc.UpdateCatalogQuote(context.Background(), 0, patch); !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
		if _, err := uc.UpdateCustomQuote(context.Background(), -1, patch); !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("catalog not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		repo.EXPECT().UpdateCatalog(gomock.Any(), int64(7), patch).Return(entities.Quote{}, nil)

		_, err := uc.UpdateCatalogQuote(context.Background(), 7, patch)
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("custom success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		repo.EXPECT().UpdateCustom(gomock.Any(), int64(7), patch).Return(entities.Quote{ID: 7, FullName: "New Name"}, nil)

		q, err := uc.UpdateCustomQuote(context.Background(), 7, patch)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.FullName != "New Name" {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})
}

func TestQuoteUseCase_DeleteQuote(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil)
		if err := uc.DeleteQuote(context.Background(), 0); !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), int64(7)).Return(false, nil)

		if err := uc.DeleteQuote(context.Background(), 7); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), int64(7)).Return(true, nil)

		if err := uc.DeleteQuote(context.Background(), 7); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), int64(7)).Return(false, errors.New("db"))

		if err := uc.DeleteQuote(context.Background(), 7); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

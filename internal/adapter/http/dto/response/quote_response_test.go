package response

import (
	"testing"
	"time"

	"github.com/marianela-miguel3/yellow-bear-store-api/internal/domain/entities"
)

func TestFromQuote(t *testing.T) {
	created := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

	t.Run("catalog variant", func(t *testing.T) {
		q := entities.Quote{
			ID:            1711103400000,
			Type:          entities.QuoteTypeCatalog,
			CatalogID:     42,
			FullName:      "Jane Smith",
			PaymentMethod: entities.PaymentMethodWire,
			ContactInfo:   entities.ContactInfo{Email: "jane@example.com"},
			Comments:      "bulk order",
			CreatedAt:     created,
		}

		res := FromQuote(q)
		if res.Type != "catalog" {
			t.Fatalf("expected catalog, got %q", res.Type)
		}
		if res.CatalogID == nil || *res.CatalogID != 42 {
			t.Fatalf("expected catalogId 42, got %+v", res.CatalogID)
		}
		if res.ProductDetails != nil {
			t.Fatalf("expected no product details on catalog quote")
		}
		if res.CreatedAt != "2026-03-15T10:30:00Z" {
			t.Fatalf("unexpected createdAt: %q", res.CreatedAt)
		}
		if res.UpdatedAt != "" {
			t.Fatalf("expected empty updatedAt, got %q", res.UpdatedAt)
		}
		if res.ContactInfo.Email != "jane@example.com" {
			t.Fatalf("unexpected contact: %+v", res.ContactInfo)
		}
	})

	t.Run("custom variant", func(t *testing.T) {
		q := entities.Quote{
			ID:   2,
			Type: entities.QuoteTypeCustom,
			ProductDetails: &entities.ProductDetails{
				Name:        "Widget",
				Description: "Industrial widget",
				URL:         "https://example.com/widget",
			},
			ContactInfo: entities.ContactInfo{PhoneNumber: "123"},
			CreatedAt:   created,
			UpdatedAt:   created.Add(time.Hour),
		}

		res := FromQuote(q)
		if res.CatalogID != nil {
			t.Fatalf("expected no catalogId on custom quote")
		}
		if res.ProductDetails == nil || res.ProductDetails.Name != "Widget" {
			t.Fatalf("unexpected product details: %+v", res.ProductDetails)
		}
		if res.UpdatedAt != "2026-03-15T11:30:00Z" {
			t.Fatalf("unexpected updatedAt: %q", res.UpdatedAt)
		}
	})

	t.Run("address with coordinates", func(t *testing.T) {
		q := entities.Quote{
			ID:   3,
			Type: entities.QuoteTypeCatalog,
			Address: &entities.Address{
				Address:     "Av. Corrientes 1234",
				Coordinates: &entities.Coordinates{Lat: -34.6, Lng: -58.38},
			},
			CreatedAt: created,
		}

		res := FromQuote(q)
		if res.Address == nil || res.Address.Address != "Av. Corrientes 1234" {
			t.Fatalf("unexpected address: %+v", res.Address)
		}
		if res.Address.Coordinates == nil || res.Address.Coordinates.Lng != -58.38 {
			t.Fatalf("unexpected coordinates: %+v", res.Address.Coordinates)
		}
	})
}

func TestFromQuotes(t *testing.T) {
	quotes := []entities.Quote{
		{ID: 1, Type: entities.QuoteTypeCatalog, CatalogID: 1},
		{ID: 2, Type: entities.QuoteTypeCustom, ProductDetails: &entities.ProductDetails{Name: "W"}},
	}
	p := entities.PaginationInfo{CurrentPage: 1, TotalPages: 3, TotalItems: 25, ItemsPerPage: 10}

	res := FromQuotes(quotes, p)
	if len(res.Quotes) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(res.Quotes))
	}
	if res.Pagination.TotalPages != 3 || res.Pagination.TotalItems != 25 {
		t.Fatalf("unexpected pagination: %+v", res.Pagination)
	}

	empty := FromQuotes(nil, entities.PaginationInfo{CurrentPage: 1, ItemsPerPage: 10})
	if empty.Quotes == nil || len(empty.Quotes) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", empty.Quotes)
	}
}

package request

import (
	"strings"
	"testing"

	"github.com/marianela-miguel3/yellow-bear-store-api/internal/domain/entities"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func int64Ptr(n int64) *int64 { return &n }

func validCatalogRequest() CatalogQuoteRequest {
	return CatalogQuoteRequest{
		CatalogID:         42,
		FullName:          strPtr("Jane Smith"),
		HasReferencePrice: boolPtr(false),
		ContactInfo:       &ContactInfoRequest{Email: strPtr("jane@example.com")},
		Comments:          "Need pricing for 100 units",
	}
}

func TestCatalogQuoteRequest_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		if err := validCatalogRequest().Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		err := CatalogQuoteRequest{}.Validate()
		if err == nil {
			t.Fatalf("expected error")
		}
		msg := err.Error()
		if !strings.HasPrefix(msg, "Catalog quote validation failed: ") {
			t.Fatalf("unexpected prefix: %q", msg)
		}
		for _, want := range []string{"catalogId: is required", "hasReferencePrice: is required", "contactInfo: is required", "comments: is required"} {
			if !strings.Contains(msg, want) {
				t.Fatalf("expected %q in %q", want, msg)
			}
		}
	})

	t.Run("contact info with neither field", func(t *testing.T) {
		r := validCatalogRequest()
		r.ContactInfo = &ContactInfoRequest{}
		err := r.Validate()
		if err == nil {
			t.Fatalf("expected error")
		}
		if !strings.Contains(err.Error(), "contactInfo: at least email or phone number must be provided") {
			t.Fatalf("unexpected message: %q", err.Error())
		}
	})

	t.Run("phone alone satisfies contact", func(t *testing.T) {
		r := validCatalogRequest()
		r.ContactInfo = &ContactInfoRequest{PhoneNumber: strPtr("+54 11 4444-5555")}
		if err := r.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("malformed cuil cuit", func(t *testing.T) {
		r := validCatalogRequest()
		r.CuilCuit = strPtr("20-1234-5")
		err := r.Validate()
		if err == nil || !strings.Contains(err.Error(), "cuilCuit: must be in format XX-XXXXXXXX-X") {
			t.Fatalf("unexpected error: %v", err)
		}

		r.CuilCuit = strPtr("20-12345678-9")
		if err := r.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("bad reference file url", func(t *testing.T) {
		r := validCatalogRequest()
		r.ReferencePriceFileURL = strPtr("not a url")
		err := r.Validate()
		if err == nil || !strings.Contains(err.Error(), "referencePriceFileURL: invalid URL format") {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown payment method", func(t *testing.T) {
		r := validCatalogRequest()
		r.PaymentMethod = strPtr("BARTER")
		err := r.Validate()
		if err == nil || !strings.Contains(err.Error(), "paymentMethod: must be one of LOCAL_CASH, OFFSHORE_CASH, WIRE, LETTER_OFF_CREDIT") {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("comments too long", func(t *testing.T) {
		r := validCatalogRequest()
		r.Comments = strings.Repeat("x", 1001)
		err := r.Validate()
		if err == nil || !strings.Contains(err.Error(), "comments: must be at most 1000 characters long") {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("multiple violations reported together", func(t *testing.T) {
		r := validCatalogRequest()
		r.CatalogID = 0
		r.CuilCuit = strPtr("bad")
		err := r.Validate()
		if err == nil {
			t.Fatalf("expected error")
		}
		msg := err.Error()
		if !strings.Contains(msg, "catalogId:") || !strings.Contains(msg, "cuilCuit:") {
			t.Fatalf("expected both violations in %q", msg)
		}
	})
}

func TestCatalogQuoteRequest_ToEntity(t *testing.T) {
	r := validCatalogRequest()
	r.CompanyName = strPtr("Acme SA")
	r.PaymentMethod = strPtr("WIRE")
	r.Address = &AddressRequest{
		Address:     "Av. Corrientes 1234",
		Coordinates: &CoordinatesRequest{Lat: -34.6, Lng: -58.38},
	}
	r.HasReferencePrice = boolPtr(true)
	r.ReferencePriceDescription = strPtr("last invoice")

	q := r.ToEntity()
	if q.CatalogID != 42 {
		t.Fatalf("expected catalog id 42, got %d", q.CatalogID)
	}
	if q.FullName != "Jane Smith" || q.CompanyName != "Acme SA" {
		t.Fatalf("unexpected names: %+v", q)
	}
	if !q.HasReferencePrice || q.ReferencePriceDescription != "last invoice" {
		t.Fatalf("unexpected reference price fields: %+v", q)
	}
	if q.PaymentMethod != entities.PaymentMethodWire {
		t.Fatalf("expected WIRE, got %q", q.PaymentMethod)
	}
	if q.ContactInfo.Email != "jane@example.com" {
		t.Fatalf("unexpected contact: %+v", q.ContactInfo)
	}
	if q.Address == nil || q.Address.Coordinates == nil || q.Address.Coordinates.Lat != -34.6 {
		t.Fatalf("unexpected address: %+v", q.Address)
	}
}

func TestCustomQuoteRequest_Validate(t *testing.T) {
	valid := CustomQuoteRequest{
		ProductDetails:    &ProductDetailsRequest{Name: "Widget", Description: "Industrial widget"},
		HasReferencePrice: boolPtr(false),
		ContactInfo:       &ContactInfoRequest{PhoneNumber: strPtr("123456")},
		Comments:          "quote please",
	}

	t.Run("valid", func(t *testing.T) {
		if err := valid.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing product details", func(t *testing.T) {
		r := valid
		r.ProductDetails = nil
		err := r.Validate()
		if err == nil || !strings.Contains(err.Error(), "productDetails: is required") {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("nested product fields", func(t *testing.T) {
		r := valid
		r.ProductDetails = &ProductDetailsRequest{Name: "", Description: "", URL: strPtr("nope")}
		err := r.Validate()
		if err == nil {
			t.Fatalf("expected error")
		}
		msg := err.Error()
		if !strings.HasPrefix(msg, "Custom quote validation failed: ") {
			t.Fatalf("unexpected prefix: %q", msg)
		}
		for _, want := range []string{"productDetails.name: is required", "productDetails.description: is required", "productDetails.url: invalid URL format"} {
			if !strings.Contains(msg, want) {
				t.Fatalf("expected %q in %q", want, msg)
			}
		}
	})
}

func TestCustomQuoteRequest_ToEntity(t *testing.T) {
	r := CustomQuoteRequest{
		ProductDetails: &ProductDetailsRequest{
			Name:         "Widget",
			Description:  "Industrial widget",
			URL:          strPtr("https://example.com/widget"),
			SerialNumber: strPtr("SN-1"),
		},
		HasReferencePrice: boolPtr(true),
		ContactInfo:       &ContactInfoRequest{Email: strPtr("a@b.co")},
		Comments:          "c",
	}

	q := r.ToEntity()
	if q.ProductDetails == nil {
		t.Fatalf("expected product details")
	}
	if q.ProductDetails.Name != "Widget" || q.ProductDetails.SerialNumber != "SN-1" {
		t.Fatalf("unexpected product details: %+v", q.ProductDetails)
	}
	if !q.HasReferencePrice {
		t.Fatalf("expected hasReferencePrice true")
	}
}

func TestUpdateQuoteRequest_ToPatch(t *testing.T) {
	t.Run("empty payload yields empty patch", func(t *testing.T) {
		if err := (UpdateQuoteRequest{}).Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		patch := UpdateQuoteRequest{}.ToPatch()
		if patch.FullName != nil || patch.Comments != nil || patch.CatalogID != nil || patch.ProductDetails != nil {
			t.Fatalf("expected empty patch, got %+v", patch)
		}
	})

	t.Run("set fields carried over", func(t *testing.T) {
		r := UpdateQuoteRequest{
			FullName:      strPtr("New Name"),
			PaymentMethod: strPtr("LOCAL_CASH"),
			ContactInfo:   &ContactInfoRequest{Email: strPtr("x@y.z")},
			CatalogID:     int64Ptr(7),
		}
		patch := r.ToPatch()
		if patch.FullName == nil || *patch.FullName != "New Name" {
			t.Fatalf("unexpected full name: %+v", patch.FullName)
		}
		if patch.PaymentMethod == nil || *patch.PaymentMethod != entities.PaymentMethodLocalCash {
			t.Fatalf("unexpected payment method: %+v", patch.PaymentMethod)
		}
		if patch.ContactInfo == nil || patch.ContactInfo.Email != "x@y.z" {
			t.Fatalf("unexpected contact: %+v", patch.ContactInfo)
		}
		if patch.CatalogID == nil || *patch.CatalogID != 7 {
			t.Fatalf("unexpected catalog id: %+v", patch.CatalogID)
		}
	})

	t.Run("contact invariant enforced when provided", func(t *testing.T) {
		r := UpdateQuoteRequest{ContactInfo: &ContactInfoRequest{}}
		err := r.Validate()
		if err == nil || !strings.Contains(err.Error(), "contactInfo: at least email or phone number must be provided") {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteFiltersRequest_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		r := QuoteFiltersRequest{Page: 1, Limit: 10, Type: "catalog", PaymentMethod: "WIRE", DateFrom: "2026-01-01T00:00:00Z"}
		if err := r.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("limit over cap", func(t *testing.T) {
		r := QuoteFiltersRequest{Page: 1, Limit: 101}
		err := r.Validate()
		if err == nil || !strings.Contains(err.Error(), "limit: cannot exceed 100") {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		r := QuoteFiltersRequest{Page: 1, Limit: 10, Type: "bulk"}
		err := r.Validate()
		if err == nil || !strings.Contains(err.Error(), "type: must be one of catalog, custom") {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("bad date", func(t *testing.T) {
		r := QuoteFiltersRequest{Page: 1, Limit: 10, DateFrom: "01/02/2026"}
		err := r.Validate()
		if err == nil || !strings.Contains(err.Error(), "dateFrom: invalid date format") {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteFiltersRequest_ToFilters(t *testing.T) {
	r := QuoteFiltersRequest{
		Page:          2,
		Limit:         25,
		Type:          "custom",
		FullName:      "smith",
		PaymentMethod: "WIRE",
		DateFrom:      "2026-01-01T00:00:00Z",
		DateTo:        "bogus",
	}
	f := r.ToFilters()
	if f.Page != 2 || f.Limit != 25 {
		t.Fatalf("unexpected paging: %+v", f)
	}
	if f.Type != entities.QuoteTypeCustom || f.PaymentMethod != entities.PaymentMethodWire {
		t.Fatalf("unexpected enums: %+v", f)
	}
	if f.DateFrom == nil || f.DateFrom.Year() != 2026 {
		t.Fatalf("expected parsed dateFrom, got %+v", f.DateFrom)
	}
	if f.DateTo != nil {
		t.Fatalf("expected unparsable dateTo dropped, got %+v", f.DateTo)
	}
}

func TestParseQuoteID(t *testing.T) {
	if id, err := ParseQuoteID("12345"); err != nil || id != 12345 {
		t.Fatalf("expected 12345, got %d, %v", id, err)
	}
	for _, raw := range []string{"abc", "-1", "0", "12.5", ""} {
		if _, err := ParseQuoteID(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
	if _, err := ParseQuoteID("abc"); err == nil || err.Error() != "id: must be a positive integer" {
		t.Fatalf("unexpected error: %v", err)
	}
}

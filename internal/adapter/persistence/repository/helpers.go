package repository

import (
	"os"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/marianela-miguel3/yellow-bear-store-api/internal/domain/entities"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

var lastQuoteID atomic.Int64

// nextQuoteID returns a positive, strictly increasing id. It is millisecond
// time based so ids roughly encode creation time, with a bump past the last
// issued id to rule out same-millisecond collisions.
func nextQuoteID() int64 {
	for {
		id := time.Now().UnixMilli()
		last := lastQuoteID.Load()
		if id <= last {
			id = last + 1
		}
		if lastQuoteID.CompareAndSwap(last, id) {
			return id
		}
	}
}

// matchQuoteFilters applies every non-zero filter against one record.
// Name filters are case-insensitive substring matches; the date range is
// inclusive on both ends and checked against CreatedAt.
func matchQuoteFilters(q entities.Quote, f entities.QuoteFilters) bool {
	if f.Type != "" && q.Type != f.Type {
		return false
	}
	if f.CatalogID > 0 && q.CatalogID != f.CatalogID {
		return false
	}
	if f.FullName != "" && !strings.Contains(strings.ToLower(q.FullName), strings.ToLower(f.FullName)) {
		return false
	}
	if f.CompanyName != "" && !strings.Contains(strings.ToLower(q.CompanyName), strings.ToLower(f.CompanyName)) {
		return false
	}
	if f.PaymentMethod != "" && q.PaymentMethod != f.PaymentMethod {
		return false
	}
	if f.DateFrom != nil && q.CreatedAt.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && q.CreatedAt.After(*f.DateTo) {
		return false
	}
	return true
}

// sortQuotesByID restores insertion order for the combined catalog+custom
// listing; ids are strictly increasing so id order is creation order.
func sortQuotesByID(quotes []entities.Quote) {
	sort.Slice(quotes, func(i, j int) bool { return quotes[i].ID < quotes[j].ID })
}

// paginateQuotes slices one page out of the filtered result set. A page past
// the end yields an empty slice, not an error.
func paginateQuotes(quotes []entities.Quote, page, limit int) []entities.Quote {
	start := (page - 1) * limit
	if start >= len(quotes) {
		return []entities.Quote{}
	}
	end := start + limit
	if end > len(quotes) {
		end = len(quotes)
	}
	return quotes[start:end]
}

// applyQuotePatch merges the provided patch fields over the existing record.
// Only the variant field matching the record's type is applied; the other is
// ignored so an update can never flip the variant.
func applyQuotePatch(q entities.Quote, patch entities.QuotePatch) entities.Quote {
	if patch.FullName != nil {
		q.FullName = *patch.FullName
	}
	if patch.CompanyName != nil {
		q.CompanyName = *patch.CompanyName
	}
	if patch.CuilCuit != nil {
		q.CuilCuit = *patch.CuilCuit
	}
	if patch.Address != nil {
		addr := *patch.Address
		q.Address = &addr
	}
	if patch.HasReferencePrice != nil {
		q.HasReferencePrice = *patch.HasReferencePrice
	}
	if patch.ReferencePriceDescription != nil {
		q.ReferencePriceDescription = *patch.ReferencePriceDescription
	}
	if patch.ReferencePriceFileURL != nil {
		q.ReferencePriceFileURL = *patch.ReferencePriceFileURL
	}
	if patch.PaymentMethod != nil {
		q.PaymentMethod = *patch.PaymentMethod
	}
	if patch.ContactInfo != nil {
		q.ContactInfo = *patch.ContactInfo
	}
	if patch.Comments != nil {
		q.Comments = *patch.Comments
	}
	switch q.Type {
	case entities.QuoteTypeCatalog:
		if patch.CatalogID != nil {
			q.CatalogID = *patch.CatalogID
		}
	case entities.QuoteTypeCustom:
		if patch.ProductDetails != nil {
			pd := *patch.ProductDetails
			q.ProductDetails = &pd
		}
	}
	return q
}

package response

import (
	"time"

	"github.com/marianela-miguel3/yellow-bear-store-api/internal/domain/entities"
)

type CoordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type AddressResponse struct {
	Address     string               `json:"address"`
	Coordinates *CoordinatesResponse `json:"coordinates,omitempty"`
}

type ContactInfoResponse struct {
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

type ProductDetailsResponse struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	URL          string `json:"url,omitempty"`
	SerialNumber string `json:"serialNumber,omitempty"`
}

// QuoteResponse is the wire shape of a quote: the common fields plus the one
// variant field selected by type. Timestamps are ISO-8601 strings.
type QuoteResponse struct {
	ID                        int64                   `json:"id"`
	Type                      string                  `json:"type"`
	CatalogID                 *int64                  `json:"catalogId,omitempty"`
	ProductDetails            *ProductDetailsResponse `json:"productDetails,omitempty"`
	FullName                  string                  `json:"fullName,omitempty"`
	CompanyName               string                  `json:"companyName,omitempty"`
	CuilCuit                  string                  `json:"cuilCuit,omitempty"`
	Address                   *AddressResponse        `json:"address,omitempty"`
	HasReferencePrice         bool                    `json:"hasReferencePrice"`
	ReferencePriceDescription string                  `json:"referencePriceDescription,omitempty"`
	ReferencePriceFileURL     string                  `json:"referencePriceFileURL,omitempty"`
	PaymentMethod             string                  `json:"paymentMethod,omitempty"`
	ContactInfo               ContactInfoResponse     `json:"contactInfo"`
	Comments                  string                  `json:"comments"`
	CreatedAt                 string                  `json:"createdAt"`
	UpdatedAt                 string                  `json:"updatedAt,omitempty"`
}

type QuotesResponse struct {
	Quotes     []QuoteResponse    `json:"quotes"`
	Pagination PaginationResponse `json:"pagination"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	res := QuoteResponse{
		ID:                        q.ID,
		Type:                      string(q.Type),
		FullName:                  q.FullName,
		CompanyName:               q.CompanyName,
		CuilCuit:                  q.CuilCuit,
		HasReferencePrice:         q.HasReferencePrice,
		ReferencePriceDescription: q.ReferencePriceDescription,
		ReferencePriceFileURL:     q.ReferencePriceFileURL,
		PaymentMethod:             string(q.PaymentMethod),
		ContactInfo: ContactInfoResponse{
			Email:       q.ContactInfo.Email,
			PhoneNumber: q.ContactInfo.PhoneNumber,
		},
		Comments:  q.Comments,
		CreatedAt: q.CreatedAt.UTC().Format(time.RFC3339),
	}
	if !q.UpdatedAt.IsZero() {
		res.UpdatedAt = q.UpdatedAt.UTC().Format(time.RFC3339)
	}
	switch q.Type {
	case entities.QuoteTypeCatalog:
		id := q.CatalogID
		res.CatalogID = &id
	case entities.QuoteTypeCustom:
		if q.ProductDetails != nil {
			res.ProductDetails = &ProductDetailsResponse{
				Name:         q.ProductDetails.Name,
				Description:  q.ProductDetails.Description,
				URL:          q.ProductDetails.URL,
				SerialNumber: q.ProductDetails.SerialNumber,
			}
		}
	}
	if q.Address != nil {
		res.Address = &AddressResponse{Address: q.Address.Address}
		if q.Address.Coordinates != nil {
			res.Address.Coordinates = &CoordinatesResponse{
				Lat: q.Address.Coordinates.Lat,
				Lng: q.Address.Coordinates.Lng,
			}
		}
	}
	return res
}

func FromQuotes(quotes []entities.Quote, p entities.PaginationInfo) QuotesResponse {
	items := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		items = append(items, FromQuote(q))
	}
	return QuotesResponse{
		Quotes: items,
		Pagination: PaginationResponse{
			CurrentPage:  p.CurrentPage,
			TotalPages:   p.TotalPages,
			TotalItems:   p.TotalItems,
			ItemsPerPage: p.ItemsPerPage,
		},
	}
}

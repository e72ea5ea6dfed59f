package request

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/marianela-miguel3/yellow-bear-store-api/internal/domain/entities"
)

type CoordinatesRequest struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

type AddressRequest struct {
	Address     string              `json:"address" validate:"required,max=500"`
	Coordinates *CoordinatesRequest `json:"coordinates,omitempty"`
}

// ContactInfoRequest carries optional email and phone; at least one must be
// present (enforced by a struct-level rule, see validator.go).
type ContactInfoRequest struct {
	Email       *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	PhoneNumber *string `json:"phoneNumber,omitempty" validate:"omitempty,min=1,max=50"`
}

type ProductDetailsRequest struct {
	Name         string  `json:"name" validate:"required,max=255"`
	Description  string  `json:"description" validate:"required,max=1000"`
	URL          *string `json:"url,omitempty" validate:"omitempty,url,max=500"`
	SerialNumber *string `json:"serialNumber,omitempty" validate:"omitempty,min=1,max=100"`
}

// CatalogQuoteRequest is the POST /quotes/catalog payload.
type CatalogQuoteRequest struct {
	CatalogID                 int64               `json:"catalogId" validate:"required,gt=0"`
	FullName                  *string             `json:"fullName,omitempty" validate:"omitempty,min=1,max=255"`
	CompanyName               *string             `json:"companyName,omitempty" validate:"omitempty,max=255"`
	CuilCuit                  *string             `json:"cuilCuit,omitempty" validate:"omitempty,cuilcuit"`
	Address                   *AddressRequest     `json:"address,omitempty"`
	HasReferencePrice         *bool               `json:"hasReferencePrice" validate:"required"`
	ReferencePriceDescription *string             `json:"referencePriceDescription,omitempty" validate:"omitempty,max=500"`
	ReferencePriceFileURL     *string             `json:"referencePriceFileURL,omitempty" validate:"omitempty,url,max=500"`
	PaymentMethod             *string             `json:"paymentMethod,omitempty" validate:"omitempty,oneof=LOCAL_CASH OFFSHORE_CASH WIRE LETTER_OFF_CREDIT"`
	ContactInfo               *ContactInfoRequest `json:"contactInfo" validate:"required"`
	Comments                  string              `json:"comments" validate:"required,min=1,max=1000"`
}

func (r CatalogQuoteRequest) Validate() error {
	return aggregate("Catalog quote validation failed", validate.Struct(r))
}

func (r CatalogQuoteRequest) ToEntity() entities.Quote {
	q := commonQuoteEntity(r.FullName, r.CompanyName, r.CuilCuit, r.Address,
		r.ReferencePriceDescription, r.ReferencePriceFileURL, r.PaymentMethod, r.ContactInfo, r.Comments)
	q.CatalogID = r.CatalogID
	if r.HasReferencePrice != nil {
		q.HasReferencePrice = *r.HasReferencePrice
	}
	return q
}

// CustomQuoteRequest is the POST /quotes/custom payload.
type CustomQuoteRequest struct {
	ProductDetails            *ProductDetailsRequest `json:"productDetails" validate:"required"`
	FullName                  *string                `json:"fullName,omitempty" validate:"omitempty,min=1,max=255"`
	CompanyName               *string                `json:"companyName,omitempty" validate:"omitempty,max=255"`
	CuilCuit                  *string                `json:"cuilCuit,omitempty" validate:"omitempty,cuilcuit"`
	Address                   *AddressRequest        `json:"address,omitempty"`
	HasReferencePrice         *bool                  `json:"hasReferencePrice" validate:"required"`
	ReferencePriceDescription *string                `json:"referencePriceDescription,omitempty" validate:"omitempty,max=500"`
	ReferencePriceFileURL     *string                `json:"referencePriceFileURL,omitempty" validate:"omitempty,url,max=500"`
	PaymentMethod             *string                `json:"paymentMethod,omitempty" validate:"omitempty,oneof=LOCAL_CASH OFFSHORE_CASH WIRE LETTER_OFF_CREDIT"`
	ContactInfo               *ContactInfoRequest    `json:"contactInfo" validate:"required"`
	Comments                  string                 `json:"comments" validate:"required,min=1,max=1000"`
}

func (r CustomQuoteRequest) Validate() error {
	return aggregate("Custom quote validation failed", validate.Struct(r))
}

func (r CustomQuoteRequest) ToEntity() entities.Quote {
	q := commonQuoteEntity(r.FullName, r.CompanyName, r.CuilCuit, r.Address,
		r.ReferencePriceDescription, r.ReferencePriceFileURL, r.PaymentMethod, r.ContactInfo, r.Comments)
	if r.ProductDetails != nil {
		q.ProductDetails = r.ProductDetails.toEntity()
	}
	if r.HasReferencePrice != nil {
		q.HasReferencePrice = *r.HasReferencePrice
	}
	return q
}

// UpdateQuoteRequest is the PUT payload shared by both variants: every field
// optional, contact invariant re-checked when contactInfo is supplied. The
// variant field that does not match the target record is ignored downstream.
type UpdateQuoteRequest struct {
	FullName                  *string                `json:"fullName,omitempty" validate:"omitempty,min=1,max=255"`
	CompanyName               *string                `json:"companyName,omitempty" validate:"omitempty,max=255"`
	CuilCuit                  *string                `json:"cuilCuit,omitempty" validate:"omitempty,cuilcuit"`
	Address                   *AddressRequest        `json:"address,omitempty"`
	HasReferencePrice         *bool                  `json:"hasReferencePrice,omitempty"`
	ReferencePriceDescription *string                `json:"referencePriceDescription,omitempty" validate:"omitempty,max=500"`
	ReferencePriceFileURL     *string                `json:"referencePriceFileURL,omitempty" validate:"omitempty,url,max=500"`
	PaymentMethod             *string                `json:"paymentMethod,omitempty" validate:"omitempty,oneof=LOCAL_CASH OFFSHORE_CASH WIRE LETTER_OFF_CREDIT"`
	ContactInfo               *ContactInfoRequest    `json:"contactInfo,omitempty"`
	Comments                  *string                `json:"comments,omitempty" validate:"omitempty,min=1,max=1000"`
	CatalogID                 *int64                 `json:"catalogId,omitempty" validate:"omitempty,gt=0"`
	ProductDetails            *ProductDetailsRequest `json:"productDetails,omitempty"`
}

func (r UpdateQuoteRequest) Validate() error {
	return aggregate("Quote update validation failed", validate.Struct(r))
}

func (r UpdateQuoteRequest) ToPatch() entities.QuotePatch {
	patch := entities.QuotePatch{
		FullName:                  r.FullName,
		CompanyName:               r.CompanyName,
		CuilCuit:                  r.CuilCuit,
		HasReferencePrice:         r.HasReferencePrice,
		ReferencePriceDescription: r.ReferencePriceDescription,
		ReferencePriceFileURL:     r.ReferencePriceFileURL,
		Comments:                  r.Comments,
		CatalogID:                 r.CatalogID,
	}
	if r.Address != nil {
		patch.Address = r.Address.toEntity()
	}
	if r.PaymentMethod != nil {
		pm := entities.PaymentMethod(*r.PaymentMethod)
		patch.PaymentMethod = &pm
	}
	if r.ContactInfo != nil {
		patch.ContactInfo = &entities.ContactInfo{
			Email:       deref(r.ContactInfo.Email),
			PhoneNumber: deref(r.ContactInfo.PhoneNumber),
		}
	}
	if r.ProductDetails != nil {
		patch.ProductDetails = r.ProductDetails.toEntity()
	}
	return patch
}

// QuoteFiltersRequest is the GET /quotes query string. Defaults are applied
// by the form binder before validation runs.
type QuoteFiltersRequest struct {
	Page          int    `form:"page,default=1" validate:"gte=1"`
	Limit         int    `form:"limit,default=10" validate:"gte=1,lte=100"`
	Type          string `form:"type" validate:"omitempty,oneof=catalog custom"`
	CatalogID     int64  `form:"catalogId" validate:"omitempty,gt=0"`
	ProductID     int64  `form:"productId" validate:"omitempty,gt=0"`
	FullName      string `form:"fullName"`
	CompanyName   string `form:"companyName"`
	PaymentMethod string `form:"paymentMethod" validate:"omitempty,oneof=LOCAL_CASH OFFSHORE_CASH WIRE LETTER_OFF_CREDIT"`
	DateFrom      string `form:"dateFrom" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	DateTo        string `form:"dateTo" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

func (r QuoteFiltersRequest) Validate() error {
	return aggregate("Quote filters validation failed", validate.Struct(r))
}

func (r QuoteFiltersRequest) ToFilters() entities.QuoteFilters {
	f := entities.QuoteFilters{
		Page:          r.Page,
		Limit:         r.Limit,
		Type:          entities.QuoteType(r.Type),
		CatalogID:     r.CatalogID,
		FullName:      r.FullName,
		CompanyName:   r.CompanyName,
		PaymentMethod: entities.PaymentMethod(r.PaymentMethod),
	}
	if t, err := time.Parse(time.RFC3339, r.DateFrom); err == nil {
		f.DateFrom = &t
	}
	if t, err := time.Parse(time.RFC3339, r.DateTo); err == nil {
		f.DateTo = &t
	}
	return f
}

var quoteIDPattern = regexp.MustCompile(`^\d+$`)

// ParseQuoteID coerces the :id path parameter into a positive integer.
func ParseQuoteID(raw string) (int64, error) {
	if !quoteIDPattern.MatchString(raw) {
		return 0, fmt.Errorf("id: must be a positive integer")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id: must be a positive integer")
	}
	return id, nil
}

func (a AddressRequest) toEntity() *entities.Address {
	addr := &entities.Address{Address: a.Address}
	if a.Coordinates != nil {
		addr.Coordinates = &entities.Coordinates{Lat: a.Coordinates.Lat, Lng: a.Coordinates.Lng}
	}
	return addr
}

func (p ProductDetailsRequest) toEntity() *entities.ProductDetails {
	return &entities.ProductDetails{
		Name:         p.Name,
		Description:  p.Description,
		URL:          deref(p.URL),
		SerialNumber: deref(p.SerialNumber),
	}
}

func commonQuoteEntity(
	fullName, companyName, cuilCuit *string,
	address *AddressRequest,
	refDescription, refFileURL, paymentMethod *string,
	contactInfo *ContactInfoRequest,
	comments string,
) entities.Quote {
	q := entities.Quote{
		FullName:                  deref(fullName),
		CompanyName:               deref(companyName),
		CuilCuit:                  deref(cuilCuit),
		ReferencePriceDescription: deref(refDescription),
		ReferencePriceFileURL:     deref(refFileURL),
		Comments:                  comments,
	}
	if address != nil {
		q.Address = address.toEntity()
	}
	if paymentMethod != nil {
		q.PaymentMethod = entities.PaymentMethod(*paymentMethod)
	}
	if contactInfo != nil {
		q.ContactInfo = entities.ContactInfo{
			Email:       deref(contactInfo.Email),
			PhoneNumber: deref(contactInfo.PhoneNumber),
		}
	}
	return q
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

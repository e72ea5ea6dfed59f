package entities

import "time"

// QuoteType discriminates the two quote variants sharing one id space.
//
// Domain notes:
//   - A catalog quote references an existing catalog item by id.
//   - A custom quote describes a bespoke product through ProductDetails.
//   - The type is fixed at creation and never changes afterwards.
type QuoteType string

const (
	QuoteTypeCatalog QuoteType = "catalog"
	QuoteTypeCustom  QuoteType = "custom"
)

type PaymentMethod string

const (
	PaymentMethodLocalCash      PaymentMethod = "LOCAL_CASH"
	PaymentMethodOffshoreCash   PaymentMethod = "OFFSHORE_CASH"
	PaymentMethodWire           PaymentMethod = "WIRE"
	PaymentMethodLetterOfCredit PaymentMethod = "LETTER_OFF_CREDIT"
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Address struct {
	Address     string       `json:"address"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// ContactInfo must carry at least one of Email or PhoneNumber. The rule is
// enforced at the validation boundary on create and on every update.
type ContactInfo struct {
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

type ProductDetails struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	URL          string `json:"url,omitempty"`
	SerialNumber string `json:"serialNumber,omitempty"`
}

// Quote is the persisted quote record.
//
// Exactly one of the variant fields is meaningful, selected by Type:
//   - QuoteTypeCatalog: CatalogID > 0, ProductDetails nil.
//   - QuoteTypeCustom: ProductDetails non-nil, CatalogID zero.
//
// Ids are positive and strictly increasing within a process, so insertion
// order and id order coincide.
type Quote struct {
	ID                        int64           `json:"id"`
	Type                      QuoteType       `json:"type"`
	CatalogID                 int64           `json:"catalogId,omitempty"`
	ProductDetails            *ProductDetails `json:"productDetails,omitempty"`
	FullName                  string          `json:"fullName,omitempty"`
	CompanyName               string          `json:"companyName,omitempty"`
	CuilCuit                  string          `json:"cuilCuit,omitempty"`
	Address                   *Address        `json:"address,omitempty"`
	HasReferencePrice         bool            `json:"hasReferencePrice"`
	ReferencePriceDescription string          `json:"referencePriceDescription,omitempty"`
	ReferencePriceFileURL     string          `json:"referencePriceFileURL,omitempty"`
	PaymentMethod             PaymentMethod   `json:"paymentMethod,omitempty"`
	ContactInfo               ContactInfo     `json:"contactInfo"`
	Comments                  string          `json:"comments"`
	CreatedAt                 time.Time       `json:"createdAt"`
	UpdatedAt                 time.Time       `json:"updatedAt,omitempty"`
}

// QuotePatch is a partial update. Nil fields are left untouched. The variant
// field that does not belong to the target record is ignored by the
// repository, which never changes a record's Type.
type QuotePatch struct {
	FullName                  *string
	CompanyName               *string
	CuilCuit                  *string
	Address                   *Address
	HasReferencePrice         *bool
	ReferencePriceDescription *string
	ReferencePriceFileURL     *string
	PaymentMethod             *PaymentMethod
	ContactInfo               *ContactInfo
	Comments                  *string
	CatalogID                 *int64
	ProductDetails            *ProductDetails
}

// QuoteFilters narrows and paginates quote listings. Page and Limit are
// always set (defaults applied at the validation boundary).
type QuoteFilters struct {
	Page          int
	Limit         int
	Type          QuoteType
	CatalogID     int64
	FullName      string
	CompanyName   string
	PaymentMethod PaymentMethod
	DateFrom      *time.Time
	DateTo        *time.Time
}

type PaginationInfo struct {
	CurrentPage  int
	TotalPages   int
	TotalItems   int
	ItemsPerPage int
}

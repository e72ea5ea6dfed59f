package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/marianela-miguel3/yellow-bear-store-api/internal/domain/entities"
	"github.com/marianela-miguel3/yellow-bear-store-api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

type coordinatesItem struct {
	Lat float64 `dynamodbav:"lat"`
	Lng float64 `dynamodbav:"lng"`
}

type addressItem struct {
	Address     string           `dynamodbav:"address"`
	Coordinates *coordinatesItem `dynamodbav:"coordinates,omitempty"`
}

type contactInfoItem struct {
	Email       string `dynamodbav:"email,omitempty"`
	PhoneNumber string `dynamodbav:"phone_number,omitempty"`
}

type productDetailsItem struct {
	Name         string `dynamodbav:"name"`
	Description  string `dynamodbav:"description"`
	URL          string `dynamodbav:"url,omitempty"`
	SerialNumber string `dynamodbav:"serial_number,omitempty"`
}

type quoteItem struct {
	ID                        string              `dynamodbav:"id"`
	Type                      string              `dynamodbav:"type"`
	CatalogID                 int64               `dynamodbav:"catalog_id,omitempty"`
	ProductDetails            *productDetailsItem `dynamodbav:"product_details,omitempty"`
	FullName                  string              `dynamodbav:"full_name,omitempty"`
	CompanyName               string              `dynamodbav:"company_name,omitempty"`
	CuilCuit                  string              `dynamodbav:"cuil_cuit,omitempty"`
	Address                   *addressItem        `dynamodbav:"address,omitempty"`
	HasReferencePrice         bool                `dynamodbav:"has_reference_price"`
	ReferencePriceDescription string              `dynamodbav:"reference_price_description,omitempty"`
	ReferencePriceFileURL     string              `dynamodbav:"reference_price_file_url,omitempty"`
	PaymentMethod             string              `dynamodbav:"payment_method,omitempty"`
	ContactInfo               contactInfoItem     `dynamodbav:"contact_info"`
	Comments                  string              `dynamodbav:"comments"`
	CreatedAt                 string              `dynamodbav:"created_at"`
	UpdatedAt                 string              `dynamodbav:"updated_at,omitempty"`
}

// QuoteDynamoRepository persists both quote variants in one DynamoDB table.
//
// Table requirements:
//   - PK: id (string, the numeric quote id)
//
// Both variants share the table and the id space; the type attribute
// discriminates them. Listing scans the table and filters in memory, which
// is fine for the collection sizes this service handles.
type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) CreateCatalog(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	q.Type = entities.QuoteTypeCatalog
	return r.create(ctx, q)
}

func (r *QuoteDynamoRepository) CreateCustom(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	q.Type = entities.QuoteTypeCustom
	return r.create(ctx, q)
}

func (r *QuoteDynamoRepository) create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	q.ID = nextQuoteID()
	q.CreatedAt = time.Now().UTC()

	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) List(ctx context.Context, f entities.QuoteFilters) ([]entities.Quote, int, error) {
	quotes := make([]entities.Quote, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, 0, err
		}

		var items []quoteItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, 0, err
		}
		for _, it := range items {
			q := fromQuoteItem(it)
			if matchQuoteFilters(q, f) {
				quotes = append(quotes, q)
			}
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sortQuotesByID(quotes)
	return paginateQuotes(quotes, f.Page, f.Limit), len(quotes), nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: quoteIDToString(id)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) UpdateCatalog(ctx context.Context, id int64, patch entities.QuotePatch) (entities.Quote, error) {
	return r.update(ctx, id, entities.QuoteTypeCatalog, patch)
}

func (r *QuoteDynamoRepository) UpdateCustom(ctx context.Context, id int64, patch entities.QuotePatch) (entities.Quote, error) {
	return r.update(ctx, id, entities.QuoteTypeCustom, patch)
}

// update merges the patch over the stored record and writes it back whole.
// The conditional put on id guards against the record disappearing between
// the read and the write.
func (r *QuoteDynamoRepository) update(ctx context.Context, id int64, want entities.QuoteType, patch entities.QuotePatch) (entities.Quote, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if existing.ID == 0 || existing.Type != want {
		return entities.Quote{}, nil
	}

	updated := applyQuotePatch(existing, patch)
	updated.UpdatedAt = time.Now().UTC()

	av, err := attributevalue.MarshalMap(toQuoteItem(updated))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	return updated, nil
}

func (r *QuoteDynamoRepository) Delete(ctx context.Context, id int64) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: quoteIDToString(id)},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	it := quoteItem{
		ID:                        quoteIDToString(q.ID),
		Type:                      string(q.Type),
		CatalogID:                 q.CatalogID,
		FullName:                  q.FullName,
		CompanyName:               q.CompanyName,
		CuilCuit:                  q.CuilCuit,
		HasReferencePrice:         q.HasReferencePrice,
		ReferencePriceDescription: q.ReferencePriceDescription,
		ReferencePriceFileURL:     q.ReferencePriceFileURL,
		PaymentMethod:             string(q.PaymentMethod),
		ContactInfo: contactInfoItem{
			Email:       q.ContactInfo.Email,
			PhoneNumber: q.ContactInfo.PhoneNumber,
		},
		Comments:  q.Comments,
		CreatedAt: q.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if !q.UpdatedAt.IsZero() {
		it.UpdatedAt = q.UpdatedAt.UTC().Format(time.RFC3339Nano)
	}
	if q.ProductDetails != nil {
		it.ProductDetails = &productDetailsItem{
			Name:         q.ProductDetails.Name,
			Description:  q.ProductDetails.Description,
			URL:          q.ProductDetails.URL,
			SerialNumber: q.ProductDetails.SerialNumber,
		}
	}
	if q.Address != nil {
		it.Address = &addressItem{Address: q.Address.Address}
		if q.Address.Coordinates != nil {
			it.Address.Coordinates = &coordinatesItem{
				Lat: q.Address.Coordinates.Lat,
				Lng: q.Address.Coordinates.Lng,
			}
		}
	}
	return it
}

func fromQuoteItem(it quoteItem) entities.Quote {
	id, _ := strconv.ParseInt(it.ID, 10, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	q := entities.Quote{
		ID:                        id,
		Type:                      entities.QuoteType(it.Type),
		CatalogID:                 it.CatalogID,
		FullName:                  it.FullName,
		CompanyName:               it.CompanyName,
		CuilCuit:                  it.CuilCuit,
		HasReferencePrice:         it.HasReferencePrice,
		ReferencePriceDescription: it.ReferencePriceDescription,
		ReferencePriceFileURL:     it.ReferencePriceFileURL,
		PaymentMethod:             entities.PaymentMethod(it.PaymentMethod),
		ContactInfo: entities.ContactInfo{
			Email:       it.ContactInfo.Email,
			PhoneNumber: it.ContactInfo.PhoneNumber,
		},
		Comments:  it.Comments,
		CreatedAt: createdAt,
	}
	if it.UpdatedAt != "" {
		q.UpdatedAt, _ = time.Parse(time.RFC3339Nano, it.UpdatedAt)
	}
	if it.ProductDetails != nil {
		q.ProductDetails = &entities.ProductDetails{
			Name:         it.ProductDetails.Name,
			Description:  it.ProductDetails.Description,
			URL:          it.ProductDetails.URL,
			SerialNumber: it.ProductDetails.SerialNumber,
		}
	}
	if it.Address != nil {
		q.Address = &entities.Address{Address: it.Address.Address}
		if it.Address.Coordinates != nil {
			q.Address.Coordinates = &entities.Coordinates{
				Lat: it.Address.Coordinates.Lat,
				Lng: it.Address.Coordinates.Lng,
			}
		}
	}
	return q
}

func quoteIDToString(id int64) string {
	return strconv.FormatInt(id, 10)
}

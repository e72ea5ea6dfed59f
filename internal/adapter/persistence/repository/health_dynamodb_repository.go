package repository

import (
	"context"
	"time"

	"github.com/marianela-miguel3/yellow-bear-store-api/internal/domain/entities"
	"github.com/marianela-miguel3/yellow-bear-store-api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultHealthChecksTableName = "health_checks"

type healthRecordItem struct {
	ID          string  `dynamodbav:"id"`
	Status      string  `dynamodbav:"status"`
	Timestamp   string  `dynamodbav:"timestamp"`
	Uptime      float64 `dynamodbav:"uptime"`
	Environment string  `dynamodbav:"environment"`
	MemoryUsed  float64 `dynamodbav:"memory_used"`
	MemoryTotal float64 `dynamodbav:"memory_total"`
	Database    string  `dynamodbav:"database"`
	Cache       string  `dynamodbav:"cache"`
}

// HealthDynamoRepository probes DynamoDB connectivity and keeps a trail of
// health snapshots. Saving is best effort; callers must not fail a health
// check because the save failed.
type HealthDynamoRepository struct {
	ddb        *dynamodb.Client
	tableName  string
	probeTable string
}

var _ interfaces.IHealthRepository = (*HealthDynamoRepository)(nil)

func NewHealthDynamoRepository(ddb *dynamodb.Client) *HealthDynamoRepository {
	return &HealthDynamoRepository{
		ddb:        ddb,
		tableName:  getenvDefault("HEALTH_CHECKS_TABLE", defaultHealthChecksTableName),
		probeTable: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

// Ping issues a trivial round trip against the quotes table.
func (r *HealthDynamoRepository) Ping(ctx context.Context) error {
	_, err := r.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(r.probeTable),
	})
	return err
}

func (r *HealthDynamoRepository) SaveHealthCheck(ctx context.Context, rec entities.HealthRecord) (entities.HealthRecord, error) {
	rec.ID = nextQuoteID()

	av, err := attributevalue.MarshalMap(healthRecordItem{
		ID:          quoteIDToString(rec.ID),
		Status:      rec.Status,
		Timestamp:   rec.Timestamp.UTC().Format(time.RFC3339Nano),
		Uptime:      rec.Uptime,
		Environment: rec.Environment,
		MemoryUsed:  rec.Memory.Used,
		MemoryTotal: rec.Memory.Total,
		Database:    string(rec.Services.Database),
		Cache:       string(rec.Services.Cache),
	})
	if err != nil {
		return entities.HealthRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.HealthRecord{}, err
	}
	return rec, nil
}

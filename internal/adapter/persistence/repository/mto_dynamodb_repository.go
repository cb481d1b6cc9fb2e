package repository

import (
	"context"
	"time"

	"alufab_quotes/internal/domain/entities"
	"alufab_quotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultMTOTableName = "mtos"

type mtoItem struct {
	QuotationID string             `dynamodbav:"quotation_id"`
	ID          string             `dynamodbav:"id"`
	ProjectID   string             `dynamodbav:"project_id"`
	Items       []entities.MTOItem `dynamodbav:"items"`
	GeneratedAt string             `dynamodbav:"generated_at"`
}

// MTODynamoRepository persists material take-off documents.
//
// Table requirements:
//   - PK: quotation_id (string)
//
// Quotation id is the PK, so an unconditional put is already a replace.

type MTODynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMTORepository = (*MTODynamoRepository)(nil)

func NewMTODynamoRepository(ddb *dynamodb.Client) *MTODynamoRepository {
	return &MTODynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MTO_TABLE", defaultMTOTableName),
	}
}

func (r *MTODynamoRepository) ReplaceForQuotation(ctx context.Context, m entities.MTO) (entities.MTO, error) {
	av, err := attributevalue.MarshalMap(mtoItem{
		QuotationID: m.QuotationID,
		ID:          m.ID,
		ProjectID:   m.ProjectID,
		Items:       m.Items,
		GeneratedAt: m.GeneratedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.MTO{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.MTO{}, err
	}
	return m, nil
}

func (r *MTODynamoRepository) GetByQuotation(ctx context.Context, quotationID string) (entities.MTO, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"quotation_id": &types.AttributeValueMemberS{Value: quotationID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.MTO{}, err
	}
	if len(out.Item) == 0 {
		return entities.MTO{}, nil
	}

	var it mtoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.MTO{}, err
	}
	generatedAt, _ := time.Parse(time.RFC3339Nano, it.GeneratedAt)
	return entities.MTO{
		ID:          it.ID,
		QuotationID: it.QuotationID,
		ProjectID:   it.ProjectID,
		Items:       it.Items,
		GeneratedAt: generatedAt,
	}, nil
}

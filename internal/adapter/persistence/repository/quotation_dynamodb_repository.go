package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"alufab_quotes/internal/domain/entities"
	"alufab_quotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotationsTableName = "quotations"
	quotationIDIndexName       = "id-index"
)

type quotationItem struct {
	ProjectID       string                   `dynamodbav:"project_id"`
	Revision        int                      `dynamodbav:"revision"`
	ID              string                   `dynamodbav:"id"`
	Header          entities.QuotationHeader `dynamodbav:"header"`
	Rows            []entities.QuotationRow  `dynamodbav:"rows"`
	TotalAmt        float64                  `dynamodbav:"total_amt"`
	TaxAmt          float64                  `dynamodbav:"tax_amt"`
	Grand           float64                  `dynamodbav:"grand"`
	FabricationAmt  float64                  `dynamodbav:"fabrication_amt"`
	InstallationAmt float64                  `dynamodbav:"installation_amt"`
	DiscountAmt     float64                  `dynamodbav:"discount_amt"`
	CreatedAt       string                   `dynamodbav:"created_at"`
}

// QuotationDynamoRepository persists immutable quotation revisions.
//
// Table requirements:
//   - PK: project_id (string), SK: revision (number)
//   - GSI "id-index" on id (string) for direct lookups
//
// The composite key makes one revision slot per (project, revision) pair, so
// a conditional put is enough to arbitrate concurrent saves.

type QuotationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb *dynamodb.Client) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName),
	}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	av, err := attributevalue.MarshalMap(toQuotationItem(q))
	if err != nil {
		return entities.Quotation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#project_id)"),
		ExpressionAttributeNames: map[string]string{
			"#project_id": "project_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quotation{}, interfaces.ErrRevisionExists
		}
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotationIDIndexName),
		KeyConditionExpression: aws.String("#id = :id"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Items) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func (r *QuotationDynamoRepository) GetLatestByProject(ctx context.Context, projectID string) (entities.Quotation, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#project_id = :pid"),
		ExpressionAttributeNames: map[string]string{
			"#project_id": "project_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
		ConsistentRead:   aws.Bool(true),
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Items) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func (r *QuotationDynamoRepository) ListByProject(ctx context.Context, projectID string) ([]entities.Quotation, error) {
	var quotations []entities.Quotation
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			KeyConditionExpression: aws.String("#project_id = :pid"),
			ExpressionAttributeNames: map[string]string{
				"#project_id": "project_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pid": &types.AttributeValueMemberS{Value: projectID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []quotationItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			quotations = append(quotations, fromQuotationItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			return quotations, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *QuotationDynamoRepository) List(ctx context.Context) ([]entities.Quotation, error) {
	var quotations []entities.Quotation
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []quotationItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			quotations = append(quotations, fromQuotationItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			return quotations, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *QuotationDynamoRepository) Delete(ctx context.Context, id string) error {
	// The GSI only projects keys we need to address the base table.
	q, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if q.ID == "" {
		return nil
	}

	_, err = r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"project_id": &types.AttributeValueMemberS{Value: q.Header.ProjectID},
			"revision":   &types.AttributeValueMemberN{Value: strconv.Itoa(q.Header.Revision)},
		},
	})
	return err
}

func toQuotationItem(q entities.Quotation) quotationItem {
	return quotationItem{
		ProjectID:       q.Header.ProjectID,
		Revision:        q.Header.Revision,
		ID:              q.ID,
		Header:          q.Header,
		Rows:            q.Rows,
		TotalAmt:        q.TotalAmt,
		TaxAmt:          q.TaxAmt,
		Grand:           q.Grand,
		FabricationAmt:  q.FabricationAmt,
		InstallationAmt: q.InstallationAmt,
		DiscountAmt:     q.DiscountAmt,
		CreatedAt:       q.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Quotation{
		ID:              it.ID,
		Header:          it.Header,
		Rows:            it.Rows,
		TotalAmt:        it.TotalAmt,
		TaxAmt:          it.TaxAmt,
		Grand:           it.Grand,
		FabricationAmt:  it.FabricationAmt,
		InstallationAmt: it.InstallationAmt,
		DiscountAmt:     it.DiscountAmt,
		CreatedAt:       createdAt,
	}
}

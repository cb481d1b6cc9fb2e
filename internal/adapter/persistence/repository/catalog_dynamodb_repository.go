package repository

import (
	"context"

	"alufab_quotes/internal/domain/entities"
	"alufab_quotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProductsTableName  = "products"
	defaultAluminiumTableName = "aluminium_items"
	defaultGlassTableName     = "glass_items"
	defaultLocksTableName     = "lock_items"
	defaultFinishesTableName  = "finish_items"
	defaultHardwareTableName  = "hardware_items"
)

// CatalogDynamoRepository loads the six reference tables the pricing engine
// resolves selections against. Catalogs are small (hundreds of items), full
// scans are fine.

type CatalogDynamoRepository struct {
	ddb *dynamodb.Client

	productsTable  string
	aluminiumTable string
	glassTable     string
	locksTable     string
	finishesTable  string
	hardwareTable  string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:            ddb,
		productsTable:  getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
		aluminiumTable: getenvDefault("ALUMINIUM_TABLE", defaultAluminiumTableName),
		glassTable:     getenvDefault("GLASS_TABLE", defaultGlassTableName),
		locksTable:     getenvDefault("LOCKS_TABLE", defaultLocksTableName),
		finishesTable:  getenvDefault("FINISHES_TABLE", defaultFinishesTableName),
		hardwareTable:  getenvDefault("HARDWARE_TABLE", defaultHardwareTableName),
	}
}

func (r *CatalogDynamoRepository) GetCatalogs(ctx context.Context) (entities.Catalogs, error) {
	var cats entities.Catalogs

	if err := r.scanAll(ctx, r.productsTable, &cats.Products); err != nil {
		return entities.Catalogs{}, err
	}
	if err := r.scanAll(ctx, r.aluminiumTable, &cats.Aluminium); err != nil {
		return entities.Catalogs{}, err
	}
	if err := r.scanAll(ctx, r.glassTable, &cats.Glass); err != nil {
		return entities.Catalogs{}, err
	}
	if err := r.scanAll(ctx, r.locksTable, &cats.Locks); err != nil {
		return entities.Catalogs{}, err
	}
	if err := r.scanAll(ctx, r.finishesTable, &cats.Finishes); err != nil {
		return entities.Catalogs{}, err
	}
	if err := r.scanAll(ctx, r.hardwareTable, &cats.Hardware); err != nil {
		return entities.Catalogs{}, err
	}
	return cats, nil
}

func (r *CatalogDynamoRepository) scanAll(ctx context.Context, table string, dest interface{}) error {
	var pages []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return err
		}
		pages = append(pages, out.Items...)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return attributevalue.UnmarshalListOfMaps(pages, dest)
}

package repository

import (
	"context"

	"claimscope/internal/domain/entities"
	"claimscope/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCatalogTableName = "catalog_items"

type catalogItemRow struct {
	Code               string                    `dynamodbav:"code"`
	Description        string                    `dynamodbav:"description"`
	TradeCode          string                    `dynamodbav:"trade_code"`
	Unit               string                    `dynamodbav:"unit"`
	DefaultWasteFactor float64                   `dynamodbav:"default_waste_factor"`
	QuantityFormula    string                    `dynamodbav:"quantity_formula"`
	ActivityType       string                    `dynamodbav:"activity_type"`
	CoverageType       string                    `dynamodbav:"coverage_type"`
	LifeExpectancy     float64                   `dynamodbav:"life_expectancy_years"`
	ScopeConditions    *entities.ScopeConditions `dynamodbav:"scope_conditions,omitempty"`
	CompanionRules     entities.CompanionRules   `dynamodbav:"companion_rules"`
}

// CatalogDynamoRepository persists CatalogItem reference data in DynamoDB.
//
// Table requirements:
//   - PK: code (string)
//
// Seeding upserts by code, which keeps bulk loads idempotent.

type CatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CATALOG_TABLE", defaultCatalogTableName),
	}
}

func (r *CatalogDynamoRepository) Upsert(ctx context.Context, item entities.CatalogItem) error {
	av, err := attributevalue.MarshalMap(toCatalogRow(item))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *CatalogDynamoRepository) GetByCode(ctx context.Context, code string) (entities.CatalogItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"code": &types.AttributeValueMemberS{Value: code},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CatalogItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.CatalogItem{}, nil
	}

	var row catalogItemRow
	if err := attributevalue.UnmarshalMap(out.Item, &row); err != nil {
		return entities.CatalogItem{}, err
	}
	return fromCatalogRow(row), nil
}

func (r *CatalogDynamoRepository) ListAll(ctx context.Context) ([]entities.CatalogItem, error) {
	var items []entities.CatalogItem
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var rows []catalogItemRow
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &rows); err != nil {
			return nil, err
		}
		for _, row := range rows {
			items = append(items, fromCatalogRow(row))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

func toCatalogRow(item entities.CatalogItem) catalogItemRow {
	return catalogItemRow{
		Code:               item.Code,
		Description:        item.Description,
		TradeCode:          string(item.TradeCode),
		Unit:               string(item.Unit),
		DefaultWasteFactor: item.DefaultWasteFactor,
		QuantityFormula:    item.QuantityFormula,
		ActivityType:       string(item.ActivityType),
		CoverageType:       string(item.CoverageType),
		LifeExpectancy:     item.LifeExpectancy,
		ScopeConditions:    item.ScopeConditions,
		CompanionRules:     item.CompanionRules,
	}
}

func fromCatalogRow(row catalogItemRow) entities.CatalogItem {
	return entities.CatalogItem{
		Code:               row.Code,
		Description:        row.Description,
		TradeCode:          entities.TradeCode(row.TradeCode),
		Unit:               entities.UnitOfMeasure(row.Unit),
		DefaultWasteFactor: row.DefaultWasteFactor,
		QuantityFormula:    row.QuantityFormula,
		ActivityType:       entities.ActivityType(row.ActivityType),
		CoverageType:       entities.CoverageType(row.CoverageType),
		LifeExpectancy:     row.LifeExpectancy,
		ScopeConditions:    row.ScopeConditions,
		CompanionRules:     row.CompanionRules,
	}
}

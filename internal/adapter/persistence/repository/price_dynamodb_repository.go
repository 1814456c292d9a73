package repository

import (
	"context"
	"time"

	"claimscope/internal/domain/entities"
	"claimscope/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPricesTableName = "regional_prices"

type regionalPriceRow struct {
	RegionID         string  `dynamodbav:"region_id"`
	LineItemCode     string  `dynamodbav:"line_item_code"`
	MaterialCost     float64 `dynamodbav:"material_cost"`
	LaborCost        float64 `dynamodbav:"labor_cost"`
	EquipmentCost    float64 `dynamodbav:"equipment_cost"`
	EffectiveDate    string  `dynamodbav:"effective_date"`
	PriceListVersion string  `dynamodbav:"price_list_version"`
}

// PriceDynamoRepository persists RegionalPrice rows in DynamoDB.
//
// Table requirements:
//   - PK: region_id (string)
//   - SK: line_item_code (string)
//
// The composite key enforces the one-active-row-per-(region, code)
// invariant: seeding the same pair twice replaces in place.

type PriceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPriceRepository = (*PriceDynamoRepository)(nil)

func NewPriceDynamoRepository(ddb *dynamodb.Client) *PriceDynamoRepository {
	return &PriceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRICES_TABLE", defaultPricesTableName),
	}
}

func (r *PriceDynamoRepository) Upsert(ctx context.Context, price entities.RegionalPrice) error {
	av, err := attributevalue.MarshalMap(toPriceRow(price))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *PriceDynamoRepository) GetByRegionAndCode(ctx context.Context, regionID, lineItemCode string) (entities.RegionalPrice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"region_id":      &types.AttributeValueMemberS{Value: regionID},
			"line_item_code": &types.AttributeValueMemberS{Value: lineItemCode},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RegionalPrice{}, err
	}
	if len(out.Item) == 0 {
		return entities.RegionalPrice{}, nil
	}

	var row regionalPriceRow
	if err := attributevalue.UnmarshalMap(out.Item, &row); err != nil {
		return entities.RegionalPrice{}, err
	}
	return fromPriceRow(row), nil
}

func (r *PriceDynamoRepository) ListByRegion(ctx context.Context, regionID string) ([]entities.RegionalPrice, error) {
	var prices []entities.RegionalPrice
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			KeyConditionExpression: aws.String("#region_id = :region_id"),
			ExpressionAttributeNames: map[string]string{
				"#region_id": "region_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":region_id": &types.AttributeValueMemberS{Value: regionID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var rows []regionalPriceRow
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &rows); err != nil {
			return nil, err
		}
		for _, row := range rows {
			prices = append(prices, fromPriceRow(row))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return prices, nil
}

func toPriceRow(p entities.RegionalPrice) regionalPriceRow {
	return regionalPriceRow{
		RegionID:         p.RegionID,
		LineItemCode:     p.LineItemCode,
		MaterialCost:     p.MaterialCost,
		LaborCost:        p.LaborCost,
		EquipmentCost:    p.EquipmentCost,
		EffectiveDate:    p.EffectiveDate.UTC().Format(time.RFC3339Nano),
		PriceListVersion: p.PriceListVersion,
	}
}

func fromPriceRow(row regionalPriceRow) entities.RegionalPrice {
	effectiveDate, _ := time.Parse(time.RFC3339Nano, row.EffectiveDate)
	return entities.RegionalPrice{
		RegionID:         row.RegionID,
		LineItemCode:     row.LineItemCode,
		MaterialCost:     row.MaterialCost,
		LaborCost:        row.LaborCost,
		EquipmentCost:    row.EquipmentCost,
		EffectiveDate:    effectiveDate,
		PriceListVersion: row.PriceListVersion,
	}
}

package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"claimscope/internal/domain/entities"
	"claimscope/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultScopeItemsTableName = "scope_items"
	defaultDamagesTableName    = "damage_records"
)

type scopeItemRow struct {
	ID                string  `dynamodbav:"id"`
	SessionID         string  `dynamodbav:"session_id"`
	RoomID            string  `dynamodbav:"room_id"`
	DamageID          string  `dynamodbav:"damage_id,omitempty"`
	CatalogCode       string  `dynamodbav:"catalog_code"`
	Description       string  `dynamodbav:"description"`
	TradeCode         string  `dynamodbav:"trade_code"`
	Quantity          float64 `dynamodbav:"quantity"`
	Unit              string  `dynamodbav:"unit"`
	Provenance        string  `dynamodbav:"provenance"`
	ParentScopeItemID string  `dynamodbav:"parent_scope_item_id,omitempty"`
	Status            string  `dynamodbav:"status"`
	DimensionWarning  bool    `dynamodbav:"dimension_warning"`
	CreatedAt         string  `dynamodbav:"created_at"`
	UpdatedAt         string  `dynamodbav:"updated_at"`
}

type damageRow struct {
	ID             string                        `dynamodbav:"id"`
	SessionID      string                        `dynamodbav:"session_id"`
	RoomID         string                        `dynamodbav:"room_id"`
	DamageType     string                        `dynamodbav:"damage_type"`
	Surface        string                        `dynamodbav:"surface"`
	Severity       string                        `dynamodbav:"severity"`
	AffectedAreaSF float64                       `dynamodbav:"affected_area_sf"`
	Water          *entities.WaterClassification `dynamodbav:"water,omitempty"`
	CreatedAt      string                        `dynamodbav:"created_at"`
}

// ScopeDynamoRepository persists scope items and damage records in DynamoDB.
//
// Table requirements (both tables):
//   - PK: id (string)
//   - GSI1 (session_id-index): session_id
//
// Items are never deleted; removal is a status flip so companion provenance
// chains stay resolvable.

type ScopeDynamoRepository struct {
	ddb          *dynamodb.Client
	itemsTable   string
	damagesTable string
}

var _ interfaces.IScopeRepository = (*ScopeDynamoRepository)(nil)

func NewScopeDynamoRepository(ddb *dynamodb.Client) *ScopeDynamoRepository {
	return &ScopeDynamoRepository{
		ddb:          ddb,
		itemsTable:   getenvDefault("SCOPE_ITEMS_TABLE", defaultScopeItemsTableName),
		damagesTable: getenvDefault("DAMAGES_TABLE", defaultDamagesTableName),
	}
}

func (r *ScopeDynamoRepository) CreateItem(ctx context.Context, item entities.ScopeItem) (entities.ScopeItem, error) {
	av, err := attributevalue.MarshalMap(toScopeItemRow(item))
	if err != nil {
		return entities.ScopeItem{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.itemsTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ScopeItem{}, err
	}
	return item, nil
}

func (r *ScopeDynamoRepository) GetItemByID(ctx context.Context, id string) (entities.ScopeItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.itemsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ScopeItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.ScopeItem{}, nil
	}

	var row scopeItemRow
	if err := attributevalue.UnmarshalMap(out.Item, &row); err != nil {
		return entities.ScopeItem{}, err
	}
	return fromScopeItemRow(row), nil
}

func (r *ScopeDynamoRepository) ListItemsBySession(ctx context.Context, sessionID string) ([]entities.ScopeItem, error) {
	avs, err := querySessionIndex(ctx, r.ddb, r.itemsTable, sessionID)
	if err != nil {
		return nil, err
	}
	var rows []scopeItemRow
	if err := attributevalue.UnmarshalListOfMaps(avs, &rows); err != nil {
		return nil, err
	}
	items := make([]entities.ScopeItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, fromScopeItemRow(row))
	}
	return items, nil
}

func (r *ScopeDynamoRepository) UpdateItemQuantity(ctx context.Context, id string, quantity float64, dimensionWarning bool) (entities.ScopeItem, error) {
	return r.updateItem(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #quantity = :quantity, #dimension_warning = :dimension_warning, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":quantity":          &types.AttributeValueMemberN{Value: strconv.FormatFloat(quantity, 'f', -1, 64)},
			":dimension_warning": &types.AttributeValueMemberBOOL{Value: dimensionWarning},
			":updated_at":        &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#quantity":          "quantity",
			"#dimension_warning": "dimension_warning",
			"#updated_at":        "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ScopeDynamoRepository) UpdateItemStatus(ctx context.Context, id string, status entities.ScopeItemStatus) (entities.ScopeItem, error) {
	return r.updateItem(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ScopeDynamoRepository) updateItem(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.ScopeItem, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)
	names["#id"] = "id"

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.itemsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ScopeItem{}, nil
		}
		return entities.ScopeItem{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ScopeItem{}, nil
	}
	var row scopeItemRow
	if err := attributevalue.UnmarshalMap(out.Attributes, &row); err != nil {
		return entities.ScopeItem{}, err
	}
	return fromScopeItemRow(row), nil
}

func (r *ScopeDynamoRepository) CreateDamage(ctx context.Context, damage entities.DamageRecord) (entities.DamageRecord, error) {
	av, err := attributevalue.MarshalMap(toDamageRow(damage))
	if err != nil {
		return entities.DamageRecord{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.damagesTable),
		Item:      av,
	})
	if err != nil {
		return entities.DamageRecord{}, err
	}
	return damage, nil
}

func (r *ScopeDynamoRepository) ListDamagesBySession(ctx context.Context, sessionID string) ([]entities.DamageRecord, error) {
	avs, err := querySessionIndex(ctx, r.ddb, r.damagesTable, sessionID)
	if err != nil {
		return nil, err
	}
	var rows []damageRow
	if err := attributevalue.UnmarshalListOfMaps(avs, &rows); err != nil {
		return nil, err
	}
	damages := make([]entities.DamageRecord, 0, len(rows))
	for _, row := range rows {
		damages = append(damages, fromDamageRow(row))
	}
	return damages, nil
}

func toScopeItemRow(item entities.ScopeItem) scopeItemRow {
	return scopeItemRow{
		ID:                item.ID,
		SessionID:         item.SessionID,
		RoomID:            item.RoomID,
		DamageID:          item.DamageID,
		CatalogCode:       item.CatalogCode,
		Description:       item.Description,
		TradeCode:         string(item.TradeCode),
		Quantity:          item.Quantity,
		Unit:              string(item.Unit),
		Provenance:        string(item.Provenance),
		ParentScopeItemID: item.ParentScopeItemID,
		Status:            string(item.Status),
		DimensionWarning:  item.DimensionWarning,
		CreatedAt:         item.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         item.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromScopeItemRow(row scopeItemRow) entities.ScopeItem {
	createdAt, _ := time.Parse(time.RFC3339Nano, row.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, row.UpdatedAt)
	return entities.ScopeItem{
		ID:                row.ID,
		SessionID:         row.SessionID,
		RoomID:            row.RoomID,
		DamageID:          row.DamageID,
		CatalogCode:       row.CatalogCode,
		Description:       row.Description,
		TradeCode:         entities.TradeCode(row.TradeCode),
		Quantity:          row.Quantity,
		Unit:              entities.UnitOfMeasure(row.Unit),
		Provenance:        entities.Provenance(row.Provenance),
		ParentScopeItemID: row.ParentScopeItemID,
		Status:            entities.ScopeItemStatus(row.Status),
		DimensionWarning:  row.DimensionWarning,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}

func toDamageRow(d entities.DamageRecord) damageRow {
	return damageRow{
		ID:             d.ID,
		SessionID:      d.SessionID,
		RoomID:         d.RoomID,
		DamageType:     d.DamageType,
		Surface:        d.Surface,
		Severity:       d.Severity,
		AffectedAreaSF: d.AffectedAreaSF,
		Water:          d.Water,
		CreatedAt:      d.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromDamageRow(row damageRow) entities.DamageRecord {
	createdAt, _ := time.Parse(time.RFC3339Nano, row.CreatedAt)
	return entities.DamageRecord{
		ID:             row.ID,
		SessionID:      row.SessionID,
		RoomID:         row.RoomID,
		DamageType:     row.DamageType,
		Surface:        row.Surface,
		Severity:       row.Severity,
		AffectedAreaSF: row.AffectedAreaSF,
		Water:          row.Water,
		CreatedAt:      createdAt,
	}
}

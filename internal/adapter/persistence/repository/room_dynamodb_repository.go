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

const (
	defaultRoomsTableName = "rooms"
	sessionIndexName      = "session_id-index"
)

type roomRow struct {
	ID          string             `dynamodbav:"id"`
	SessionID   string             `dynamodbav:"session_id"`
	Name        string             `dynamodbav:"name"`
	RoomType    string             `dynamodbav:"room_type"`
	ZoneType    string             `dynamodbav:"zone_type"`
	Length      float64            `dynamodbav:"length"`
	Width       float64            `dynamodbav:"width"`
	Height      float64            `dynamodbav:"height"`
	Floor       string             `dynamodbav:"floor"`
	CeilingType string             `dynamodbav:"ceiling_type"`
	Openings    []entities.Opening `dynamodbav:"openings,omitempty"`
	CreatedAt   string             `dynamodbav:"created_at"`
	UpdatedAt   string             `dynamodbav:"updated_at"`
}

// RoomDynamoRepository persists Room geometry snapshots in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (session_id-index): session_id

type RoomDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRoomRepository = (*RoomDynamoRepository)(nil)

func NewRoomDynamoRepository(ddb *dynamodb.Client) *RoomDynamoRepository {
	return &RoomDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ROOMS_TABLE", defaultRoomsTableName),
	}
}

func (r *RoomDynamoRepository) Upsert(ctx context.Context, room entities.Room) (entities.Room, error) {
	av, err := attributevalue.MarshalMap(toRoomRow(room))
	if err != nil {
		return entities.Room{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Room{}, err
	}
	return room, nil
}

func (r *RoomDynamoRepository) GetByID(ctx context.Context, id string) (entities.Room, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Room{}, err
	}
	if len(out.Item) == 0 {
		return entities.Room{}, nil
	}

	var row roomRow
	if err := attributevalue.UnmarshalMap(out.Item, &row); err != nil {
		return entities.Room{}, err
	}
	return fromRoomRow(row), nil
}

func (r *RoomDynamoRepository) ListBySession(ctx context.Context, sessionID string) ([]entities.Room, error) {
	avs, err := querySessionIndex(ctx, r.ddb, r.tableName, sessionID)
	if err != nil {
		return nil, err
	}
	var rows []roomRow
	if err := attributevalue.UnmarshalListOfMaps(avs, &rows); err != nil {
		return nil, err
	}
	rooms := make([]entities.Room, 0, len(rows))
	for _, row := range rows {
		rooms = append(rooms, fromRoomRow(row))
	}
	return rooms, nil
}

func toRoomRow(room entities.Room) roomRow {
	return roomRow{
		ID:          room.ID,
		SessionID:   room.SessionID,
		Name:        room.Name,
		RoomType:    room.RoomType,
		ZoneType:    room.ZoneType,
		Length:      room.Length,
		Width:       room.Width,
		Height:      room.Height,
		Floor:       room.Floor,
		CeilingType: room.CeilingType,
		Openings:    room.Openings,
		CreatedAt:   room.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   room.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromRoomRow(row roomRow) entities.Room {
	createdAt, _ := time.Parse(time.RFC3339Nano, row.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, row.UpdatedAt)
	return entities.Room{
		ID:          row.ID,
		SessionID:   row.SessionID,
		Name:        row.Name,
		RoomType:    row.RoomType,
		ZoneType:    row.ZoneType,
		Length:      row.Length,
		Width:       row.Width,
		Height:      row.Height,
		Floor:       row.Floor,
		CeilingType: row.CeilingType,
		Openings:    row.Openings,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

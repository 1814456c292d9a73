package repository

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// querySessionIndex pages through the session_id-index GSI of a table and
// returns the raw attribute maps for the given session.
func querySessionIndex(ctx context.Context, ddb *dynamodb.Client, tableName, sessionID string) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue

	for {
		out, err := ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(tableName),
			IndexName:              aws.String(sessionIndexName),
			KeyConditionExpression: aws.String("#session_id = :session_id"),
			ExpressionAttributeNames: map[string]string{
				"#session_id": "session_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":session_id": &types.AttributeValueMemberS{Value: sessionID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

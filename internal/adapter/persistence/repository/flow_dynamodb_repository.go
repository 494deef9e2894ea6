package repository

import (
	"context"
	"time"

	"cloudpayments_bridge/internal/domain/entities"
	"cloudpayments_bridge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultFlowsTableName = "bridge_flows"

// ItemAPI is the subset of the DynamoDB client the repository needs.
type ItemAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

type flowItem struct {
	ID         string `dynamodbav:"id"`
	Kind       string `dynamodbav:"kind"`
	Status     string `dynamodbav:"status"`
	ErrorCode  string `dynamodbav:"error_code,omitempty"`
	StartedAt  string `dynamodbav:"started_at"`
	ResolvedAt string `dynamodbav:"resolved_at"`
	DurationMS int64  `dynamodbav:"duration_ms"`
}

// FlowDynamoRepository persists resolved flow records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type FlowDynamoRepository struct {
	ddb       ItemAPI
	tableName string
}

var _ interfaces.IFlowRepository = (*FlowDynamoRepository)(nil)

func NewFlowDynamoRepository(ddb ItemAPI, tableName string) *FlowDynamoRepository {
	if tableName == "" {
		tableName = DefaultFlowsTableName
	}
	return &FlowDynamoRepository{ddb: ddb, tableName: tableName}
}

// Record writes rec once; a second write for the same id is rejected by the
// condition expression.
func (r *FlowDynamoRepository) Record(ctx context.Context, rec entities.FlowRecord) error {
	av, err := attributevalue.MarshalMap(toFlowItem(rec))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func (r *FlowDynamoRepository) GetByID(ctx context.Context, id string) (entities.FlowRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FlowRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.FlowRecord{}, nil
	}

	var it flowItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FlowRecord{}, err
	}
	return fromFlowItem(it), nil
}

func toFlowItem(rec entities.FlowRecord) flowItem {
	return flowItem{
		ID:         rec.ID,
		Kind:       string(rec.Kind),
		Status:     string(rec.Status),
		ErrorCode:  rec.ErrorCode,
		StartedAt:  rec.StartedAt.UTC().Format(time.RFC3339Nano),
		ResolvedAt: rec.ResolvedAt.UTC().Format(time.RFC3339Nano),
		DurationMS: rec.ResolvedAt.Sub(rec.StartedAt).Milliseconds(),
	}
}

func fromFlowItem(it flowItem) entities.FlowRecord {
	started, _ := time.Parse(time.RFC3339Nano, it.StartedAt)
	resolved, _ := time.Parse(time.RFC3339Nano, it.ResolvedAt)
	return entities.FlowRecord{
		ID:         it.ID,
		Kind:       entities.FlowKind(it.Kind),
		Status:     entities.OutcomeStatus(it.Status),
		ErrorCode:  it.ErrorCode,
		StartedAt:  started,
		ResolvedAt: resolved,
	}
}

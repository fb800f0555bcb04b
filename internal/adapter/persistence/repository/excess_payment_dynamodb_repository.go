package repository

import (
	"context"
	"time"

	"vistoria_xpto/internal/domain/entities"
	"vistoria_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultExcessPaymentsTableName = "excess_payments"
	paymentsAssessmentIDIndex      = "assessment_id-index"
)

type excessPaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	AssessmentID       string                 `dynamodbav:"assessment_id"`
	Amount             float64                `dynamodbav:"amount"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// ExcessPaymentDynamoRepository persists ExcessPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: assessment_id-index (PK: assessment_id)

type ExcessPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IExcessPaymentRepository = (*ExcessPaymentDynamoRepository)(nil)

func NewExcessPaymentDynamoRepository(ddb *dynamodb.Client) *ExcessPaymentDynamoRepository {
	return &ExcessPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EXCESS_PAYMENTS_TABLE", defaultExcessPaymentsTableName),
	}
}

func (r *ExcessPaymentDynamoRepository) Create(ctx context.Context, p entities.ExcessPayment) (entities.ExcessPayment, error) {
	it := toExcessPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ExcessPayment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ExcessPayment{}, err
	}
	return p, nil
}

func (r *ExcessPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.ExcessPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ExcessPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.ExcessPayment{}, nil
	}

	var it excessPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ExcessPayment{}, err
	}
	return fromExcessPaymentItem(it), nil
}

func (r *ExcessPaymentDynamoRepository) ListByAssessmentID(ctx context.Context, assessmentID string) ([]entities.ExcessPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsAssessmentIDIndex),
		KeyConditionExpression: aws.String("assessment_id = :aid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":aid": &types.AttributeValueMemberS{Value: assessmentID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ExcessPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it excessPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromExcessPaymentItem(it))
	}
	return items, nil
}

func toExcessPaymentItem(p entities.ExcessPayment) excessPaymentItem {
	return excessPaymentItem{
		ID:                 p.ID,
		AssessmentID:       p.AssessmentID,
		Amount:             p.Amount,
		Date:               p.Date.UTC().Format(time.RFC3339Nano),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromExcessPaymentItem(it excessPaymentItem) entities.ExcessPayment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.ExcessPayment{
		ID:                 it.ID,
		AssessmentID:       it.AssessmentID,
		Amount:             it.Amount,
		Date:               dt,
		Status:             entities.PaymentStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}

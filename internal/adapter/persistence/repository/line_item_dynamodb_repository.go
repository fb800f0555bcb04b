package repository

import (
	"context"
	"errors"
	"time"

	"vistoria_xpto/internal/domain/entities"
	"vistoria_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEstimateLinesTableName   = "estimate_lines"
	defaultAdditionalLinesTableName = "additional_lines"
	linesAssessmentIDIndex          = "assessment_id-index"
)

type moneyItem struct {
	PartsNett      float64 `dynamodbav:"parts_nett"`
	PartsMarkedUp  float64 `dynamodbav:"parts_marked_up"`
	LabourNett     float64 `dynamodbav:"labour_nett"`
	LabourMarkedUp float64 `dynamodbav:"labour_marked_up"`
	PaintNett      float64 `dynamodbav:"paint_nett"`
	PaintMarkedUp  float64 `dynamodbav:"paint_marked_up"`
}

type estimateLineItem struct {
	ID           string    `dynamodbav:"id"`
	AssessmentID string    `dynamodbav:"assessment_id"`
	LineNumber   int       `dynamodbav:"line_number"`
	Description  string    `dynamodbav:"description"`
	Category     string    `dynamodbav:"category"`
	PartType     string    `dynamodbav:"part_type"`
	Amounts      moneyItem `dynamodbav:"amounts"`
	CreatedAt    string    `dynamodbav:"created_at"`
	UpdatedAt    string    `dynamodbav:"updated_at"`
}

type additionalLineItem struct {
	ID            string    `dynamodbav:"id"`
	AssessmentID  string    `dynamodbav:"assessment_id"`
	Action        string    `dynamodbav:"action"`
	Status        string    `dynamodbav:"status"`
	RemovesLineID string    `dynamodbav:"removes_line_id,omitempty"`
	Description   string    `dynamodbav:"description"`
	Category      string    `dynamodbav:"category"`
	PartType      string    `dynamodbav:"part_type"`
	Amounts       moneyItem `dynamodbav:"amounts"`
	CreatedAt     string    `dynamodbav:"created_at"`
	DecidedAt     string    `dynamodbav:"decided_at,omitempty"`
}

// LineItemDynamoRepository persists estimate lines and additionals in
// DynamoDB.
//
// Table requirements (both tables):
//   - PK: id (string)
//   - GSI: assessment_id-index (PK: assessment_id)

type LineItemDynamoRepository struct {
	ddb              *dynamodb.Client
	estimatesTable   string
	additionalsTable string
}

var _ interfaces.ILineItemRepository = (*LineItemDynamoRepository)(nil)

func NewLineItemDynamoRepository(ddb *dynamodb.Client) *LineItemDynamoRepository {
	return &LineItemDynamoRepository{
		ddb:              ddb,
		estimatesTable:   getenvDefault("ESTIMATE_LINES_TABLE", defaultEstimateLinesTableName),
		additionalsTable: getenvDefault("ADDITIONAL_LINES_TABLE", defaultAdditionalLinesTableName),
	}
}

func (r *LineItemDynamoRepository) CreateEstimateLine(ctx context.Context, l entities.EstimateLine) (entities.EstimateLine, error) {
	av, err := attributevalue.MarshalMap(toEstimateLineItem(l))
	if err != nil {
		return entities.EstimateLine{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.estimatesTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.EstimateLine{}, err
	}
	return l, nil
}

func (r *LineItemDynamoRepository) GetEstimateLineByID(ctx context.Context, id string) (entities.EstimateLine, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.estimatesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EstimateLine{}, err
	}
	if len(out.Item) == 0 {
		return entities.EstimateLine{}, nil
	}

	var it estimateLineItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.EstimateLine{}, err
	}
	return fromEstimateLineItem(it), nil
}

func (r *LineItemDynamoRepository) ListEstimateLines(ctx context.Context, assessmentID string) ([]entities.EstimateLine, error) {
	raws, err := r.queryByAssessment(ctx, r.estimatesTable, assessmentID)
	if err != nil {
		return nil, err
	}
	items := make([]entities.EstimateLine, 0, len(raws))
	for _, raw := range raws {
		var it estimateLineItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromEstimateLineItem(it))
	}
	return items, nil
}

func (r *LineItemDynamoRepository) CreateAdditionalLine(ctx context.Context, a entities.AdditionalLine) (entities.AdditionalLine, error) {
	av, err := attributevalue.MarshalMap(toAdditionalLineItem(a))
	if err != nil {
		return entities.AdditionalLine{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.additionalsTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.AdditionalLine{}, err
	}
	return a, nil
}

func (r *LineItemDynamoRepository) GetAdditionalLineByID(ctx context.Context, id string) (entities.AdditionalLine, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.additionalsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AdditionalLine{}, err
	}
	if len(out.Item) == 0 {
		return entities.AdditionalLine{}, nil
	}

	var it additionalLineItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AdditionalLine{}, err
	}
	return fromAdditionalLineItem(it), nil
}

func (r *LineItemDynamoRepository) ListAdditionalLines(ctx context.Context, assessmentID string) ([]entities.AdditionalLine, error) {
	raws, err := r.queryByAssessment(ctx, r.additionalsTable, assessmentID)
	if err != nil {
		return nil, err
	}
	items := make([]entities.AdditionalLine, 0, len(raws))
	for _, raw := range raws {
		var it additionalLineItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromAdditionalLineItem(it))
	}
	return items, nil
}

// UpdateAdditionalStatus is conditional on the stored status still being
// pending; the zero value signals the additional was already decided.
func (r *LineItemDynamoRepository) UpdateAdditionalStatus(ctx context.Context, id string, status entities.AdditionalStatus) (entities.AdditionalLine, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.additionalsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :status, #decided_at = :decided_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#decided_at": "decided_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":    &types.AttributeValueMemberS{Value: string(entities.AdditionalStatusPending)},
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":decided_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.AdditionalLine{}, nil
		}
		return entities.AdditionalLine{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.AdditionalLine{}, nil
	}
	var it additionalLineItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.AdditionalLine{}, err
	}
	return fromAdditionalLineItem(it), nil
}

func (r *LineItemDynamoRepository) queryByAssessment(ctx context.Context, table, assessmentID string) ([]map[string]types.AttributeValue, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(table),
		IndexName:              aws.String(linesAssessmentIDIndex),
		KeyConditionExpression: aws.String("assessment_id = :aid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":aid": &types.AttributeValueMemberS{Value: assessmentID},
		},
	}

	raws := make([]map[string]types.AttributeValue, 0)
	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		raws = append(raws, out.Items...)
		if out.LastEvaluatedKey == nil {
			return raws, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func toMoneyItem(m entities.MoneyBreakdown) moneyItem {
	return moneyItem(m)
}

func fromMoneyItem(it moneyItem) entities.MoneyBreakdown {
	return entities.MoneyBreakdown(it)
}

func toEstimateLineItem(l entities.EstimateLine) estimateLineItem {
	return estimateLineItem{
		ID:           l.ID,
		AssessmentID: l.AssessmentID,
		LineNumber:   l.LineNumber,
		Description:  l.Description,
		Category:     l.Category,
		PartType:     l.PartType,
		Amounts:      toMoneyItem(l.Amounts),
		CreatedAt:    l.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    l.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEstimateLineItem(it estimateLineItem) entities.EstimateLine {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.EstimateLine{
		ID:           it.ID,
		AssessmentID: it.AssessmentID,
		LineNumber:   it.LineNumber,
		Description:  it.Description,
		Category:     it.Category,
		PartType:     it.PartType,
		Amounts:      fromMoneyItem(it.Amounts),
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

func toAdditionalLineItem(a entities.AdditionalLine) additionalLineItem {
	it := additionalLineItem{
		ID:            a.ID,
		AssessmentID:  a.AssessmentID,
		Action:        string(a.Action),
		Status:        string(a.Status),
		RemovesLineID: a.RemovesLineID,
		Description:   a.Description,
		Category:      a.Category,
		PartType:      a.PartType,
		Amounts:       toMoneyItem(a.Amounts),
		CreatedAt:     a.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if !a.DecidedAt.IsZero() {
		it.DecidedAt = a.DecidedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromAdditionalLineItem(it additionalLineItem) entities.AdditionalLine {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	a := entities.AdditionalLine{
		ID:            it.ID,
		AssessmentID:  it.AssessmentID,
		Action:        entities.AdditionalAction(it.Action),
		Status:        entities.AdditionalStatus(it.Status),
		RemovesLineID: it.RemovesLineID,
		Description:   it.Description,
		Category:      it.Category,
		PartType:      it.PartType,
		Amounts:       fromMoneyItem(it.Amounts),
		CreatedAt:     createdAt,
	}
	if it.DecidedAt != "" {
		a.DecidedAt, _ = time.Parse(time.RFC3339Nano, it.DecidedAt)
	}
	return a
}

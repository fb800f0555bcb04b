package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"vistoria_xpto/internal/domain/entities"
	"vistoria_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAssessmentsTableName = "assessments"
	assessmentsStageIndex       = "stage-index"
	intakeClaimPrefix           = "intake#"
)

type assessmentItem struct {
	ID           string `dynamodbav:"id"`
	CaseNumber   string `dynamodbav:"case_number"`
	IntakeID     string `dynamodbav:"intake_id"`
	SchedulingID string `dynamodbav:"scheduling_id,omitempty"`
	Stage        string `dynamodbav:"stage"`
	Version      int64  `dynamodbav:"version"`
	CancelReason string `dynamodbav:"cancel_reason,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// AssessmentDynamoRepository persists Assessment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: stage-index (PK: stage)
//
// One assessment per intake event is enforced by a guard item with PK
// "intake#<intake_id>", written with attribute_not_exists before the
// assessment record itself.
//
// All stage/link writes are conditional on the stored version matching the
// version the caller read, and bump it by one.

type AssessmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAssessmentRepository = (*AssessmentDynamoRepository)(nil)

func NewAssessmentDynamoRepository(ddb *dynamodb.Client) *AssessmentDynamoRepository {
	return &AssessmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ASSESSMENTS_TABLE", defaultAssessmentsTableName),
	}
}

func (r *AssessmentDynamoRepository) Create(ctx context.Context, a entities.Assessment) (entities.Assessment, error) {
	it := toAssessmentItem(a)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Assessment{}, err
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
		return entities.Assessment{}, err
	}
	return a, nil
}

func (r *AssessmentDynamoRepository) ClaimIntake(ctx context.Context, intakeID, assessmentID string) error {
	_, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item: map[string]types.AttributeValue{
			"id":            &types.AttributeValueMemberS{Value: intakeClaimPrefix + intakeID},
			"assessment_id": &types.AttributeValueMemberS{Value: assessmentID},
			"created_at":    &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return interfaces.ErrIntakeAlreadyClaimed
		}
		return err
	}
	return nil
}

func (r *AssessmentDynamoRepository) ReleaseIntake(ctx context.Context, intakeID, assessmentID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: intakeClaimPrefix + intakeID},
		},
		ConditionExpression: aws.String("#assessment_id = :assessment_id"),
		ExpressionAttributeNames: map[string]string{
			"#assessment_id": "assessment_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":assessment_id": &types.AttributeValueMemberS{Value: assessmentID},
		},
	})
	if err != nil {
		// A failed condition means the guard is absent or held by another
		// assessment; either way it is not ours to remove.
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}

func (r *AssessmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Assessment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Assessment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Assessment{}, nil
	}

	var it assessmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Assessment{}, err
	}
	return fromAssessmentItem(it), nil
}

func (r *AssessmentDynamoRepository) UpdateStage(ctx context.Context, id string, stage entities.AssessmentStage, reason string, expectedVersion int64) (entities.Assessment, error) {
	expr := "SET #stage = :stage, #version = :new_version, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":stage":       &types.AttributeValueMemberS{Value: string(stage)},
		":new_version": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion+1, 10)},
		":expected":    &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		":updated_at":  &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
	}
	names := map[string]string{
		"#stage":      "stage",
		"#version":    "version",
		"#updated_at": "updated_at",
	}
	if reason != "" {
		expr += ", #cancel_reason = :cancel_reason"
		names["#cancel_reason"] = "cancel_reason"
		vals[":cancel_reason"] = &types.AttributeValueMemberS{Value: reason}
	}
	return r.casUpdate(ctx, id, expr, vals, names)
}

func (r *AssessmentDynamoRepository) LinkScheduling(ctx context.Context, id, schedulingID string, expectedVersion int64) (entities.Assessment, error) {
	expr := "SET #scheduling_id = :scheduling_id, #version = :new_version, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":scheduling_id": &types.AttributeValueMemberS{Value: schedulingID},
		":new_version":   &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion+1, 10)},
		":expected":      &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		":updated_at":    &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
	}
	names := map[string]string{
		"#scheduling_id": "scheduling_id",
		"#version":       "version",
		"#updated_at":    "updated_at",
	}
	return r.casUpdate(ctx, id, expr, vals, names)
}

func (r *AssessmentDynamoRepository) casUpdate(
	ctx context.Context,
	id, updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Assessment, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #version = :expected"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Assessment{}, interfaces.ErrVersionConflict
		}
		return entities.Assessment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Assessment{}, nil
	}
	var it assessmentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Assessment{}, err
	}
	return fromAssessmentItem(it), nil
}

// stageQueryInput builds the query both lists and counts run. Keeping one
// builder guarantees a badge count can never use a different predicate than
// its paired list.
func (r *AssessmentDynamoRepository) stageQueryInput(stage entities.AssessmentStage, onlyScheduled bool) *dynamodb.QueryInput {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(assessmentsStageIndex),
		KeyConditionExpression: aws.String("#stage = :stage"),
		ExpressionAttributeNames: map[string]string{
			"#stage": "stage",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":stage": &types.AttributeValueMemberS{Value: string(stage)},
		},
	}
	if onlyScheduled {
		in.FilterExpression = aws.String("attribute_exists(#scheduling_id) AND #scheduling_id <> :empty")
		in.ExpressionAttributeNames["#scheduling_id"] = "scheduling_id"
		in.ExpressionAttributeValues[":empty"] = &types.AttributeValueMemberS{Value: ""}
	}
	return in
}

func (r *AssessmentDynamoRepository) ListByStage(ctx context.Context, stage entities.AssessmentStage, onlyScheduled bool) ([]entities.Assessment, error) {
	in := r.stageQueryInput(stage, onlyScheduled)

	items := make([]entities.Assessment, 0)
	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it assessmentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromAssessmentItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return items, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (r *AssessmentDynamoRepository) CountByStage(ctx context.Context, stage entities.AssessmentStage, onlyScheduled bool) (int, error) {
	in := r.stageQueryInput(stage, onlyScheduled)
	in.Select = types.SelectCount

	total := 0
	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return 0, err
		}
		total += int(out.Count)
		if out.LastEvaluatedKey == nil {
			return total, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (r *AssessmentDynamoRepository) CountByStages(ctx context.Context, stages []entities.AssessmentStage, onlyScheduled bool) (int, error) {
	total := 0
	for _, s := range stages {
		n, err := r.CountByStage(ctx, s, onlyScheduled)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

func toAssessmentItem(a entities.Assessment) assessmentItem {
	return assessmentItem{
		ID:           a.ID,
		CaseNumber:   a.CaseNumber,
		IntakeID:     a.IntakeID,
		SchedulingID: a.SchedulingID,
		Stage:        string(a.Stage),
		Version:      a.Version,
		CreatedAt:    a.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    a.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAssessmentItem(it assessmentItem) entities.Assessment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Assessment{
		ID:           it.ID,
		CaseNumber:   it.CaseNumber,
		IntakeID:     it.IntakeID,
		SchedulingID: it.SchedulingID,
		Stage:        entities.AssessmentStage(it.Stage),
		Version:      it.Version,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

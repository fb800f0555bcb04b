package repository

import (
	"context"
	"encoding/json"
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

const defaultFRCSnapshotsTableName = "frc_snapshots"

type frcSnapshotItem struct {
	AssessmentID string  `dynamodbav:"assessment_id"`
	Lines        string  `dynamodbav:"lines"`
	Subtotals    string  `dynamodbav:"subtotals"`
	GrandTotal   float64 `dynamodbav:"grand_total"`
	Version      int64   `dynamodbav:"version"`
	Locked       bool    `dynamodbav:"locked"`
	MergedAt     string  `dynamodbav:"merged_at"`
}

// FRCSnapshotDynamoRepository persists FRC snapshots in DynamoDB.
//
// Table requirements:
//   - PK: assessment_id (string)
//
// The line set travels as one JSON blob: the snapshot is the unit of
// optimistic concurrency, versioned by a single counter. Every write is
// conditional on that counter and bumps it by one; the first write is
// conditional on the snapshot not existing yet.

type FRCSnapshotDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFRCRepository = (*FRCSnapshotDynamoRepository)(nil)

func NewFRCSnapshotDynamoRepository(ddb *dynamodb.Client) *FRCSnapshotDynamoRepository {
	return &FRCSnapshotDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FRC_SNAPSHOTS_TABLE", defaultFRCSnapshotsTableName),
	}
}

func (r *FRCSnapshotDynamoRepository) Get(ctx context.Context, assessmentID string) (entities.FRCSnapshot, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"assessment_id": &types.AttributeValueMemberS{Value: assessmentID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FRCSnapshot{}, err
	}
	if len(out.Item) == 0 {
		return entities.FRCSnapshot{}, nil
	}

	var it frcSnapshotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FRCSnapshot{}, err
	}
	return fromFRCSnapshotItem(it)
}

func (r *FRCSnapshotDynamoRepository) Write(ctx context.Context, snap entities.FRCSnapshot, expectedVersion int64) (entities.FRCSnapshot, error) {
	snap.Version = expectedVersion + 1
	it, err := toFRCSnapshotItem(snap)
	if err != nil {
		return entities.FRCSnapshot{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.FRCSnapshot{}, err
	}

	in := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}
	if expectedVersion == 0 {
		in.ConditionExpression = aws.String("attribute_not_exists(#aid)")
		in.ExpressionAttributeNames = map[string]string{"#aid": "assessment_id"}
	} else {
		in.ConditionExpression = aws.String("#version = :expected")
		in.ExpressionAttributeNames = map[string]string{"#version": "version"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		}
	}

	_, err = r.ddb.PutItem(ctx, in)
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.FRCSnapshot{}, interfaces.ErrVersionConflict
		}
		return entities.FRCSnapshot{}, err
	}
	return snap, nil
}

func toFRCSnapshotItem(s entities.FRCSnapshot) (frcSnapshotItem, error) {
	lines, err := json.Marshal(s.Lines)
	if err != nil {
		return frcSnapshotItem{}, err
	}
	subtotals, err := json.Marshal(s.SubtotalByCategory)
	if err != nil {
		return frcSnapshotItem{}, err
	}
	return frcSnapshotItem{
		AssessmentID: s.AssessmentID,
		Lines:        string(lines),
		Subtotals:    string(subtotals),
		GrandTotal:   s.GrandTotal,
		Version:      s.Version,
		Locked:       s.Locked,
		MergedAt:     s.MergedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromFRCSnapshotItem(it frcSnapshotItem) (entities.FRCSnapshot, error) {
	s := entities.FRCSnapshot{
		AssessmentID: it.AssessmentID,
		GrandTotal:   it.GrandTotal,
		Version:      it.Version,
		Locked:       it.Locked,
	}
	if err := json.Unmarshal([]byte(it.Lines), &s.Lines); err != nil {
		return entities.FRCSnapshot{}, err
	}
	if it.Subtotals != "" {
		if err := json.Unmarshal([]byte(it.Subtotals), &s.SubtotalByCategory); err != nil {
			return entities.FRCSnapshot{}, err
		}
	}
	s.MergedAt, _ = time.Parse(time.RFC3339Nano, it.MergedAt)
	return s, nil
}

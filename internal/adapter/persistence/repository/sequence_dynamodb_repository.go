package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"vistoria_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCaseNumbersTableName = "case_numbers"
	caseNumbersCategoryIndex    = "category_year-index"
)

// SequenceDynamoRepository persists issued case numbers in DynamoDB.
//
// Table requirements:
//   - PK: id = "<category>#<year>#<number>" (string)
//   - GSI: category_year-index (PK: category_year)
//
// The primary-key conditional put is the uniqueness constraint: two writers
// racing for the same number see exactly one succeed.

type SequenceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISequenceRepository = (*SequenceDynamoRepository)(nil)

func NewSequenceDynamoRepository(ddb *dynamodb.Client) *SequenceDynamoRepository {
	return &SequenceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CASE_NUMBERS_TABLE", defaultCaseNumbersTableName),
	}
}

func (r *SequenceDynamoRepository) CountIssued(ctx context.Context, category string, year int) (int, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(caseNumbersCategoryIndex),
		KeyConditionExpression: aws.String("category_year = :cy"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cy": &types.AttributeValueMemberS{Value: categoryYearKey(category, year)},
		},
		Select: types.SelectCount,
	}

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

func (r *SequenceDynamoRepository) Claim(ctx context.Context, category string, year, number int, formatted string) error {
	_, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item: map[string]types.AttributeValue{
			"id":            &types.AttributeValueMemberS{Value: numberKey(category, year, number)},
			"category_year": &types.AttributeValueMemberS{Value: categoryYearKey(category, year)},
			"number":        &types.AttributeValueMemberN{Value: strconv.Itoa(number)},
			"formatted":     &types.AttributeValueMemberS{Value: formatted},
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
			return interfaces.ErrNumberTaken
		}
		return err
	}
	return nil
}

func categoryYearKey(category string, year int) string {
	return fmt.Sprintf("%s#%d", category, year)
}

func numberKey(category string, year, number int) string {
	return fmt.Sprintf("%s#%d#%d", category, year, number)
}

package repository

import (
	"context"
	"time"

	"vistoria_xpto/internal/domain/entities"
	"vistoria_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultAuditLogTableName = "audit_log"

type auditEntryItem struct {
	ID        string            `dynamodbav:"id"`
	EntityKey string            `dynamodbav:"entity_key"`
	EntityID  string            `dynamodbav:"entity_id"`
	Action    string            `dynamodbav:"action"`
	OldValue  string            `dynamodbav:"old_value,omitempty"`
	NewValue  string            `dynamodbav:"new_value,omitempty"`
	Metadata  map[string]string `dynamodbav:"metadata,omitempty"`
	At        string            `dynamodbav:"at"`
}

// AuditDynamoRepository appends immutable change records to DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: entity-index (PK: entity_key = "<entity_type>#<entity_id>")
//
// Entries are append-only; there is no update or delete path.

type AuditDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAuditSink = (*AuditDynamoRepository)(nil)

func NewAuditDynamoRepository(ddb *dynamodb.Client) *AuditDynamoRepository {
	return &AuditDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AUDIT_LOG_TABLE", defaultAuditLogTableName),
	}
}

func (r *AuditDynamoRepository) Append(ctx context.Context, e entities.AuditEntry) error {
	it := auditEntryItem{
		ID:        e.ID,
		EntityKey: e.EntityType + "#" + e.EntityID,
		EntityID:  e.EntityID,
		Action:    e.Action,
		OldValue:  e.OldValue,
		NewValue:  e.NewValue,
		Metadata:  e.Metadata,
		At:        e.At.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

package repository

import (
	"context"

	"autoflow/internal/domain/entities"
	"autoflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDocumentsTableName = "documents"

type documentItem struct {
	ID          string `dynamodbav:"id"`
	FileName    string `dynamodbav:"file_name"`
	StoragePath string `dynamodbav:"storage_path"`
	SizeBytes   int64  `dynamodbav:"size_bytes"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// DocumentDynamoRepository persists GeneratedDocument entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type DocumentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDocumentRepository = (*DocumentDynamoRepository)(nil)

func NewDocumentDynamoRepository(ddb *dynamodb.Client) *DocumentDynamoRepository {
	return &DocumentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DOCUMENTS_TABLE", defaultDocumentsTableName),
	}
}

func (r *DocumentDynamoRepository) Save(ctx context.Context, d entities.GeneratedDocument) (entities.GeneratedDocument, error) {
	it := toDocumentItem(d)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.GeneratedDocument{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.GeneratedDocument{}, err
	}
	return d, nil
}

func (r *DocumentDynamoRepository) GetByID(ctx context.Context, id string) (entities.GeneratedDocument, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.GeneratedDocument{}, err
	}
	if len(out.Item) == 0 {
		return entities.GeneratedDocument{}, nil
	}

	var it documentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.GeneratedDocument{}, err
	}
	return fromDocumentItem(it), nil
}

func (r *DocumentDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toDocumentItem(d entities.GeneratedDocument) documentItem {
	return documentItem{
		ID:          d.ID,
		FileName:    d.FileName,
		StoragePath: d.StoragePath,
		SizeBytes:   d.SizeBytes,
		CreatedAt:   timeToString(d.CreatedAt),
		UpdatedAt:   timeToString(d.UpdatedAt),
	}
}

func fromDocumentItem(it documentItem) entities.GeneratedDocument {
	return entities.GeneratedDocument{
		ID:          it.ID,
		FileName:    it.FileName,
		StoragePath: it.StoragePath,
		SizeBytes:   it.SizeBytes,
		CreatedAt:   timeFromString(it.CreatedAt),
		UpdatedAt:   timeFromString(it.UpdatedAt),
	}
}

package repository

import (
	"context"
	"errors"

	"autoflow/internal/domain/entities"
	"autoflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProposalsTableName   = "proposals"
	proposalsCustomerIDIndex    = "customer_id-index"
	proposalsSalespersonIDIndex = "salesperson_id-index"
)

type proposalItem struct {
	ID              string `dynamodbav:"id"`
	CustomerID      string `dynamodbav:"customer_id"`
	SalespersonID   string `dynamodbav:"salesperson_id,omitempty"`
	ConfigurationID string `dynamodbav:"configuration_id"`
	ProposedPrice   string `dynamodbav:"proposed_price"`
	Status          string `dynamodbav:"status"`
	CustomerNotes   string `dynamodbav:"customer_notes,omitempty"`
	InternalNotes   string `dynamodbav:"internal_notes,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	ExpiresAt       string `dynamodbav:"expires_at,omitempty"`
}

// ProposalDynamoRepository persists Proposal entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)
//   - GSI: salesperson_id-index (PK: salesperson_id)

type ProposalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb *dynamodb.Client) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROPOSALS_TABLE", defaultProposalsTableName),
	}
}

func (r *ProposalDynamoRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	it := toProposalItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Proposal{}, err
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
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func (r *ProposalDynamoRepository) List(ctx context.Context) ([]entities.Proposal, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalProposals(out.Items)
}

func (r *ProposalDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Proposal, error) {
	return r.queryIndex(ctx, proposalsCustomerIDIndex, "customer_id = :v", customerID)
}

func (r *ProposalDynamoRepository) ListBySalespersonID(ctx context.Context, salespersonID string) ([]entities.Proposal, error) {
	return r.queryIndex(ctx, proposalsSalespersonIDIndex, "salesperson_id = :v", salespersonID)
}

func (r *ProposalDynamoRepository) queryIndex(ctx context.Context, index, keyCond, value string) ([]entities.Proposal, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyCond),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalProposals(out.Items)
}

func (r *ProposalDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ProposalStatus) (entities.Proposal, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Proposal{}, nil
		}
		return entities.Proposal{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Proposal{}, nil
	}
	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func (r *ProposalDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *ProposalDynamoRepository) Count(ctx context.Context) (int64, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Select:    types.SelectCount,
	})
	if err != nil {
		return 0, err
	}
	return int64(out.Count), nil
}

func (r *ProposalDynamoRepository) CountByStatus(ctx context.Context, status entities.ProposalStatus) (int64, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		Select:           types.SelectCount,
		FilterExpression: aws.String("#status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
	})
	if err != nil {
		return 0, err
	}
	return int64(out.Count), nil
}

func unmarshalProposals(raw []map[string]types.AttributeValue) ([]entities.Proposal, error) {
	items := make([]entities.Proposal, 0, len(raw))
	for _, m := range raw {
		var it proposalItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromProposalItem(it))
	}
	return items, nil
}

func toProposalItem(p entities.Proposal) proposalItem {
	return proposalItem{
		ID:              p.ID,
		CustomerID:      p.CustomerID,
		SalespersonID:   p.SalespersonID,
		ConfigurationID: p.ConfigurationID,
		ProposedPrice:   decimalToString(p.ProposedPrice),
		Status:          string(p.Status),
		CustomerNotes:   p.CustomerNotes,
		InternalNotes:   p.InternalNotes,
		CreatedAt:       timeToString(p.CreatedAt),
		ExpiresAt:       timePtrToString(p.ExpiresAt),
	}
}

func fromProposalItem(it proposalItem) entities.Proposal {
	return entities.Proposal{
		ID:              it.ID,
		CustomerID:      it.CustomerID,
		SalespersonID:   it.SalespersonID,
		ConfigurationID: it.ConfigurationID,
		ProposedPrice:   decimalFromString(it.ProposedPrice),
		Status:          entities.ProposalStatus(it.Status),
		CustomerNotes:   it.CustomerNotes,
		InternalNotes:   it.InternalNotes,
		CreatedAt:       timeFromString(it.CreatedAt),
		ExpiresAt:       timePtrFromString(it.ExpiresAt),
	}
}

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

const (
	defaultConfigurationsTableName = "configurations"
	configurationsCustomerIDIndex  = "customer_id-index"
)

type configurationItem struct {
	ID         string         `dynamodbav:"id"`
	CustomerID string         `dynamodbav:"customer_id"`
	VehicleID  string         `dynamodbav:"vehicle_id"`
	Optionals  []optionalItem `dynamodbav:"optionals,omitempty"`
	BasePrice  string         `dynamodbav:"base_price"`
	TotalPrice string         `dynamodbav:"total_price"`
	Notes      string         `dynamodbav:"notes,omitempty"`
	CreatedAt  string         `dynamodbav:"created_at"`
	UpdatedAt  string         `dynamodbav:"updated_at"`
}

// ConfigurationDynamoRepository persists Configuration entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)
//
// Selected optionals are embedded as a snapshot; later catalog edits never
// change an existing configuration.

type ConfigurationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IConfigurationRepository = (*ConfigurationDynamoRepository)(nil)

func NewConfigurationDynamoRepository(ddb *dynamodb.Client) *ConfigurationDynamoRepository {
	return &ConfigurationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONFIGURATIONS_TABLE", defaultConfigurationsTableName),
	}
}

func (r *ConfigurationDynamoRepository) Create(ctx context.Context, c entities.Configuration) (entities.Configuration, error) {
	it := toConfigurationItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Configuration{}, err
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
		return entities.Configuration{}, err
	}
	return c, nil
}

func (r *ConfigurationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Configuration, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Configuration{}, err
	}
	if len(out.Item) == 0 {
		return entities.Configuration{}, nil
	}

	var it configurationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Configuration{}, err
	}
	return fromConfigurationItem(it), nil
}

func (r *ConfigurationDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Configuration, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(configurationsCustomerIDIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Configuration, 0, len(out.Items))
	for _, raw := range out.Items {
		var it configurationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromConfigurationItem(it))
	}
	return items, nil
}

func (r *ConfigurationDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toConfigurationItem(c entities.Configuration) configurationItem {
	opts := make([]optionalItem, 0, len(c.Optionals))
	for _, o := range c.Optionals {
		opts = append(opts, toOptionalItem(o))
	}
	return configurationItem{
		ID:         c.ID,
		CustomerID: c.CustomerID,
		VehicleID:  c.VehicleID,
		Optionals:  opts,
		BasePrice:  decimalToString(c.BasePrice),
		TotalPrice: decimalToString(c.TotalPrice),
		Notes:      c.Notes,
		CreatedAt:  timeToString(c.CreatedAt),
		UpdatedAt:  timeToString(c.UpdatedAt),
	}
}

func fromConfigurationItem(it configurationItem) entities.Configuration {
	opts := make([]entities.OptionalAccessory, 0, len(it.Optionals))
	for _, o := range it.Optionals {
		opts = append(opts, fromOptionalItem(o))
	}
	return entities.Configuration{
		ID:         it.ID,
		CustomerID: it.CustomerID,
		VehicleID:  it.VehicleID,
		Optionals:  opts,
		BasePrice:  decimalFromString(it.BasePrice),
		TotalPrice: decimalFromString(it.TotalPrice),
		Notes:      it.Notes,
		CreatedAt:  timeFromString(it.CreatedAt),
		UpdatedAt:  timeFromString(it.UpdatedAt),
	}
}

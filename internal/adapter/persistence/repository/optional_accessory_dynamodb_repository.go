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

const defaultOptionalsTableName = "optionals"

type optionalItem struct {
	ID          string `dynamodbav:"id"`
	Code        string `dynamodbav:"code"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description,omitempty"`
	Price       string `dynamodbav:"price"`
}

// OptionalAccessoryDynamoRepository persists the optional-accessory
// catalog in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type OptionalAccessoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOptionalAccessoryRepository = (*OptionalAccessoryDynamoRepository)(nil)

func NewOptionalAccessoryDynamoRepository(ddb *dynamodb.Client) *OptionalAccessoryDynamoRepository {
	return &OptionalAccessoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("OPTIONALS_TABLE", defaultOptionalsTableName),
	}
}

func (r *OptionalAccessoryDynamoRepository) Create(ctx context.Context, o entities.OptionalAccessory) (entities.OptionalAccessory, error) {
	it := toOptionalItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.OptionalAccessory{}, err
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
		return entities.OptionalAccessory{}, err
	}
	return o, nil
}

func (r *OptionalAccessoryDynamoRepository) GetByID(ctx context.Context, id string) (entities.OptionalAccessory, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.OptionalAccessory{}, err
	}
	if len(out.Item) == 0 {
		return entities.OptionalAccessory{}, nil
	}

	var it optionalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.OptionalAccessory{}, err
	}
	return fromOptionalItem(it), nil
}

func (r *OptionalAccessoryDynamoRepository) List(ctx context.Context) ([]entities.OptionalAccessory, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.OptionalAccessory, 0, len(out.Items))
	for _, raw := range out.Items {
		var it optionalItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromOptionalItem(it))
	}
	return items, nil
}

func (r *OptionalAccessoryDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toOptionalItem(o entities.OptionalAccessory) optionalItem {
	return optionalItem{
		ID:          o.ID,
		Code:        o.Code,
		Name:        o.Name,
		Description: o.Description,
		Price:       decimalToString(o.Price),
	}
}

func fromOptionalItem(it optionalItem) entities.OptionalAccessory {
	return entities.OptionalAccessory{
		ID:          it.ID,
		Code:        it.Code,
		Name:        it.Name,
		Description: it.Description,
		Price:       decimalFromString(it.Price),
	}
}

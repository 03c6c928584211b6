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
	defaultSalespeopleTableName = "salespeople"
	salespeopleUsernameIndex    = "username-index"
)

type salespersonItem struct {
	ID          string `dynamodbav:"id"`
	Username    string `dynamodbav:"username"`
	Password    string `dynamodbav:"password"`
	Active      bool   `dynamodbav:"active"`
	FirstName   string `dynamodbav:"first_name,omitempty"`
	LastName    string `dynamodbav:"last_name,omitempty"`
	EmployeeRef string `dynamodbav:"employee_ref,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// SalespersonDynamoRepository persists Salesperson entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: username-index (PK: username)

type SalespersonDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISalespersonRepository = (*SalespersonDynamoRepository)(nil)

func NewSalespersonDynamoRepository(ddb *dynamodb.Client) *SalespersonDynamoRepository {
	return &SalespersonDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SALESPEOPLE_TABLE", defaultSalespeopleTableName),
	}
}

func (r *SalespersonDynamoRepository) Create(ctx context.Context, s entities.Salesperson) (entities.Salesperson, error) {
	it := toSalespersonItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Salesperson{}, err
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
		return entities.Salesperson{}, err
	}
	return s, nil
}

func (r *SalespersonDynamoRepository) GetByID(ctx context.Context, id string) (entities.Salesperson, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Salesperson{}, err
	}
	if len(out.Item) == 0 {
		return entities.Salesperson{}, nil
	}

	var it salespersonItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Salesperson{}, err
	}
	return fromSalespersonItem(it), nil
}

func (r *SalespersonDynamoRepository) GetByUsername(ctx context.Context, username string) (entities.Salesperson, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(salespeopleUsernameIndex),
		KeyConditionExpression: aws.String("username = :u"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":u": &types.AttributeValueMemberS{Value: username},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Salesperson{}, err
	}
	if len(out.Items) == 0 {
		return entities.Salesperson{}, nil
	}

	var it salespersonItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Salesperson{}, err
	}
	return fromSalespersonItem(it), nil
}

func (r *SalespersonDynamoRepository) List(ctx context.Context) ([]entities.Salesperson, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Salesperson, 0, len(out.Items))
	for _, raw := range out.Items {
		var it salespersonItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromSalespersonItem(it))
	}
	return items, nil
}

func (r *SalespersonDynamoRepository) Update(ctx context.Context, s entities.Salesperson) (entities.Salesperson, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: s.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression: aws.String(
			"SET #active = :active, #first_name = :first_name, #last_name = :last_name, " +
				"#employee_ref = :employee_ref, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active":       &types.AttributeValueMemberBOOL{Value: s.Active},
			":first_name":   &types.AttributeValueMemberS{Value: s.FirstName},
			":last_name":    &types.AttributeValueMemberS{Value: s.LastName},
			":employee_ref": &types.AttributeValueMemberS{Value: s.EmployeeRef},
			":updated_at":   &types.AttributeValueMemberS{Value: timeToString(s.UpdatedAt)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#active":       "active",
			"#first_name":   "first_name",
			"#last_name":    "last_name",
			"#employee_ref": "employee_ref",
			"#updated_at":   "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Salesperson{}, nil
		}
		return entities.Salesperson{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Salesperson{}, nil
	}
	var it salespersonItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Salesperson{}, err
	}
	return fromSalespersonItem(it), nil
}

func (r *SalespersonDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toSalespersonItem(s entities.Salesperson) salespersonItem {
	return salespersonItem{
		ID:          s.ID,
		Username:    s.Username,
		Password:    s.Password,
		Active:      s.Active,
		FirstName:   s.FirstName,
		LastName:    s.LastName,
		EmployeeRef: s.EmployeeRef,
		CreatedAt:   timeToString(s.CreatedAt),
		UpdatedAt:   timeToString(s.UpdatedAt),
	}
}

func fromSalespersonItem(it salespersonItem) entities.Salesperson {
	return entities.Salesperson{
		ID:          it.ID,
		Username:    it.Username,
		Password:    it.Password,
		Active:      it.Active,
		FirstName:   it.FirstName,
		LastName:    it.LastName,
		EmployeeRef: it.EmployeeRef,
		CreatedAt:   timeFromString(it.CreatedAt),
		UpdatedAt:   timeFromString(it.UpdatedAt),
	}
}

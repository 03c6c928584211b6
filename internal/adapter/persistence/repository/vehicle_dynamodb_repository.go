package repository

import (
	"context"
	"errors"
	"time"

	"autoflow/internal/domain/entities"
	"autoflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultVehiclesTableName = "vehicles"

type vehicleItem struct {
	ID            string `dynamodbav:"id"`
	Make          string `dynamodbav:"make"`
	Model         string `dynamodbav:"model"`
	Year          int    `dynamodbav:"year,omitempty"`
	Plate         string `dynamodbav:"plate,omitempty"`
	VIN           string `dynamodbav:"vin,omitempty"`
	BasePrice     string `dynamodbav:"base_price"`
	Mileage       int    `dynamodbav:"mileage,omitempty"`
	Fuel          string `dynamodbav:"fuel,omitempty"`
	Transmission  string `dynamodbav:"transmission,omitempty"`
	Color         string `dynamodbav:"color,omitempty"`
	Status        string `dynamodbav:"status"`
	PublicVisible bool   `dynamodbav:"public_visible"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// VehicleDynamoRepository persists Vehicle entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type VehicleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVehicleRepository = (*VehicleDynamoRepository)(nil)

func NewVehicleDynamoRepository(ddb *dynamodb.Client) *VehicleDynamoRepository {
	return &VehicleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VEHICLES_TABLE", defaultVehiclesTableName),
	}
}

func (r *VehicleDynamoRepository) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	it := toVehicleItem(v)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Vehicle{}, err
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
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Vehicle{}, err
	}
	if len(out.Item) == 0 {
		return entities.Vehicle{}, nil
	}

	var it vehicleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Vehicle{}, err
	}
	return fromVehicleItem(it), nil
}

func (r *VehicleDynamoRepository) List(ctx context.Context) ([]entities.Vehicle, error) {
	return r.scan(ctx, nil, nil, nil)
}

func (r *VehicleDynamoRepository) ListSellable(ctx context.Context) ([]entities.Vehicle, error) {
	return r.scan(ctx,
		aws.String("#status = :status AND #public_visible = :visible"),
		map[string]types.AttributeValue{
			":status":  &types.AttributeValueMemberS{Value: string(entities.VehicleStatusAvailable)},
			":visible": &types.AttributeValueMemberBOOL{Value: true},
		},
		map[string]string{
			"#status":         "status",
			"#public_visible": "public_visible",
		},
	)
}

func (r *VehicleDynamoRepository) scan(
	ctx context.Context,
	filter *string,
	values map[string]types.AttributeValue,
	names map[string]string,
) ([]entities.Vehicle, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          filter,
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Vehicle, 0, len(out.Items))
	for _, raw := range out.Items {
		var it vehicleItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromVehicleItem(it))
	}
	return items, nil
}

func (r *VehicleDynamoRepository) Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: v.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression: aws.String(
			"SET #make = :make, #model = :model, #year = :year, #plate = :plate, #vin = :vin, " +
				"#base_price = :base_price, #mileage = :mileage, #fuel = :fuel, " +
				"#transmission = :transmission, #color = :color, #status = :status, " +
				"#public_visible = :public_visible, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":make":           &types.AttributeValueMemberS{Value: v.Make},
			":model":          &types.AttributeValueMemberS{Value: v.Model},
			":year":           &types.AttributeValueMemberN{Value: intToString(v.Year)},
			":plate":          &types.AttributeValueMemberS{Value: v.Plate},
			":vin":            &types.AttributeValueMemberS{Value: v.VIN},
			":base_price":     &types.AttributeValueMemberS{Value: decimalToString(v.BasePrice)},
			":mileage":        &types.AttributeValueMemberN{Value: intToString(v.Mileage)},
			":fuel":           &types.AttributeValueMemberS{Value: v.Fuel},
			":transmission":   &types.AttributeValueMemberS{Value: v.Transmission},
			":color":          &types.AttributeValueMemberS{Value: v.Color},
			":status":         &types.AttributeValueMemberS{Value: string(v.Status)},
			":public_visible": &types.AttributeValueMemberBOOL{Value: v.PublicVisible},
			":updated_at":     &types.AttributeValueMemberS{Value: timeToString(v.UpdatedAt)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#make":           "make",
			"#model":          "model",
			"#year":           "year",
			"#plate":          "plate",
			"#vin":            "vin",
			"#base_price":     "base_price",
			"#mileage":        "mileage",
			"#fuel":           "fuel",
			"#transmission":   "transmission",
			"#color":          "color",
			"#status":         "status",
			"#public_visible": "public_visible",
			"#updated_at":     "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Vehicle{}, nil
		}
		return entities.Vehicle{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Vehicle{}, nil
	}
	var it vehicleItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Vehicle{}, err
	}
	return fromVehicleItem(it), nil
}

func (r *VehicleDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.VehicleStatus) (entities.Vehicle, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: timeToString(time.Now())},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Vehicle{}, nil
		}
		return entities.Vehicle{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Vehicle{}, nil
	}
	var it vehicleItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Vehicle{}, err
	}
	return fromVehicleItem(it), nil
}

func (r *VehicleDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *VehicleDynamoRepository) Count(ctx context.Context) (int64, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Select:    types.SelectCount,
	})
	if err != nil {
		return 0, err
	}
	return int64(out.Count), nil
}

func toVehicleItem(v entities.Vehicle) vehicleItem {
	return vehicleItem{
		ID:            v.ID,
		Make:          v.Make,
		Model:         v.Model,
		Year:          v.Year,
		Plate:         v.Plate,
		VIN:           v.VIN,
		BasePrice:     decimalToString(v.BasePrice),
		Mileage:       v.Mileage,
		Fuel:          v.Fuel,
		Transmission:  v.Transmission,
		Color:         v.Color,
		Status:        string(v.Status),
		PublicVisible: v.PublicVisible,
		CreatedAt:     timeToString(v.CreatedAt),
		UpdatedAt:     timeToString(v.UpdatedAt),
	}
}

func fromVehicleItem(it vehicleItem) entities.Vehicle {
	return entities.Vehicle{
		ID:            it.ID,
		Make:          it.Make,
		Model:         it.Model,
		Year:          it.Year,
		Plate:         it.Plate,
		VIN:           it.VIN,
		BasePrice:     decimalFromString(it.BasePrice),
		Mileage:       it.Mileage,
		Fuel:          it.Fuel,
		Transmission:  it.Transmission,
		Color:         it.Color,
		Status:        entities.VehicleStatus(it.Status),
		PublicVisible: it.PublicVisible,
		CreatedAt:     timeFromString(it.CreatedAt),
		UpdatedAt:     timeFromString(it.UpdatedAt),
	}
}

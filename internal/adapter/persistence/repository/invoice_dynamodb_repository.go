package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"autoflow/internal/domain/entities"
	"autoflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultInvoicesTableName = "invoices"
	defaultCountersTableName = "invoice_counters"
	invoicesNumberIndex      = "number-index"
	invoicesCustomerIDIndex  = "customer_id-index"
)

type invoiceItem struct {
	ID          string `dynamodbav:"id"`
	Number      string `dynamodbav:"number"`
	IssueDate   string `dynamodbav:"issue_date"`
	CustomerID  string `dynamodbav:"customer_id"`
	ProposalID  string `dynamodbav:"proposal_id"`
	TotalAmount string `dynamodbav:"total_amount"`
	PaymentDate string `dynamodbav:"payment_date,omitempty"`
	DocumentID  string `dynamodbav:"document_id,omitempty"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string), which equals the proposal id
//   - GSI: number-index (PK: number)
//   - GSI: customer_id-index (PK: customer_id)
//
// Counters table requirements:
//   - PK: year (string)
//   - Attribute seq (number), incremented atomically
//
// The conditional put on the primary key is the one-invoice-per-proposal
// constraint; the loser of a concurrent create observes ErrInvoiceConflict.

type InvoiceDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	countersTable string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
		countersTable: getenvDefault("INVOICE_COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	it := toInvoiceItem(inv)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Invoice{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Invoice{}, interfaces.ErrInvoiceConflict
		}
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) GetByNumber(ctx context.Context, number string) (entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesNumberIndex),
		KeyConditionExpression: aws.String("#number = :n"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":n": &types.AttributeValueMemberS{Value: number},
		},
		ExpressionAttributeNames: map[string]string{
			"#number": "number",
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Items) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) List(ctx context.Context) ([]entities.Invoice, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalInvoices(out.Items)
}

func (r *InvoiceDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesCustomerIDIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalInvoices(out.Items)
}

func (r *InvoiceDynamoRepository) SetDocumentID(ctx context.Context, id, documentID string) (entities.Invoice, error) {
	return r.update(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #document_id = :document_id"
		vals := map[string]types.AttributeValue{
			":document_id": &types.AttributeValueMemberS{Value: documentID},
		}
		names := map[string]string{
			"#document_id": "document_id",
		}
		return expr, vals, names
	})
}

func (r *InvoiceDynamoRepository) SetPaymentDate(ctx context.Context, id string, paid time.Time) (entities.Invoice, error) {
	return r.update(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #payment_date = :payment_date"
		vals := map[string]types.AttributeValue{
			":payment_date": &types.AttributeValueMemberS{Value: timeToString(paid)},
		}
		names := map[string]string{
			"#payment_date": "payment_date",
		}
		return expr, vals, names
	})
}

func (r *InvoiceDynamoRepository) update(
	ctx context.Context,
	id string,
	build func() (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Invoice, error) {
	updateExpr, values, names := build()

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Invoice{}, nil
		}
		return entities.Invoice{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Invoice{}, nil
	}
	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// NextSequence atomically increments the per-year counter row and returns
// the new value. ADD creates the row on first use, so the first invoice of
// a year gets sequence 1 without any setup step. The counter only ever
// moves forward; a failed issuance after this call leaves a gap in the
// numbering, never a duplicate.
func (r *InvoiceDynamoRepository) NextSequence(ctx context.Context, year int) (int, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.countersTable),
		Key: map[string]types.AttributeValue{
			"year": &types.AttributeValueMemberS{Value: strconv.Itoa(year)},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	attr, ok := out.Attributes["seq"]
	if !ok {
		return 0, fmt.Errorf("counter update returned no seq attribute for year %d", year)
	}
	n, ok := attr.(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("counter seq attribute for year %d is not a number", year)
	}
	seq, err := strconv.Atoi(n.Value)
	if err != nil {
		return 0, err
	}
	return seq, nil
}

func (r *InvoiceDynamoRepository) Count(ctx context.Context) (int64, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Select:    types.SelectCount,
	})
	if err != nil {
		return 0, err
	}
	return int64(out.Count), nil
}

func (r *InvoiceDynamoRepository) CountUnpaid(ctx context.Context) (int64, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		Select:           types.SelectCount,
		FilterExpression: aws.String("attribute_not_exists(#payment_date) OR #payment_date = :empty"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":empty": &types.AttributeValueMemberS{Value: ""},
		},
		ExpressionAttributeNames: map[string]string{
			"#payment_date": "payment_date",
		},
	})
	if err != nil {
		return 0, err
	}
	return int64(out.Count), nil
}

func (r *InvoiceDynamoRepository) SumTotals(ctx context.Context) (decimal.Decimal, error) {
	return r.sum(ctx, func(entities.Invoice) bool { return true })
}

func (r *InvoiceDynamoRepository) SumTotalsByYear(ctx context.Context, year int) (decimal.Decimal, error) {
	return r.sum(ctx, func(inv entities.Invoice) bool {
		return inv.IssueDate.Year() == year
	})
}

func (r *InvoiceDynamoRepository) SumTotalsByYearMonth(ctx context.Context, year int, month time.Month) (decimal.Decimal, error) {
	return r.sum(ctx, func(inv entities.Invoice) bool {
		return inv.IssueDate.Year() == year && inv.IssueDate.Month() == month
	})
}

func (r *InvoiceDynamoRepository) sum(ctx context.Context, keep func(entities.Invoice) bool) (decimal.Decimal, error) {
	invoices, err := r.List(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, inv := range invoices {
		if keep(inv) {
			total = total.Add(inv.TotalAmount)
		}
	}
	return total, nil
}

func unmarshalInvoices(raw []map[string]types.AttributeValue) ([]entities.Invoice, error) {
	items := make([]entities.Invoice, 0, len(raw))
	for _, m := range raw {
		var it invoiceItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromInvoiceItem(it))
	}
	return items, nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	return invoiceItem{
		ID:          inv.ID,
		Number:      inv.Number,
		IssueDate:   timeToString(inv.IssueDate),
		CustomerID:  inv.CustomerID,
		ProposalID:  inv.ProposalID,
		TotalAmount: decimalToString(inv.TotalAmount),
		PaymentDate: timePtrToString(inv.PaymentDate),
		DocumentID:  inv.DocumentID,
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	return entities.Invoice{
		ID:          it.ID,
		Number:      it.Number,
		IssueDate:   timeFromString(it.IssueDate),
		CustomerID:  it.CustomerID,
		ProposalID:  it.ProposalID,
		TotalAmount: decimalFromString(it.TotalAmount),
		PaymentDate: timePtrFromString(it.PaymentDate),
		DocumentID:  it.DocumentID,
	}
}

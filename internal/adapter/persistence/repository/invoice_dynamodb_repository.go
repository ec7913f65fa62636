package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/The0ne18/jobsbreeze-api/internal/domain/entities"
	"github.com/The0ne18/jobsbreeze-api/internal/infrastructure/config"
	"github.com/The0ne18/jobsbreeze-api/internal/usecase/interfaces"
)

const invoiceCounterName = "invoices"

type invoiceLineItem struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	Category    string `dynamodbav:"category,omitempty"`
	Quantity    string `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	Amount      string `dynamodbav:"amount"`
}

type invoiceItem struct {
	ID         string            `dynamodbav:"id"`
	InvoiceID  string            `dynamodbav:"invoice_id"`
	EstimateID string            `dynamodbav:"estimate_id"`
	ClientID   string            `dynamodbav:"client_id"`
	Status     string            `dynamodbav:"status"`
	Date       string            `dynamodbav:"date"`
	DueDate    string            `dynamodbav:"due_date"`
	TaxRate    string            `dynamodbav:"tax_rate"`
	Subtotal   string            `dynamodbav:"subtotal"`
	Tax        string            `dynamodbav:"tax"`
	Amount     string            `dynamodbav:"amount"`
	LineItems  []invoiceLineItem `dynamodbav:"line_items"`
	CreatedAt  string            `dynamodbav:"created_at"`
	UpdatedAt  string            `dynamodbav:"updated_at"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - invoices table, PK: id (string)
//   - GSI estimate_id-index, PK: estimate_id (string)
//   - counters table, PK: name (string)
//
// Invoices embed their line item snapshot in the invoice item itself, so a
// single conditional put is already atomic.

type InvoiceDynamoRepository struct {
	ddb             *dynamodb.Client
	tableName       string
	estimateIDIndex string
	countersTable   string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client, tables config.TablesConfig) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:             ddb,
		tableName:       tables.Invoices,
		estimateIDIndex: tables.InvoiceByEstimateIndex,
		countersTable:   tables.Counters,
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
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

func (r *InvoiceDynamoRepository) List(ctx context.Context, status entities.InvoiceStatus) ([]entities.Invoice, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if status != "" {
		input.FilterExpression = aws.String("#status = :status")
		input.ExpressionAttributeNames = map[string]string{"#status": "status"}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		}
	}

	var invoices []entities.Invoice
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []invoiceItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			invoices = append(invoices, fromInvoiceItem(it))
		}
	}
	return invoices, nil
}

func (r *InvoiceDynamoRepository) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(r.estimateIDIndex),
		KeyConditionExpression: aws.String("#estimate_id = :estimate_id"),
		ExpressionAttributeNames: map[string]string{
			"#estimate_id": "estimate_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":estimate_id": &types.AttributeValueMemberS{Value: estimateID},
		},
	})
	if err != nil {
		return nil, err
	}

	var items []invoiceItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}

	invoices := make([]entities.Invoice, 0, len(items))
	for _, it := range items {
		invoices = append(invoices, fromInvoiceItem(it))
	}
	return invoices, nil
}

func (r *InvoiceDynamoRepository) NextSequence(ctx context.Context) (int64, error) {
	return nextCounter(ctx, r.ddb, r.countersTable, invoiceCounterName)
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	items := make([]invoiceLineItem, 0, len(inv.LineItems))
	for _, li := range inv.LineItems {
		items = append(items, invoiceLineItem{
			ID:          li.ID,
			Description: li.Description,
			Category:    li.Category,
			Quantity:    decToString(li.Quantity),
			UnitPrice:   decToString(li.UnitPrice),
			Amount:      decToString(li.Amount),
		})
	}
	return invoiceItem{
		ID:         inv.ID,
		InvoiceID:  inv.InvoiceID,
		EstimateID: inv.EstimateID,
		ClientID:   inv.ClientID,
		Status:     string(inv.Status),
		Date:       timeToString(inv.Date),
		DueDate:    timeToString(inv.DueDate),
		TaxRate:    decToString(inv.TaxRate),
		Subtotal:   decToString(inv.Subtotal),
		Tax:        decToString(inv.Tax),
		Amount:     decToString(inv.Amount),
		LineItems:  items,
		CreatedAt:  timeToString(inv.CreatedAt),
		UpdatedAt:  timeToString(inv.UpdatedAt),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	items := make([]entities.LineItem, 0, len(it.LineItems))
	for _, li := range it.LineItems {
		items = append(items, entities.LineItem{
			ID:          li.ID,
			Description: li.Description,
			Category:    li.Category,
			Quantity:    decFromString(li.Quantity),
			UnitPrice:   decFromString(li.UnitPrice),
			Amount:      decFromString(li.Amount),
		})
	}
	return entities.Invoice{
		ID:         it.ID,
		InvoiceID:  it.InvoiceID,
		EstimateID: it.EstimateID,
		ClientID:   it.ClientID,
		Status:     entities.InvoiceStatus(it.Status),
		Date:       timeFromString(it.Date),
		DueDate:    timeFromString(it.DueDate),
		TaxRate:    decFromString(it.TaxRate),
		Subtotal:   decFromString(it.Subtotal),
		Tax:        decFromString(it.Tax),
		Amount:     decFromString(it.Amount),
		LineItems:  items,
		CreatedAt:  timeFromString(it.CreatedAt),
		UpdatedAt:  timeFromString(it.UpdatedAt),
	}
}

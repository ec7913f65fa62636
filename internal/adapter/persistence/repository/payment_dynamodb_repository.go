package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/The0ne18/jobsbreeze-api/internal/domain/entities"
	"github.com/The0ne18/jobsbreeze-api/internal/infrastructure/config"
	"github.com/The0ne18/jobsbreeze-api/internal/usecase/interfaces"
)

type paymentItem struct {
	ID                 string `dynamodbav:"id"`
	InvoiceID          string `dynamodbav:"invoice_id"`
	Date               string `dynamodbav:"date"`
	Status             string `dynamodbav:"status"`
	ProviderPayloadRaw string `dynamodbav:"provider_payload_raw,omitempty"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - payments table, PK: id (string)
//   - GSI invoice_id-index, PK: invoice_id (string)

type PaymentDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	invoicesTable  string
	invoiceIDIndex string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client, tables config.TablesConfig) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:            ddb,
		tableName:      tables.Payments,
		invoicesTable:  tables.Invoices,
		invoiceIDIndex: tables.PaymentsByInvoiceIndex,
	}
}

// CreateAndSettleInvoice inserts the payment and, when it is approved, flips
// the invoice to PAID in the same transaction. A payment can never be
// recorded as approved against an invoice that is already paid.
func (r *PaymentDynamoRepository) CreateAndSettleInvoice(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	writes := []types.TransactWriteItem{{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	}}

	if p.Status == entities.PaymentStatusApproved {
		now := time.Now().UTC().Format(time.RFC3339Nano)
		writes = append(writes, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(r.invoicesTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: p.InvoiceID},
				},
				ConditionExpression: aws.String("attribute_exists(#id) AND #status <> :paid"),
				UpdateExpression:    aws.String("SET #status = :paid, #updated_at = :updated_at"),
				ExpressionAttributeNames: map[string]string{
					"#id":         "id",
					"#status":     "status",
					"#updated_at": "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":paid":       &types.AttributeValueMemberS{Value: string(entities.InvoiceStatusPaid)},
					":updated_at": &types.AttributeValueMemberS{Value: now},
				},
			},
		})
	}

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	}); err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(r.invoiceIDIndex),
		KeyConditionExpression: aws.String("#invoice_id = :invoice_id"),
		ExpressionAttributeNames: map[string]string{
			"#invoice_id": "invoice_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":invoice_id": &types.AttributeValueMemberS{Value: invoiceID},
		},
	})
	if err != nil {
		return nil, err
	}

	var items []paymentItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}

	payments := make([]entities.Payment, 0, len(items))
	for _, it := range items {
		payments = append(payments, fromPaymentItem(it))
	}
	return payments, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                 p.ID,
		InvoiceID:          p.InvoiceID,
		Date:               timeToString(p.Date),
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	p := entities.Payment{
		ID:        it.ID,
		InvoiceID: it.InvoiceID,
		Date:      timeFromString(it.Date),
		Status:    entities.PaymentStatus(it.Status),
	}
	if it.ProviderPayloadRaw != "" {
		p.ProviderPayloadRaw = json.RawMessage(it.ProviderPayloadRaw)
		var parsed map[string]interface{}
		if err := json.Unmarshal(p.ProviderPayloadRaw, &parsed); err == nil {
			p.ProviderPayload = parsed
		}
	}
	return p
}

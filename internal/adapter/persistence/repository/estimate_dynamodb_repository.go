package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/The0ne18/jobsbreeze-api/internal/domain/entities"
	"github.com/The0ne18/jobsbreeze-api/internal/infrastructure/config"
	"github.com/The0ne18/jobsbreeze-api/internal/usecase/interfaces"
)

const estimateCounterName = "estimates"

type estimateItem struct {
	ID         string `dynamodbav:"id"`
	EstimateID string `dynamodbav:"estimate_id"`
	ClientID   string `dynamodbav:"client_id"`
	Status     string `dynamodbav:"status"`
	IsDraft    bool   `dynamodbav:"is_draft"`
	Date       string `dynamodbav:"date"`
	ExpiryDate string `dynamodbav:"expiry_date,omitempty"`
	Notes      string `dynamodbav:"notes,omitempty"`
	Terms      string `dynamodbav:"terms,omitempty"`
	TaxRate    string `dynamodbav:"tax_rate"`
	Subtotal   string `dynamodbav:"subtotal"`
	Tax        string `dynamodbav:"tax"`
	Amount     string `dynamodbav:"amount"`
	Version    int64  `dynamodbav:"version"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

type lineItemItem struct {
	EstimateID  string `dynamodbav:"estimate_id"`
	ID          string `dynamodbav:"id"`
	Position    int    `dynamodbav:"position"`
	Description string `dynamodbav:"description"`
	Category    string `dynamodbav:"category,omitempty"`
	Quantity    string `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	Amount      string `dynamodbav:"amount"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - estimates table, PK: id (string)
//   - line items table, PK: estimate_id (string), SK: id (string); each row
//     carries a position attribute so reads restore caller order
//   - counters table, PK: name (string)
//
// Header and line items are always written in one TransactWriteItems call,
// so a cancelled transaction leaves the stored estimate untouched. The
// header carries a version attribute; replace-style updates condition on it
// to reject concurrent modification.

type EstimateDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	itemsTableName string
	countersTable  string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client, tables config.TablesConfig) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:            ddb,
		tableName:      tables.Estimates,
		itemsTableName: tables.LineItems,
		countersTable:  tables.Counters,
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	headerAV, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
	}

	writes := []types.TransactWriteItem{{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                headerAV,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	}}

	for i, li := range e.LineItems {
		av, err := attributevalue.MarshalMap(toLineItemItem(e.ID, i, li))
		if err != nil {
			return entities.Estimate{}, err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.itemsTableName),
				Item:      av,
			},
		})
	}

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	}); err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}

	e := fromEstimateItem(it)
	e.LineItems, err = r.queryLineItems(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) List(ctx context.Context, status entities.EstimateStatus, clientID string) ([]entities.Estimate, error) {
	filterParts := ""
	names := map[string]string{}
	values := map[string]types.AttributeValue{}

	if status != "" {
		filterParts = "#status = :status"
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(status)}
	}
	if clientID != "" {
		if filterParts != "" {
			filterParts += " AND "
		}
		filterParts += "#client_id = :client_id"
		names["#client_id"] = "client_id"
		values[":client_id"] = &types.AttributeValueMemberS{Value: clientID}
	}

	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if filterParts != "" {
		input.FilterExpression = aws.String(filterParts)
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	var estimates []entities.Estimate
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []estimateItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			estimates = append(estimates, fromEstimateItem(it))
		}
	}
	return estimates, nil
}

func (r *EstimateDynamoRepository) ReplaceLineItemsAndUpdate(ctx context.Context, e entities.Estimate, expectedVersion int64) (entities.Estimate, error) {
	oldItems, err := r.queryLineItems(ctx, e.ID)
	if err != nil {
		return entities.Estimate{}, err
	}

	e.Version = expectedVersion + 1
	headerAV, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
	}

	writes := []types.TransactWriteItem{{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                headerAV,
			ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
			ExpressionAttributeNames: map[string]string{
				"#id":      "id",
				"#version": "version",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
			},
		},
	}}

	for _, old := range oldItems {
		writes = append(writes, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(r.itemsTableName),
				Key: map[string]types.AttributeValue{
					"estimate_id": &types.AttributeValueMemberS{Value: e.ID},
					"id":          &types.AttributeValueMemberS{Value: old.ID},
				},
			},
		})
	}

	for i, li := range e.LineItems {
		av, err := attributevalue.MarshalMap(toLineItemItem(e.ID, i, li))
		if err != nil {
			return entities.Estimate{}, err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.itemsTableName),
				Item:      av,
			},
		})
	}

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	}); err != nil {
		if transactConditionFailed(err) {
			return entities.Estimate{}, interfaces.ErrVersionConflict
		}
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) UpdateStatusAndDraftFlag(ctx context.Context, id string, status entities.EstimateStatus, isDraft bool) (entities.Estimate, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #is_draft = :is_draft, #updated_at = :updated_at ADD #version :one"),
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#is_draft":   "is_draft",
			"#updated_at": "updated_at",
			"#version":    "version",
		}, map[string]string{"#id": "id"}),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":is_draft":   &types.AttributeValueMemberBOOL{Value: isDraft},
			":updated_at": &types.AttributeValueMemberS{Value: now},
			":one":        &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Estimate{}, err
	}

	e := fromEstimateItem(it)
	e.LineItems, err = r.queryLineItems(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	items, err := r.queryLineItems(ctx, id)
	if err != nil {
		return false, err
	}

	writes := []types.TransactWriteItem{{
		Delete: &types.Delete{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
			ConditionExpression: aws.String("attribute_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	}}

	for _, li := range items {
		writes = append(writes, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(r.itemsTableName),
				Key: map[string]types.AttributeValue{
					"estimate_id": &types.AttributeValueMemberS{Value: id},
					"id":          &types.AttributeValueMemberS{Value: li.ID},
				},
			},
		})
	}

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	}); err != nil {
		if transactConditionFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *EstimateDynamoRepository) NextSequence(ctx context.Context) (int64, error) {
	return nextCounter(ctx, r.ddb, r.countersTable, estimateCounterName)
}

func (r *EstimateDynamoRepository) queryLineItems(ctx context.Context, estimateID string) ([]entities.LineItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.itemsTableName),
		KeyConditionExpression: aws.String("#estimate_id = :estimate_id"),
		ExpressionAttributeNames: map[string]string{
			"#estimate_id": "estimate_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":estimate_id": &types.AttributeValueMemberS{Value: estimateID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	var items []lineItemItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	return lineItemsInOrder(items), nil
}

// lineItemsInOrder restores caller order. The sort key is the item's uuid,
// so Query results come back uuid-sorted; position holds the original index.
func lineItemsInOrder(items []lineItemItem) []entities.LineItem {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Position < items[j].Position
	})
	lineItems := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		lineItems = append(lineItems, fromLineItemItem(it))
	}
	return lineItems
}

func toEstimateItem(e entities.Estimate) estimateItem {
	it := estimateItem{
		ID:         e.ID,
		EstimateID: e.EstimateID,
		ClientID:   e.ClientID,
		Status:     string(e.Status),
		IsDraft:    e.IsDraft,
		Date:       timeToString(e.Date),
		Notes:      e.Notes,
		Terms:      e.Terms,
		TaxRate:    decToString(e.TaxRate),
		Subtotal:   decToString(e.Subtotal),
		Tax:        decToString(e.Tax),
		Amount:     decToString(e.Amount),
		Version:    e.Version,
		CreatedAt:  timeToString(e.CreatedAt),
		UpdatedAt:  timeToString(e.UpdatedAt),
	}
	if e.ExpiryDate != nil {
		it.ExpiryDate = timeToString(*e.ExpiryDate)
	}
	return it
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	e := entities.Estimate{
		ID:         it.ID,
		EstimateID: it.EstimateID,
		ClientID:   it.ClientID,
		Status:     entities.EstimateStatus(it.Status),
		IsDraft:    it.IsDraft,
		Date:       timeFromString(it.Date),
		Notes:      it.Notes,
		Terms:      it.Terms,
		TaxRate:    decFromString(it.TaxRate),
		Subtotal:   decFromString(it.Subtotal),
		Tax:        decFromString(it.Tax),
		Amount:     decFromString(it.Amount),
		Version:    it.Version,
		CreatedAt:  timeFromString(it.CreatedAt),
		UpdatedAt:  timeFromString(it.UpdatedAt),
	}
	if it.ExpiryDate != "" {
		t := timeFromString(it.ExpiryDate)
		e.ExpiryDate = &t
	}
	return e
}

func toLineItemItem(estimateID string, position int, li entities.LineItem) lineItemItem {
	return lineItemItem{
		EstimateID:  estimateID,
		ID:          li.ID,
		Position:    position,
		Description: li.Description,
		Category:    li.Category,
		Quantity:    decToString(li.Quantity),
		UnitPrice:   decToString(li.UnitPrice),
		Amount:      decToString(li.Amount),
	}
}

func fromLineItemItem(it lineItemItem) entities.LineItem {
	return entities.LineItem{
		ID:          it.ID,
		Description: it.Description,
		Category:    it.Category,
		Quantity:    decFromString(it.Quantity),
		UnitPrice:   decFromString(it.UnitPrice),
		Amount:      decFromString(it.Amount),
	}
}

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

// The settings singleton lives under a fixed key.
const settingsItemID = "business"

type settingsItem struct {
	ID                 string `dynamodbav:"id"`
	BusinessName       string `dynamodbav:"business_name"`
	Email              string `dynamodbav:"email,omitempty"`
	Phone              string `dynamodbav:"phone,omitempty"`
	Address            string `dynamodbav:"address,omitempty"`
	DefaultTaxRate     string `dynamodbav:"default_tax_rate"`
	EstimateExpiryDays int    `dynamodbav:"estimate_expiry_days"`
	InvoiceDueDays     int    `dynamodbav:"invoice_due_days"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// SettingsDynamoRepository persists the Settings singleton in DynamoDB.
//
// Table requirements:
//   - settings table, PK: id (string)

type SettingsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb *dynamodb.Client, tables config.TablesConfig) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{ddb: ddb, tableName: tables.Settings}
}

func (r *SettingsDynamoRepository) Get(ctx context.Context) (entities.Settings, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: settingsItemID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Settings{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.Settings{}, false, nil
	}

	var it settingsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Settings{}, false, err
	}
	return fromSettingsItem(it), true, nil
}

func (r *SettingsDynamoRepository) Put(ctx context.Context, s entities.Settings) (entities.Settings, error) {
	av, err := attributevalue.MarshalMap(toSettingsItem(s))
	if err != nil {
		return entities.Settings{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Settings{}, err
	}
	return s, nil
}

func toSettingsItem(s entities.Settings) settingsItem {
	return settingsItem{
		ID:                 settingsItemID,
		BusinessName:       s.BusinessName,
		Email:              s.Email,
		Phone:              s.Phone,
		Address:            s.Address,
		DefaultTaxRate:     decToString(s.DefaultTaxRate),
		EstimateExpiryDays: s.EstimateExpiryDays,
		InvoiceDueDays:     s.InvoiceDueDays,
		UpdatedAt:          timeToString(s.UpdatedAt),
	}
}

func fromSettingsItem(it settingsItem) entities.Settings {
	return entities.Settings{
		BusinessName:       it.BusinessName,
		Email:              it.Email,
		Phone:              it.Phone,
		Address:            it.Address,
		DefaultTaxRate:     decFromString(it.DefaultTaxRate),
		EstimateExpiryDays: it.EstimateExpiryDays,
		InvoiceDueDays:     it.InvoiceDueDays,
		UpdatedAt:          timeFromString(it.UpdatedAt),
	}
}

package repository

import (
	"context"
	"encoding/json"
	"time"

	"ges_rdo/internal/domain/entities"
	"ges_rdo/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultMeasurementsTableName = "medicoes"

type measurementItem struct {
	ID          string  `dynamodbav:"id"`
	UserID      string  `dynamodbav:"usuario_id"`
	ProjectID   string  `dynamodbav:"projeto_id"`
	PeriodStart string  `dynamodbav:"inicio"`
	PeriodEnd   string  `dynamodbav:"fim"`
	TotalHours  float64 `dynamodbav:"horas_totais"`
	HourlyRate  float64 `dynamodbav:"valor_hora"`
	Factor      float64 `dynamodbav:"fator"`
	Deductions  float64 `dynamodbav:"deducoes"`
	GrossAmount float64 `dynamodbav:"valor_bruto"`
	FinalAmount float64 `dynamodbav:"valor_final"`
	Status      string  `dynamodbav:"status"`
	PaymentID   string  `dynamodbav:"payment_id,omitempty"`
	PaymentRaw  string  `dynamodbav:"payment_raw,omitempty"`
	CreatedAt   string  `dynamodbav:"created_at"`
	UpdatedAt   string  `dynamodbav:"updated_at"`
}

// MeasurementDynamoRepository persists Measurement entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The raw gateway payload is stored as a string attribute so the item stays
// inspectable in the console regardless of what the gateway returned.

type MeasurementDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMeasurementRepository = (*MeasurementDynamoRepository)(nil)

func NewMeasurementDynamoRepository(ddb *dynamodb.Client) *MeasurementDynamoRepository {
	return &MeasurementDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MEASUREMENTS_TABLE", defaultMeasurementsTableName),
	}
}

func (r *MeasurementDynamoRepository) Create(ctx context.Context, measurement entities.Measurement) (entities.Measurement, error) {
	av, err := attributevalue.MarshalMap(toMeasurementItem(measurement))
	if err != nil {
		return entities.Measurement{}, err
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
		return entities.Measurement{}, err
	}
	return measurement, nil
}

func (r *MeasurementDynamoRepository) Update(ctx context.Context, measurement entities.Measurement) (entities.Measurement, error) {
	av, err := attributevalue.MarshalMap(toMeasurementItem(measurement))
	if err != nil {
		return entities.Measurement{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Measurement{}, err
	}
	return measurement, nil
}

func (r *MeasurementDynamoRepository) GetByID(ctx context.Context, id string) (entities.Measurement, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Measurement{}, err
	}
	if len(out.Item) == 0 {
		return entities.Measurement{}, nil
	}

	var it measurementItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Measurement{}, err
	}
	return fromMeasurementItem(it), nil
}

func toMeasurementItem(m entities.Measurement) measurementItem {
	return measurementItem{
		ID:          m.ID,
		UserID:      m.UserID,
		ProjectID:   m.ProjectID,
		PeriodStart: m.PeriodStart,
		PeriodEnd:   m.PeriodEnd,
		TotalHours:  m.TotalHours,
		HourlyRate:  m.HourlyRate,
		Factor:      m.Factor,
		Deductions:  m.Deductions,
		GrossAmount: m.GrossAmount,
		FinalAmount: m.FinalAmount,
		Status:      string(m.Status),
		PaymentID:   m.PaymentID,
		PaymentRaw:  string(m.PaymentRaw),
		CreatedAt:   m.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   m.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromMeasurementItem(it measurementItem) entities.Measurement {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	var raw json.RawMessage
	if it.PaymentRaw != "" {
		raw = json.RawMessage(it.PaymentRaw)
	}
	return entities.Measurement{
		ID:          it.ID,
		UserID:      it.UserID,
		ProjectID:   it.ProjectID,
		PeriodStart: it.PeriodStart,
		PeriodEnd:   it.PeriodEnd,
		TotalHours:  it.TotalHours,
		HourlyRate:  it.HourlyRate,
		Factor:      it.Factor,
		Deductions:  it.Deductions,
		GrossAmount: it.GrossAmount,
		FinalAmount: it.FinalAmount,
		Status:      entities.MeasurementStatus(it.Status),
		PaymentID:   it.PaymentID,
		PaymentRaw:  raw,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

package repository

import (
	"context"
	"time"

	"ges_rdo/internal/domain/entities"
	"ges_rdo/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRDOsTableName = "rdos"
	rdosUserIDIndex      = "usuario_id-index"
)

type timeEntryItem struct {
	StartTime string `dynamodbav:"hora_inicio"`
	EndTime   string `dynamodbav:"hora_fim"`
	Title     string `dynamodbav:"titulo,omitempty"`
	Activity  string `dynamodbav:"atividade"`
}

type rdoItem struct {
	ID               string          `dynamodbav:"id"`
	UserID           string          `dynamodbav:"usuario_id"`
	UserName         string          `dynamodbav:"usuario_nome,omitempty"`
	Date             string          `dynamodbav:"data"`
	ProjectID        string          `dynamodbav:"projeto_id"`
	ProjectName      string          `dynamodbav:"projeto_nome,omitempty"`
	ProjectClient    string          `dynamodbav:"projeto_cliente,omitempty"`
	ServiceNature    string          `dynamodbav:"natureza_servico,omitempty"`
	DailyDescription string          `dynamodbav:"descricao_diaria,omitempty"`
	Entries          []timeEntryItem `dynamodbav:"horarios"`
	OvertimeHours    float64         `dynamodbav:"horas_extras"`
	NightHours       float64         `dynamodbav:"horas_noturnas"`
	NormalHours      float64         `dynamodbav:"horas_normais_por_dia"`
	CreatedAt        string          `dynamodbav:"created_at"`
	UpdatedAt        string          `dynamodbav:"updated_at"`
}

// RDODynamoRepository persists RDO entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: usuario_id-index (PK: usuario_id, SK: data)
//
// The GSI sort key on "data" lets the ficha técnica read one user's reports
// for one period with a single key-condition Query.

type RDODynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRDORepository = (*RDODynamoRepository)(nil)

func NewRDODynamoRepository(ddb *dynamodb.Client) *RDODynamoRepository {
	return &RDODynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RDOS_TABLE", defaultRDOsTableName),
	}
}

func (r *RDODynamoRepository) Create(ctx context.Context, rdo entities.RDO) (entities.RDO, error) {
	av, err := attributevalue.MarshalMap(toRDOItem(rdo))
	if err != nil {
		return entities.RDO{}, err
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
		return entities.RDO{}, err
	}
	return rdo, nil
}

func (r *RDODynamoRepository) Update(ctx context.Context, rdo entities.RDO) (entities.RDO, error) {
	av, err := attributevalue.MarshalMap(toRDOItem(rdo))
	if err != nil {
		return entities.RDO{}, err
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
		return entities.RDO{}, err
	}
	return rdo, nil
}

func (r *RDODynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *RDODynamoRepository) GetByID(ctx context.Context, id string) (entities.RDO, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RDO{}, err
	}
	if len(out.Item) == 0 {
		return entities.RDO{}, nil
	}

	var it rdoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RDO{}, err
	}
	return fromRDOItem(it), nil
}

func (r *RDODynamoRepository) ListByUser(ctx context.Context, userID string) ([]entities.RDO, error) {
	return r.queryByUser(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(rdosUserIDIndex),
		KeyConditionExpression: aws.String("usuario_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
}

func (r *RDODynamoRepository) ListByUserAndRange(ctx context.Context, userID, start, end string) ([]entities.RDO, error) {
	return r.queryByUser(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(rdosUserIDIndex),
		KeyConditionExpression: aws.String("usuario_id = :uid AND #data BETWEEN :start AND :end"),
		ExpressionAttributeNames: map[string]string{
			"#data": "data",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid":   &types.AttributeValueMemberS{Value: userID},
			":start": &types.AttributeValueMemberS{Value: start},
			":end":   &types.AttributeValueMemberS{Value: end},
		},
	})
}

func (r *RDODynamoRepository) queryByUser(ctx context.Context, in *dynamodb.QueryInput) ([]entities.RDO, error) {
	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}

	items := make([]entities.RDO, 0, len(out.Items))
	for _, raw := range out.Items {
		var it rdoItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromRDOItem(it))
	}
	return items, nil
}

func toRDOItem(r entities.RDO) rdoItem {
	entries := make([]timeEntryItem, 0, len(r.Entries))
	for _, e := range r.Entries {
		entries = append(entries, timeEntryItem(e))
	}
	return rdoItem{
		ID:               r.ID,
		UserID:           r.UserID,
		UserName:         r.UserName,
		Date:             r.Date,
		ProjectID:        r.ProjectID,
		ProjectName:      r.ProjectName,
		ProjectClient:    r.ProjectClient,
		ServiceNature:    r.ServiceNature,
		DailyDescription: r.DailyDescription,
		Entries:          entries,
		OvertimeHours:    r.OvertimeHours,
		NightHours:       r.NightHours,
		NormalHours:      r.NormalHoursPerDay,
		CreatedAt:        r.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        r.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromRDOItem(it rdoItem) entities.RDO {
	entries := make([]entities.TimeEntry, 0, len(it.Entries))
	for _, e := range it.Entries {
		entries = append(entries, entities.TimeEntry(e))
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.RDO{
		ID:                it.ID,
		UserID:            it.UserID,
		UserName:          it.UserName,
		Date:              it.Date,
		ProjectID:         it.ProjectID,
		ProjectName:       it.ProjectName,
		ProjectClient:     it.ProjectClient,
		ServiceNature:     it.ServiceNature,
		DailyDescription:  it.DailyDescription,
		Entries:           entries,
		OvertimeHours:     it.OvertimeHours,
		NightHours:        it.NightHours,
		NormalHoursPerDay: it.NormalHours,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"todoapp/infras/otel"
	"todoapp/internal/domains/todo/model"
	"todoapp/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"
)

// DynamoDBAPI is the subset of *dynamodb.Client the store uses.
type DynamoDBAPI interface {
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

type dynamoRepository struct {
	client    DynamoDBAPI
	table     string
	userIndex string
	otel      otel.Otel
}

// NewDynamoDB stores records in a table keyed by (todoId, userId) with a
// secondary index on userId for listing.
func NewDynamoDB(client DynamoDBAPI, table, userIndex string, otel otel.Otel) Todo {
	return &dynamoRepository{
		client:    client,
		table:     table,
		userIndex: userIndex,
		otel:      otel,
	}
}

func (repo *dynamoRepository) key(key model.Key) (map[string]types.AttributeValue, error) {
	av, err := attributevalue.MarshalMap(key)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal key (%s): %w", model.EntityName, err)
	}

	return av, nil
}

func (repo *dynamoRepository) GetAllByUser(ctx context.Context, userID string) (items []model.TodoItem, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dynamodb.GetAllByUser")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	keyCond := expression.Key(model.FieldUserID).Equal(expression.Value(userID))

	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build query (%s): %w", model.EntityName, err)
	}

	paginator := dynamodb.NewQueryPaginator(repo.client, &dynamodb.QueryInput{
		TableName:                 aws.String(repo.table),
		IndexName:                 aws.String(repo.userIndex),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})

	items = []model.TodoItem{}

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			log.Error().Err(err).Str("table", repo.table).Msg("failed to query todos")

			return nil, fmt.Errorf("failed to query data (%s): %w", model.EntityName, err)
		}

		var pageItems []model.TodoItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &pageItems); err != nil {
			return nil, fmt.Errorf("failed to unmarshal data (%s): %w", model.EntityName, err)
		}

		items = append(items, pageItems...)
	}

	scope.SetAttribute("todo.count", len(items))

	return items, nil
}

func (repo *dynamoRepository) Get(ctx context.Context, key model.Key) (item model.TodoItem, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dynamodb.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	av, err := repo.key(key)
	if err != nil {
		return item, err
	}

	out, err := repo.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(repo.table),
		Key:       av,
	})
	if err != nil {
		log.Error().Err(err).Str("table", repo.table).Msg("failed to get todo")

		return item, fmt.Errorf("failed to get data (%s): %w", model.EntityName, err)
	}

	if len(out.Item) == 0 {
		return item, ErrNotFound
	}

	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return item, fmt.Errorf("failed to unmarshal data (%s): %w", model.EntityName, err)
	}

	return item, nil
}

func (repo *dynamoRepository) Insert(ctx context.Context, item model.TodoItem) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dynamodb.Insert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal data (%s): %w", model.EntityName, err)
	}

	_, err = repo.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(repo.table),
		Item:      av,
	})
	if err != nil {
		log.Error().Err(err).Str("table", repo.table).Msg("failed to put todo")

		return fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err)
	}

	return nil
}

func (repo *dynamoRepository) Update(ctx context.Context, key model.Key, update model.TodoUpdate) (res model.TodoUpdate, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dynamodb.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	av, err := repo.key(key)
	if err != nil {
		return res, err
	}

	set := expression.
		Set(expression.Name(model.FieldName), expression.Value(update.Name)).
		Set(expression.Name(model.FieldDueDate), expression.Value(update.DueDate)).
		Set(expression.Name(model.FieldDone), expression.Value(update.Done))
	cond := expression.AttributeExists(expression.Name(model.FieldTodoID))

	expr, err := expression.NewBuilder().WithUpdate(set).WithCondition(cond).Build()
	if err != nil {
		return res, fmt.Errorf("failed to build update (%s): %w", model.EntityName, err)
	}

	out, err := repo.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(repo.table),
		Key:                       av,
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return res, ErrNotFound
		}

		log.Error().Err(err).Str("table", repo.table).Msg("failed to update todo")

		return res, fmt.Errorf("failed to update data (%s): %w", model.EntityName, err)
	}

	if err := attributevalue.UnmarshalMap(out.Attributes, &res); err != nil {
		return res, fmt.Errorf("failed to unmarshal data (%s): %w", model.EntityName, err)
	}

	return res, nil
}

func (repo *dynamoRepository) Delete(ctx context.Context, key model.Key) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dynamodb.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	av, err := repo.key(key)
	if err != nil {
		return err
	}

	_, err = repo.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(repo.table),
		Key:       av,
	})
	if err != nil {
		log.Error().Err(err).Str("table", repo.table).Msg("failed to delete todo")

		return fmt.Errorf("failed to delete data (%s): %w", model.EntityName, err)
	}

	return nil
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"

	"todoapp/config"
	"todoapp/helper"
	"todoapp/infras/dynamodb"
	"todoapp/infras/otel"
	"todoapp/infras/postgres"
	"todoapp/infras/sqlite"
	"todoapp/internal/domains/todo/model"
	"todoapp/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/rs/zerolog/log"
)

// ErrNotFound is returned when no record exists for the (userId, todoId) pair.
var ErrNotFound = errors.New("todo not found")

// Todo is the record store. Every call is scoped to one user.
type Todo interface {
	GetAllByUser(ctx context.Context, userID string) ([]model.TodoItem, error)
	Get(ctx context.Context, key model.Key) (model.TodoItem, error)
	Insert(ctx context.Context, item model.TodoItem) error
	// Update replaces name, dueDate and done of an existing record and returns
	// the stored values. It never creates a record.
	Update(ctx context.Context, key model.Key, update model.TodoUpdate) (model.TodoUpdate, error)
	// Delete succeeds whether or not the record existed.
	Delete(ctx context.Context, key model.Key) error
}

// New picks the store driver from STORE_DRIVER.
func New(config *config.Config, awsCfg aws.Config, otel otel.Otel) Todo {
	switch config.Store.Driver {
	case constant.StoreDriverPostgres:
		db := postgres.New(config)
		if db == nil {
			log.Fatal().Msg("Could not connect to postgres todo store")
		}

		return NewSQL(db, otel)
	case constant.StoreDriverSQLite:
		db := sqlite.New(config)
		if err := helper.RunnerWithDB(db.DB, constant.StoreDriverSQLite, config.DB.SQLite.MigrationTable, helper.ActionUp); err != nil {
			log.Fatal().Err(err).Msg("Failed migrating sqlite todo store")
		}

		return NewSQL(db, otel)
	case constant.StoreDriverMemory:
		log.Warn().Msg("Using in-memory todo store, records are lost on restart")

		return NewMemory(otel)
	case constant.StoreDriverDynamoDB:
		return NewDynamoDB(dynamodb.New(awsCfg, config), config.External.DynamoDB.TodosTable, config.External.DynamoDB.UserIndex, otel)
	}

	log.Fatal().Str("driver", config.Store.Driver).Msg("Unknown todo store driver")

	return nil
}

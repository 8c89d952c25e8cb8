package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"todoapp/infras/otel"
	"todoapp/internal/domains/todo/model"
	"todoapp/shared/constant"
	"todoapp/shared/logger"

	"github.com/jmoiron/sqlx"
)

var selectColumns = strings.Join([]string{
	model.ColumnUserID,
	model.ColumnTodoID,
	model.ColumnCreatedAt,
	model.ColumnName,
	model.ColumnDueDate,
	model.ColumnDone,
	model.ColumnAttachmentURL,
}, ", ")

type sqlRepository struct {
	db   *sqlx.DB
	otel otel.Otel
}

// NewSQL stores records in the todos table of a postgres or sqlite database.
// Named parameters are rebound to the driver's placeholder style by sqlx.
func NewSQL(db *sqlx.DB, otel otel.Otel) Todo {
	return &sqlRepository{
		db:   db,
		otel: otel,
	}
}

func (repo *sqlRepository) GetAllByUser(ctx context.Context, userID string) (items []model.TodoItem, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".sql.GetAllByUser")
	defer scope.End()

	query := repo.db.Rebind(fmt.Sprintf("SELECT %s FROM %s WHERE %s = ? ORDER BY %s, %s",
		selectColumns, model.TableName, model.ColumnUserID, model.ColumnCreatedAt, model.ColumnTodoID))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	items = []model.TodoItem{}

	if err = repo.db.SelectContext(ctx, &items, query, userID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get data (%s): %w", model.EntityName, err)
	}

	return items, nil
}

func (repo *sqlRepository) Get(ctx context.Context, key model.Key) (item model.TodoItem, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".sql.Get")
	defer scope.End()

	query := repo.db.Rebind(fmt.Sprintf("SELECT %s FROM %s WHERE %s = ? AND %s = ?",
		selectColumns, model.TableName, model.ColumnUserID, model.ColumnTodoID))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.GetContext(ctx, &item, query, key.UserID, key.TodoID)
	if errors.Is(err, sql.ErrNoRows) {
		return item, ErrNotFound
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return item, fmt.Errorf("failed to get data (%s): %w", model.EntityName, err)
	}

	return item, nil
}

func (repo *sqlRepository) Insert(ctx context.Context, item model.TodoItem) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".sql.Insert")
	defer scope.End()

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (:%s, :%s, :%s, :%s, :%s, :%s, :%s)",
		model.TableName, selectColumns,
		model.ColumnUserID, model.ColumnTodoID, model.ColumnCreatedAt, model.ColumnName,
		model.ColumnDueDate, model.ColumnDone, model.ColumnAttachmentURL)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.NamedExecContext(ctx, query, item); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err)
	}

	return nil
}

func (repo *sqlRepository) Update(ctx context.Context, key model.Key, update model.TodoUpdate) (model.TodoUpdate, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".sql.Update")
	defer scope.End()

	query := fmt.Sprintf("UPDATE %s SET %s = :%s, %s = :%s, %s = :%s WHERE %s = :%s AND %s = :%s",
		model.TableName,
		model.ColumnName, model.ColumnName,
		model.ColumnDueDate, model.ColumnDueDate,
		model.ColumnDone, model.ColumnDone,
		model.ColumnUserID, model.ColumnUserID,
		model.ColumnTodoID, model.ColumnTodoID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		model.ColumnName:    update.Name,
		model.ColumnDueDate: update.DueDate,
		model.ColumnDone:    update.Done,
		model.ColumnUserID:  key.UserID,
		model.ColumnTodoID:  key.TodoID,
	}

	result, err := repo.db.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model.TodoUpdate{}, fmt.Errorf("failed to update data (%s): %w", model.EntityName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		scope.TraceError(err)

		return model.TodoUpdate{}, fmt.Errorf("failed to update data (%s): %w", model.EntityName, err)
	}

	if affected == 0 {
		return model.TodoUpdate{}, ErrNotFound
	}

	return update, nil
}

func (repo *sqlRepository) Delete(ctx context.Context, key model.Key) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".sql.Delete")
	defer scope.End()

	query := repo.db.Rebind(fmt.Sprintf("DELETE FROM %s WHERE %s = ? AND %s = ?",
		model.TableName, model.ColumnUserID, model.ColumnTodoID))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.ExecContext(ctx, query, key.UserID, key.TodoID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete data (%s): %w", model.EntityName, err)
	}

	return nil
}

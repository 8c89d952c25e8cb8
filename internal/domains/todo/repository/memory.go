package repository

import (
	"context"
	"sort"
	"sync"

	"todoapp/infras/otel"
	"todoapp/internal/domains/todo/model"
	"todoapp/shared/constant"
)

type memoryRepository struct {
	mu    sync.RWMutex
	items map[model.Key]model.TodoItem
	otel  otel.Otel
}

// NewMemory keeps records in process memory.
func NewMemory(otel otel.Otel) Todo {
	return &memoryRepository{
		items: make(map[model.Key]model.TodoItem),
		otel:  otel,
	}
}

func (repo *memoryRepository) GetAllByUser(ctx context.Context, userID string) ([]model.TodoItem, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".memory.GetAllByUser")
	defer scope.End()

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	items := []model.TodoItem{}

	for key, item := range repo.items {
		if key.UserID == userID {
			items = append(items, item)
		}
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt == items[j].CreatedAt {
			return items[i].TodoID < items[j].TodoID
		}

		return items[i].CreatedAt < items[j].CreatedAt
	})

	return items, nil
}

func (repo *memoryRepository) Get(ctx context.Context, key model.Key) (model.TodoItem, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".memory.Get")
	defer scope.End()

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	item, ok := repo.items[key]
	if !ok {
		return model.TodoItem{}, ErrNotFound
	}

	return item, nil
}

func (repo *memoryRepository) Insert(ctx context.Context, item model.TodoItem) error {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".memory.Insert")
	defer scope.End()

	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.items[item.Key()] = item

	return nil
}

func (repo *memoryRepository) Update(ctx context.Context, key model.Key, update model.TodoUpdate) (model.TodoUpdate, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".memory.Update")
	defer scope.End()

	repo.mu.Lock()
	defer repo.mu.Unlock()

	item, ok := repo.items[key]
	if !ok {
		return model.TodoUpdate{}, ErrNotFound
	}

	item.Apply(update)
	repo.items[key] = item

	return item.Mutable(), nil
}

func (repo *memoryRepository) Delete(ctx context.Context, key model.Key) error {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".memory.Delete")
	defer scope.End()

	repo.mu.Lock()
	defer repo.mu.Unlock()

	delete(repo.items, key)

	return nil
}

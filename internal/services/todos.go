package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"spread/internal/models"
	"spread/internal/setops"
)

type TodoListInput struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Color       string     `json:"color"`
	Due         *time.Time `json:"due"`
}

func (f *Facade) CreateTodoList(ctx context.Context, ownerID uint, in TodoListInput) (*models.TodoList, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, validationFailed("list name is required", map[string]string{"name": "required"})
	}
	if _, err := f.user(ctx, ownerID); err != nil {
		return nil, translate(err)
	}
	list := &models.TodoList{
		OwnerID:     ownerID,
		Name:        in.Name,
		Description: in.Description,
		Color:       in.Color,
		Due:         in.Due,
	}
	if err := f.store.Create(ctx, list); err != nil {
		return nil, translate(err)
	}
	return list, nil
}

func (f *Facade) ListTodoLists(ctx context.Context, ownerID uint) ([]*models.TodoList, error) {
	entities, err := f.store.ListByRef(ctx, models.KindTodoList, models.RefOwner, ownerID)
	if err != nil {
		return nil, translate(err)
	}
	lists := make([]*models.TodoList, len(entities))
	for i, e := range entities {
		lists[i] = e.(*models.TodoList)
	}
	return lists, nil
}

// AddTodo appends a newly identified item to the actor's list and
// refreshes the derived counts.
func (f *Facade) AddTodo(ctx context.Context, actorID, listID uint, name string, priority int) (*models.TodoList, error) {
	if strings.TrimSpace(name) == "" {
		return nil, validationFailed("todo name is required", map[string]string{"name": "required"})
	}
	e, err := f.store.Update(ctx, models.KindTodoList, listID, func(e models.Entity) error {
		list := e.(*models.TodoList)
		if list.OwnerID != actorID {
			return forbidden("todo list %d does not belong to user %d", listID, actorID)
		}
		list.Items = append(list.Items, models.TodoItem{
			ID:       uuid.NewString(),
			Name:     name,
			Priority: priority,
		})
		list.RecalcCounts()
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	return e.(*models.TodoList), nil
}

// ToggleTodo sets the complete flag of the item with the given
// sub-identity. An unknown id is NotFound; it never creates an item.
func (f *Facade) ToggleTodo(ctx context.Context, actorID, listID uint, todoID string, complete bool) (*models.TodoList, error) {
	e, err := f.store.Update(ctx, models.KindTodoList, listID, func(e models.Entity) error {
		list := e.(*models.TodoList)
		if list.OwnerID != actorID {
			return forbidden("todo list %d does not belong to user %d", listID, actorID)
		}
		item, ok := setops.Find(list.Items, todoID)
		if !ok {
			return notFound("todo list %d has no item %s", listID, todoID)
		}
		item.Complete = complete
		list.RecalcCounts()
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	return e.(*models.TodoList), nil
}

// RemoveTodo deletes an item by sub-identity; removing an absent item
// is a no-op.
func (f *Facade) RemoveTodo(ctx context.Context, actorID, listID uint, todoID string) (*models.TodoList, error) {
	e, err := f.store.Update(ctx, models.KindTodoList, listID, func(e models.Entity) error {
		list := e.(*models.TodoList)
		if list.OwnerID != actorID {
			return forbidden("todo list %d does not belong to user %d", listID, actorID)
		}
		list.Items, _ = setops.Remove(list.Items, todoID)
		list.RecalcCounts()
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	return e.(*models.TodoList), nil
}

// DeleteTodoList removes the list; embedded items go with it.
func (f *Facade) DeleteTodoList(ctx context.Context, actorID, listID uint) error {
	e, err := f.resolver.Resolve(ctx, models.KindTodoList, listID)
	if err != nil {
		return translate(err)
	}
	if e.(*models.TodoList).OwnerID != actorID {
		return forbidden("todo list %d does not belong to user %d", listID, actorID)
	}
	return translate(f.store.Delete(ctx, models.KindTodoList, listID))
}

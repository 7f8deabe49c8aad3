package service

import (
	"context"
	"strings"
	"time"

	"github.com/damianp1350/ToDoAPI/model"
)

// Gateway is the persistence contract the service depends on. Absence on
// GetByID is signalled by a nil todo, not an error.
type Gateway interface {
	GetAll(ctx context.Context) ([]model.Todo, error)
	GetByID(ctx context.Context, id int) (*model.Todo, error)
	GetIncoming(ctx context.Context, start, end time.Time) ([]model.Todo, error)
	Create(ctx context.Context, todo *model.Todo) error
	Update(ctx context.Context, todo *model.Todo) error
	Delete(ctx context.Context, todo *model.Todo) error
}

// TodoService owns the business rules for todos. It holds no state between
// calls; every mutation is a fresh read-modify-write against the store.
type TodoService struct {
	gateway Gateway
	now     func() time.Time
}

// NewTodoService creates a service over the given persistence gateway.
func NewTodoService(gateway Gateway) *TodoService {
	return &TodoService{
		gateway: gateway,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// GetAll returns every todo, ordered by id.
func (s *TodoService) GetAll(ctx context.Context) ([]model.Todo, error) {
	return s.gateway.GetAll(ctx)
}

// GetByID returns the todo with the given id, or a NotFound error.
func (s *TodoService) GetByID(ctx context.Context, id int) (*model.Todo, error) {
	todo, err := s.gateway.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, Errorf(CodeNotFound, "Todo with id %d was not found.", id)
	}
	return todo, nil
}

// GetIncoming returns todos expiring within the named time frame.
// The lower bound sent to the store is always the current instant, even for
// NextDay and CurrentWeek where the frame's nominal start is later; the
// returned set therefore spans [now, end).
func (s *TodoService) GetIncoming(ctx context.Context, frame TimeFrame) ([]model.Todo, error) {
	now := s.now()
	_, end := frame.Window(now)
	return s.gateway.GetIncoming(ctx, now, end)
}

// Create validates the payload, persists a new todo and returns it with its
// store-assigned id.
func (s *TodoService) Create(ctx context.Context, req model.CreateTodoRequest) (*model.Todo, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, NewError(CodeInvalidArgument, "Title is required.")
	}

	todo := model.NewTodoFromCreate(req)
	if err := s.gateway.Create(ctx, todo); err != nil {
		return nil, err
	}

	return todo, nil
}

// Update overwrites the todo identified by targetID with the payload.
func (s *TodoService) Update(ctx context.Context, targetID int, req model.UpdateTodoRequest) error {
	if targetID != req.ID {
		return Errorf(CodeInvalidArgument, "Id %d in payload does not match id %d in path.", req.ID, targetID)
	}

	todo, err := s.GetByID(ctx, targetID)
	if err != nil {
		return err
	}

	todo.ApplyUpdate(req)
	return s.gateway.Update(ctx, todo)
}

// Delete removes the todo with the given id.
func (s *TodoService) Delete(ctx context.Context, id int) error {
	todo, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.gateway.Delete(ctx, todo)
}

// MarkAsDone marks the todo as completed. Marking an already completed todo
// is not an error.
func (s *TodoService) MarkAsDone(ctx context.Context, id int) error {
	todo, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	todo.MarkDone()
	return s.gateway.Update(ctx, todo)
}

// SetPercentComplete sets the completion percentage, which must lie in [0, 100].
func (s *TodoService) SetPercentComplete(ctx context.Context, id, percent int) error {
	if percent < 0 || percent > 100 {
		return Errorf(CodeInvalidArgument, "Percent complete must be between 0 and 100, got %d.", percent)
	}

	todo, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	todo.SetPercentComplete(percent)
	return s.gateway.Update(ctx, todo)
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskhive/task-api/internal/core/domain"
	"github.com/taskhive/task-api/internal/core/ports"
)

// TaskService implements task use cases with per-resource ownership
// enforcement: only the owning identity may read, mutate, or delete a task.
type TaskService struct {
	repo ports.TaskRepository
	log  zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, log zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, log: log}
}

// Create persists a new task owned by ownerID. The owner comes from the
// authenticated identity, never from the payload.
func (s *TaskService) Create(ctx context.Context, ownerID string, input ports.CreateTaskInput) (*domain.Task, error) {
	priority := domain.Priority(input.Priority)
	if input.Priority == "" {
		priority = domain.PriorityMedium
	}

	task := &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Priority:    priority,
		DueDate:     input.DueDate,
		UserID:      ownerID,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		s.log.Error().Err(err).Str("owner", ownerID).Msg("failed to create task")
		return nil, err
	}

	s.log.Info().Str("task_id", created.ID).Str("owner", ownerID).Msg("task created")
	return created, nil
}

// List returns all tasks owned by ownerID.
func (s *TaskService) List(ctx context.Context, ownerID string) ([]*domain.Task, error) {
	return s.repo.FindByOwner(ctx, ownerID)
}

// Search returns the owner's tasks whose title contains query,
// case-insensitively. An empty query matches everything.
func (s *TaskService) Search(ctx context.Context, ownerID, query string) ([]*domain.Task, error) {
	return s.repo.SearchByTitle(ctx, ownerID, query)
}

// Update applies a partial update to an owned task. Only non-nil input
// fields overwrite; a present-but-empty value clears the stored field.
func (s *TaskService) Update(ctx context.Context, ownerID, taskID string, input ports.UpdateTaskInput) (*domain.Task, error) {
	task, err := s.loadOwned(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Category != nil {
		task.Category = *input.Category
	}
	if input.Priority != nil {
		task.Priority = domain.Priority(*input.Priority)
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	if input.IsCompleted != nil {
		task.IsCompleted = *input.IsCompleted
	}

	if err := s.repo.Update(ctx, task); err != nil {
		s.log.Error().Err(err).Str("task_id", taskID).Msg("failed to update task")
		return nil, err
	}
	return task, nil
}

// Complete marks an owned task as completed.
func (s *TaskService) Complete(ctx context.Context, ownerID, taskID string) (*domain.Task, error) {
	task, err := s.loadOwned(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}

	task.IsCompleted = true
	if err := s.repo.Update(ctx, task); err != nil {
		s.log.Error().Err(err).Str("task_id", taskID).Msg("failed to complete task")
		return nil, err
	}
	return task, nil
}

// Delete removes an owned task.
func (s *TaskService) Delete(ctx context.Context, ownerID, taskID string) error {
	if _, err := s.loadOwned(ctx, ownerID, taskID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, taskID); err != nil {
		s.log.Error().Err(err).Str("task_id", taskID).Msg("failed to delete task")
		return err
	}

	s.log.Info().Str("task_id", taskID).Str("owner", ownerID).Msg("task deleted")
	return nil
}

// loadOwned fetches a task and enforces the access policy: missing task →
// ErrTaskNotFound, owner mismatch → ErrNotTaskOwner. No data from another
// user's task is ever returned.
func (s *TaskService) loadOwned(ctx context.Context, ownerID, taskID string) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	if task.UserID != ownerID {
		return nil, domain.ErrNotTaskOwner
	}
	return task, nil
}

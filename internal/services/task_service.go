package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"todolist.com/todolist/internal/cache"
	dto "todolist.com/todolist/internal/data_models"
	apperrors "todolist.com/todolist/internal/errors"
	repository "todolist.com/todolist/internal/repositories"
	model "todolist.com/todolist/pkg/models"
)

type TaskService struct {
	repo   *repository.TaskRepository
	tags   cache.TagCache
	logger *zap.Logger
}

func NewTaskService(
	repo *repository.TaskRepository,
	tags cache.TagCache,
	logger *zap.Logger,
) *TaskService {
	if tags == nil {
		tags = cache.NoopTagCache{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TaskService{
		repo:   repo,
		tags:   tags,
		logger: logger,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, req dto.CreateTaskRequest) (*model.Task, error) {
	task := &model.Task{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Tags:        model.Tags(req.Tags),
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}

	dueDate, err := coerceDueDate(req.DueDate)
	if err != nil {
		return nil, err
	}
	task.DueDate = dueDate

	created, err := s.repo.CreateTask(ctx, task)
	if err != nil {
		return nil, err
	}

	s.invalidateTags(ctx)
	return created, nil
}

func (s *TaskService) GetTask(ctx context.Context, id uint) (*model.Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TaskService) UpdateTask(ctx context.Context, id uint, req dto.UpdateTaskRequest) (*model.Task, error) {
	patch := repository.TaskPatch{
		Description: req.Description,
		Completed:   req.Completed,
	}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		patch.Title = &title
	}
	if req.Tags != nil {
		tags := model.Tags(*req.Tags)
		patch.Tags = &tags
	}
	if req.DueDate != nil {
		if strings.TrimSpace(*req.DueDate) == "" {
			patch.ClearDueDate = true
		} else {
			dueDate, err := coerceDueDate(req.DueDate)
			if err != nil {
				return nil, err
			}
			patch.DueDate = dueDate
		}
	}

	task, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.invalidateTags(ctx)
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateTags(ctx)
	return nil
}

func (s *TaskService) ListTasks(ctx context.Context, req dto.TaskFilterRequest) ([]model.Task, error) {
	filters, err := BuildFilters(req)
	if err != nil {
		return nil, err
	}

	return s.repo.FindAll(ctx, repository.TaskPredicate{
		Completed: filters.Completed,
		From:      filters.DateFrom,
		To:        filters.UpperBound(),
	})
}

// ListTags returns the distinct tags across all tasks in first-seen order.
func (s *TaskService) ListTags(ctx context.Context) ([]string, error) {
	cached, err := s.tags.GetTags(ctx)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("tag cache read failed", zap.Error(err))
	}

	tagSets, err := s.repo.ListTags(ctx)
	if err != nil {
		return nil, err
	}

	tags := DistinctTags(tagSets)

	if err := s.tags.SetTags(ctx, tags); err != nil {
		s.logger.Warn("tag cache write failed", zap.Error(err))
	}
	return tags, nil
}

func (s *TaskService) invalidateTags(ctx context.Context) {
	if err := s.tags.Invalidate(ctx); err != nil {
		s.logger.Warn("tag cache invalidation failed", zap.Error(err))
	}
}

func DistinctTags(tagSets []model.Tags) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, set := range tagSets {
		for _, tag := range set {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	return out
}

// BuildFilters converts the wire filter into a predicate. DateTo is kept as
// sent; callers widen it with UpperBound.
func BuildFilters(req dto.TaskFilterRequest) (model.TaskFilters, error) {
	filters := model.TaskFilters{Completed: req.Completed}

	if req.DateFrom != nil && strings.TrimSpace(*req.DateFrom) != "" {
		from, err := model.ParseDate(*req.DateFrom)
		if err != nil {
			return model.TaskFilters{}, apperrors.NewValidationError("dateFrom must be an ISO-8601 date")
		}
		filters.DateFrom = &from
	}
	if req.DateTo != nil && strings.TrimSpace(*req.DateTo) != "" {
		to, err := model.ParseDate(*req.DateTo)
		if err != nil {
			return model.TaskFilters{}, apperrors.NewValidationError("dateTo must be an ISO-8601 date")
		}
		filters.DateTo = &to
	}

	return filters, nil
}

func coerceDueDate(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}

	due, err := model.ParseDate(*raw)
	if err != nil {
		return nil, apperrors.NewValidationError("dueDate must be an ISO-8601 date")
	}
	return &due, nil
}

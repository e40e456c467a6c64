package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "todolist.com/todolist/internal/errors"
	model "todolist.com/todolist/pkg/models"
)

type TaskRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// TaskPredicate narrows FindAll. Nil fields are unconstrained; To is
// compared inclusively and is expected to be widened by the caller.
type TaskPredicate struct {
	Completed *bool
	From      *time.Time
	To        *time.Time
}

// TaskPatch lists the fields an update replaces. Nil fields are retained.
type TaskPatch struct {
	Title        *string
	Description  *string
	Completed    *bool
	Tags         *model.Tags
	DueDate      *time.Time
	ClearDueDate bool
}

const effectiveDateColumn = "COALESCE(due_date, created_at)"

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (r *TaskRepository) CreateTask(ctx context.Context, task *model.Task) (*model.Task, error) {
	if task.Title == "" {
		return nil, apperrors.NewValidationError("title is required")
	}

	now := r.now()
	task.ID = 0
	task.CreatedAt = now
	task.UpdatedAt = now
	if task.Tags == nil {
		task.Tags = model.Tags{}
	}
	if task.DueDate != nil {
		due := task.DueDate.UTC()
		task.DueDate = &due
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}

	return task, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) FindAll(ctx context.Context, p TaskPredicate) ([]model.Task, error) {
	query := r.db.WithContext(ctx).Model(&model.Task{})

	if p.Completed != nil {
		query = query.Where("completed = ?", *p.Completed)
	}
	if p.From != nil {
		query = query.Where(effectiveDateColumn+" >= ?", p.From.UTC())
	}
	if p.To != nil {
		query = query.Where(effectiveDateColumn+" <= ?", p.To.UTC())
	}

	tasks := []model.Task{}
	if err := query.Order("created_at desc").Order("id desc").Find(&tasks).Error; err != nil {
		return nil, err
	}

	return tasks, nil
}

func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	return r.FindAll(ctx, TaskPredicate{})
}

func (r *TaskRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).Count(&count).Error
	return count, err
}

// ListTags returns the tag column of every task.
func (r *TaskRepository) ListTags(ctx context.Context) ([]model.Tags, error) {
	var rows []model.Task
	if err := r.db.WithContext(ctx).Select("tags").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]model.Tags, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Tags)
	}
	return out, nil
}

func (r *TaskRepository) Update(ctx context.Context, id uint, patch TaskPatch) (*model.Task, error) {
	updates := map[string]interface{}{
		"updated_at": r.now(),
	}
	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, apperrors.NewValidationError("title must not be empty")
		}
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Completed != nil {
		updates["completed"] = *patch.Completed
	}
	if patch.Tags != nil {
		tags := *patch.Tags
		if tags == nil {
			tags = model.Tags{}
		}
		updates["tags"] = tags
	}
	switch {
	case patch.ClearDueDate:
		updates["due_date"] = gorm.Expr("NULL")
	case patch.DueDate != nil:
		updates["due_date"] = patch.DueDate.UTC()
	}

	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).
		Updates(updates)

	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		return nil, apperrors.ErrTaskNotFound
	}

	return r.FindByID(ctx, id)
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Task{}, id)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return apperrors.ErrTaskNotFound
	}

	return nil
}

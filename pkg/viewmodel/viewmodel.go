package viewmodel

import (
	"context"
	"sync"
	"time"

	"todolist.com/todolist/pkg/client"
	model "todolist.com/todolist/pkg/models"
)

// TaskAPI is the subset of the remote client the view model drives.
type TaskAPI interface {
	List(ctx context.Context, filters *model.TaskFilters) ([]model.Task, error)
	Create(ctx context.Context, data client.CreateTaskData) (*model.Task, error)
	Update(ctx context.Context, id uint, data client.UpdateTaskData) (*model.Task, error)
	Delete(ctx context.Context, id uint) error
	ListTags(ctx context.Context) ([]string, error)
}

// Result is what every mutation returns instead of an error.
type Result struct {
	Task *model.Task
	Err  error
}

func (r Result) Success() bool {
	return r.Err == nil
}

// ConfirmFunc is asked before a delete request is issued.
type ConfirmFunc func(task model.Task) bool

type Option func(*ViewModel)

func WithClock(now func() time.Time) Option {
	return func(vm *ViewModel) {
		vm.now = now
	}
}

// ViewModel derives the visible task list from the session store plus the
// user's filter and sort choices, and reconciles mutations into the store
// once the server confirms them.
type ViewModel struct {
	api     TaskAPI
	session *Session
	store   *Store
	now     func() time.Time

	mu        sync.RWMutex
	filters   model.TaskFilters
	sortOrder SortOrder
}

func New(api TaskAPI, session *Session, opts ...Option) *ViewModel {
	vm := &ViewModel{
		api:       api,
		session:   session,
		store:     session.Store(),
		now:       time.Now,
		sortOrder: SortDescending,
	}
	for _, opt := range opts {
		opt(vm)
	}
	return vm
}

// EnsureLoaded fetches the unfiltered collection the first time any view
// model of the session asks for it. Later calls are no-ops.
func (vm *ViewModel) EnsureLoaded(ctx context.Context) error {
	if !vm.session.claimInitialLoad() {
		return nil
	}
	return vm.fetch(ctx, nil)
}

// LoadTasks refetches with the current filters applied server-side.
func (vm *ViewModel) LoadTasks(ctx context.Context) error {
	filters := vm.Filters()
	return vm.fetch(ctx, &filters)
}

func (vm *ViewModel) fetch(ctx context.Context, filters *model.TaskFilters) error {
	vm.store.begin()
	tasks, err := vm.api.List(ctx, filters)
	if err != nil {
		vm.store.fail(err)
		return err
	}
	vm.store.replaceAll(tasks)
	return nil
}

func (vm *ViewModel) AddTask(ctx context.Context, data client.CreateTaskData) Result {
	if err := validateCreate(data); err != nil {
		return Result{Err: err}
	}

	vm.store.begin()
	task, err := vm.api.Create(ctx, data)
	if err != nil {
		vm.store.fail(err)
		return Result{Err: err}
	}

	vm.store.prepend(*task)
	return Result{Task: task}
}

func (vm *ViewModel) EditTask(ctx context.Context, id uint, data client.UpdateTaskData) Result {
	if err := validateUpdate(data); err != nil {
		return Result{Err: err}
	}

	vm.store.begin()
	task, err := vm.api.Update(ctx, id, data)
	if err != nil {
		vm.store.fail(err)
		return Result{Err: err}
	}

	vm.store.replace(*task)
	return Result{Task: task}
}

// RemoveTask issues the delete only after confirm approves it.
func (vm *ViewModel) RemoveTask(ctx context.Context, id uint, confirm ConfirmFunc) Result {
	task, ok := vm.store.Find(id)
	if !ok {
		task = model.Task{ID: id}
	}
	if confirm == nil || !confirm(task) {
		return Result{Err: ErrDeleteNotConfirmed}
	}

	vm.store.begin()
	if err := vm.api.Delete(ctx, id); err != nil {
		vm.store.fail(err)
		return Result{Err: err}
	}

	vm.store.remove(id)
	return Result{}
}

func (vm *ViewModel) Tags(ctx context.Context) ([]string, error) {
	return vm.api.ListTags(ctx)
}

func (vm *ViewModel) Filters() model.TaskFilters {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.filters
}

func (vm *ViewModel) SetFilters(filters model.TaskFilters) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.filters = filters
}

// UpdateFilters overlays the set fields of filters onto the current ones.
func (vm *ViewModel) UpdateFilters(filters model.TaskFilters) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.filters = vm.filters.Merge(filters)
}

// ResetFilters clears every filter and restores descending order.
func (vm *ViewModel) ResetFilters() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.filters = model.TaskFilters{}
	vm.sortOrder = SortDescending
}

func (vm *ViewModel) SortOrder() SortOrder {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.sortOrder
}

func (vm *ViewModel) SetSortOrder(order SortOrder) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.sortOrder = order.normalize()
}

// View recomputes the visible tasks and statistics from current state.
func (vm *ViewModel) View() View {
	vm.mu.RLock()
	filters, order := vm.filters, vm.sortOrder
	vm.mu.RUnlock()

	return DeriveView(vm.store.Tasks(), filters, order, vm.now())
}

func (vm *ViewModel) Status() Status {
	return vm.store.Status()
}

func (vm *ViewModel) LastError() string {
	return vm.store.LastError()
}

func (vm *ViewModel) ClearError() {
	vm.store.ClearError()
}

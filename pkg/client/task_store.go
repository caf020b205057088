package client

import (
	"context"
	"sync"
	"time"
)

// Pagination is the last page position reported by the server.
type Pagination struct {
	CurrentPage int
	TotalPages  int
	TotalTasks  int64
	PerPage     int
}

func defaultPagination() Pagination {
	return Pagination{CurrentPage: 1, TotalPages: 1, PerPage: 15}
}

// TaskStore caches tasks and lists. Mutations splice the server's reply into
// the cache without refetching, so the cached order can drift from what the
// active filters would return. Concurrent calls are not coordinated; the loading
// flag only reports that some call is outstanding.
type TaskStore struct {
	api *Client
	now func() time.Time

	mu          sync.RWMutex
	tasks       []Task
	lists       []TaskList
	currentTask *Task
	currentList *TaskList
	loading     bool
	err         string
	page        Pagination
	filters     TaskFilters
}

type TaskStoreOption func(*TaskStore)

// WithClock overrides the clock used by Overdue.
func WithClock(now func() time.Time) TaskStoreOption {
	return func(s *TaskStore) { s.now = now }
}

func NewTaskStore(api *Client, opts ...TaskStoreOption) *TaskStore {
	s := &TaskStore{
		api:     api,
		now:     time.Now,
		tasks:   []Task{},
		lists:   []TaskList{},
		page:    defaultPagination(),
		filters: DefaultTaskFilters(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *TaskStore) Tasks() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Task(nil), s.tasks...)
}

func (s *TaskStore) Lists() []TaskList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]TaskList(nil), s.lists...)
}

func (s *TaskStore) CurrentTask() *Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentTask == nil {
		return nil
	}
	t := *s.currentTask
	return &t
}

func (s *TaskStore) CurrentList() *TaskList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentList == nil {
		return nil
	}
	l := *s.currentList
	return &l
}

func (s *TaskStore) SetCurrentTask(t *Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentTask = nil
	if t != nil {
		c := *t
		s.currentTask = &c
	}
}

func (s *TaskStore) SetCurrentList(l *TaskList) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentList = nil
	if l != nil {
		c := *l
		s.currentList = &c
	}
}

func (s *TaskStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *TaskStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *TaskStore) ClearError() {
	s.mu.Lock()
	s.err = ""
	s.mu.Unlock()
}

func (s *TaskStore) Pagination() Pagination {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.page
}

func (s *TaskStore) Filters() TaskFilters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// SetFilters merges f into the stored filters.
func (s *TaskStore) SetFilters(f TaskFilters) {
	s.mu.Lock()
	s.filters = s.filters.Merge(f)
	s.mu.Unlock()
}

func (s *TaskStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = []Task{}
	s.lists = []TaskList{}
	s.currentTask, s.currentList = nil, nil
	s.loading, s.err = false, ""
	s.page = defaultPagination()
	s.filters = DefaultTaskFilters()
}

func (s *TaskStore) Pending() []Task {
	return s.filter(func(t Task) bool { return !t.Completed })
}

func (s *TaskStore) Completed() []Task {
	return s.filter(func(t Task) bool { return t.Completed })
}

// Overdue returns incomplete cached tasks whose due date has passed.
func (s *TaskStore) Overdue() []Task {
	now := s.now()
	return s.filter(func(t Task) bool {
		return !t.Completed && t.DueDate != nil && t.DueDate.Before(now)
	})
}

// ByPriority groups cached tasks under high, medium and low.
func (s *TaskStore) ByPriority() map[string][]Task {
	out := map[string][]Task{"high": {}, "medium": {}, "low": {}}
	for _, t := range s.Tasks() {
		if _, ok := out[t.Priority]; ok {
			out[t.Priority] = append(out[t.Priority], t)
		}
	}
	return out
}

// ListsWithCounts recomputes each list's counts from the cached tasks.
func (s *TaskStore) ListsWithCounts() []TaskList {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]TaskList, len(s.lists))
	for i, l := range s.lists {
		var total, completed int64
		for _, t := range s.tasks {
			if t.InList(l.ID) {
				total++
				if t.Completed {
					completed++
				}
			}
		}
		l.TasksCount, l.CompletedTasksCount = &total, &completed
		out[i] = l
	}
	return out
}

func (s *TaskStore) filter(keep func(Task) bool) []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []Task{}
	for _, t := range s.tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

func (s *TaskStore) begin() {
	s.mu.Lock()
	s.loading, s.err = true, ""
	s.mu.Unlock()
}

// settle clears loading and records err. The caller must hold mu.
func (s *TaskStore) settle(err error, fallback string) bool {
	s.loading = false
	if err != nil {
		s.err = errorMessage(err, fallback)
		return false
	}
	return true
}

func (s *TaskStore) FetchTaskLists(ctx context.Context) ([]TaskList, error) {
	s.begin()
	lists, err := s.api.TaskLists(ctx, "tasks_count")

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.settle(err, "Failed to fetch task lists") {
		return nil, err
	}
	s.lists = lists
	return lists, nil
}

// FetchTaskList loads one list with its tasks and makes it current.
func (s *TaskStore) FetchTaskList(ctx context.Context, id uint) (*TaskList, error) {
	s.begin()
	list, err := s.api.TaskList(ctx, id, "tasks")

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.settle(err, "Failed to fetch task list") {
		return nil, err
	}
	s.currentList = list
	return list, nil
}

func (s *TaskStore) CreateTaskList(ctx context.Context, in TaskListInput) (*TaskList, error) {
	s.begin()
	list, err := s.api.CreateTaskList(ctx, in)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.settle(err, "Failed to create task list") {
		return nil, err
	}
	s.lists = Append(s.lists, *list)
	return list, nil
}

func (s *TaskStore) UpdateTaskList(ctx context.Context, id uint, in TaskListInput) (*TaskList, error) {
	s.begin()
	list, err := s.api.UpdateTaskList(ctx, id, in)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.settle(err, "Failed to update task list") {
		return nil, err
	}
	s.lists = ReplaceByID(s.lists, *list)
	if s.currentList != nil && s.currentList.ID == id {
		c := *list
		s.currentList = &c
	}
	return list, nil
}

// DeleteTaskList also drops the cached tasks that were in the list.
func (s *TaskStore) DeleteTaskList(ctx context.Context, id uint) error {
	s.begin()
	err := s.api.DeleteTaskList(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.settle(err, "Failed to delete task list") {
		return err
	}
	s.lists = RemoveByID(s.lists, id)
	s.tasks = RemoveFunc(s.tasks, func(t Task) bool { return t.InList(id) })
	if s.currentList != nil && s.currentList.ID == id {
		s.currentList = nil
	}
	return nil
}

// FetchTasks loads a page using the stored filters merged with overrides. The
// overrides apply to this call only.
func (s *TaskStore) FetchTasks(ctx context.Context, overrides TaskFilters) (*TaskPage, error) {
	s.begin()
	page, err := s.api.Tasks(ctx, s.Filters().Merge(overrides))

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.settle(err, "Failed to fetch tasks") {
		return nil, err
	}
	s.tasks = page.Data
	s.page = Pagination{
		CurrentPage: page.Meta.CurrentPage,
		TotalPages:  page.Meta.LastPage,
		TotalTasks:  page.Meta.Total,
		PerPage:     page.Meta.PerPage,
	}
	return page, nil
}

func (s *TaskStore) CreateTask(ctx context.Context, in TaskInput) (*Task, error) {
	s.begin()
	task, err := s.api.CreateTask(ctx, in)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.settle(err, "Failed to create task") {
		return nil, err
	}
	s.tasks = Prepend(s.tasks, *task)
	return task, nil
}

func (s *TaskStore) UpdateTask(ctx context.Context, id uint, in TaskInput) (*Task, error) {
	s.begin()
	task, err := s.api.UpdateTask(ctx, id, in)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.settle(err, "Failed to update task") {
		return nil, err
	}
	s.tasks = ReplaceByID(s.tasks, *task)
	if s.currentTask != nil && s.currentTask.ID == id {
		c := *task
		s.currentTask = &c
	}
	return task, nil
}

func (s *TaskStore) DeleteTask(ctx context.Context, id uint) error {
	s.begin()
	err := s.api.DeleteTask(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.settle(err, "Failed to delete task") {
		return err
	}
	s.tasks = RemoveByID(s.tasks, id)
	if s.currentTask != nil && s.currentTask.ID == id {
		s.currentTask = nil
	}
	return nil
}

// ToggleTask flips a cached task and merges the reply into it. Tasks that are
// not cached are left alone and (nil, nil) is returned. The loading flag is not
// touched.
func (s *TaskStore) ToggleTask(ctx context.Context, id uint) (*TaskToggle, error) {
	s.mu.RLock()
	_, cached := FindByID(s.tasks, id)
	s.mu.RUnlock()
	if !cached {
		return nil, nil
	}

	res, err := s.api.ToggleTask(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.err = errorMessage(err, "Failed to toggle task")
		return nil, err
	}
	if task, ok := FindByID(s.tasks, id); ok {
		task.Title = res.Title
		task.Completed = res.Completed
		task.CompletedAt = res.CompletedAt
		task.UpdatedAt = res.UpdatedAt
		s.tasks = ReplaceByID(s.tasks, task)
	}
	return res, nil
}

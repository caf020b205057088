package client_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskforge.com/taskforge/internal/app/apptest"
	"taskforge.com/taskforge/pkg/client"
)

func newClient(t *testing.T) (*client.Client, *apptest.Server) {
	t.Helper()

	cfg := apptest.Config()
	cfg.CSRFEnabled = true
	srv := apptest.NewServer(t, cfg)

	c, err := client.New(srv.URL + "/v1")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c, srv
}

func signIn(t *testing.T, c *client.Client) *client.AuthStore {
	t.Helper()

	auth := client.NewAuthStore(c)
	if _, err := auth.Register(context.Background(), client.Registration{
		Name:                 "Store User",
		Email:                "store@example.com",
		Password:             "password123",
		PasswordConfirmation: "password123",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	return auth
}

func ptr[T any](v T) *T { return &v }

func TestAuthStore_Lifecycle(t *testing.T) {
	c, _ := newClient(t)
	ctx := context.Background()
	auth := signIn(t, c)

	if !auth.IsAuthenticated() || auth.User().Email != "store@example.com" {
		t.Fatalf("expected signed-in user, got %+v", auth.User())
	}

	if _, err := auth.FetchUser(ctx); err != nil {
		t.Fatalf("fetch user: %v", err)
	}

	if err := auth.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if auth.IsAuthenticated() {
		t.Fatal("expected user cleared after logout")
	}

	_, err := auth.FetchUser(ctx)
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) || apiErr.Status != 401 || apiErr.Code != "UNAUTHENTICATED" {
		t.Fatalf("expected 401 APIError, got %v", err)
	}
	if auth.IsAuthenticated() || auth.Err() == "" {
		t.Fatalf("expected failed fetch to sign out and record an error, got %q", auth.Err())
	}

	_, err = auth.Login(ctx, client.Credentials{Email: "store@example.com", Password: "wrong-pass"})
	if err == nil || auth.Err() != "These credentials do not match our records" {
		t.Fatalf("expected login failure with message, got err=%v msg=%q", err, auth.Err())
	}
	if auth.Loading() {
		t.Fatal("loading must be cleared after a call")
	}

	if _, err := auth.Login(ctx, client.Credentials{Email: "store@example.com", Password: "password123"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	if !auth.IsAuthenticated() {
		t.Fatal("expected user after login")
	}

	auth.Reset()
	if auth.IsAuthenticated() || auth.Err() != "" {
		t.Fatal("reset must clear state")
	}
}

func TestTaskStore_SplicesMutations(t *testing.T) {
	c, _ := newClient(t)
	ctx := context.Background()
	signIn(t, c)
	store := client.NewTaskStore(c)

	list, err := store.CreateTaskList(ctx, client.TaskListInput{Name: ptr("Groceries")})
	if err != nil {
		t.Fatalf("create list: %v", err)
	}

	milk, err := store.CreateTask(ctx, client.TaskInput{Title: ptr("Milk"), ListID: &list.ID})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	bread, err := store.CreateTask(ctx, client.TaskInput{Title: ptr("Bread"), Priority: ptr("high")})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	tasks := store.Tasks()
	if len(tasks) != 2 || tasks[0].ID != bread.ID || tasks[1].ID != milk.ID {
		t.Fatalf("expected newest task first, got %+v", tasks)
	}

	if _, err := store.UpdateTask(ctx, milk.ID, client.TaskInput{Title: ptr("Oat milk")}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := store.Tasks()[1].Title; got != "Oat milk" {
		t.Fatalf("expected in-place replace, got %s", got)
	}

	res, err := store.ToggleTask(ctx, milk.ID)
	if err != nil || res == nil || !res.Completed {
		t.Fatalf("toggle: res=%+v err=%v", res, err)
	}
	toggled := store.Tasks()[1]
	if !toggled.Completed || toggled.CompletedAt == nil || toggled.TaskList == nil {
		t.Fatalf("expected merged toggle keeping relations, got %+v", toggled)
	}

	if len(store.Pending()) != 1 || len(store.Completed()) != 1 {
		t.Fatalf("unexpected pending/completed split")
	}
	if high := store.ByPriority()["high"]; len(high) != 1 || high[0].ID != bread.ID {
		t.Fatalf("unexpected priority groups: %+v", store.ByPriority())
	}

	counts := store.ListsWithCounts()
	if len(counts) != 1 || *counts[0].TasksCount != 1 || *counts[0].CompletedTasksCount != 1 {
		t.Fatalf("unexpected list counts: %+v", counts)
	}

	if err := store.DeleteTaskList(ctx, list.ID); err != nil {
		t.Fatalf("delete list: %v", err)
	}
	if tasks := store.Tasks(); len(tasks) != 1 || tasks[0].ID != bread.ID {
		t.Fatalf("expected list tasks dropped from cache, got %+v", tasks)
	}
	if len(store.Lists()) != 0 {
		t.Fatal("expected list removed from cache")
	}

	if err := store.DeleteTask(ctx, bread.ID); err != nil {
		t.Fatalf("delete task: %v", err)
	}
	if len(store.Tasks()) != 0 {
		t.Fatal("expected task removed from cache")
	}

	if res, err := store.ToggleTask(ctx, bread.ID); res != nil || err != nil {
		t.Fatalf("toggle of uncached task must be a no-op, got %+v %v", res, err)
	}
}

func TestTaskStore_FetchTasksAndFilters(t *testing.T) {
	c, _ := newClient(t)
	ctx := context.Background()
	signIn(t, c)

	later := apptest.Now.Add(48 * time.Hour)
	store := client.NewTaskStore(c, client.WithClock(func() time.Time { return later }))

	due := apptest.Now.Add(time.Hour)
	for _, in := range []client.TaskInput{
		{Title: ptr("soon"), DueDate: &due},
		{Title: ptr("plain")},
		{Title: ptr("urgent"), Priority: ptr("high")},
	} {
		if _, err := c.CreateTask(ctx, in); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	page, err := store.FetchTasks(ctx, client.TaskFilters{PerPage: 2})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(page.Data) != 2 || page.Data[0].Title != "soon" {
		t.Fatalf("unexpected page: %+v", page.Data)
	}
	if p := store.Pagination(); p.TotalTasks != 3 || p.TotalPages != 2 || p.PerPage != 2 {
		t.Fatalf("unexpected pagination: %+v", p)
	}
	if store.Filters().PerPage != 0 {
		t.Fatal("per-call overrides must not stick")
	}
	if page.Data[0].Tags == nil {
		t.Fatal("default include must embed tags")
	}

	if overdue := store.Overdue(); len(overdue) != 1 || overdue[0].Title != "soon" {
		t.Fatalf("unexpected overdue: %+v", overdue)
	}

	store.SetFilters(client.TaskFilters{Priority: "high"})
	if _, err := store.FetchTasks(ctx, client.TaskFilters{}); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if tasks := store.Tasks(); len(tasks) != 1 || tasks[0].Title != "urgent" {
		t.Fatalf("expected filtered fetch, got %+v", tasks)
	}
	if f := store.Filters(); f.Sort != "position" || f.Priority != "high" {
		t.Fatalf("expected merged filters, got %+v", f)
	}

	store.SetFilters(client.TaskFilters{Priority: "bogus"})
	if _, err := store.FetchTasks(ctx, client.TaskFilters{}); err == nil || store.Err() == "" {
		t.Fatalf("expected validation failure to be recorded, got %v", err)
	}

	store.Reset()
	if len(store.Tasks()) != 0 || store.Filters() != client.DefaultTaskFilters() || store.Err() != "" {
		t.Fatal("reset must restore defaults")
	}
}

func TestClient_ReorderAndTags(t *testing.T) {
	c, _ := newClient(t)
	ctx := context.Background()
	signIn(t, c)

	list, err := c.CreateTaskList(ctx, client.TaskListInput{Name: ptr("Inbox")})
	if err != nil {
		t.Fatalf("create list: %v", err)
	}
	a, _ := c.CreateTask(ctx, client.TaskInput{Title: ptr("a"), ListID: &list.ID})
	b, _ := c.CreateTask(ctx, client.TaskInput{Title: ptr("b")})

	n, err := c.ReorderTasks(ctx, []client.TaskPosition{
		{ID: a.ID, Position: 3, DetachList: true},
		{ID: b.ID, Position: 0, ListID: &list.ID},
		{ID: 999, Position: 1},
	})
	if err != nil || n != 2 {
		t.Fatalf("reorder: n=%d err=%v", n, err)
	}

	got, err := c.Task(ctx, a.ID, "")
	if err != nil || got.ListID != nil || got.Position != 3 {
		t.Fatalf("expected a detached at 3, got %+v %v", got, err)
	}

	tag, err := c.CreateTag(ctx, client.TagInput{Name: ptr("errand")})
	if err != nil {
		t.Fatalf("create tag: %v", err)
	}
	updated, err := c.UpdateTask(ctx, b.ID, client.TaskInput{Tags: []uint{tag.ID}})
	if err != nil || len(updated.Tags) != 1 {
		t.Fatalf("tag task: %+v %v", updated, err)
	}

	tags, err := c.Tags(ctx, "tasks_count")
	if err != nil || len(tags) != 1 || *tags[0].TasksCount != 1 {
		t.Fatalf("list tags: %+v %v", tags, err)
	}

	n, err = c.ReorderTaskLists(ctx, []client.ListPosition{{ID: list.ID, Position: 4}})
	if err != nil || n != 1 {
		t.Fatalf("reorder lists: n=%d err=%v", n, err)
	}

	h, err := c.Health(ctx)
	if err != nil || h.Status != "ok" {
		t.Fatalf("health: %+v %v", h, err)
	}
}

package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"testing"

	"taskforge.com/taskforge/internal/app/apptest"
)

type apiClient struct {
	t    *testing.T
	base string
	http *http.Client
}

type response struct {
	Status int
	Header http.Header
	Body   map[string]interface{}
}

func newAPIClient(t *testing.T, srv *apptest.Server) *apiClient {
	jar, _ := cookiejar.New(nil)
	return &apiClient{t: t, base: srv.URL, http: &http.Client{Jar: jar}}
}

func (a *apiClient) do(method, path string, body interface{}) response {
	a.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			a.t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, a.base+path, reader)
	if err != nil {
		a.t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.http.Do(req)
	if err != nil {
		a.t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	out := response{Status: resp.StatusCode, Header: resp.Header}
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out.Body); err != nil {
			a.t.Fatalf("%s %s: decode %q: %v", method, path, raw, err)
		}
	}
	return out
}

func (a *apiClient) register(email string) map[string]interface{} {
	a.t.Helper()
	res := a.do(http.MethodPost, "/v1/auth/register", map[string]interface{}{
		"name":                  "Test User",
		"email":                 email,
		"password":              "password123",
		"password_confirmation": "password123",
	})
	if res.Status != http.StatusCreated {
		a.t.Fatalf("register: expected 201, got %d %v", res.Status, res.Body)
	}
	return res.Body["data"].(map[string]interface{})
}

func (a *apiClient) create(path string, body map[string]interface{}) map[string]interface{} {
	a.t.Helper()
	res := a.do(http.MethodPost, path, body)
	if res.Status != http.StatusCreated {
		a.t.Fatalf("POST %s: expected 201, got %d %v", path, res.Status, res.Body)
	}
	return res.Body["data"].(map[string]interface{})
}

func data(res response) map[string]interface{} {
	d, _ := res.Body["data"].(map[string]interface{})
	return d
}

func dataList(res response) []interface{} {
	d, _ := res.Body["data"].([]interface{})
	return d
}

func errorCode(res response) string {
	e, _ := res.Body["error"].(map[string]interface{})
	code, _ := e["code"].(string)
	return code
}

func id(obj map[string]interface{}) float64 {
	return obj["id"].(float64)
}

func path(prefix string, obj map[string]interface{}) string {
	return prefix + "/" + jsonNumber(id(obj))
}

func jsonNumber(f float64) string {
	raw, _ := json.Marshal(f)
	return string(raw)
}

func mustURL(t *testing.T, raw string) *url.URL {
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse %s: %v", raw, err)
	}
	return u
}

func TestHealth(t *testing.T) {
	srv := apptest.NewServer(t, apptest.Config())
	api := newAPIClient(t, srv)

	res := api.do(http.MethodGet, "/v1/health", nil)
	if res.Status != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Status)
	}
	if res.Body["status"] != "ok" || res.Body["environment"] != "testing" || res.Body["service"] != "TaskForge API" {
		t.Fatalf("unexpected health body: %v", res.Body)
	}
	if res.Header.Get("X-Request-Id") == "" {
		t.Fatal("expected a request id header")
	}
}

func TestUnknownEndpoint(t *testing.T) {
	srv := apptest.NewServer(t, apptest.Config())
	api := newAPIClient(t, srv)

	res := api.do(http.MethodGet, "/v1/nope", nil)
	if res.Status != http.StatusNotFound || errorCode(res) != "ENDPOINT_NOT_FOUND" {
		t.Fatalf("expected ENDPOINT_NOT_FOUND, got %d %v", res.Status, res.Body)
	}
	e := res.Body["error"].(map[string]interface{})
	if e["requested_path"] != "v1/nope" {
		t.Fatalf("expected requested_path v1/nope, got %v", e["requested_path"])
	}
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	srv := apptest.NewServer(t, apptest.Config())
	api := newAPIClient(t, srv)

	for _, p := range []string{"/v1/tasks", "/v1/task-lists", "/v1/tags", "/v1/auth/user"} {
		res := api.do(http.MethodGet, p, nil)
		if res.Status != http.StatusUnauthorized || errorCode(res) != "UNAUTHENTICATED" {
			t.Fatalf("GET %s: expected 401 UNAUTHENTICATED, got %d %v", p, res.Status, res.Body)
		}
	}
}

func TestAuthFlow(t *testing.T) {
	srv := apptest.NewServer(t, apptest.Config())
	api := newAPIClient(t, srv)

	user := api.register("Jane@Example.com")
	if user["email"] != "jane@example.com" {
		t.Fatalf("expected lowercased email, got %v", user["email"])
	}
	if _, ok := user["password_hash"]; ok {
		t.Fatal("password hash must not be serialized")
	}

	me := api.do(http.MethodGet, "/v1/me", nil)
	if me.Status != http.StatusOK || data(me)["id"] != user["id"] {
		t.Fatalf("expected /me to return the new user, got %d %v", me.Status, me.Body)
	}

	dup := api.do(http.MethodPost, "/v1/auth/register", map[string]interface{}{
		"name": "Again", "email": "jane@example.com",
		"password": "password123", "password_confirmation": "password123",
	})
	if dup.Status != http.StatusUnprocessableEntity || errorCode(dup) != "VALIDATION_ERROR" {
		t.Fatalf("expected validation error for taken email, got %d %v", dup.Status, dup.Body)
	}

	out := api.do(http.MethodPost, "/v1/auth/logout", nil)
	if out.Status != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", out.Status)
	}
	if res := api.do(http.MethodGet, "/v1/auth/user", nil); res.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", res.Status)
	}

	bad := api.do(http.MethodPost, "/v1/auth/login", map[string]interface{}{
		"email": "jane@example.com", "password": "nope-nope",
	})
	if bad.Status != http.StatusUnauthorized || errorCode(bad) != "INVALID_CREDENTIALS" {
		t.Fatalf("expected INVALID_CREDENTIALS, got %d %v", bad.Status, bad.Body)
	}

	ok := api.do(http.MethodPost, "/v1/auth/login", map[string]interface{}{
		"email": "jane@example.com", "password": "password123", "remember": true,
	})
	if ok.Status != http.StatusOK {
		t.Fatalf("login: expected 200, got %d %v", ok.Status, ok.Body)
	}
	if res := api.do(http.MethodGet, "/v1/auth/user", nil); res.Status != http.StatusOK {
		t.Fatalf("expected 200 after login, got %d", res.Status)
	}
}

func TestRegisterValidation(t *testing.T) {
	srv := apptest.NewServer(t, apptest.Config())
	api := newAPIClient(t, srv)

	res := api.do(http.MethodPost, "/v1/auth/register", map[string]interface{}{
		"name": "", "email": "not-an-email", "password": "short", "password_confirmation": "other",
	})
	if res.Status != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", res.Status)
	}
	details := res.Body["error"].(map[string]interface{})["details"].(map[string]interface{})
	for _, field := range []string{"name", "email", "password"} {
		if _, ok := details[field]; !ok {
			t.Fatalf("expected error for %s, got %v", field, details)
		}
	}
}

func TestTaskPositionsAndIncludeList(t *testing.T) {
	srv := apptest.NewServer(t, apptest.Config())
	api := newAPIClient(t, srv)
	api.register("a@example.com")

	groceries := api.create("/v1/task-lists", map[string]interface{}{"name": "Groceries"})
	if groceries["color"] != "#3b82f6" || groceries["position"].(float64) != 0 {
		t.Fatalf("unexpected list defaults: %v", groceries)
	}

	milk := api.create("/v1/tasks", map[string]interface{}{"title": "Milk", "list_id": id(groceries)})
	eggs := api.create("/v1/tasks", map[string]interface{}{"title": "Eggs", "list_id": id(groceries)})
	loose := api.create("/v1/tasks", map[string]interface{}{"title": "Loose"})

	if milk["position"].(float64) != 0 || eggs["position"].(float64) != 1 || loose["position"].(float64) != 0 {
		t.Fatalf("unexpected positions: %v %v %v", milk["position"], eggs["position"], loose["position"])
	}
	if milk["priority"] != "medium" || milk["completed"] != false {
		t.Fatalf("unexpected task defaults: %v", milk)
	}

	res := api.do(http.MethodGet, "/v1/tasks?list_id="+jsonNumber(id(groceries))+"&include=list", nil)
	if res.Status != http.StatusOK {
		t.Fatalf("expected 200, got %d %v", res.Status, res.Body)
	}
	tasks := dataList(res)
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	first := tasks[0].(map[string]interface{})
	list := first["task_list"].(map[string]interface{})
	if first["title"] != "Milk" || list["name"] != "Groceries" || list["color"] != "#3b82f6" {
		t.Fatalf("unexpected first task: %v", first)
	}
	if _, ok := first["tags"]; ok {
		t.Fatal("tags must be absent when not included")
	}

	meta := res.Body["meta"].(map[string]interface{})
	if meta["total"].(float64) != 2 || meta["current_page"].(float64) != 1 || meta["per_page"].(float64) != 15 {
		t.Fatalf("unexpected page meta: %v", meta)
	}

	res = api.do(http.MethodGet, "/v1/tasks?list_id=null", nil)
	if got := dataList(res); len(got) != 1 || got[0].(map[string]interface{})["title"] != "Loose" {
		t.Fatalf("expected only the loose task, got %v", got)
	}
}

func TestTaskValidation(t *testing.T) {
	srv := apptest.NewServer(t, apptest.Config())
	api := newAPIClient(t, srv)
	api.register("a@example.com")

	res := api.do(http.MethodPost, "/v1/tasks", map[string]interface{}{
		"title":    "",
		"priority": "urgent",
		"due_date": "2025-06-10T00:00:00Z",
	})
	if res.Status != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", res.Status)
	}
	details := res.Body["error"].(map[string]interface{})["details"].(map[string]interface{})
	for _, field := range []string{"title", "priority", "due_date"} {
		if _, ok := details[field]; !ok {
			t.Fatalf("expected error for %s, got %v", field, details)
		}
	}

	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/v1/tasks", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	raw, err := api.http.Do(req)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	raw.Body.Close()
	if raw.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed json, got %d", raw.StatusCode)
	}
}

func TestCrossOwnerAccessIsNotFound(t *testing.T) {
	srv := apptest.NewServer(t, apptest.Config())
	alice := newAPIClient(t, srv)
	bob := newAPIClient(t, srv)
	alice.register("alice@example.com")
	bob.register("bob@example.com")

	list := alice.create("/v1/task-lists", map[string]interface{}{"name": "Private"})
	task := alice.create("/v1/tasks", map[string]interface{}{"title": "Secret"})
	tag := alice.create("/v1/tags", map[string]interface{}{"name": "mine"})

	checks := []struct {
		method string
		path   string
		body   interface{}
	}{
		{http.MethodGet, path("/v1/tasks", task), nil},
		{http.MethodPut, path("/v1/tasks", task), map[string]interface{}{"title": ""}},
		{http.MethodDelete, path("/v1/tasks", task), nil},
		{http.MethodPost, path("/v1/tasks", task) + "/toggle", nil},
		{http.MethodGet, path("/v1/task-lists", list), nil},
		{http.MethodDelete, path("/v1/task-lists", list), nil},
		{http.MethodPatch, path("/v1/tags", tag), map[string]interface{}{"name": "x"}},
		{http.MethodGet, "/v1/tasks/abc", nil},
	}

	for _, c := range checks {
		res := bob.do(c.method, c.path, c.body)
		if res.Status != http.StatusNotFound || errorCode(res) != "RESOURCE_NOT_FOUND" {
			t.Fatalf("%s %s: expected 404 RESOURCE_NOT_FOUND, got %d %v", c.method, c.path, res.Status, res.Body)
		}
	}

	res := bob.do(http.MethodPost, "/v1/tasks", map[string]interface{}{"title": "x", "list_id": id(list)})
	if res.Status != http.StatusUnprocessableEntity || errorCode(res) != "INVALID_TASK_LIST" {
		t.Fatalf("expected INVALID_TASK_LIST, got %d %v", res.Status, res.Body)
	}
}

func TestToggleTwiceRestoresState(t *testing.T) {
	srv := apptest.NewServer(t, apptest.Config())
	api := newAPIClient(t, srv)
	api.register("a@example.com")
	task := api.create("/v1/tasks", map[string]interface{}{"title": "Flip"})

	res := api.do(http.MethodPost, path("/v1/tasks", task)+"/toggle", nil)
	if res.Status != http.StatusOK {
		t.Fatalf("toggle: expected 200, got %d", res.Status)
	}
	d := data(res)
	if d["completed"] != true || d["completed_at"] == nil {
		t.Fatalf("expected completed with completed_at, got %v", d)
	}
	if res.Body["meta"].(map[string]interface{})["message"] != "Task marked as completed" {
		t.Fatalf("unexpected toggle message: %v", res.Body["meta"])
	}

	res = api.do(http.MethodPost, path("/v1/tasks", task)+"/toggle", nil)
	d = data(res)
	if d["completed"] != false || d["completed_at"] != nil {
		t.Fatalf("expected pending without completed_at, got %v", d)
	}
}

func TestUpdateTaskTagsKeepsOwnedSubset(t *testing.T) {
	srv := apptest.NewServer(t, apptest.Config())
	alice := newAPIClient(t, srv)
	bob := newAPIClient(t, srv)
	alice.register("alice@example.com")
	bob.register("bob@example.com")

	mine := alice.create("/v1/tags", map[string]interface{}{"name": "home"})
	theirs := bob.create("/v1/tags", map[string]interface{}{"name": "work"})
	task := alice.create("/v1/tasks", map[string]interface{}{"title": "Tagged"})

	res := alice.do(http.MethodPatch, path("/v1/tasks", task), map[string]interface{}{
		"tags": []float64{id(mine), id(theirs)},
	})
	if res.Status != http.StatusOK {
		t.Fatalf("update: expected 200, got %d %v", res.Status, res.Body)
	}
	tags := data(res)["tags"].([]interface{})
	if len(tags) != 1 || tags[0].(map[string]interface{})["id"] != id(mine) {
		t.Fatalf("expected only the owned tag, got %v", tags)
	}
	if data(res)["title"] != "Tagged" {
		t.Fatalf("absent fields must be left alone, got %v", data(res)["title"])
	}
}

func TestReorderTasksReportsUpdatedCount(t *testing.T) {
	srv := apptest.NewServer(t, apptest.Config())
	api := newAPIClient(t, srv)
	api.register("a@example.com")
	a := api.create("/v1/tasks", map[string]interface{}{"title": "A"})
	b := api.create("/v1/tasks", map[string]interface{}{"title": "B"})

	res := api.do(http.MethodPost, "/v1/tasks/reorder", map[string]interface{}{
		"tasks": []map[string]interface{}{
			{"id": id(a), "position": 1},
			{"id": id(b), "position": 0},
			{"id": 999999, "position": 2},
		},
	})
	if res.Status != http.StatusOK {
		t.Fatalf("reorder: expected 200, got %d %v", res.Status, res.Body)
	}
	if n := res.Body["meta"].(map[string]interface{})["updated_count"].(float64); n != 2 {
		t.Fatalf("expected updated_count 2, got %v", n)
	}

	list := dataList(api.do(http.MethodGet, "/v1/tasks?sort=position", nil))
	if list[0].(map[string]interface{})["title"] != "B" {
		t.Fatalf("expected B first after reorder, got %v", list)
	}

	bad := api.do(http.MethodPost, "/v1/tasks/reorder", map[string]interface{}{
		"tasks": []map[string]interface{}{{"id": id(a)}},
	})
	details := bad.Body["error"].(map[string]interface{})["details"].(map[string]interface{})
	if _, ok := details["tasks.0.position"]; bad.Status != http.StatusUnprocessableEntity || !ok {
		t.Fatalf("expected tasks.0.position error, got %d %v", bad.Status, bad.Body)
	}
}

func TestOverdueAndPrioritySort(t *testing.T) {
	srv := apptest.NewServer(t, apptest.Config())
	api := newAPIClient(t, srv)
	api.register("a@example.com")

	late := api.create("/v1/tasks", map[string]interface{}{"title": "late", "priority": "low", "due_date": "2025-06-11T13:00:00Z"})
	api.create("/v1/tasks", map[string]interface{}{"title": "later", "priority": "high", "due_date": "2025-07-01T09:00:00Z"})
	done := api.create("/v1/tasks", map[string]interface{}{"title": "done", "due_date": "2025-06-11T14:00:00Z"})
	api.do(http.MethodPost, path("/v1/tasks", done)+"/toggle", nil)

	srv.Clock.Set(apptest.Now.AddDate(0, 0, 2))

	overdue := dataList(api.do(http.MethodGet, "/v1/tasks?due_date=overdue", nil))
	if len(overdue) != 1 || overdue[0].(map[string]interface{})["id"] != id(late) {
		t.Fatalf("expected only the late task overdue, got %v", overdue)
	}

	sorted := dataList(api.do(http.MethodGet, "/v1/tasks?sort=priority&order=desc", nil))
	var titles []string
	for _, item := range sorted {
		titles = append(titles, item.(map[string]interface{})["title"].(string))
	}
	want := []string{"later", "done", "late"}
	for i := range want {
		if titles[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, titles)
		}
	}
}

func TestPaginationLinks(t *testing.T) {
	srv := apptest.NewServer(t, apptest.Config())
	api := newAPIClient(t, srv)
	api.register("a@example.com")
	for _, title := range []string{"one", "two", "three"} {
		api.create("/v1/tasks", map[string]interface{}{"title": title})
	}

	res := api.do(http.MethodGet, "/v1/tasks?per_page=2&page=2&sort=position", nil)
	meta := res.Body["meta"].(map[string]interface{})
	links := res.Body["links"].(map[string]interface{})
	if meta["last_page"].(float64) != 2 || meta["from"].(float64) != 3 || meta["to"].(float64) != 3 {
		t.Fatalf("unexpected meta: %v", meta)
	}
	if links["next"] != nil || links["prev"] == nil {
		t.Fatalf("unexpected links: %v", links)
	}

	empty := api.do(http.MethodGet, "/v1/tasks?search=zzz", nil)
	emptyMeta := empty.Body["meta"].(map[string]interface{})
	if len(dataList(empty)) != 0 || emptyMeta["from"] != nil || emptyMeta["total"].(float64) != 0 {
		t.Fatalf("unexpected empty page: %v", empty.Body)
	}

	huge := api.do(http.MethodGet, "/v1/tasks?page=9223372036854775807", nil)
	if huge.Status != http.StatusOK {
		t.Fatalf("huge page: expected 200, got %d", huge.Status)
	}
	hugeMeta := huge.Body["meta"].(map[string]interface{})
	if len(dataList(huge)) != 0 || hugeMeta["from"] != nil || hugeMeta["total"].(float64) != 3 {
		t.Fatalf("expected an empty page past the end, got %v", huge.Body)
	}
}

func TestTaskListCountsAndDelete(t *testing.T) {
	srv := apptest.NewServer(t, apptest.Config())
	api := newAPIClient(t, srv)
	api.register("a@example.com")

	list := api.create("/v1/task-lists", map[string]interface{}{"name": "Chores", "color": "#ff0000"})
	first := api.create("/v1/tasks", map[string]interface{}{"title": "Dishes", "list_id": id(list)})
	api.create("/v1/tasks", map[string]interface{}{"title": "Laundry", "list_id": id(list)})
	api.do(http.MethodPost, path("/v1/tasks", first)+"/toggle", nil)

	lists := dataList(api.do(http.MethodGet, "/v1/task-lists?include=tasks_count", nil))
	got := lists[0].(map[string]interface{})
	if got["tasks_count"].(float64) != 2 || got["completed_tasks_count"].(float64) != 1 {
		t.Fatalf("unexpected counts: %v", got)
	}

	plain := dataList(api.do(http.MethodGet, "/v1/task-lists", nil))
	if _, ok := plain[0].(map[string]interface{})["tasks_count"]; ok {
		t.Fatal("tasks_count must be absent unless requested")
	}

	detail := data(api.do(http.MethodGet, path("/v1/task-lists", list)+"?include=tasks", nil))
	if tasks := detail["tasks"].([]interface{}); len(tasks) != 2 {
		t.Fatalf("expected 2 embedded tasks, got %v", detail["tasks"])
	}

	bad := api.do(http.MethodPut, path("/v1/task-lists", list), map[string]interface{}{"color": "red"})
	if bad.Status != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for bad color, got %d", bad.Status)
	}

	if res := api.do(http.MethodDelete, path("/v1/task-lists", list), nil); res.Status != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", res.Status)
	}
	task := data(api.do(http.MethodGet, path("/v1/tasks", first), nil))
	if task["list_id"] != nil {
		t.Fatalf("expected task detached, got list_id %v", task["list_id"])
	}
}

func TestReorderTaskLists(t *testing.T) {
	srv := apptest.NewServer(t, apptest.Config())
	api := newAPIClient(t, srv)
	api.register("a@example.com")
	a := api.create("/v1/task-lists", map[string]interface{}{"name": "A"})
	b := api.create("/v1/task-lists", map[string]interface{}{"name": "B"})

	res := api.do(http.MethodPost, "/v1/task-lists/reorder", map[string]interface{}{
		"lists": []map[string]interface{}{
			{"id": id(b), "position": 0},
			{"id": id(a), "position": 1},
			{"id": 12345, "position": 2},
		},
	})
	if n := res.Body["meta"].(map[string]interface{})["updated_count"].(float64); n != 2 {
		t.Fatalf("expected updated_count 2, got %v", n)
	}

	lists := dataList(api.do(http.MethodGet, "/v1/task-lists", nil))
	if lists[0].(map[string]interface{})["name"] != "B" {
		t.Fatalf("expected B first, got %v", lists)
	}
}

func TestRateLimit(t *testing.T) {
	cfg := apptest.Config()
	cfg.RateLimit = 2
	srv := apptest.NewServer(t, cfg)
	api := newAPIClient(t, srv)

	api.do(http.MethodGet, "/v1/health", nil)
	api.do(http.MethodGet, "/v1/health", nil)
	res := api.do(http.MethodGet, "/v1/health", nil)
	if res.Status != http.StatusTooManyRequests || errorCode(res) != "TOO_MANY_REQUESTS" {
		t.Fatalf("expected 429, got %d %v", res.Status, res.Body)
	}
}

func TestCSRFProtection(t *testing.T) {
	cfg := apptest.Config()
	cfg.CSRFEnabled = true
	srv := apptest.NewServer(t, cfg)
	api := newAPIClient(t, srv)

	body := map[string]interface{}{
		"name": "x", "email": "csrf@example.com",
		"password": "password123", "password_confirmation": "password123",
	}

	res := api.do(http.MethodPost, "/v1/auth/register", body)
	if res.Status != http.StatusForbidden || errorCode(res) != "CSRF_TOKEN_MISMATCH" {
		t.Fatalf("expected 403 CSRF_TOKEN_MISMATCH, got %d %v", res.Status, res.Body)
	}

	if res := api.do(http.MethodGet, "/v1/csrf-cookie", nil); res.Status != http.StatusNoContent {
		t.Fatalf("csrf-cookie: expected 204, got %d", res.Status)
	}

	var token string
	for _, c := range api.http.Jar.Cookies(mustURL(t, srv.URL)) {
		if c.Name == "XSRF-TOKEN" {
			token = c.Value
		}
	}
	if token == "" {
		t.Fatal("expected XSRF-TOKEN cookie")
	}

	raw, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/v1/auth/register", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-XSRF-TOKEN", token)
	resp, err := api.http.Do(req)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 with token, got %d", resp.StatusCode)
	}
}

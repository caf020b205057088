package client

import (
	"encoding/json"
	"net/url"
	"strconv"
	"time"
)

type User struct {
	ID              uint       `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	EmailVerifiedAt *time.Time `json:"email_verified_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type ListRef struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type TagRef struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type Task struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Completed   bool       `json:"completed"`
	Priority    string     `json:"priority"`
	Position    int        `json:"position"`
	UserID      uint       `json:"user_id"`
	ListID      *uint      `json:"list_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	TaskList    *ListRef   `json:"task_list,omitempty"`
	Tags        []TagRef   `json:"tags,omitempty"`

	// CompletedAt is only known after a toggle.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func (t Task) Identity() uint { return t.ID }

// InList reports whether the task belongs to list id.
func (t Task) InList(id uint) bool { return t.ListID != nil && *t.ListID == id }

// TaskToggle is the reduced projection returned by the toggle endpoint.
type TaskToggle struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type TaskList struct {
	ID                  uint      `json:"id"`
	Name                string    `json:"name"`
	Description         *string   `json:"description"`
	Color               string    `json:"color"`
	Position            int       `json:"position"`
	UserID              uint      `json:"user_id"`
	TasksCount          *int64    `json:"tasks_count,omitempty"`
	CompletedTasksCount *int64    `json:"completed_tasks_count,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
	Tasks               []Task    `json:"tasks,omitempty"`
}

func (l TaskList) Identity() uint { return l.ID }

type Tag struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Color      string    `json:"color"`
	UserID     uint      `json:"user_id"`
	TasksCount *int64    `json:"tasks_count,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (t Tag) Identity() uint { return t.ID }

type PageLinks struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

type PageMeta struct {
	CurrentPage int    `json:"current_page"`
	From        *int   `json:"from"`
	LastPage    int    `json:"last_page"`
	Path        string `json:"path"`
	PerPage     int    `json:"per_page"`
	To          *int   `json:"to"`
	Total       int64  `json:"total"`
}

type TaskPage struct {
	Data  []Task    `json:"data"`
	Links PageLinks `json:"links"`
	Meta  PageMeta  `json:"meta"`
}

type Health struct {
	Status      string    `json:"status"`
	Version     string    `json:"version"`
	Timestamp   time.Time `json:"timestamp"`
	Service     string    `json:"service"`
	Environment string    `json:"environment"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember,omitempty"`
}

type Registration struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// TaskInput is a create or partial update payload. Nil fields are omitted.
// DetachList sends an explicit null list_id and wins over ListID.
type TaskInput struct {
	Title       *string
	Description *string
	ListID      *uint
	DetachList  bool
	DueDate     *time.Time
	Priority    *string
	Completed   *bool
	Tags        []uint
}

func (in TaskInput) MarshalJSON() ([]byte, error) {
	body := map[string]interface{}{}
	if in.Title != nil {
		body["title"] = *in.Title
	}
	if in.Description != nil {
		body["description"] = *in.Description
	}
	if in.DetachList {
		body["list_id"] = nil
	} else if in.ListID != nil {
		body["list_id"] = *in.ListID
	}
	if in.DueDate != nil {
		body["due_date"] = in.DueDate.UTC().Format(time.RFC3339)
	}
	if in.Priority != nil {
		body["priority"] = *in.Priority
	}
	if in.Completed != nil {
		body["completed"] = *in.Completed
	}
	if in.Tags != nil {
		body["tags"] = in.Tags
	}
	return json.Marshal(body)
}

type TaskListInput struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
}

type TagInput struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
}

// TaskPosition moves a task. DetachList sends an explicit null list_id.
type TaskPosition struct {
	ID         uint
	Position   int
	ListID     *uint
	DetachList bool
}

func (p TaskPosition) MarshalJSON() ([]byte, error) {
	body := map[string]interface{}{"id": p.ID, "position": p.Position}
	if p.DetachList {
		body["list_id"] = nil
	} else if p.ListID != nil {
		body["list_id"] = *p.ListID
	}
	return json.Marshal(body)
}

type ListPosition struct {
	ID       uint `json:"id"`
	Position int  `json:"position"`
}

// TaskFilters mirrors the GET /tasks query string. Empty fields are not sent.
type TaskFilters struct {
	ListID    string
	Completed string
	Priority  string
	Search    string
	DueDate   string
	Sort      string
	Order     string
	Include   string
	PerPage   int
	Page      int
}

// DefaultTaskFilters orders by position and embeds list and tags.
func DefaultTaskFilters() TaskFilters {
	return TaskFilters{Sort: "position", Order: "asc", Include: "list,tags"}
}

// Merge overlays the non-empty fields of o onto f.
func (f TaskFilters) Merge(o TaskFilters) TaskFilters {
	pick := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	pick(&f.ListID, o.ListID)
	pick(&f.Completed, o.Completed)
	pick(&f.Priority, o.Priority)
	pick(&f.Search, o.Search)
	pick(&f.DueDate, o.DueDate)
	pick(&f.Sort, o.Sort)
	pick(&f.Order, o.Order)
	pick(&f.Include, o.Include)
	if o.PerPage > 0 {
		f.PerPage = o.PerPage
	}
	if o.Page > 0 {
		f.Page = o.Page
	}
	return f
}

func (f TaskFilters) Values() url.Values {
	v := url.Values{}
	set := func(key, val string) {
		if val != "" {
			v.Set(key, val)
		}
	}
	set("list_id", f.ListID)
	set("completed", f.Completed)
	set("priority", f.Priority)
	set("search", f.Search)
	set("due_date", f.DueDate)
	set("sort", f.Sort)
	set("order", f.Order)
	set("include", f.Include)
	if f.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(f.PerPage))
	}
	if f.Page > 0 {
		v.Set("page", strconv.Itoa(f.Page))
	}
	return v
}

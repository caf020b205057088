package validators

import (
	"net/url"
	"strconv"
	"strings"

	"taskforge.com/taskforge/internal/constants"
	dto "taskforge.com/taskforge/internal/data_models"
	apperrors "taskforge.com/taskforge/internal/errors"
)

// ParseIncludes reads a comma-separated include parameter.
func ParseIncludes(raw string) dto.Includes {
	var inc dto.Includes
	for _, part := range strings.Split(raw, ",") {
		switch strings.TrimSpace(part) {
		case "list":
			inc.List = true
		case "tags":
			inc.Tags = true
		case "tasks":
			inc.Tasks = true
		case "tasks_count":
			inc.TasksCount = true
		}
	}
	return inc
}

// ParseBool accepts the usual form spellings of a boolean.
func ParseBool(raw string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "on", "yes":
		return true, true
	case "0", "false", "off", "no":
		return false, true
	}
	return false, false
}

// ParseTaskQuery builds a TaskQuery from GET /tasks parameters. Unknown sort
// fields and due-date buckets are carried through and ignored downstream.
func ParseTaskQuery(values url.Values) (dto.TaskQuery, error) {
	errs := apperrors.FieldErrors{}
	q := dto.TaskQuery{
		Sort:    "position",
		PerPage: constants.DefaultPerPage,
		Page:    1,
	}

	if values.Has("list_id") {
		raw := strings.TrimSpace(values.Get("list_id"))
		switch strings.ToLower(raw) {
		case "", "null", "none":
			q.WithoutList = true
		default:
			id, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				errs.Add("list_id", "The list id field must be an integer.")
			} else {
				listID := uint(id)
				q.ListID = &listID
			}
		}
	}

	if values.Has("completed") {
		completed, ok := ParseBool(values.Get("completed"))
		if !ok {
			errs.Add("completed", "The completed field must be true or false.")
		} else {
			q.Completed = &completed
		}
	}

	if values.Has("priority") {
		priority := constants.Priority(values.Get("priority"))
		if !priority.Valid() {
			invalidSelection(errs, "priority")
		} else {
			q.Priority = &priority
		}
	}

	q.Search = strings.TrimSpace(values.Get("search"))
	q.DueBucket = constants.DueBucket(values.Get("due_date"))
	q.Include = ParseIncludes(values.Get("include"))

	if values.Has("sort") {
		q.Sort = values.Get("sort")
	}
	q.Descending = strings.EqualFold(values.Get("order"), "desc")

	if raw := values.Get("per_page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			errs.Add("per_page", "The per page field must be a positive integer.")
		} else {
			q.PerPage = min(n, constants.MaxPerPage)
		}
	}

	if raw := values.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			errs.Add("page", "The page field must be a positive integer.")
		} else {
			q.Page = min(n, constants.MaxPage)
		}
	}

	return q, errs.Err()
}

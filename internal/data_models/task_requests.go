package dto

type CreateTaskRequest struct {
	Title       string           `json:"title" validate:"notblank,max=255"`
	Description Nullable[string] `json:"description" validate:"omitnil,max=2000"`
	ListID      Nullable[uint]   `json:"list_id"`
	DueDate     Nullable[string] `json:"due_date"`
	Priority    Nullable[string] `json:"priority" validate:"omitnil,oneof=low medium high"`
	Tags        Nullable[[]uint] `json:"tags"`
}

// UpdateTaskRequest only changes the fields whose keys appear in the body.
type UpdateTaskRequest struct {
	Title       Nullable[string] `json:"title" validate:"omitnil,notblank,max=255"`
	Description Nullable[string] `json:"description" validate:"omitnil,max=2000"`
	ListID      Nullable[uint]   `json:"list_id"`
	DueDate     Nullable[string] `json:"due_date"`
	Priority    Nullable[string] `json:"priority" validate:"omitnil,oneof=low medium high"`
	Completed   Nullable[bool]   `json:"completed"`
	Tags        Nullable[[]uint] `json:"tags"`
}

type TaskPosition struct {
	ID       uint           `json:"id" validate:"required"`
	Position *int           `json:"position" validate:"required,min=0"`
	ListID   Nullable[uint] `json:"list_id"`
}

type ReorderTasksRequest struct {
	Tasks []TaskPosition `json:"tasks" validate:"required,min=1,dive"`
}

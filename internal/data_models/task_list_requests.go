package dto

type CreateTaskListRequest struct {
	Name        string           `json:"name" validate:"notblank,max=255"`
	Description Nullable[string] `json:"description" validate:"omitnil,max=1000"`
	Color       Nullable[string] `json:"color" validate:"omitnil,hexcolor,len=7"`
}

type UpdateTaskListRequest struct {
	Name        Nullable[string] `json:"name" validate:"omitnil,notblank,max=255"`
	Description Nullable[string] `json:"description" validate:"omitnil,max=1000"`
	Color       Nullable[string] `json:"color" validate:"omitnil,hexcolor,len=7"`
}

type ListPosition struct {
	ID       uint `json:"id" validate:"required"`
	Position *int `json:"position" validate:"required,min=0"`
}

type ReorderTaskListsRequest struct {
	Lists []ListPosition `json:"lists" validate:"required,min=1,dive"`
}

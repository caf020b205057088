package dto

type CreateTagRequest struct {
	Name  string           `json:"name" validate:"notblank,max=50"`
	Color Nullable[string] `json:"color" validate:"omitnil,hexcolor,len=7"`
}

type UpdateTagRequest struct {
	Name  Nullable[string] `json:"name" validate:"omitnil,notblank,max=50"`
	Color Nullable[string] `json:"color" validate:"omitnil,hexcolor,len=7"`
}

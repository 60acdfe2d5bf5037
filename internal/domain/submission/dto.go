package submission

type CreateSubmissionDTO struct {
	Data map[string]any `json:"data" binding:"required"`
}

type ReviewDTO struct {
	Action  string `json:"action" binding:"required,oneof=approve reject" example:"approve"`
	Comment string `json:"comment" example:"ok"`
}

// ListFilter narrows submission queries. Nil fields are not applied.
type ListFilter struct {
	StudentID    *uint
	FormID       *uint
	Status       *Status
	CourseID     *uint
	DepartmentID *uint
	Limit        int
	Offset       int
}

package user

type LoginInput struct {
	Username string `json:"username" form:"username" binding:"required" example:"tutor1"`
	Password string `json:"password" form:"password" binding:"required" example:"secret123"`
}

type CreateUserInput struct {
	Username     string  `json:"username" binding:"required,min=3,max=50" example:"johndoe"`
	Password     string  `json:"password" binding:"required,min=6" example:"password123"`
	Name         string  `json:"name" binding:"required" example:"John Doe"`
	Email        *string `json:"email" binding:"omitempty,email" example:"user@example.com"`
	Role         Role    `json:"role" binding:"required,oneof=student tutor hod principal admin" example:"tutor"`
	DepartmentID *uint   `json:"department_id" example:"1"`
	CourseID     *uint   `json:"course_id" example:"1"`
}

// RegisterStudentInput is the public self-registration form. The account
// waits in the approval queue until an HOD or principal decides on it.
type RegisterStudentInput struct {
	Username     string  `json:"username" binding:"required,min=3,max=50" example:"asha21"`
	Password     string  `json:"password" binding:"required,min=6" example:"password123"`
	Name         string  `json:"name" binding:"required,max=100" example:"Asha Rao"`
	Email        *string `json:"email" binding:"omitempty,email" example:"asha@example.edu"`
	DepartmentID uint    `json:"department_id" binding:"required" example:"1"`
	CourseID     uint    `json:"course_id" binding:"required" example:"1"`
}

type RegistrationDecisionInput struct {
	Action string `json:"action" binding:"required,oneof=approve reject" example:"approve"`
}

// UpdateUserInput is a partial update; nil fields are left unchanged.
type UpdateUserInput struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=100" example:"John Doe"`
	Email        *string `json:"email" binding:"omitempty,email" example:"user@example.com"`
	DepartmentID *uint   `json:"department_id" example:"1"`
	CourseID     *uint   `json:"course_id" example:"3"`
	IsActive     *bool   `json:"is_active" example:"false"`
}

type UserDTO struct {
	ID           uint    `json:"id" example:"12"`
	Username     string  `json:"username" example:"johndoe"`
	Name         string  `json:"name" example:"John Doe"`
	Email        *string `json:"email,omitempty" example:"user@example.com"`
	Role         Role    `json:"role" example:"tutor"`
	DepartmentID *uint   `json:"department_id" example:"1"`
	CourseID     *uint   `json:"course_id" example:"3"`

	IsActive       bool           `json:"is_active" example:"true"`
	ApprovalStatus ApprovalStatus `json:"approval_status" example:"approved"`
}

func ToDTO(u User) UserDTO {
	return UserDTO{
		ID:           u.ID,
		Username:     u.Username,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		DepartmentID: u.DepartmentID,
		CourseID:     u.CourseID,

		IsActive:       u.IsActive,
		ApprovalStatus: u.ApprovalStatus,
	}
}

package org

type CreateDepartmentDTO struct {
	Name        string `json:"name" binding:"required,max=100" example:"Computer Science and Engineering"`
	Code        string `json:"code" binding:"required,max=10" example:"CSE"`
	Description string `json:"description" example:"Undergraduate and postgraduate CS programmes"`
}

type CreateCourseDTO struct {
	Name         string `json:"name" binding:"required,max=100" example:"Bachelor of Technology"`
	Code         string `json:"code" binding:"required,max=20" example:"BTECH-CSE"`
	DepartmentID uint   `json:"department_id" binding:"required" example:"1"`
	Description  string `json:"description"`
}

// UpdateDepartmentDTO is a partial update; nil fields are left unchanged.
type UpdateDepartmentDTO struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100" example:"Computer Science and Engineering"`
	Code        *string `json:"code" binding:"omitempty,min=1,max=10" example:"CSE"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active" example:"true"`
}

// UpdateCourseDTO is a partial update. A course never moves between
// departments, since its submissions are scoped to the department.
type UpdateCourseDTO struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100" example:"Bachelor of Technology"`
	Code        *string `json:"code" binding:"omitempty,min=1,max=20" example:"BTECH-CSE"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active" example:"true"`
}

package org

import "time"

// Department is the org unit an HOD is responsible for.
type Department struct {
	ID          uint      `gorm:"primaryKey;column:id" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Code        string    `gorm:"size:10;uniqueIndex;not null" json:"code"`
	Description string    `gorm:"type:text" json:"description"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	Courses     []Course  `gorm:"foreignKey:DepartmentID" json:"courses,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Department) TableName() string {
	return "departments"
}

// Course belongs to exactly one department; tutors and students are bound to one.
type Course struct {
	ID           uint      `gorm:"primaryKey;column:id" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Code         string    `gorm:"size:20;uniqueIndex;not null" json:"code"`
	DepartmentID uint      `gorm:"not null;index;column:department_id" json:"department_id"`
	Description  string    `gorm:"type:text" json:"description"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Course) TableName() string {
	return "courses"
}

package types

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT payload. Org units are copied from the user at login so
// scoping does not need a lookup per request.
type Claims struct {
	UserID       uint   `json:"user_id"`
	Username     string `json:"username"`
	Role         string `json:"role"`
	CourseID     *uint  `json:"course_id,omitempty"`
	DepartmentID *uint  `json:"department_id,omitempty"`
	jwt.RegisteredClaims
}

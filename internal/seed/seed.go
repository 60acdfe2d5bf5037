// Package seed loads departments, courses, users and forms from a YAML file.
package seed

import (
	"fmt"
	"os"

	"github.com/linskybing/request-portal/internal/domain/form"
	"github.com/linskybing/request-portal/internal/domain/org"
	"github.com/linskybing/request-portal/internal/domain/user"
	"github.com/linskybing/request-portal/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v2"
)

type File struct {
	Departments []Department `yaml:"departments"`
	Users       []User       `yaml:"users"`
	Forms       []Form       `yaml:"forms"`
}

type Department struct {
	Name        string   `yaml:"name"`
	Code        string   `yaml:"code"`
	Description string   `yaml:"description"`
	Courses     []Course `yaml:"courses"`
}

type Course struct {
	Name        string `yaml:"name"`
	Code        string `yaml:"code"`
	Description string `yaml:"description"`
}

// User references its department and course by code.
type User struct {
	Username   string    `yaml:"username"`
	Password   string    `yaml:"password"`
	Name       string    `yaml:"name"`
	Email      string    `yaml:"email"`
	Role       user.Role `yaml:"role"`
	Department string    `yaml:"department"`
	Course     string    `yaml:"course"`
}

type Form struct {
	Title       string  `yaml:"title"`
	Description string  `yaml:"description"`
	Department  string  `yaml:"department"` // empty: global
	CreatedBy   string  `yaml:"created_by"`
	Fields      []Field `yaml:"fields"`
}

type Field struct {
	Label       string         `yaml:"label"`
	Type        form.FieldType `yaml:"type"`
	Required    bool           `yaml:"required"`
	Placeholder string         `yaml:"placeholder"`
	Options     []string       `yaml:"options"`
}

func LoadFile(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

// Parse decodes a seed document and checks cross references between its sections.
func Parse(raw []byte) (*File, error) {
	var f File
	if err := yaml.UnmarshalStrict(raw, &f); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}

	depts := map[string]bool{}
	courses := map[string]string{}
	for _, d := range f.Departments {
		if d.Code == "" {
			return nil, fmt.Errorf("department %q has no code", d.Name)
		}
		if depts[d.Code] {
			return nil, fmt.Errorf("duplicate department code %s", d.Code)
		}
		depts[d.Code] = true
		for _, c := range d.Courses {
			if _, ok := courses[c.Code]; ok || c.Code == "" {
				return nil, fmt.Errorf("course code %q is empty or duplicated", c.Code)
			}
			courses[c.Code] = d.Code
		}
	}

	users := map[string]user.Role{}
	for _, u := range f.Users {
		if !u.Role.IsValid() {
			return nil, fmt.Errorf("user %s: %w", u.Username, user.ErrInvalidRole)
		}
		if u.Department != "" && !depts[u.Department] {
			return nil, fmt.Errorf("user %s: unknown department %s", u.Username, u.Department)
		}
		if u.Course != "" {
			dept, ok := courses[u.Course]
			if !ok {
				return nil, fmt.Errorf("user %s: unknown course %s", u.Username, u.Course)
			}
			if dept != u.Department {
				return nil, fmt.Errorf("user %s: course %s is not in department %s", u.Username, u.Course, u.Department)
			}
		}
		users[u.Username] = u.Role
	}

	for _, fm := range f.Forms {
		if fm.Department != "" && !depts[fm.Department] {
			return nil, fmt.Errorf("form %q: unknown department %s", fm.Title, fm.Department)
		}
		if _, ok := users[fm.CreatedBy]; !ok {
			return nil, fmt.Errorf("form %q: unknown creator %s", fm.Title, fm.CreatedBy)
		}
	}
	return &f, nil
}

// Apply writes the whole file in one transaction; any failure leaves the
// database untouched.
func Apply(repos *repository.Repos, f *File) error {
	return repos.ExecTx(func(tx *repository.Repos) error {
		deptIDs := map[string]uint{}
		courseIDs := map[string]uint{}

		for _, d := range f.Departments {
			dept := org.Department{Name: d.Name, Code: d.Code, Description: d.Description, IsActive: true}
			if err := tx.Org.CreateDepartment(&dept); err != nil {
				return fmt.Errorf("department %s: %w", d.Code, err)
			}
			deptIDs[d.Code] = dept.ID
			for _, c := range d.Courses {
				course := org.Course{Name: c.Name, Code: c.Code, Description: c.Description, DepartmentID: dept.ID, IsActive: true}
				if err := tx.Org.CreateCourse(&course); err != nil {
					return fmt.Errorf("course %s: %w", c.Code, err)
				}
				courseIDs[c.Code] = course.ID
			}
		}

		userIDs := map[string]user.User{}
		for _, u := range f.Users {
			hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("user %s: %w", u.Username, err)
			}
			usr := user.User{
				Username: u.Username,
				Password: string(hashed),
				Name:     u.Name,
				Role:     u.Role,
				IsActive: true,

				ApprovalStatus: user.ApprovalApproved,
			}
			if u.Email != "" {
				email := u.Email
				usr.Email = &email
			}
			if id, ok := deptIDs[u.Department]; ok {
				usr.DepartmentID = &id
			}
			if id, ok := courseIDs[u.Course]; ok {
				usr.CourseID = &id
			}
			if err := usr.Validate(); err != nil {
				return fmt.Errorf("user %s: %w", u.Username, err)
			}
			if err := tx.User.CreateUser(&usr); err != nil {
				return fmt.Errorf("user %s: %w", u.Username, err)
			}
			userIDs[u.Username] = usr
		}

		for _, fm := range f.Forms {
			creator := userIDs[fm.CreatedBy]
			def := form.Definition{
				Title:         fm.Title,
				Description:   fm.Description,
				IsActive:      true,
				CreatedByRole: creator.Role,
				CreatedByID:   creator.ID,
				Fields:        form.BuildFields(toFieldInputs(fm.Fields)),
			}
			if id, ok := deptIDs[fm.Department]; ok {
				def.DepartmentID = &id
			}
			if err := def.Validate(); err != nil {
				return fmt.Errorf("form %q: %w", fm.Title, err)
			}
			if err := tx.Form.CreateForm(&def); err != nil {
				return fmt.Errorf("form %q: %w", fm.Title, err)
			}
		}

		zap.L().Info("seed applied",
			zap.Int("departments", len(deptIDs)),
			zap.Int("courses", len(courseIDs)),
			zap.Int("users", len(userIDs)),
			zap.Int("forms", len(f.Forms)))
		return nil
	})
}

func toFieldInputs(fields []Field) []form.FieldInput {
	out := make([]form.FieldInput, 0, len(fields))
	for _, f := range fields {
		out = append(out, form.FieldInput{
			Label:       f.Label,
			Type:        f.Type,
			Required:    f.Required,
			Placeholder: f.Placeholder,
			Options:     f.Options,
		})
	}
	return out
}

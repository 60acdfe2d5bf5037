package form

import (
	"fmt"
	"strings"
	"time"

	"github.com/linskybing/request-portal/internal/domain/user"
	"gorm.io/datatypes"
)

// FieldType is the input kind of a form field.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldNumber   FieldType = "number"
	FieldEmail    FieldType = "email"
	FieldDate     FieldType = "date"
	FieldSelect   FieldType = "select"
	FieldRadio    FieldType = "radio"
	FieldCheckbox FieldType = "checkbox"
	FieldFile     FieldType = "file"
)

func (t FieldType) IsValid() bool {
	switch t {
	case FieldText, FieldTextarea, FieldNumber, FieldEmail, FieldDate,
		FieldSelect, FieldRadio, FieldCheckbox, FieldFile:
		return true
	}
	return false
}

// RequiresOptions reports whether answers are picked from a declared option list.
func (t FieldType) RequiresOptions() bool {
	return t == FieldSelect || t == FieldRadio || t == FieldCheckbox
}

// Definition is a form template. Definitions are deactivated, never deleted,
// so historical submissions stay interpretable.
type Definition struct {
	ID            uint      `gorm:"primaryKey;column:id" json:"id"`
	Title         string    `gorm:"size:200;not null" json:"title"`
	Description   string    `gorm:"type:text" json:"description"`
	DepartmentID  *uint     `gorm:"column:department_id;index" json:"department_id"` // nil: global form
	IsActive      bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedByRole user.Role `gorm:"size:20;not null" json:"created_by_role"`
	CreatedByID   uint      `gorm:"not null;column:created_by_id" json:"created_by_id"`
	Fields        []Field   `gorm:"foreignKey:FormID" json:"fields"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Definition) TableName() string {
	return "form_definitions"
}

// Field is one input of a Definition. Position is the display and validation order.
type Field struct {
	ID          uint                        `gorm:"primaryKey;column:id" json:"id"`
	FormID      uint                        `gorm:"not null;index;column:form_id" json:"form_id"`
	Label       string                      `gorm:"size:200;not null" json:"label"`
	Type        FieldType                   `gorm:"size:20;not null" json:"type"`
	Required    bool                        `gorm:"not null;default:false" json:"required"`
	Placeholder string                      `gorm:"size:200" json:"placeholder,omitempty"`
	Options     datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"options" swaggertype:"array,string"`
	Position    int                         `gorm:"not null;default:0" json:"position"`
}

func (Field) TableName() string {
	return "form_fields"
}

func (d *Definition) IsGlobal() bool {
	return d.DepartmentID == nil
}

// AvailableTo reports whether members of the department may see and submit the form.
func (d *Definition) AvailableTo(departmentID uint) bool {
	return d.IsGlobal() || *d.DepartmentID == departmentID
}

func (d *Definition) FieldByLabel(label string) (*Field, bool) {
	for i := range d.Fields {
		if d.Fields[i].Label == label {
			return &d.Fields[i], true
		}
	}
	return nil, false
}

// Validate checks the template itself: a title, at least one field, unique
// non-empty labels, known types and options present exactly when the type
// needs them. Checkbox options may not contain CheckboxSeparator, since a
// string answer is split on it.
func (d *Definition) Validate() error {
	verr := &ValidationError{}
	if d.Title == "" {
		verr.Add("title", "is required")
	}
	if len(d.Fields) == 0 {
		verr.Add("fields", "at least one field is required")
	}
	seen := make(map[string]bool, len(d.Fields))
	for i, f := range d.Fields {
		name := fieldPath(i)
		switch {
		case f.Label == "":
			verr.Add(name+".label", "is required")
		case seen[f.Label]:
			verr.Add(name+".label", "duplicate label "+f.Label)
		}
		seen[f.Label] = true

		if !f.Type.IsValid() {
			verr.Add(name+".type", "unknown field type "+string(f.Type))
			continue
		}
		if f.Type.RequiresOptions() && len(f.Options) == 0 {
			verr.Add(name+".options", "options are required for "+string(f.Type)+" fields")
		}
		if !f.Type.RequiresOptions() && len(f.Options) > 0 {
			verr.Add(name+".options", "options are only allowed for select, radio and checkbox fields")
		}
		if f.Type == FieldCheckbox {
			for _, o := range f.Options {
				if strings.Contains(o, CheckboxSeparator) {
					verr.Add(name+".options", fmt.Sprintf("checkbox option %q must not contain %q", o, CheckboxSeparator))
					break
				}
			}
		}
	}
	return verr.OrNil()
}

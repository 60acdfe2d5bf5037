package form

type FieldInput struct {
	Label       string    `json:"label" binding:"required" example:"Reason"`
	Type        FieldType `json:"type" binding:"required" example:"text"`
	Required    bool      `json:"required" example:"true"`
	Placeholder string    `json:"placeholder" example:"Why do you need leave?"`
	Options     []string  `json:"options"`
}

type CreateFormDTO struct {
	Title        string       `json:"title" binding:"required,max=200" example:"Leave request"`
	Description  string       `json:"description" example:"Apply for medical or personal leave"`
	DepartmentID *uint        `json:"department_id" example:"1"`
	Fields       []FieldInput `json:"fields" binding:"required,min=1,dive"`
}

type UpdateFormDTO struct {
	Title       *string       `json:"title" binding:"omitempty,max=200"`
	Description *string       `json:"description"`
	IsActive    *bool         `json:"is_active"`
	Fields      *[]FieldInput `json:"fields" binding:"omitempty,min=1,dive"`
}

// BuildFields turns inputs into fields, positioned in input order.
func BuildFields(inputs []FieldInput) []Field {
	fields := make([]Field, 0, len(inputs))
	for i, in := range inputs {
		f := Field{
			Label:       in.Label,
			Type:        in.Type,
			Required:    in.Required,
			Placeholder: in.Placeholder,
			Position:    i,
		}
		if len(in.Options) > 0 {
			f.Options = append(f.Options, in.Options...)
		}
		fields = append(fields, f)
	}
	return fields
}

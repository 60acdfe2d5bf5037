package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDefinition() *Definition {
	return &Definition{
		Title: "Event registration",
		Fields: []Field{
			{Label: "Name", Type: FieldText, Required: true},
			{Label: "Email", Type: FieldEmail, Required: true},
			{Label: "Date", Type: FieldDate},
			{Label: "Seats", Type: FieldNumber},
			{Label: "Track", Type: FieldSelect, Required: true, Options: []string{"AI", "Systems"}},
			{Label: "Meals", Type: FieldCheckbox, Options: []string{"Lunch", "Dinner"}},
		},
	}
}

func TestDefinitionValidate(t *testing.T) {
	assert.NoError(t, sampleDefinition().Validate())

	d := &Definition{
		Fields: []Field{
			{Label: "A", Type: FieldText},
			{Label: "A", Type: FieldRadio},
			{Label: "", Type: "slider"},
			{Label: "B", Type: FieldText, Options: []string{"x"}},
		},
	}
	err := d.Validate()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("title"))
	assert.True(t, verr.Has("fields[1].label"))
	assert.True(t, verr.Has("fields[1].options"))
	assert.True(t, verr.Has("fields[2].label"))
	assert.True(t, verr.Has("fields[2].type"))
	assert.True(t, verr.Has("fields[3].options"))
	assert.False(t, verr.Has("fields[0].label"))

	err = (&Definition{Title: "Empty"}).Validate()
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("fields"))
}

func TestDefinitionValidate_CheckboxOptionWithSeparator(t *testing.T) {
	d := &Definition{
		Title: "Dietary needs",
		Fields: []Field{
			{Label: "Diet", Type: FieldCheckbox, Options: []string{"Vegan", "Nuts, peanuts"}},
			{Label: "Seat", Type: FieldSelect, Options: []string{"Front, left", "Back"}},
		},
	}
	err := d.Validate()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("fields[0].options"))
	assert.False(t, verr.Has("fields[1].options"))
	assert.Len(t, verr.Fields, 1)
}

func TestValidateAnswers(t *testing.T) {
	d := sampleDefinition()

	ok := map[string]any{
		"Name":  "Asha",
		"Email": "asha@example.edu",
		"Date":  "2026-04-01",
		"Seats": float64(2),
		"Track": "AI",
		"Meals": []any{"Lunch", "Dinner"},
	}
	assert.NoError(t, d.ValidateAnswers(ok))

	cases := map[string]struct {
		data  map[string]any
		field string
	}{
		"missing required": {map[string]any{"Email": "a@b.co", "Track": "AI"}, "Name"},
		"blank required":   {map[string]any{"Name": "  ", "Email": "a@b.co", "Track": "AI"}, "Name"},
		"bad email":        {map[string]any{"Name": "A", "Email": "nope", "Track": "AI"}, "Email"},
		"bad date":         {map[string]any{"Name": "A", "Email": "a@b.co", "Track": "AI", "Date": "01/04/2026"}, "Date"},
		"bad number":       {map[string]any{"Name": "A", "Email": "a@b.co", "Track": "AI", "Seats": "two"}, "Seats"},
		"unknown option":   {map[string]any{"Name": "A", "Email": "a@b.co", "Track": "Robotics"}, "Track"},
		"list for select":  {map[string]any{"Name": "A", "Email": "a@b.co", "Track": []any{"AI"}}, "Track"},
		"duplicate choice": {map[string]any{"Name": "A", "Email": "a@b.co", "Track": "AI", "Meals": "Lunch,Lunch"}, "Meals"},
		"unknown label":    {map[string]any{"Name": "A", "Email": "a@b.co", "Track": "AI", "Shoe size": "9"}, "Shoe size"},
		"number for text":  {map[string]any{"Name": float64(3), "Email": "a@b.co", "Track": "AI"}, "Name"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := d.ValidateAnswers(tc.data)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.True(t, verr.Has(tc.field), verr.Error())
		})
	}
}

func TestValidateAnswers_ReportsEveryViolation(t *testing.T) {
	err := sampleDefinition().ValidateAnswers(map[string]any{"Extra": "x"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("Extra"))
	assert.True(t, verr.Has("Name"))
	assert.True(t, verr.Has("Email"))
	assert.True(t, verr.Has("Track"))
	assert.Len(t, verr.Fields, 4)
}

func TestAnswerValues_Checkbox(t *testing.T) {
	f := &Field{Label: "Meals", Type: FieldCheckbox, Options: []string{"Lunch", "Dinner"}}

	values, err := AnswerValues(f, "Lunch, ,Dinner")
	require.NoError(t, err)
	assert.Equal(t, []string{"Lunch", "Dinner"}, values)

	values, err = AnswerValues(f, []string{" Lunch "})
	require.NoError(t, err)
	assert.Equal(t, []string{"Lunch"}, values)

	_, err = AnswerValues(f, []any{"Lunch", 3})
	assert.Error(t, err)
}

func TestNormalizeAnswers(t *testing.T) {
	d := sampleDefinition()

	got := d.NormalizeAnswers(map[string]any{
		"Name":  "Asha",
		"Email": "asha@example.edu",
		"Date":  "",
		"Seats": float64(2),
		"Track": "AI",
		"Meals": "Lunch, Dinner",
	})
	assert.Equal(t, map[string]any{
		"Name":  "Asha",
		"Email": "asha@example.edu",
		"Seats": "2",
		"Track": "AI",
		"Meals": []string{"Lunch", "Dinner"},
	}, got)

	got = d.NormalizeAnswers(map[string]any{"Name": "Asha", "Meals": []any{" Lunch ", ""}})
	assert.Equal(t, map[string]any{"Name": "Asha", "Meals": []string{"Lunch"}}, got)
}

func TestAvailableTo(t *testing.T) {
	global := &Definition{}
	assert.True(t, global.AvailableTo(1))

	dept := uint(2)
	scoped := &Definition{DepartmentID: &dept}
	assert.True(t, scoped.AvailableTo(2))
	assert.False(t, scoped.AvailableTo(1))
}

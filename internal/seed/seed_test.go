package seed

import (
	"testing"

	"github.com/linskybing/request-portal/internal/domain/form"
	"github.com/linskybing/request-portal/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
departments:
  - name: Computer Science
    code: CSE
    courses:
      - name: BTech CSE
        code: BTECH-CSE
users:
  - username: principal
    password: secret123
    name: The Principal
    role: principal
  - username: hod.cse
    password: secret123
    name: CSE Head
    role: hod
    department: CSE
  - username: alice
    password: secret123
    name: Alice
    email: alice@example.com
    role: student
    department: CSE
    course: BTECH-CSE
forms:
  - title: Leave request
    department: CSE
    created_by: hod.cse
    fields:
      - label: Reason
        type: textarea
        required: true
      - label: Kind
        type: select
        options: [Medical, Personal]
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)

	require.Len(t, f.Departments, 1)
	assert.Equal(t, "BTECH-CSE", f.Departments[0].Courses[0].Code)
	require.Len(t, f.Users, 3)
	assert.Equal(t, user.RoleStudent, f.Users[2].Role)
	require.Len(t, f.Forms, 1)
	assert.Equal(t, form.FieldSelect, f.Forms[0].Fields[1].Type)
	assert.Equal(t, []string{"Medical", "Personal"}, f.Forms[0].Fields[1].Options)
}

func TestParseRejectsBrokenReferences(t *testing.T) {
	cases := map[string]string{
		"unknown field": "departmentz: []\n",
		"bad role": `
users:
  - username: x
    role: janitor
`,
		"unknown course": `
departments:
  - name: CS
    code: CSE
users:
  - username: x
    role: student
    department: CSE
    course: NOPE
`,
		"course in other department": `
departments:
  - name: CS
    code: CSE
    courses:
      - name: A
        code: A1
  - name: EE
    code: EEE
users:
  - username: x
    role: tutor
    department: EEE
    course: A1
`,
		"unknown creator": `
forms:
  - title: F
    created_by: ghost
`,
		"duplicate department": `
departments:
  - name: CS
    code: CSE
  - name: CS again
    code: CSE
`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestToFieldInputsKeepsOrder(t *testing.T) {
	fields := form.BuildFields(toFieldInputs([]Field{
		{Label: "a", Type: form.FieldText},
		{Label: "b", Type: form.FieldRadio, Options: []string{"x"}},
	}))
	require.Len(t, fields, 2)
	assert.Equal(t, 0, fields[0].Position)
	assert.Equal(t, 1, fields[1].Position)
	assert.Equal(t, "b", fields[1].Label)
}

package slip

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	at := time.Date(2026, 2, 3, 10, 30, 0, 0, time.UTC)
	out, err := Render(Document{
		SubmissionID: 42,
		FormTitle:    "Leave request",
		StudentName:  "Alice",
		Course:       "CS101",
		Department:   "Computer Science",
		Status:       "approved",
		SubmittedAt:  at,
		Answers:      []Answer{{Label: "Reason", Value: "Medical leave"}},
		Decisions: []Decision{
			{Stage: "Tutor", Reviewer: "Bob", ReviewedAt: at, Comment: "ok"},
			{Stage: "HOD", Reviewer: "Carol", ReviewedAt: at},
		},
		VerifyURL: "http://localhost:8080/submissions/42",
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRender_WithoutQRCodeOrDecisions(t *testing.T) {
	out, err := Render(Document{SubmissionID: 1, FormTitle: "Empty", Status: "rejected"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

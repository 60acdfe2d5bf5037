package audit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventEntry(t *testing.T) {
	entry, err := Event{
		ActorID:      3,
		Action:       "approve",
		ResourceType: ResourceSubmission,
		ResourceID:   42,
		After:        StatusChange{Status: "pending_hod", Version: 2, Comment: "ok"},
		Description:  "submission pending_hod",
	}.Entry()
	require.NoError(t, err)
	assert.Equal(t, "42", entry.ResourceID)
	assert.Equal(t, uint(3), entry.UserID)
	assert.Nil(t, entry.OldData)
	assert.JSONEq(t, `{"status":"pending_hod","version":2,"comment":"ok"}`, string(entry.NewData))
}

func TestEventEntry_UnencodableSnapshot(t *testing.T) {
	entry, err := Event{
		Action:       "update",
		ResourceType: ResourceForm,
		ResourceID:   1,
		Before:       map[string]any{"bad": func() {}},
		After:        map[string]any{"title": "Leave"},
	}.Entry()
	assert.Error(t, err)
	require.NotNil(t, entry)
	assert.Nil(t, entry.OldData)
	assert.JSONEq(t, `{"title":"Leave"}`, string(entry.NewData))
}

func TestHistoryEntryFrom(t *testing.T) {
	at := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	h := HistoryEntryFrom(AuditLog{
		UserID:    200,
		Action:    "reject",
		NewData:   []byte(`{"status":"rejected","version":2,"comment":"incomplete"}`),
		CreatedAt: at,
	})
	assert.Equal(t, HistoryEntry{Action: "reject", ActorID: 200, Status: "rejected", Version: 2, Comment: "incomplete", At: at}, h)

	h = HistoryEntryFrom(AuditLog{UserID: 1, Action: "create", NewData: []byte(`not json`), CreatedAt: at})
	assert.Equal(t, HistoryEntry{Action: "create", ActorID: 1, At: at}, h)
}

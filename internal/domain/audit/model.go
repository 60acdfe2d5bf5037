package audit

import (
	"encoding/json"
	"strconv"
	"time"

	"gorm.io/datatypes"
)

const (
	ResourceSubmission = "submission"
	ResourceForm       = "form"
	ResourceUser       = "user"
	ResourceDepartment = "department"
	ResourceCourse     = "course"
)

// AuditLog records who changed what, with JSON snapshots before and after.
type AuditLog struct {
	ID           uint           `gorm:"primaryKey;column:id" json:"id"`
	UserID       uint           `gorm:"index;column:user_id" json:"user_id"`
	Action       string         `gorm:"size:50;index" json:"action"`
	ResourceType string         `gorm:"size:50;index;index:idx_audit_resource,priority:1" json:"resource_type"`
	ResourceID   string         `gorm:"size:100;index:idx_audit_resource,priority:2" json:"resource_id"`
	OldData      datatypes.JSON `gorm:"type:jsonb" json:"old_data,omitempty" swaggertype:"object"`
	NewData      datatypes.JSON `gorm:"type:jsonb" json:"new_data,omitempty" swaggertype:"object"`
	IPAddress    string         `gorm:"size:64" json:"ip_address"`
	UserAgent    string         `gorm:"type:text" json:"user_agent"`
	Description  string         `gorm:"type:text" json:"description"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Event is a change a handler wants on the record. ActorID overrides the
// authenticated caller, for requests made before anyone is logged in.
type Event struct {
	ActorID      uint
	Action       string
	ResourceType string
	ResourceID   uint
	Before       any
	After        any
	Description  string
}

// Entry turns e into a storable log row. A snapshot that cannot be encoded
// is dropped rather than losing the whole entry; the error says which.
func (e Event) Entry() (*AuditLog, error) {
	entry := &AuditLog{
		UserID:       e.ActorID,
		Action:       e.Action,
		ResourceType: e.ResourceType,
		ResourceID:   strconv.FormatUint(uint64(e.ResourceID), 10),
		Description:  e.Description,
	}
	var firstErr error
	for _, snap := range []struct {
		v   any
		dst *datatypes.JSON
	}{{e.Before, &entry.OldData}, {e.After, &entry.NewData}} {
		if snap.v == nil {
			continue
		}
		b, err := json.Marshal(snap.v)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		*snap.dst = b
	}
	return entry, firstErr
}

// StatusChange is the snapshot stored for every submission event, so its
// history can be replayed without the full row.
type StatusChange struct {
	Status  string `json:"status"`
	Version uint   `json:"version"`
	Comment string `json:"comment,omitempty"`
}

// HistoryEntry is one step in a submission's timeline.
type HistoryEntry struct {
	Action  string    `json:"action" example:"approve"`
	ActorID uint      `json:"actor_id"`
	Status  string    `json:"status" example:"pending_hod"`
	Version uint      `json:"version"`
	Comment string    `json:"comment,omitempty"`
	At      time.Time `json:"at"`
}

// HistoryEntryFrom reads a submission log row. Rows written without a
// StatusChange snapshot still yield the action, actor and time.
func HistoryEntryFrom(l AuditLog) HistoryEntry {
	h := HistoryEntry{Action: l.Action, ActorID: l.UserID, At: l.CreatedAt}
	var sc StatusChange
	if len(l.NewData) > 0 && json.Unmarshal(l.NewData, &sc) == nil {
		h.Status = sc.Status
		h.Version = sc.Version
		h.Comment = sc.Comment
	}
	return h
}

package models

import (
	"time"

	"gorm.io/datatypes"
)

type ChangeType string

const (
	ChangeCreate ChangeType = "create"
	ChangeUpdate ChangeType = "update"
	ChangeDelete ChangeType = "delete"
)

func (t ChangeType) Valid() bool {
	switch t {
	case ChangeCreate, ChangeUpdate, ChangeDelete:
		return true
	}
	return false
}

// AdminChange is the append-only audit record: rows are only ever inserted.
type AdminChange struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	AdminID       uint           `gorm:"index;not null" json:"admin_id"`
	Admin         User           `gorm:"foreignKey:AdminID" json:"-"`
	ChangeType    ChangeType     `gorm:"size:10;not null" json:"change_type"`
	ChangedAt     time.Time      `gorm:"index" json:"changed_at"`
	TableAffected string         `gorm:"size:50;index;not null" json:"table_affected"`
	RecordID      uint           `gorm:"index;not null" json:"record_id"`
	OldValue      datatypes.JSON `json:"old_value"`
	NewValue      datatypes.JSON `json:"new_value"`
}

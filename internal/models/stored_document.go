package models

import "time"

// StoredDocument holds an uploaded file in its transport-safe text encoding.
// DocID is unique per owner only ("<ownerID>_<ordinal>"), not globally.
type StoredDocument struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	OwnerID   uint      `gorm:"uniqueIndex:idx_owner_doc;not null" json:"owner_id"`
	Owner     User      `gorm:"foreignKey:OwnerID" json:"-"`
	DocID     string    `gorm:"size:64;uniqueIndex:idx_owner_doc;not null" json:"doc_id"`
	Ordinal   uint64    `gorm:"not null" json:"-"`
	Filename  string    `gorm:"size:255;not null" json:"filename"`
	Content   string    `gorm:"type:text;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// DocumentCounter hands out per-owner ordinals; bumped with a single UPDATE
// inside the upload transaction so concurrent uploads cannot collide.
type DocumentCounter struct {
	OwnerID uint   `gorm:"primaryKey"`
	Next    uint64 `gorm:"not null"`
}

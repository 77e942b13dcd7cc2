package models

import "time"

type LegalDocumentType string

const (
	LegalDocLegal      LegalDocumentType = "legal"
	LegalDocCompliance LegalDocumentType = "compliance"
	LegalDocReport     LegalDocumentType = "report"
	LegalDocInvoice    LegalDocumentType = "invoice"
	LegalDocReceipt    LegalDocumentType = "receipt"
	LegalDocArticle    LegalDocumentType = "article"
)

func (t LegalDocumentType) Valid() bool {
	switch t {
	case LegalDocLegal, LegalDocCompliance, LegalDocReport, LegalDocInvoice, LegalDocReceipt, LegalDocArticle:
		return true
	}
	return false
}

type LegalDocumentStatus string

const (
	LegalDocActive   LegalDocumentStatus = "active"
	LegalDocArchived LegalDocumentStatus = "archived"
)

func (s LegalDocumentStatus) Valid() bool {
	return s == LegalDocActive || s == LegalDocArchived
}

type LegalDocument struct {
	ID             uint                `gorm:"primaryKey" json:"id"`
	DocumentType   LegalDocumentType   `gorm:"size:20;not null" json:"document_type"`
	Title          string              `gorm:"size:255;not null" json:"title"`
	Content        string              `gorm:"type:text;not null" json:"content"`
	Version        string              `gorm:"size:50;not null" json:"version"`
	Status         LegalDocumentStatus `gorm:"size:20;not null" json:"status"`
	ExpiryDate     *time.Time          `json:"expiry_date"`
	CreatedBy      uint                `gorm:"index;not null" json:"created_by"`
	Creator        User                `gorm:"foreignKey:CreatedBy" json:"-"`
	LastModifiedBy *uint               `json:"last_modified_by"`
	LastModifiedAt *time.Time          `json:"last_modified_at"`
	CreatedAt      time.Time           `json:"created_at"`
}

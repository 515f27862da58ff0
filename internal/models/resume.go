package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResumeUser is the account entity of the resume-builder variant. It is
// unrelated to the job-board User and lives in its own table.
type ResumeUser struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Username string `gorm:"not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Bio      string `json:"bio"`
	Skills   string `json:"skills"`
}

func (u *ResumeUser) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// ResumeDraft is the single editable résumé per account, keyed by the
// account email and upserted on every submit.
type ResumeDraft struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserEmail  string `gorm:"uniqueIndex;not null" json:"userEmail"`
	FirstName  string `json:"firstname"`
	Surname    string `json:"surname"`
	City       string `json:"city"`
	PostalCode string `json:"postalcode"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Summary    string `gorm:"type:text" json:"summary"`
	Skills     string `gorm:"type:text" json:"skills"`
	Experience string `gorm:"type:text" json:"experience"`
	Education  string `gorm:"type:text" json:"education"`
}

func (d *ResumeDraft) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// Resume is a generated CV persisted best-effort when an authenticated
// user downloads a PDF.
type Resume struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID     uuid.UUID `gorm:"type:uuid;index" json:"userId"`
	FirstName  string    `json:"firstName"`
	Surname    string    `json:"surname"`
	City       string    `json:"city"`
	PostalCode string    `json:"postalCode"`
	Country    string    `json:"country"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	Summary    string    `gorm:"type:text" json:"summary"`
	Skills     string    `gorm:"type:text" json:"skills"`
	Experience string    `gorm:"type:text" json:"experience"`
	Education  string    `gorm:"type:text" json:"education"`
	PhotoName  string    `json:"photoPath,omitempty"`
}

func (r *Resume) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

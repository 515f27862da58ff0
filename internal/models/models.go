package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	RoleStudent   = "student"
	RoleRecruiter = "recruiter"
)

const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// Profile is embedded in User. Recruiters may link a company; students
// carry a résumé and skill list.
type Profile struct {
	Bio                string         `json:"bio"`
	Skills             pq.StringArray `gorm:"type:text[]" json:"skills"`
	Resume             string         `json:"resume"`
	ResumeOriginalName string         `json:"resumeOriginalName"`
	ProfilePhoto       string         `json:"profilePhoto"`
	CompanyID          *uuid.UUID     `gorm:"type:uuid" json:"company,omitempty"`
}

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FullName    string `gorm:"not null" json:"fullname"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	// bcrypt digest; never serialized.
	Password string `gorm:"not null" json:"-"`
	// Role is fixed at creation.
	Role    string  `gorm:"not null" json:"role"`
	Profile Profile `gorm:"embedded;embeddedPrefix:profile_" json:"profile"`

	// Set on login responses only, not persisted.
	Token string `gorm:"-" json:"token,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

type Company struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Location    string `json:"location"`
	Website     string `json:"website"`
	Logo        string `json:"logo"`
	// Owning user.
	UserID uuid.UUID `gorm:"type:uuid;index" json:"userId"`
}

func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type Job struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title           string         `gorm:"not null" json:"title"`
	Description     string         `gorm:"type:text" json:"description"`
	Requirements    pq.StringArray `gorm:"type:text[]" json:"requirements"`
	Salary          int64          `json:"salary"`
	ExperienceLevel int            `json:"experienceLevel"`
	Location        string         `json:"location"`
	JobType         string         `json:"jobType"`
	Position        int            `json:"position"`

	CompanyID uuid.UUID `gorm:"type:uuid;index" json:"companyId"`
	// omitempty keeps list payloads compact when the company is not preloaded.
	Company     *Company  `json:"company,omitempty"`
	CreatedByID uuid.UUID `gorm:"type:uuid;index" json:"created_by"`

	Applications []Application `gorm:"foreignKey:JobID" json:"applications"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

type Application struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	JobID       uuid.UUID `gorm:"type:uuid;index" json:"job"`
	Job         *Job      `json:"jobDetails,omitempty"`
	ApplicantID uuid.UUID `gorm:"type:uuid;index" json:"applicant"`
	Applicant   *User     `json:"applicantDetails,omitempty"`

	Status string `gorm:"default:'pending'" json:"status"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Job types
const (
	JobTypeFullTime   = "full-time"
	JobTypePartTime   = "part-time"
	JobTypeContract   = "contract"
	JobTypeInternship = "internship"
)

// Application statuses
const (
	StatusPending     = "pending"
	StatusReviewed    = "reviewed"
	StatusShortlisted = "shortlisted"
	StatusRejected    = "rejected"
	StatusHired       = "hired"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`
	// bcrypt hash, never serialized
	Password string `gorm:"not null" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Applicant is an application embedded in its parent Job. It has no table of
// its own: the whole list lives in the job's applicants jsonb column, so
// applicants are only ever read or written through their Job.
type Applicant struct {
	ID          uuid.UUID  `json:"id"`
	FullName    string     `json:"fullName"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone,omitempty"`
	CoverLetter string     `json:"coverLetter,omitempty"`
	Resume      string     `json:"resume,omitempty"`
	AppliedAt   time.Time  `json:"appliedAt"`
	Status      string     `json:"status"`
	ReviewedAt  *time.Time `json:"reviewedAt,omitempty"`
	ReviewedBy  *uuid.UUID `json:"reviewedBy,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

// ApplicantList serializes the embedded applicants to a jsonb column.
type ApplicantList []Applicant

func (l ApplicantList) Value() (driver.Value, error) {
	if l == nil {
		l = ApplicantList{}
	}
	return json.Marshal(l)
}

func (l *ApplicantList) Scan(src interface{}) error {
	if src == nil {
		*l = ApplicantList{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for ApplicantList", src)
	}
}

type Job struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title        string `gorm:"not null" json:"title"`
	Company      string `gorm:"not null" json:"company"`
	Location     string `gorm:"not null;index" json:"location"`
	Type         string `gorm:"not null;index" json:"type"`
	Salary       string `json:"salary"`
	Description  string `gorm:"type:text;not null" json:"description"`
	Requirements string `gorm:"type:text" json:"requirements"`
	ContactEmail string `gorm:"not null" json:"contact_email"`

	// Foreign Key: immutable after creation
	PostedByID uuid.UUID `gorm:"type:uuid;not null;index" json:"posted_by_id"`
	// Association: GORM needs Preload() to fill this
	PostedBy User `json:"posted_by,omitempty"`

	IsActive bool `gorm:"not null;default:true;index" json:"is_active"`

	Applicants ApplicantList `gorm:"type:jsonb;not null;default:'[]'" json:"applicants"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

package models

import (
	"time"
)

// Job type choices
const (
	JobTypeFullTime = "Full-time"
	JobTypePartTime = "Part-time"
	JobTypeContract = "Contract"
	JobTypeRemote   = "Remote"
)

// Experience level choices
const (
	ExperienceEntry     = "Entry"
	ExperienceMid       = "Mid"
	ExperienceSenior    = "Senior"
	ExperienceExecutive = "Executive"
)

// Application status choices. Only StatusApplied is ever set through the
// public handlers; the rest are moved by admin tooling.
const (
	StatusApplied     = "Applied"
	StatusReviewed    = "Reviewed"
	StatusShortlisted = "Shortlisted"
	StatusInterview   = "Interview"
	StatusRejected    = "Rejected"
	StatusAccepted    = "Accepted"
)

var (
	JobTypes = []string{JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeRemote}

	ExperienceLevels = []string{ExperienceEntry, ExperienceMid, ExperienceSenior, ExperienceExecutive}

	ApplicationStatuses = []string{StatusApplied, StatusReviewed, StatusShortlisted, StatusInterview, StatusRejected, StatusAccepted}
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	// 'omitempty' prevents loops when fetching a User -> Profile -> User -> ...
	Profile *UserProfile `json:"profile,omitempty"`
}

// UserProfile is created in the same transaction as its User and deleted
// with it. The employer flag is the whole authorization model.
type UserProfile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID     uint     `gorm:"uniqueIndex;not null" json:"user_id"`
	User       *User    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	IsEmployer bool     `gorm:"default:false" json:"is_employer"`
	CompanyID  *uint    `json:"company_id,omitempty"`
	Company    *Company `gorm:"constraint:OnDelete:SET NULL" json:"company,omitempty"`
	Bio        string   `gorm:"type:text" json:"bio"`
	Phone      string   `json:"phone"`
}

type Company struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Website     string `json:"website"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	Logo        string `json:"logo"`

	Jobs []Job `json:"jobs,omitempty"`
}

type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"posted_date"`
	UpdatedAt time.Time `json:"updated_at"`

	CompanyID uint    `gorm:"not null;index" json:"company_id"`
	Company   Company `json:"company"`

	// Nulled out when the posting account is deleted; the listing survives.
	PostedByID *uint `gorm:"index" json:"posted_by_id,omitempty"`
	PostedBy   *User `gorm:"constraint:OnDelete:SET NULL" json:"-"`

	Title           string     `gorm:"not null" json:"title"`
	Location        string     `json:"location"`
	Description     string     `gorm:"type:text" json:"description"`
	Requirements    string     `gorm:"type:text" json:"requirements"`
	SalaryMin       *int       `json:"salary_min,omitempty"`
	SalaryMax       *int       `json:"salary_max,omitempty"`
	Salary          string     `json:"salary"`
	JobType         string     `gorm:"default:'Full-time'" json:"job_type"`
	ExperienceLevel string     `gorm:"default:'Mid'" json:"experience_level"`
	Deadline        *time.Time `json:"deadline,omitempty"`
	IsActive        bool       `gorm:"default:true" json:"is_active"`
	ViewsCount      int        `gorm:"default:0" json:"views_count"`
}

// Application rows are unique per (job, user); the composite index is the
// real guard against duplicate submissions, the handler check is advisory.
type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"applied_date"`
	UpdatedAt time.Time `json:"updated_date"`

	JobID uint `gorm:"not null;uniqueIndex:idx_application_job_user" json:"job_id"`
	Job   Job  `gorm:"constraint:OnDelete:CASCADE" json:"job"`

	UserID uint  `gorm:"not null;uniqueIndex:idx_application_job_user" json:"user_id"`
	User   *User `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	ResumePath  string `gorm:"not null" json:"resume_path"`
	CoverLetter string `gorm:"type:text" json:"cover_letter"`
	Status      string `gorm:"default:'Applied'" json:"status"`
}

type Bookmark struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID uint  `gorm:"not null;uniqueIndex:idx_bookmark_user_job" json:"user_id"`
	User   *User `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	JobID uint `gorm:"not null;uniqueIndex:idx_bookmark_user_job" json:"job_id"`
	Job   Job  `gorm:"constraint:OnDelete:CASCADE" json:"job"`
}

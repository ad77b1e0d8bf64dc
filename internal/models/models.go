package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Role determines which permission set a member resolves to.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
	RoleViewer Role = "viewer"
)

// MemberStatus is the lifecycle state of an organization membership.
type MemberStatus string

const (
	MemberActive   MemberStatus = "active"
	MemberPending  MemberStatus = "pending"
	MemberInactive MemberStatus = "inactive"
)

// CandidateStatus is the lifecycle state of a candidate within an organization.
type CandidateStatus string

const (
	CandidatePending     CandidateStatus = "pending"
	CandidateShortlisted CandidateStatus = "shortlisted"
	CandidateRejected    CandidateStatus = "rejected"
	CandidateInterviewed CandidateStatus = "interviewed"
	CandidateHired       CandidateStatus = "hired"
)

// JobStatus is the publication state of a job listing.
type JobStatus string

const (
	JobActive   JobStatus = "active"
	JobDraft    JobStatus = "draft"
	JobInactive JobStatus = "inactive"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Name         string `gorm:"size:200" json:"name"`
	PasswordHash string `gorm:"size:255" json:"-"`
}

type Organization struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name    string `gorm:"not null" json:"name"`
	Website string `json:"website"`

	// 'omitempty' prevents infinite loops when fetching an Org -> Jobs -> Org -> ...
	Members    []OrganizationMember `json:"members,omitempty"`
	Jobs       []JobListing         `json:"jobs,omitempty"`
	Candidates []Candidate          `json:"candidates,omitempty"`
}

// OrganizationMember is the (user, organization, role) relation. The table
// must keep at least one active owner per organization at all times.
type OrganizationMember struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID         uint         `gorm:"uniqueIndex:idx_member_user_org" json:"user_id"`
	OrganizationID uint         `gorm:"uniqueIndex:idx_member_user_org" json:"organization_id"`
	Role           Role         `gorm:"size:20;not null" json:"role"`
	Status         MemberStatus `gorm:"size:20;default:'pending'" json:"status"`

	User         User         `json:"user,omitempty"`
	Organization Organization `json:"-"`
}

type JobListing struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	OrganizationID uint `gorm:"index;not null" json:"organization_id"`

	Title          string    `gorm:"not null" json:"title"`
	Description    string    `gorm:"type:text" json:"description"`
	Requirements   string    `gorm:"type:text" json:"requirements"`
	Department     string    `json:"department"`
	EmploymentType string    `json:"employment_type"`
	Status         JobStatus `gorm:"size:20;default:'active'" json:"status"`

	Applications []JobApplication `json:"applications,omitempty"`
}

type Candidate struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	OrganizationID uint `gorm:"index;not null" json:"organization_id"`

	FirstName         string          `gorm:"not null" json:"first_name"`
	LastName          string          `gorm:"not null" json:"last_name"`
	Email             string          `gorm:"not null" json:"email"`
	Phone             string          `json:"phone"`
	CurrentPosition   string          `json:"current_position"`
	YearsOfExperience int             `json:"years_of_experience"`
	Skills            pq.StringArray  `gorm:"type:text[]" json:"skills"`
	Education         string          `json:"education"`
	Location          string          `json:"location"`
	LinkedIn          string          `json:"linkedin"`
	ResumeText        string          `gorm:"type:text" json:"-"`
	Score             int             `json:"score"`
	Status            CandidateStatus `gorm:"size:20;default:'pending'" json:"status"`

	Applications []JobApplication `json:"applications,omitempty"`
}

// JobApplication joins a candidate to a job listing. Each application carries
// its own match score and the full analysis payload for that pairing, so one
// candidate can be scored independently against many jobs.
type JobApplication struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CandidateID  uint `gorm:"uniqueIndex:idx_application_candidate_job" json:"candidate_id"`
	JobListingID uint `gorm:"uniqueIndex:idx_application_candidate_job" json:"job_listing_id"`

	MatchScore int             `json:"match_score"`
	AIAnalysis datatypes.JSON  `gorm:"type:json" json:"ai_analysis"`
	Status     CandidateStatus `gorm:"size:20;default:'pending'" json:"status"`
	// Overridden marks an application manually promoted to shortlisted,
	// bypassing the match score.
	Overridden bool `gorm:"default:false" json:"overridden"`

	Candidate  Candidate  `json:"candidate,omitempty"`
	JobListing JobListing `json:"-"`
}

// APIUsageLog records one outbound model call.
type APIUsageLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	OrganizationID uint   `gorm:"index" json:"organization_id"`
	Operation      string `gorm:"size:100" json:"operation"` // "extract" or "analyze"
	Model          string `gorm:"size:100" json:"model"`
	DurationMs     int64  `json:"duration_ms"`
	Outcome        string `gorm:"size:20" json:"outcome"` // "model" or "degraded"
}

type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	OrganizationID uint           `gorm:"index;not null" json:"organization_id"`
	UserID         uint           `gorm:"index" json:"user_id"`
	RequestID      string         `gorm:"size:64" json:"request_id"`
	Action         string         `gorm:"size:200;not null" json:"action"` // e.g. "members.update", "applications.override"
	ResourceType   string         `gorm:"size:100" json:"resource_type"`
	ResourceID     uint           `gorm:"index" json:"resource_id"`
	Metadata       datatypes.JSON `gorm:"type:json" json:"metadata"`
}

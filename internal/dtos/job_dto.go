package dtos

type JobCreationRequest struct {
	OrganizationID uint   `json:"organizationId" binding:"required"`
	Title          string `json:"title" binding:"required"`
	Description    string `json:"description" binding:"required"`

	// Optional fields
	Requirements   string `json:"requirements"`
	Department     string `json:"department"`
	EmploymentType string `json:"employmentType"`
	Status         string `json:"status"` // defaults to "active" if empty
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type OverrideRequest struct {
	OrganizationID uint `json:"organizationId" binding:"required"`
}

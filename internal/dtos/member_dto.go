package dtos

type UpdateMemberRequest struct {
	OrganizationID uint   `json:"organizationId" binding:"required"`
	MemberID       uint   `json:"memberId" binding:"required"`
	Role           string `json:"role" binding:"required"`
}

type DeleteMemberRequest struct {
	OrganizationID uint `json:"organizationId" binding:"required"`
	MemberID       uint `json:"memberId" binding:"required"`
}

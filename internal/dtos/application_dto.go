package dtos

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required,oneof=pending accepted rejected"`
}

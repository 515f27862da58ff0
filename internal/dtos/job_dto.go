package dtos

type JobCreateRequest struct {
	Title string `json:"title" binding:"required"`
	// Comma-delimited free text, normalized server-side.
	Requirements string `json:"requirements" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Salary       int64  `json:"salary" binding:"required"`
	Location     string `json:"location" binding:"required"`
	JobType      string `json:"jobType" binding:"required"`
	Experience   int    `json:"experience" binding:"required"`
	Position     int    `json:"position" binding:"required"`
	CompanyID    string `json:"companyId" binding:"required"`
}

// JobUpdateRequest is a partial update: only fields with non-zero values
// are applied.
type JobUpdateRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	Salary       int64  `json:"salary"`
	Location     string `json:"location"`
	JobType      string `json:"jobType"`
	Experience   int    `json:"experience"`
	Position     int    `json:"position"`
	CompanyID    string `json:"companyId"`
}

package dtos

type CompanyRegisterRequest struct {
	Name string `json:"companyName" binding:"required"`
}

// CompanyUpdateRequest is a partial update; the logo file, if any, rides
// alongside in the multipart form.
type CompanyUpdateRequest struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	Website     string `form:"website"`
	Location    string `form:"location"`
}

package dtos

type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ResumeLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ResumeProfileUpdateRequest targets the account identified by Email and
// merges only the provided fields.
type ResumeProfileUpdateRequest struct {
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Bio      string `json:"bio"`
	Skills   string `json:"skills"`
}

type ResumeSubmitRequest struct {
	Email      string `json:"email" binding:"required"`
	FirstName  string `json:"firstname"`
	Surname    string `json:"surname"`
	City       string `json:"city"`
	PostalCode string `json:"postalcode"`
	Phone      string `json:"phone"`
	Summary    string `json:"summary"`
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
	Education  string `json:"education"`
}

// GeneratePDFRequest is validated field-by-field so the 400 message can
// name the first missing field, matching the documented contract.
type GeneratePDFRequest struct {
	FirstName  string `json:"firstName"`
	Surname    string `json:"surname"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Summary    string `json:"summary"`
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
	Education  string `json:"education"`
	// Optional, base64 with or without a data-URI prefix.
	Photo string `json:"photo"`
}

// MissingField returns the name of the first absent required field, or ""
// when the payload is complete.
func (r *GeneratePDFRequest) MissingField() string {
	required := []struct {
		name  string
		value string
	}{
		{"firstName", r.FirstName},
		{"surname", r.Surname},
		{"city", r.City},
		{"postalCode", r.PostalCode},
		{"country", r.Country},
		{"phone", r.Phone},
		{"email", r.Email},
		{"summary", r.Summary},
		{"skills", r.Skills},
		{"experience", r.Experience},
		{"education", r.Education},
	}
	for _, f := range required {
		if f.value == "" {
			return f.name
		}
	}
	return ""
}

package domain

// AmbassadorApplication is the student ambassador lead form.
type AmbassadorApplication struct {
	Name           string `json:"name" validate:"required,min=2"`
	University     string `json:"university" validate:"required"`
	Department     string `json:"department" validate:"required"`
	GraduationYear string `json:"graduationYear" validate:"required,numeric,len=4"`
	CurrentYear    string `json:"currentYear" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required,numeric"`
	CountryCode    string `json:"countryCode" validate:"required,startswith=+"`
	Competencies   string `json:"competencies" validate:"required,min=10"`
}

// PartnershipRequest is the university partnership lead form.
type PartnershipRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	University  string `json:"university" validate:"required"`
	Designation string `json:"designation" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,numeric"`
	CountryCode string `json:"countryCode" validate:"required,startswith=+"`
	Website     string `json:"website,omitempty" validate:"omitempty,url|fqdn"`
	Description string `json:"description" validate:"required,min=10"`
}

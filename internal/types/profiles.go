package types

import "github.com/go-playground/validator/v10"

// CreateProfileRequest represents the request to create a dating profile.
// BirthDate uses the YYYY-MM-DD wire format the engine consumes directly.
type CreateProfileRequest struct {
	Name       string   `json:"name" validate:"required,min=1"`
	BirthDate  string   `json:"birth_date" validate:"required,datetime=2006-01-02"`
	BioAge     int      `json:"bio_age" validate:"omitempty,gte=18,lte=99"`
	Stamina    int      `json:"stamina" validate:"omitempty,gte=1,lte=10"`
	Location   string   `json:"location,omitempty"`
	Profession string   `json:"profession,omitempty"`
	ImageURL   string   `json:"image_url,omitempty" validate:"omitempty,url"`
	Interests  []string `json:"interests,omitempty"`
}

// UpdateProfileRequest represents a partial profile update. Zero-valued
// numeric fields mean "leave unchanged".
type UpdateProfileRequest struct {
	Name       string   `json:"name,omitempty"`
	BirthDate  string   `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	BioAge     int      `json:"bio_age,omitempty" validate:"omitempty,gte=18,lte=99"`
	Stamina    int      `json:"stamina,omitempty" validate:"omitempty,gte=1,lte=10"`
	Location   string   `json:"location,omitempty"`
	Profession string   `json:"profession,omitempty"`
	ImageURL   string   `json:"image_url,omitempty" validate:"omitempty,url"`
	Interests  []string `json:"interests,omitempty"`
}

// CompatibilityRequest exposes the calculator directly: two assessment
// bundles supplied by the caller instead of being derived from stored
// profiles. Either side may be null, which yields the degenerate report.
type CompatibilityRequest struct {
	Subject   *AssessmentSet `json:"subject"`
	Candidate *AssessmentSet `json:"candidate"`
}

// CosmicRequest exposes the cosmic blueprint calculation directly.
type CosmicRequest struct {
	BirthDate string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Name      string `json:"name,omitempty"`
}

// Validate validates the CreateProfileRequest using the validator.
func (r *CreateProfileRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateProfileRequest using the validator.
func (r *UpdateProfileRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CosmicRequest using the validator.
func (r *CosmicRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

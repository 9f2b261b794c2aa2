package model

import "time"

type IntakeStatus string

const (
	IntakeStatusNew       IntakeStatus = "new"
	IntakeStatusReviewed  IntakeStatus = "reviewed"
	IntakeStatusContacted IntakeStatus = "contacted"
	IntakeStatusScheduled IntakeStatus = "scheduled"
	IntakeStatusCompleted IntakeStatus = "completed"
	IntakeStatusArchived  IntakeStatus = "archived"
)

func (s IntakeStatus) Valid() bool {
	switch s {
	case IntakeStatusNew, IntakeStatusReviewed, IntakeStatusContacted,
		IntakeStatusScheduled, IntakeStatusCompleted, IntakeStatusArchived:
		return true
	}
	return false
}

// IntakeForm captures the accessibility-focused client questionnaire. The
// boolean groups mirror the form's sensory and mobility sections.
type IntakeForm struct {
	ID              int64  `db:"id" json:"id"`
	ClientName      string `db:"client_name" json:"client_name"`
	Email           string `db:"email" json:"email"`
	Phone           string `db:"phone" json:"phone,omitempty"`
	ClientType      string `db:"client_type" json:"client_type"`
	ServiceLocation string `db:"service_location" json:"service_location"`
	Address         string `db:"address" json:"address,omitempty"`

	ServiceRequested  string `db:"service_requested" json:"service_requested,omitempty"`
	HairLength        string `db:"hair_length" json:"hair_length,omitempty"`
	DesiredStyle      string `db:"desired_style" json:"desired_style,omitempty"`
	DesiredStyleOther string `db:"desired_style_other" json:"desired_style_other,omitempty"`
	HairType          string `db:"hair_type" json:"hair_type,omitempty"`

	SensitiveToNoise         bool   `db:"sensitive_to_noise" json:"sensitive_to_noise"`
	SensitiveToTouch         bool   `db:"sensitive_to_touch" json:"sensitive_to_touch"`
	DoesNotLikeWater         bool   `db:"does_not_like_water" json:"does_not_like_water"`
	NervousAnxious           bool   `db:"nervous_anxious" json:"nervous_anxious"`
	EnjoysFidgetToys         bool   `db:"enjoys_fidget_toys" json:"enjoys_fidget_toys"`
	NeedsWeightedCape        bool   `db:"needs_weighted_cape" json:"needs_weighted_cape"`
	RequiresQuietEnvironment bool   `db:"requires_quiet_environment" json:"requires_quiet_environment"`
	OtherSensoryNeeds        string `db:"other_sensory_needs" json:"other_sensory_needs,omitempty"`

	UsesWheelchair  bool   `db:"uses_wheelchair" json:"uses_wheelchair"`
	LimitedMobility bool   `db:"limited_mobility" json:"limited_mobility"`
	HasBehaviours   bool   `db:"has_behaviours" json:"has_behaviours"`
	BehaviourNotes  string `db:"behaviour_notes" json:"behaviour_notes,omitempty"`

	AdditionalNotes string       `db:"additional_notes" json:"additional_notes,omitempty"`
	Status          IntakeStatus `db:"status" json:"status"`
	CreatedAt       time.Time    `db:"created_at" json:"created_at"`
}

type CreateIntakeRequest struct {
	ClientName      string `json:"client_name" binding:"required,max=200"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"max=40"`
	ClientType      string `json:"client_type" binding:"omitempty,oneof=adult child"`
	ServiceLocation string `json:"service_location" binding:"omitempty,oneof=in-salon mobile"`
	Address         string `json:"address" binding:"max=500"`

	ServiceRequested  string `json:"service_requested" binding:"max=1000"`
	HairLength        string `json:"hair_length" binding:"max=100"`
	DesiredStyle      string `json:"desired_style" binding:"max=200"`
	DesiredStyleOther string `json:"desired_style_other" binding:"max=1000"`
	HairType          string `json:"hair_type" binding:"max=100"`

	SensitiveToNoise         bool   `json:"sensitive_to_noise"`
	SensitiveToTouch         bool   `json:"sensitive_to_touch"`
	DoesNotLikeWater         bool   `json:"does_not_like_water"`
	NervousAnxious           bool   `json:"nervous_anxious"`
	EnjoysFidgetToys         bool   `json:"enjoys_fidget_toys"`
	NeedsWeightedCape        bool   `json:"needs_weighted_cape"`
	RequiresQuietEnvironment bool   `json:"requires_quiet_environment"`
	OtherSensoryNeeds        string `json:"other_sensory_needs" binding:"max=2000"`

	UsesWheelchair  bool   `json:"uses_wheelchair"`
	LimitedMobility bool   `json:"limited_mobility"`
	HasBehaviours   bool   `json:"has_behaviours"`
	BehaviourNotes  string `json:"behaviour_notes" binding:"max=2000"`

	AdditionalNotes string `json:"additional_notes" binding:"max=5000"`
}

type UpdateIntakeStatusRequest struct {
	Status IntakeStatus `json:"status" binding:"required"`
}

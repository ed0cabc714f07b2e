package models

import "github.com/akwaabahomes/passcheck/internal/strength"

// EvaluateRequest is the body of POST /api/password/strength.
type EvaluateRequest struct {
	Password string `json:"password" validate:"max=1024"`

	// Policy optionally tightens or relaxes the server policy for this call.
	Policy *strength.PolicyOverrides `json:"policy,omitempty"`

	// Email and Name feed the personal-information check.
	Email string `json:"email,omitempty" validate:"max=254"`
	Name  string `json:"name,omitempty" validate:"max=100"`
}

// Hint returns the identity hint for the request, or nil when neither email
// nor name was sent.
func (r EvaluateRequest) Hint() *strength.IdentityHint {
	if r.Email == "" && r.Name == "" {
		return nil
	}
	return &strength.IdentityHint{Email: r.Email, Name: r.Name}
}

// EvaluateResponse is the evaluation result together with its display label
// and color token.
type EvaluateResponse struct {
	strength.Result
	Label string `json:"label"`
	Color string `json:"color"`
}

// NewEvaluateResponse decorates result with its label and color.
func NewEvaluateResponse(result strength.Result) EvaluateResponse {
	return EvaluateResponse{
		Result: result,
		Label:  strength.Label(result.Score),
		Color:  strength.ColorToken(result.Score),
	}
}

// GenerateRequest is the body of POST /api/password/generate. A zero Length
// selects the default of 16.
type GenerateRequest struct {
	Length int `json:"length" validate:"gte=0,lte=256"`
}

// GenerateResponse carries a generated password and its evaluation against
// the server policy.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
	Score    int    `json:"score"`
	Label    string `json:"label"`
}

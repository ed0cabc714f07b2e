package strength

// Default policy values.
const (
	DefaultMinLength    = 12
	DefaultMinScore     = 3
	DefaultMaxAgeDays   = 90
	DefaultPreventReuse = 5
)

// Policy is the set of minimum requirements a password must satisfy to be
// accepted. A Policy is a plain value; it is never mutated by evaluation.
type Policy struct {
	// MinLength is the minimum number of characters (runes).
	MinLength int `json:"minLength"`

	RequireUppercase    bool `json:"requireUppercase"`
	RequireLowercase    bool `json:"requireLowercase"`
	RequireNumbers      bool `json:"requireNumbers"`
	RequireSpecialChars bool `json:"requireSpecialChars"`

	// MinScore is the lowest acceptable score on the 0..4 scale.
	MinScore int `json:"minScore"`

	// MaxAgeDays is the password rotation period. Zero disables expiry.
	MaxAgeDays int `json:"maxAgeDays"`

	// PreventReuse is how many previous passwords may not be reused.
	// Zero disables the reuse check.
	PreventReuse int `json:"preventReuse"`
}

// DefaultPolicy returns the built-in policy: 12 characters, every character
// class, score 3 or better, 90 day rotation and a reuse window of 5.
func DefaultPolicy() Policy {
	return Policy{
		MinLength:           DefaultMinLength,
		RequireUppercase:    true,
		RequireLowercase:    true,
		RequireNumbers:      true,
		RequireSpecialChars: true,
		MinScore:            DefaultMinScore,
		MaxAgeDays:          DefaultMaxAgeDays,
		PreventReuse:        DefaultPreventReuse,
	}
}

// PolicyOverrides is a partially specified [Policy]. A nil field means
// "use the base value"; a non-nil field wins even when it holds a zero value,
// so an explicit RequireNumbers=false really disables the requirement.
type PolicyOverrides struct {
	MinLength           *int  `json:"minLength,omitempty"`
	RequireUppercase    *bool `json:"requireUppercase,omitempty"`
	RequireLowercase    *bool `json:"requireLowercase,omitempty"`
	RequireNumbers      *bool `json:"requireNumbers,omitempty"`
	RequireSpecialChars *bool `json:"requireSpecialChars,omitempty"`
	MinScore            *int  `json:"minScore,omitempty"`
	MaxAgeDays          *int  `json:"maxAgeDays,omitempty"`
	PreventReuse        *int  `json:"preventReuse,omitempty"`
}

// Resolve merges the overrides field by field over [DefaultPolicy].
func (o PolicyOverrides) Resolve() Policy {
	return o.ResolveOver(DefaultPolicy())
}

// ResolveOver merges the overrides field by field over base.
func (o PolicyOverrides) ResolveOver(base Policy) Policy {
	return Policy{
		MinLength:           valueOr(o.MinLength, base.MinLength),
		RequireUppercase:    valueOr(o.RequireUppercase, base.RequireUppercase),
		RequireLowercase:    valueOr(o.RequireLowercase, base.RequireLowercase),
		RequireNumbers:      valueOr(o.RequireNumbers, base.RequireNumbers),
		RequireSpecialChars: valueOr(o.RequireSpecialChars, base.RequireSpecialChars),
		MinScore:            clampScore(valueOr(o.MinScore, base.MinScore)),
		MaxAgeDays:          valueOr(o.MaxAgeDays, base.MaxAgeDays),
		PreventReuse:        valueOr(o.PreventReuse, base.PreventReuse),
	}
}

// IsZero reports whether no field is overridden.
func (o PolicyOverrides) IsZero() bool {
	return o == PolicyOverrides{}
}

func valueOr[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}

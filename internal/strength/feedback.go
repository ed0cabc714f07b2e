package strength

// Feedback messages.
const (
	FeedbackVeryWeak      = "Password is very weak"
	FeedbackWeak          = "Password is weak"
	FeedbackTooShort      = "Password is too short (minimum 8 characters)"
	FeedbackCouldBeLonger = "Password could be longer (12 or more characters recommended)"
	FeedbackNoUppercase   = "Add uppercase letters"
	FeedbackNoLowercase   = "Add lowercase letters"
	FeedbackNoNumbers     = "Add numbers"
	FeedbackNoSpecial     = "Add special characters"
	FeedbackCommon        = "This is a commonly used password"
	FeedbackSequential    = "Avoid sequential characters (e.g. 123, abc)"
	FeedbackRepeated      = "Avoid repeated characters (e.g. aaa, 111)"
	FeedbackKeyboardWalk  = "Avoid keyboard patterns (e.g. qwerty)"
	FeedbackPersonalInfo  = "Avoid using your name or email in the password"
)

// Suggestion messages.
const (
	SuggestPassphrase   = "Use a passphrase made of several unrelated words"
	SuggestMixCase      = "Mix uppercase and lowercase letters at random positions"
	SuggestSubstitute   = "Substitute symbols for some letters (e.g. @ for a)"
	SuggestNoPersonal   = "Avoid personal information such as names or birthdays"
	SuggestLengthen     = "Make the password at least 12 characters long"
	SuggestAddSymbols   = "Replace some letters with symbols (e.g. $ for s)"
	SuggestUniquePhrase = "Pick a unique phrase that is meaningful only to you"
)

func (a analysis) feedback(score int) []string {
	out := make([]string, 0, 8)

	switch {
	case score <= 1:
		out = append(out, FeedbackVeryWeak)
	case score <= 2:
		out = append(out, FeedbackWeak)
	}

	switch {
	case a.length < 8:
		out = append(out, FeedbackTooShort)
	case a.length < 12:
		out = append(out, FeedbackCouldBeLonger)
	}

	if !a.hasUpper {
		out = append(out, FeedbackNoUppercase)
	}
	if !a.hasLower {
		out = append(out, FeedbackNoLowercase)
	}
	if !a.hasDigit {
		out = append(out, FeedbackNoNumbers)
	}
	if !a.hasSpecial {
		out = append(out, FeedbackNoSpecial)
	}

	if a.common {
		out = append(out, FeedbackCommon)
	}
	if a.sequential {
		out = append(out, FeedbackSequential)
	}
	if a.repeated {
		out = append(out, FeedbackRepeated)
	}
	if a.keyboard {
		out = append(out, FeedbackKeyboardWalk)
	}
	if a.personal {
		out = append(out, FeedbackPersonalInfo)
	}

	return out
}

func (a analysis) suggestions(score int) []string {
	out := make([]string, 0, 7)

	if score < 3 {
		out = append(out, SuggestPassphrase, SuggestMixCase, SuggestSubstitute, SuggestNoPersonal)
	}
	if a.length < 12 {
		out = append(out, SuggestLengthen)
	}
	if !a.hasSpecial {
		out = append(out, SuggestAddSymbols)
	}
	if a.common {
		out = append(out, SuggestUniquePhrase)
	}

	return out
}

package strength

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Score bounds.
const (
	MinScore = 0
	MaxScore = 4
)

// specialChars is the set of characters counted as "special".
const specialChars = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

var (
	sequentialFragments = []string{"123", "abc", "qwe", "asd", "zxc"}
	keyboardWalks       = []string{"qwerty", "asdfg", "zxcvb"}
)

// IdentityHint carries user-identifying strings used only to detect
// self-referential passwords. It is never stored.
type IdentityHint struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// Requirements holds the seven independent requirement checks.
type Requirements struct {
	MinLength        bool `json:"minLength"`
	HasUppercase     bool `json:"hasUppercase"`
	HasLowercase     bool `json:"hasLowercase"`
	HasNumbers       bool `json:"hasNumbers"`
	HasSpecialChars  bool `json:"hasSpecialChars"`
	NoCommonPatterns bool `json:"noCommonPatterns"`
	NoPersonalInfo   bool `json:"noPersonalInfo"`
}

// Result is the outcome of one evaluation.
type Result struct {
	// Score is 0 (very weak) .. 4 (very strong).
	Score int `json:"score"`

	// Feedback lists the problems found, most important first.
	Feedback []string `json:"feedback"`

	// Suggestions lists ways to improve the password.
	Suggestions []string `json:"suggestions"`

	// MeetsRequirements is true when every policy-mandated requirement
	// holds and Score is at least the policy's MinScore.
	MeetsRequirements bool `json:"meetsRequirements"`

	Requirements Requirements `json:"requirements"`
}

// Evaluator scores passwords using a fixed [Dictionary].
type Evaluator struct {
	dict *Dictionary
}

// NewEvaluator returns an Evaluator backed by dict. A nil dict selects
// [DefaultDictionary].
func NewEvaluator(dict *Dictionary) *Evaluator {
	if dict == nil {
		dict = defaultDictionary
	}
	return &Evaluator{dict: dict}
}

var defaultEvaluator = NewEvaluator(nil)

// Evaluate scores password against policy using the default dictionary.
// hint may be nil.
func Evaluate(password string, policy Policy, hint *IdentityHint) Result {
	return defaultEvaluator.Evaluate(password, policy, hint)
}

// IsAcceptable reports whether password satisfies policy. It is exactly
// Evaluate(password, policy, hint).MeetsRequirements.
func IsAcceptable(password string, policy Policy, hint *IdentityHint) bool {
	return defaultEvaluator.IsAcceptable(password, policy, hint)
}

// IsAcceptable is the [Evaluator] form of the package-level IsAcceptable.
func (e *Evaluator) IsAcceptable(password string, policy Policy, hint *IdentityHint) bool {
	return e.Evaluate(password, policy, hint).MeetsRequirements
}

// Evaluate scores password against policy. Every input, including the empty
// string, produces a well-formed Result.
func (e *Evaluator) Evaluate(password string, policy Policy, hint *IdentityHint) Result {
	a := e.analyze(password, hint)

	score := a.score()

	req := Requirements{
		MinLength:        a.length >= policy.MinLength,
		HasUppercase:     a.hasUpper,
		HasLowercase:     a.hasLower,
		HasNumbers:       a.hasDigit,
		HasSpecialChars:  a.hasSpecial,
		NoCommonPatterns: !a.common && !a.patterned,
		NoPersonalInfo:   !a.personal,
	}

	return Result{
		Score:             score,
		Feedback:          a.feedback(score),
		Suggestions:       a.suggestions(score),
		MeetsRequirements: meets(req, policy, score),
		Requirements:      req,
	}
}

func meets(req Requirements, policy Policy, score int) bool {
	switch {
	case !req.MinLength:
		return false
	case policy.RequireUppercase && !req.HasUppercase:
		return false
	case policy.RequireLowercase && !req.HasLowercase:
		return false
	case policy.RequireNumbers && !req.HasNumbers:
		return false
	case policy.RequireSpecialChars && !req.HasSpecialChars:
		return false
	case !req.NoCommonPatterns, !req.NoPersonalInfo:
		return false
	}
	return score >= policy.MinScore
}

// analysis collects every fact about a password the scorer, the requirement
// checks and the feedback builders need.
type analysis struct {
	length   int
	distinct int

	hasUpper   bool
	hasLower   bool
	hasDigit   bool
	hasSpecial bool

	common     bool
	patterned  bool
	sequential bool
	repeated   bool
	keyboard   bool
	personal   bool
}

func (e *Evaluator) analyze(password string, hint *IdentityHint) analysis {
	lowered := strings.ToLower(password)

	a := analysis{
		length:     utf8.RuneCountInString(password),
		common:     e.dict.IsCommon(lowered),
		patterned:  e.dict.MatchesPattern(lowered),
		sequential: containsAny(lowered, sequentialFragments),
		keyboard:   containsAny(lowered, keyboardWalks),
		repeated:   hasRepeatedRun(password, 3),
		personal:   leaksIdentity(password, hint),
	}

	seen := make(map[rune]struct{}, len(password))
	for _, r := range password {
		seen[r] = struct{}{}
		switch {
		case r >= 'A' && r <= 'Z':
			a.hasUpper = true
		case r >= 'a' && r <= 'z':
			a.hasLower = true
		case r >= '0' && r <= '9':
			a.hasDigit = true
		case strings.ContainsRune(specialChars, r):
			a.hasSpecial = true
		}
	}
	a.distinct = len(seen)

	return a
}

func (a analysis) variety() int {
	n := 0
	for _, ok := range []bool{a.hasUpper, a.hasLower, a.hasDigit, a.hasSpecial} {
		if ok {
			n++
		}
	}
	return n
}

func (a analysis) score() int {
	score := lengthScore(a.length)

	switch v := a.variety(); {
	case v == 4:
		score += 2
	case v >= 3:
		score++
	}

	// distinct runes >= 60% of length; 5*distinct >= 3*length avoids floats
	if a.length > 0 && 5*a.distinct >= 3*a.length {
		score++
	}

	if a.common {
		score = penalize(score, 2)
	}
	if a.sequential {
		score = penalize(score, 1)
	}
	if a.repeated {
		score = penalize(score, 1)
	}
	if a.keyboard {
		score = penalize(score, 1)
	}

	return clampScore(score)
}

// lengthScore is the cumulative length contribution: one point each at
// 8, 12 and 16 characters.
func lengthScore(length int) int {
	score := 0
	for _, tier := range []int{8, 12, 16} {
		if length >= tier {
			score++
		}
	}
	return score
}

func penalize(score, by int) int {
	return max(score-by, 0)
}

func clampScore(score int) int {
	return min(max(score, MinScore), MaxScore)
}

func containsAny(s string, fragments []string) bool {
	for _, f := range fragments {
		if strings.Contains(s, f) {
			return true
		}
	}
	return false
}

// hasRepeatedRun reports whether any rune occurs n or more times in a row.
func hasRepeatedRun(s string, n int) bool {
	var prev rune
	run := 0
	for i, r := range []rune(s) {
		if i > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		if run >= n {
			return true
		}
		prev = r
	}
	return false
}

// leaksIdentity reports whether the password contains the email local-part or
// a name token longer than two characters. Both sides are NFKC-normalised and
// lowercased first.
func leaksIdentity(password string, hint *IdentityHint) bool {
	if hint == nil {
		return false
	}

	lowered := fold(password)

	if hint.Email != "" {
		local, _, _ := strings.Cut(hint.Email, "@")
		if local = fold(local); local != "" && strings.Contains(lowered, local) {
			return true
		}
	}

	for _, token := range strings.Fields(hint.Name) {
		token = fold(token)
		if utf8.RuneCountInString(token) > 2 && strings.Contains(lowered, token) {
			return true
		}
	}

	return false
}

func fold(s string) string {
	return strings.ToLower(norm.NFKC.String(s))
}

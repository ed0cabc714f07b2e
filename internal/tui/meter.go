package tui

import (
	"fmt"
	"strings"

	"github.com/akwaabahomes/passcheck/internal/strength"
)

const (
	meterWidth      = 20
	meterLevels     = strength.MaxScore + 1
	maxSuggestions  = 2
	meterEmptyLabel = "enter a password"
)

// renderMeter draws the strength bar, label and feedback for result. An empty
// password shows an empty bar.
func renderMeter(result strength.Result, policy strength.Policy, empty bool) string {
	var b strings.Builder

	filled := 0
	label := meterEmptyLabel
	style := scoreStyle("gray")
	if !empty {
		filled = (result.Score + 1) * meterWidth / meterLevels
		label = strength.Label(result.Score)
		style = scoreStyle(strength.ColorToken(result.Score))
	}

	b.WriteString("Strength  ")
	b.WriteString(style.Render(strings.Repeat("█", filled)))
	b.WriteString(helpStyle.Render(strings.Repeat("░", meterWidth-filled)))
	b.WriteString(" ")
	b.WriteString(style.Render(label))
	b.WriteString("\n\n")

	b.WriteString(renderRequirements(result.Requirements, policy, empty))

	if empty {
		return strings.TrimRight(b.String(), "\n")
	}

	if len(result.Feedback) > 0 {
		b.WriteString("\n")
		for _, f := range result.Feedback {
			b.WriteString("• ")
			b.WriteString(f)
			b.WriteString("\n")
		}
	}

	if len(result.Suggestions) > 0 {
		b.WriteString("\n")
		for i, s := range result.Suggestions {
			if i == maxSuggestions {
				break
			}
			b.WriteString(helpStyle.Render("tip: " + s))
			b.WriteString("\n")
		}
	}

	if result.MeetsRequirements {
		b.WriteString("\n")
		b.WriteString(passStyle.Render("✓ meets the password policy"))
	} else {
		b.WriteString("\n")
		b.WriteString(failStyle.Render("✗ does not meet the password policy"))
	}

	return strings.TrimRight(b.String(), "\n")
}

type requirementLine struct {
	text string
	ok   bool
}

// renderRequirements lists the checks the policy enforces. Character classes
// the policy does not require are left out.
func renderRequirements(req strength.Requirements, policy strength.Policy, empty bool) string {
	lines := []requirementLine{
		{fmt.Sprintf("at least %d characters", policy.MinLength), req.MinLength},
	}
	if policy.RequireUppercase {
		lines = append(lines, requirementLine{"an uppercase letter", req.HasUppercase})
	}
	if policy.RequireLowercase {
		lines = append(lines, requirementLine{"a lowercase letter", req.HasLowercase})
	}
	if policy.RequireNumbers {
		lines = append(lines, requirementLine{"a number", req.HasNumbers})
	}
	if policy.RequireSpecialChars {
		lines = append(lines, requirementLine{"a special character", req.HasSpecialChars})
	}
	lines = append(lines,
		requirementLine{"not a common password", req.NoCommonPatterns},
		requirementLine{"no personal information", req.NoPersonalInfo},
	)

	var b strings.Builder
	for _, l := range lines {
		switch {
		case empty:
			b.WriteString(helpStyle.Render("· " + l.text))
		case l.ok:
			b.WriteString(passStyle.Render("✓ " + l.text))
		default:
			b.WriteString(failStyle.Render("✗ " + l.text))
		}
		b.WriteString("\n")
	}
	return b.String()
}

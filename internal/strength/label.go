package strength

var labels = [...]string{"Very Weak", "Weak", "Fair", "Strong", "Very Strong"}

var colorTokens = [...]string{"red", "orange", "yellow", "green", "emerald"}

// Label returns the human-readable name of score, or "Unknown" when score is
// outside 0..4.
func Label(score int) string {
	if score < MinScore || score > MaxScore {
		return "Unknown"
	}
	return labels[score]
}

// ColorToken returns the presentation color token for score, or "gray" when
// score is outside 0..4.
func ColorToken(score int) string {
	if score < MinScore || score > MaxScore {
		return "gray"
	}
	return colorTokens[score]
}

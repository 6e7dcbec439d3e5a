package logs

import "strings"

const (
	Unauthorized = "The log indicates unauthorized access attempts."
	Errors       = "The log contains error messages that may indicate system issues."
	Success      = "The log indicates successful operations."
	Unknown      = "The log does not contain recognizable patterns. Further analysis may be required."
)

// rules are checked in order; the first keyword found wins.
var rules = []struct {
	keyword string
	verdict string
}{
	{"unauthorized", Unauthorized},
	{"error", Errors},
	{"success", Success},
}

// Classify returns the verdict for the first keyword present in text, case-insensitively.
func Classify(text string) string {
	lower := strings.ToLower(text)
	for _, r := range rules {
		if strings.Contains(lower, r.keyword) {
			return r.verdict
		}
	}
	return Unknown
}

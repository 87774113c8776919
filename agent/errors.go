package agent

import "strings"

// ErrorRule maps model errors to a user facing message. An error matches if
// its text contains any of the keywords, case insensitively.
type ErrorRule struct {
	Name     string
	Keywords []string
	Message  string
}

// Match reports whether detail matches the rule.
func (r ErrorRule) Match(detail string) bool {
	detail = strings.ToLower(detail)
	for _, k := range r.Keywords {
		if strings.Contains(detail, strings.ToLower(k)) {
			return true
		}
	}
	return false
}

// ErrorRules are tried in order, the first match wins.
//
// Gemini does not expose a stable error code for these categories, the
// matching is done on the error text.
var ErrorRules = []ErrorRule{
	{
		Name:     "credential",
		Keywords: []string{"api_key", "api key", "invalid"},
		Message:  "Error: the Google API key is not valid. Check your configuration.",
	},
	{
		Name:     "quota",
		Keywords: []string{"quota", "limit"},
		Message:  "Error: the API quota is exhausted. Please try again later.",
	},
	{
		Name:     "permission",
		Keywords: []string{"permission"},
		Message:  "Error: access to the Gemini API is denied. Check the API key settings.",
	},
	{
		Name:     "not found",
		Keywords: []string{"not_found", "not found"},
		Message:  "Error: the model was not found. Check the model name.",
	},
}

// ErrorMessage returns the user facing message for a model error.
func ErrorMessage(err error) string {
	detail := err.Error()
	for _, rule := range ErrorRules {
		if rule.Match(detail) {
			return rule.Message
		}
	}
	return "Error generating AI insight: " + detail
}

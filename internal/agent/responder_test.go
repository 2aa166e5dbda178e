package agent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackResponseCategories(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"I want to volunteer", "registration"},
		{"How do I join the directory?", "registration"},
		{"I need help", "here to help"},
		{"Tell me about scholarships", "scholarships"},
		{"Any medical camps nearby?", "medical camps"},
		{"I want to donate", "donation"},
		{"Salam", "How can I help you today?"},
	}
	for _, tt := range tests {
		got := FallbackResponse(tt.message)
		assert.Contains(t, strings.ToLower(got), strings.ToLower(tt.want), "message %q", tt.message)
	}
}

func TestFallbackResponseCaseInsensitive(t *testing.T) {
	lower := FallbackResponse("i want to VOLUNTEER")
	upper := FallbackResponse("I want to volunteer")
	assert.Equal(t, upper, lower)
}

func TestSuggestedActionsRegistration(t *testing.T) {
	actions := SuggestedActions("Would you like to register as a member?")
	assert.Contains(t, actions, "Start Registration")
	assert.Contains(t, actions, "Learn More About Membership")
}

func TestSuggestedActionsDefault(t *testing.T) {
	actions := SuggestedActions("The weather is nice today.")
	assert.Equal(t, []string{"Join Directory", "Contact Us", "Learn More"}, actions)
}

func TestSuggestedActionsCap(t *testing.T) {
	response := "You can register, contact us, apply for a scholarship, visit a medical camp, or donate."
	actions := SuggestedActions(response)
	assert.Len(t, actions, 3)
}

func TestSuggestedActionsFollowFallback(t *testing.T) {
	// Actions are derived from the response text, so each canned
	// category yields category-appropriate suggestions.
	reply := FallbackResponse("tell me about education programs")
	actions := SuggestedActions(reply)
	require.NotEmpty(t, actions)
	assert.Contains(t, actions, "View Educational Programs")
}

package agent

import (
	"log"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/config"
)

const openRouterURL = "https://openrouter.ai/api/v1/chat/completions"

const systemPrompt = `You are a helpful AI assistant for Arain Association Youth Wing Pakistan, an NGO focused on community welfare, education, and healthcare.

Your main responsibilities:
1. Help users with information about the organization
2. Guide users to fill out the Directory Registration form
3. Assist with Contact form submissions
4. Answer questions about our services: Education, Healthcare, Welfare Projects, Donations
5. Collect user information conversationally when they want to register

Key Information about Arain Association Youth Wing Pakistan:
- We provide educational scholarships and learning opportunities
- We organize free medical camps and healthcare services
- We run community welfare projects
- We accept donations to support our initiatives
- We have members, volunteers, and donors
- We focus on the Arain community but help everyone in need

When users want to register, collect this information conversationally:
- Full Name
- Father's Name
- CNIC (Pakistani ID format: 12345-1234567-1)
- Gender (male/female/other)
- Phone (Pakistani format: +92XXXXXXXXXX)
- Email
- Education/Qualification
- Profession
- City, District, Province
- Blood Group (optional)
- Caste/Baradari (Arain sub-caste)
- Marital Status
- Membership Type (member/volunteer/donor)

Always be helpful, respectful, and encouraging. Keep responses concise but informative.`

// Responder generates chat replies: remote completion service when
// configured, deterministic keyword fallback otherwise. Stateless per
// call.
type Responder struct {
	client *resty.Client
	apiKey string
	model  string
}

func NewResponder(cfg *config.Config) *Responder {
	client := resty.New().
		SetTimeout(30 * time.Second)

	return &Responder{
		client: client,
		apiKey: cfg.OpenRouterAPIKey,
		model:  cfg.AIModel,
	}
}

type completionRequest struct {
	Model       string              `json:"model"`
	Messages    []completionMessage `json:"messages"`
	Temperature float64             `json:"temperature"`
	MaxTokens   int                 `json:"max_tokens"`
}

type completionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionResponse struct {
	Choices []struct {
		Message completionMessage `json:"message"`
	} `json:"choices"`
}

// Reply delegates to the completion service; any remote failure falls
// back to the canned responses. No retry.
func (r *Responder) Reply(message string) string {
	if r.apiKey == "" {
		return FallbackResponse(message)
	}

	var result completionResponse
	resp, err := r.client.R().
		SetAuthToken(r.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(completionRequest{
			Model: r.model,
			Messages: []completionMessage{
				{Role: "system", Content: systemPrompt},
				{Role: "user", Content: message},
			},
			Temperature: 0.7,
			MaxTokens:   500,
		}).
		SetResult(&result).
		Post(openRouterURL)

	if err != nil {
		log.Printf("⚠️ completion service error: %v", err)
		return FallbackResponse(message)
	}
	if resp.StatusCode() != 200 || len(result.Choices) == 0 {
		log.Printf("⚠️ completion service status %d: %s", resp.StatusCode(), resp.String())
		return FallbackResponse(message)
	}

	return result.Choices[0].Message.Content
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// FallbackResponse picks a canned response by keyword category.
func FallbackResponse(message string) string {
	lower := strings.ToLower(message)

	switch {
	case containsAny(lower, "volunteer", "join", "register", "directory"):
		return `Thank you for your interest in joining Arain Association Youth Wing Pakistan!

To register as a member/volunteer, I'll need some information from you:

1. Your full name
2. Father's name
3. CNIC number
4. Contact details (phone & email)
5. Education and profession
6. Location (city, district, province)

Would you like to start the registration process? Please share your full name first.`

	case containsAny(lower, "contact", "help", "support"):
		return `I'm here to help! You can:

1. Register as a member/volunteer/donor
2. Get information about our services
3. Submit a contact message
4. Learn about our welfare projects

What would you like to know more about?`

	case containsAny(lower, "education", "scholarship", "study"):
		return `Arain Association Youth Wing Pakistan provides:

📚 Educational scholarships for deserving students
📖 Learning centers and educational resources
🎓 Career guidance and mentorship
📝 Educational workshops and training

Would you like to know more about our educational programs or apply for support?`

	case containsAny(lower, "health", "medical", "healthcare"):
		return `Our healthcare services include:

🏥 Free medical camps in underserved areas
💊 Basic healthcare services
🩺 Health awareness programs
🚑 Emergency medical assistance

We organize regular medical camps. Would you like information about upcoming camps?`

	case containsAny(lower, "donate", "donation", "contribute"):
		return `Thank you for considering a donation to support our cause!

Your contributions help us:
✅ Provide educational scholarships
✅ Organize medical camps
✅ Run community welfare projects
✅ Support families in need

Would you like to know more about donation methods or submit a contact form?`

	default:
		return `Hello! I'm here to help you with Arain Association Youth Wing Pakistan.

I can assist you with:
🔹 Joining as a member/volunteer/donor
🔹 Information about our services
🔹 Educational programs and scholarships
🔹 Healthcare services and medical camps
🔹 Donation and contribution options

How can I help you today?`
	}
}

var defaultActions = []string{"Join Directory", "Contact Us", "Learn More"}

// SuggestedActions derives up to three follow-up actions by keyword
// matching the response text.
func SuggestedActions(response string) []string {
	lower := strings.ToLower(response)

	var actions []string
	if containsAny(lower, "register", "join") {
		actions = append(actions, "Start Registration", "Learn More About Membership")
	}
	if strings.Contains(lower, "contact") {
		actions = append(actions, "Submit Contact Form")
	}
	if containsAny(lower, "education", "scholarship") {
		actions = append(actions, "View Educational Programs")
	}
	if containsAny(lower, "medical", "health") {
		actions = append(actions, "Find Medical Camps")
	}
	if strings.Contains(lower, "donate") {
		actions = append(actions, "Make a Donation")
	}

	if len(actions) == 0 {
		return defaultActions
	}
	if len(actions) > 3 {
		actions = actions[:3]
	}
	return actions
}

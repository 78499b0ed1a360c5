package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/ecosort/ecosort/internal/model"
)

const (
	maxAnswerTokens     = 500
	maxFallbackDescLen  = 200
	completionsEndpoint = "/v1/chat/completions"
)

const promptInstructions = `Analyze this waste item image and provide:
1. Waste type (organic, plastic, glass, paper, electronic, metal, or other)
2. Brief description of the item
3. Recycling tips and proper disposal method
4. Environmental impact if not disposed properly
5. Creative reuse ideas if applicable

Please respond in JSON format with fields: wasteType, description, recyclingTips, environmentalImpact, reuseIdeas`

// OpenAIClassifier calls an OpenAI-compatible chat-completions API with a
// multimodal prompt. All failure modes degrade to fixed payloads.
type OpenAIClassifier struct {
	client *resty.Client
	model  string
	log    zerolog.Logger
}

// NewOpenAI builds a classifier for the given endpoint. baseURL is the API
// root (e.g. https://api.openai.com); model names the vision-capable model.
func NewOpenAI(baseURL, apiKey, modelName string, log zerolog.Logger) *OpenAIClassifier {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(60 * time.Second)
	if apiKey != "" {
		c.SetAuthToken(apiKey)
	}
	return &OpenAIClassifier{client: c, model: modelName, log: log}
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageRef `json:"image_url,omitempty"`
}

type imageRef struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Classify sends one multimodal request and parses the answer. A structured
// JSON answer wins; unstructured text falls back to a keyword scan; a failed
// call falls back to the fixed default payload.
func (c *OpenAIClassifier) Classify(ctx context.Context, imageURL, userDescription string) *Result {
	prompt := promptInstructions
	if userDescription != "" {
		prompt += "\n\nUser description: " + userDescription
	}

	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{{
			Role: "user",
			Content: []contentPart{
				{Type: "text", Text: prompt},
				{Type: "image_url", ImageURL: &imageRef{URL: imageURL}},
			},
		}},
		MaxTokens: maxAnswerTokens,
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(&reqBody).
		Post(completionsEndpoint)
	if err != nil {
		c.log.Warn().Err(err).Msg("classification call failed, using fallback payload")
		return DefaultResult()
	}
	if resp.StatusCode() != http.StatusOK {
		c.log.Warn().Int("status", resp.StatusCode()).Msg("classification call failed, using fallback payload")
		return DefaultResult()
	}

	var out chatResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil || len(out.Choices) == 0 {
		c.log.Warn().Err(err).Msg("malformed completion response, using fallback payload")
		return DefaultResult()
	}
	content := out.Choices[0].Message.Content
	if content == "" {
		return DefaultResult()
	}
	return ParseAnswer(content)
}

// HealthPing reports whether the completion endpoint is reachable.
func (c *OpenAIClassifier) HealthPing(ctx context.Context) error {
	resp, err := c.client.R().SetContext(ctx).Get("/v1/models")
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("model endpoint status %d", resp.StatusCode())
	}
	return nil
}

// ParseAnswer resolves a raw model answer into a tagged result: structured
// JSON first, keyword heuristic second.
func ParseAnswer(content string) *Result {
	var parsed model.Classification
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &parsed); err == nil && parsed.WasteType != "" {
		return &Result{Classification: parsed, Source: SourceModel}
	}

	lower := strings.ToLower(content)
	detected := model.WasteOther
	for _, wt := range model.KnownWasteTypes {
		if strings.Contains(lower, string(wt)) {
			detected = wt
			break
		}
	}
	desc := truncateRunes(content, maxFallbackDescLen)
	return &Result{
		Source: SourceHeuristic,
		Classification: model.Classification{
			WasteType:           detected,
			Description:         desc,
			RecyclingTips:       "Please check local recycling guidelines for proper disposal.",
			EnvironmentalImpact: "Improper disposal can harm the environment.",
			ReuseIdeas:          "Consider creative ways to reuse this item before disposal.",
		},
	}
}

// truncateRunes caps s at n characters without splitting a multi-byte rune.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// stripCodeFence unwraps ```json fenced answers; models often fence JSON even
// when asked not to.
func stripCodeFence(s string) string {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	t = strings.TrimPrefix(t, "```json")
	t = strings.TrimPrefix(t, "```")
	t = strings.TrimSuffix(strings.TrimSpace(t), "```")
	return strings.TrimSpace(t)
}

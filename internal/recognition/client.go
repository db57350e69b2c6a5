package recognition

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"uqifeed/internal/models"
)

type Client struct {
	apiKey     string
	httpClient *http.Client
}

type ContentItem struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

type ImageURL struct {
	URL string `json:"url"`
}

type ChatMessage struct {
	Role    string        `json:"role"`
	Content []ContentItem `json:"content"`
}

type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// RecognizedIngredient is one ingredient extracted from a free-text dish
// description. Nutrients are per 100 units of the stated unit, matching
// the Ingredient model, so a recognized ingredient converts directly into
// a stored one.
type RecognizedIngredient struct {
	Name      string                `json:"name"`
	Quantity  float64               `json:"quantity"`
	Unit      string                `json:"unit"`
	Nutrients models.NutrientVector `json:"nutrients"`
}

type dishRecognitionResponse struct {
	DishName    string                 `json:"dish_name"`
	Ingredients []RecognizedIngredient `json:"ingredients"`
}

// adviceCategoryHints drives the advice-text prompt: each category the
// comparison engine can emit maps to the plain-language topic the model
// should cover for it.
var adviceCategoryHints = map[models.AdviceCategory]string{
	models.AdviceReduceCalories:   "overall energy intake is above the daily target",
	models.AdviceIncreaseCalories: "overall energy intake is below the daily target",
	models.AdviceIncreaseProtein:  "protein intake is below the daily target",
	models.AdviceReduceProtein:    "protein intake is above the daily target",
	models.AdviceIncreaseCarbs:    "carbohydrate intake is below the daily target",
	models.AdviceReduceCarbs:      "carbohydrate intake is above the daily target",
	models.AdviceIncreaseFat:      "fat intake is below the daily target",
	models.AdviceReduceFat:        "fat intake is above the daily target",
	models.AdviceIncreaseFiber:    "fiber intake is below the daily target",
	models.AdviceReduceSugar:      "sugar intake is above the recommended limit",
	models.AdviceReduceSodium:     "sodium intake is above the recommended limit",
	models.AdviceBalancedGoodJob:  "intake is well balanced against all targets",
}

func NewClient() (*Client, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
	}

	return &Client{
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}, nil
}

// RecognizeDish turns a free-text dish description into a structured
// ingredient list with estimated per-100-unit nutrient vectors. The result
// is an estimate for the user to confirm or edit, never a silently stored
// fact.
func (c *Client) RecognizeDish(ctx context.Context, description string) (string, []RecognizedIngredient, TokenUsage, error) {
	return c.recognize(ctx, description, "")
}

// RecognizeDishImage recognizes a photographed meal. imageURL may be an
// https URL or a base64 data URL; the optional description gives the model
// extra context ("half eaten", "shared between two").
func (c *Client) RecognizeDishImage(ctx context.Context, imageURL, description string) (string, []RecognizedIngredient, TokenUsage, error) {
	if imageURL == "" {
		return "", nil, TokenUsage{}, fmt.Errorf("image URL is required")
	}
	return c.recognize(ctx, description, imageURL)
}

func (c *Client) recognize(ctx context.Context, description, imageURL string) (string, []RecognizedIngredient, TokenUsage, error) {
	systemPrompt := fmt.Sprintf(`### General Request:
Your job is to decompose a dish description into its ingredients with estimated nutrition values for a food tracking app.

### How to Act:
- Act as a **nutrition analyst**.
- Estimate realistic portion sizes when the description does not state them.
- Prefer gram ("g") and milliliter ("ml") units.

### Output Format:
The output must be a JSON object with the following structure:
- 'dish_name': A short display name for the dish.
- 'ingredients': An array of objects. Each object must include:
    - 'name': The ingredient name in lowercase.
    - 'quantity': The estimated amount consumed, as a number.
    - 'unit': The unit of the quantity ("g", "ml" or "piece").
    - 'nutrients': Nutrition values PER 100 of the stated unit, as a JSON object keyed by nutrient. Always include "%s", "%s", "%s", "%s" and "%s"; add "%s" and "%s" when relevant.
Do not enclose the JSON in markdown code. Only return the JSON object.

### Example:
Input: "two scrambled eggs with a slice of toast"
Output: {"dish_name": "Scrambled eggs with toast", "ingredients": [{"name": "egg", "quantity": 100, "unit": "g", "nutrients": {"calories": 155, "protein_g": 13, "carbs_g": 1.1, "fat_g": 11, "fiber_g": 0}}, {"name": "white bread", "quantity": 30, "unit": "g", "nutrients": {"calories": 265, "protein_g": 9, "carbs_g": 49, "fat_g": 3.2, "fiber_g": 2.7}}]}
`,
		models.NutrientCalories, models.NutrientProtein, models.NutrientCarbs,
		models.NutrientFat, models.NutrientFiber,
		models.NutrientSugar, models.NutrientSodium)

	userContent := []ContentItem{}
	if description != "" {
		userContent = append(userContent, ContentItem{Type: "text", Text: description})
	}
	if imageURL != "" {
		userContent = append(userContent, ContentItem{Type: "image_url", ImageURL: &ImageURL{URL: imageURL}})
	}
	if len(userContent) == 0 {
		return "", nil, TokenUsage{}, fmt.Errorf("a description or image is required")
	}

	content, usage, err := c.complete(ctx, systemPrompt, userContent, 2000)
	if err != nil {
		return "", nil, usage, err
	}

	var parsed dishRecognitionResponse
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &parsed); err != nil {
		return "", nil, usage, fmt.Errorf("failed to parse JSON response: %v", err)
	}
	if len(parsed.Ingredients) == 0 {
		return "", nil, usage, fmt.Errorf("no ingredients recognized. Raw content: %s", content)
	}

	return parsed.DishName, parsed.Ingredients, usage, nil
}

// GenerateAdviceText expands the comparison engine's advice categories into
// a short motivational paragraph. The categories themselves are the source
// of truth; the text only rephrases them.
func (c *Client) GenerateAdviceText(ctx context.Context, categories []models.AdviceCategory) (string, TokenUsage, error) {
	if len(categories) == 0 {
		return "", TokenUsage{}, fmt.Errorf("no advice categories provided")
	}

	var topics strings.Builder
	for _, category := range categories {
		hint, ok := adviceCategoryHints[category]
		if !ok {
			hint = strings.ToLower(strings.ReplaceAll(string(category), "_", " "))
		}
		topics.WriteString(fmt.Sprintf("- %s: %s\n", category, hint))
	}

	systemPrompt := `### General Request:
Your job is to write a short piece of nutrition feedback for the mobile app based on precomputed findings.

### How to Act:
- Act as a **supportive nutrition coach**.
- Address the user as "you".
- Use simple, everyday language; no medical jargon.
- Never contradict the findings and never invent new ones.
- Keep the whole text under 80 words.

### Output Format:
Return plain text only. No JSON, no markdown.`

	userPrompt := fmt.Sprintf(`Today's findings for the user:

%s
Write the feedback paragraph.`, topics.String())

	content, usage, err := c.complete(ctx, systemPrompt, []ContentItem{{Type: "text", Text: userPrompt}}, 400)
	if err != nil {
		return "", usage, err
	}

	text := strings.TrimSpace(stripCodeFence(content))
	if text == "" {
		return "", usage, fmt.Errorf("empty advice text returned")
	}
	return text, usage, nil
}

func (c *Client) complete(ctx context.Context, systemPrompt string, userContent []ContentItem, maxTokens int) (string, TokenUsage, error) {
	messages := []ChatMessage{
		{
			Role: "system",
			Content: []ContentItem{
				{
					Type: "text",
					Text: systemPrompt,
				},
			},
		},
		{
			Role:    "user",
			Content: userContent,
		},
	}

	req := ChatCompletionRequest{
		Model:       "gpt-4o",
		Messages:    messages,
		Temperature: 0.2,
		MaxTokens:   maxTokens,
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", TokenUsage{}, fmt.Errorf("failed to marshal request: %v", err)
	}

	request, err := http.NewRequestWithContext(ctx, "POST", "https://api.openai.com/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", TokenUsage{}, fmt.Errorf("failed to create request: %v", err)
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	response, err := c.httpClient.Do(request)
	if err != nil {
		return "", TokenUsage{}, fmt.Errorf("failed to send request: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		var errorResponse struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.NewDecoder(response.Body).Decode(&errorResponse); err != nil {
			return "", TokenUsage{}, fmt.Errorf("OpenAI API returned non-200 status code: %d", response.StatusCode)
		}
		return "", TokenUsage{}, fmt.Errorf("OpenAI API error: %s", errorResponse.Error.Message)
	}

	var result ChatCompletionResponse
	if err := json.NewDecoder(response.Body).Decode(&result); err != nil {
		return "", TokenUsage{}, fmt.Errorf("failed to decode response: %v", err)
	}

	if len(result.Choices) == 0 {
		return "", TokenUsage{}, fmt.Errorf("no completion choices returned")
	}

	usage := TokenUsage{
		PromptTokens:     result.Usage.PromptTokens,
		CompletionTokens: result.Usage.CompletionTokens,
		TotalTokens:      result.Usage.TotalTokens,
	}
	return result.Choices[0].Message.Content, usage, nil
}

// stripCodeFence removes a surrounding markdown code fence when the model
// ignores the plain-output instruction.
func stripCodeFence(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

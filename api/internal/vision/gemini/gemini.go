package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"calc-be/api/internal/vision"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type Engine struct {
	APIKey string
	Model  string
}

func New(apiKey, model string) *Engine {
	return &Engine{
		APIKey: strings.TrimSpace(apiKey),
		Model:  strings.TrimSpace(model),
	}
}

func (e *Engine) Name() string     { return "gemini" }
func (e *Engine) GetModel() string { return e.Model }

// Generate отправляет промпт и картинку, возвращает ответ как vision.Response.
func (e *Engine) Generate(ctx context.Context, prompt string, image []byte, mime string) (vision.Response, error) {
	if e.APIKey == "" {
		return vision.Response{}, errors.New("GEMINI_API_KEY is empty")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return vision.Response{}, err
	}
	defer cl.Close()

	m := cl.GenerativeModel(e.Model)
	if m == nil {
		return vision.Response{}, fmt.Errorf("gemini: model is nil")
	}
	// Детерминированный вывод. MIME ответа не фиксируем: модель просят
	// вернуть literal-синтаксис, а заборы/мусор снимает пайплайн answer.
	m.GenerationConfig = genai.GenerationConfig{
		Temperature: ptrFloat32(0),
	}

	parts := []genai.Part{
		genai.Text(prompt),
		&genai.Blob{MIMEType: mime, Data: image},
	}

	resp, err := m.GenerateContent(ctx, parts...)
	if err != nil {
		return vision.Response{}, fmt.Errorf("gemini generate: %w", err)
	}
	return toResponse(resp), nil
}

// toResponse переносит SDK-ответ в нейтральный конверт; у genai-go
// содержимое живёт только в candidates → content → parts.
func toResponse(resp *genai.GenerateContentResponse) vision.Response {
	var out vision.Response
	if resp == nil {
		return out
	}
	for _, c := range resp.Candidates {
		if c == nil || c.Content == nil {
			out.Candidates = append(out.Candidates, vision.Candidate{})
			continue
		}
		content := &vision.Content{}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				content.Parts = append(content.Parts, vision.Part{Text: string(t)})
			}
		}
		out.Candidates = append(out.Candidates, vision.Candidate{Content: content})
	}
	return out
}

func ptrFloat32(v float32) *float32 { return &v }

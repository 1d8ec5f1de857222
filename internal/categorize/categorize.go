// Package categorize infers a category label for free-text submissions when
// the caller did not pick one. Classification is best-effort enrichment: the
// intake pipeline treats any error here as "no category produced".
package categorize

import (
	"context"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/pkg/errors"
)

// systemPrompt mirrors the label set shown to users on the site. The model is
// instructed to answer with the bare label only.
const systemPrompt = "Classifique a entrada do usuário em exatamente uma destas categorias: " +
	"Saúde, Pessoal, Abstrato, Lazer, Segurança, Mobilidade, Serviços, Educação, Infraestrutura, Outros. " +
	"Retorne apenas o nome da categoria."

const (
	model          = openai.ChatModelGPT4oMini
	requestTimeout = 10 * time.Second
)

// Categorizer classifies submission text into a label. Implementations return
// an empty string with a nil error when classification is intentionally
// skipped.
type Categorizer interface {
	Categorize(ctx context.Context, text string) (string, error)
}

// Disabled is the no-credential variant: it never produces a label and never
// errs. Selected once at startup when no API key is configured.
type Disabled struct{}

func (Disabled) Categorize(ctx context.Context, text string) (string, error) {
	return "", nil
}

// OpenAI delegates classification to the chat-completions API.
type OpenAI struct {
	client *openai.Client
}

// NewOpenAI builds the enabled variant from an API key.
func NewOpenAI(apiKey string) *OpenAI {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAI{client: &client}
}

// Categorize asks the model for a single label. The call is bounded by its
// own timeout so a slow upstream cannot hold a request open indefinitely.
func (o *OpenAI) Categorize(ctx context.Context, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(text),
		},
		Model:     model,
		MaxTokens: openai.Int(10),
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no content choices returned")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

package langfuse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// promptFetchTimeout bounds a single prompt API call.
const promptFetchTimeout = 5 * time.Second

var (
	errPromptRemoteDisabled = errors.New("langfuse prompt management disabled")
	errEmptyPrompt          = errors.New("langfuse returned an empty prompt")
)

// CoachPromptConfig locates the mood coach system prompt. The prompt is managed
// in Langfuse under Name/Label and mirrored to CachePath, so the coach keeps its
// last known instructions when Langfuse is unreachable at startup.
type CoachPromptConfig struct {
	BaseURL   string
	PublicKey string
	SecretKey string

	Name      string
	Label     string
	CachePath string

	Logger *zap.Logger
}

func (c CoachPromptConfig) remoteEnabled() bool {
	return c.Name != "" && c.BaseURL != "" && c.PublicKey != "" && c.SecretKey != ""
}

// LoadCoachPrompt returns the coach prompt from Langfuse, refreshing the local
// cache, or the cached copy when the remote prompt cannot be used.
func LoadCoachPrompt(ctx context.Context, cfg CoachPromptConfig) (string, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("langfuse").With(zap.String("prompt", cfg.Name), zap.String("label", cfg.Label))

	prompt, err := fetchCoachPrompt(ctx, cfg)
	switch {
	case err == nil:
		if cacheErr := cacheCoachPrompt(cfg.CachePath, prompt); cacheErr != nil {
			log.Warn("coach prompt not cached", zap.String("path", cfg.CachePath), zap.Error(cacheErr))
		}
		return prompt, nil
	case !errors.Is(err, errPromptRemoteDisabled):
		log.Warn("coach prompt fetch failed, reading cached copy", zap.Error(err))
	}

	return readCachedCoachPrompt(cfg.CachePath)
}

func fetchCoachPrompt(ctx context.Context, cfg CoachPromptConfig) (string, error) {
	if !cfg.remoteEnabled() {
		return "", errPromptRemoteDisabled
	}

	endpoint, err := promptURL(cfg)
	if err != nil {
		return "", err
	}

	reqCtx, cancel := context.WithTimeout(ctx, promptFetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build prompt request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(cfg.PublicKey, cfg.SecretKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("get prompt %s: %w", cfg.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("get prompt %s: status %d: %s", cfg.Name, resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var body promptBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode prompt %s: %w", cfg.Name, err)
	}

	text, err := body.text()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", errEmptyPrompt
	}
	return text, nil
}

// promptURL builds {BaseURL}/api/public/v2/prompts/{Name}?label={Label}.
func promptURL(cfg CoachPromptConfig) (string, error) {
	u, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid LANGFUSE_BASE_URL: %w", err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/api/public/v2/prompts/" + url.PathEscape(cfg.Name)
	if cfg.Label != "" {
		q := u.Query()
		q.Set("label", cfg.Label)
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// promptBody is the prompt API payload: text prompts carry a string, chat
// prompts a list of messages.
type promptBody struct {
	Type   string          `json:"type"`
	Prompt json.RawMessage `json:"prompt"`
}

func (b promptBody) text() (string, error) {
	switch b.Type {
	case "", "text":
		var s string
		if err := json.Unmarshal(b.Prompt, &s); err != nil {
			return "", fmt.Errorf("parse text prompt: %w", err)
		}
		return s, nil
	case "chat":
		var messages []chatMessage
		if err := json.Unmarshal(b.Prompt, &messages); err != nil {
			return "", fmt.Errorf("parse chat prompt: %w", err)
		}
		return joinChatMessages(messages), nil
	default:
		return "", fmt.Errorf("unsupported prompt type %q", b.Type)
	}
}

type chatMessage struct {
	Type    string `json:"type"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Name    string `json:"name"`
}

// joinChatMessages renders a chat prompt as one system prompt, one
// "ROLE: content" block per message. Placeholders stay as {{name}}.
func joinChatMessages(messages []chatMessage) string {
	blocks := make([]string, 0, len(messages))
	for _, m := range messages {
		content := m.Content
		if m.Type == "placeholder" {
			content = ""
			if m.Name != "" {
				content = "{{" + m.Name + "}}"
			}
		}
		if content == "" {
			continue
		}

		role := strings.ToUpper(m.Role)
		if role == "" {
			role = "MESSAGE"
		}
		blocks = append(blocks, role+": "+content)
	}
	return strings.Join(blocks, "\n\n")
}

func readCachedCoachPrompt(path string) (string, error) {
	if path == "" {
		return "", errors.New("no local prompt file configured")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read cached coach prompt: %w", err)
	}
	return string(data), nil
}

func cacheCoachPrompt(path, prompt string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(prompt), 0o600)
}

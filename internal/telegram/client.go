package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL - адрес продакшен-окружения Bot API
const DefaultBaseURL = "https://api.telegram.org"

// ErrRequestFailed возвращается при отказе Bot API
var ErrRequestFailed = errors.New("telegram request failed")

// Client - минимальный клиент Telegram Bot API поверх net/http.
// Покрывает только методы, нужные боту: getMe, getUpdates и семейство send*
type Client struct {
	http    *http.Client
	baseURL string
	token   string
}

// NewClient создает клиент Bot API с заданным таймаутом запросов
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
	}
}

type apiEnvelope struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result,omitempty"`
	ErrorCode   int             `json:"error_code,omitempty"`
	Description string          `json:"description,omitempty"`
}

// GetMe проверяет токен и возвращает профиль бота
func (c *Client) GetMe(ctx context.Context) (*User, error) {
	raw, err := c.call(ctx, "getMe", nil)
	if err != nil {
		return nil, err
	}
	var me User
	if err := json.Unmarshal(raw, &me); err != nil {
		return nil, fmt.Errorf("decode getMe result: %w", err)
	}
	return &me, nil
}

type getUpdatesRequest struct {
	Offset         int64    `json:"offset,omitempty"`
	Timeout        int      `json:"timeout"`
	AllowedUpdates []string `json:"allowed_updates,omitempty"`
}

// GetUpdates выполняет long-poll и возвращает порцию обновлений вместе
// со следующим значением offset. Клиентский дедлайн чуть шире серверного,
// чтобы штатный пустой ответ не превращался в ошибку таймаута
func (c *Client) GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]Update, int64, error) {
	secs := int(timeout.Seconds())
	if secs < 1 {
		secs = 1
	}

	reqCtx, cancel := context.WithTimeout(ctx, timeout+5*time.Second)
	defer cancel()

	raw, err := c.callWith(reqCtx, "getUpdates", getUpdatesRequest{
		Offset:         offset,
		Timeout:        secs,
		AllowedUpdates: []string{"message"},
	}, timeout+5*time.Second)
	if err != nil {
		return nil, offset, err
	}

	var updates []Update
	if err := json.Unmarshal(raw, &updates); err != nil {
		return nil, offset, fmt.Errorf("decode getUpdates result: %w", err)
	}

	next := offset
	for _, u := range updates {
		if u.UpdateID >= next {
			next = u.UpdateID + 1
		}
	}
	return updates, next, nil
}

type sendMessageRequest struct {
	ChatID                int64  `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode,omitempty"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview,omitempty"`
}

// SendMessage отправляет текстовое сообщение в чат
func (c *Client) SendMessage(ctx context.Context, chatID int64, text, parseMode string) error {
	_, err := c.call(ctx, "sendMessage", sendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: parseMode,
	})
	return err
}

type sendPhotoRequest struct {
	ChatID    int64  `json:"chat_id"`
	Photo     string `json:"photo"`
	Caption   string `json:"caption,omitempty"`
	ParseMode string `json:"parse_mode,omitempty"`
}

// SendPhoto пересылает фото по file_id с подписью
func (c *Client) SendPhoto(ctx context.Context, chatID int64, fileID, caption, parseMode string) error {
	_, err := c.call(ctx, "sendPhoto", sendPhotoRequest{
		ChatID:    chatID,
		Photo:     fileID,
		Caption:   caption,
		ParseMode: parseMode,
	})
	return err
}

type sendVideoRequest struct {
	ChatID    int64  `json:"chat_id"`
	Video     string `json:"video"`
	Caption   string `json:"caption,omitempty"`
	ParseMode string `json:"parse_mode,omitempty"`
}

// SendVideo пересылает видео по file_id с подписью
func (c *Client) SendVideo(ctx context.Context, chatID int64, fileID, caption, parseMode string) error {
	_, err := c.call(ctx, "sendVideo", sendVideoRequest{
		ChatID:    chatID,
		Video:     fileID,
		Caption:   caption,
		ParseMode: parseMode,
	})
	return err
}

type sendDocumentRequest struct {
	ChatID    int64  `json:"chat_id"`
	Document  string `json:"document"`
	Caption   string `json:"caption,omitempty"`
	ParseMode string `json:"parse_mode,omitempty"`
}

// SendDocument пересылает документ по file_id с подписью
func (c *Client) SendDocument(ctx context.Context, chatID int64, fileID, caption, parseMode string) error {
	_, err := c.call(ctx, "sendDocument", sendDocumentRequest{
		ChatID:    chatID,
		Document:  fileID,
		Caption:   caption,
		ParseMode: parseMode,
	})
	return err
}

func (c *Client) call(ctx context.Context, method string, body any) (json.RawMessage, error) {
	return c.callWith(ctx, method, body, 0)
}

func (c *Client) callWith(ctx context.Context, method string, body any, timeout time.Duration) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s request: %w", method, err)
		}
		reader = bytes.NewReader(b)
	}

	endpoint := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", method, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	httpClient := c.http
	if timeout > 0 && timeout > httpClient.Timeout {
		// Long-poll живет дольше обычного таймаута клиента
		clone := *httpClient
		clone.Timeout = timeout
		httpClient = &clone
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", method, err)
	}

	var out apiEnvelope
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", method, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !out.OK {
		desc := strings.TrimSpace(out.Description)
		if desc == "" {
			desc = strings.TrimSpace(string(raw))
		}
		return nil, fmt.Errorf("%s http %d (%s): %w", method, resp.StatusCode, desc, ErrRequestFailed)
	}
	return out.Result, nil
}

// IsPollTimeout отличает штатное истечение long-poll от настоящей ошибки
func IsPollTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

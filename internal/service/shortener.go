package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/avc-dev/terabis-bot/internal/model"
)

// statusSuccess - единственное значение status, означающее успех обмена
const statusSuccess = "success"

// shortenResponse - типизированный контракт ответа внешнего сервиса
// Любое расхождение формы ответа трактуется как ErrShorten
type shortenResponse struct {
	Status       string `json:"status"`
	ShortenedURL string `json:"shortenedUrl"`
}

// ShortenerClient обменивает каноническую ссылку на сокращенную
// через внешний HTTP-сервис с ключом пользователя. Повторов нет:
// единственная неудачная попытка сразу отдается вызывающему
type ShortenerClient struct {
	httpClient    *http.Client
	endpoint      string
	validationURL string
	logger        *zap.Logger
}

// NewShortenerClient создает клиент с ограниченными таймаутами
func NewShortenerClient(endpoint, validationURL string, timeout time.Duration, logger *zap.Logger) *ShortenerClient {
	return &ShortenerClient{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   timeout,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   timeout,
				ResponseHeaderTimeout: timeout,
				MaxIdleConns:          100,
				MaxIdleConnsPerHost:   10,
				IdleConnTimeout:       90 * time.Second,
			},
		},
		endpoint:      endpoint,
		validationURL: validationURL,
		logger:        logger,
	}
}

// Shorten выполняет GET <endpoint>?api=<key>&url=<canonical> и возвращает
// сокращенную ссылку. Транспортная ошибка, таймаут, не-JSON тело и
// status != "success" неразличимы для вызывающего - все это ErrShorten
func (s *ShortenerClient) Shorten(ctx context.Context, apiKey model.APIKey, canonicalURL string) (string, error) {
	resp, err := s.call(ctx, apiKey, canonicalURL)
	if err != nil {
		return "", err
	}

	if resp.Status != statusSuccess || resp.ShortenedURL == "" {
		s.logger.Debug("shortener rejected URL",
			zap.String("status", resp.Status),
			zap.String("url", canonicalURL),
		)
		return "", fmt.Errorf("status %q: %w", resp.Status, ErrShorten)
	}

	return resp.ShortenedURL, nil
}

// ValidateKey проверяет пригодность ключа обменом фиксированной тестовой
// ссылки. Используется только при connect, состояние не сохраняет
func (s *ShortenerClient) ValidateKey(ctx context.Context, apiKey model.APIKey) bool {
	resp, err := s.call(ctx, apiKey, s.validationURL)
	if err != nil {
		return false
	}

	return resp.Status == statusSuccess
}

func (s *ShortenerClient) call(ctx context.Context, apiKey model.APIKey, targetURL string) (*shortenResponse, error) {
	query := url.Values{}
	query.Set("api", string(apiKey))
	query.Set("url", targetURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %v: %w", err, ErrShorten)
	}

	httpResp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Debug("shortener request failed", zap.Error(err))
		return nil, fmt.Errorf("transport: %w", ErrShorten)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http %d: %w", httpResp.StatusCode, ErrShorten)
	}

	var resp shortenResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		s.logger.Debug("shortener returned malformed body", zap.Error(err))
		return nil, fmt.Errorf("malformed response: %w", ErrShorten)
	}

	return &resp, nil
}

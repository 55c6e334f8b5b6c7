package whatsapp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

const (
	channelPrefix = "whatsapp:"
	messagesPath  = "/2010-04-01/Accounts/%s/Messages.json"
)

// Config параметры подключения к Twilio
type Config struct {
	AccountSID     string
	AuthToken      string
	From           string // номер отправителя, префикс whatsapp: добавляется при необходимости
	BaseURL        string
	Timeout        time.Duration
	RatePerSecond  float64 // 0 - без ограничения
	DefaultCountry string  // код страны для номеров без "+"
}

// Configured возвращает true, если заданы учетные данные
func (c Config) Configured() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.From != ""
}

// Client клиент отправки сообщений WhatsApp через Twilio REST API
// Без учетных данных сообщения не отправляются, а только пишутся в лог
type Client struct {
	cfg        Config
	httpClient *http.Client
	limiter    *rate.Limiter
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(cfg Config, log Logger) *Client {
	var limiter *rate.Limiter
	if cfg.RatePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), 1)
	}

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		limiter: limiter,
		log:     log,
	}
}

// Send отправляет текст на номер клиента
func (c *Client) Send(ctx context.Context, phone, body string) error {
	to, err := c.recipient(phone)
	if err != nil {
		return err
	}

	if !c.cfg.Configured() {
		c.log.Warn("WhatsApp not configured, simulated message to=%s: %s", to, body)
		return nil
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%w: rate limiter: %v", ErrInternal, err)
		}
	}

	form := url.Values{}
	form.Set("From", withChannel(c.cfg.From))
	form.Set("To", withChannel(to))
	form.Set("Body", body)

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + fmt.Sprintf(messagesPath, url.PathEscape(c.cfg.AccountSID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.SetBasicAuth(c.cfg.AccountSID, c.cfg.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusBadRequest, http.StatusNotFound:
		var apiErr ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil {
			return fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
		}
		return fmt.Errorf("%w: code %d: %s", ErrRejected, apiErr.Code, apiErr.Message)
	default:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	// Парсим ответ
	var message MessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&message); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("WhatsApp message queued sid=%s status=%s", message.SID, message.Status)
	return nil
}

// recipient приводит номер к виду +<код страны><номер>
func (c *Client) recipient(phone string) (string, error) {
	var b strings.Builder
	for i, r := range strings.TrimSpace(phone) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')':
		default:
			return "", fmt.Errorf("%w: %q", ErrInvalidPhone, phone)
		}
	}

	number := b.String()
	if number == "" || number == "+" {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhone, phone)
	}
	if !strings.HasPrefix(number, "+") {
		number = "+" + c.cfg.DefaultCountry + strings.TrimLeft(number, "0")
	}
	return number, nil
}

func withChannel(number string) string {
	if strings.HasPrefix(number, channelPrefix) {
		return number
	}
	return channelPrefix + number
}

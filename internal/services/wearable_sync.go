package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/terraincognita07/fitsense/internal/models"
	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"
)

const (
	DefaultWearableSyncInterval   = 6 * time.Hour
	DefaultWearableRequestTimeout = 20 * time.Second
	DefaultWearableLookbackDays   = 3
	maxWearablePayloadBytes       = 1 << 20
)

var errWearableUnauthorized = errors.New("wearable provider rejected the access token")

type WearableSyncConfig struct {
	ClientID       string
	ClientSecret   string
	TokenURL       string
	AggregateURL   string
	Interval       time.Duration
	RequestTimeout time.Duration
	LookbackDays   int
}

type WearableTokenStore interface {
	ListAll(ctx context.Context) ([]models.WearableToken, error)
	UpdateCredentials(ctx context.Context, userID uint, accessToken string, refreshToken string, expiresAt *time.Time) error
	MarkSynced(ctx context.Context, userID uint, syncedAt time.Time) error
}

type WearableSummaryStore interface {
	ExistsForDay(ctx context.Context, userID uint, day time.Time) (bool, error)
	Upsert(ctx context.Context, summary *models.WearableDailySummary) error
}

// WearableSyncService pulls aggregated daily summaries from the provider for
// every connected user. Only the aggregate endpoint is ever called.
type WearableSyncService struct {
	config    WearableSyncConfig
	tokens    WearableTokenStore
	summaries WearableSummaryStore
	client    *http.Client
	location  *time.Location
	logger    *slog.Logger
	now       func() time.Time
}

func NewWearableSyncService(config WearableSyncConfig, tokens WearableTokenStore, summaries WearableSummaryStore, location *time.Location, logger *slog.Logger) *WearableSyncService {
	if config.Interval <= 0 {
		config.Interval = DefaultWearableSyncInterval
	}
	if config.RequestTimeout <= 0 {
		config.RequestTimeout = DefaultWearableRequestTimeout
	}
	if config.LookbackDays <= 0 {
		config.LookbackDays = DefaultWearableLookbackDays
	}
	if location == nil {
		location = time.Local
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &WearableSyncService{
		config:    config,
		tokens:    tokens,
		summaries: summaries,
		client:    &http.Client{},
		location:  location,
		logger:    logger,
		now:       time.Now,
	}
}

func (service *WearableSyncService) Enabled() bool {
	return strings.TrimSpace(service.config.AggregateURL) != ""
}

// Start runs one pass immediately and then one per interval until ctx ends.
func (service *WearableSyncService) Start(ctx context.Context) {
	if !service.Enabled() {
		return
	}

	ticker := time.NewTicker(service.config.Interval)
	go func() {
		defer ticker.Stop()

		service.run(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				service.run(ctx)
			}
		}
	}()
}

func (service *WearableSyncService) run(ctx context.Context) {
	if err := service.SyncAll(ctx); err != nil {
		service.logger.Error("wearable sync pass failed", "error", err)
	}
}

// SyncAll only fails when the token list cannot be read. Per-user and
// per-day failures are logged and skipped.
func (service *WearableSyncService) SyncAll(ctx context.Context) error {
	tokens, err := service.tokens.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("list wearable tokens: %w", err)
	}

	for _, token := range tokens {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		service.syncToken(ctx, token)
	}
	return nil
}

func (service *WearableSyncService) syncToken(ctx context.Context, token models.WearableToken) {
	today := DateAtLocation(service.now(), service.location)
	accessToken := token.AccessToken
	refreshToken := token.RefreshToken

	for offset := 0; offset < service.config.LookbackDays; offset++ {
		day := today.AddDate(0, 0, -offset)
		logger := service.logger.With("user_id", token.UserID, "date", day.Format(CalendarDayLayout))

		exists, err := service.summaries.ExistsForDay(ctx, token.UserID, day)
		if err != nil {
			logger.Warn("wearable summary lookup failed", "error", err)
			continue
		}
		if exists {
			continue
		}

		body, err := service.fetchDay(ctx, accessToken, day)
		if errors.Is(err, errWearableUnauthorized) && strings.TrimSpace(refreshToken) != "" {
			refreshed, refreshErr := service.refresh(ctx, refreshToken)
			if refreshErr != nil {
				logger.Warn("wearable token refresh failed", "error", refreshErr)
				continue
			}
			accessToken = refreshed.AccessToken
			if refreshed.RefreshToken != "" {
				refreshToken = refreshed.RefreshToken
			}
			var expiresAt *time.Time
			if !refreshed.Expiry.IsZero() {
				expiry := refreshed.Expiry.UTC()
				expiresAt = &expiry
			}
			if err := service.tokens.UpdateCredentials(ctx, token.UserID, accessToken, refreshToken, expiresAt); err != nil {
				logger.Warn("persist refreshed wearable token failed", "error", err)
			}
			body, err = service.fetchDay(ctx, accessToken, day)
		}
		if err != nil {
			logger.Warn("wearable fetch failed", "error", err)
			continue
		}

		summary, ok := NormalizeWearablePayload(token.UserID, day, body, service.now().UTC())
		if !ok {
			continue
		}
		if err := service.summaries.Upsert(ctx, &summary); err != nil {
			logger.Warn("store wearable summary failed", "error", err)
			continue
		}
		if err := service.tokens.MarkSynced(ctx, token.UserID, summary.CreatedAt); err != nil {
			logger.Warn("stamp wearable sync failed", "error", err)
		}
		logger.Info("wearable summary stored", "steps", summary.Steps)
	}
}

func (service *WearableSyncService) fetchDay(ctx context.Context, accessToken string, day time.Time) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, service.config.RequestTimeout)
	defer cancel()
	ctx = context.WithValue(ctx, oauth2.HTTPClient, service.client)

	endpoint, err := url.Parse(service.config.AggregateURL)
	if err != nil {
		return nil, fmt.Errorf("parse aggregate url: %w", err)
	}
	query := endpoint.Query()
	query.Set("date", day.Format(CalendarDayLayout))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"}))
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, errWearableUnauthorized
	}
	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("provider status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxWearablePayloadBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return nil, errors.New("provider returned invalid json")
	}
	return body, nil
}

func (service *WearableSyncService) refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	ctx, cancel := context.WithTimeout(ctx, service.config.RequestTimeout)
	defer cancel()
	ctx = context.WithValue(ctx, oauth2.HTTPClient, service.client)

	config := oauth2.Config{
		ClientID:     service.config.ClientID,
		ClientSecret: service.config.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  service.config.TokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
	token, err := config.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken}).Token()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(token.AccessToken) == "" {
		return nil, errors.New("refresh returned no access token")
	}
	return token, nil
}

// NormalizeWearablePayload maps the provider's aggregate body onto a stored
// summary. An empty or non-object body yields false.
func NormalizeWearablePayload(userID uint, day time.Time, body []byte, createdAt time.Time) (models.WearableDailySummary, bool) {
	payload := gjson.ParseBytes(body)
	if !payload.IsObject() || len(payload.Map()) == 0 {
		return models.WearableDailySummary{}, false
	}

	return models.WearableDailySummary{
		UserID:           userID,
		Date:             day.Format(CalendarDayLayout),
		Steps:            int(payload.Get("steps").Int()),
		SleepMinutes:     int(payload.Get("sleep_minutes").Int()),
		RestingHeartRate: optionalFloat(payload.Get("resting_heart_rate")),
		ActiveMinutes:    int(payload.Get("active_minutes").Int()),
		CaloriesBurned:   optionalFloat(payload.Get("calories_burned")),
		Source:           models.WearableSourceDevice,
		CreatedAt:        createdAt,
	}, true
}

func optionalFloat(value gjson.Result) *float64 {
	if !value.Exists() || value.Type == gjson.Null {
		return nil
	}
	number := value.Float()
	return &number
}

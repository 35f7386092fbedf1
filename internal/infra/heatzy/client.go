package heatzy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"heatzyctl/internal/domain"
)

const (
	DefaultBaseURL = "https://euapi.gizwits.com/app"
	defaultAppID   = "c70a66ff039d41b4a220e198b0fcc8b3"

	appIDHeader = "X-Gizwits-Application-Id"

	defaultTimeout = 30 * time.Second
)

// Auth is the result of a successful login.
type Auth struct {
	Token    string `json:"token"`
	UID      string `json:"uid"`
	ExpireAt int64  `json:"expire_at"`
}

// Client talks to the Heatzy cloud API. The token is set once, either by
// Login/Connect or directly via SetToken, and read-only afterwards; no
// refresh or renewal is attempted.
type Client struct {
	baseURL    string
	appID      string
	httpClient *http.Client
	logger     *slog.Logger

	token string
}

func NewClient(appID string, timeout time.Duration, logger *slog.Logger) *Client {
	return NewClientWithURL(appID, DefaultBaseURL, timeout, logger)
}

func NewClientWithURL(appID, baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if appID == "" {
		appID = defaultAppID
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		appID:      appID,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// SetToken installs an already-known bearer token, bypassing login.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) Token() string {
	return c.token
}

// Login exchanges credentials for a bearer token. Any non-success status is
// an authentication failure; a success body without a token is malformed.
func (c *Client) Login(ctx context.Context, username, password string) (Auth, error) {
	c.logger.Debug("logging in", "username", username)

	body, _ := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", bytes.NewReader(body))
	if err != nil {
		return Auth{}, fmt.Errorf("creating login request: %w", err)
	}
	req.Header.Set(appIDHeader, c.appID)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Auth{}, fmt.Errorf("sending login request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Auth{}, fmt.Errorf("%w: login status %d: %s", domain.ErrUnauthorized, resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var auth Auth
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return Auth{}, fmt.Errorf("%w: decoding login response: %v", domain.ErrMalformedResponse, err)
	}
	if auth.Token == "" {
		return Auth{}, fmt.Errorf("%w: login response has no token", domain.ErrMalformedResponse)
	}

	c.logger.Debug("authenticated", "uid", auth.UID, "expire_at", auth.ExpireAt)
	return auth, nil
}

// Connect logs in and keeps the resulting token on the client.
func (c *Client) Connect(ctx context.Context, username, password string) error {
	auth, err := c.Login(ctx, username, password)
	if err != nil {
		return err
	}
	c.token = auth.Token
	return nil
}

type wireDevice struct {
	DID         string `json:"did"`
	DevAlias    string `json:"dev_alias"`
	ProductName string `json:"product_name"`
	MAC         string `json:"mac"`
	IsOnline    bool   `json:"is_online"`
}

func (d wireDevice) toDomain() domain.Device {
	return domain.Device{
		DID:         d.DID,
		Alias:       d.DevAlias,
		ProductName: d.ProductName,
		MAC:         d.MAC,
		Online:      d.IsOnline,
	}
}

// ListDevices returns every device bound to the account, in server order.
func (c *Client) ListDevices(ctx context.Context) ([]domain.Device, error) {
	resp, err := c.doAuthenticated(ctx, http.MethodGet, "/bindings?limit=100&skip=0", nil)
	if err != nil {
		return nil, fmt.Errorf("listing devices: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, fmt.Errorf("listing devices: %w", err)
	}

	var result struct {
		Devices []wireDevice `json:"devices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decoding device list: %v", domain.ErrMalformedResponse, err)
	}

	devices := make([]domain.Device, 0, len(result.Devices))
	for _, d := range result.Devices {
		devices = append(devices, d.toDomain())
	}

	c.logger.Debug("listed devices", "count", len(devices))
	return devices, nil
}

// GetDevice fetches one device's metadata by its server-assigned ID.
func (c *Client) GetDevice(ctx context.Context, did string) (domain.Device, error) {
	resp, err := c.doAuthenticated(ctx, http.MethodGet, "/devices/"+did, nil)
	if err != nil {
		return domain.Device{}, fmt.Errorf("fetching device %s: %w", did, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.Device{}, fmt.Errorf("device %s: %w", did, domain.ErrNotFound)
	}
	if err := checkStatus(resp); err != nil {
		return domain.Device{}, fmt.Errorf("fetching device %s: %w", did, err)
	}

	var d wireDevice
	if err := json.NewDecoder(resp.Body).Decode(&d); err != nil {
		return domain.Device{}, fmt.Errorf("%w: decoding device: %v", domain.ErrMalformedResponse, err)
	}

	return d.toDomain(), nil
}

// GetDeviceState reads the last mode a device reported.
func (c *Client) GetDeviceState(ctx context.Context, did string) (domain.DeviceState, error) {
	resp, err := c.doAuthenticated(ctx, http.MethodGet, "/devdata/"+did+"/latest", nil)
	if err != nil {
		return domain.DeviceState{}, fmt.Errorf("fetching state of device %s: %w", did, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.DeviceState{}, fmt.Errorf("device %s: %w", did, domain.ErrNotFound)
	}
	if err := checkStatus(resp); err != nil {
		return domain.DeviceState{}, fmt.Errorf("fetching state of device %s: %w", did, err)
	}

	var result struct {
		UpdatedAt int64 `json:"updated_at"`
		Attr      struct {
			Mode json.RawMessage `json:"mode"`
		} `json:"attr"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return domain.DeviceState{}, fmt.Errorf("%w: decoding device data: %v", domain.ErrMalformedResponse, err)
	}
	if len(result.Attr.Mode) == 0 {
		return domain.DeviceState{}, fmt.Errorf("%w: device data has no mode attribute", domain.ErrMalformedResponse)
	}

	mode, err := domain.ModeFromWire(result.Attr.Mode)
	if err != nil {
		return domain.DeviceState{}, fmt.Errorf("device %s: %w", did, err)
	}

	state := domain.DeviceState{Mode: mode}
	if result.UpdatedAt > 0 {
		state.UpdatedAt = time.Unix(result.UpdatedAt, 0)
	}

	c.logger.Debug("device state", "did", did, "mode", mode)
	return state, nil
}

// SetMode commands a device into a new mode. Success is judged by HTTP
// status only; the API does not echo the new state.
func (c *Client) SetMode(ctx context.Context, did string, mode domain.Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("setting mode of device %s: %w", did, domain.ErrUnknownMode)
	}

	c.logger.Debug("setting mode", "did", did, "mode", mode, "raw", mode.WireCode())

	body, _ := json.Marshal(map[string]int{"raw": mode.WireCode()})
	resp, err := c.doAuthenticated(ctx, http.MethodPost, "/control/"+did, body)
	if err != nil {
		return fmt.Errorf("setting mode of device %s: %w", did, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("device %s: %w", did, domain.ErrNotFound)
	}
	if err := checkStatus(resp); err != nil {
		return fmt.Errorf("setting mode of device %s: %w", did, err)
	}

	return nil
}

// doAuthenticated issues one request with the bearer token attached. It
// fails before any I/O when no token is set.
func (c *Client) doAuthenticated(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	if c.token == "" {
		return nil, domain.ErrNoToken
	}

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set(appIDHeader, c.appID)
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	return resp, nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return nil
	}

	detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	msg := strings.TrimSpace(string(detail))

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: status %d: %s", domain.ErrUnauthorized, resp.StatusCode, msg)
	}
	return fmt.Errorf("%w: status %d: %s", domain.ErrRejected, resp.StatusCode, msg)
}

package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/23302610sole/clear-path-png/internal/entity"
)

const (
	retryMax         = 3
	retryWaitMax     = time.Second * 5
	defaultTimeout   = time.Second * 5
	reminderEndpoint = "/internal/notifications/send"
)

// Client posts reminder notifications to the external notification service.
// Delivery itself happens on the other side; this client only hands over the
// message.
type Client struct {
	client *http.Client
	url    string
	apiKey string
}

func NewClient(url, apiKey string) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = retryMax
	retryClient.RetryWaitMin = 1 * time.Second
	retryClient.RetryWaitMax = retryWaitMax
	retryClient.HTTPClient.Timeout = defaultTimeout
	retryClient.Logger = nil

	return &Client{
		client: retryClient.StandardClient(),
		url:    url,
		apiKey: apiKey,
	}
}

type SendMessageRequest struct {
	Type       string   `json:"type"`
	Subject    string   `json:"subject"`
	Message    string   `json:"message"`
	Recipients []string `json:"recipients"`
}

func (c *Client) SendClearanceReminder(ctx context.Context, student entity.Student, pending []string) error {
	req := SendMessageRequest{
		Type:    "email",
		Subject: "Clearance reminder",
		Message: fmt.Sprintf(
			"Dear %s,\n\nYour clearance is still pending with: %s.\nPlease visit the departments above to complete your clearance.",
			student.FullName, strings.Join(pending, ", "),
		),
		Recipients: []string{student.Email},
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal request in JSON: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+reminderEndpoint, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	if c.apiKey != "" {
		httpReq.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("code %d: %s", resp.StatusCode, body)
	}

	return nil
}

package libs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

type SupportClient struct {
	endpoint string
	http     *http.Client
}

func NewSupportClient(endpoint string, timeout time.Duration) *SupportClient {
	return &SupportClient{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

type supportPayload struct {
	UserName string `json:"user_name"`
	Message  string `json:"message"`
}

type supportReply struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Send posts a message to the support endpoint. Only a 2xx answer with a true
// success field counts as delivered.
func (c *SupportClient) Send(ctx context.Context, userName, message string) error {
	body, err := json.Marshal(supportPayload{UserName: userName, Message: message})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("support request failed: %w", err)
	}
	defer resp.Body.Close()

	var reply supportReply
	decodeErr := json.NewDecoder(resp.Body).Decode(&reply)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if reply.Error != "" {
			return fmt.Errorf("support endpoint returned status %d: %s", resp.StatusCode, reply.Error)
		}
		return fmt.Errorf("support endpoint returned status %d", resp.StatusCode)
	}
	if decodeErr != nil {
		return fmt.Errorf("failed to decode support response: %w", decodeErr)
	}
	if !reply.Success {
		return errors.New("support endpoint did not confirm the message")
	}
	return nil
}

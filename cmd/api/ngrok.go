package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	ngrokMaxAttempts   = 10
	ngrokRetryInterval = 3 * time.Second
)

// ngrokTunnelsResponse matches the /api/tunnels response from the ngrok local API.
type ngrokTunnelsResponse struct {
	Tunnels []ngrokTunnel `json:"tunnels"`
}

type ngrokTunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

// detectNgrokURL queries the ngrok local API and returns the first HTTPS
// tunnel URL. It retries to ride out ngrok's startup window.
func detectNgrokURL(ctx context.Context, ngrokAPIBase string) (string, error) {
	url := ngrokAPIBase + "/api/tunnels"
	client := &http.Client{Timeout: 5 * time.Second}

	var lastErr error
	for attempt := 1; attempt <= ngrokMaxAttempts; attempt++ {
		tunnels, err := fetchTunnels(ctx, client, url)
		if err == nil {
			// Prefer HTTPS tunnels
			for _, t := range tunnels.Tunnels {
				if t.Proto == "https" {
					return t.PublicURL, nil
				}
			}
			if len(tunnels.Tunnels) > 0 {
				return tunnels.Tunnels[0].PublicURL, nil
			}
			// No tunnels yet, ngrok is still starting up
		}
		lastErr = err

		if attempt < ngrokMaxAttempts {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(ngrokRetryInterval):
			}
		}
	}

	if lastErr != nil {
		return "", fmt.Errorf("ngrok API not reachable after %d attempts: %w", ngrokMaxAttempts, lastErr)
	}
	return "", fmt.Errorf("ngrok has no active tunnels after %d attempts", ngrokMaxAttempts)
}

func fetchTunnels(ctx context.Context, client *http.Client, url string) (*ngrokTunnelsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create ngrok API request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var tunnels ngrokTunnelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tunnels); err != nil {
		return nil, fmt.Errorf("failed to decode ngrok API response: %w", err)
	}
	return &tunnels, nil
}

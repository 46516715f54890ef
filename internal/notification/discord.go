package notification

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/agrowatch/awd-atlas-cli/internal/properties"
)

type discordMessage struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       int    `json:"color"`
}

const (
	colorRed   = 16711680
	colorGreen = 65280
)

func send(title, description string, color int) error {
	url := properties.DiscordNotificationUrl()
	if url == "" {
		return nil
	}

	payload, err := json.Marshal(discordMessage{
		Embeds: []discordEmbed{{Title: title, Description: description, Color: color}},
	})
	if err != nil {
		return err
	}

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to send Discord notification, status code: %d", resp.StatusCode)
	}
	return nil
}

// SendError reports a failed pipeline run to the configured webhook.
func SendError(message string) error {
	return send("🚨 AWD Atlas error", fmt.Sprintf("An error occurred: %s", message), colorRed)
}

// SendSuccess reports a completed pipeline run to the configured webhook.
func SendSuccess(message string) error {
	return send("✅ AWD Atlas run complete", message, colorGreen)
}

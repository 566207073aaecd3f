package communication

import (
	"fmt"
	"os"

	"github.com/slack-go/slack"
)

// Slack posts operational notices to the dashboard ops channels. A nil
// client (no bot token configured) turns every post into a no-op so local
// development does not need Slack credentials.
type Slack struct {
	client  *slack.Client
	options SlackOption
}

type SlackOption struct {
	InfoChannelID  string
	ErrorChannelID string
}

func ConnectSlack() *Slack {
	token := os.Getenv("SLACK_BOT_TOKEN")
	if token == "" {
		return nil
	}

	return NewSlack(token, SlackOption{
		InfoChannelID:  os.Getenv("SLACK_INFO_CHANNEL"),
		ErrorChannelID: os.Getenv("SLACK_ERROR_CHANNEL"),
	})
}

func NewSlack(token string, options SlackOption) *Slack {
	return &Slack{client: slack.New(token), options: options}
}

func (s *Slack) postMessage(channelID, message string) error {
	if s == nil || s.client == nil || channelID == "" {
		return nil
	}

	_, _, err := s.client.PostMessage(
		channelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		return fmt.Errorf("failed to post message to Slack: %w", err)
	}
	return nil
}

func (s *Slack) Info(message string) error {
	return s.postMessage(s.options.InfoChannelID, message)
}

func (s *Slack) Error(message string) error {
	return s.postMessage(s.options.ErrorChannelID, message)
}

package communication

import (
	"fmt"

	"github.com/slack-go/slack"
)

// Notifier delivers operator alerts.
type Notifier interface {
	Error(message string) error
}

// MessagePoster is the part of *slack.Client used by Slack.
type MessagePoster interface {
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)
}

type Slack struct {
	client  MessagePoster
	options SlackOption
}

type SlackOption struct {
	ErrorChannelID string
}

func NewSlack(token string, options SlackOption) *Slack {
	return NewSlackWithClient(slack.New(token), options)
}

func NewSlackWithClient(client MessagePoster, options SlackOption) *Slack {
	return &Slack{client: client, options: options}
}

func (s *Slack) postMessage(channelID, message string) error {
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

func (s *Slack) Error(message string) error {
	return s.postMessage(s.options.ErrorChannelID, message)
}

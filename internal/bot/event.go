// Package bot implements the Slack Events API handler: the url_verification
// handshake and replies to authenticated human messages.
package bot

import (
	"encoding/json"

	"github.com/slack-go/slack/slackevents"
)

// Event is the payload delivered for a Slack Events API callback.
// A challenge key marks the url_verification handshake, whatever Type says.
type Event struct {
	Token     string                    `json:"token"`
	Challenge *string                   `json:"challenge,omitempty"`
	Type      string                    `json:"type,omitempty"`
	TeamID    string                    `json:"team_id,omitempty"`
	APIAppID  string                    `json:"api_app_id,omitempty"`
	EventID   string                    `json:"event_id,omitempty"`
	Event     *slackevents.MessageEvent `json:"event,omitempty"`

	// hasBotID is set when the decoded inner event carried a bot_id key, even an empty one.
	hasBotID bool
}

// UnmarshalJSON decodes the payload and records key presence the typed fields lose:
// a null challenge still marks a handshake, and an empty bot_id still marks a bot.
func (e *Event) UnmarshalJSON(data []byte) error {
	type plain Event
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	var keys struct {
		Challenge json.RawMessage            `json:"challenge"`
		Event     map[string]json.RawMessage `json:"event"`
	}
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}

	*e = Event(decoded)
	if e.Challenge == nil && keys.Challenge != nil {
		empty := ""
		e.Challenge = &empty
	}
	if _, ok := keys.Event["bot_id"]; ok {
		e.hasBotID = true
	}
	return nil
}

// IsChallenge reports whether the event is a url_verification handshake.
func (e *Event) IsChallenge() bool {
	return e != nil && e.Challenge != nil
}

// FromBot reports whether the inner message was posted by a bot.
func (e *Event) FromBot() bool {
	return e.Event != nil && (e.hasBotID || e.Event.BotID != "")
}

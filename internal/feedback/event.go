package feedback

import (
	"github.com/aws/aws-lambda-go/events"
)

// Event is an SNS delivery batch.
// Records keep Sns as a pointer so a record without the wrapper can be told apart.
type Event struct {
	Records []Record `json:"Records"`
}

// Record is a single SNS delivery record.
type Record struct {
	EventVersion         string            `json:"EventVersion,omitempty"`
	EventSubscriptionArn string            `json:"EventSubscriptionArn,omitempty"`
	EventSource          string            `json:"EventSource"`
	SNS                  *events.SNSEntity `json:"Sns,omitempty"`
}

// Payload is the JSON document published as the SNS message body.
type Payload struct {
	UserName   string `json:"user_name"`
	UserID     string `json:"user_id"`
	TeamDomain string `json:"team_domain"`
	TeamID     string `json:"team_id"`
	Text       string `json:"text"`
}

package constants

// DefaultSlackAPIURL is the base URL of the Slack Web API. Methods are appended to it.
const DefaultSlackAPIURL = "https://slack.com/api/"

// FeedbackSubject is the SNS subject carried by feedback records.
const FeedbackSubject = "feedback"

// SNSEventSource is the EventSource value of SNS-delivered Lambda records.
const SNSEventSource = "aws:sns"

// Handler return values. Lambda runtimes surface these verbatim.
const (
	// ResponseOK is returned by the inbound handler once an event is handled.
	ResponseOK = "200 OK"
	// ResponseSecretNotFound is returned when no verification token is stored yet.
	ResponseSecretNotFound = "SSM parameter not found."
	// ResponseNoSlackDetails is returned when the feedback settings could not be loaded.
	ResponseNoSlackDetails = "No Slack Details are available."
)

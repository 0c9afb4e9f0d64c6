// Package slackclient contains the outbound Slack transports: Web API replies
// for the inbound bot and incoming-webhook posts for feedback notifications.
package slackclient

// Reverse returns s with its Unicode code points in reverse order.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

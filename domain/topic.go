package domain

import (
	"slices"
	"strings"
	"time"
)

const (
	topicTimeLayout   = "2006-01-02 15:04:05"
	defaultTopicLabel = "Chat_"
	topicSuffixMarker = ".@"
)

// GenerateTopic picks the topic of a new dialog.
// A blank topic becomes "Chat_<timestamp>". A topic the owner already uses
// gets a ".@<timestamp>" suffix so the owner's dialogs stay distinguishable.
func GenerateTopic(requested string, ownerTopics []string, now time.Time) string {
	stamp := now.Format(topicTimeLayout)
	topic := strings.TrimSpace(requested)
	if topic == "" {
		return defaultTopicLabel + stamp
	}
	if slices.Contains(ownerTopics, topic) {
		return topic + topicSuffixMarker + stamp
	}
	return topic
}

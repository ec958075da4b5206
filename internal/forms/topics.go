package forms

import (
	"slices"
	"strings"
)

// TopicList is an ordered list of completed topics without duplicates.
type TopicList struct {
	items []string
}

// Add appends the trimmed topic. Blank and already present topics are
// ignored; the return value reports whether the list changed.
func (l *TopicList) Add(topic string) bool {
	topic = strings.TrimSpace(topic)
	if topic == "" || slices.Contains(l.items, topic) {
		return false
	}
	l.items = append(l.items, topic)
	return true
}

// Remove deletes topic if present.
func (l *TopicList) Remove(topic string) {
	l.items = slices.DeleteFunc(l.items, func(t string) bool { return t == topic })
}

// Items returns a copy in insertion order.
func (l *TopicList) Items() []string {
	return slices.Clone(l.items)
}

func (l *TopicList) Len() int {
	return len(l.items)
}

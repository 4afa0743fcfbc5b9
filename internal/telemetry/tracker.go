package telemetry

import (
	"fmt"
	"time"

	"gopkg.in/segmentio/analytics-go.v3"
)

// segmentWriteKey is set at build time via -ldflags
var segmentWriteKey string

// Tracker tracks events
type Tracker interface {
	Track(event event)
	Close()
}

type noopTracker struct{}

func (tracker *noopTracker) Track(event event) {}

func (tracker *noopTracker) Close() {}

type stdoutTracker struct{}

func (tracker *stdoutTracker) Track(event event) {
	fmt.Printf("%s UTC TELEM %s: %s%v\n",
		event.time.In(time.UTC).Format("15:04:05"),
		event.command,
		event.eventType,
		event.data,
	)
}

func (tracker *stdoutTracker) Close() {}

type segmentClient interface {
	Enqueue(message analytics.Message) error
	Close() error
}

type segmentTracker struct {
	client segmentClient
}

func newSegmentTracker() Tracker {
	if segmentWriteKey == "" {
		return &noopTracker{}
	}
	return &segmentTracker{analytics.New(segmentWriteKey)}
}

func (tracker *segmentTracker) Track(event event) {
	properties := make(map[string]interface{}, len(event.data)+3)
	properties[propertyCommand] = event.command
	properties[propertyExecutionID] = event.executionID
	properties[propertyVersion] = event.version
	for _, data := range event.data {
		properties[string(data.Key)] = data.Value
	}

	_ = tracker.client.Enqueue(analytics.Track{
		MessageId:  event.id,
		Timestamp:  event.time,
		Event:      string(event.eventType),
		UserId:     event.userID,
		Properties: properties,
	})
}

func (tracker *segmentTracker) Close() {
	_ = tracker.client.Close()
}

// set of segment property names
const (
	propertyCommand     = "cmd"
	propertyExecutionID = "xid"
	propertyVersion     = "version"
)

package telemetry

import (
	"errors"
	"testing"

	"github.com/skillswap/skillswap-cli/internal/utils/test/assert"

	"gopkg.in/segmentio/analytics-go.v3"
)

func TestNewService(t *testing.T) {
	t.Run("should track nothing when telemetry is off", func(t *testing.T) {
		service := NewService(ModeOff, "user123", "login", "0.1.0")
		_, ok := service.tracker.(*noopTracker)
		assert.True(t, ok, "expected a noop tracker, got %T", service.tracker)
	})

	t.Run("should track to stdout when requested", func(t *testing.T) {
		service := NewService(ModeStdout, "user123", "login", "0.1.0")
		_, ok := service.tracker.(*stdoutTracker)
		assert.True(t, ok, "expected a stdout tracker, got %T", service.tracker)
	})

	t.Run("should fall back to a noop tracker without a segment write key", func(t *testing.T) {
		service := NewService(ModeOn, "user123", "login", "0.1.0")
		_, ok := service.tracker.(*noopTracker)
		assert.True(t, ok, "expected a noop tracker, got %T", service.tracker)
	})
}

type mockSegmentClient struct {
	enqueued []analytics.Message
	closed   bool
}

func (client *mockSegmentClient) Enqueue(message analytics.Message) error {
	client.enqueued = append(client.enqueued, message)
	return nil
}

func (client *mockSegmentClient) Close() error {
	client.closed = true
	return nil
}

func TestSegmentTracker(t *testing.T) {
	t.Run("should enqueue the event with its properties", func(t *testing.T) {
		client := &mockSegmentClient{}

		service := Service{
			userID:      "user123",
			command:     "login",
			version:     "0.1.0",
			executionID: "execution123",
			tracker:     &segmentTracker{client},
		}

		service.TrackEvent(EventTypeCommandError, EventData{EventDataKeyError, errors.New("something bad happened")})
		service.Close()

		assert.Equal(t, 1, len(client.enqueued))
		assert.True(t, client.closed, "the underlying segment client must be closed")

		track, ok := client.enqueued[0].(analytics.Track)
		assert.True(t, ok, "expected a track message, got %T", client.enqueued[0])

		assert.Equal(t, string(EventTypeCommandError), track.Event)
		assert.Equal(t, "user123", track.UserId)
		assert.Equal(t, "login", track.Properties[propertyCommand])
		assert.Equal(t, "execution123", track.Properties[propertyExecutionID])
		assert.Equal(t, "0.1.0", track.Properties[propertyVersion])
		assert.Equal(t, errors.New("something bad happened"), track.Properties[string(EventDataKeyError)])
	})
}

package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewStatsdClient(t *testing.T) {
	client, err := NewStatsdClient("localhost:8125", "timerun", nil, 1.0)
	assert.NoError(t, err)
	assert.NotNil(t, client)

	// Emissions are fire-and-forget over UDP; no listener is required.
	assert.NoError(t, client.Count("event.test.capture", 1, nil))
	assert.NoError(t, client.Gauge("gauge.test.history_size", 3, nil))
	assert.NoError(t, client.Timing("latency.test.capture", time.Millisecond, nil))
}

func TestFormatMetricWithoutTags(t *testing.T) {
	client := &StatsdClient{}

	assert.Equal(t, "event.test.capture", client.formatMetric("event.test.capture", nil))
}

func TestFormatMetricEscapesIncompatibleCharacters(t *testing.T) {
	client := &StatsdClient{}

	assert.Equal(t, "latency%3Acapture", client.formatMetric("latency:capture", nil))
}

func TestFormatMetricMergesDefaultTags(t *testing.T) {
	client := &StatsdClient{defaultTags: map[string]string{"host": "example"}}

	formatted := client.formatMetric("event.test.capture", map[string]string{"source": "db"})
	assert.True(t, strings.HasPrefix(formatted, "event.test.capture,"))
	assert.Contains(t, formatted, "host=example")
	assert.Contains(t, formatted, "source=db")
}

func TestFormatMetricTagsOverrideDefaults(t *testing.T) {
	client := &StatsdClient{defaultTags: map[string]string{"host": "default"}}

	formatted := client.formatMetric("event.test.capture", map[string]string{"host": "override"})
	assert.Equal(t, "event.test.capture,host=override", formatted)
}

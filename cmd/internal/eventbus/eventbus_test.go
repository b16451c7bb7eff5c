package eventbus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

func TestNewJSONEventRoundTrip(t *testing.T) {
	evt, err := NewJSONEvent("", "review.submitted", payload{Rating: 4, Review: "nice"})
	require.NoError(t, err)

	assert.NotEmpty(t, evt.ID)
	assert.Equal(t, "review.submitted", evt.Type)

	got, err := DecodeJSON[payload](evt)
	require.NoError(t, err)
	assert.Equal(t, payload{Rating: 4, Review: "nice"}, got)
}

func TestNewJSONEventKeepsID(t *testing.T) {
	evt, err := NewJSONEvent("fixed", "review.submitted", map[string]int{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, "fixed", evt.ID)
}

func TestNewJSONEventRejectsUnmarshalable(t *testing.T) {
	_, err := NewJSONEvent("", "x", make(chan int))
	assert.Error(t, err)
}

func TestDecodeJSONError(t *testing.T) {
	_, err := DecodeJSON[payload](Event{Payload: []byte(`"not an object"`)})
	assert.Error(t, err)
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), "topic", Event{}))
	p.Close()
}

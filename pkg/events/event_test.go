package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshal(t *testing.T) {
	evt := New(TypeGenerationCreated, map[string]interface{}{"id": float64(7), "content_type": "report"})

	raw, err := Marshal(evt)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"type":"GENERATION_CREATED"`)

	got, err := Unmarshal(raw)
	require.NoError(t, err)
	assert.Equal(t, TypeGenerationCreated, got.EventType())
	assert.Equal(t, evt.Payload(), got.Payload())
	assert.True(t, evt.Timestamp().Equal(got.Timestamp()))
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	_, err := Unmarshal([]byte("not json"))
	assert.Error(t, err)
}

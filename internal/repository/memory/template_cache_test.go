package memory

import (
	"testing"
	"time"

	"ai-productivity-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateCache(t *testing.T) {
	c := NewTemplateCache(time.Hour)

	_, found := c.Get()
	assert.False(t, found)

	c.Save([]*entity.Template{{Id: 1, Title: "Professional Email"}})
	got, found := c.Get()
	require.True(t, found)
	require.Len(t, got, 1)
	assert.Equal(t, "Professional Email", got[0].Title)

	c.Invalidate()
	_, found = c.Get()
	assert.False(t, found)
}

func TestTemplateCacheExpires(t *testing.T) {
	c := NewTemplateCache(20 * time.Millisecond)
	c.Save([]*entity.Template{{Id: 1}})

	assert.Eventually(t, func() bool {
		_, found := c.Get()
		return !found
	}, time.Second, 10*time.Millisecond)
}

package implementation_test

import (
	"context"
	"testing"

	"ai-productivity-be/internal/entity"
	"ai-productivity-be/internal/repository/implementation"
	"ai-productivity-be/internal/repository/specification"
	"ai-productivity-be/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerationRepository(t *testing.T) {
	ctx := context.Background()
	repo := implementation.NewGenerationRepository(testutil.NewTestDB(t))

	withContext := &entity.Generation{
		Content:           "c1",
		ContentType:       entity.ContentTypeEmail,
		WritingStyle:      entity.WritingStyleCasual,
		Prompt:            "p1",
		AdditionalContext: map[string]interface{}{"recipient": "Ana"},
	}
	require.NoError(t, repo.Create(ctx, withContext))
	assert.NotZero(t, withContext.Id)
	assert.False(t, withContext.CreatedAt.IsZero())

	plain := &entity.Generation{
		Content:      "c2",
		ContentType:  entity.ContentTypeOutline,
		WritingStyle: entity.WritingStyleTechnical,
		Prompt:       "p2",
	}
	require.NoError(t, repo.Create(ctx, plain))

	found, err := repo.FindOne(ctx, specification.ByID{ID: withContext.Id})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, entity.ContentTypeEmail, found.ContentType)
	assert.Equal(t, "Ana", found.AdditionalContext["recipient"])

	found, err = repo.FindOne(ctx, specification.ByID{ID: plain.Id})
	require.NoError(t, err)
	assert.Nil(t, found.AdditionalContext)

	missing, err := repo.FindOne(ctx, specification.ByID{ID: 9999})
	require.NoError(t, err)
	assert.Nil(t, missing)

	all, err := repo.FindAll(ctx, specification.NewestFirst{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, plain.Id, all[0].Id)

	affected, err := repo.Delete(ctx, 9999)
	require.NoError(t, err)
	assert.Zero(t, affected)

	affected, err = repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, affected)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

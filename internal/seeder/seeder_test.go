package seeder_test

import (
	"context"
	"testing"

	"ai-productivity-be/internal/entity"
	"ai-productivity-be/internal/repository/unitofwork"
	"ai-productivity-be/internal/seeder"
	"ai-productivity-be/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateIsIdempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	assert.NoError(t, seeder.Migrate(db))

	for _, table := range []string{"summaries", "questions", "generations", "templates"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestSeedTemplates(t *testing.T) {
	ctx := context.Background()
	uowFactory := unitofwork.NewRepositoryFactory(testutil.NewTestDB(t))

	inserted, err := seeder.SeedTemplates(ctx, uowFactory)
	require.NoError(t, err)
	assert.Equal(t, 5, inserted)

	inserted, err = seeder.SeedTemplates(ctx, uowFactory)
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)

	templates, err := uowFactory.NewUnitOfWork(ctx).TemplateRepository().FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, templates, 5)

	titles := make([]string, 0, len(templates))
	for _, tpl := range templates {
		titles = append(titles, tpl.Title)
		assert.True(t, tpl.ContentType.IsValid())
		assert.True(t, tpl.WritingStyle.IsValid())
		assert.NotZero(t, tpl.Id)
	}
	assert.ElementsMatch(t, []string{
		"Professional Email", "Meeting Notes", "Project Proposal", "Research Summary", "Technical Guide",
	}, titles)
}

func TestSeedTemplatesSkipsNonEmptyTable(t *testing.T) {
	ctx := context.Background()
	uowFactory := unitofwork.NewRepositoryFactory(testutil.NewTestDB(t))

	require.NoError(t, uowFactory.NewUnitOfWork(ctx).TemplateRepository().CreateBulk(ctx, []*entity.Template{{
		Title:        "Custom",
		Description:  "d",
		ContentType:  entity.ContentTypeOutline,
		WritingStyle: entity.WritingStyleCasual,
		Prompt:       "p",
	}}))

	inserted, err := seeder.SeedTemplates(ctx, uowFactory)
	require.NoError(t, err)
	assert.Zero(t, inserted)

	count, err := uowFactory.NewUnitOfWork(ctx).TemplateRepository().Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestCountRows(t *testing.T) {
	ctx := context.Background()
	uowFactory := unitofwork.NewRepositoryFactory(testutil.NewTestDB(t))

	stats, err := seeder.CountRows(ctx, uowFactory)
	require.NoError(t, err)
	assert.Equal(t, seeder.TableStats{}, stats)

	uow := uowFactory.NewUnitOfWork(ctx)
	summary := &entity.Summary{OriginalText: "long text", SummarizedText: "short"}
	require.NoError(t, uow.SummaryRepository().Create(ctx, summary))
	for _, q := range []string{"who?", "why?"} {
		require.NoError(t, uow.QuestionRepository().Create(ctx, &entity.Question{
			SummaryId: &summary.Id, QuestionText: q, AnswerText: "a",
		}))
	}
	require.NoError(t, uow.GenerationRepository().Create(ctx, &entity.Generation{
		Content: "c", ContentType: entity.ContentTypeReport, WritingStyle: entity.WritingStyleProfessional, Prompt: "p",
	}))
	_, err = seeder.SeedTemplates(ctx, uowFactory)
	require.NoError(t, err)

	stats, err = seeder.CountRows(ctx, uowFactory)
	require.NoError(t, err)
	assert.Equal(t, seeder.TableStats{Summaries: 1, Questions: 2, Generations: 1, Templates: 5}, stats)
}

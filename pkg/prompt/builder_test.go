package prompt

import (
	"strings"
	"testing"

	"ai-productivity-be/internal/constant"
	"ai-productivity-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestBuildSummaryPrompt(t *testing.T) {
	tests := []struct {
		length entity.SummaryLength
		want   string
	}{
		{entity.SummaryLengthShort, constant.SummaryLengthShortInstruction},
		{entity.SummaryLengthMedium, constant.SummaryLengthMediumInstruction},
		{entity.SummaryLengthLong, constant.SummaryLengthLongInstruction},
		{"", constant.SummaryLengthMediumInstruction},
	}

	for _, tt := range tests {
		t.Run(string(tt.length), func(t *testing.T) {
			got := BuildSummaryPrompt("The quick brown fox.", tt.length)
			assert.Contains(t, got, tt.want)
			assert.Contains(t, got, "Text to summarize:\nThe quick brown fox.")
			assert.Contains(t, got, "- Maintain the key points and main ideas")
		})
	}
}

func TestBuildQuestionPrompt(t *testing.T) {
	t.Run("without summary", func(t *testing.T) {
		got := BuildQuestionPrompt("Paris is the capital of France.", "What is the capital?", "")
		assert.Contains(t, got, "Original Text: Paris is the capital of France.")
		assert.Contains(t, got, "Question: What is the capital?")
		assert.NotContains(t, got, "Summary:")
		assert.Contains(t, got, "- If the answer cannot be derived from the context, say so")
	})

	t.Run("with summary", func(t *testing.T) {
		got := BuildQuestionPrompt("ctx", "q", "short version")
		assert.Contains(t, got, "Summary: short version")
	})
}

func TestBuildContentPrompt_Email(t *testing.T) {
	got := BuildContentPrompt("Invite the team", entity.ContentTypeEmail, entity.WritingStyleCasual, map[string]interface{}{
		"recipient": "Team",
		"date":      "Friday",
	})

	assert.True(t, strings.HasPrefix(got, constant.EmailSkeleton))
	assert.Contains(t, got, "Style: casual\n")
	assert.Contains(t, got, "Context: date: Friday\nrecipient: Team\n")
	assert.Contains(t, got, "Prompt: Invite the team")
	assert.NotContains(t, got, "Task: Generate")
	assert.NotContains(t, got, "Format Instructions:")
}

func TestFormatInstructionsCoverNonEmailTypes(t *testing.T) {
	for _, ct := range []entity.ContentType{entity.ContentTypeReport, entity.ContentTypeArticle, entity.ContentTypeOutline} {
		assert.NotEmpty(t, formatInstructions[ct], ct)
	}
	_, ok := formatInstructions[entity.ContentTypeEmail]
	assert.False(t, ok)
}

func TestBuildContentPrompt_Report(t *testing.T) {
	got := BuildContentPrompt("Q3 results", entity.ContentTypeReport, entity.WritingStyleAcademic, nil)

	assert.Contains(t, got, "Task: Generate report content based on the following prompt:\n\nQ3 results")
	assert.Contains(t, got, "Style Instructions: "+constant.StyleAcademicInstruction)
	assert.Contains(t, got, "- Executive summary")
	assert.Contains(t, got, "- Recommendations")
	assert.NotContains(t, got, "Additional Context:")
	assert.True(t, strings.HasSuffix(got, constant.ContentPromptClosing))
}

func TestBuildContentPrompt_FormatPerType(t *testing.T) {
	assert.Contains(t, BuildContentPrompt("p", entity.ContentTypeArticle, entity.WritingStyleCreative, nil), "- Attention-grabbing introduction")
	assert.Contains(t, BuildContentPrompt("p", entity.ContentTypeOutline, entity.WritingStyleTechnical, nil), "- Key points under each section")
}

func TestBuildContentPrompt_ContextIsSortedAndDeterministic(t *testing.T) {
	ctx := map[string]interface{}{"zeta": 1, "alpha": "a", "mid": true}

	first := BuildContentPrompt("p", entity.ContentTypeOutline, entity.WritingStyleProfessional, ctx)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, BuildContentPrompt("p", entity.ContentTypeOutline, entity.WritingStyleProfessional, ctx))
	}

	assert.Contains(t, first, "Additional Context:\n- alpha: a\n- mid: true\n- zeta: 1\n")
}

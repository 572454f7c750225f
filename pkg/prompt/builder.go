// Package prompt turns request fields into the text sent to the language model.
// Every function is pure: the same input always yields the same prompt.
package prompt

import (
	"fmt"
	"sort"
	"strings"

	"ai-productivity-be/internal/constant"
	"ai-productivity-be/internal/entity"
)

var lengthInstructions = map[entity.SummaryLength]string{
	entity.SummaryLengthShort:  constant.SummaryLengthShortInstruction,
	entity.SummaryLengthMedium: constant.SummaryLengthMediumInstruction,
	entity.SummaryLengthLong:   constant.SummaryLengthLongInstruction,
}

var styleInstructions = map[entity.WritingStyle]string{
	entity.WritingStyleProfessional: constant.StyleProfessionalInstruction,
	entity.WritingStyleCasual:       constant.StyleCasualInstruction,
	entity.WritingStyleAcademic:     constant.StyleAcademicInstruction,
	entity.WritingStyleTechnical:    constant.StyleTechnicalInstruction,
	entity.WritingStyleCreative:     constant.StyleCreativeInstruction,
}

var formatInstructions = map[entity.ContentType]string{
	entity.ContentTypeReport:  constant.FormatReportInstruction,
	entity.ContentTypeArticle: constant.FormatArticleInstruction,
	entity.ContentTypeOutline: constant.FormatOutlineInstruction,
}

// BuildSummaryPrompt falls back to the medium fragment for an unknown length.
func BuildSummaryPrompt(text string, length entity.SummaryLength) string {
	instruction, ok := lengthInstructions[length]
	if !ok {
		instruction = lengthInstructions[entity.DefaultSummaryLength]
	}
	return fmt.Sprintf(constant.SummaryPromptTemplate, instruction, text)
}

// BuildQuestionPrompt adds the summary line only when summary is non-empty.
func BuildQuestionPrompt(context, question, summary string) string {
	var sb strings.Builder
	sb.WriteString("Context:\n")
	sb.WriteString("Original Text: ")
	sb.WriteString(context)
	sb.WriteString("\n")
	if summary != "" {
		sb.WriteString("Summary: ")
		sb.WriteString(summary)
		sb.WriteString("\n")
	}
	sb.WriteString("\nQuestion: ")
	sb.WriteString(question)
	sb.WriteString("\n\n")
	sb.WriteString(constant.QuestionPromptInstructions)
	return sb.String()
}

func BuildContentPrompt(prompt string, contentType entity.ContentType, style entity.WritingStyle, additionalContext map[string]interface{}) string {
	if contentType == entity.ContentTypeEmail {
		return buildEmailPrompt(prompt, style, additionalContext)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Task: Generate %s content based on the following prompt:\n\n", contentType)
	sb.WriteString(prompt)
	sb.WriteString("\n\n")
	sb.WriteString("Style Instructions: ")
	sb.WriteString(styleInstructions[style])
	sb.WriteString("\n\n")
	sb.WriteString("Format Instructions: ")
	sb.WriteString(formatInstructions[contentType])
	sb.WriteString("\n")

	if len(additionalContext) > 0 {
		sb.WriteString("\nAdditional Context:\n")
		for _, line := range contextLines(additionalContext, "- ") {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(constant.ContentPromptClosing)
	return sb.String()
}

func buildEmailPrompt(prompt string, style entity.WritingStyle, additionalContext map[string]interface{}) string {
	var sb strings.Builder
	sb.WriteString(constant.EmailSkeleton)
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "Style: %s\n", style)
	fmt.Fprintf(&sb, "Context: %s\n", strings.Join(contextLines(additionalContext, ""), "\n"))
	fmt.Fprintf(&sb, "Prompt: %s\n", prompt)
	return sb.String()
}

// contextLines renders "key: value" pairs in sorted key order.
func contextLines(ctx map[string]interface{}, prefix string) []string {
	keys := make([]string, 0, len(ctx))
	for k := range ctx {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s%s: %v", prefix, k, ctx[k]))
	}
	return lines
}

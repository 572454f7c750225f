package entity

import "fmt"

type SummaryLength string
type ContentType string
type WritingStyle string

const (
	SummaryLengthShort  SummaryLength = "short"
	SummaryLengthMedium SummaryLength = "medium"
	SummaryLengthLong   SummaryLength = "long"

	ContentTypeEmail   ContentType = "email"
	ContentTypeReport  ContentType = "report"
	ContentTypeArticle ContentType = "article"
	ContentTypeOutline ContentType = "outline"

	WritingStyleProfessional WritingStyle = "professional"
	WritingStyleCasual       WritingStyle = "casual"
	WritingStyleAcademic     WritingStyle = "academic"
	WritingStyleTechnical    WritingStyle = "technical"
	WritingStyleCreative     WritingStyle = "creative"
)

// DefaultSummaryLength is used when a summarise request omits the length.
const DefaultSummaryLength = SummaryLengthMedium

func (l SummaryLength) IsValid() bool {
	switch l {
	case SummaryLengthShort, SummaryLengthMedium, SummaryLengthLong:
		return true
	}
	return false
}

func (t ContentType) IsValid() bool {
	switch t {
	case ContentTypeEmail, ContentTypeReport, ContentTypeArticle, ContentTypeOutline:
		return true
	}
	return false
}

func (s WritingStyle) IsValid() bool {
	switch s {
	case WritingStyleProfessional, WritingStyleCasual, WritingStyleAcademic, WritingStyleTechnical, WritingStyleCreative:
		return true
	}
	return false
}

// ParseSummaryLength maps an empty value to DefaultSummaryLength.
func ParseSummaryLength(raw string) (SummaryLength, error) {
	if raw == "" {
		return DefaultSummaryLength, nil
	}
	l := SummaryLength(raw)
	if !l.IsValid() {
		return "", fmt.Errorf("invalid summary length %q", raw)
	}
	return l, nil
}

func ParseContentType(raw string) (ContentType, error) {
	t := ContentType(raw)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid content type %q", raw)
	}
	return t, nil
}

func ParseWritingStyle(raw string) (WritingStyle, error) {
	s := WritingStyle(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid writing style %q", raw)
	}
	return s, nil
}

package constant

// Summary length fragments.
const (
	SummaryLengthShortInstruction  = "Provide a very concise summary in 2-3 sentences."
	SummaryLengthMediumInstruction = "Provide a balanced summary in 4-5 sentences."
	SummaryLengthLongInstruction   = "Provide a detailed summary in 6-8 sentences."
)

const SummaryPromptTemplate = `Please summarize the following text. %s

Text to summarize:
%s

Additional instructions:
- Maintain the key points and main ideas
- Use clear and professional language
- Ensure the summary is coherent and well-structured`

const QuestionPromptInstructions = `Instructions:
- Answer the question based on the provided context
- Be specific and accurate
- If the answer cannot be derived from the context, say so
- Use clear and professional language`

// EmailSkeleton is sent verbatim ahead of the style, context and prompt lines.
const EmailSkeleton = `Please generate a professional email with the following HTML structure:
<email>
    <header>
        <title>Generated Content</title>
        <subject>Subject: [Email Subject]</subject>
    </header>
    <body>
        <greeting>Dear [Recipient],</greeting>
        <opening>I hope this email finds you well.</opening>
        <content>
            [Main content paragraphs]
        </content>
        <closing>
            <signature>Best regards,</signature>
            <name>[Sender Name]</name>
            <position>[Position]</position>
        </closing>
    </body>
</email>`

// Writing style fragments.
const (
	StyleProfessionalInstruction = "Use formal language, clear structure, and business-appropriate terminology."
	StyleCasualInstruction       = "Use conversational tone, simple language, and relatable examples."
	StyleAcademicInstruction     = "Use scholarly language, cite sources where relevant, and maintain academic rigor."
	StyleTechnicalInstruction    = "Use precise technical terminology and clear explanations of complex concepts."
	StyleCreativeInstruction     = "Use descriptive language, engaging narrative, and creative expressions."
)

// Content format fragments. Email uses EmailSkeleton instead.
const (
	FormatReportInstruction = `Create a structured report with:
- Executive summary
- Key findings
- Detailed analysis
- Recommendations`

	FormatArticleInstruction = `Write an engaging article with:
- Attention-grabbing introduction
- Well-developed paragraphs
- Clear topic transitions
- Strong conclusion`

	FormatOutlineInstruction = `Generate a detailed outline with:
- Main topics
- Subtopics
- Key points under each section`
)

const ContentPromptClosing = "Please ensure the output is well-structured and follows all specified guidelines."

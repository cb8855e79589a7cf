package agent

import (
	"context"
	"strings"
)

// Agent is a pre-configured handle that can answer a query. Handles
// are built once at start-up and shared read-only across requests.
type Agent interface {
	Name() string
	Run(ctx context.Context, query string) (string, error)
}

// stripMarkdownCodeBlock removes markdown code block formatting if present.
// Models regularly wrap the requested JSON in ```json fences.
func stripMarkdownCodeBlock(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		firstNewline := strings.Index(content, "\n")
		if firstNewline == -1 {
			return content
		}

		closingBackticks := strings.LastIndex(content, "```")
		if closingBackticks == -1 || closingBackticks <= firstNewline {
			return content
		}

		content = content[firstNewline+1 : closingBackticks]
		content = strings.TrimSpace(content)
	}

	return content
}

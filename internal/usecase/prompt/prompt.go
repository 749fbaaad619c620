// Package prompt assembles the chat messages sent to the LLM: an
// intent-appropriate numbered context block substituted into a fixed user
// template, paired with the fixed system prompt.
package prompt

import (
	"fmt"
	"strings"

	"github.com/shoplens/shoplens/internal/domain"
	"github.com/shoplens/shoplens/internal/domain/intent"
)

// ContentFor selects the document rendering for the given intent: consumer
// content for personal queries, business content (falling back to consumer
// content when absent) for business queries.
func ContentFor(doc domain.Document, label intent.Intent) string {
	if label == intent.Business && doc.BusinessContent != "" {
		return doc.BusinessContent
	}
	return doc.Content
}

// Assemble builds the system+user message pair for a query and its retrieved
// context. Pure transformation: no I/O, no state.
func Assemble(query string, hits []domain.Document, label intent.Intent) []domain.Message {
	var b strings.Builder
	for i, doc := range hits {
		fmt.Fprintf(&b, "%d. %s\n", i+1, ContentFor(doc, label))
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, b.String(), query)

	return []domain.Message{
		{Role: domain.RoleSystem, Content: systemPrompt},
		{Role: domain.RoleUser, Content: userPrompt},
	}
}

package prompt

import (
	"strings"
	"testing"

	"github.com/shoplens/shoplens/internal/domain"
	"github.com/shoplens/shoplens/internal/domain/intent"
)

func sampleDocs() []domain.Document {
	return []domain.Document{
		{
			ID:              "order_0",
			Content:         "Product: Chairs from Furniture category. Price: $50.00.",
			BusinessContent: "Product: Chairs from Furniture category. Profit: $-5.00.",
		},
		{
			ID:      "order_1",
			Content: "Product: Saree from Clothing category. Price: $60.00.",
			// No business rendering: falls back to consumer content.
		},
	}
}

func TestContentFor(t *testing.T) {
	docs := sampleDocs()

	if got := ContentFor(docs[0], intent.Personal); got != docs[0].Content {
		t.Errorf("personal content = %q", got)
	}
	if got := ContentFor(docs[0], intent.Business); got != docs[0].BusinessContent {
		t.Errorf("business content = %q", got)
	}
	if got := ContentFor(docs[1], intent.Business); got != docs[1].Content {
		t.Errorf("missing business content should fall back, got %q", got)
	}
}

func TestAssemble(t *testing.T) {
	msgs := Assemble("gift ideas", sampleDocs(), intent.Personal)

	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if msgs[0].Role != domain.RoleSystem || msgs[1].Role != domain.RoleUser {
		t.Errorf("roles = %q, %q", msgs[0].Role, msgs[1].Role)
	}
	if msgs[0].Content != systemPrompt {
		t.Error("system message is not the fixed system prompt")
	}

	user := msgs[1].Content
	if !strings.Contains(user, "User Question: gift ideas") {
		t.Errorf("user prompt missing the query:\n%s", user)
	}
	if !strings.Contains(user, "1. Product: Chairs") || !strings.Contains(user, "2. Product: Saree") {
		t.Errorf("context block not numbered:\n%s", user)
	}
}

// A personal prompt must not carry the business renderings.
func TestAssemblePersonalOmitsProfit(t *testing.T) {
	msgs := Assemble("gift ideas", sampleDocs(), intent.Personal)

	if strings.Contains(msgs[1].Content, "Profit: $-5.00") {
		t.Errorf("personal prompt leaked business content:\n%s", msgs[1].Content)
	}
}

func TestAssembleBusinessUsesBusinessContent(t *testing.T) {
	msgs := Assemble("profitability review", sampleDocs(), intent.Business)

	if !strings.Contains(msgs[1].Content, "Profit: $-5.00") {
		t.Errorf("business prompt missing business content:\n%s", msgs[1].Content)
	}
}

func TestAssembleNoHits(t *testing.T) {
	msgs := Assemble("anything", nil, intent.Personal)

	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if !strings.Contains(msgs[1].Content, "User Question: anything") {
		t.Error("user prompt missing the query")
	}
}

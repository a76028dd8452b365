package recommend

import (
	"context"

	"gourmet-bot-be/pkg/hotpepper"
	"gourmet-bot-be/pkg/llm"
	"gourmet-bot-be/pkg/textparse"
)

// Fallback texts used when a section is missing or the model call
// fails. Enrichment never aborts a turn.
const (
	DefaultIntro = "雰囲気の良いおすすめ店です。"
	DefaultItem  = "料理のおすすめ情報は取得できませんでした。"
	DefaultTags  = "#おすすめ"
)

// enrich fills GeneratedIntro, GeneratedItem and GeneratedTags on each
// shop with one model call per shop. A failed call or an unparsable
// reply degrades to the default text per field.
func (p *Pipeline) enrich(ctx context.Context, shops []hotpepper.Shop) []hotpepper.Shop {
	for i := range shops {
		p.enrichOne(ctx, &shops[i])
	}
	return shops
}

func (p *Pipeline) enrichOne(ctx context.Context, shop *hotpepper.Shop) {
	reply, err := llm.Complete(ctx, p.provider, enrichmentSystemPrompt, shopDetail(*shop))
	if err != nil {
		reply = ""
	}

	sections := textparse.ParseSections(reply)
	shop.GeneratedIntro = sections.Get("紹介文", DefaultIntro)
	shop.GeneratedItem = sections.Get("おすすめの一品", DefaultItem)
	shop.GeneratedTags = sections.Get("タグ", DefaultTags)
}

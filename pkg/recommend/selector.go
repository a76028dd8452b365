package recommend

import (
	"context"
	"fmt"

	"gourmet-bot-be/pkg/hotpepper"
	"gourmet-bot-be/pkg/llm"
	"gourmet-bot-be/pkg/textparse"
)

// selectFromPool asks the model to pick shops, then resolves the
// announced 店名 lines back against the pool. Names the model invents
// are dropped rather than treated as errors; an empty result is the
// caller's recoverable "no selection" case.
func (p *Pipeline) selectFromPool(ctx context.Context, systemPrompt string, pool []hotpepper.Shop) ([]hotpepper.Shop, error) {
	reply, err := llm.Complete(ctx, p.provider, systemPrompt, shopList(pool))
	if err != nil {
		return nil, fmt.Errorf("shop selection failed: %w", err)
	}

	names := textparse.ShopNames(reply)
	return matchPool(names, pool), nil
}

// matchPool maps emitted names onto pool entries, tolerating whitespace
// differences and partial names. Each pool entry is used at most once.
func matchPool(names []string, pool []hotpepper.Shop) []hotpepper.Shop {
	var selected []hotpepper.Shop
	used := make(map[string]bool)

	for _, name := range names {
		for _, shop := range pool {
			if used[shop.ID] {
				continue
			}
			if textparse.SameName(name, shop.Name) {
				selected = append(selected, shop)
				used[shop.ID] = true
				break
			}
		}
	}
	return selected
}

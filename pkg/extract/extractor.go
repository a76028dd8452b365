// Package extract turns free-form user text into structured search
// conditions by prompting an LLM and parsing its labeled reply.
package extract

import (
	"context"
	"fmt"
	"strings"

	"gourmet-bot-be/pkg/llm"
	"gourmet-bot-be/pkg/store"
	"gourmet-bot-be/pkg/textparse"
)

const systemPrompt = `あなたはレストラン検索の条件抽出アシスタントです。
ユーザーのメッセージから以下の項目を抽出し、必ずこの形式で出力してください。

場所: (地名や駅名。不明なら「未指定」)
ジャンル: (料理ジャンル。不明なら「未指定」)
予算: (予算の目安。不明なら「未指定」)
キーワード: (その他の検索キーワード。不明なら「未指定」)
こだわり条件: (個室・静か・飲み放題などの希望。不明なら「なし」)

説明や前置きは不要です。上記5行のみを出力してください。`

var labels = []string{"場所", "ジャンル", "予算", "キーワード", "こだわり条件"}

// unspecified values the model uses when a field is absent.
var unspecified = map[string]bool{
	"未指定": true,
	"なし":  true,
	"不明":  true,
}

type Extractor struct {
	provider llm.LLMProvider
}

func NewExtractor(provider llm.LLMProvider) *Extractor {
	return &Extractor{provider: provider}
}

// Extract asks the model to label the user's message and returns the
// parsed conditions. Absent fields come back empty so that merging a
// delta into an existing filter never erases a known value.
func (e *Extractor) Extract(ctx context.Context, text string) (store.Filter, error) {
	reply, err := llm.Complete(ctx, e.provider, systemPrompt, text)
	if err != nil {
		return store.Filter{}, fmt.Errorf("condition extraction failed: %w", err)
	}

	parsed := textparse.ParseLabeledLines(reply, labels)

	return store.Filter{
		Location: normalize(parsed.Get("場所")),
		Genre:    normalize(parsed.Get("ジャンル")),
		Budget:   normalize(parsed.Get("予算")),
		Keyword:  normalize(parsed.Get("キーワード")),
		Wishes:   normalize(parsed.Get("こだわり条件")),
	}, nil
}

func normalize(value string) string {
	value = strings.TrimSpace(value)
	if unspecified[value] {
		return ""
	}
	return value
}

package recommend

import (
	"fmt"
	"strings"

	"gourmet-bot-be/pkg/hotpepper"
	"gourmet-bot-be/pkg/store"
)

const selectionFormat = "形式：\n- 店名: ○○○\n- 理由: ○○○"

// shopList renders the candidate pool the way the selection prompts
// expect it, one shop per line with its catch-phrase.
func shopList(shops []hotpepper.Shop) string {
	lines := make([]string, 0, len(shops))
	for _, s := range shops {
		lines = append(lines, fmt.Sprintf("店名: %s / 紹介: %s", s.Name, s.Catch))
	}
	return strings.Join(lines, "\n")
}

func newSearchPrompt(request, keyword string, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ユーザーの希望は「%s」です。以下のお店から希望に合いそうな%d件を選んでください。", request, count)
	if keyword != "" {
		fmt.Fprintf(&b, "できれば「%s」の要素が入っているものを優先してください。", keyword)
	}
	b.WriteString("\n")
	b.WriteString(selectionFormat)
	return b.String()
}

func refinePrompt(location, genre, request string, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "前回の検索場所: %s\n", location)
	fmt.Fprintf(&b, "前回の検索ジャンル: %s\n", genre)
	if genre != "" {
		fmt.Fprintf(&b, "（ジャンルは必ず「%s」の範囲で選んでください）\n", genre)
	}
	fmt.Fprintf(&b, "追加のご希望: %s\n\n", request)
	fmt.Fprintf(&b, "上記をもとに、以下の店舗リストから%d件選び、理由を添えてください。\n", count)
	b.WriteString(selectionFormat)
	return b.String()
}

func nextCandidatePrompt(original string, filter store.Filter, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ユーザーの希望は「%s」です。\n", original)
	if filter.Location != "" {
		fmt.Fprintf(&b, "検索場所: %s\n", filter.Location)
	}
	if filter.Genre != "" {
		fmt.Fprintf(&b, "検索ジャンル: %s\n", filter.Genre)
	}
	if filter.Keyword != "" {
		fmt.Fprintf(&b, "キーワード: %s\n", filter.Keyword)
	}
	fmt.Fprintf(&b, "以下の残り候補から違う%d件を選び、理由を添えてください。\n", count)
	b.WriteString(selectionFormat)
	return b.String()
}

const enrichmentSystemPrompt = `以下の飲食店情報をもとに、【紹介文】と【おすすめの一品】と【タグ】をユーザーの印象に残るよう魅力的に自然な日本語で簡潔に生成してください。また、ユーザーが一目で見やすいように紹介文を工夫してください。
▼出力フォーマット：
【紹介文】
・店名のあとには必ず改行し、次の説明文へ
・顔文字や絵文字も1つ添えると魅力的です
・全体で2行以内を目安にまとめてください
・店名を《店名》で囲ってください

【おすすめの一品】
・料理名のあとに必ず改行し、次の説明文へ
・全体で1行以内を目安にまとめてください
・料理名を《料理名》で囲ってください

【タグ】
・Instagram風のハッシュタグとして使える、お店の特徴を表すキーワードを3つ日本語で抽出してください
・#記号をつけて1行で出力してください（例：#デート #夜景 #コスパ）`

// shopDetail is the user-content side of the enrichment call.
func shopDetail(s hotpepper.Shop) string {
	return fmt.Sprintf("店名: %s\nジャンル: %s\n紹介: %s\n予算: %s\n営業時間: %s",
		s.Name, s.Genre, s.Catch, s.Budget, s.Open)
}

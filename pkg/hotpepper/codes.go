package hotpepper

import "strings"

// Static lookup tables mapping extracted Japanese genre/budget words to the
// gourmet API's structured codes. Lookup is substring based in both
// directions so that "焼肉食べたい" still resolves to the yakiniku code.

var genreCodes = map[string]string{
	"居酒屋":     "G001",
	"ダイニングバー": "G002",
	"創作料理":    "G003",
	"和食":      "G004",
	"洋食":      "G005",
	"イタリアン":   "G006",
	"フレンチ":    "G006",
	"中華":      "G007",
	"焼肉":      "G008",
	"ホルモン":    "G008",
	"韓国料理":    "G017",
	"アジア料理":   "G009",
	"エスニック":   "G009",
	"各国料理":    "G010",
	"カラオケ":    "G011",
	"パーティ":    "G011",
	"バー":      "G012",
	"カクテル":    "G012",
	"ラーメン":    "G013",
	"お好み焼き":   "G016",
	"もんじゃ":    "G016",
	"カフェ":     "G014",
	"スイーツ":    "G014",
	"その他グルメ":  "G015",
}

var budgetCodes = map[string]string{
	"500円以下":   "B009",
	"1000円以下":  "B010",
	"1500円以下":  "B011",
	"2000円以下":  "B001",
	"3000円以下":  "B002",
	"4000円以下":  "B003",
	"5000円以下":  "B008",
	"7000円以下":  "B004",
	"10000円以下": "B005",
	"15000円以下": "B006",
	"安い":       "B010",
	"格安":       "B009",
	"リーズナブル":   "B001",
	"普通":       "B002",
	"高め":       "B008",
	"高級":       "B005",
}

// GenreCode resolves a free-text genre to an API code, "" when unknown.
func GenreCode(genre string) string {
	if genre == "" {
		return ""
	}
	if code, ok := genreCodes[genre]; ok {
		return code
	}
	for word, code := range genreCodes {
		if strings.Contains(genre, word) || strings.Contains(word, genre) {
			return code
		}
	}
	return ""
}

// BudgetCode resolves a free-text budget expression to an API code, ""
// when unknown.
func BudgetCode(budget string) string {
	if budget == "" {
		return ""
	}
	if code, ok := budgetCodes[budget]; ok {
		return code
	}
	for word, code := range budgetCodes {
		if strings.Contains(budget, word) {
			return code
		}
	}
	return ""
}

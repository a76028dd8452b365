package mapper

import (
	"regexp"
	"strings"

	"gourmet-bot-be/pkg/hotpepper"
	"gourmet-bot-be/pkg/line"
)

// budgetPattern accepts the catalog's numeric price bands, e.g.
// "2001〜3000円". Anything else renders as undetermined: the catalog
// sometimes returns prose here.
var budgetPattern = regexp.MustCompile(`^[0-9]{3,4}[〜~ー−－][0-9]{3,4}円$`)

// ShopFlexMapper renders recommended shops into LINE flex messages.
type ShopFlexMapper struct{}

func NewShopFlexMapper() *ShopFlexMapper {
	return &ShopFlexMapper{}
}

// ToCarousel renders the shops as a flex carousel. A single shop still
// renders as a one-bubble carousel, which LINE displays as one card.
func (m *ShopFlexMapper) ToCarousel(altText string, shops []hotpepper.Shop) line.FlexMessage {
	bubbles := make([]line.Bubble, 0, len(shops))
	for _, shop := range shops {
		bubbles = append(bubbles, m.toBubble(shop))
	}
	return line.NewFlexMessage(altText, line.NewCarousel(bubbles))
}

func (m *ShopFlexMapper) toBubble(shop hotpepper.Shop) line.Bubble {
	contents := []line.FlexComponent{
		line.FlexText{Type: "text", Text: shop.Name, Weight: "bold", Size: "md", Wrap: true},
		line.FlexText{Type: "text", Text: shop.GeneratedTags, Size: "sm", Color: "#555555", Wrap: true},
		line.FlexText{Type: "text", Text: "📖 【紹介文】", Size: "sm", Wrap: true},
	}
	contents = append(contents, textLines(shop.GeneratedIntro, 3)...)
	contents = append(contents,
		line.FlexText{Type: "text", Text: "🍴 【おすすめの一品】", Size: "sm", Wrap: true},
	)
	contents = append(contents, textLines(shop.GeneratedItem, 2)...)
	contents = append(contents,
		line.FlexText{Type: "text", Text: BudgetLabel(shop.Budget), Size: "sm", Color: "#ff6600"},
		line.FlexText{Type: "text", Text: smokingLabel(shop.NonSmoking), Size: "sm", Color: "#888888"},
		line.FlexText{Type: "text", Text: addressLabel(shop.Address), Size: "sm", Color: "#888888", Wrap: true},
	)

	bubble := line.Bubble{
		Type: "bubble",
		Body: &line.FlexBox{
			Type:     "box",
			Layout:   "vertical",
			Spacing:  "xs",
			Contents: contents,
		},
		Footer: &line.FlexBox{
			Type:    "box",
			Layout:  "vertical",
			Spacing: "sm",
			Contents: []line.FlexComponent{
				line.FlexButton{
					Type:  "button",
					Style: "primary",
					Action: line.Action{
						Type:  "uri",
						Label: "詳細を見る",
						URI:   shop.DetailURL,
					},
				},
			},
		},
	}
	if shop.PhotoURL != "" {
		bubble.Hero = &line.FlexImage{
			Type:        "image",
			URL:         shop.PhotoURL,
			Size:        "full",
			AspectRatio: "4:3",
			AspectMode:  "cover",
		}
	}
	return bubble
}

// BudgetLabel validates the price band before display.
func BudgetLabel(budget string) string {
	if budgetPattern.MatchString(budget) {
		return "💴 " + budget
	}
	return "💴 情報未定"
}

func smokingLabel(nonSmoking string) string {
	if nonSmoking != "" {
		return "🚬 " + nonSmoking
	}
	return "🚬 喫煙情報なし"
}

func addressLabel(address string) string {
	if address != "" {
		return address
	}
	return "📍 住所情報なし"
}

// textLines splits generated text into at most max flex text rows.
func textLines(text string, max int) []line.FlexComponent {
	var out []line.FlexComponent
	for _, l := range strings.Split(text, "\n") {
		if len(out) == max {
			break
		}
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		out = append(out, line.FlexText{Type: "text", Text: l, Size: "sm", Wrap: true})
	}
	return out
}

package line

// Message is any payload accepted by the reply and push endpoints.
type Message interface {
	messageType() string
}

type TextMessage struct {
	Type       string      `json:"type"`
	Text       string      `json:"text"`
	QuickReply *QuickReply `json:"quickReply,omitempty"`
}

func NewTextMessage(text string) TextMessage {
	return TextMessage{Type: "text", Text: text}
}

func (TextMessage) messageType() string { return "text" }

type FlexMessage struct {
	Type     string        `json:"type"`
	AltText  string        `json:"altText"`
	Contents FlexContainer `json:"contents"`
}

func NewFlexMessage(altText string, contents FlexContainer) FlexMessage {
	return FlexMessage{Type: "flex", AltText: altText, Contents: contents}
}

func (FlexMessage) messageType() string { return "flex" }

// FlexContainer is either a single bubble or a carousel of bubbles.
type FlexContainer interface {
	containerType() string
}

type Carousel struct {
	Type     string   `json:"type"`
	Contents []Bubble `json:"contents"`
}

func NewCarousel(bubbles []Bubble) Carousel {
	return Carousel{Type: "carousel", Contents: bubbles}
}

func (Carousel) containerType() string { return "carousel" }

type Bubble struct {
	Type   string     `json:"type"`
	Hero   *FlexImage `json:"hero,omitempty"`
	Body   *FlexBox   `json:"body,omitempty"`
	Footer *FlexBox   `json:"footer,omitempty"`
}

func (Bubble) containerType() string { return "bubble" }

type FlexBox struct {
	Type     string          `json:"type"`
	Layout   string          `json:"layout"`
	Spacing  string          `json:"spacing,omitempty"`
	Contents []FlexComponent `json:"contents"`
}

type FlexComponent interface {
	componentType() string
}

type FlexText struct {
	Type   string `json:"type"`
	Text   string `json:"text"`
	Weight string `json:"weight,omitempty"`
	Size   string `json:"size,omitempty"`
	Color  string `json:"color,omitempty"`
	Wrap   bool   `json:"wrap,omitempty"`
}

func (FlexText) componentType() string { return "text" }

type FlexImage struct {
	Type        string `json:"type"`
	URL         string `json:"url"`
	Size        string `json:"size,omitempty"`
	AspectRatio string `json:"aspectRatio,omitempty"`
	AspectMode  string `json:"aspectMode,omitempty"`
}

func (FlexImage) componentType() string { return "image" }

type FlexButton struct {
	Type   string `json:"type"`
	Style  string `json:"style,omitempty"`
	Action Action `json:"action"`
}

func (FlexButton) componentType() string { return "button" }

type Action struct {
	Type  string `json:"type"`
	Label string `json:"label,omitempty"`
	URI   string `json:"uri,omitempty"`
	Text  string `json:"text,omitempty"`
}

type QuickReply struct {
	Items []QuickReplyItem `json:"items"`
}

type QuickReplyItem struct {
	Type   string `json:"type"`
	Action Action `json:"action"`
}

// NewMessageQuickReply builds a quick reply whose buttons send back
// plain text messages.
func NewMessageQuickReply(labelTexts map[string]string, order []string) *QuickReply {
	items := make([]QuickReplyItem, 0, len(order))
	for _, label := range order {
		items = append(items, QuickReplyItem{
			Type: "action",
			Action: Action{
				Type:  "message",
				Label: label,
				Text:  labelTexts[label],
			},
		})
	}
	return &QuickReply{Items: items}
}

package intent

// Keyword lexicons, kept as plain data so recall can be tuned without
// touching the classification logic.

// CancelKeywords flag a subscription cancellation request.
var CancelKeywords = []string{
	"解約",
	"退会",
	"サブスク解除",
	"キャンセルしたい",
	"unsubscribe",
}

// PlanChangeKeywords flag a request to see or switch plans.
var PlanChangeKeywords = []string{
	"プラン変更",
	"プランを変更",
	"プラン確認",
	"料金プラン",
	"アップグレード",
	"ダウングレード",
}

// PlanSelectKeywords match the quick-reply texts offered on the upsell
// and plan-change screens. Populated from the plan catalog labels at
// startup via RegisterPlanLabels.
var PlanSelectKeywords = []string{}

// RegisterPlanLabels installs the selectable plan labels. Called once
// during bootstrap with the plan catalog.
func RegisterPlanLabels(labels []string) {
	PlanSelectKeywords = append([]string(nil), labels...)
}

// NextKeywords flag a "show me a different shop" turn.
var NextKeywords = []string{
	"違う",
	"他の",
	"他に",
	"別の",
	"ほかの",
	"次の",
}

// RefineKeywords flag a preference added onto the current search: venue
// mood, price, occasion, amenity, popularity. Broad on purpose.
var RefineKeywords = []string{
	"もっと",
	"もう少し",
	"もう",
	"ちょっと",
	"できる",
	"静か",
	"個室",
	"夜",
	"おしゃれ",
	"雰囲気の良い",
	"映え",
	"インスタ映え",
	"美味しい",
	"高級",
	"安い",
	"コスパ",
	"駅近",
	"口コミ",
	"評判",
	"賑やか",
	"飲み放題",
	"予約",
	"落ち着いた",
	"子連れ",
	"駐車場",
	"深夜",
	"使える",
	"同じ",
	"条件",
	"場所",
	"ランチ",
	"ヘルシー",
	"健康志向",
	"ペット",
	"テラス",
	"地元",
	"ご当地",
	"記念日",
	"誕生日",
	"デート",
	"流行り",
	"バイキング",
	"食べ放題",
	"喫煙",
	"禁煙",
	"分煙",
	"Wi-Fi",
	"老舗",
	"名店",
	"スイーツ",
	"デザート",
	"貸切",
}

package constant

// User-facing reply texts. Kept in one place so wording changes do not
// touch the pipeline.
const (
	MsgSearching       = "🔎 ご希望に合うお店を検索しています…"
	MsgNoMatch         = "条件に合うお店が見つかりませんでした🙏"
	MsgNoCloseMatch    = "条件に近いお店が見つかりませんでした🙏"
	MsgExhausted       = "すでにすべてのお店をご紹介しました！また最初から条件を送ってください🙏"
	MsgTurnFailed      = "申し訳ありません、処理中にエラーが発生しました。もう一度お試しください🙏"
	MsgAskNext         = "気に入らない場合は、他の候補も見てみますか？"
	MsgNothingToCancel = "現在ご契約中のプランはありません。"

	MsgQuotaExceeded = "🔒 今月の無料利用回数を使い切りました。\n続けてご利用いただくには、以下のプランからお選びください👇"
	MsgPlanOverview  = "ご利用可能なプランはこちらです👇\nご希望のプランを選択してください。"
	MsgCheckoutLead  = "こちらからお手続きください👇\n"
	MsgPortalLead    = "解約のお手続きはこちらから👇\n"

	QuickReplyNextLabel = "違う店が見たい"
	QuickReplyNextText  = "違う店"

	AltTextNewSearch = "おすすめのお店をご紹介します！"
	AltTextRefine    = "ご希望に合わせて新しいお店をご紹介します！"
	AltTextNext      = "他の候補をご紹介します！"
)

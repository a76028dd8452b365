package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gourmet-bot-be/internal/constant"
	"gourmet-bot-be/internal/dto"
	"gourmet-bot-be/internal/entity"
	"gourmet-bot-be/pkg/extract"
	"gourmet-bot-be/pkg/hotpepper"
	"gourmet-bot-be/pkg/intent"
	"gourmet-bot-be/pkg/line"
	"gourmet-bot-be/pkg/llm"
	"gourmet-bot-be/pkg/quota"
	"gourmet-bot-be/pkg/recommend"
	"gourmet-bot-be/pkg/store"
)

// capturedCall is one LINE API request the fake platform received.
type capturedCall struct {
	Path string
	Body map[string]interface{}
}

// fakeLinePlatform stands in for the messaging API, recording every
// reply and push the bot sends.
type fakeLinePlatform struct {
	mu    sync.Mutex
	calls []capturedCall
}

func (f *fakeLinePlatform) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var body map[string]interface{}
		_ = json.Unmarshal(raw, &body)
		f.mu.Lock()
		f.calls = append(f.calls, capturedCall{Path: r.URL.Path, Body: body})
		f.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	})
}

func (f *fakeLinePlatform) replies() []capturedCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []capturedCall
	for _, c := range f.calls {
		if strings.HasSuffix(c.Path, "/reply") {
			out = append(out, c)
		}
	}
	return out
}

// replyTexts flattens the text of every message sent via reply.
func (f *fakeLinePlatform) replyTexts() []string {
	var out []string
	for _, c := range f.replies() {
		msgs, _ := c.Body["messages"].([]interface{})
		for _, m := range msgs {
			msg, _ := m.(map[string]interface{})
			if text, ok := msg["text"].(string); ok {
				out = append(out, text)
			}
		}
	}
	return out
}

type memQuotaStore struct {
	accounts map[string]*quota.Account
}

func (s *memQuotaStore) Find(ctx context.Context, userID string) (*quota.Account, error) {
	if a, ok := s.accounts[userID]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (s *memQuotaStore) Create(ctx context.Context, account *quota.Account) error {
	cp := *account
	s.accounts[account.UserID] = &cp
	return nil
}

func (s *memQuotaStore) Update(ctx context.Context, account *quota.Account) error {
	cp := *account
	s.accounts[account.UserID] = &cp
	return nil
}

// routedProvider answers extraction, selection and enrichment calls
// by inspecting the system instruction of each request. Selection
// replies name the first shop of whatever pool the prompt carried.
type routedProvider struct {
	extraction string
	enrichment string
}

func (p *routedProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	system := history[0].Content
	switch {
	case strings.Contains(system, "条件抽出"):
		return p.extraction, nil
	case strings.Contains(system, "出力フォーマット"):
		return p.enrichment, nil
	default:
		pool := history[len(history)-1].Content
		for _, ln := range strings.Split(pool, "\n") {
			if name, ok := strings.CutPrefix(ln, "店名: "); ok {
				name, _, _ = strings.Cut(name, " / ")
				return "- 店名: " + name + "\n- 理由: 条件に合っています", nil
			}
		}
		return "", nil
	}
}

func (p *routedProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "system", Content: prompt}})
}

type memCatalogAPI struct {
	shops []hotpepper.Shop
	calls int
}

func (c *memCatalogAPI) Search(ctx context.Context, keyword, genreCode, budgetCode string) ([]hotpepper.Shop, error) {
	c.calls++
	return c.shops, nil
}

type memSessions struct {
	data map[string]*store.Session
}

func (r *memSessions) Save(session *store.Session) { r.data[session.UserID] = session }

func (r *memSessions) Get(userID string) (*store.Session, bool) {
	s, ok := r.data[userID]
	return s, ok
}

func (r *memSessions) Delete(userID string) { delete(r.data, userID) }

type botFixture struct {
	svc      IBotService
	platform *fakeLinePlatform
	server   *httptest.Server
	quota    *memQuotaStore
	sessions *memSessions
	catalog  *memCatalogAPI
	users    *fakeUserRepo
	payments *fakeGateway
}

func newBotFixture(t *testing.T) *botFixture {
	t.Helper()

	platform := &fakeLinePlatform{}
	srv := httptest.NewServer(platform.handler())
	t.Cleanup(srv.Close)

	lineClient := line.NewClient("token", "secret")
	lineClient.BaseURL = srv.URL

	provider := &routedProvider{
		extraction: "場所: 渋谷\nジャンル: 焼肉\n予算: 未指定\nキーワード: 未指定\nこだわり条件: 未指定",
		enrichment: "【紹介文】\n《炭火焼肉ほたる》\n落ち着いた店内です🔥\n【おすすめの一品】\n《厚切りタン》\n【タグ】\n#焼肉 #渋谷 #デート",
	}

	quotaStore := &memQuotaStore{accounts: map[string]*quota.Account{}}
	planCatalog := quota.DefaultCatalog()
	intent.RegisterPlanLabels(planCatalog.Labels())
	sessions := &memSessions{data: map[string]*store.Session{}}
	shopCatalog := &memCatalogAPI{shops: []hotpepper.Shop{
		{ID: "J001", Name: "炭火焼肉ほたる", Genre: "焼肉", Catch: "炭火で焼く", Budget: "3000〜4000円"},
		{ID: "J002", Name: "大衆酒場たぬき", Genre: "居酒屋", Catch: "安くてうまい"},
	}}

	users := newFakeUserRepo()
	gw := &fakeGateway{}
	payments := NewPaymentService(gw, fakeVerifier{valid: true}, users, planCatalog, nil, noopLogger{})

	svc := NewBotService(
		lineClient,
		quota.NewLedger(quotaStore, planCatalog),
		planCatalog,
		extract.NewExtractor(provider),
		recommend.NewPipeline(shopCatalog, provider, sessions, 1),
		sessions,
		payments,
		users,
		nil,
		noopLogger{},
	)

	return &botFixture{
		svc:      svc,
		platform: platform,
		server:   srv,
		quota:    quotaStore,
		sessions: sessions,
		catalog:  shopCatalog,
		users:    users,
		payments: gw,
	}
}

func textEvent(userID, text string) dto.LineEvent {
	return dto.LineEvent{
		Type:       "message",
		ReplyToken: "rt-" + userID,
		Source:     dto.LineSource{Type: "user", UserID: userID},
		Message:    &dto.LineMessage{Type: "text", Text: text},
	}
}

func TestHandleEventIgnoresNonText(t *testing.T) {
	f := newBotFixture(t)

	ev := textEvent("U1", "渋谷で焼肉")
	ev.Message.Type = "sticker"
	require.NoError(t, f.svc.HandleEvent(context.Background(), ev))
	assert.Empty(t, f.platform.calls)
}

func TestHandleEventFirstSearch(t *testing.T) {
	f := newBotFixture(t)

	require.NoError(t, f.svc.HandleEvent(context.Background(), textEvent("U1", "渋谷で焼肉")))

	// First use creates the account and consumes the free turn.
	account := f.quota.accounts["U1"]
	require.NotNil(t, account)
	assert.Equal(t, 1, account.UsageCount)

	// A session with the full pool survives the turn.
	session, ok := f.sessions.Get("U1")
	require.True(t, ok)
	assert.Len(t, session.AllShops, 2)
	assert.Equal(t, []string{"炭火焼肉ほたる"}, session.Shown)

	// The reply carries the carousel and the follow-up prompt.
	replies := f.platform.replies()
	require.Len(t, replies, 1)
	assert.Contains(t, f.platform.replyTexts(), constant.MsgAskNext)
}

func TestHandleEventQuotaDeniedOffersPlans(t *testing.T) {
	f := newBotFixture(t)

	require.NoError(t, f.svc.HandleEvent(context.Background(), textEvent("U1", "渋谷で焼肉")))
	f.sessions.Delete("U1")
	require.NoError(t, f.svc.HandleEvent(context.Background(), textEvent("U1", "新宿で寿司")))

	// The free turn is spent, so the second search is denied with the
	// plan list and no catalog work happens for it.
	texts := f.platform.replyTexts()
	require.NotEmpty(t, texts)
	last := texts[len(texts)-1]
	assert.Contains(t, last, constant.MsgQuotaExceeded)
	assert.Contains(t, last, "スタンダードプラン")
	assert.Equal(t, 1, f.catalog.calls)

	// The upsell carries one quick-reply button per plan, sending the
	// plan label back as message text.
	replies := f.platform.replies()
	body := replies[len(replies)-1].Body
	msgs := body["messages"].([]interface{})
	qr := msgs[len(msgs)-1].(map[string]interface{})["quickReply"].(map[string]interface{})
	items := qr["items"].([]interface{})
	require.Len(t, items, 3)
	var buttonTexts []string
	for _, it := range items {
		action := it.(map[string]interface{})["action"].(map[string]interface{})
		buttonTexts = append(buttonTexts, action["text"].(string))
	}
	assert.Equal(t, []string{"ライトプラン", "スタンダードプラン", "プレミアムプラン"}, buttonTexts)
}

func TestHandleEventSubscriberNotDenied(t *testing.T) {
	f := newBotFixture(t)
	f.quota.accounts["U1"] = &quota.Account{
		UserID:     "U1",
		Subscribed: true,
		PlanRef:    "premium",
		UsageCount: 9000,
		UsageMonth: "2026-08",
	}

	require.NoError(t, f.svc.HandleEvent(context.Background(), textEvent("U1", "渋谷で焼肉")))
	assert.NotContains(t, strings.Join(f.platform.replyTexts(), "\n"), constant.MsgQuotaExceeded)
}

func TestHandleEventNextCandidateReusesPool(t *testing.T) {
	f := newBotFixture(t)
	f.quota.accounts["U1"] = &quota.Account{UserID: "U1", Subscribed: true, PlanRef: "premium"}

	require.NoError(t, f.svc.HandleEvent(context.Background(), textEvent("U1", "渋谷で焼肉")))

	// The second turn asks for another shop and must not hit the
	// shop catalog again.
	f.platform.calls = nil
	require.NoError(t, f.svc.HandleEvent(context.Background(), textEvent("U1", "違う店")))
	assert.Equal(t, 1, f.catalog.calls)

	session, ok := f.sessions.Get("U1")
	require.True(t, ok)
	assert.Equal(t, []string{"炭火焼肉ほたる", "大衆酒場たぬき"}, session.Shown)
}

func TestHandleEventPlanSelectionSendsCheckout(t *testing.T) {
	f := newBotFixture(t)

	require.NoError(t, f.svc.HandleEvent(context.Background(), textEvent("U1", "スタンダードプランにする")))

	texts := f.platform.replyTexts()
	require.Len(t, texts, 1)
	assert.Contains(t, texts[0], constant.MsgCheckoutLead)
	assert.Contains(t, texts[0], "https://pay.example/standard")
	assert.Equal(t, 1, f.payments.checkoutCalls)

	// Plan handling bypasses the quota ledger entirely.
	assert.Nil(t, f.quota.accounts["U1"])
}

func TestHandleEventChangePlanListsOptions(t *testing.T) {
	f := newBotFixture(t)

	require.NoError(t, f.svc.HandleEvent(context.Background(), textEvent("U1", "プラン変更したい")))

	texts := f.platform.replyTexts()
	require.Len(t, texts, 1)
	assert.Contains(t, texts[0], "ライトプラン")
	assert.Contains(t, texts[0], "プレミアムプラン")
}

func TestHandleEventCancelWithoutSubscription(t *testing.T) {
	f := newBotFixture(t)

	require.NoError(t, f.svc.HandleEvent(context.Background(), textEvent("U1", "解約したい")))

	texts := f.platform.replyTexts()
	require.Len(t, texts, 1)
	assert.Equal(t, constant.MsgNothingToCancel, texts[0])
	assert.Zero(t, f.payments.portalCalls)
}

func TestHandleEventCancelWithSubscription(t *testing.T) {
	f := newBotFixture(t)
	f.users.users["U1"] = &entity.User{Id: "U1", Subscribed: true, PlanRef: "standard", CustomerRef: "U1"}

	require.NoError(t, f.svc.HandleEvent(context.Background(), textEvent("U1", "解約したい")))

	texts := f.platform.replyTexts()
	require.Len(t, texts, 1)
	assert.Contains(t, texts[0], constant.MsgPortalLead)
	assert.Equal(t, 1, f.payments.portalCalls)
}

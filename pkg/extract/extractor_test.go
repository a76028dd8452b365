package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gourmet-bot-be/pkg/llm"
	"gourmet-bot-be/pkg/store"
)

type fixedProvider struct {
	reply string
	err   error
}

func (f *fixedProvider) Chat(context.Context, []llm.Message, ...llm.Option) (string, error) {
	return f.reply, f.err
}

func (f *fixedProvider) Generate(context.Context, string, ...llm.Option) (string, error) {
	return f.reply, f.err
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  store.Filter
	}{
		{
			name:  "full extraction",
			reply: "場所: 渋谷\nジャンル: 焼肉\n予算: 安い\nキーワード: 未指定\nこだわり条件: なし",
			want:  store.Filter{Location: "渋谷", Genre: "焼肉", Budget: "安い"},
		},
		{
			name:  "unspecified markers become empty",
			reply: "場所: 未指定\nジャンル: 未指定\n予算: 不明\nキーワード: 個室\nこだわり条件: 静か",
			want:  store.Filter{Keyword: "個室", Wishes: "静か"},
		},
		{
			name:  "commentary and reordering tolerated",
			reply: "抽出結果は以下の通りです。\nジャンル: イタリアン\n場所: 表参道\n以上です。",
			want:  store.Filter{Location: "表参道", Genre: "イタリアン"},
		},
		{
			name:  "empty reply yields empty filter",
			reply: "",
			want:  store.Filter{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExtractor(&fixedProvider{reply: tt.reply})
			got, err := e.Extract(context.Background(), "渋谷で安い焼肉")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractPropagatesProviderError(t *testing.T) {
	e := NewExtractor(&fixedProvider{err: errors.New("model unavailable")})
	_, err := e.Extract(context.Background(), "渋谷で焼肉")
	assert.Error(t, err)
}

func TestMergeLawEmptyExtractionNeverErases(t *testing.T) {
	prior := store.Filter{Location: "渋谷", Genre: "焼肉", Budget: "安い", Keyword: "個室"}

	e := NewExtractor(&fixedProvider{reply: "場所: 未指定\nジャンル: 未指定\n予算: 未指定\nキーワード: 未指定\nこだわり条件: なし"})
	delta, err := e.Extract(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, prior, prior.Merge(delta))
}

func TestMergeOverwritesOnlyNonEmptyFields(t *testing.T) {
	prior := store.Filter{Location: "渋谷", Genre: "焼肉"}
	delta := store.Filter{Genre: "イタリアン", Wishes: "テラス"}

	got := prior.Merge(delta)
	assert.Equal(t, store.Filter{Location: "渋谷", Genre: "イタリアン", Wishes: "テラス"}, got)
}

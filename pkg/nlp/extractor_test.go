package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	e := NewExtractor()

	t.Run("basic text", func(t *testing.T) {
		doc, err := e.Extract("Hello world. This is a second sentence.")
		require.NoError(t, err)
		require.NotNil(t, doc)

		assert.False(t, doc.Empty())
		assert.Len(t, doc.Sentences, 2)
		assert.NotEmpty(t, doc.Tokens)
		assert.Positive(t, doc.Words())
		assert.Equal(t, "Hello world. This is a second sentence.", doc.Text())
	})

	t.Run("tokens carry pos tags", func(t *testing.T) {
		doc, err := e.Extract("The quick brown fox jumps over the lazy dog.")
		require.NoError(t, err)

		for _, tok := range doc.Tokens {
			assert.NotEmpty(t, tok.Text)
			assert.NotEmpty(t, tok.Tag, "token %q has no tag", tok.Text)
		}
	})

	t.Run("sentences receive their tokens", func(t *testing.T) {
		doc, err := e.Extract("First sentence here. Second one follows.")
		require.NoError(t, err)
		require.Len(t, doc.Sentences, 2)

		for _, s := range doc.Sentences {
			assert.NotEmpty(t, s.Tokens, "sentence %q has no tokens", s.Text)
		}

		total := 0
		for _, s := range doc.Sentences {
			total += len(s.Tokens)
		}
		assert.LessOrEqual(t, total, len(doc.Tokens))
	})

	t.Run("empty input", func(t *testing.T) {
		doc, err := e.Extract("")
		require.NoError(t, err)
		assert.True(t, doc.Empty())
		assert.Empty(t, doc.Sentences)
		assert.Zero(t, doc.Words())
	})

	t.Run("whitespace only input", func(t *testing.T) {
		doc, err := e.Extract("   \n\t  ")
		require.NoError(t, err)
		assert.True(t, doc.Empty())
	})
}

func TestSentence_WordCount(t *testing.T) {
	s := Sentence{Text: "three word sentence"}
	assert.Equal(t, 3, s.WordCount())

	empty := Sentence{Text: ""}
	assert.Equal(t, 0, empty.WordCount())
}

func TestNumericEntities(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
		want   []Entity
	}{
		{
			name:   "percent suffix",
			tokens: []Token{{Text: "50%", Tag: "CD"}},
			want:   []Entity{{Text: "50%", Label: LabelPercent}},
		},
		{
			name:   "percent as next token",
			tokens: []Token{{Text: "50", Tag: "CD"}, {Text: "%", Tag: "NN"}},
			want:   []Entity{{Text: "50", Label: LabelPercent}},
		},
		{
			name:   "quantity with noun",
			tokens: []Token{{Text: "3", Tag: "CD"}, {Text: "reasons", Tag: "NNS"}},
			want:   []Entity{{Text: "3 reasons", Label: LabelQuantity}},
		},
		{
			name:   "bare cardinal",
			tokens: []Token{{Text: "2020", Tag: "CD"}, {Text: "was", Tag: "VBD"}},
			want:   []Entity{{Text: "2020", Label: LabelCardinal}},
		},
		{
			name:   "no numbers",
			tokens: []Token{{Text: "hello", Tag: "UH"}},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, numericEntities(tt.tokens))
		})
	}
}

func TestAssignTokens(t *testing.T) {
	doc := &Doc{
		Tokens: []Token{
			{Text: "Go", Tag: "NNP"}, {Text: "now", Tag: "RB"}, {Text: ".", Tag: "."},
			{Text: "Stay", Tag: "VB"}, {Text: "here", Tag: "RB"}, {Text: ".", Tag: "."},
		},
		Sentences: []Sentence{
			{Text: "Go now."},
			{Text: "Stay here."},
		},
	}
	assignTokens(doc)

	require.Len(t, doc.Sentences[0].Tokens, 3)
	require.Len(t, doc.Sentences[1].Tokens, 3)
	assert.Equal(t, "Go", doc.Sentences[0].Tokens[0].Text)
	assert.Equal(t, "Stay", doc.Sentences[1].Tokens[0].Text)
}

func TestIsWord(t *testing.T) {
	assert.True(t, isWord("hello"))
	assert.True(t, isWord("don't"))
	assert.False(t, isWord("123"))
	assert.False(t, isWord("50%"))
	assert.False(t, isWord("..."))
}

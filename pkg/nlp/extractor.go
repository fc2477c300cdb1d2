package nlp

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"
)

// Extractor wraps the prose toolkit and turns raw text into token, sentence
// and entity level features. Extraction is a pure function of the text.
type Extractor struct{}

// NewExtractor creates a new feature extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Token is a single token with its Penn Treebank part-of-speech tag
type Token struct {
	Text string
	Tag  string
}

// Sentence is one segmented sentence with the tokens that belong to it
type Sentence struct {
	Text   string
	Tokens []Token
}

// WordCount returns the number of whitespace-separated words in the sentence
func (s Sentence) WordCount() int {
	return len(strings.Fields(s.Text))
}

// Entity is a named-entity span with its type label
type Entity struct {
	Text  string
	Label string
}

// entity labels for numeric-claim detection
const (
	LabelCardinal = "CARDINAL"
	LabelPercent  = "PERCENT"
	LabelQuantity = "QUANTITY"
)

// Doc holds the extracted features of one piece of text
type Doc struct {
	Tokens    []Token
	Sentences []Sentence
	Entities  []Entity
	text      string
}

// Extract processes text into a feature document. Empty or whitespace-only
// input yields a valid zero-token document, not an error.
func (e *Extractor) Extract(text string) (*Doc, error) {
	if strings.TrimSpace(text) == "" {
		return &Doc{text: text}, nil
	}

	pdoc, err := prose.NewDocument(text)
	if err != nil {
		return nil, fmt.Errorf("process text: %w", err)
	}

	doc := &Doc{text: text}
	for _, t := range pdoc.Tokens() {
		doc.Tokens = append(doc.Tokens, Token{Text: t.Text, Tag: t.Tag})
	}
	for _, s := range pdoc.Sentences() {
		doc.Sentences = append(doc.Sentences, Sentence{Text: s.Text})
	}
	assignTokens(doc)

	for _, ent := range pdoc.Entities() {
		doc.Entities = append(doc.Entities, Entity{Text: ent.Text, Label: ent.Label})
	}
	doc.Entities = append(doc.Entities, numericEntities(doc.Tokens)...)

	return doc, nil
}

// Empty reports if the document has no tokens
func (d *Doc) Empty() bool { return len(d.Tokens) == 0 }

// Text returns the original text
func (d *Doc) Text() string { return d.text }

// Words returns the count of alphabetic word tokens
func (d *Doc) Words() int {
	n := 0
	for _, t := range d.Tokens {
		if isWord(t.Text) {
			n++
		}
	}
	return n
}

// assignTokens distributes the document token stream over sentences by
// walking each sentence text left to right
func assignTokens(doc *Doc) {
	ti := 0
	for si := range doc.Sentences {
		cursor := 0
		text := doc.Sentences[si].Text
		for ti < len(doc.Tokens) {
			idx := strings.Index(text[cursor:], doc.Tokens[ti].Text)
			if idx < 0 {
				break
			}
			cursor += idx + len(doc.Tokens[ti].Text)
			doc.Sentences[si].Tokens = append(doc.Sentences[si].Tokens, doc.Tokens[ti])
			ti++
		}
	}
}

// numericEntities derives CARDINAL/PERCENT/QUANTITY spans from CD-tagged
// tokens, prose NER does not cover numeric claims
func numericEntities(tokens []Token) []Entity {
	var res []Entity
	for i, t := range tokens {
		if t.Tag != "CD" {
			continue
		}
		switch {
		case strings.HasSuffix(t.Text, "%") || (i+1 < len(tokens) && tokens[i+1].Text == "%"):
			res = append(res, Entity{Text: t.Text, Label: LabelPercent})
		case i+1 < len(tokens) && (tokens[i+1].Tag == "NN" || tokens[i+1].Tag == "NNS"):
			res = append(res, Entity{Text: t.Text + " " + tokens[i+1].Text, Label: LabelQuantity})
		default:
			res = append(res, Entity{Text: t.Text, Label: LabelCardinal})
		}
	}
	return res
}

// isWord reports if a token contains at least one letter
func isWord(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

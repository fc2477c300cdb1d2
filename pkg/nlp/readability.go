package nlp

import (
	"math"
	"strings"
)

// ReadingEase returns the Flesch reading ease score, higher means simpler.
// Zero-token or zero-sentence documents score 0.
func (d *Doc) ReadingEase() float64 {
	words, sentences, syllables := d.counts()
	if words == 0 || sentences == 0 {
		return 0
	}
	return 206.835 - 1.015*(float64(words)/float64(sentences)) - 84.6*(float64(syllables)/float64(words))
}

// FogIndex returns the Gunning fog grade level, lower means simpler
func (d *Doc) FogIndex() float64 {
	words, sentences, _ := d.counts()
	if words == 0 || sentences == 0 {
		return 0
	}
	complex := 0
	for _, t := range d.Tokens {
		if isWord(t.Text) && syllableCount(t.Text) >= 3 {
			complex++
		}
	}
	return 0.4 * (float64(words)/float64(sentences) + 100*float64(complex)/float64(words))
}

// SMOGIndex returns the SMOG grade level, lower means simpler
func (d *Doc) SMOGIndex() float64 {
	_, sentences, _ := d.counts()
	if sentences == 0 {
		return 0
	}
	poly := 0
	for _, t := range d.Tokens {
		if isWord(t.Text) && syllableCount(t.Text) >= 3 {
			poly++
		}
	}
	return 1.0430*math.Sqrt(float64(poly)*30/float64(sentences)) + 3.1291
}

// counts returns word, sentence and syllable totals for the document
func (d *Doc) counts() (words, sentences, syllables int) {
	for _, t := range d.Tokens {
		if isWord(t.Text) {
			words++
			syllables += syllableCount(t.Text)
		}
	}
	return words, len(d.Sentences), syllables
}

// syllableCount estimates syllables by counting vowel groups with a silent-e
// adjustment, always at least 1 for a word
func syllableCount(word string) int {
	word = strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range word {
		v := strings.ContainsRune("aeiouy", r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}
	if count == 0 {
		count = 1
	}
	return count
}

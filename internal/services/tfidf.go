package services

import (
	"context"
	"math"
	"strings"
)

// TFIDFSimilarity scores two documents by building a term-frequency /
// inverse-document-frequency vector space over exactly those two documents
// (stopwords excluded) and taking the cosine of the resulting vectors. It is
// corpus-local, needs no external model and is the fallback strategy when no
// embedding backend is available.
type TFIDFSimilarity struct{}

func NewTFIDFSimilarity() *TFIDFSimilarity {
	return &TFIDFSimilarity{}
}

func (t *TFIDFSimilarity) Name() string { return "tfidf" }

func (t *TFIDFSimilarity) Similarity(_ context.Context, a, b string) (float64, error) {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return 0, nil
	}

	termsA := contentTerms(a)
	termsB := contentTerms(b)
	if len(termsA) == 0 || len(termsB) == 0 {
		return 0, nil
	}

	// Vocabulary over both documents.
	vocab := make(map[string]int)
	for term := range termsA {
		if _, ok := vocab[term]; !ok {
			vocab[term] = len(vocab)
		}
	}
	for term := range termsB {
		if _, ok := vocab[term]; !ok {
			vocab[term] = len(vocab)
		}
	}

	vecA := tfidfVector(termsA, termsB, vocab)
	vecB := tfidfVector(termsB, termsA, vocab)

	return round2(clampPercent(cosine(vecA, vecB) * 100)), nil
}

// contentTerms returns term frequencies of the normalized document with
// stopwords removed.
func contentTerms(text string) map[string]int {
	freq := make(map[string]int)
	for _, token := range Tokenize(text) {
		if stopWords[token] {
			continue
		}
		freq[token]++
	}
	return freq
}

// tfidfVector builds an l2-normalized tf-idf vector for doc against a
// two-document corpus. Smoothed idf (ln((1+n)/(1+df))+1) keeps terms present
// in both documents from vanishing entirely.
func tfidfVector(doc, other map[string]int, vocab map[string]int) []float64 {
	const numDocs = 2
	vec := make([]float64, len(vocab))
	for term, count := range doc {
		df := 1
		if other[term] > 0 {
			df = 2
		}
		idf := math.Log(float64(1+numDocs)/float64(1+df)) + 1
		vec[vocab[term]] = float64(count) * idf
	}
	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

// stopWords is the english stopword list applied before vectorizing.
var stopWords = map[string]bool{
	"a": true, "about": true, "above": true, "after": true, "again": true,
	"against": true, "all": true, "am": true, "an": true, "and": true,
	"any": true, "are": true, "as": true, "at": true, "be": true,
	"because": true, "been": true, "before": true, "being": true, "below": true,
	"between": true, "both": true, "but": true, "by": true, "can": true,
	"could": true, "did": true, "do": true, "does": true, "doing": true,
	"down": true, "during": true, "each": true, "few": true, "for": true,
	"from": true, "further": true, "had": true, "has": true, "have": true,
	"having": true, "he": true, "her": true, "here": true, "hers": true,
	"herself": true, "him": true, "himself": true, "his": true, "how": true,
	"i": true, "if": true, "in": true, "into": true, "is": true,
	"it": true, "its": true, "itself": true, "just": true, "me": true,
	"more": true, "most": true, "my": true, "myself": true, "no": true,
	"nor": true, "not": true, "now": true, "of": true, "off": true,
	"on": true, "once": true, "only": true, "or": true, "other": true,
	"our": true, "ours": true, "ourselves": true, "out": true, "over": true,
	"own": true, "same": true, "she": true, "should": true, "so": true,
	"some": true, "such": true, "than": true, "that": true, "the": true,
	"their": true, "theirs": true, "them": true, "themselves": true, "then": true,
	"there": true, "these": true, "they": true, "this": true, "those": true,
	"through": true, "to": true, "too": true, "under": true, "until": true,
	"up": true, "very": true, "was": true, "we": true, "were": true,
	"what": true, "when": true, "where": true, "which": true, "while": true,
	"who": true, "whom": true, "why": true, "will": true, "with": true,
	"would": true, "you": true, "your": true, "yours": true, "yourself": true,
	"yourselves": true,
}

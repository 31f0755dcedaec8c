package tfidf

import (
	"encoding/json"
	"math"
	"strings"
)

// Vector is a sparse TF-IDF vector keyed by n-gram term. A nil or empty
// Vector is the zero vector; its cosine similarity with anything is 0.
type Vector map[string]float64

// Vectorizer holds the fitted vocabulary and per-term inverse document
// frequencies. It is immutable after Fit and safe for concurrent Transform.
type Vectorizer struct {
	idf      map[string]float64
	docCount int
}

// Fit learns the vocabulary from docs and returns the fitted vectorizer
// together with one L2-normalized row vector per document.
//
// Term frequency is sublinear (1 + ln(tf)) and IDF is smoothed
// (ln((1+n)/(1+df)) + 1), matching the statistics the index was tuned
// against. Terms present in more than MaxDF of the documents are dropped.
func Fit(docs []string) (*Vectorizer, []Vector) {
	n := len(docs)
	termDocs := make([]map[string]int, n)
	df := make(map[string]int)

	for i, doc := range docs {
		counts := termCounts(doc)
		termDocs[i] = counts
		for term := range counts {
			df[term]++
		}
	}

	maxDocs := MaxDF * float64(n)
	idf := make(map[string]float64, len(df))
	for term, count := range df {
		if count < MinDF || float64(count) > maxDocs {
			continue
		}
		idf[term] = math.Log(float64(1+n)/float64(1+count)) + 1
	}

	v := &Vectorizer{idf: idf, docCount: n}

	rows := make([]Vector, n)
	for i, counts := range termDocs {
		rows[i] = v.weigh(counts)
	}
	return v, rows
}

// Transform vectorizes a single query against the fitted vocabulary. Terms
// never seen during Fit are dropped; a query sharing no n-gram with the
// corpus yields the zero vector.
func (v *Vectorizer) Transform(text string) Vector {
	return v.weigh(termCounts(text))
}

// Size reports the vocabulary size after document-frequency filtering.
func (v *Vectorizer) Size() int {
	return len(v.idf)
}

type vectorizerState struct {
	IDF      map[string]float64 `json:"idf"`
	DocCount int                `json:"doc_count"`
}

// MarshalJSON serializes the fitted state so indexes can be snapshotted.
func (v *Vectorizer) MarshalJSON() ([]byte, error) {
	return json.Marshal(vectorizerState{IDF: v.idf, DocCount: v.docCount})
}

func (v *Vectorizer) UnmarshalJSON(data []byte) error {
	var s vectorizerState
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v.idf = s.IDF
	v.docCount = s.DocCount
	return nil
}

func (v *Vectorizer) weigh(counts map[string]int) Vector {
	vec := make(Vector, len(counts))
	for term, tf := range counts {
		idf, ok := v.idf[term]
		if !ok {
			continue
		}
		vec[term] = (1 + math.Log(float64(tf))) * idf
	}
	normalize(vec)
	return vec
}

// Cosine returns the cosine similarity of two L2-normalized vectors, which
// reduces to their dot product. Iterates the smaller map.
func Cosine(a, b Vector) float64 {
	if len(a) > len(b) {
		a, b = b, a
	}
	var dot float64
	for term, wa := range a {
		if wb, ok := b[term]; ok {
			dot += wa * wb
		}
	}
	return dot
}

func normalize(vec Vector) {
	var sum float64
	for _, w := range vec {
		sum += w * w
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for term, w := range vec {
		vec[term] = w / norm
	}
}

// termCounts lowercases the text, collapses whitespace runs to a single
// space, and counts character n-grams of length NGramMin..NGramMax over the
// rune sequence. Spaces participate in n-grams; word boundaries carry signal.
func termCounts(text string) map[string]int {
	runes := []rune(strings.Join(strings.Fields(strings.ToLower(text)), " "))
	counts := make(map[string]int)
	for size := NGramMin; size <= NGramMax; size++ {
		for i := 0; i+size <= len(runes); i++ {
			counts[string(runes[i:i+size])]++
		}
	}
	return counts
}

package tfidf

// Vectorization parameters. Character n-grams beat word tokens for Korean
// legal text: partial matches, typo tolerance and compound nouns all work
// without a morphological analyzer. Changing any of these invalidates every
// cached index, so they are compile-time constants rather than config.
const (
	// NGramMin and NGramMax bound the character n-gram lengths.
	NGramMin = 2
	NGramMax = 4

	// MinDF drops terms appearing in fewer documents than this.
	MinDF = 1

	// MaxDF drops terms appearing in more than this fraction of documents.
	MaxDF = 0.85
)

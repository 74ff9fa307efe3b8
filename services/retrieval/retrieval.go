package retrieval

import (
	"context"
	"math"
	"regexp"
	"sort"
	"strings"
)

const (
	// scoreThreshold gates documents out of the context bundle; a score must
	// strictly exceed it to count as relevant.
	scoreThreshold = 0.1
	// maxResults caps the context bundle size.
	maxResults = 5
)

// Document is one retrieved record with its relevance to the query.
type Document struct {
	ID             string                 `json:"id"`
	Collection     string                 `json:"collection"`
	Data           map[string]interface{} `json:"data"`
	RelevanceScore float64                `json:"relevanceScore"`
}

// Source yields candidate records from one collection. Each candidate's Data
// holds the raw fields; scoring only looks at string values.
type Source interface {
	Name() string
	Candidates(ctx context.Context) ([]Document, error)
}

// Retriever scores records from its sources against a free-text query by
// lexical overlap and returns the best matches.
type Retriever struct {
	Sources []Source
}

func NewRetriever(sources ...Source) *Retriever {
	return &Retriever{Sources: sources}
}

// Retrieve returns up to 5 documents whose token overlap with the query
// scores above 0.1, best first.
func (r *Retriever) Retrieve(ctx context.Context, query string) ([]Document, error) {
	queryTokens := tokenize(query)
	if len(queryTokens) == 0 {
		return nil, nil
	}

	var results []Document
	for _, src := range r.Sources {
		docs, err := src.Candidates(ctx)
		if err != nil {
			return nil, err
		}
		for i := range docs {
			doc := docs[i]
			score := Score(queryTokens, tokenize(concatStrings(doc.Data)))
			if score > scoreThreshold {
				doc.RelevanceScore = score
				results = append(results, doc)
			}
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results, nil
}

// Score is cosine similarity over 0/1 term-presence vectors:
// |intersection| / sqrt(|a| * |b|).
func Score(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	common := 0
	for tok := range small {
		if _, ok := large[tok]; ok {
			common++
		}
	}
	return float64(common) / math.Sqrt(float64(len(a))*float64(len(b)))
}

var nonWord = regexp.MustCompile(`\W+`)

// tokenize lowercases the text and splits it into a set of word tokens.
func tokenize(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range nonWord.Split(strings.ToLower(text), -1) {
		if tok != "" {
			set[tok] = struct{}{}
		}
	}
	return set
}

// concatStrings joins every string-valued field of a record, including
// strings inside slices, into one scoring text.
func concatStrings(data map[string]interface{}) string {
	var sb strings.Builder
	for _, v := range data {
		switch val := v.(type) {
		case string:
			sb.WriteString(val)
			sb.WriteByte(' ')
		case []string:
			for _, s := range val {
				sb.WriteString(s)
				sb.WriteByte(' ')
			}
		case []interface{}:
			for _, item := range val {
				if s, ok := item.(string); ok {
					sb.WriteString(s)
					sb.WriteByte(' ')
				}
			}
		}
	}
	return sb.String()
}

package rag

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
)

// ErrDimensionMismatch is returned when a vector does not match the index width
var ErrDimensionMismatch = errors.New("vector dimension mismatch")

// Hit is a retrieved document with its similarity to the query
type Hit struct {
	Document Document
	Score    float64
}

// Index is an in-memory cosine similarity index. Vectors are normalized on
// insert, so a search is one dot product per document.
type Index struct {
	mu      sync.RWMutex
	dim     int
	docs    []Document
	vectors [][]float32
}

// NewIndex creates an empty index
func NewIndex() *Index {
	return &Index{}
}

// Add appends documents with their embeddings. A rejected batch adds nothing.
func (x *Index) Add(docs []Document, vectors [][]float32) error {
	if len(docs) != len(vectors) {
		return fmt.Errorf("got %d vectors for %d documents", len(vectors), len(docs))
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	dim := x.dim
	for i, v := range vectors {
		if dim == 0 {
			dim = len(v)
		}
		if len(v) == 0 || len(v) != dim {
			return fmt.Errorf("%w: document %s has %d, index has %d", ErrDimensionMismatch, docs[i].ID, len(v), dim)
		}
	}

	x.dim = dim
	for i, v := range vectors {
		x.docs = append(x.docs, docs[i])
		x.vectors = append(x.vectors, normalize(v))
	}
	return nil
}

// Len returns the number of indexed documents
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.docs)
}

// Search returns the k most similar documents. Equal scores keep insertion order.
// A non-nil filter drops documents before ranking.
func (x *Index) Search(query []float32, k int, filter func(Document) bool) ([]Hit, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	if k <= 0 || len(x.docs) == 0 {
		return nil, nil
	}
	if len(query) != x.dim {
		return nil, fmt.Errorf("%w: query has %d, index has %d", ErrDimensionMismatch, len(query), x.dim)
	}

	q := normalize(query)
	hits := make([]Hit, 0, len(x.docs))
	for i, v := range x.vectors {
		if filter != nil && !filter(x.docs[i]) {
			continue
		}
		hits = append(hits, Hit{Document: x.docs[i], Score: dot(q, v)})
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	if len(hits) > k {
		hits = hits[:k]
	}
	return hits, nil
}

func dot(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

func normalize(v []float32) []float32 {
	norm := math.Sqrt(dot(v, v))
	out := make([]float32, len(v))
	if norm == 0 {
		return out
	}
	for i, f := range v {
		out[i] = float32(float64(f) / norm)
	}
	return out
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/soc-nexus/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearchCache struct {
	embeddings    map[string][]float32
	setCalls      int
	resultsErr    error
	storedResults []model.SearchResult
}

func (f *fakeSearchCache) GetEmbedding(ctx context.Context, queryText string) ([]float32, bool) {
	vector, ok := f.embeddings[queryText]
	return vector, ok
}

func (f *fakeSearchCache) SetEmbedding(ctx context.Context, queryText string, vector []float32) error {
	f.setCalls++
	if f.embeddings == nil {
		f.embeddings = map[string][]float32{}
	}
	f.embeddings[queryText] = vector
	return nil
}

func (f *fakeSearchCache) SetSearchResults(ctx context.Context, q model.SearchQuery, results []model.SearchResult) error {
	f.storedResults = results
	return f.resultsErr
}

type fakeEmbedder struct {
	calls  int
	vector []float32
	err    error
}

func (f *fakeEmbedder) EmbedText(ctx context.Context, text string) ([]float32, string, error) {
	f.calls++
	return f.vector, "text-embedding-3-small", f.err
}

func (f *fakeEmbedder) Name() string { return "OpenAI" }

type fakeIndex struct {
	matches []model.VectorMatch
	err     error
	gotTopK int
}

func (f *fakeIndex) Query(ctx context.Context, vector []float32, topK int) ([]model.VectorMatch, error) {
	f.gotTopK = topK
	return f.matches, f.err
}

type fakeIncidentRepo struct {
	incidents []model.Incident
	err       error
	gotIDs    []string
}

func (f *fakeIncidentRepo) GetIncidentsByIDs(ctx context.Context, ids []string) ([]model.Incident, error) {
	f.gotIDs = ids
	if f.err != nil {
		return nil, f.err
	}
	if len(ids) == 0 {
		return []model.Incident{}, nil
	}
	return f.incidents, nil
}

func query(text string, threshold float64, count int) model.SearchQuery {
	return model.SearchQuery{Text: text, MatchThreshold: threshold, MatchCount: count}
}

func TestSearchCacheHitSkipsProvider(t *testing.T) {
	cache := &fakeSearchCache{embeddings: map[string][]float32{"phishing": {0.1, 0.2}}}
	embedder := &fakeEmbedder{}
	index := &fakeIndex{}
	repo := &fakeIncidentRepo{}
	svc := NewSearchService(cache, embedder, index, repo)

	_, err := svc.Search(context.Background(), query("phishing", 0.7, 10))
	require.NoError(t, err)
	assert.Zero(t, embedder.calls, "cached embedding must not trigger a provider call")
}

func TestSearchCacheMissWritesThrough(t *testing.T) {
	cache := &fakeSearchCache{}
	embedder := &fakeEmbedder{vector: []float32{0.3}}
	svc := NewSearchService(cache, embedder, &fakeIndex{}, &fakeIncidentRepo{})

	_, err := svc.Search(context.Background(), query("phishing", 0.7, 10))
	require.NoError(t, err)
	assert.Equal(t, 1, embedder.calls)
	assert.Equal(t, 1, cache.setCalls, "provider result must be written back to the cache")
}

func TestSearchFiltersBelowThreshold(t *testing.T) {
	index := &fakeIndex{matches: []model.VectorMatch{
		{ID: "INC-1", Score: 0.92},
		{ID: "INC-2", Score: 0.71},
		{ID: "INC-3", Score: 0.42},
	}}
	repo := &fakeIncidentRepo{incidents: []model.Incident{{ID: "INC-1"}, {ID: "INC-2"}}}
	svc := NewSearchService(&fakeSearchCache{}, &fakeEmbedder{vector: []float32{0.1}}, index, repo)

	results, err := svc.Search(context.Background(), query("breach", 0.7, 5))
	require.NoError(t, err)
	assert.Equal(t, []string{"INC-1", "INC-2"}, repo.gotIDs)
	assert.Equal(t, 5, index.gotTopK, "matchCount passes through as topK unmodified")
	assert.Len(t, results, 2)
}

func TestSearchNoCandidates(t *testing.T) {
	index := &fakeIndex{matches: []model.VectorMatch{{ID: "INC-1", Score: 0.2}}}
	repo := &fakeIncidentRepo{}
	svc := NewSearchService(&fakeSearchCache{}, &fakeEmbedder{vector: []float32{0.1}}, index, repo)

	results, err := svc.Search(context.Background(), query("breach", 0.9, 5))
	require.NoError(t, err)
	assert.Empty(t, repo.gotIDs)
	assert.Empty(t, results)
}

func TestSearchEmbeddingProviderFailure(t *testing.T) {
	embedder := &fakeEmbedder{err: errors.New("quota exceeded")}
	svc := NewSearchService(&fakeSearchCache{}, embedder, &fakeIndex{}, &fakeIncidentRepo{})

	_, err := svc.Search(context.Background(), query("breach", 0.7, 10))
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "OpenAI", upstream.Subsystem)
	assert.Equal(t, "OpenAI error: quota exceeded", err.Error())
}

func TestSearchVectorIndexFailure(t *testing.T) {
	index := &fakeIndex{err: errors.New("index unavailable")}
	svc := NewSearchService(&fakeSearchCache{}, &fakeEmbedder{vector: []float32{0.1}}, index, &fakeIncidentRepo{})

	_, err := svc.Search(context.Background(), query("breach", 0.7, 10))
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "Pinecone", upstream.Subsystem)
}

func TestSearchMetadataFailureAbortsRequest(t *testing.T) {
	index := &fakeIndex{matches: []model.VectorMatch{{ID: "INC-1", Score: 0.9}}}
	repo := &fakeIncidentRepo{err: errors.New("connection refused")}
	svc := NewSearchService(&fakeSearchCache{}, &fakeEmbedder{vector: []float32{0.1}}, index, repo)

	results, err := svc.Search(context.Background(), query("breach", 0.7, 10))
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "Aurora", upstream.Subsystem)
	assert.Nil(t, results, "no partial results on metadata failure")
}

func TestSearchResultCacheFailureIgnored(t *testing.T) {
	cache := &fakeSearchCache{resultsErr: errors.New("redis down")}
	index := &fakeIndex{matches: []model.VectorMatch{{ID: "INC-1", Score: 0.9}}}
	repo := &fakeIncidentRepo{incidents: []model.Incident{{ID: "INC-1", Title: "disk full"}}}
	svc := NewSearchService(cache, &fakeEmbedder{vector: []float32{0.1}}, index, repo)

	results, err := svc.Search(context.Background(), query("breach", 0.7, 10))
	require.NoError(t, err, "result cache write failures must not abort the request")
	assert.Len(t, results, 1)
}

func TestSearchAnnotatesThreatAnalysis(t *testing.T) {
	desc := "lateral movement from 10.0.0.1 suspected"
	index := &fakeIndex{matches: []model.VectorMatch{{ID: "INC-1", Score: 0.9}}}
	repo := &fakeIncidentRepo{incidents: []model.Incident{
		{ID: "INC-1", Title: "Ransomware outbreak", Description: &desc},
	}}
	svc := NewSearchService(&fakeSearchCache{}, &fakeEmbedder{vector: []float32{0.1}}, index, repo)

	results, err := svc.Search(context.Background(), query("ransomware", 0.5, 5))
	require.NoError(t, err)
	require.Len(t, results, 1)

	analysis := results[0].ThreatAnalysis
	assert.Equal(t, model.ThreatLevelHigh, analysis.ThreatLevel)
	assert.Contains(t, analysis.RiskFactors, "Lateral movement detected")
}

package docstore_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"docagent/docstore"
	"docagent/docstore/mocks"
)

func makeVectors(n int) [][]float32 {
	out := make([][]float32, n)
	for i := range out {
		out[i] = []float32{float32(i), 0, 0}
	}
	return out
}

func TestAddDocumentsBatching(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	backend := mocks.NewMockBackend(ctrl)
	embedder := mocks.NewMockEmbedder(ctrl)

	cfg := docstore.DefaultConfig()
	cfg.BatchSize = 10

	store, err := docstore.NewStore(backend, embedder, cfg, nopLogger(), nil)
	require.NoError(t, err)

	texts := make([]string, 25)
	for i := range texts {
		texts[i] = fmt.Sprintf("document %d", i)
	}

	backend.EXPECT().ListCollections(ctx).Return([]string{"docs"}, nil)

	var embedSizes, upsertSizes []int
	embedder.EXPECT().Embed(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, batch []string) ([][]float32, error) {
			embedSizes = append(embedSizes, len(batch))
			return makeVectors(len(batch)), nil
		}).Times(3)
	backend.EXPECT().Upsert(ctx, "docs", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, points []docstore.Point) error {
			upsertSizes = append(upsertSizes, len(points))
			return nil
		}).Times(3)

	ids, err := store.AddDocuments(ctx, "docs", texts, nil)
	require.NoError(t, err)
	assert.Len(t, ids, 25)
	assert.Equal(t, []int{10, 10, 5}, embedSizes)
	assert.Equal(t, []int{10, 10, 5}, upsertSizes)
}

func TestAddDocumentsMetadataAlignmentAcrossBatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	backend := mocks.NewMockBackend(ctrl)
	embedder := mocks.NewMockEmbedder(ctrl)

	cfg := docstore.DefaultConfig()
	cfg.BatchSize = 2

	store, err := docstore.NewStore(backend, embedder, cfg, nopLogger(), nil)
	require.NoError(t, err)

	texts := []string{"t0", "t1", "t2"}
	metadatas := []map[string]any{
		{"i": 0},
		{"i": 1},
		{"i": 2},
	}

	backend.EXPECT().ListCollections(ctx).Return([]string{"docs"}, nil)
	embedder.EXPECT().Embed(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, batch []string) ([][]float32, error) {
			return makeVectors(len(batch)), nil
		}).Times(2)

	var got []docstore.Point
	backend.EXPECT().Upsert(ctx, "docs", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, points []docstore.Point) error {
			got = append(got, points...)
			return nil
		}).Times(2)

	_, err = store.AddDocuments(ctx, "docs", texts, metadatas)
	require.NoError(t, err)
	require.Len(t, got, 3)

	for i, p := range got {
		text, meta := docstore.SplitPayload(p.Payload)
		assert.Equal(t, texts[i], text)
		assert.Equal(t, metadatas[i], meta)
	}
}

func TestAddDocumentsSecondBatchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	backend := mocks.NewMockBackend(ctrl)
	embedder := mocks.NewMockEmbedder(ctrl)

	cfg := docstore.DefaultConfig()
	cfg.BatchSize = 2

	store, err := docstore.NewStore(backend, embedder, cfg, nopLogger(), nil)
	require.NoError(t, err)

	boom := errors.New("upsert exploded")

	backend.EXPECT().ListCollections(ctx).Return([]string{"docs"}, nil)
	embedder.EXPECT().Embed(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, batch []string) ([][]float32, error) {
			return makeVectors(len(batch)), nil
		}).Times(2)

	gomock.InOrder(
		backend.EXPECT().Upsert(ctx, "docs", gomock.Any()).Return(nil),
		backend.EXPECT().Upsert(ctx, "docs", gomock.Any()).Return(boom),
	)

	ids, err := store.AddDocuments(ctx, "docs", []string{"a", "b", "c"}, nil)
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "ingest batch [2:3)")
	assert.Nil(t, ids, "a failed call reports no ids even for committed batches")
}

func TestAddDocumentsNoIOOnBadInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	// No expectations: any backend or embedder call fails the test.
	backend := mocks.NewMockBackend(ctrl)
	embedder := mocks.NewMockEmbedder(ctrl)

	store, err := docstore.NewStore(backend, embedder, docstore.DefaultConfig(), nopLogger(), nil)
	require.NoError(t, err)

	_, err = store.AddDocuments(ctx, "docs", []string{"a", "b"}, []map[string]any{{"k": 1}})
	assert.ErrorIs(t, err, docstore.ErrInput)
}

func TestAddDocumentsEmbedderCountMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	backend := mocks.NewMockBackend(ctrl)
	embedder := mocks.NewMockEmbedder(ctrl)

	store, err := docstore.NewStore(backend, embedder, docstore.DefaultConfig(), nopLogger(), nil)
	require.NoError(t, err)

	backend.EXPECT().ListCollections(ctx).Return([]string{"docs"}, nil)
	embedder.EXPECT().Embed(ctx, []string{"a", "b"}).Return(makeVectors(1), nil)

	_, err = store.AddDocuments(ctx, "docs", []string{"a", "b"}, nil)
	assert.ErrorContains(t, err, "returned 1 vectors for 2 texts")
}

func TestAddDocumentsImplicitCreateUsesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	backend := mocks.NewMockBackend(ctrl)
	embedder := mocks.NewMockEmbedder(ctrl)

	cfg := docstore.DefaultConfig()
	cfg.DefaultDistance = docstore.DistanceDot

	store, err := docstore.NewStore(backend, embedder, cfg, nopLogger(), nil)
	require.NoError(t, err)

	embedder.EXPECT().Dimension().Return(384).AnyTimes()

	// Once for the ingestor's existence check, once inside Create.
	backend.EXPECT().ListCollections(ctx).Return(nil, nil).Times(2)
	backend.EXPECT().CreateCollection(ctx, "docs", uint64(384), docstore.DistanceDot).Return(nil)

	embedder.EXPECT().Embed(ctx, []string{"a"}).Return(makeVectors(1), nil)
	backend.EXPECT().Upsert(ctx, "docs", gomock.Any()).Return(nil)

	ids, err := store.AddDocuments(ctx, "docs", []string{"a"}, nil)
	require.NoError(t, err)
	assert.Len(t, ids, 1)
}

package reconcile

import (
	"context"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// TestReconcile_MixedBatchTrail pins the diagnostic trail of a batch that
// exercises every decision path at once.
func TestReconcile_MixedBatchTrail(t *testing.T) {
	remote := new(mockRemote)
	remote.On("Get", mock.Anything, "https://cdn.example.com/beta.png").Return(imageResponse("beta", "image/png"), nil)

	engine := NewEngine(NewFetcher(remote, &memLocal{files: map[string][]byte{}}, "/srv/import"), &countingLoader{})

	result, err := engine.Reconcile(context.Background(), Request{
		Incoming: []GalleryEntry{
			{ID: 7, Content: inline("alpha")},
			{File: "https://cdn.example.com/beta.png"},
			{File: "sku123"},
			{ID: 9, Content: inline("beta")},
			{ID: 12, Content: inline("gamma")},
			{Content: inline("alpha")},
		},
		Existing: []ExistingEntry{
			{ID: 7, File: "/a/b/alpha.png", Content: inline("alpha")},
			{ID: 9, File: "/b/e/beta.png", Content: inline("beta")},
		},
		Flags: allFlags(),
	})
	require.NoError(t, err)

	var files []string
	for _, entry := range result.Entries {
		files = append(files, entry.File)
	}
	require.Equal(t, []string{"/a/b/alpha.png", "sku123", "/b/e/beta.png", ""}, files)

	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))
	g.Assert(t, "mixed_batch", []byte(strings.Join(result.Trail(), "\n")+"\n"))
}

package gallery_test

import (
	"context"
	"testing"

	"media-gallery/core/database"
	"media-gallery/core/reconcile"
	"media-gallery/feature/gallery"
	"media-gallery/feature/gallery/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const testSKU = "SKU-1"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, gallery.EnsureSchema(db, zap.NewNop()))
	return db
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func seed(t *testing.T, db *gorm.DB, entries ...models.Entry) []models.Entry {
	t.Helper()
	for i := range entries {
		if entries[i].SKU == "" {
			entries[i].SKU = testSKU
		}
		if entries[i].MediaType == "" {
			entries[i].MediaType = "image"
		}
		require.NoError(t, db.Create(&entries[i]).Error)
	}
	return entries
}

// remoteFunc adapts a function to reconcile.RemoteFetcher.
type remoteFunc func(ctx context.Context, url string) (*reconcile.RemoteResponse, error)

func (f remoteFunc) Get(ctx context.Context, url string) (*reconcile.RemoteResponse, error) {
	return f(ctx, url)
}

// staticRemote serves fixed bodies as image/png; unknown URLs are 404.
func staticRemote(bodies map[string]string) remoteFunc {
	return func(ctx context.Context, url string) (*reconcile.RemoteResponse, error) {
		body, ok := bodies[url]
		if !ok {
			return &reconcile.RemoteResponse{Status: 404}, nil
		}
		return &reconcile.RemoteResponse{
			Status:  200,
			Headers: map[string]string{"Content-Type": "image/png"},
			Body:    []byte(body),
		}, nil
	}
}

func inline(data, name string) *reconcile.Content {
	return reconcile.NewContent([]byte(data), "image/png", name)
}

func allFlags() reconcile.Flags {
	return reconcile.Flags{Enabled: true, PassURL: true, PassPath: true, SkipUnchanged: true}
}

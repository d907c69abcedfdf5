package db

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDB connects to the database named by TEST_DATABASE_URL, skipping
// the test when it is not set.
func testDB(t *testing.T) *DB {
	t.Helper()

	databaseURL := os.Getenv("TEST_DATABASE_URL")
	if databaseURL == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping integration test")
	}

	database, err := Connect(context.Background(), databaseURL)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(context.Background()))
	t.Cleanup(database.Close)

	return database
}

func TestSaveAndGetAnalysis(t *testing.T) {
	database := testDB(t)
	ctx := context.Background()

	id, err := database.SaveAnalysis(ctx, "job text", "resume text", 85, "## report")
	require.NoError(t, err)

	analysis, err := database.GetAnalysis(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, analysis)
	assert.Equal(t, 85, analysis.Score)
	assert.Equal(t, "## report", analysis.Result)
	assert.False(t, analysis.CreatedAt.IsZero())
}

func TestListAnalyses_NewestFirst(t *testing.T) {
	database := testDB(t)
	ctx := context.Background()

	_, err := database.SaveAnalysis(ctx, "job one", "resume one", 40, "first")
	require.NoError(t, err)
	_, err = database.SaveAnalysis(ctx, "job two", "resume two", 60, "second")
	require.NoError(t, err)

	analyses, err := database.ListAnalyses(ctx, 2)
	require.NoError(t, err)
	require.Len(t, analyses, 2)
	assert.True(t, !analyses[0].CreatedAt.Before(analyses[1].CreatedAt))
}

func TestSaveContact(t *testing.T) {
	database := testDB(t)

	id, err := database.SaveContact(context.Background(), "Jane", "jane@example.com", "Hello there", "A long enough message")
	require.NoError(t, err)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id.String())
}

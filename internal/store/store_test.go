package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestCreateRun(t *testing.T) {
	db := openTestDB(t)

	id, runID, err := db.CreateRun("1.2.3")
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	_, err = uuid.Parse(runID)
	assert.NoError(t, err, "run_id should be a valid UUID")

	run, err := db.GetRun(id)
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, runID, run.RunID)
	assert.Equal(t, "1.2.3", run.Version)
	assert.False(t, run.TakenAt.IsZero())
}

func TestGetLatestRun(t *testing.T) {
	db := openTestDB(t)

	run, err := db.GetLatestRun()
	require.NoError(t, err)
	assert.Nil(t, run, "empty database should yield nil run")

	_, _, err = db.CreateRun("dev")
	require.NoError(t, err)
	secondID, _, err := db.CreateRun("dev")
	require.NoError(t, err)

	run, err = db.GetLatestRun()
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, secondID, run.ID)
}

func TestListRuns(t *testing.T) {
	db := openTestDB(t)

	for i := 0; i < 3; i++ {
		_, _, err := db.CreateRun("dev")
		require.NoError(t, err)
	}

	runs, err := db.ListRuns(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Greater(t, runs[0].ID, runs[1].ID, "runs should be newest first")
}

func TestDimensionScoresRoundTrip(t *testing.T) {
	db := openTestDB(t)

	id, _, err := db.CreateRun("dev")
	require.NoError(t, err)

	require.NoError(t, db.InsertDimensionScore(id, "Big Five Snapshot", "Extraversion", 0.75))
	require.NoError(t, db.InsertDimensionScore(id, "Big Five Snapshot", "Openness", 0.5))
	require.NoError(t, db.InsertDimensionScore(id, "Attachment & Trust", "Trust Propensity", 0.25))

	scores, err := db.GetDimensionScores(id)
	require.NoError(t, err)
	require.Len(t, scores, 3)

	// Insertion order is preserved.
	assert.Equal(t, "Extraversion", scores[0].Dimension)
	assert.Equal(t, 0.75, scores[0].Score)
	assert.Equal(t, "Attachment & Trust", scores[2].Model)
}

func TestInsightsRoundTrip(t *testing.T) {
	db := openTestDB(t)

	id, _, err := db.CreateRun("dev")
	require.NoError(t, err)

	require.NoError(t, db.InsertInsight(id, "General Liking", "A narrative."))
	require.NoError(t, db.InsertInsight(id, "Peer Relationship", "Another narrative."))

	insights, err := db.GetInsights(id)
	require.NoError(t, err)
	require.Len(t, insights, 2)
	assert.Equal(t, "General Liking", insights[0].Context)
	assert.Equal(t, "A narrative.", insights[0].Narrative)
}

func TestScoresScopedToRun(t *testing.T) {
	db := openTestDB(t)

	first, _, err := db.CreateRun("dev")
	require.NoError(t, err)
	second, _, err := db.CreateRun("dev")
	require.NoError(t, err)

	require.NoError(t, db.InsertDimensionScore(first, "M", "D", 0.1))
	require.NoError(t, db.InsertDimensionScore(second, "M", "D", 0.9))

	scores, err := db.GetDimensionScores(second)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 0.9, scores[0].Score)
}

package datafile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eringobraugh/inf80057-assistant-backend/core/tutor"
	"github.com/Eringobraugh/inf80057-assistant-backend/tests"
)

func testdata(name string) string {
	return filepath.Join("testdata", name)
}

func TestLoadCorpus(t *testing.T) {
	want := []tutor.Document{
		{
			Title: "Guide", Href: "/g",
			Sections: []tutor.Section{{Loc: "p.1", Text: "Proposal details."}, {Loc: "p.2", Text: "Journal entries."}},
		},
		{Title: "Outline", Href: "/o"},
	}

	tests := []struct {
		name    string
		file    string
		wantErr bool
	}{
		{name: "json", file: "docs.json"},
		{name: "yaml", file: "docs.yaml"},
		{name: "schema violation", file: "docs_invalid.json", wantErr: true},
		{name: "malformed json", file: "docs_malformed.json", wantErr: true},
		{name: "missing file", file: "nope.json", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, p, err := LoadCorpus(testdata(tt.file))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, want, docs)
			assert.Len(t, p.Digest, 64)
		})
	}
}

func TestLoadSchedule(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		want    []tutor.WeekRecord
		wantErr bool
	}{
		{
			name: "json", file: "dates.json",
			want: []tutor.WeekRecord{
				{Week: tutor.NumericWeek(4), Milestones: []string{"Submit proposal"}},
				{Week: tutor.StringWeek("break")},
			},
		},
		{
			name: "yaml", file: "dates.yml",
			want: []tutor.WeekRecord{
				{Week: tutor.NumericWeek(4), Milestones: []string{"Submit proposal"}},
				{Week: tutor.StringWeek("break")},
			},
		},
		{name: "no weeks", file: "dates_noweeks.json", want: []tutor.WeekRecord{}},
		{name: "schema violation", file: "dates_invalid.json", wantErr: true},
		{name: "missing file", file: "nope.json", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weeks, _, err := LoadSchedule(testdata(tt.file))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, weeks)
		})
	}
}

func TestLoad_recordsThatNeverMatch(t *testing.T) {
	t.Run("schedule", func(t *testing.T) {
		weeks, _, err := LoadSchedule(testdata("dates_oddrecords.json"))
		require.NoError(t, err)
		require.Len(t, weeks, 4)
		assert.True(t, weeks[1].Week.IsZero())
		assert.True(t, weeks[2].Week.IsZero())

		assert.Equal(t, []string{"Submit proposal"}, tutor.Lookup(tutor.NumericWeek(4), weeks).Checklist)
		assert.Equal(t, []string{tutor.NoMilestones}, tutor.Lookup(tutor.NumericWeek(5), weeks).Checklist)
		assert.Equal(t, []string{tutor.NoMilestones}, tutor.Lookup(tutor.StringWeek(""), weeks).Checklist)
	})

	t.Run("corpus", func(t *testing.T) {
		docs, _, err := LoadCorpus(testdata("docs_nulltext.json"))
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, []tutor.Section{{Loc: "p.1", Text: "Proposal details."}, {Loc: "p.2"}, {Loc: "p.3"}}, docs[0].Sections)

		got := tutor.Resolve("details", docs)
		require.Len(t, got.Citations, 1)
		assert.Equal(t, "p.1", got.Citations[0].Loc)
	})

	t.Run("served at start up", func(t *testing.T) {
		logger := testutil.NewLogger()
		weeks, p := OpenSchedule(testdata("dates_oddrecords.json"), logger)
		assert.Len(t, weeks, 4)
		assert.NotEmpty(t, p.Digest)
		assert.Empty(t, logger.Entries("WARN"))
	})
}

func TestOpen_degradesToEmpty(t *testing.T) {
	logger := testutil.NewLogger()

	docs, p := OpenCorpus(testdata("nope.json"), logger)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
	assert.Empty(t, p.Digest)

	weeks, _ := OpenSchedule(testdata("dates_invalid.json"), logger)
	assert.NotNil(t, weeks)
	assert.Empty(t, weeks)

	assert.Len(t, logger.Entries("WARN"), 2)

	docs, p = OpenCorpus(testdata("docs.json"), logger)
	assert.Len(t, docs, 2)
	assert.NotEmpty(t, p.Digest)
}

func TestDigest(t *testing.T) {
	a, err := Read(testdata("docs.json"))
	require.NoError(t, err)
	b, err := Read(testdata("docs_reordered.json"))
	require.NoError(t, err)
	c, err := Read(testdata("docs.yaml"))
	require.NoError(t, err)

	assert.Equal(t, a.Digest, b.Digest, "key order and spacing must not change the digest")
	assert.Equal(t, a.Digest, c.Digest, "yaml and json forms must share a digest")

	d, err := Read(testdata("dates.json"))
	require.NoError(t, err)
	assert.NotEqual(t, a.Digest, d.Digest)
}

func TestLoadShippedData(t *testing.T) {
	docs, _, err := LoadCorpus(filepath.Join("..", "..", "data", "seed_docs.json"))
	require.NoError(t, err)
	assert.NotEmpty(t, docs)

	weeks, _, err := LoadSchedule(filepath.Join("..", "..", "data", "mock_dates.json"))
	require.NoError(t, err)
	got := tutor.Lookup(tutor.NumericWeek(4), weeks)
	assert.Equal(t, []string{"Submit proposal", "Submit planning document"}, got.Checklist)
}

package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JurmiThinley/jobtrackr/pkg/model"
)

func sampleJobs(t *testing.T) []model.Job {
	t.Helper()

	date, err := model.ParseDate("2025-02-03")
	require.NoError(t, err)

	location := "Remote"
	notes := "Spoke to the hiring manager.\n\n- Follow up **next week**\n- Prepare portfolio"

	return []model.Job{
		{
			ID:          1,
			Title:       "Engineer",
			Company:     "Acme",
			Location:    &location,
			Status:      "interview",
			DateApplied: &date,
			Notes:       &notes,
			UserID:      7,
		},
		{
			ID:      2,
			Title:   "Analyst",
			Company: "Globex",
			Status:  "applied",
			UserID:  7,
		},
	}
}

func TestRenderJSON(t *testing.T) {
	out, err := renderExport("alice", sampleJobs(t), FormatJSON)
	require.NoError(t, err)

	var decoded []model.Job
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "Engineer", decoded[0].Title)
	assert.Equal(t, "2025-02-03", decoded[0].DateApplied.String())
}

func TestRenderJSON_NoJobs(t *testing.T) {
	out, err := renderExport("alice", nil, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(out))
}

func TestRenderMarkdown(t *testing.T) {
	out, err := renderExport("alice", sampleJobs(t), FormatMarkdown)
	require.NoError(t, err)

	md := string(out)
	assert.Contains(t, md, "# Job applications for alice")
	assert.Contains(t, md, "## Engineer at Acme")
	assert.Contains(t, md, "- Status: interview")
	assert.Contains(t, md, "- Applied: 2025-02-03")
	assert.Contains(t, md, "- Location: Remote")
	assert.Contains(t, md, "## Analyst at Globex")
	// Analyst has no date, so no Applied line in its section
	assert.Contains(t, md, "Follow up **next week**")
}

func TestRenderHTML(t *testing.T) {
	out, err := renderExport("alice", sampleJobs(t), FormatHTML)
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "<title>Job applications for alice</title>")
	assert.Contains(t, html, "Engineer at Acme")
	// Markdown in the notes is rendered
	assert.Contains(t, html, "<strong>next week</strong>")
	assert.NotContains(t, html, "**next week**")
}

func TestFormatString(t *testing.T) {
	for _, name := range FormatStrings() {
		format, err := FormatString(name)
		require.NoError(t, err)
		assert.Equal(t, name, format.String())
	}

	_, err := FormatString("yaml")
	assert.Error(t, err)
}

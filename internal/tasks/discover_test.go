package tasks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/BlumBot_Go/internal/domain"
)

func ids(list []domain.Task) []string {
	out := make([]string, 0, len(list))
	for _, t := range list {
		out = append(out, t.ID)
	}
	return out
}

func TestDiscover_HighlightsPartnerIntegration(t *testing.T) {
	sections := []domain.TaskSection{{
		SectionType: domain.SectionHighlights,
		Tasks: []domain.Task{{
			ID:   "partner",
			Type: domain.TaskTypePartnerIntegration,
			SubTasks: []domain.Task{
				{ID: "sub-1"},
				{ID: "sub-2"},
			},
		}},
	}}

	assert.Equal(t, []string{"sub-1", "sub-2"}, ids(Discover(sections)))
}

func TestDiscover_Rules(t *testing.T) {
	sections := []domain.TaskSection{
		{
			SectionType: domain.SectionHighlights,
			Tasks: []domain.Task{
				{ID: "h1", SubTasks: []domain.Task{{ID: "h1-a"}}},
				{ID: "h2"},
			},
		},
		{
			SectionType: domain.SectionWeeklyRoutine,
			Tasks: []domain.Task{
				{ID: "weekly", SubTasks: []domain.Task{{ID: "w-a"}, {ID: "w-b"}}},
			},
		},
		{
			SectionType: domain.SectionDefault,
			SubSections: []domain.TaskSubSection{
				{Title: "New", Tasks: []domain.Task{{ID: "d1"}, {ID: "d2", SubTasks: []domain.Task{{ID: "ignored"}}}}},
				{Title: "Socials", Tasks: []domain.Task{{ID: "d3"}}},
			},
		},
		{SectionType: "SOMETHING_NEW", Tasks: []domain.Task{{ID: "x"}}},
	}

	got := Discover(sections)
	assert.Equal(t, []string{"h1-a", "h1", "h2", "w-a", "w-b", "d1", "d2", "d3"}, ids(got))

	// deterministic on the same input
	assert.Equal(t, got, Discover(sections))
}

func TestDiscover_Empty(t *testing.T) {
	assert.Empty(t, Discover(nil))
}

func TestKeyword(t *testing.T) {
	tests := map[string]string{
		"How to Analyze Crypto?":       "VALUE",
		"Forks Explained":              "GO GET",
		"Secure your Crypto!":          "BEST PROJECT EVER",
		"Navigating Crypto":            "HEYBLUM",
		"What are Telegram Mini Apps?": "CRYPTOBLUM",
		"Say No to Rug Pull!":          "SUPERBLUM",
		"Unknown Course":               "",
	}

	for title, want := range tests {
		t.Run(title, func(t *testing.T) {
			assert.Equal(t, want, Keyword(title))
		})
	}
}

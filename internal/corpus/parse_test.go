package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func article(label string) Record {
	return ArticleRecord(label, "Article "+label, nil, nil)
}

func labels(s Section) []string {
	out := make([]string, 0, len(s.Articles))
	for _, a := range s.Articles {
		out = append(out, a.Label)
	}
	return out
}

func TestParseGroupsArticlesUnderSections(t *testing.T) {
	doc := Parse([]Record{
		Header("A", "SECTION A"),
		article("X"),
		article("Y"),
		Header("B", "SECTION B"),
		article("Z"),
	})

	require.Len(t, doc.Sections, 2)
	assert.Equal(t, "SECTION A", doc.Sections[0].Text)
	assert.Equal(t, []string{"X", "Y"}, labels(doc.Sections[0]))
	assert.Equal(t, "SECTION B", doc.Sections[1].Text)
	assert.Equal(t, []string{"Z"}, labels(doc.Sections[1]))
	assert.Equal(t, 3, doc.ArticleCount())
	assert.Zero(t, doc.Dropped)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		records  []Record
		sections [][]string
		chapters int
		dropped  int
	}{
		{
			name:     "empty",
			records:  nil,
			sections: nil,
		},
		{
			name:     "articles before first section are dropped",
			records:  []Record{article("P"), article("Q"), Header("1", "SECTION 1"), article("R")},
			sections: [][]string{{"R"}},
			dropped:  2,
		},
		{
			name:     "non-section headers do not move the cursor",
			records:  []Record{Header("1", "SECTION 1"), article("R"), Header("Ch", "CHAPTER IV"), article("S")},
			sections: [][]string{{"R", "S"}},
			chapters: 1,
		},
		{
			name:     "chapter before any section keeps articles dropped",
			records:  []Record{Header("Ch", "CHAPTER III"), article("P")},
			sections: nil,
			chapters: 1,
			dropped:  1,
		},
		{
			name:     "prefix is case sensitive",
			records:  []Record{Header("s", "Section 1"), article("R")},
			sections: nil,
			chapters: 1,
			dropped:  1,
		},
		{
			name:     "empty section",
			records:  []Record{Header("1", "SECTION 1"), Header("2", "SECTION 2"), article("R")},
			sections: [][]string{{}, {"R"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse(tt.records)

			require.Len(t, doc.Sections, len(tt.sections))
			for i, want := range tt.sections {
				assert.Equal(t, want, labels(doc.Sections[i]), "section %d", i)
			}
			assert.Len(t, doc.Chapters, tt.chapters)
			assert.Equal(t, tt.dropped, doc.Dropped)
		})
	}
}

func TestArticleHeadingAndSubtitle(t *testing.T) {
	a := Article{Label: "Art. 6", Title: "Article 6 - Classification rules - annex"}
	assert.Equal(t, "Article 6 - Classification rules - annex", a.Heading())
	assert.Equal(t, "Classification rules - annex", a.Subtitle())

	bare := Article{Label: "Art. 9"}
	assert.Equal(t, "Art. 9", bare.Heading())
	assert.Empty(t, bare.Subtitle())

	noSep := Article{Label: "Art. 1", Title: "Scope"}
	assert.Equal(t, "Scope", noSep.Subtitle())
}

package corpus

import (
	"go.uber.org/zap"

	"github.com/Faultbox/lexcosmos/internal/logger"
)

// Parse groups records into sections. Articles attach to the nearest
// preceding section-opening header; articles before the first one are
// dropped. Order is preserved.
func Parse(records []Record) *Document {
	doc := &Document{}
	var current *Section

	for i, r := range records {
		switch r.Kind {
		case KindHeader:
			if !r.OpensSection() {
				doc.Chapters = append(doc.Chapters, r)
				continue
			}
			doc.Sections = append(doc.Sections, Section{Label: r.Label, Text: r.Text})
			current = &doc.Sections[len(doc.Sections)-1]
		case KindArticle:
			if current == nil {
				doc.Dropped++
				logger.Debug("dropping article outside any section",
					zap.Int("index", i),
					zap.String("label", r.Label))
				continue
			}
			current.Articles = append(current.Articles, Article{
				Label:    r.Label,
				Title:    r.Title,
				Keywords: r.Keywords,
				Content:  r.Content,
			})
		}
	}

	return doc
}

// Package corpus decodes legal-text corpora and groups them into sections.
package corpus

import (
	"errors"
	"strings"
)

// Kind distinguishes header records from article records.
type Kind string

const (
	KindHeader  Kind = "header"
	KindArticle Kind = "article"
)

// SectionPrefix marks a header that opens a new section.
const SectionPrefix = "SECTION"

// ErrUnknownKind is returned when a record has a type other than header or article.
var ErrUnknownKind = errors.New("unknown record type")

// Record is one flat corpus entry.
type Record struct {
	Kind     Kind     `yaml:"type"`
	Label    string   `yaml:"short_label"`
	Text     string   `yaml:"text,omitempty"`
	Title    string   `yaml:"title,omitempty"`
	Keywords []string `yaml:"keywords,omitempty"`
	Content  []string `yaml:"content,omitempty"`
}

// Header builds a header record.
func Header(label, text string) Record {
	return Record{Kind: KindHeader, Label: label, Text: text}
}

// ArticleRecord builds an article record.
func ArticleRecord(label, title string, keywords, content []string) Record {
	return Record{Kind: KindArticle, Label: label, Title: title, Keywords: keywords, Content: content}
}

// OpensSection reports whether the record is a section-opening header.
func (r Record) OpensSection() bool {
	return r.Kind == KindHeader && strings.HasPrefix(r.Text, SectionPrefix)
}

// Article is a single legal article.
type Article struct {
	Label    string
	Title    string
	Keywords []string
	Content  []string
}

// Heading returns the title, or the label when the article has no title.
func (a Article) Heading() string {
	if a.Title != "" {
		return a.Title
	}
	return a.Label
}

// Subtitle returns the part of the title after the first " - ",
// or the whole title when there is no separator.
func (a Article) Subtitle() string {
	if _, rest, ok := strings.Cut(a.Title, " - "); ok {
		return rest
	}
	return a.Title
}

// Section groups the articles that follow a section-opening header.
type Section struct {
	Label    string
	Text     string
	Articles []Article
}

// Document is the grouped form of a record stream.
type Document struct {
	// Chapters holds headers that do not open a section, in input order.
	Chapters []Record
	Sections []Section
	// Dropped counts articles that appeared before any section.
	Dropped int
}

// ArticleCount returns the number of grouped articles.
func (d *Document) ArticleCount() int {
	n := 0
	for _, s := range d.Sections {
		n += len(s.Articles)
	}
	return n
}

package corpus

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/lexcosmos/pkg/encoding"
)

//go:embed data/ai_act_chapter3.yaml
var defaultCorpus []byte

// Decode reads a YAML list of records. Strings are normalized to NFC.
func Decode(r io.Reader) ([]Record, error) {
	var records []Record
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&records); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding corpus: %w", err)
	}

	for i := range records {
		rec := &records[i]
		switch rec.Kind {
		case KindHeader, KindArticle:
		default:
			return nil, fmt.Errorf("record %d (%q): %w: %q", i, rec.Label, ErrUnknownKind, rec.Kind)
		}
		normalize(rec)
	}
	return records, nil
}

// LoadFile reads and decodes a corpus file stored in charset. An empty
// charset means UTF-8.
func LoadFile(path, charset string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening corpus: %w", err)
	}
	data, err = encoding.ToUTF8(data, charset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	records, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// LoadDefault decodes the embedded corpus.
func LoadDefault() ([]Record, error) {
	return Decode(bytes.NewReader(defaultCorpus))
}

// Load reads the corpus at path, or the embedded corpus when path is empty.
func Load(path, charset string) ([]Record, error) {
	if path == "" {
		return LoadDefault()
	}
	return LoadFile(path, charset)
}

func normalize(r *Record) {
	r.Label = norm.NFC.String(r.Label)
	r.Text = norm.NFC.String(r.Text)
	r.Title = norm.NFC.String(r.Title)
	for i, k := range r.Keywords {
		r.Keywords[i] = norm.NFC.String(k)
	}
	for i, c := range r.Content {
		r.Content[i] = norm.NFC.String(c)
	}
}

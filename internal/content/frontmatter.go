package content

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"
)

// Meta is the frontmatter recognised on posts.
type Meta struct {
	Title string    `yaml:"title"`
	Slug  string    `yaml:"slug"`
	Lang  string    `yaml:"lang"`
	Tags  []string  `yaml:"tags"`
	Date  time.Time `yaml:"date"`
	Draft bool      `yaml:"draft"`
}

// ParseMeta splits source into frontmatter and Markdown body. Sources without
// frontmatter return zero Meta and the full body.
func ParseMeta(source []byte) (Meta, []byte, error) {
	var meta Meta
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return Meta{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	return meta, body, nil
}

package model

import (
	"github.com/google/uuid"
	"github.com/pyropy/pagecache/lib/checksum"
)

type URL = string

type Page struct {
	ID       uuid.UUID
	URL      URL
	Contents string
	Checksum int
}

func NewPage(url URL, contents string) Page {
	return Page{
		ID:       uuid.New(),
		URL:      url,
		Contents: contents,
		Checksum: checksum.CalculateCheckSum([]byte(contents)),
	}
}

// IsCorrupted reports whether Contents no longer match Checksum.
func (p *Page) IsCorrupted() bool {
	return !checksum.Verify([]byte(p.Contents), p.Checksum)
}

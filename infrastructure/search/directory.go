//go:generate go run go.uber.org/mock/mockgen -source=directory.go -destination=../../mocks/mock_directory_index.go -package=mocks
package search

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"timebank/domain"

	"github.com/blugelabs/bluge"
)

const (
	fieldName  = "name"
	fieldPhone = "phone"
	fieldRole  = "role"
)

type IDirectoryIndex interface {
	Index(profile domain.Profile) error
	Search(ctx context.Context, query string, limit int) ([]string, error)
	Close() error
}

// DirectoryIndex answers "name or phone contains" lookups over the profiles.
// Names are indexed lower-cased as one keyword so a regexp matches any substring.
type DirectoryIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewDirectoryIndex(config bluge.Config, log *slog.Logger) (*DirectoryIndex, error) {
	writer, err := bluge.OpenWriter(config)
	if err != nil {
		return nil, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	return &DirectoryIndex{writer: writer, log: log}, nil
}

// Index adds or replaces the document of a profile.
func (d *DirectoryIndex) Index(profile domain.Profile) error {
	doc := bluge.NewDocument(profile.ID).
		AddField(bluge.NewKeywordField(fieldName, strings.ToLower(profile.FullName)).Sortable()).
		AddField(bluge.NewKeywordField(fieldPhone, profile.Phone)).
		AddField(bluge.NewKeywordField(fieldRole, string(profile.Role)).StoreValue())
	if err := d.writer.Update(doc.ID(), doc); err != nil {
		return fmt.Errorf("index profile %s: %w", profile.ID, err)
	}
	return nil
}

// Search returns matching profile ids ordered by name. An empty query matches everyone.
func (d *DirectoryIndex) Search(ctx context.Context, query string, limit int) ([]string, error) {
	reader, err := d.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("open bluge reader: %w", err)
	}
	defer func() { _ = reader.Close() }()

	request := bluge.NewTopNSearch(limit, buildQuery(query)).SortBy([]string{fieldName})
	matches, err := reader.Search(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("directory search: %w", err)
	}

	var ids []string
	match, err := matches.Next()
	for err == nil && match != nil {
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				ids = append(ids, string(value))
				return false
			}
			return true
		})
		if err != nil {
			break
		}
		match, err = matches.Next()
	}
	if err != nil {
		return nil, fmt.Errorf("directory search: %w", err)
	}
	d.log.Debug("Directory searched", "query", query, "hits", len(ids))
	return ids, nil
}

func (d *DirectoryIndex) Close() error {
	return d.writer.Close()
}

func buildQuery(raw string) bluge.Query {
	term := strings.ToLower(strings.TrimSpace(raw))
	if term == "" {
		return bluge.NewMatchAllQuery()
	}
	// Every character the user typed is literal text, regexp and wildcard metacharacters included
	pattern := ".*" + regexp.QuoteMeta(term) + ".*"
	return bluge.NewBooleanQuery().
		AddShould(bluge.NewRegexpQuery(pattern).SetField(fieldName)).
		AddShould(bluge.NewRegexpQuery(pattern).SetField(fieldPhone)).
		SetMinShould(1)
}

// Package compendium maintains the cached catalog of source documents:
// per-subtype collections merged from the local collection and every
// installed content package, deduplicated and sorted by name.
package compendium

//go:generate mockgen -destination=mock/mock_resolver.go -package=compendiummock github.com/hearthlight/charsheet/internal/compendium Resolver

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/singleflight"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/hearthlight/charsheet/internal/clients/content"
	"github.com/hearthlight/charsheet/internal/entities/sheet"
	"github.com/hearthlight/charsheet/internal/errors"
)

// Resolver answers document lookups against the cached catalog
type Resolver interface {
	// Load returns the full collection for a subtype, loading it on
	// first use.
	Load(ctx context.Context, subtype sheet.Subtype) ([]*sheet.SourceDocument, error)

	// Resolve looks up a document by id within a subtype's collection.
	// An unknown id resolves to nil, not an error.
	Resolve(ctx context.Context, subtype sheet.Subtype, id string) (*sheet.SourceDocument, error)
}

// Config holds the dependencies for the compendium store
type Config struct {
	ContentClient content.Client
	Logger        *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.ContentClient == nil {
		vb.RequiredField("ContentClient")
	}
	return vb.Build()
}

// Store is the process-wide catalog cache. Collections are loaded
// lazily per subtype; concurrent derivation passes racing on an empty
// cache collapse into a single load through the singleflight group.
type Store struct {
	client content.Client
	logger *slog.Logger

	group singleflight.Group

	mu    sync.RWMutex
	cache map[sheet.Subtype][]*sheet.SourceDocument
}

// New creates a new compendium store
func New(cfg *Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		client: cfg.ContentClient,
		logger: logger,
		cache:  make(map[sheet.Subtype][]*sheet.SourceDocument),
	}, nil
}

// Ensure Store implements the Resolver interface
var _ Resolver = (*Store)(nil)

// Load returns the collection for a subtype, loading and caching it on
// first use. Callers must not mutate the returned slice.
func (s *Store) Load(ctx context.Context, subtype sheet.Subtype) ([]*sheet.SourceDocument, error) {
	s.mu.RLock()
	docs, ok := s.cache[subtype]
	s.mu.RUnlock()
	if ok {
		return docs, nil
	}

	result, err, _ := s.group.Do(string(subtype), func() (interface{}, error) {
		// A concurrent caller may have filled the cache while this
		// call waited on the group.
		s.mu.RLock()
		docs, ok := s.cache[subtype]
		s.mu.RUnlock()
		if ok {
			return docs, nil
		}

		loaded, err := s.loadSubtype(ctx, subtype)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.cache[subtype] = loaded
		s.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]*sheet.SourceDocument), nil
}

// Resolve looks up a document by id within a subtype's collection
func (s *Store) Resolve(ctx context.Context, subtype sheet.Subtype, id string) (*sheet.SourceDocument, error) {
	if id == "" {
		return nil, nil
	}

	docs, err := s.Load(ctx, subtype)
	if err != nil {
		return nil, err
	}

	for _, doc := range docs {
		if doc.ID == id {
			return doc, nil
		}
	}
	return nil, nil
}

// Invalidate drops cached collections so the next Load reloads them.
// With no arguments the whole cache is dropped.
func (s *Store) Invalidate(subtypes ...sheet.Subtype) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(subtypes) == 0 {
		s.cache = make(map[sheet.Subtype][]*sheet.SourceDocument)
		return
	}
	for _, subtype := range subtypes {
		delete(s.cache, subtype)
	}
}

// loadSubtype gathers a subtype's documents from the local collection
// and every package declaring the subtype. A failed fetch for a single
// package document is logged and skipped, never aborting the load.
func (s *Store) loadSubtype(ctx context.Context, subtype sheet.Subtype) ([]*sheet.SourceDocument, error) {
	local, err := s.client.GetLocalCollection(ctx, subtype)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load local %s collection", subtype)
	}

	seen := make(map[string]bool)
	docs := make([]*sheet.SourceDocument, 0, len(local))
	for _, doc := range local {
		if doc == nil || seen[doc.ID] {
			continue
		}
		seen[doc.ID] = true
		docs = append(docs, doc)
	}

	packages, err := s.client.ListPackages(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list content packages")
	}

	for _, pkg := range packages {
		if !declares(pkg, subtype) {
			continue
		}

		entries, err := pkg.IndexEntries(ctx, subtype)
		if err != nil {
			s.logger.Warn("failed to index package, skipping",
				"package", pkg.Name(),
				"subtype", subtype,
				"error", err)
			continue
		}

		for _, entry := range entries {
			if seen[entry.ID] {
				continue
			}
			doc, err := pkg.FetchByID(ctx, entry.ID)
			if err != nil {
				s.logger.Warn("failed to fetch package document, skipping",
					"package", pkg.Name(),
					"document_id", entry.ID,
					"error", err)
				continue
			}
			if doc == nil {
				continue
			}
			seen[doc.ID] = true
			docs = append(docs, doc)
		}
	}

	collator := collate.New(language.English)
	sort.SliceStable(docs, func(i, j int) bool {
		return collator.CompareString(docs[i].Name, docs[j].Name) < 0
	})

	return docs, nil
}

func declares(pkg content.Package, subtype sheet.Subtype) bool {
	for _, s := range pkg.Subtypes() {
		if s == subtype {
			return true
		}
	}
	return false
}

// Package content is the document provider contract: resolve-by-id and
// list-by-subtype across the local collection and installed content
// packages. The derivation pipeline only ever reads through this
// interface.
package content

//go:generate mockgen -destination=mock/mock_client.go -package=contentmock github.com/hearthlight/charsheet/internal/clients/content Client,Package

import (
	"context"

	"github.com/hearthlight/charsheet/internal/entities/sheet"
)

// IndexEntry is a package index row referencing a document by id
type IndexEntry struct {
	ID string `json:"id"`
}

// Client defines the interface for document provider interactions
type Client interface {
	// GetLocalCollection returns the locally loaded documents of the
	// given subtype. A missing collection is an empty result, not an
	// error.
	GetLocalCollection(ctx context.Context, subtype sheet.Subtype) ([]*sheet.SourceDocument, error)

	// ListPackages returns every available content package
	ListPackages(ctx context.Context) ([]Package, error)
}

// Package is one installed content package
type Package interface {
	// Name returns the package's display name
	Name() string

	// Subtypes returns the document subtypes this package declares
	Subtypes() []sheet.Subtype

	// IndexEntries returns the package's index rows for a subtype.
	// Subtypes the package does not declare yield an empty result.
	IndexEntries(ctx context.Context, subtype sheet.Subtype) ([]IndexEntry, error)

	// FetchByID fetches a single document by id. Absent documents
	// return a NotFound error.
	FetchByID(ctx context.Context, id string) (*sheet.SourceDocument, error)
}

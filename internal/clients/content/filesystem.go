package content

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/hearthlight/charsheet/internal/entities/sheet"
	"github.com/hearthlight/charsheet/internal/errors"
)

const (
	localDir     = "local"
	packagesDir  = "packages"
	documentsDir = "documents"
	manifestFile = "manifest.json"
)

// FilesystemConfig contains configuration options for the filesystem
// content client.
type FilesystemConfig struct {
	// Root is the content directory. Expected layout:
	//
	//	root/local/<subtype>.json            array of documents
	//	root/packages/<pkg>/manifest.json    package manifest
	//	root/packages/<pkg>/documents/<id>.json
	Root string
}

// Validate ensures the config is usable
func (cfg *FilesystemConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Root", cfg.Root, vb)
	return vb.Build()
}

type filesystemClient struct {
	root string
}

// NewFilesystem creates a content client reading documents and package
// manifests from a directory tree.
func NewFilesystem(cfg *FilesystemConfig) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &filesystemClient{root: cfg.Root}, nil
}

func (c *filesystemClient) GetLocalCollection(_ context.Context, subtype sheet.Subtype) ([]*sheet.SourceDocument, error) {
	path := filepath.Join(c.root, localDir, string(subtype)+".json")
	data, err := os.ReadFile(path) // #nosec G304 // path is operator-configured
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to read local collection %s", subtype)
	}

	var docs []*sheet.SourceDocument
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, errors.Wrapf(err, "failed to parse local collection %s", subtype)
	}

	for _, doc := range docs {
		if doc.Subtype == "" {
			doc.Subtype = subtype
		}
	}
	return docs, nil
}

func (c *filesystemClient) ListPackages(_ context.Context) ([]Package, error) {
	dir := filepath.Join(c.root, packagesDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to list packages")
	}

	var packages []Package
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		pkg, err := loadPackage(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load package %s", entry.Name())
		}
		packages = append(packages, pkg)
	}
	return packages, nil
}

// manifest is the on-disk package descriptor
type manifest struct {
	Name     string          `json:"name"`
	Subtypes []sheet.Subtype `json:"subtypes"`
	Index    []manifestEntry `json:"index"`
}

type manifestEntry struct {
	ID      string        `json:"id"`
	Subtype sheet.Subtype `json:"subtype"`
}

type filesystemPackage struct {
	dir      string
	manifest manifest
}

func loadPackage(dir string) (*filesystemPackage, error) {
	data, err := os.ReadFile(filepath.Join(dir, manifestFile)) // #nosec G304
	if err != nil {
		return nil, errors.Wrap(err, "failed to read manifest")
	}

	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "failed to parse manifest")
	}

	return &filesystemPackage{dir: dir, manifest: m}, nil
}

func (p *filesystemPackage) Name() string {
	return p.manifest.Name
}

func (p *filesystemPackage) Subtypes() []sheet.Subtype {
	return p.manifest.Subtypes
}

func (p *filesystemPackage) IndexEntries(_ context.Context, subtype sheet.Subtype) ([]IndexEntry, error) {
	var entries []IndexEntry
	for _, row := range p.manifest.Index {
		if row.Subtype == subtype {
			entries = append(entries, IndexEntry{ID: row.ID})
		}
	}
	return entries, nil
}

func (p *filesystemPackage) FetchByID(_ context.Context, id string) (*sheet.SourceDocument, error) {
	path := filepath.Join(p.dir, documentsDir, id+".json")
	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("document %s not found in package %s", id, p.manifest.Name)
		}
		return nil, errors.Wrapf(err, "failed to read document %s", id)
	}

	var doc sheet.SourceDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "failed to parse document %s", id)
	}
	return &doc, nil
}

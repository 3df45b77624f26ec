package palette

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hupe1980/rgbkmeans/blobstore"
)

// Ext is the blob name suffix of stored palettes.
const Ext = ".rgbp"

// Store saves and loads named palettes on a blob store.
type Store struct {
	blobs  blobstore.BlobStore
	opts   EncodeOptions
	logger *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithEncodeOptions sets the encoding used by Save.
func WithEncodeOptions(opts EncodeOptions) StoreOption {
	return func(s *Store) { s.opts = opts }
}

// WithLogger sets the logger for save/load events.
func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewStore returns a Store backed by blobs. Palettes are ZSTD-compressed by
// default.
func NewStore(blobs blobstore.BlobStore, optFns ...StoreOption) *Store {
	s := &Store{
		blobs:  blobs,
		opts:   EncodeOptions{Compression: CompressionZSTD},
		logger: slog.New(slog.DiscardHandler),
	}
	for _, fn := range optFns {
		fn(s)
	}
	return s
}

func blobName(name string) string {
	return name + Ext
}

// Save encodes p and stores it under name.
func (s *Store) Save(ctx context.Context, name string, p *Palette) error {
	data, err := Marshal(p, s.opts)
	if err != nil {
		return fmt.Errorf("encode palette %q: %w", name, err)
	}

	if err := s.blobs.Put(ctx, blobName(name), data); err != nil {
		s.logger.ErrorContext(ctx, "palette save failed", "name", name, "error", err)
		return fmt.Errorf("save palette %q: %w", name, err)
	}

	s.logger.InfoContext(ctx, "palette saved",
		"name", name,
		"colors", p.Len(),
		"bytes", len(data),
		"compression", s.opts.Compression.String(),
	)
	return nil
}

// Load returns the palette stored under name.
// A missing palette yields an error matching blobstore.ErrNotFound.
func (s *Store) Load(ctx context.Context, name string) (*Palette, error) {
	data, err := blobstore.ReadAll(ctx, s.blobs, blobName(name))
	if err != nil {
		return nil, fmt.Errorf("load palette %q: %w", name, err)
	}

	p, err := Unmarshal(data)
	if err != nil {
		s.logger.ErrorContext(ctx, "palette decode failed", "name", name, "error", err)
		return nil, fmt.Errorf("load palette %q: %w", name, err)
	}

	s.logger.DebugContext(ctx, "palette loaded", "name", name, "colors", p.Len())
	return p, nil
}

// Delete removes the palette stored under name.
func (s *Store) Delete(ctx context.Context, name string) error {
	return s.blobs.Delete(ctx, blobName(name))
}

// List returns the names of stored palettes starting with prefix.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	blobs, err := s.blobs.List(ctx, prefix)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(blobs))
	for _, b := range blobs {
		if name, ok := strings.CutSuffix(b, Ext); ok {
			names = append(names, name)
		}
	}
	return names, nil
}

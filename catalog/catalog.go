// Package catalog keeps a sorted, de-duplicated list of books loaded from a
// YAML document and answers lookups with binary search.
//
// A catalog document looks like:
//
//	books:
//	  - author: Frank Herbert
//	    title: Dune
//	    publisher: Chilton
//
// Every key is required. Catalog files may be compressed; see EncodingForPath.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"slices"

	"github.com/amp-labs/sortkit/book"
	"github.com/amp-labs/sortkit/collectable"
	"github.com/amp-labs/sortkit/compare"
	commonerrors "github.com/amp-labs/sortkit/errors"
	"github.com/amp-labs/sortkit/hashing"
	"github.com/amp-labs/sortkit/logger"
	"github.com/amp-labs/sortkit/search"
	"github.com/amp-labs/sortkit/should"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ErrInvalidCatalog is returned when a catalog document cannot be decoded or
// contains invalid books. It wraps every underlying cause.
var ErrInvalidCatalog = fmt.Errorf("%w: invalid catalog", commonerrors.ErrInvalidArgument)

type record struct {
	Author    *string `yaml:"author"`
	Title     *string `yaml:"title"`
	Publisher *string `yaml:"publisher"`
}

type document struct {
	Books []record `yaml:"books"`
}

// Catalog is immutable once built and safe for concurrent use.
type Catalog struct {
	books []*book.Book
}

type options struct {
	logger   *slog.Logger
	encoding Encoding
}

type Option func(*options)

// WithLogger sends load diagnostics to l instead of the default logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithEncoding sets the compression format of the input. Open otherwise
// guesses it from the file extension; Load assumes Identity.
func WithEncoding(enc Encoding) Option {
	return func(o *options) {
		o.encoding = enc
	}
}

// Open reads the catalog stored at path.
func Open(ctx context.Context, path string, opts ...Option) (*Catalog, error) {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, err
	}

	defer should.Close(ctx, f, "closing catalog file")

	return Load(ctx, f, append([]Option{WithEncoding(EncodingForPath(path))}, opts...)...)
}

// Load decodes a catalog document from r. Every invalid record is reported,
// not just the first.
func Load(ctx context.Context, r io.Reader, opts ...Option) (*Catalog, error) {
	o := &options{encoding: Identity}
	for _, opt := range opts {
		opt(o)
	}

	ctx = loadContext(ctx, o)

	plain, closeDecoder, err := decompress(r, o.encoding)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	defer should.Succeed(ctx, closeDecoder, "releasing catalog decoder")

	var doc document

	dec := yaml.NewDecoder(plain)
	dec.KnownFields(true)

	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	var (
		problems commonerrors.Collection
		books    = make([]*book.Book, 0, len(doc.Books))
	)

	for i, rec := range doc.Books {
		b, err := book.FromFields(rec.Author, rec.Title, rec.Publisher)
		if err != nil {
			problems.Add(fmt.Errorf("book %d: %w", i, err))

			continue
		}

		books = append(books, b)
	}

	if problems.HasError() {
		logger.Get(ctx).Error("rejected catalog",
			"invalid_books", problems.Len(),
			"books", len(doc.Books))

		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, problems.GetError())
	}

	return build(ctx, books)
}

// New builds a catalog from books, which may be in any order. Nil entries are
// invalid.
func New(ctx context.Context, books []*book.Book, opts ...Option) (*Catalog, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	for i, b := range books {
		if b == nil {
			return nil, fmt.Errorf("%w: book %d is nil", ErrInvalidCatalog, i)
		}
	}

	return build(loadContext(ctx, o), books)
}

func loadContext(ctx context.Context, o *options) context.Context {
	if o.logger != nil {
		ctx = logger.WithLogger(ctx, o.logger)
	}

	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	return logger.WithRequestId(ctx, id.String())
}

func build(ctx context.Context, books []*book.Book) (*Catalog, error) {
	log := logger.Get(ctx)

	seen := collectable.NewIndex[*book.Book](hashing.Xxh3)
	unique := make([]*book.Book, 0, len(books))

	for _, b := range books {
		added, err := seen.Add(b)
		if err != nil {
			return nil, err
		}

		if !added {
			log.Warn("dropping duplicate book", "book", b.String())

			continue
		}

		unique = append(unique, b)
	}

	slices.SortFunc(unique, book.Compare)

	booksLoaded.Add(float64(len(unique)))

	log.Info("catalog loaded",
		"books", len(unique),
		"duplicates", len(books)-len(unique))

	return &Catalog{books: unique}, nil
}

// Len returns the number of books in the catalog.
func (c *Catalog) Len() int {
	return len(c.books)
}

// Get returns the book at index i of the sorted catalog.
func (c *Catalog) Get(i int) *book.Book {
	return c.books[i]
}

// All iterates over the books in sorted order.
func (c *Catalog) All() iter.Seq2[int, *book.Book] {
	return slices.All(c.books)
}

// Find returns the index of the book equal to b, ignoring case.
func (c *Catalog) Find(b *book.Book) (int, bool) {
	if b == nil {
		recordLookup(false)

		return search.NotFound, false
	}

	idx, err := search.BinarySearchFunc(c.books, b, book.Compare)
	found := err == nil && idx >= 0

	recordLookup(found)

	if !found {
		return search.NotFound, false
	}

	return idx, true
}

// FindTitle returns every book whose title matches title, ignoring case, in
// catalog order.
func (c *Catalog) FindTitle(title string) []*book.Book {
	byTitle := func(a, b *book.Book) int {
		return compare.FoldString(a.Title(), b.Title())
	}

	idx, err := search.BinarySearchFunc(c.books, book.New("", title, ""), byTitle)
	if err != nil || idx < 0 {
		recordLookup(false)

		return nil
	}

	recordLookup(true)

	first, last := idx, idx

	for first > 0 && compare.EqualFold(c.books[first-1].Title(), title) {
		first--
	}

	for last < len(c.books)-1 && compare.EqualFold(c.books[last+1].Title(), title) {
		last++
	}

	return slices.Clone(c.books[first : last+1])
}

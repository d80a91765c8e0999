package catalog

import (
	"context"
	"errors"
	"log"
)

// Source tags which tier served a response: the remote store or the bundled
// fallback data.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

var ErrNotFound = errors.New("catalog: not found")

// Store is the remote-store surface the fetcher needs. *Repo satisfies it.
type Store interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id string) (Product, error)
	ListPosts(ctx context.Context) ([]BlogPost, error)
	GetPost(ctx context.Context, id string) (BlogPost, error)
}

// Fetcher resolves catalog content from the remote store, substituting the
// bundled fallback set when the store errors or comes back empty. The
// fallback is a resilience measure, not a cache: nothing is written back.
type Fetcher struct {
	Store Store
}

type ProductList struct {
	Source   Source    `json:"source"`
	Products []Product `json:"products"`
}

type PostList struct {
	Source Source     `json:"source"`
	Posts  []BlogPost `json:"posts"`
}

func (f *Fetcher) Products(ctx context.Context) ProductList {
	ps, err := f.Store.ListProducts(ctx)
	if err != nil || len(ps) == 0 {
		if err != nil {
			log.Printf("catalog: list products from store: %v (serving fallback)", err)
		}
		return ProductList{Source: SourceFallback, Products: FallbackProducts()}
	}
	return ProductList{Source: SourceRemote, Products: ps}
}

func (f *Fetcher) Product(ctx context.Context, id string) (Product, Source, error) {
	p, err := f.Store.GetProduct(ctx, id)
	if err == nil {
		return p, SourceRemote, nil
	}
	log.Printf("catalog: get product %q from store: %v (trying fallback)", id, err)
	for _, fp := range fallbackProducts {
		if fp.ID == id {
			return fp, SourceFallback, nil
		}
	}
	return Product{}, SourceFallback, ErrNotFound
}

func (f *Fetcher) Posts(ctx context.Context) PostList {
	bs, err := f.Store.ListPosts(ctx)
	if err != nil || len(bs) == 0 {
		if err != nil {
			log.Printf("catalog: list posts from store: %v (serving fallback)", err)
		}
		return PostList{Source: SourceFallback, Posts: FallbackPosts()}
	}
	return PostList{Source: SourceRemote, Posts: bs}
}

func (f *Fetcher) Post(ctx context.Context, id string) (BlogPost, Source, error) {
	b, err := f.Store.GetPost(ctx, id)
	if err == nil {
		return b, SourceRemote, nil
	}
	log.Printf("catalog: get post %q from store: %v (trying fallback)", id, err)
	for _, fb := range fallbackPosts {
		if fb.ID == id {
			return fb, SourceFallback, nil
		}
	}
	return BlogPost{}, SourceFallback, ErrNotFound
}

package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/hrconsole/internal/client/models"
)

// Collection is one entity collection of the record store.
type Collection[T models.Record[T]] struct {
	c    *HTTPClient
	path string
}

func NewCollection[T models.Record[T]](c *HTTPClient, path string) *Collection[T] {
	return &Collection[T]{c: c, path: path}
}

// ForEntity builds the collection for an entity descriptor.
func ForEntity[T models.Record[T]](c *HTTPClient, e models.Entity[T]) *Collection[T] {
	return NewCollection[T](c, e.Path)
}

func (col *Collection[T]) item(id string) string {
	return col.path + "/" + url.PathEscape(id)
}

// List returns the full collection.
func (col *Collection[T]) List(ctx context.Context) ([]T, error) {
	return col.Find(ctx, nil)
}

// Find lists the records whose fields equal every query value.
func (col *Collection[T]) Find(ctx context.Context, query url.Values) ([]T, error) {
	var out []T
	if err := col.c.do(ctx, http.MethodGet, col.path, query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (col *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	var out T
	if err := col.c.do(ctx, http.MethodGet, col.item(id), nil, nil, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Create posts r. The returned record is nil when the store answered with
// an empty body.
func (col *Collection[T]) Create(ctx context.Context, r T) (T, error) {
	var out T
	if err := col.c.do(ctx, http.MethodPost, col.path, nil, r, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Update puts r under id. The returned record is nil when the store
// answered with an empty body.
func (col *Collection[T]) Update(ctx context.Context, id string, r T) (T, error) {
	var out T
	if err := col.c.do(ctx, http.MethodPut, col.item(id), nil, r, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func (col *Collection[T]) Delete(ctx context.Context, id string) error {
	return col.c.do(ctx, http.MethodDelete, col.item(id), nil, nil, nil)
}

// Directory looks up accounts in the admin or users collection.
type Directory struct {
	c    *HTTPClient
	path string
}

func NewDirectory(c *HTTPClient, path string) *Directory {
	return &Directory{c: c, path: path}
}

func (d *Directory) Find(ctx context.Context, query url.Values) ([]*models.Account, error) {
	var out []*models.Account
	if err := d.c.do(ctx, http.MethodGet, d.path, query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

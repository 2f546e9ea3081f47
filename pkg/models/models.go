// Package models provides the typed Canvas resources and their CRUD
// operations. Every operation takes the canvas.Client explicitly, and
// course/group/account-scoped operations take an explicit canvas.Scope.
package models

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/hashicorp/go-multierror"

	"github.com/edukit/go-canvas/pkg/canvas"
	"github.com/edukit/go-canvas/pkg/formenc"
)

// getOne fetches and hydrates a single resource.
func getOne[T any](ctx context.Context, c *canvas.Client, path string, query url.Values) (*T, error) {
	var raw map[string]any
	if err := c.Get(ctx, path, query, &raw); err != nil {
		return nil, err
	}
	return hydrateOne[T](c, raw)
}

// listAll exhausts a paginated collection and hydrates every row.
func listAll[T any](ctx context.Context, c *canvas.Client, path string, query url.Values) ([]T, error) {
	rows, err := c.List(path, query).All(ctx)
	if err != nil {
		return nil, err
	}
	return hydrateRows[T](c, rows)
}

// postForm posts multipart fields and hydrates the response resource.
func postForm[T any](ctx context.Context, c *canvas.Client, path string, fields []formenc.Field) (*T, error) {
	var raw map[string]any
	if err := c.PostForm(ctx, path, fields, &raw); err != nil {
		return nil, err
	}
	return hydrateOne[T](c, raw)
}

// putForm puts multipart fields and hydrates the response resource.
func putForm[T any](ctx context.Context, c *canvas.Client, path string, fields []formenc.Field) (*T, error) {
	var raw map[string]any
	if err := c.PutForm(ctx, path, fields, &raw); err != nil {
		return nil, err
	}
	return hydrateOne[T](c, raw)
}

// deleteOne deletes a resource and hydrates the (usually final) state
// Canvas echoes back.
func deleteOne[T any](ctx context.Context, c *canvas.Client, path string, query url.Values) (*T, error) {
	var raw map[string]any
	if err := c.Delete(ctx, path, query, &raw); err != nil {
		return nil, err
	}
	return hydrateOne[T](c, raw)
}

func hydrateOne[T any](c *canvas.Client, raw map[string]any) (*T, error) {
	var m T
	if err := Hydrate(c.Logger(), raw, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// hydrateRows hydrates a page of raw rows, aggregating per-row failures
// so one defective row does not hide the rest of the report.
func hydrateRows[T any](c *canvas.Client, rows []json.RawMessage) ([]T, error) {
	var result *multierror.Error
	out := make([]T, 0, len(rows))
	for i, row := range rows {
		var raw map[string]any
		if err := json.Unmarshal(row, &raw); err != nil {
			result = multierror.Append(result, fmt.Errorf("row %d: %w", i, err))
			continue
		}
		var m T
		if err := Hydrate(c.Logger(), raw, &m); err != nil {
			result = multierror.Append(result, fmt.Errorf("row %d: %w", i, err))
			continue
		}
		out = append(out, m)
	}
	return out, result.ErrorOrNil()
}

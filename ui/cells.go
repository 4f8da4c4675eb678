// File: cells.go
// Title: Reusable Cells
// Description: Identifier-keyed cell registration and dequeuing for table
//              and collection views.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package ui

import (
	"fmt"
	"reflect"
	"sync"
)

// IndexPath addresses a row or item within a section
type IndexPath struct {
	Section int
	Item    int
}

// CellIdentifier returns the reuse identifier of cell type T, its type name
// with pointers removed
func CellIdentifier[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

type cellRegistry struct {
	mu        sync.Mutex
	factories map[string]func() ViewLike
	pool      map[string][]ViewLike
}

func (r *cellRegistry) Register(identifier string, factory func() ViewLike) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.factories == nil {
		r.factories = make(map[string]func() ViewLike)
	}
	r.factories[identifier] = factory
}

// Recycle returns cell to the reuse pool of identifier
func (r *cellRegistry) Recycle(identifier string, cell ViewLike) {
	if cell == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pool == nil {
		r.pool = make(map[string][]ViewLike)
	}
	r.pool[identifier] = append(r.pool[identifier], cell)
}

// DequeueReusableCell returns a pooled cell or a new one from the factory.
// It reports false for an unregistered identifier.
func (r *cellRegistry) DequeueReusableCell(identifier string, _ IndexPath) (ViewLike, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if pooled := r.pool[identifier]; len(pooled) > 0 {
		cell := pooled[len(pooled)-1]
		r.pool[identifier] = pooled[:len(pooled)-1]
		return cell, true
	}
	factory, ok := r.factories[identifier]
	if !ok || factory == nil {
		return nil, false
	}
	return factory(), true
}

// TableView is a vertical list of reusable cells
type TableView struct {
	View
	cellRegistry
}

// NewTableView creates a table view without registrations
func NewTableView() *TableView {
	tv := &TableView{}
	tv.init()
	return tv
}

// CollectionView is a grid of reusable cells
type CollectionView struct {
	View
	cellRegistry
}

// NewCollectionView creates a collection view without registrations
func NewCollectionView() *CollectionView {
	cv := &CollectionView{}
	cv.init()
	return cv
}

// CellSource is implemented by TableView and CollectionView
type CellSource interface {
	Register(identifier string, factory func() ViewLike)
	DequeueReusableCell(identifier string, indexPath IndexPath) (ViewLike, bool)
}

// RegisterCell registers factory under CellIdentifier[T]
func RegisterCell[T ViewLike](src CellSource, factory func() T) {
	src.Register(CellIdentifier[T](), func() ViewLike { return factory() })
}

// Dequeue returns the cell registered under identifier as T. An unregistered
// identifier or a cell of another type is a programming error and panics.
func Dequeue[T ViewLike](src CellSource, identifier string, indexPath IndexPath) T {
	cell, ok := src.DequeueReusableCell(identifier, indexPath)
	if !ok {
		panic(fmt.Sprintf("ui: failed to dequeue cell with identifier %q: not registered", identifier))
	}
	typed, ok := cell.(T)
	if !ok {
		panic(fmt.Sprintf("ui: failed to dequeue cell with identifier %q: got %T", identifier, cell))
	}
	return typed
}

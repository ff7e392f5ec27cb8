// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package nodestore presents the content-addressed object store of a
// ledger node: immutable blobs fetched by their 256-bit digest.
package nodestore

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"

	"github.com/thejohnfreeman/xrplorer/xrp"
)

// ErrNotFound returned by Fetch when the store has no blob for the
// digest.
var ErrNotFound = errors.New("node not found")

// NodeObject an immutable stored blob. The first 4 bytes are the
// hash-prefix tag.
type NodeObject struct {
	data []byte
}

// Data returns the blob bytes. Callers must not modify them.
func (o *NodeObject) Data() []byte {
	return o.data
}

// Backend the kv surface the store reads through.
type Backend interface {
	Get(key []byte) ([]byte, error)
	IsNotFound(err error) bool
	Close() error
}

// Store fetches node objects by digest, caching decoded blobs.
// Read-only and safe for concurrent use to the extent the backend is.
type Store struct {
	backend Backend
	cache   *lru.Cache
}

// New creates a store over the backend with an object cache of the
// given capacity.
func New(backend Backend, cacheSize int) (*Store, error) {
	if cacheSize < 1 {
		cacheSize = 1
	}
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, err
	}
	return &Store{backend: backend, cache: cache}, nil
}

// Fetch returns the blob named by digest, or ErrNotFound.
func (s *Store) Fetch(digest xrp.Hash256) (*NodeObject, error) {
	if cached, ok := s.cache.Get(digest); ok {
		return cached.(*NodeObject), nil
	}
	data, err := s.backend.Get(digest.Bytes())
	if err != nil {
		if s.backend.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, errors.WithMessagef(err, "fetch %v", digest)
	}
	object := &NodeObject{data: data}
	s.cache.Add(digest, object)
	return object, nil
}

// IsNotFound to check if the error returned by Fetch means the digest
// is absent.
func (s *Store) IsNotFound(err error) bool {
	return errors.Cause(err) == ErrNotFound
}

// Close closes the underlying backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

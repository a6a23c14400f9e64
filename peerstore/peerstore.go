// Package peerstore maintains a bounded, endpoint-keyed table of known
// peers. Endpoints are compared structurally, so two entries for the same
// host on different relay circuits are distinct peers, which is exactly the
// deduplication the connection layer needs.
package peerstore

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/vonj/QuantumGate/libs/log"
	"github.com/vonj/QuantumGate/network"
)

// ErrUnusableEndpoint is returned when an unspecified endpoint is offered
// to the store; it carries no address to key on.
var ErrUnusableEndpoint = errors.New("endpoint has no usable address")

// Peer is one known peer, identified by the endpoint it was seen at.
type Peer struct {
	ID        uuid.UUID
	Endpoint  network.Endpoint
	FirstSeen time.Time
	LastSeen  time.Time
}

// Store is a bounded peer table keyed by endpoint. When the bound is
// reached the least recently used entry is evicted. Store is safe for
// concurrent use.
type Store struct {
	logger log.Logger

	mtx   sync.Mutex
	cache *lru.Cache[network.Endpoint, Peer]
}

// New returns a store holding at most size peers.
func New(size int, logger log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	cache, err := lru.New[network.Endpoint, Peer](size)
	if err != nil {
		return nil, err
	}
	return &Store{
		logger: logger.With("module", "peerstore"),
		cache:  cache,
	}, nil
}

// Add records that a peer was seen at ep. A new endpoint gets a fresh peer
// record; a known endpoint has its LastSeen updated and keeps its identity.
// The returned Peer is a copy either way.
func (s *Store) Add(ep network.Endpoint) (Peer, error) {
	if ep.Type() == network.EndpointTypeUnspecified {
		return Peer{}, ErrUnusableEndpoint
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	now := time.Now()
	if peer, ok := s.cache.Get(ep); ok {
		peer.LastSeen = now
		s.cache.Add(ep, peer)
		return peer, nil
	}

	peer := Peer{
		ID:        uuid.New(),
		Endpoint:  ep,
		FirstSeen: now,
		LastSeen:  now,
	}
	if evicted := s.cache.Add(ep, peer); evicted {
		s.logger.Debug("evicted least recently seen peer")
	}
	s.logger.Debug("peer added", "endpoint", ep, "id", peer.ID)
	return peer, nil
}

// Get returns the peer record for ep, if any.
func (s *Store) Get(ep network.Endpoint) (Peer, bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.cache.Get(ep)
}

// Remove deletes the peer record for ep and reports whether one existed.
func (s *Store) Remove(ep network.Endpoint) bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.cache.Remove(ep)
}

// Len returns the number of peers in the store.
func (s *Store) Len() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.cache.Len()
}

// Endpoints returns the stored endpoints from least to most recently seen.
func (s *Store) Endpoints() []network.Endpoint {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.cache.Keys()
}

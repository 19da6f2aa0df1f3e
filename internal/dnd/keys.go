package dnd

import "github.com/google/uuid"

// Key is the stable identity binding a logical item to its visual element.
type Key string

// KeyRegistry maps payload identifiers to keys. Entries are minted on first
// sight and never removed, so a registry grows with every distinct
// identifier it has seen. That is fine for the short-lived, small lists this
// package targets.
type KeyRegistry struct {
	keys map[string]Key
	mint func() Key
}

// NewKeyRegistry returns a registry that mints random UUID keys.
func NewKeyRegistry() *KeyRegistry {
	return NewKeyRegistryWith(func() Key { return Key(uuid.NewString()) })
}

// NewKeyRegistryWith returns a registry that mints keys with mint. mint
// must never return the same key twice.
func NewKeyRegistryWith(mint func() Key) *KeyRegistry {
	return &KeyRegistry{keys: map[string]Key{}, mint: mint}
}

// KeyFor returns the key for id, minting one the first time id is seen.
func (r *KeyRegistry) KeyFor(id string) Key {
	if k, ok := r.keys[id]; ok {
		return k
	}
	k := r.mint()
	r.keys[id] = k
	return k
}

// Lookup returns the key for id without minting.
func (r *KeyRegistry) Lookup(id string) (Key, bool) {
	k, ok := r.keys[id]
	return k, ok
}

// Len returns the number of identifiers ever seen.
func (r *KeyRegistry) Len() int { return len(r.keys) }

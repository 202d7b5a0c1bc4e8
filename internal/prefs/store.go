// Package prefs holds the per-provider player preferences: size defaults and
// player parameters, stored under an event named after the plugin and provider.
package prefs

import (
	"fmt"
	"strings"
	"sync"

	"embedplayer/internal/provider"
)

// Store loads the preferences of one event, keyed without the event prefix.
type Store interface {
	Load(event string) (map[string]string, error)
}

// Event returns the preference event of a provider, e.g. "embed_player_youtube".
func Event(plugin, providerName string) string {
	return plugin + "_" + providerName
}

// Name returns the stored name of a preference key within an event.
func Name(event, key string) string {
	return event + "_" + key
}

// Memory is an in-memory Store keyed by event then key.
type Memory map[string]map[string]string

// Load returns a copy of the event's preferences.
func (m Memory) Load(event string) (map[string]string, error) {
	out := make(map[string]string, len(m[event]))
	for k, v := range m[event] {
		out[k] = v
	}
	return out, nil
}

// Set stores a preference value.
func (m Memory) Set(event, key, val string) {
	if m[event] == nil {
		m[event] = make(map[string]string)
	}
	m[event][key] = val
}

// Stack merges several stores; later stores override earlier ones.
type Stack []Store

// Load implements Store.
func (s Stack) Load(event string) (map[string]string, error) {
	out := make(map[string]string)
	for _, store := range s {
		values, err := store.Load(event)
		if err != nil {
			return nil, err
		}
		for k, v := range values {
			out[k] = v
		}
	}
	return out, nil
}

// Prefs are the preferences of one provider merged over its defaults.
type Prefs struct {
	values   map[string]string
	defaults map[string]string
}

// Get returns the stored value of key, or its default when none is stored.
func (p Prefs) Get(key string) string {
	if v, ok := p.values[key]; ok {
		return v
	}
	return p.defaults[key]
}

// Default returns the provider default of key.
func (p Prefs) Default(key string) string {
	return p.defaults[key]
}

// Cache loads each provider's preferences once. It is safe for concurrent use.
type Cache struct {
	store  Store
	plugin string
	reg    *provider.Registry

	mu     sync.Mutex
	loaded map[string]Prefs
}

// NewCache creates a preference cache over store.
// A nil store leaves every provider on its defaults.
func NewCache(store Store, plugin string, reg *provider.Registry) *Cache {
	return &Cache{
		store:  store,
		plugin: plugin,
		reg:    reg,
		loaded: make(map[string]Prefs),
	}
}

// For returns the preferences of p, loading them on first use.
func (c *Cache) For(p *provider.Provider) (Prefs, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if prefs, ok := c.loaded[p.Name]; ok {
		return prefs, nil
	}

	prefs := Prefs{defaults: p.Defaults()}
	if c.store != nil {
		values, err := c.store.Load(Event(c.plugin, p.Name))
		if err != nil {
			return Prefs{}, fmt.Errorf("loading %s preferences: %w", p.Name, err)
		}
		prefs.values = values
	}

	c.loaded[p.Name] = prefs
	return prefs, nil
}

// Get returns one preference of the named provider.
func (c *Cache) Get(providerName, key string) (string, error) {
	p, err := c.reg.Get(providerName)
	if err != nil {
		return "", err
	}
	prefs, err := c.For(p)
	if err != nil {
		return "", err
	}
	return prefs.Get(strings.ToLower(key)), nil
}

// Forget drops every loaded provider so the next lookup reads the store again.
func (c *Cache) Forget() {
	c.mu.Lock()
	c.loaded = make(map[string]Prefs)
	c.mu.Unlock()
}

package queue

import (
	"sync"

	"lvlreq/db"
)

// ChannelRegistry is the shared set of submission queue channel IDs currently
// being monitored. It is seeded from the guild configs at startup and extended
// whenever a guild configures a new queue channel. The message monitors and the
// admin introspection command all hold the same instance.
type ChannelRegistry struct {
	mu  sync.RWMutex
	ids map[string]struct{}
}

// NewChannelRegistry creates an empty registry.
func NewChannelRegistry() *ChannelRegistry {
	return &ChannelRegistry{ids: make(map[string]struct{})}
}

// Add starts watching a channel. Adding a channel twice is a no-op.
func (r *ChannelRegistry) Add(channelID string) {
	if channelID == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ids[channelID] = struct{}{}
}

// Contains reports whether the channel is being watched.
func (r *ChannelRegistry) Contains(channelID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.ids[channelID]
	return ok
}

// Snapshot returns a copy of the watched channel IDs for display commands.
func (r *ChannelRegistry) Snapshot() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.ids))
	for id := range r.ids {
		ids = append(ids, id)
	}
	return ids
}

// SeedFromGuildConfigs loads every configured queue channel into the registry.
// Guilds that haven't set a queue channel yet are skipped.
func (r *ChannelRegistry) SeedFromGuildConfigs() error {
	configs, err := db.GetAllGuildConfigs()
	if err != nil {
		return err
	}

	for _, cfg := range configs {
		if cfg.QueueChannelID != "" {
			r.Add(cfg.QueueChannelID)
		}
	}
	return nil
}

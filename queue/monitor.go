package queue

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"lvlreq/db"

	"github.com/bwmarrin/discordgo"
)

const (
	// A message posted in a queue channel gets this long before the cleaner
	// evaluates it, so a legitimate queue entry (which arrives asynchronously
	// right after a submit command) has time to land.
	cleanupGraceDelay = 15 * time.Second

	eventBuffer = 64
)

// messageDeleter is the subset of the Discord session used to remove noise
// from queue channels.
type messageDeleter interface {
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
}

// Monitor watches the configured submission queue channels. It removes
// messages that aren't queue entries and propagates manual deletions of queue
// entries back into the database.
type Monitor struct {
	session  *discordgo.Session
	deleter  messageDeleter
	registry *ChannelRegistry
	selfID   string
}

// NewMonitor creates a monitor bound to the shared channel registry.
func NewMonitor(s *discordgo.Session, registry *ChannelRegistry) *Monitor {
	return &Monitor{session: s, deleter: s, registry: registry}
}

// Start registers the gateway handlers and launches the consume loops. Must be
// called after the session is open so the bot's own identity is known. The
// loops restart on any failure and never terminate the process.
func (m *Monitor) Start() {
	m.selfID = m.session.State.User.ID

	creates := make(chan *discordgo.MessageCreate, eventBuffer)
	deletes := make(chan *discordgo.MessageDelete, eventBuffer)

	m.session.AddHandler(func(s *discordgo.Session, e *discordgo.MessageCreate) {
		select {
		case creates <- e:
		default:
			log.Printf("Dropping message create event in channel %s: monitor backlog full", e.ChannelID)
		}
	})
	m.session.AddHandler(func(s *discordgo.Session, e *discordgo.MessageDelete) {
		select {
		case deletes <- e:
		default:
			log.Printf("Dropping message delete event in channel %s: monitor backlog full", e.ChannelID)
		}
	})

	go runForever("submission queue cleaner", func() error {
		return m.consumeCreates(creates)
	})
	go runForever("submission deletion propagation", func() error {
		return m.consumeDeletes(deletes)
	})
}

// runForever reruns fn whenever it returns or panics, logging each failure.
// A fault in one cycle must never end monitoring.
func runForever(name string, fn func() error) {
	for {
		if err := runGuarded(fn); err != nil {
			log.Printf("Error in %s, resubscribing: %v", name, err)
		}
	}
}

func runGuarded(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}

func (m *Monitor) consumeCreates(events <-chan *discordgo.MessageCreate) error {
	for e := range events {
		m.handleCreate(e)
	}
	return errors.New("message create stream closed")
}

func (m *Monitor) consumeDeletes(events <-chan *discordgo.MessageDelete) error {
	for e := range events {
		m.handleDelete(e)
	}
	return errors.New("message delete stream closed")
}

// handleCreate schedules noise in a watched queue channel for deletion after
// the grace delay. Deletion is best effort: the message may already be gone or
// the bot may lack permission, and neither matters.
func (m *Monitor) handleCreate(e *discordgo.MessageCreate) {
	if !m.registry.Contains(e.ChannelID) {
		return
	}
	if !shouldClean(m.selfID, e.Message) {
		return
	}

	channelID, messageID := e.ChannelID, e.ID
	time.AfterFunc(cleanupGraceDelay, func() {
		if err := m.deleter.ChannelMessageDelete(channelID, messageID); err != nil {
			log.Printf("Failed to clean message %s in queue channel %s: %v", messageID, channelID, err)
		}
	})
}

// handleDelete removes the submission backed by a deleted message, if any.
// Deletions of unrelated messages are ignored; per-event errors are logged and
// skipped so they never reach the resubscribe path.
func (m *Monitor) handleDelete(e *discordgo.MessageDelete) {
	if !m.registry.Contains(e.ChannelID) {
		return
	}
	if e.ID == "" {
		return
	}
	if err := db.DeleteSubmissionByMessageID(e.ID); err != nil {
		log.Printf("Failed to propagate deletion of message %s in channel %s: %v", e.ID, e.ChannelID, err)
	}
}

// shouldClean reports whether a message in a watched queue channel is noise.
// The only messages allowed to stay are the bot's own queue entries, recognized
// by the fixed submission marker.
func shouldClean(selfID string, msg *discordgo.Message) bool {
	if msg.Author != nil && msg.Author.ID == selfID && strings.HasPrefix(msg.Content, SubmissionMarker) {
		return false
	}
	return true
}

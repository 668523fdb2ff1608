package queue

import (
	"errors"
	"net/http"
	"testing"

	"lvlreq/db"
	"lvlreq/model"

	"github.com/bwmarrin/discordgo"
)

// fakeFetcher answers existence checks from a fixed map of message ids.
type fakeFetcher struct {
	existing map[string]bool
	failAll  bool
}

func (f *fakeFetcher) ChannelMessage(channelID, messageID string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.failAll {
		return nil, errors.New("gateway timeout")
	}
	if f.existing[messageID] {
		return &discordgo.Message{ID: messageID, ChannelID: channelID}, nil
	}
	return nil, &discordgo.RESTError{Response: &http.Response{StatusCode: http.StatusNotFound}}
}

func addSweepSubmission(t *testing.T, messageID string) string {
	t.Helper()
	id, err := db.AddSubmission(&model.Submission{GuildID: "g1", AuthorID: "alice", LevelID: int64(len(messageID))})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := db.SetSubmissionMessage(id, messageID, "queue1"); err != nil {
		t.Fatalf("set message failed: %v", err)
	}
	return id
}

func TestCleanOrphanSubmissionsIsIdempotent(t *testing.T) {
	setupTestDB(t)

	kept := addSweepSubmission(t, "alive")
	addSweepSubmission(t, "gone1")
	addSweepSubmission(t, "gone2")

	sweeper := NewSweeper(&fakeFetcher{existing: map[string]bool{"alive": true}})

	count, err := sweeper.CleanOrphanSubmissions()
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 orphans cleaned, got %d", count)
	}
	if sub, _ := db.GetSubmission(kept); sub == nil {
		t.Fatalf("the live submission must survive the sweep")
	}

	// Running again with no platform change deletes nothing.
	count, err = sweeper.CleanOrphanSubmissions()
	if err != nil {
		t.Fatalf("second sweep failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected a zero-deletion no-op, got %d", count)
	}
}

func TestCleanOrphanSubmissionsNeverDeletesOnUncertainty(t *testing.T) {
	setupTestDB(t)

	addSweepSubmission(t, "msg1")
	addSweepSubmission(t, "msg2")

	// Every fetch fails with a transient error: nothing may be deleted.
	sweeper := NewSweeper(&fakeFetcher{failAll: true})

	count, err := sweeper.CleanOrphanSubmissions()
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no deletions when existence can't be verified, got %d", count)
	}

	queued, err := db.GetQueuedSubmissions("g1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(queued) != 2 {
		t.Fatalf("expected both submissions to survive, got %d", len(queued))
	}
}

func TestCleanOrphanSubmissionsSkipsLegacyRows(t *testing.T) {
	setupTestDB(t)

	// A legacy row with no message reference can't be verified; it is left
	// for the backfill, not the sweep.
	if _, err := db.AddSubmission(&model.Submission{GuildID: "g1", AuthorID: "alice", LevelID: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	sweeper := NewSweeper(&fakeFetcher{})
	count, err := sweeper.CleanOrphanSubmissions()
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected legacy rows to be skipped, got %d deletions", count)
	}
}

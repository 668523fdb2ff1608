package queue

import (
	"testing"

	"lvlreq/db"
	"lvlreq/model"
)

func TestBackfillSubmissionChannels(t *testing.T) {
	setupTestDB(t)

	if err := db.SetQueueChannel("g1", "queue1"); err != nil {
		t.Fatalf("set queue channel failed: %v", err)
	}
	if _, err := db.GetOrCreateGuildConfig("g2"); err != nil { // g2 has no queue channel
		t.Fatalf("create config failed: %v", err)
	}

	legacy, err := db.AddSubmission(&model.Submission{GuildID: "g1", AuthorID: "alice", LevelID: 1})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	unknownGuild, err := db.AddSubmission(&model.Submission{GuildID: "g2", AuthorID: "bob", LevelID: 2})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	tracked, err := db.AddSubmission(&model.Submission{GuildID: "g1", AuthorID: "carol", LevelID: 3})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := db.SetSubmissionMessage(tracked, "msg3", "original-chan"); err != nil {
		t.Fatalf("set message failed: %v", err)
	}

	if err := BackfillSubmissionChannels(); err != nil {
		t.Fatalf("backfill failed: %v", err)
	}

	sub, _ := db.GetSubmission(legacy)
	if sub.MessageChannelID != "queue1" {
		t.Fatalf("expected the legacy row to get the guild's queue channel, got %q", sub.MessageChannelID)
	}

	sub, _ = db.GetSubmission(unknownGuild)
	if sub.MessageChannelID != "" {
		t.Fatalf("a guild without a queue channel must not be backfilled, got %q", sub.MessageChannelID)
	}

	sub, _ = db.GetSubmission(tracked)
	if sub.MessageChannelID != "original-chan" {
		t.Fatalf("backfill must never overwrite a recorded channel, got %q", sub.MessageChannelID)
	}

	// Running again is a no-op.
	if err := BackfillSubmissionChannels(); err != nil {
		t.Fatalf("second backfill failed: %v", err)
	}
	sub, _ = db.GetSubmission(legacy)
	if sub.MessageChannelID != "queue1" {
		t.Fatalf("second backfill changed the row: %q", sub.MessageChannelID)
	}
}

package queue

import (
	"testing"

	"lvlreq/db"
	"lvlreq/model"

	"github.com/bwmarrin/discordgo"
)

func TestShouldClean(t *testing.T) {
	tests := []struct {
		name    string
		author  string
		content string
		want    bool
	}{
		{"bot queue entry stays", "bot", SubmissionMarker + " `1`\n**Author:** Alice", false},
		{"bot chatter is cleaned", "bot", "processing...", true},
		{"user message is cleaned", "alice", "first!", true},
		{"user faking the marker is cleaned", "alice", SubmissionMarker + " `1`", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := &discordgo.Message{
				Author:  &discordgo.User{ID: tt.author},
				Content: tt.content,
			}
			if got := shouldClean("bot", msg); got != tt.want {
				t.Fatalf("shouldClean = %v, want %v", got, tt.want)
			}
		})
	}

	// System messages without an author are noise too.
	if !shouldClean("bot", &discordgo.Message{Content: "pinned a message"}) {
		t.Fatalf("authorless messages must be cleaned")
	}
}

func TestHandleDeletePropagatesToDatabase(t *testing.T) {
	setupTestDB(t)

	reg := NewChannelRegistry()
	reg.Add("queue1")
	monitor := &Monitor{registry: reg, selfID: "bot"}

	id, err := db.AddSubmission(&model.Submission{GuildID: "g1", AuthorID: "alice", LevelID: 1})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := db.SetSubmissionMessage(id, "msg1", "queue1"); err != nil {
		t.Fatalf("set message failed: %v", err)
	}

	// A deletion in an unwatched channel is ignored.
	monitor.handleDelete(&discordgo.MessageDelete{
		Message: &discordgo.Message{ID: "msg1", ChannelID: "elsewhere"},
	})
	if sub, _ := db.GetSubmission(id); sub == nil {
		t.Fatalf("submission must survive deletions outside watched channels")
	}

	// A deletion of an unrelated message in a watched channel is ignored.
	monitor.handleDelete(&discordgo.MessageDelete{
		Message: &discordgo.Message{ID: "unrelated", ChannelID: "queue1"},
	})
	if sub, _ := db.GetSubmission(id); sub == nil {
		t.Fatalf("submission must survive deletions of unrelated messages")
	}

	// Deleting the backing message removes the submission.
	monitor.handleDelete(&discordgo.MessageDelete{
		Message: &discordgo.Message{ID: "msg1", ChannelID: "queue1"},
	})
	if sub, _ := db.GetSubmission(id); sub != nil {
		t.Fatalf("expected the submission to be gone after its message was deleted")
	}
}

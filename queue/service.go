package queue

import (
	"errors"
	"log"

	"lvlreq/db"
	"lvlreq/model"

	"github.com/bwmarrin/discordgo"
)

// Errors surfaced to command handlers as user-facing notices rather than
// system faults.
var (
	ErrNotConfigured  = errors.New("level requests are not configured in this server")
	ErrQueueClosed    = errors.New("level requests are closed")
	ErrQueueFull      = errors.New("you already have too many submissions in the queue")
	ErrDuplicateLevel = errors.New("this level is already in the queue")
)

// messageSender is the subset of the Discord session used to publish and
// maintain queue entries.
type messageSender interface {
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEdit(channelID, messageID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
}

// RetrieveConfig returns the guild's level request config, creating a default
// one on first access. It fails with ErrNotConfigured when the queue is closed
// and any required setting is missing; callers surface that as a notice, not as
// a fault.
func RetrieveConfig(guildID string) (*model.GuildConfig, error) {
	cfg, err := db.GetOrCreateGuildConfig(guildID)
	if err != nil {
		return nil, err
	}
	if !cfg.IsConfigured() {
		return nil, ErrNotConfigured
	}
	return cfg, nil
}

// SubmitLevel queues a new level request and posts its entry to the guild's
// queue channel. The per-author cap and the duplicate-level check are enforced
// here; violations come back as the sentinel errors above.
func SubmitLevel(s messageSender, cfg *model.GuildConfig, authorID string, levelID int64, youtubeLink string, resolve UserResolver) (*model.Submission, error) {
	if !cfg.IsOpen {
		return nil, ErrQueueClosed
	}

	if cfg.MaxQueuedPerUser > 0 {
		count, err := db.CountQueuedByAuthor(cfg.GuildID, authorID)
		if err != nil {
			return nil, err
		}
		if count >= cfg.MaxQueuedPerUser {
			return nil, ErrQueueFull
		}
	}

	exists, err := db.ExistsQueuedLevel(cfg.GuildID, levelID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateLevel
	}

	sub := &model.Submission{
		GuildID:     cfg.GuildID,
		AuthorID:    authorID,
		LevelID:     levelID,
		YoutubeLink: youtubeLink,
	}
	sub.ID, err = db.AddSubmission(sub)
	if err != nil {
		return nil, err
	}

	msg, err := s.ChannelMessageSend(cfg.QueueChannelID, BuildSubmissionMessage(cfg, sub, nil, resolve))
	if err != nil {
		// The row stays queued; the orphan sweep or a manual resubmit will
		// reconcile it if the message never lands.
		log.Printf("Failed to post submission %s to queue channel %s: %v", sub.ID, cfg.QueueChannelID, err)
		return sub, nil
	}

	if err := db.SetSubmissionMessage(sub.ID, msg.ID, msg.ChannelID); err != nil {
		return nil, err
	}
	sub.MessageID = msg.ID
	sub.MessageChannelID = msg.ChannelID

	return sub, nil
}

// SubmitReview records reviewer feedback and refreshes the queue entry. Once
// the configured number of reviews is reached the submission is posted to the
// archive channel and removed from the queue, reviews first, in one
// transaction.
func SubmitReview(s messageSender, cfg *model.GuildConfig, sub *model.Submission, reviewerID, content string, resolve UserResolver) (done bool, count int, err error) {
	if err := db.AddReview(sub.ID, reviewerID, content); err != nil {
		return false, 0, err
	}

	reviews, err := db.GetReviewsForSubmission(sub.ID)
	if err != nil {
		return false, 0, err
	}
	rendered := BuildSubmissionMessage(cfg, sub, reviews, resolve)

	if len(reviews) < cfg.MinReviewsRequired {
		if sub.MessageID != "" {
			if _, err := s.ChannelMessageEdit(sub.MessageChannelID, sub.MessageID, rendered); err != nil {
				log.Printf("Failed to update queue message for submission %s: %v", sub.ID, err)
			}
		}
		return false, len(reviews), nil
	}

	if _, err := s.ChannelMessageSend(cfg.ArchiveChannelID, rendered); err != nil {
		return false, len(reviews), err
	}
	if err := db.DeleteSubmission(sub.ID); err != nil {
		return false, len(reviews), err
	}
	if sub.MessageID != "" {
		if err := s.ChannelMessageDelete(sub.MessageChannelID, sub.MessageID); err != nil {
			log.Printf("Failed to delete queue message for archived submission %s: %v", sub.ID, err)
		}
	}

	return true, len(reviews), nil
}

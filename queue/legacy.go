package queue

import (
	"log"

	"lvlreq/db"
)

// BackfillSubmissionChannels fills in the message channel for submissions
// recorded before the channel was stored per row, using each guild's current
// queue channel. It runs at every startup: rows that already carry a channel
// are never touched, so the pass is idempotent.
func BackfillSubmissionChannels() error {
	configs, err := db.GetAllGuildConfigs()
	if err != nil {
		return err
	}

	queueChannels := make(map[string]string, len(configs))
	for _, cfg := range configs {
		if cfg.QueueChannelID != "" {
			queueChannels[cfg.GuildID] = cfg.QueueChannelID
		}
	}

	submissions, err := db.GetLegacySubmissions()
	if err != nil {
		return err
	}

	filled := 0
	for _, sub := range submissions {
		channelID, ok := queueChannels[sub.GuildID]
		if !ok {
			continue
		}
		if err := db.SetSubmissionChannel(sub.ID, channelID); err != nil {
			log.Printf("Failed to backfill channel for submission %s: %v", sub.ID, err)
			continue
		}
		filled++
	}

	if filled > 0 {
		log.Printf("Backfilled message channel for %d legacy submissions", filled)
	}
	return nil
}

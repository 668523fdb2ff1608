package levelreq

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"lvlreq/db"
	"lvlreq/queue"

	"github.com/bwmarrin/discordgo"
)

// QueueHandler lists the guild's queued submissions in review order.
func QueueHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	_, err := queue.RetrieveConfig(i.GuildID)
	if errors.Is(err, queue.ErrNotConfigured) {
		respondEphemeral(s, i, "Level requests are not configured in this server.")
		return
	}
	if err != nil {
		log.Printf("Error retrieving level request config for guild %s: %v", i.GuildID, err)
		respondEphemeral(s, i, "Could not process your request, please try again later.")
		return
	}

	submissions, err := db.GetQueuedSubmissions(i.GuildID)
	if err != nil {
		log.Printf("Error listing submissions for guild %s: %v", i.GuildID, err)
		respondEphemeral(s, i, "Could not load the queue, please try again later.")
		return
	}

	if len(submissions) == 0 {
		respondEphemeral(s, i, "The review queue is empty.")
		return
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("**%d submissions in the queue:**", len(submissions)))
	for _, sub := range submissions {
		b.WriteString(fmt.Sprintf("\n‣ `%s` — level `%d` by <@%s>", sub.ID, sub.LevelID, sub.AuthorID))
	}

	respondEphemeral(s, i, b.String())
}

package levelreq

import (
	"errors"
	"fmt"
	"log"

	"lvlreq/queue"

	"github.com/bwmarrin/discordgo"
)

// SubmitHandler queues a new level request for review.
func SubmitHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	cfg, err := queue.RetrieveConfig(i.GuildID)
	if errors.Is(err, queue.ErrNotConfigured) {
		respondEphemeral(s, i, "Level requests are not configured in this server.")
		return
	}
	if err != nil {
		log.Printf("Error retrieving level request config for guild %s: %v", i.GuildID, err)
		respondEphemeral(s, i, "Could not process your request, please try again later.")
		return
	}

	options := optionMap(i.ApplicationCommandData().Options)
	levelID := options["level_id"].IntValue()
	var youtubeLink string
	if opt, ok := options["youtube_link"]; ok {
		youtubeLink = opt.StringValue()
	}

	sub, err := queue.SubmitLevel(s, cfg, i.Member.User.ID, levelID, youtubeLink, queue.SessionUserResolver(s))
	switch {
	case errors.Is(err, queue.ErrQueueClosed):
		respondEphemeral(s, i, "Level requests are closed in this server.")
		return
	case errors.Is(err, queue.ErrQueueFull):
		respondEphemeral(s, i, fmt.Sprintf("You already have %d submissions in the queue. Wait for them to be reviewed before submitting more.", cfg.MaxQueuedPerUser))
		return
	case errors.Is(err, queue.ErrDuplicateLevel):
		respondEphemeral(s, i, "This level is already in the review queue.")
		return
	case err != nil:
		log.Printf("Error submitting level %d in guild %s: %v", levelID, i.GuildID, err)
		respondEphemeral(s, i, "Could not submit your level, please try again later.")
		return
	}

	respondEphemeral(s, i, fmt.Sprintf("Your level request has been submitted with ID `%s`.", sub.ID))
}

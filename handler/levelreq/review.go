package levelreq

import (
	"errors"
	"fmt"
	"log"
	"slices"

	"lvlreq/db"
	"lvlreq/queue"

	"github.com/bwmarrin/discordgo"
)

// ReviewHandler records reviewer feedback on a queued submission and closes it
// out once enough reviews have been collected.
func ReviewHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
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

	if !slices.Contains(i.Member.Roles, cfg.ReviewerRoleID) {
		respondEphemeral(s, i, "You need the reviewer role to review submissions.")
		return
	}

	options := optionMap(i.ApplicationCommandData().Options)
	submissionID := options["submission_id"].StringValue()
	content := options["content"].StringValue()

	sub, err := db.GetSubmission(submissionID)
	if err != nil {
		log.Printf("Error loading submission %s: %v", submissionID, err)
		respondEphemeral(s, i, "Could not process your request, please try again later.")
		return
	}
	if sub == nil || sub.GuildID != i.GuildID {
		respondEphemeral(s, i, fmt.Sprintf("No queued submission found with ID `%s`.", submissionID))
		return
	}
	if sub.AuthorID == i.Member.User.ID {
		respondEphemeral(s, i, "You can't review your own submission.")
		return
	}

	done, count, err := queue.SubmitReview(s, cfg, sub, i.Member.User.ID, content, queue.SessionUserResolver(s))
	if err != nil {
		log.Printf("Error reviewing submission %s: %v", submissionID, err)
		respondEphemeral(s, i, "Could not record your review, please try again later.")
		return
	}

	if done {
		respondEphemeral(s, i, fmt.Sprintf("Review added. Submission `%s` reached %d/%d reviews and was moved to the archive.",
			submissionID, count, cfg.MinReviewsRequired))
		return
	}
	respondEphemeral(s, i, fmt.Sprintf("Review added to submission `%s` (%d/%d).", submissionID, count, cfg.MinReviewsRequired))
}

package levelreq

import (
	"fmt"
	"log"

	"lvlreq/db"
	"lvlreq/utils"

	"github.com/bwmarrin/discordgo"
)

// SetupHandler mutates the guild's level request configuration. Each subcommand
// sets one field; setting the queue channel also starts watching it.
func SetupHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !utils.CheckAuth(i.Member.User.ID, i.Member.Roles) {
		respondEphemeral(s, i, "You are not allowed to configure level requests.")
		return
	}

	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return
	}
	sub := data.Options[0]
	options := optionMap(sub.Options)

	var err error
	var confirmation string

	switch sub.Name {
	case "open":
		err = db.SetGuildOpen(i.GuildID, true)
		confirmation = "Level requests are now open."
	case "close":
		err = db.SetGuildOpen(i.GuildID, false)
		confirmation = "Level requests are now closed."
	case "queue-channel":
		channel := options["channel"].ChannelValue(nil)
		err = db.SetQueueChannel(i.GuildID, channel.ID)
		if err == nil {
			registry.Add(channel.ID)
		}
		confirmation = fmt.Sprintf("Submission queue channel set to <#%s>.", channel.ID)
	case "archive-channel":
		channel := options["channel"].ChannelValue(nil)
		err = db.SetArchiveChannel(i.GuildID, channel.ID)
		confirmation = fmt.Sprintf("Archive channel set to <#%s>.", channel.ID)
	case "reviewer-role":
		role := options["role"].RoleValue(nil, i.GuildID)
		err = db.SetReviewerRole(i.GuildID, role.ID)
		confirmation = fmt.Sprintf("Reviewer role set to <@&%s>.", role.ID)
	case "min-reviews":
		count := int(options["count"].IntValue())
		err = db.SetMinReviewsRequired(i.GuildID, count)
		confirmation = fmt.Sprintf("Submissions now close after %d reviews.", count)
	case "max-queued":
		count := int(options["count"].IntValue())
		err = db.SetMaxQueuedPerUser(i.GuildID, count)
		confirmation = fmt.Sprintf("Each member may now have up to %d submissions queued.", count)
	default:
		return
	}

	if err != nil {
		log.Printf("Error updating level request config for guild %s: %v", i.GuildID, err)
		respondEphemeral(s, i, "Could not update the configuration, please try again later.")
		return
	}

	respondEphemeral(s, i, confirmation)
}

package def

import "github.com/bwmarrin/discordgo"

var ReviewCommand = &discordgo.ApplicationCommand{
	Name:        "review",
	Description: "Add a review to a queued submission",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "submission_id",
			Description: "The ID of the submission to review",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "content",
			Description: "Your feedback on the level",
			Required:    true,
		},
	},
}

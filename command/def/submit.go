package def

import "github.com/bwmarrin/discordgo"

var SubmitCommand = &discordgo.ApplicationCommand{
	Name:        "submit",
	Description: "Submit a level to the review queue",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "level_id",
			Description: "The ID of the level to submit",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "youtube_link",
			Description: "A YouTube video showcasing the level",
			Required:    false,
		},
	},
}

package def

import "github.com/bwmarrin/discordgo"

var QueueCommand = &discordgo.ApplicationCommand{
	Name:        "queue",
	Description: "Show the submissions currently waiting for review",
}

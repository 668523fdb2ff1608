package def

import "github.com/bwmarrin/discordgo"

var ChannelsCommand = &discordgo.ApplicationCommand{
	Name:        "lvlreq-channels",
	Description: "Show the submission queue channels being watched",
}

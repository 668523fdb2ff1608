package command

import (
	"lvlreq/command/def"

	"github.com/bwmarrin/discordgo"
)

// AllCommands contains all of the commands
var AllCommands = []*discordgo.ApplicationCommand{
	def.SubmitCommand,
	def.ReviewCommand,
	def.QueueCommand,
	def.SetupCommand,
	def.ChannelsCommand,
}

package bot

import (
	"lvlreq/handler"

	"github.com/bwmarrin/discordgo"
)

func registerEventHandlers(s *discordgo.Session) {
	s.AddHandler(handler.OnInteractionCreate)

	// 设置必要的intents
	s.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsGuilds
}

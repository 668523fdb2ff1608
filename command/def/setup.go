package def

import "github.com/bwmarrin/discordgo"

var minCount = float64(1)

var SetupCommand = &discordgo.ApplicationCommand{
	Name:        "lvlreq-setup",
	Description: "Configure level requests for this server",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "open",
			Description: "Open the submission queue",
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "close",
			Description: "Close the submission queue",
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "queue-channel",
			Description: "Set the submission queue channel",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionChannel,
					Name:        "channel",
					Description: "The channel where submissions are posted",
					ChannelTypes: []discordgo.ChannelType{
						discordgo.ChannelTypeGuildText,
					},
					Required: true,
				},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "archive-channel",
			Description: "Set the channel for reviewed submissions",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionChannel,
					Name:        "channel",
					Description: "The channel reviewed submissions move to",
					ChannelTypes: []discordgo.ChannelType{
						discordgo.ChannelTypeGuildText,
					},
					Required: true,
				},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "reviewer-role",
			Description: "Set the role allowed to review submissions",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionRole,
					Name:        "role",
					Description: "The reviewer role",
					Required:    true,
				},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "min-reviews",
			Description: "Set how many reviews close out a submission",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "count",
					Description: "Number of reviews required",
					MinValue:    &minCount,
					Required:    true,
				},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "max-queued",
			Description: "Set the cap on queued submissions per member",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "count",
					Description: "Maximum queued submissions per member",
					MinValue:    &minCount,
					Required:    true,
				},
			},
		},
	},
}

package bot

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"lvlreq/command"
	"lvlreq/config"
	"lvlreq/db"
	"lvlreq/handler/levelreq"
	"lvlreq/queue"

	"github.com/bwmarrin/discordgo"
)

var dg *discordgo.Session

// Start runs the bot until it receives an interrupt signal.
func Start() {
	db.InitDB()

	err := config.LoadConfig()
	if err != nil {
		log.Printf("Error loading config file: %v", err)
		return
	}

	// The registry is shared between the queue monitors and the setup command.
	registry := queue.NewChannelRegistry()

	levelreq.RegisterHandlers(registry)

	dg, err = discordgo.New("Bot " + config.Cfg.Token)
	if err != nil {
		log.Printf("Error creating Discord session: %v", err)
		return
	}

	registerEventHandlers(dg)

	err = dg.Open()
	if err != nil {
		log.Printf("error opening connection, %v", err)
		return
	}

	if err := registry.SeedFromGuildConfigs(); err != nil {
		log.Printf("Error seeding watched channel registry: %v", err)
	}

	// One-shot backfill for rows that predate per-submission channel tracking.
	if err := queue.BackfillSubmissionChannels(); err != nil {
		log.Printf("Error backfilling legacy submissions: %v", err)
	}

	monitor := queue.NewMonitor(dg, registry)
	monitor.Start()

	sweeper := queue.NewSweeper(dg)
	if err := sweeper.Schedule(); err != nil {
		log.Printf("Error scheduling the orphan submission sweep: %v", err)
	}

	for _, guildID := range config.Cfg.Commands.AllowGuilds {
		for _, cmd := range command.AllCommands {
			_, err := dg.ApplicationCommandCreate(dg.State.User.ID, guildID, cmd)
			if err != nil {
				log.Fatalf("Cannot create '%v' command: %v", cmd.Name, err)
			}
		}
	}

	log.Printf("Bot is now running. Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	dg.Close()
}

package levelreq

import (
	"lvlreq/command/def"
	"lvlreq/handler"
	"lvlreq/queue"
)

// registry is the shared set of watched queue channels, injected at startup.
// The setup command adds to it so newly configured channels are monitored
// without a restart.
var registry *queue.ChannelRegistry

// RegisterHandlers wires the level request commands into the interaction
// router. The channel registry is the same instance the queue monitors use.
func RegisterHandlers(reg *queue.ChannelRegistry) {
	registry = reg

	handler.AddCommandHandler(def.SubmitCommand.Name, SubmitHandler)
	handler.AddCommandHandler(def.ReviewCommand.Name, ReviewHandler)
	handler.AddCommandHandler(def.QueueCommand.Name, QueueHandler)
	handler.AddCommandHandler(def.SetupCommand.Name, SetupHandler)
	handler.AddCommandHandler(def.ChannelsCommand.Name, ChannelsHandler)
}

package levelreq

import (
	"sort"
	"strings"

	"lvlreq/utils"

	"github.com/bwmarrin/discordgo"
)

// ChannelsHandler shows the queue channels currently being monitored, straight
// from the shared registry. Useful to check whether a freshly configured
// channel was picked up.
func ChannelsHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !utils.CheckAuth(i.Member.User.ID, i.Member.Roles) {
		respondEphemeral(s, i, "You are not allowed to inspect the watched channels.")
		return
	}

	ids := registry.Snapshot()
	if len(ids) == 0 {
		respondEphemeral(s, i, "No submission queue channels are being watched.")
		return
	}
	sort.Strings(ids)

	var b strings.Builder
	b.WriteString("Watched submission queue channels:")
	for _, id := range ids {
		b.WriteString("\n‣ <#" + id + "> (`" + id + "`)")
	}

	respondEphemeral(s, i, b.String())
}

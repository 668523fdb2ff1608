package model

// GuildConfig holds the per-guild level request settings from the guild_configs
// table. Empty strings and zero values mean "not set yet".
type GuildConfig struct {
	GuildID            string
	QueueChannelID     string
	ArchiveChannelID   string
	ReviewerRoleID     string
	MinReviewsRequired int
	MaxQueuedPerUser   int
	IsOpen             bool
}

// IsConfigured reports whether level requests are usable in the guild: either
// the queue was explicitly opened, or every required setting is present.
func (c *GuildConfig) IsConfigured() bool {
	if c.IsOpen {
		return true
	}
	return c.QueueChannelID != "" &&
		c.ArchiveChannelID != "" &&
		c.ReviewerRoleID != "" &&
		c.MinReviewsRequired > 0
}

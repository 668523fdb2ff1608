package model

// Submission is one queued level request, backed by a message in the guild's
// submission queue channel.
type Submission struct {
	ID               string
	GuildID          string
	AuthorID         string
	LevelID          int64
	YoutubeLink      string
	MessageID        string
	MessageChannelID string // empty on legacy rows until backfilled
	CreatedAt        int64
	IsReviewed       bool
}

// Review is reviewer feedback attached to a submission. Reviews are owned by
// their submission and are deleted together with it.
type Review struct {
	ID           string
	SubmissionID string
	ReviewerID   string
	Content      string
	CreatedAt    int64
}

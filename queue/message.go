package queue

import (
	"fmt"
	"strconv"
	"strings"

	"lvlreq/model"

	"github.com/bwmarrin/discordgo"
)

// SubmissionMarker is the fixed prefix of every bot-generated queue entry. The
// channel cleaner relies on it to tell submissions apart from chatter, so it
// must stay in sync with BuildSubmissionMessage.
const SubmissionMarker = "**Submission ID:**"

// UserResolver resolves a Discord user ID to a display name. Returning an error
// means the user could not be resolved; rendering falls back to a placeholder.
type UserResolver func(userID string) (string, error)

// SessionUserResolver resolves display names through the Discord session.
func SessionUserResolver(s *discordgo.Session) UserResolver {
	return func(userID string) (string, error) {
		user, err := s.User(userID)
		if err != nil {
			return "", err
		}
		return user.Username, nil
	}
}

// formatUser renders "name (`id`)", falling back to "Unknown User" when the
// resolver fails. Resolution failures never abort rendering.
func formatUser(resolve UserResolver, userID string) string {
	name, err := resolve(userID)
	if err != nil || name == "" {
		name = "Unknown User"
	}
	return name + " (`" + userID + "`)"
}

// BuildSubmissionMessage renders the queue entry for a submission: header,
// author, level, optional YouTube link, review progress and one block per
// review in the order they were written.
func BuildSubmissionMessage(cfg *model.GuildConfig, sub *model.Submission, reviews []*model.Review, resolve UserResolver) string {
	link := "*Not provided*"
	if sub.YoutubeLink != "" {
		link = sub.YoutubeLink
	}

	var b strings.Builder
	b.WriteString(SubmissionMarker + " `" + sub.ID + "`\n")
	b.WriteString("**Author:** " + formatUser(resolve, sub.AuthorID) + "\n")
	b.WriteString("**Level ID:** `" + strconv.FormatInt(sub.LevelID, 10) + "`\n")
	b.WriteString("**YouTube link:** " + link + "\n")
	b.WriteString("───────────\n")
	fmt.Fprintf(&b, "**Reviews:** %d/%d", len(reviews), cfg.MinReviewsRequired)

	for _, review := range reviews {
		b.WriteString("\n✏️ " + formatUser(resolve, review.ReviewerID) + "\n" + review.Content)
	}

	return b.String()
}

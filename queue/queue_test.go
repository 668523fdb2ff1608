package queue

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"lvlreq/db"

	"github.com/bwmarrin/discordgo"
)

// setupTestDB points the global pool at a fresh throwaway database.
func setupTestDB(t *testing.T) {
	t.Helper()
	db.InitDBAt(filepath.Join(t.TempDir(), "lvlreq-test.db"))
	t.Cleanup(func() { db.DB.Close() })
}

type sentMessage struct {
	channelID string
	content   string
}

// fakeSession records the channel traffic a flow produces.
type fakeSession struct {
	sent     []sentMessage
	edited   []sentMessage
	deleted  []string
	failSend bool
}

func (f *fakeSession) ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.failSend {
		return nil, errors.New("send failed")
	}
	f.sent = append(f.sent, sentMessage{channelID: channelID, content: content})
	return &discordgo.Message{ID: fmt.Sprintf("msg%d", len(f.sent)), ChannelID: channelID, Content: content}, nil
}

func (f *fakeSession) ChannelMessageEdit(channelID, messageID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.edited = append(f.edited, sentMessage{channelID: channelID, content: content})
	return &discordgo.Message{ID: messageID, ChannelID: channelID, Content: content}, nil
}

func (f *fakeSession) ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error {
	f.deleted = append(f.deleted, messageID)
	return nil
}

// namedResolver resolves from a fixed map and fails for everyone else.
func namedResolver(names map[string]string) UserResolver {
	return func(userID string) (string, error) {
		if name, ok := names[userID]; ok {
			return name, nil
		}
		return "", errors.New("user not found")
	}
}

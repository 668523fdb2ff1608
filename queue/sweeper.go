package queue

import (
	"errors"
	"log"
	"net/http"
	"time"

	"lvlreq/db"

	"github.com/bwmarrin/discordgo"
	"github.com/go-co-op/gocron/v2"
)

const (
	sweepInitialDelay = 12 * time.Hour
	sweepInterval     = 24 * time.Hour
)

// messageFetcher is the subset of the Discord session used to verify that a
// submission's backing message still exists.
type messageFetcher interface {
	ChannelMessage(channelID, messageID string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Sweeper reconciles the database against Discord: submissions whose backing
// message no longer exists are removed on a fixed schedule.
type Sweeper struct {
	fetcher messageFetcher
}

// NewSweeper creates a sweeper that checks messages through the given fetcher,
// normally the Discord session.
func NewSweeper(fetcher messageFetcher) *Sweeper {
	return &Sweeper{fetcher: fetcher}
}

// CleanOrphanSubmissions deletes every queued submission whose backing message
// is confirmed gone, in a single transaction, and returns the count. A message
// that cannot be verified (transient fetch error, missing access) is left
// untouched: deletion never happens on uncertainty. The count is logged even
// when zero so the sweep's liveness can be monitored.
func (sw *Sweeper) CleanOrphanSubmissions() (int64, error) {
	submissions, err := db.GetAllQueuedWithMessage()
	if err != nil {
		return 0, err
	}

	var orphaned []string
	for _, sub := range submissions {
		if sw.messageGone(sub.MessageChannelID, sub.MessageID) {
			orphaned = append(orphaned, sub.ID)
		}
	}

	var count int64
	if len(orphaned) > 0 {
		count, err = db.DeleteSubmissionsIn(orphaned)
		if err != nil {
			return 0, err
		}
	}

	log.Printf("Cleaned %d orphan submissions from database", count)
	return count, nil
}

// messageGone reports whether the message is confirmed deleted. Only an
// explicit not-found response counts; any other failure is treated as "still
// there".
func (sw *Sweeper) messageGone(channelID, messageID string) bool {
	_, err := sw.fetcher.ChannelMessage(channelID, messageID)
	if err == nil {
		return false
	}

	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound {
		return true
	}
	return false
}

// Schedule runs the sweep every 24 hours, starting 12 hours after startup.
func (sw *Sweeper) Schedule() error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(sweepInterval),
		gocron.NewTask(func() {
			if _, err := sw.CleanOrphanSubmissions(); err != nil {
				log.Printf("Error while cleaning orphan submissions: %v", err)
			}
		}),
		gocron.WithStartAt(gocron.WithStartDateTime(time.Now().Add(sweepInitialDelay))),
	)
	if err != nil {
		return err
	}

	scheduler.Start()
	return nil
}

package recency

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const keyPrefix = "recent_boards:"

// Tracker records board views and reports the most recently viewed boards
// for a user. A nil client disables tracking entirely.
type Tracker struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewTracker(client *redis.Client, log *logrus.Logger) *Tracker {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Tracker{client: client, log: log}
}

func key(userID int64) string {
	return keyPrefix + strconv.FormatInt(userID, 10)
}

// RecordView upserts the board into the user's recency set, scored by the
// view time in unix seconds. A repeat view moves the board to the front
// rather than adding a second entry. Failures are logged and swallowed.
func (t *Tracker) RecordView(ctx context.Context, userID, boardID int64, at time.Time) {
	if t.client == nil {
		return
	}
	err := t.client.ZAdd(ctx, key(userID), redis.Z{
		Score:  float64(at.Unix()),
		Member: boardID,
	}).Err()
	if err != nil {
		t.log.WithError(err).WithFields(logrus.Fields{
			"user_id":  userID,
			"board_id": boardID,
		}).Warn("recency: record view failed")
	}
}

// TopRecent returns up to limit board ids ordered from most to least
// recently viewed. On any failure it logs and returns an empty slice so
// callers degrade to showing no recent boards.
func (t *Tracker) TopRecent(ctx context.Context, userID int64, limit int) []int64 {
	if t.client == nil || limit <= 0 {
		return nil
	}
	members, err := t.client.ZRevRange(ctx, key(userID), 0, int64(limit-1)).Result()
	if err != nil {
		t.log.WithError(err).WithField("user_id", userID).Warn("recency: top recent failed")
		return nil
	}
	ids := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// Forget drops a board from every caller-supplied user's set. Used when a
// board is deleted so it stops surfacing in recent lists.
func (t *Tracker) Forget(ctx context.Context, userIDs []int64, boardID int64) {
	if t.client == nil {
		return
	}
	for _, uid := range userIDs {
		if err := t.client.ZRem(ctx, key(uid), boardID).Err(); err != nil {
			t.log.WithError(err).WithFields(logrus.Fields{
				"user_id":  uid,
				"board_id": boardID,
			}).Warn("recency: forget failed")
		}
	}
}

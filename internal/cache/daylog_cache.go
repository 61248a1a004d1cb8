// Package cache provides a read-through in-process cache for per-day workout
// logs, keyed by the same formatted date keys the log store uses.
package cache

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"fitweek/fitness-tracker/internal/domain"

	"github.com/coocood/freecache"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CachedEntry is the cached view of one exercise entry for a day. It carries
// every field a store read returns, so a warm read answers the same as a
// cold one.
type CachedEntry struct {
	ExerciseID    string   `json:"exerciseId"`
	Completed     bool     `json:"completed"`
	Weights       []string `json:"weights"`
	SetsCompleted *int     `json:"setsCompleted,omitempty"`
	RepsCompleted *int     `json:"repsCompleted,omitempty"`
}

// DayLog is a day's entries in exerciseId order, matching store reads.
type DayLog []CachedEntry

// DayLogCache caches a member's day logs in memory. Entries expire after the
// configured TTL; saves overwrite eagerly so readers never see a stale day
// they themselves just wrote.
type DayLogCache struct {
	cache      *freecache.Cache
	ttlSeconds int
}

// NewDayLogCache creates a cache of roughly sizeMB megabytes.
func NewDayLogCache(sizeMB int, ttl time.Duration) *DayLogCache {
	if sizeMB <= 0 {
		sizeMB = 16
	}
	return &DayLogCache{
		cache:      freecache.NewCache(sizeMB * 1024 * 1024),
		ttlSeconds: int(ttl.Seconds()),
	}
}

// Key builds the cache key for a member/day pair. The "workout-log-<date>"
// prefix is the shared key scheme; the user ID suffix keeps members apart.
func Key(userID primitive.ObjectID, dateKey string) string {
	return fmt.Sprintf("workout-log-%s:%s", dateKey, userID.Hex())
}

// Get returns the cached day log, or ok=false on a miss. A stored value
// that no longer parses is evicted and treated as a miss — the caller falls
// back to the store, never to an error.
func (c *DayLogCache) Get(userID primitive.ObjectID, dateKey string) (DayLog, bool) {
	key := []byte(Key(userID, dateKey))
	raw, err := c.cache.Get(key)
	if err != nil {
		return nil, false
	}
	var day DayLog
	if err := json.Unmarshal(raw, &day); err != nil {
		c.cache.Del(key)
		return nil, false
	}
	return day, true
}

// Set stores the day log. Serialization failures and over-capacity values
// are ignored; the cache is best effort.
func (c *DayLogCache) Set(userID primitive.ObjectID, dateKey string, day DayLog) {
	raw, err := json.Marshal(day)
	if err != nil {
		return
	}
	_ = c.cache.Set([]byte(Key(userID, dateKey)), raw, c.ttlSeconds)
}

// SetFromEntries stores the cached view of a full entry batch, sorted into
// the exerciseId order the store serves.
func (c *DayLogCache) SetFromEntries(userID primitive.ObjectID, dateKey string, entries []domain.WorkoutLogEntry) {
	day := make(DayLog, 0, len(entries))
	for _, e := range entries {
		day = append(day, CachedEntry{
			ExerciseID:    e.ExerciseID,
			Completed:     e.Completed,
			Weights:       e.Weights,
			SetsCompleted: e.SetsCompleted,
			RepsCompleted: e.RepsCompleted,
		})
	}
	sort.Slice(day, func(i, j int) bool { return day[i].ExerciseID < day[j].ExerciseID })
	c.Set(userID, dateKey, day)
}

// Invalidate drops the cached day log.
func (c *DayLogCache) Invalidate(userID primitive.ObjectID, dateKey string) {
	c.cache.Del([]byte(Key(userID, dateKey)))
}

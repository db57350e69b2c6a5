package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"uqifeed/internal/models"

	"github.com/redis/go-redis/v9"
)

// ReportCache is the cache collaborator for derived reports, keyed by
// (user, period type, period key). The report builders never touch it;
// callers decide when to read, store and invalidate.
type ReportCache struct {
	client *redis.Client
	ctx    context.Context
}

// DefaultReportTTL bounds how long a cached report can outlive its last
// rebuild even without an invalidation event.
const DefaultReportTTL = 6 * time.Hour

func NewReportCache() (*ReportCache, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &ReportCache{client: client, ctx: ctx}, nil
}

func (c *ReportCache) Close() error {
	return c.client.Close()
}

func dailyKey(userID uint, reportDate string) string {
	return fmt.Sprintf("report:daily:%d:%s", userID, reportDate)
}

func weeklyKey(userID uint, weekStartDate string) string {
	return fmt.Sprintf("report:weekly:%d:%s", userID, weekStartDate)
}

// StoreDailyReport caches a freshly built daily report.
func (c *ReportCache) StoreDailyReport(report *models.DailyReport, ttl time.Duration) error {
	return c.store(dailyKey(report.UserID, report.ReportDate), report, ttl)
}

// GetDailyReport returns the cached report and whether it was present.
func (c *ReportCache) GetDailyReport(userID uint, reportDate string) (*models.DailyReport, bool, error) {
	var report models.DailyReport
	found, err := c.load(dailyKey(userID, reportDate), &report)
	if !found || err != nil {
		return nil, false, err
	}
	return &report, true, nil
}

func (c *ReportCache) StoreWeeklyReport(report *models.WeeklyReport, ttl time.Duration) error {
	return c.store(weeklyKey(report.UserID, report.WeekStartDate), report, ttl)
}

func (c *ReportCache) GetWeeklyReport(userID uint, weekStartDate string) (*models.WeeklyReport, bool, error) {
	var report models.WeeklyReport
	found, err := c.load(weeklyKey(userID, weekStartDate), &report)
	if !found || err != nil {
		return nil, false, err
	}
	return &report, true, nil
}

// InvalidateDay drops the cached daily report for the date and the weekly
// report of the week containing it. Entry mutations trigger this before
// reports are rebuilt.
func (c *ReportCache) InvalidateDay(userID uint, reportDate, weekStartDate string) error {
	return c.client.Del(c.ctx, dailyKey(userID, reportDate), weeklyKey(userID, weekStartDate)).Err()
}

func (c *ReportCache) store(key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := c.client.Set(c.ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store report in Redis: %w", err)
	}
	return nil
}

func (c *ReportCache) load(key string, dest interface{}) (bool, error) {
	data, err := c.client.Get(c.ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get report from Redis: %w", err)
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return true, nil
}

// GetStatus reports connection pool statistics for the debug endpoint.
func (c *ReportCache) GetStatus() (map[string]interface{}, error) {
	if _, err := c.client.Ping(c.ctx).Result(); err != nil {
		return nil, err
	}
	stats := c.client.PoolStats()
	return map[string]interface{}{
		"connected":    true,
		"hits":         stats.Hits,
		"misses":       stats.Misses,
		"active_conns": stats.TotalConns,
	}, nil
}

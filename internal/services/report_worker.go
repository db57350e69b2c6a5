package services

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"uqifeed/internal/cache"
	"uqifeed/internal/models"
	"uqifeed/internal/nutrition"
	"uqifeed/internal/repository"

	"github.com/streadway/amqp"
)

// EntryEventQueue is the queue entry-mutation events are published to and
// consumed from. Every food entry create/update/delete emits one event so
// the reports covering that day get invalidated and rebuilt.
const EntryEventQueue = "food.entry.events"

// EntryEvent announces that a user's entries for one local date changed.
type EntryEvent struct {
	UserID   uint   `json:"user_id"`
	Date     string `json:"date"`
	Timezone string `json:"timezone"`
}

// ReportScheduler is the slice of the worker controllers depend on, so
// tests can substitute a mock.
type ReportScheduler interface {
	NotifyEntryChanged(userID uint, date time.Time, loc *time.Location)
}

// ReportWorker rebuilds daily and weekly reports in the background.
// Rebuilds for the same (user, date) key are serialized through a per-key
// mutex; the builders themselves are idempotent, so replays and retries
// are harmless.
type ReportWorker struct {
	entryRepo   repository.FoodEntryRepository
	targetRepo  repository.NutritionTargetRepository
	reportRepo  repository.ReportRepository
	reportCache *cache.ReportCache

	eventQueue  chan EntryEvent
	workerCount int
	stopChan    chan struct{}
	wg          sync.WaitGroup
	running     bool
	mu          sync.RWMutex

	conn    *amqp.Connection
	channel *amqp.Channel
	amqpURL string

	keyLocks   map[string]*sync.Mutex
	keyLocksMu sync.Mutex
}

func NewReportWorker(
	entryRepo repository.FoodEntryRepository,
	targetRepo repository.NutritionTargetRepository,
	reportRepo repository.ReportRepository,
	reportCache *cache.ReportCache,
	amqpURL string,
	workerCount int,
) *ReportWorker {
	if workerCount <= 0 {
		workerCount = 3
	}
	return &ReportWorker{
		entryRepo:   entryRepo,
		targetRepo:  targetRepo,
		reportRepo:  reportRepo,
		reportCache: reportCache,
		eventQueue:  make(chan EntryEvent, 100),
		workerCount: workerCount,
		stopChan:    make(chan struct{}),
		amqpURL:     amqpURL,
		keyLocks:    make(map[string]*sync.Mutex),
	}
}

// ========== WORKER LIFECYCLE ==========

func (w *ReportWorker) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	if err := w.setupConsumer(); err != nil {
		log.Printf("Report worker: RabbitMQ unavailable, falling back to in-process events only: %v", err)
	}

	for i := 0; i < w.workerCount; i++ {
		w.wg.Add(1)
		go w.worker(i)
	}
}

func (w *ReportWorker) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	if w.channel != nil {
		w.channel.Close()
	}
	if w.conn != nil {
		w.conn.Close()
	}

	close(w.stopChan)
	w.wg.Wait()
}

// ========== RABBITMQ SETUP ==========

func (w *ReportWorker) setupConsumer() error {
	var err error
	w.conn, err = amqp.Dial(w.amqpURL)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	w.channel, err = w.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = w.channel.QueueDeclare(
		EntryEventQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	msgs, err := w.channel.Consume(
		EntryEventQueue,
		"report_worker",
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	w.wg.Add(1)
	go w.handleDeliveries(msgs)
	return nil
}

func (w *ReportWorker) handleDeliveries(msgs <-chan amqp.Delivery) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			var event EntryEvent
			if err := json.Unmarshal(msg.Body, &event); err != nil {
				log.Printf("Report worker: dropping malformed event: %v", err)
				_ = msg.Nack(false, false)
				continue
			}
			select {
			case w.eventQueue <- event:
				_ = msg.Ack(false)
			case <-w.stopChan:
				_ = msg.Nack(false, true)
				return
			}
		}
	}
}

// PublishEntryEvent pushes an entry-mutation event to RabbitMQ so any
// worker instance can pick it up. Without a broker connection the event is
// handled in-process instead.
func (w *ReportWorker) PublishEntryEvent(event EntryEvent) error {
	w.mu.RLock()
	channel := w.channel
	w.mu.RUnlock()

	if channel == nil {
		w.enqueue(event)
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal entry event: %w", err)
	}
	err = channel.Publish(
		"",              // default exchange
		EntryEventQueue, // routing key
		false,           // mandatory
		false,           // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		// Broker hiccup: degrade to in-process handling rather than lose
		// the invalidation.
		log.Printf("Report worker: publish failed, handling event locally: %v", err)
		w.enqueue(event)
	}
	return nil
}

// NotifyEntryChanged implements ReportScheduler for controllers.
func (w *ReportWorker) NotifyEntryChanged(userID uint, date time.Time, loc *time.Location) {
	event := EntryEvent{
		UserID:   userID,
		Date:     date.In(loc).Format(models.DateLayout),
		Timezone: loc.String(),
	}
	if err := w.PublishEntryEvent(event); err != nil {
		log.Printf("Report worker: failed to publish entry event: %v", err)
	}
}

func (w *ReportWorker) enqueue(event EntryEvent) {
	select {
	case w.eventQueue <- event:
	case <-time.After(5 * time.Second):
		log.Printf("Report worker: event queue full, dropping rebuild for user %d date %s", event.UserID, event.Date)
	}
}

// ========== WORKER IMPLEMENTATION ==========

func (w *ReportWorker) worker(workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			return
		case event := <-w.eventQueue:
			if err := w.processEvent(event); err != nil {
				log.Printf("Report worker %d: failed to rebuild reports for user %d date %s: %v",
					workerID, event.UserID, event.Date, err)
			}
		}
	}
}

func (w *ReportWorker) lockKey(key string) *sync.Mutex {
	w.keyLocksMu.Lock()
	defer w.keyLocksMu.Unlock()
	lock, ok := w.keyLocks[key]
	if !ok {
		lock = &sync.Mutex{}
		w.keyLocks[key] = lock
	}
	return lock
}

// processEvent invalidates the cached reports for the event's day and
// rebuilds the daily report plus the weekly report of the containing week.
func (w *ReportWorker) processEvent(event EntryEvent) error {
	loc, err := time.LoadLocation(event.Timezone)
	if err != nil {
		return fmt.Errorf("unknown timezone %q: %w", event.Timezone, err)
	}
	date, err := time.ParseInLocation(models.DateLayout, event.Date, loc)
	if err != nil {
		return fmt.Errorf("malformed event date %q: %w", event.Date, err)
	}

	key := fmt.Sprintf("%d:%s", event.UserID, event.Date)
	lock := w.lockKey(key)
	lock.Lock()
	defer lock.Unlock()

	now := time.Now()
	weekStart := nutrition.StartOfWeek(date, loc)

	if w.reportCache != nil {
		if err := w.reportCache.InvalidateDay(event.UserID, event.Date, weekStart.Format(models.DateLayout)); err != nil {
			log.Printf("Report worker: cache invalidation failed for user %d date %s: %v", event.UserID, event.Date, err)
		}
	}

	target, err := w.targetRepo.FindActiveByUserID(event.UserID, now)
	if err != nil {
		// No target yet: nothing to compare against, reports stay absent.
		return fmt.Errorf("no active target: %w", err)
	}

	daily, err := w.rebuildDaily(event.UserID, date, target, loc, now)
	if err != nil {
		return err
	}

	return w.rebuildWeekly(event.UserID, weekStart, daily, loc, now)
}

func (w *ReportWorker) rebuildDaily(userID uint, date time.Time, target *models.NutritionTarget, loc *time.Location, now time.Time) (*models.DailyReport, error) {
	window := nutrition.DayWindow(date, loc)
	entries, err := w.entryRepo.FindByUserIDAndRange(userID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	report, err := nutrition.BuildDailyReport(userID, date, entries, target, loc, now)
	if err != nil {
		return nil, err
	}
	if err := w.reportRepo.UpsertDaily(report); err != nil {
		return nil, fmt.Errorf("failed to store daily report: %w", err)
	}
	if w.reportCache != nil {
		if err := w.reportCache.StoreDailyReport(report, cache.DefaultReportTTL); err != nil {
			log.Printf("Report worker: failed to cache daily report: %v", err)
		}
	}
	return report, nil
}

func (w *ReportWorker) rebuildWeekly(userID uint, weekStart time.Time, fresh *models.DailyReport, loc *time.Location, now time.Time) error {
	weekEnd := weekStart.AddDate(0, 0, 6)
	dailies, err := w.reportRepo.FindDailyRange(userID,
		weekStart.Format(models.DateLayout), weekEnd.Format(models.DateLayout))
	if err != nil {
		return fmt.Errorf("failed to load daily reports: %w", err)
	}

	// The just-rebuilt daily may not be visible in the range read if the
	// store is eventually consistent; splice it in by date.
	replaced := false
	for i := range dailies {
		if dailies[i].ReportDate == fresh.ReportDate {
			dailies[i] = *fresh
			replaced = true
			break
		}
	}
	if !replaced {
		dailies = append(dailies, *fresh)
	}

	report, err := nutrition.BuildWeeklyReport(userID, weekStart, dailies, loc, now)
	if err != nil {
		return err
	}
	if err := w.reportRepo.UpsertWeekly(report); err != nil {
		return fmt.Errorf("failed to store weekly report: %w", err)
	}
	if w.reportCache != nil {
		if err := w.reportCache.StoreWeeklyReport(report, cache.DefaultReportTTL); err != nil {
			log.Printf("Report worker: failed to cache weekly report: %v", err)
		}
	}
	return nil
}

package scheduler

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-co-op/gocron"
)

// DefaultNotificationHour is the local hour the daily reminder fires
const DefaultNotificationHour = 9

// Notifier delivers due-phrase reminders to the learner
type Notifier interface {
	SendDueReminder(count int) error
}

// DueCounter reports how many phrases are currently due for review
type DueCounter interface {
	DueCount() int
}

// Scheduler manages the daily review reminder job
type Scheduler struct {
	scheduler *gocron.Scheduler
	notifier  Notifier
	counter   DueCounter
}

// New creates a new scheduler instance
func New(notifier Notifier, counter DueCounter) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.Local),
		notifier:  notifier,
		counter:   counter,
	}
}

// Start schedules the daily reminder and begins running it in the background.
// NOTIFICATION_HOUR overrides the default send hour.
func (s *Scheduler) Start() {
	hour := DefaultNotificationHour
	if hourStr := os.Getenv("NOTIFICATION_HOUR"); hourStr != "" {
		if h, err := strconv.Atoi(hourStr); err == nil && h >= 0 && h <= 23 {
			hour = h
		}
	}

	at := fmt.Sprintf("%02d:00", hour)
	if _, err := s.scheduler.Every(1).Day().At(at).Do(s.checkAndSendReminder); err != nil {
		log.Printf("Error scheduling daily reminder: %v", err)
		return
	}

	// Start the scheduler in a non-blocking manner
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// checkAndSendReminder sends a reminder when phrases are waiting
func (s *Scheduler) checkAndSendReminder() {
	count := s.counter.DueCount()
	if count == 0 {
		log.Println("No phrases due, skipping reminder")
		return
	}
	if err := s.notifier.SendDueReminder(count); err != nil {
		log.Printf("Error sending due reminder: %v", err)
	}
}

// RunManualCheck forces a reminder check regardless of the schedule
func (s *Scheduler) RunManualCheck() error {
	count := s.counter.DueCount()
	if count == 0 {
		return nil
	}
	return s.notifier.SendDueReminder(count)
}

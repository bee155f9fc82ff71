// Package schedule fires one daily countdown job per group at a fixed
// wall-clock time.
package schedule

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/robfig/cron/v3"

	"github.com/Yab112/BemniTelegeramBot/internal/countdown"
	"github.com/Yab112/BemniTelegeramBot/internal/store"
)

// Sender delivers a countdown message to a group.
type Sender interface {
	SendCountdown(groupID int64, days int) error
}

// Scheduler keeps a cron entry per group, all firing at the same daily
// clock in the configured timezone. Days left are computed at fire
// time, so a job added today says the right thing next week.
type Scheduler struct {
	cron   *cron.Cron
	spec   string
	loc    *time.Location
	sender Sender
	now    func() time.Time

	mu      sync.Mutex
	entries map[int64]entry
}

type entry struct {
	id  cron.EntryID
	due time.Time
}

// New creates a scheduler firing daily at hour:minute in loc.
func New(sender Sender, loc *time.Location, hour, minute int) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithLocation(loc)),
		spec:    fmt.Sprintf("%d %d * * *", minute, hour),
		loc:     loc,
		sender:  sender,
		now:     time.Now,
		entries: make(map[int64]entry),
	}
}

// Set schedules a group's daily countdown, replacing any previous one.
func (s *Scheduler) Set(groupID int64, due time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.entries[groupID]; ok {
		s.cron.Remove(old.id)
	}

	id, err := s.cron.AddFunc(s.spec, func() { s.fire(groupID) })
	if err != nil {
		return err
	}
	s.entries[groupID] = entry{id: id, due: due}
	return nil
}

// Remove drops a group's daily countdown, if any.
func (s *Scheduler) Remove(groupID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.entries[groupID]; ok {
		s.cron.Remove(old.id)
		delete(s.entries, groupID)
	}
}

// Restore schedules jobs for deadlines loaded from storage. Expired
// deadlines are scheduled too; their first fire drops them.
func (s *Scheduler) Restore(deadlines []store.Deadline) {
	for _, d := range deadlines {
		if err := s.Set(d.GroupID, d.DueDate); err != nil {
			log.Errorf("Failed to restore schedule for group %d: %v", d.GroupID, err)
		}
	}
}

// Due reports the deadline a group is scheduled against.
func (s *Scheduler) Due(groupID int64) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[groupID]
	return e.due, ok
}

// Count reports how many groups are scheduled.
func (s *Scheduler) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Start begins firing jobs in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the scheduler, waiting for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) fire(groupID int64) {
	s.mu.Lock()
	e, ok := s.entries[groupID]
	s.mu.Unlock()
	if !ok {
		return
	}

	days := countdown.DaysUntil(e.due, s.now().In(s.loc))
	if days < 0 {
		log.Infof("Deadline for group %d has passed, dropping its schedule", groupID)
		s.Remove(groupID)
		return
	}

	if err := s.sender.SendCountdown(groupID, days); err != nil {
		log.Errorf("Failed to send message to group %d: %v", groupID, err)
	}
}

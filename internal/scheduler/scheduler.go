package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/santilopez19/TurneroPremium/internal/domain"
	"github.com/santilopez19/TurneroPremium/pkg/types"
)

const (
	reminderLock = "reminders"
	archiveLock  = "archive"
)

// Config расписание фоновых проходов
type Config struct {
	ReminderInterval time.Duration
	ArchiveAt        types.TimeString // местное время ежедневной архивации
	CheckInterval    time.Duration    // как часто проверять, не пора ли архивировать
	RunTimeout       time.Duration
	LockTTL          time.Duration
}

// Scheduler запускает рассылку напоминаний по интервалу и архивацию раз в сутки
type Scheduler struct {
	cfg          Config
	reminders    ReminderJob
	archive      ArchiveJob
	locker       Locker
	timeProvider TimeProvider
	logger       Logger

	mu              sync.Mutex
	lastArchiveDate string // YYYY-MM-DD последней архивации этим процессом
	running         bool
	stopCh          chan struct{}
	wg              sync.WaitGroup
}

// New создает планировщик
func New(cfg Config, reminders ReminderJob, archive ArchiveJob, locker Locker, timeProvider TimeProvider, logger Logger) *Scheduler {
	if cfg.CheckInterval <= 0 {
		cfg.CheckInterval = time.Minute
	}
	return &Scheduler{
		cfg:          cfg,
		reminders:    reminders,
		archive:      archive,
		locker:       locker,
		timeProvider: timeProvider,
		logger:       logger,
		stopCh:       make(chan struct{}),
	}
}

// Start запускает циклы в отдельных горутинах
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true

	s.logger.Info("Scheduler: started, reminders every %s, archive at %s", s.cfg.ReminderInterval, s.cfg.ArchiveAt)

	s.wg.Add(2)
	go s.loop(s.cfg.ReminderInterval, s.runReminders)
	go s.loop(s.cfg.CheckInterval, s.checkArchive)
}

// Stop останавливает циклы и ждет завершения текущих проходов
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopCh)
	s.mu.Unlock()

	s.wg.Wait()
	s.logger.Info("Scheduler: stopped")
}

func (s *Scheduler) loop(interval time.Duration, run func()) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			run()
		}
	}
}

func (s *Scheduler) runReminders() {
	s.withLock(reminderLock, func(ctx context.Context) {
		if _, err := s.reminders.Execute(ctx); err != nil {
			s.logger.Error("Scheduler: reminders run failed: %v", err)
		}
	})
}

// checkArchive запускает архивацию один раз в день после ArchiveAt
// Если процесс стартовал позже ArchiveAt, архивация выполнится при первой проверке
func (s *Scheduler) checkArchive() {
	now := s.timeProvider.Now()
	today := now.Format(domain.DateFormat)

	s.mu.Lock()
	alreadyRan := s.lastArchiveDate == today
	s.mu.Unlock()

	if alreadyRan || types.NewTimeString(now).IsBefore(s.cfg.ArchiveAt) {
		return
	}

	s.withLock(archiveLock, func(ctx context.Context) {
		if _, err := s.archive.Execute(ctx); err != nil {
			s.logger.Error("Scheduler: archive run failed: %v", err)
			return
		}
		s.mu.Lock()
		s.lastArchiveDate = today
		s.mu.Unlock()
	})
}

// withLock выполняет run с таймаутом прохода, если удалось взять блокировку
func (s *Scheduler) withLock(name string, run func(ctx context.Context)) {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.RunTimeout)
	defer cancel()

	// проход прерывается при остановке сервиса
	go func() {
		select {
		case <-s.stopCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	release, ok, err := s.locker.TryLock(ctx, name, s.cfg.LockTTL)
	if err != nil {
		// без блокировки выполняем все равно
		s.logger.Warn("Scheduler: %s lock unavailable, running without it: %v", name, err)
		run(ctx)
		return
	}
	if !ok {
		s.logger.Info("Scheduler: %s is running elsewhere, skipping", name)
		return
	}
	defer release()

	run(ctx)
}

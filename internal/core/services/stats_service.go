package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// DashboardStats is a point-in-time snapshot of headline figures.
type DashboardStats struct {
	Customers         int64     `json:"customers"`
	Accounts          int64     `json:"accounts"`
	TotalBalance      float64   `json:"total_balance"`
	ActiveLoans       int64     `json:"active_loans"`
	DailyTransactions int64     `json:"daily_transactions"`
	RefreshedAt       time.Time `json:"refreshed_at"`
}

// StatsService aggregates dashboard figures and keeps a snapshot warm
// on a cron schedule so the dashboard endpoint stays cheap.
type StatsService struct {
	db   *gorm.DB
	cron *cron.Cron

	mu       sync.RWMutex
	snapshot *DashboardStats
}

const statsMaxAge = 10 * time.Minute

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// Start schedules background snapshot refreshes and primes the first
// snapshot immediately.
func (s *StatsService) Start(schedule string) error {
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := s.Refresh(ctx); err != nil {
			log.Printf("⚠️  Dashboard stats refresh failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("invalid stats refresh schedule %q: %w", schedule, err)
	}

	c.Start()
	s.cron = c
	log.Printf("✅ Dashboard stats refresher started (schedule: %s)", schedule)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := s.Refresh(ctx); err != nil {
			log.Printf("⚠️  Initial dashboard stats refresh failed: %v", err)
		}
	}()

	return nil
}

// Stop halts the background refresher and waits for a running job.
func (s *StatsService) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

// Current serves the cached snapshot when it is fresh enough and falls
// back to a synchronous refresh otherwise.
func (s *StatsService) Current(ctx context.Context) (*DashboardStats, error) {
	s.mu.RLock()
	snap := s.snapshot
	s.mu.RUnlock()

	if snap != nil && time.Since(snap.RefreshedAt) < statsMaxAge {
		return snap, nil
	}
	return s.Refresh(ctx)
}

// Refresh recomputes the snapshot from the banking schema.
func (s *StatsService) Refresh(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{RefreshedAt: time.Now()}
	db := s.db.WithContext(ctx)

	if err := db.Table("CUSTOMERS").
		Where("status = ?", "ACTIVE").
		Count(&stats.Customers).Error; err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}

	if err := db.Table("ACCOUNTS").
		Where("status = ?", "ACTIVE").
		Count(&stats.Accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to count accounts: %w", err)
	}

	if err := db.Table("ACCOUNTS").
		Select("COALESCE(SUM(balance), 0)").
		Where("status = ?", "ACTIVE").
		Scan(&stats.TotalBalance).Error; err != nil {
		return nil, fmt.Errorf("failed to sum balances: %w", err)
	}

	if err := db.Table("LOANS").
		Where("status IN ?", []string{"APPROVED", "DISBURSED"}).
		Count(&stats.ActiveLoans).Error; err != nil {
		return nil, fmt.Errorf("failed to count active loans: %w", err)
	}

	if err := db.Table("TRANSACTION_HISTORY").
		Where("transaction_date >= ?", startOfDay(time.Now())).
		Count(&stats.DailyTransactions).Error; err != nil {
		return nil, fmt.Errorf("failed to count daily transactions: %w", err)
	}

	s.mu.Lock()
	s.snapshot = stats
	s.mu.Unlock()

	return stats, nil
}

// startOfDay returns midnight of t's calendar day in t's location, so
// the daily transaction window matches the database session timezone.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

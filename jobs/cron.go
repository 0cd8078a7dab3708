package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// BookingSweeper finalizes bookings the calendar has moved past: confirmed
// stays become completed, unpaid pending rows are released.
type BookingSweeper interface {
	CompleteDueBookings(now time.Time) (int, error)
	ExpireStalePending(now time.Time) (int, error)
}

var bookingSweeper BookingSweeper

// SetBookingSweeper installs the sweeper implementation.
func SetBookingSweeper(sweeper BookingSweeper) {
	bookingSweeper = sweeper
}

// InitCronJobs registers the nightly booking sweep and starts the scheduler.
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Runs at midnight every day
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Running booking sweep at: %v", now)

		if bookingSweeper == nil {
			log.Printf("Error: BookingSweeper is not set")
			return
		}

		completed, err := bookingSweeper.CompleteDueBookings(now)
		if err != nil {
			log.Printf("Error completing due bookings: %v", err)
		}

		expired, err := bookingSweeper.ExpireStalePending(now)
		if err != nil {
			log.Printf("Error expiring stale pending bookings: %v", err)
		}

		if m != nil && (completed > 0 || expired > 0) {
			summary := fmt.Sprintf("Booking sweep: %d completed, %d expired", completed, expired)
			m.Broadcast([]byte(summary))
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}

package session

import "time"

func (c *Controller) startTimerLocked() {
	if c.stopTimer != nil {
		return
	}
	stop := make(chan struct{})
	c.stopTimer = stop
	go c.runTimer(stop, c.epoch, c.tickInterval)
}

func (c *Controller) stopTimerLocked() {
	if c.stopTimer != nil {
		close(c.stopTimer)
		c.stopTimer = nil
	}
}

func (c *Controller) runTimer(stop <-chan struct{}, epoch uint64, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			c.tick(epoch)
		}
	}
}

// tick counts one elapsed second while the session is running.
func (c *Controller) tick(epoch uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch == epoch && c.phase == PhaseActive {
		c.stats.TimeSpent++
	}
}

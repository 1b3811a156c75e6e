package tracker

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/elolcd/internal/models"
)

const (
	messageUpdating = "Updating ..."
	messageChanged  = "Stats changed!"
)

// blinkPattern is the backlight sequence shown when stats change
var blinkPattern = []bool{false, true, false, true, false, true}

// ratingLine renders the first steady-state line
func ratingLine(rating float64, delta string) string {
	return fmt.Sprintf("ELO: %d %s", int(rating), delta)
}

// kdLine renders the second steady-state line
func kdLine(kd float64, delta string) string {
	return fmt.Sprintf("K/D: %.2f %s", kd, delta)
}

// showUpdating puts up the updating banner and holds it for the update pause
func (s *service) showUpdating(ctx context.Context) error {
	if err := s.display.WriteLines(messageUpdating, ""); err != nil {
		return fmt.Errorf("%w: %w", ErrDisplay, err)
	}
	return s.clock.Sleep(ctx, s.updatePause)
}

// notifyChange shows the change banner and blinks the backlight
func (s *service) notifyChange(ctx context.Context) error {
	if err := s.display.WriteLines(messageChanged, ""); err != nil {
		return fmt.Errorf("%w: %w", ErrDisplay, err)
	}

	for _, on := range blinkPattern {
		if err := s.display.SetBacklight(on); err != nil {
			return fmt.Errorf("%w: %w", ErrDisplay, err)
		}
		if err := s.clock.Sleep(ctx, s.blinkStep); err != nil {
			return err
		}
	}

	return nil
}

// showStats renders the steady-state view
func (s *service) showStats(snapshot models.StatsSnapshot, state State) error {
	if err := s.display.WriteLines(ratingLine(snapshot.Rating, state.RatingDelta), kdLine(snapshot.KD, state.KDDelta)); err != nil {
		return fmt.Errorf("%w: %w", ErrDisplay, err)
	}
	return nil
}

// shutdown blanks the display and turns the backlight off
func (s *service) shutdown() {
	s.logger.Info("Shutting down ...")

	if err := s.display.Clear(); err != nil {
		s.logger.WithError(err).Warn("failed to clear display")
	}
	if err := s.display.SetBacklight(false); err != nil {
		s.logger.WithError(err).Warn("failed to turn off backlight")
	}
}

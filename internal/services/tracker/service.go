package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/elolcd/internal/common/clock"
	"github.com/KirkDiggler/elolcd/internal/common/uuid"
	"github.com/KirkDiggler/elolcd/internal/display"
	"github.com/KirkDiggler/elolcd/internal/models"
	"github.com/KirkDiggler/elolcd/internal/repositories/fireteam"
	"github.com/KirkDiggler/elolcd/internal/repositories/identity"
	"github.com/KirkDiggler/elolcd/internal/services/delta"
)

// service implements the Service interface
type service struct {
	handle       string
	mode         models.GameMode
	updatePause  time.Duration
	blinkStep    time.Duration
	pollInterval time.Duration

	identityRepo identity.Repository
	fireteamRepo fireteam.Repository
	display      display.Display
	clock        clock.Clock
	uuid         uuid.UUID
	logger       logrus.FieldLogger
}

// New creates a new tracker service
func New(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Handle == "" {
		return nil, ErrEmptyHandle
	}

	if cfg.Display == nil {
		return nil, ErrNilDisplay
	}

	if cfg.IdentityRepo == nil {
		return nil, ErrNilIdentityRepo
	}

	if cfg.FireteamRepo == nil {
		return nil, ErrNilFireteamRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.Logger == nil {
		return nil, ErrNilLogger
	}

	s := &service{
		handle:       cfg.Handle,
		mode:         cfg.Mode,
		updatePause:  cfg.UpdatePause,
		blinkStep:    cfg.BlinkStep,
		pollInterval: cfg.PollInterval,
		identityRepo: cfg.IdentityRepo,
		fireteamRepo: cfg.FireteamRepo,
		display:      cfg.Display,
		clock:        cfg.Clock,
		uuid:         cfg.UUIDGenerator,
		logger:       cfg.Logger,
	}

	// Set default values if not provided
	if s.updatePause == 0 {
		s.updatePause = DefaultUpdatePause
	}
	if s.blinkStep == 0 {
		s.blinkStep = DefaultBlinkStep
	}
	if s.pollInterval == 0 {
		s.pollInterval = DefaultPollInterval
	}

	return s, nil
}

// Run resolves the handle once, then polls forever. Identity and poll
// failures are returned as fatal; cancellation of ctx at any point blanks
// the display and returns nil.
func (s *service) Run(ctx context.Context) error {
	if err := s.display.SetBacklight(true); err != nil {
		return fmt.Errorf("%w: %w", ErrDisplay, err)
	}

	player, err := s.identityRepo.ResolveIdentity(ctx, &identity.ResolveIdentityInput{
		Handle: s.handle,
	})
	if err != nil {
		if ctx.Err() != nil {
			s.shutdown()
			return nil
		}
		return fmt.Errorf("%w: %w", ErrIdentityResolution, err)
	}

	s.logger.WithFields(logrus.Fields{
		"handle":        player.Handle,
		"membership_id": player.MembershipID,
		"mode":          s.mode.Name,
		"mode_code":     s.mode.Code,
	}).Info("Tracking player")

	state := State{}
	for {
		if ctx.Err() != nil {
			s.shutdown()
			return nil
		}

		output, err := s.Poll(ctx, &PollInput{
			Identity: player,
			State:    state,
		})
		if err != nil {
			if ctx.Err() != nil {
				s.shutdown()
				return nil
			}
			return err
		}
		state = output.State

		if err := s.clock.Sleep(ctx, s.pollInterval); err != nil {
			s.shutdown()
			return nil
		}
	}
}

// Poll runs one cycle: show the updating banner, fetch the fireteam, find
// the tracked player and render. A missing player leaves the state and the
// display untouched.
func (s *service) Poll(ctx context.Context, input *PollInput) (*PollOutput, error) {
	if input == nil || input.Identity == nil {
		return nil, ErrNilIdentity
	}

	log := s.logger.WithFields(logrus.Fields{
		"cycle_id": s.uuid.NewCycleID(),
		"handle":   input.Identity.Handle,
	})

	if err := s.showUpdating(ctx); err != nil {
		return nil, err
	}

	log.WithField("mode_code", s.mode.Code).Debug("Getting fireteam stats")
	fireteamOutput, err := s.fireteamRepo.GetFireteam(ctx, &fireteam.GetFireteamInput{
		ModeCode:     s.mode.Code,
		MembershipID: input.Identity.MembershipID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPoll, err)
	}

	record := models.FindPlayer(fireteamOutput.Players, input.Identity.Handle)
	if record == nil {
		log.WithField("players", len(fireteamOutput.Players)).Warn("Player not in fireteam response, skipping update")
		return &PollOutput{
			State:     input.State,
			CheckedAt: s.clock.Now(),
		}, nil
	}

	snapshot := models.NewStatsSnapshot(record)
	result := delta.Compute(snapshot, input.State.Previous())

	next := State{
		LastRating:  snapshot.Rating,
		LastKD:      snapshot.KD,
		RatingDelta: input.State.RatingDelta,
		KDDelta:     input.State.KDDelta,
	}

	if result.Changed {
		next.RatingDelta = result.RatingDelta
		next.KDDelta = result.KDDelta

		if err := s.notifyChange(ctx); err != nil {
			return nil, err
		}

		log.Infof("ELO: %.2f (%s)", snapshot.Rating, next.RatingDelta)
		log.Infof("K/D: %.4f (%s)", snapshot.KD, next.KDDelta)
	}

	if err := s.showStats(snapshot, next); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"elo":     snapshot.Rating,
		"kills":   snapshot.Kills,
		"deaths":  snapshot.Deaths,
		"changed": result.Changed,
	}).Debug("Stats rendered")

	return &PollOutput{
		State:     next,
		Found:     true,
		Changed:   result.Changed,
		Snapshot:  &snapshot,
		CheckedAt: s.clock.Now(),
	}, nil
}

// Package contact validates contact form submissions and forwards them to
// the site owner's inbox.
package contact

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Service turns submissions into delivered emails.
type Service struct {
	mailer Mailer
	log    zerolog.Logger
	now    func() time.Time
}

// NewService returns a Service delivering through m. A nil logger
// discards output.
func NewService(m Mailer, logger *zerolog.Logger) *Service {
	log := zerolog.Nop()
	if logger != nil {
		log = *logger
	}
	return &Service{
		mailer: m,
		log:    log.With().Str("component", "contact").Logger(),
		now:    time.Now,
	}
}

// Submit normalizes, validates and delivers sub. Validation failures are
// *ValidationError; mail failures are *DeliveryError.
func (s *Service) Submit(ctx context.Context, sub Submission) error {
	sub = sub.Normalize()
	if err := sub.Validate(); err != nil {
		return err
	}

	e, err := Compose(sub, s.now())
	if err != nil {
		return &DeliveryError{Err: err}
	}
	if err := s.mailer.Send(ctx, e); err != nil {
		s.log.Error().Err(err).Str("reply_to", sub.Email).Msg("contact delivery failed")
		return &DeliveryError{Err: err}
	}

	s.log.Info().Str("reply_to", sub.Email).Int("message_len", len(sub.Message)).Msg("contact message sent")
	return nil
}

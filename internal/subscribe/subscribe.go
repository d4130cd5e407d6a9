// Package subscribe simulates the "Get Updates" email subscription. There is
// no backend: the stub validates the address, waits an artificial latency
// and reports success.
package subscribe

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/akyairhashvil/nebula/internal/util"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mock_subscribe/mock_submitter.go -package=mock_subscribe github.com/akyairhashvil/nebula/internal/subscribe Submitter

// ErrInvalidAddress is returned for empty or malformed email addresses.
var ErrInvalidAddress = errors.New("subscribe: invalid email address")

// Submitter submits an email address for launch updates.
type Submitter interface {
	Submit(ctx context.Context, address string) error
}

// Stub is a Submitter that always succeeds for valid addresses after a delay.
type Stub struct {
	Latency time.Duration
	Logger  *zap.Logger
}

// NewStub returns a stub with the given artificial latency.
func NewStub(latency time.Duration, logger *zap.Logger) *Stub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Stub{Latency: latency, Logger: logger}
}

// Submit validates address, then waits Latency or until ctx is done.
func (s *Stub) Submit(ctx context.Context, address string) error {
	addr, err := Normalize(address)
	if err != nil {
		return err
	}
	if s.Latency > 0 {
		timer := time.NewTimer(s.Latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return fmt.Errorf("submit: %w", ctx.Err())
		case <-timer.C:
		}
	}
	s.logger().Info("subscription accepted", zap.String("subscriber", util.Fingerprint(addr)))
	return nil
}

func (s *Stub) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// Normalize trims and validates a bare address such as "a@b.io". Display
// names are rejected.
func Normalize(address string) (string, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return "", ErrInvalidAddress
	}
	parsed, err := mail.ParseAddress(address)
	if err != nil || parsed.Name != "" || parsed.Address != address {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	if !strings.Contains(address[strings.LastIndex(address, "@")+1:], ".") {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	return address, nil
}

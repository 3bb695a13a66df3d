// Package generator runs password derivation off the caller's goroutine.
//
// Derivation stretches the master password with 100000 PBKDF2 rounds, which
// is too slow for an input loop. Generate validates the profile up front,
// then derives on a separate goroutine while the caller waits on its context.
// At most maxParallel derivations run at once; abandoned requests are
// discarded.
package generator

import (
	"context"
	"time"

	"github.com/stanley-fork/lesspass/internal/common"
	"github.com/stanley-fork/lesspass/internal/lesspass"
	"github.com/stanley-fork/lesspass/internal/logging"
	"golang.org/x/sync/semaphore"
)

type deriveFunc func(master []byte, p lesspass.Profile) (string, error)

// Generator derives passwords on background goroutines, at most maxParallel
// at a time. It is safe for concurrent use.
type Generator struct {
	sem    *semaphore.Weighted
	log    logging.Logger
	derive deriveFunc
	now    func() time.Time
}

// New returns a Generator allowing maxParallel concurrent derivations.
// Values below one are treated as one.
func New(maxParallel int, log logging.Logger) *Generator {
	if maxParallel < 1 {
		maxParallel = 1
	}
	return &Generator{
		sem:    semaphore.NewWeighted(int64(maxParallel)),
		log:    log,
		derive: lesspass.Derive,
		now:    time.Now,
	}
}

type result struct {
	password string
	err      error
}

// Generate derives the password for p under master.
//
// An invalid profile is rejected before any work is scheduled. The master
// password is copied, so the caller may wipe master as soon as Generate
// returns even when ctx was cancelled mid-derivation.
func (g *Generator) Generate(ctx context.Context, master []byte, p lesspass.Profile) (string, error) {
	log := g.log.With("site", p.Site, "length", p.Length, "counter", p.Counter)

	if err := p.Validate(); err != nil {
		log.Debug(ctx, "profile rejected", "error", err)
		return "", err
	}

	if err := g.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}

	secret := common.CloneBytes(master)
	done := make(chan result, 1)
	start := g.now()

	go func() {
		defer g.sem.Release(1)
		defer common.WipeByteArray(secret)

		password, err := g.derive(secret, p)
		done <- result{password: password, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			log.Error(ctx, "derivation failed", "error", r.err)
			return "", r.err
		}
		log.Debug(ctx, "password derived", "took", g.now().Sub(start), "password", logging.Redacted(r.password))
		return r.password, nil
	case <-ctx.Done():
		log.Debug(ctx, "derivation abandoned", "error", ctx.Err())
		return "", ctx.Err()
	}
}

package credential

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

// pinCost matches the cost the hosted variant has always used for PINs; a
// 4-digit space needs the slow hash.
const pinCost = 12

var pinPattern = regexp.MustCompile(`^\d{4}$`)

var (
	// ErrPinFormat rejects anything that is not exactly four decimal digits,
	// before any store round trip.
	ErrPinFormat = errors.New("credential: pin must be exactly 4 digits")
	// ErrPinNotSet distinguishes "never set up" from a wrong guess.
	ErrPinNotSet = errors.New("credential: pin not set up for this user")
	// ErrPinIncorrect is the wrong-guess verdict.
	ErrPinIncorrect = errors.New("credential: incorrect pin")
)

// PinRepository is the remote table holding one hashed PIN per user.
type PinRepository interface {
	// Get returns the stored hash for userID; ok is false when no row exists.
	Get(ctx context.Context, userID string) (hash string, ok bool, err error)
	// Upsert replaces any existing row for userID.
	Upsert(ctx context.Context, userID, hash string) error
	Delete(ctx context.Context, userID string) error
}

// PinGate implements the remote PIN policy over a PinRepository.
type PinGate struct {
	repo PinRepository
}

// NewPinGate wraps the repository.
func NewPinGate(repo PinRepository) *PinGate {
	return &PinGate{repo: repo}
}

// Has reports whether userID has a PIN. Lookup errors fail closed toward
// re-setup: logged, reported as false, never thrown.
func (g *PinGate) Has(ctx context.Context, userID string) bool {
	_, ok, err := g.repo.Get(ctx, userID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "credential: pin lookup for %s: %v\n", userID, err)
		return false
	}
	return ok
}

// Set validates, hashes, and upserts the PIN for userID. A second call
// replaces the stored hash, never duplicates it.
func (g *PinGate) Set(ctx context.Context, userID, pin string) error {
	if !pinPattern.MatchString(pin) {
		return ErrPinFormat
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), pinCost)
	if err != nil {
		return fmt.Errorf("credential: hash pin: %w", err)
	}
	if err := g.repo.Upsert(ctx, userID, string(hash)); err != nil {
		return fmt.Errorf("credential: store pin: %w", err)
	}
	return nil
}

// Verify checks pin against the stored hash for userID. The verdicts are
// nil, ErrPinFormat (before any I/O), ErrPinNotSet, ErrPinIncorrect, or a
// wrapped store error.
func (g *PinGate) Verify(ctx context.Context, userID, pin string) error {
	if !pinPattern.MatchString(pin) {
		return ErrPinFormat
	}
	hash, ok, err := g.repo.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("credential: fetch pin: %w", err)
	}
	if !ok {
		return ErrPinNotSet
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) != nil {
		return ErrPinIncorrect
	}
	return nil
}

// Remove deletes the stored hash for userID.
func (g *PinGate) Remove(ctx context.Context, userID string) error {
	if err := g.repo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("credential: remove pin: %w", err)
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// PasswordCodec is the bcrypt implementation of [PasswordHasher].
//
// Every password is first keyed with HMAC-SHA256 over the server-wide
// pepper and base64 encoded, so the value given to bcrypt is fixed-width
// (44 bytes, under bcrypt's 72-byte limit) and a leaked database alone is
// not enough to run a dictionary attack.
type PasswordCodec struct {
	pepper []byte
	cost   int

	// sem bounds the number of bcrypt operations running at once.
	sem *semaphore.Weighted
}

// NewPasswordCodec validates its parameters and returns a ready codec.
// maxConcurrent values below 1 are treated as 1.
func NewPasswordCodec(pepper string, cost int, maxConcurrent int) (*PasswordCodec, error) {
	if pepper == "" {
		return nil, ErrEmptyPepper
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCost, cost)
	}
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	return &PasswordCodec{
		pepper: []byte(pepper),
		cost:   cost,
		sem:    semaphore.NewWeighted(int64(maxConcurrent)),
	}, nil
}

// Hash implements [PasswordHasher]. It blocks until a hashing slot is free
// or ctx is done.
func (c *PasswordCodec) Hash(ctx context.Context, password string) (string, error) {
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer c.sem.Release(1)

	hash, err := bcrypt.GenerateFromPassword(c.peppered(password), c.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashing, err)
	}

	return string(hash), nil
}

// Verify implements [PasswordHasher]. The comparison is constant-time.
func (c *PasswordCodec) Verify(ctx context.Context, password, hash string) (bool, error) {
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return false, err
	}
	defer c.sem.Release(1)

	err := bcrypt.CompareHashAndPassword([]byte(hash), c.peppered(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
}

func (c *PasswordCodec) peppered(password string) []byte {
	mac := hmac.New(sha256.New, c.pepper)
	mac.Write([]byte(password))

	sum := mac.Sum(nil)
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum)

	return out
}

// SPDX-License-Identifier: Apache-2.0

// Package totp generates RFC 6238 time-based one-time codes and schedules
// their refresh at period boundaries.
package totp

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pquerna/otp"
	otptotp "github.com/pquerna/otp/totp"

	"github.com/gophervault/vaultsync/models"
)

const defaultPeriod = 30

// GenerateCode computes the one-time code for seed at the given instant.
// The seed is either a bare base32 secret (defaults: 30 s period, 6 digits,
// SHA-1) or a full otpauth:// URI whose period, digits and algorithm
// parameters override the defaults.
//
// Codes are a pure function of the seed and floor(unix(at) / period): every
// call within the same period yields the same code, and ExpiresAt is the
// next epoch-aligned period boundary regardless of where inside the period
// the call happens.
func GenerateCode(seed string, at time.Time) (models.TOTPCode, error) {
	secret, opts, err := parseSeed(seed)
	if err != nil {
		return models.TOTPCode{}, err
	}

	code, err := otptotp.GenerateCodeCustom(secret, at, opts)
	if err != nil {
		return models.TOTPCode{}, fmt.Errorf("generate code: %w", err)
	}

	period := int64(opts.Period)
	next := (at.Unix()/period + 1) * period

	return models.TOTPCode{
		Code:      code,
		Period:    opts.Period,
		IssuedAt:  at,
		ExpiresAt: time.Unix(next, 0).UTC(),
	}, nil
}

// parseSeed normalizes a TOTP seed into a base32 secret and the generation
// parameters to use with it.
func parseSeed(seed string) (string, otptotp.ValidateOpts, error) {
	opts := otptotp.ValidateOpts{
		Period:    defaultPeriod,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	}

	seed = strings.TrimSpace(seed)
	if seed == "" {
		return "", opts, fmt.Errorf("empty totp seed")
	}

	if !strings.HasPrefix(strings.ToLower(seed), "otpauth://") {
		// bare secret, tolerate the grouping spaces and lowercase that
		// issuers print on recovery sheets
		secret := strings.ToUpper(strings.ReplaceAll(seed, " ", ""))
		return secret, opts, nil
	}

	u, err := url.Parse(seed)
	if err != nil {
		return "", opts, fmt.Errorf("parse otpauth uri: %w", err)
	}
	query := u.Query()

	secret := strings.ToUpper(query.Get("secret"))
	if secret == "" {
		return "", opts, fmt.Errorf("otpauth uri without secret")
	}

	if raw := query.Get("period"); raw != "" {
		period, parseErr := strconv.ParseUint(raw, 10, 32)
		if parseErr != nil || period == 0 {
			return "", opts, fmt.Errorf("invalid totp period %q", raw)
		}
		opts.Period = uint(period)
	}

	if raw := query.Get("digits"); raw != "" {
		switch raw {
		case "6":
			opts.Digits = otp.DigitsSix
		case "8":
			opts.Digits = otp.DigitsEight
		default:
			return "", opts, fmt.Errorf("invalid totp digits %q", raw)
		}
	}

	switch strings.ToUpper(query.Get("algorithm")) {
	case "", "SHA1":
		opts.Algorithm = otp.AlgorithmSHA1
	case "SHA256":
		opts.Algorithm = otp.AlgorithmSHA256
	case "SHA512":
		opts.Algorithm = otp.AlgorithmSHA512
	default:
		return "", opts, fmt.Errorf("unsupported totp algorithm %q", query.Get("algorithm"))
	}

	return secret, opts, nil
}

package common

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"happyhomes/src/config"
	"happyhomes/src/lib"
	"happyhomes/src/lib/mailer"
	"happyhomes/src/utils"
	"log"
	"strings"
)

func verificationKey(email string) string {
	return fmt.Sprintf("verification:%s", strings.ToLower(strings.TrimSpace(email)))
}

// SendVerificationCode stores a short-lived 6-digit code for email and mails it.
func SendVerificationCode(ctx context.Context, cache lib.Cache, email string) error {
	code, err := utils.RandomDigits(6)
	if err != nil {
		return err
	}
	if err := cache.Set(ctx, verificationKey(email), code, config.VERIFICATION_CODE_TTL); err != nil {
		log.Printf("Error caching verification code: %s\n", err.Error())
		return err
	}
	mailer.Dispatch(ctx, VerificationCodeMessage(email, code))
	return nil
}

// VerifyEmailCode reports whether code matches the one sent to email.
// A matched code is consumed.
func VerifyEmailCode(ctx context.Context, cache lib.Cache, email, code string) (bool, error) {
	key := verificationKey(email)
	stored, err := cache.Get(ctx, key)
	if errors.Is(err, lib.ErrCacheMiss) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(strings.TrimSpace(code))) != 1 {
		return false, nil
	}
	if err := cache.Delete(ctx, key); err != nil {
		log.Printf("Error clearing verification code: %s\n", err.Error())
	}
	return true, nil
}

package common

import (
	"context"
	"happyhomes/src/config"
	"happyhomes/src/models"
)

func (s *CommonSuite) TestPendingVerifications() {
	unverifiedProfile := s.createUser("dave", "", false, false)
	s.Require().Nil(s.DB.Create(&models.UserProfile{UserID: unverifiedProfile.ID, IsVerified: false}).Error)

	users, err := PendingVerifications()
	s.Nil(err)
	s.Require().Len(users, 2)
	s.Equal("carol", users[0].Username)
	s.Equal("dave", users[1].Username)
	s.False(users[1].IsVerified())
}

func (s *CommonSuite) TestSetUserVerified() {
	user, err := SetUserVerified(context.Background(), s.unverified.ID, true)
	s.Nil(err)
	s.True(user.IsVerified())
	s.Require().Len(s.mail.sent, 1)
	s.Equal("Document Verification Approved - Happy Homes System", s.mail.sent[0].Subject)

	// the resident can book now
	_, err = CreateBooking(s.actor(s.unverified), s.window(s.court, "2025-06-01", "09:00", "10:00"))
	s.Nil(err)

	user, err = SetUserVerified(context.Background(), s.unverified.ID, false)
	s.Nil(err)
	s.False(user.IsVerified())
	s.Equal("Document Verification Rejected - Happy Homes System", s.mail.sent[1].Subject)

	var profiles int64
	s.DB.Model(&models.UserProfile{}).Where("user_id = ?", s.unverified.ID).Count(&profiles)
	s.Equal(int64(1), profiles)

	_, err = SetUserVerified(context.Background(), 999, true)
	s.ErrorIs(err, ErrNotFound)
}

func (s *CommonSuite) TestVerificationCodeRoundTrip() {
	cache := newMemoryCache()
	ctx := context.Background()

	s.Nil(SendVerificationCode(ctx, cache, "Alice@Example.com"))
	code, ok := cache.values["verification:alice@example.com"]
	s.Require().True(ok)
	s.Len(code, 6)
	s.Equal(config.VERIFICATION_CODE_TTL, cache.ttls["verification:alice@example.com"])

	s.Require().Len(s.mail.sent, 1)
	s.Equal([]string{"Alice@Example.com"}, s.mail.sent[0].To)
	s.Contains(s.mail.sent[0].Body, code)

	wrong := "000000"
	if code == wrong {
		wrong = "000001"
	}
	verified, err := VerifyEmailCode(ctx, cache, "alice@example.com", wrong)
	s.Nil(err)
	s.False(verified)

	verified, err = VerifyEmailCode(ctx, cache, "alice@example.com", code)
	s.Nil(err)
	s.True(verified)

	// consumed on success
	verified, err = VerifyEmailCode(ctx, cache, "alice@example.com", code)
	s.Nil(err)
	s.False(verified)
}

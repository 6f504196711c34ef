package common

import (
	"context"
	"errors"
	"happyhomes/src/db"
	"happyhomes/src/lib/mailer"
	"happyhomes/src/models"
	"log"

	"gorm.io/gorm"
)

// PendingVerifications lists residents whose accounts await review.
func PendingVerifications() ([]models.User, error) {
	db := db.GetDb()
	var users []models.User
	err := db.
		Model(&models.User{}).
		Joins("LEFT JOIN user_profiles ON user_profiles.user_id = users.id").
		Where("users.is_staff = ?", false).
		Where("user_profiles.id IS NULL OR user_profiles.is_verified = ?", false).
		Preload("Profile").
		Order("users.id ASC").
		Find(&users).
		Error
	return users, err
}

// SetUserVerified records the administrator's review of a resident and notifies them.
func SetUserVerified(ctx context.Context, userID uint, verified bool) (*models.User, error) {
	db := db.GetDb()
	var user models.User
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(&models.User{ID: userID}).First(&user).Error; err != nil {
			return notFound(err, "User")
		}
		var profile models.UserProfile
		err := tx.Where(&models.UserProfile{UserID: userID}).First(&profile).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			profile = models.UserProfile{UserID: userID}
			err = tx.Create(&profile).Error
		}
		if err != nil {
			return err
		}
		if err := tx.
			Model(&models.UserProfile{}).
			Where("id = ?", profile.ID).
			Update("is_verified", verified).
			Error; err != nil {
			return err
		}
		profile.IsVerified = verified
		user.Profile = &profile
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("User %d verification set to %v\n", userID, verified)
	mailer.Dispatch(ctx, AccountReviewMessage(&user, verified))
	return &user, nil
}

package common

import (
	"context"
	"errors"
	"happyhomes/src/db"
	"happyhomes/src/lib/mailer"
	"happyhomes/src/models"
	"happyhomes/src/models/scopes"
	"happyhomes/src/types"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var validate = validator.New()

// ApplyVisitorAction moves v through the check-in state machine.
//
//	pending  --approve--> approved (time_in set)
//	pending  --decline--> declined
//	approved --checkout--> approved (time_out set, once)
//	approved --time-in--> approved (time_in restamped, before checkout)
//	any      --timeout--> time_out set
func ApplyVisitorAction(v *models.Visitor, action types.VisitorAction, now time.Time) error {
	switch action {
	case types.VISITOR_APPROVE:
		if v.Status != types.VISITOR_PENDING {
			return Errorf(ErrInvalidTransition, "Cannot approve a visitor that is %s", v.Status)
		}
		v.Status = types.VISITOR_APPROVED
		v.TimeIn = &now
	case types.VISITOR_DECLINE:
		if v.Status != types.VISITOR_PENDING {
			return Errorf(ErrInvalidTransition, "Cannot decline a visitor that is %s", v.Status)
		}
		v.Status = types.VISITOR_DECLINED
	case types.VISITOR_CHECKOUT:
		if v.Status != types.VISITOR_APPROVED {
			return Errorf(ErrInvalidTransition, "Cannot check out unapproved visitor")
		}
		if v.TimeOut != nil {
			return Errorf(ErrInvalidTransition, "Visitor has already checked out")
		}
		v.TimeOut = &now
	case types.VISITOR_TIME_IN:
		if v.Status != types.VISITOR_APPROVED {
			return Errorf(ErrInvalidTransition, "Cannot time in unapproved visitor")
		}
		if v.TimeOut != nil {
			return Errorf(ErrInvalidTransition, "Visitor has already checked out")
		}
		v.TimeIn = &now
	case types.VISITOR_FORCE_TIMEOUT:
		v.TimeOut = &now
	default:
		return Errorf(ErrInvalidInput, "unknown visitor action %q", action)
	}
	return nil
}

// VisitorGate decides whether a caller may apply action to v.
type VisitorGate func(v *models.Visitor, action types.VisitorAction) error

// ResidentGate lets a resident approve or decline visitors bound to their own access code.
func ResidentGate(actor Actor) VisitorGate {
	return func(v *models.Visitor, action types.VisitorAction) error {
		if action != types.VISITOR_APPROVE && action != types.VISITOR_DECLINE {
			return ErrForbidden
		}
		if v.Resident == nil || v.Resident.UserID != actor.UserID {
			return ErrForbidden
		}
		return nil
	}
}

// AdminGate lets staff approve, decline or force a timeout on any visitor.
func AdminGate(actor Actor) VisitorGate {
	return func(v *models.Visitor, action types.VisitorAction) error {
		if !actor.IsStaff {
			return ErrForbidden
		}
		switch action {
		case types.VISITOR_APPROVE, types.VISITOR_DECLINE, types.VISITOR_FORCE_TIMEOUT:
			return nil
		}
		return ErrForbidden
	}
}

// GuestGate covers the unauthenticated gate actions.
func GuestGate(v *models.Visitor, action types.VisitorAction) error {
	switch action {
	case types.VISITOR_CHECKOUT, types.VISITOR_TIME_IN:
		return nil
	}
	return ErrForbidden
}

// TransitionVisitor loads the visitor, checks gate, applies action and persists the result.
// decidedBy names the approver in notifications.
func TransitionVisitor(ctx context.Context, gate VisitorGate, id uint, action types.VisitorAction, decidedBy string) (*models.Visitor, error) {
	db := db.GetDb()
	var visitor models.Visitor
	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Scopes(scopes.WithID(id)).
			Preload("Resident.User").
			First(&visitor).
			Error
		if err != nil {
			return notFound(err, "Visitor")
		}
		if err := gate(&visitor, action); err != nil {
			return err
		}
		if err := ApplyVisitorAction(&visitor, action, time.Now()); err != nil {
			return err
		}
		return tx.
			Model(&models.Visitor{}).
			Scopes(scopes.WithID(visitor.ID)).
			Updates(map[string]any{
				"status":   visitor.Status,
				"time_in":  visitor.TimeIn,
				"time_out": visitor.TimeOut,
			}).
			Error
	})
	if err != nil {
		return nil, err
	}
	log.Printf("Visitor %d: %s -> %s\n", visitor.ID, action, visitor.Status)
	notifyVisitorTransition(ctx, &visitor, action, decidedBy)
	return &visitor, nil
}

func notifyVisitorTransition(ctx context.Context, v *models.Visitor, action types.VisitorAction, decidedBy string) {
	var resident *models.User
	if v.Resident != nil {
		resident = v.Resident.User
	}
	if decidedBy == "" && resident != nil {
		decidedBy = resident.Username
	}
	switch action {
	case types.VISITOR_APPROVE:
		if resident != nil {
			mailer.Dispatch(ctx, VisitorDecisionMessage(v, resident, decidedBy))
		}
		mailer.Dispatch(ctx, VisitorApprovedGuestMessage(v, decidedBy))
	case types.VISITOR_DECLINE:
		if resident != nil {
			mailer.Dispatch(ctx, VisitorDecisionMessage(v, resident, decidedBy))
		}
	case types.VISITOR_CHECKOUT:
		if resident != nil {
			mailer.Dispatch(ctx, VisitorCheckedOutMessage(v, resident))
		}
		mailer.Dispatch(ctx, GuestCheckedOutMessage(v))
	}
}

// SelfCheckin registers a walk-in guest against the resident owning code.
func SelfCheckin(ctx context.Context, body *types.GuestCheckinRequestBody) (*models.Visitor, error) {
	name := strings.TrimSpace(body.Name)
	gmail := strings.TrimSpace(body.Gmail)
	code := strings.TrimSpace(body.Code)
	if name == "" || gmail == "" || code == "" {
		return nil, Errorf(ErrInvalidInput, "Missing name, gmail, or access code")
	}
	if err := validate.Var(gmail, "email"); err != nil {
		return nil, Errorf(ErrInvalidInput, "Enter a valid gmail address")
	}
	db := db.GetDb()
	var visitor models.Visitor
	var resident *models.ResidentAccessCode
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		resident, err = findAccessCode(tx, code)
		if err != nil {
			return err
		}
		visitor = models.Visitor{
			Name:          name,
			Gmail:         &gmail,
			ContactNumber: body.ContactNumber,
			CodeEntered:   &code,
			ResidentID:    &resident.ID,
			Reason:        body.Reason,
			Status:        types.VISITOR_PENDING,
		}
		return tx.Create(&visitor).Error
	})
	if err != nil {
		return nil, err
	}
	log.Printf("Visitor %d checked in for resident %d\n", visitor.ID, resident.ID)
	if resident.User != nil {
		mailer.Dispatch(ctx, VisitorPendingMessage(&visitor, resident.User))
	}
	return &visitor, nil
}

// ResidentCheckin registers a visitor on behalf of the calling resident.
func ResidentCheckin(actor Actor, body *types.ResidentCheckinRequestBody) (*models.Visitor, error) {
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return nil, Errorf(ErrInvalidInput, "Missing visitor name")
	}
	db := db.GetDb()
	var visitor models.Visitor
	err := db.Transaction(func(tx *gorm.DB) error {
		rec, err := getOrCreateAccessCode(tx, actor.UserID)
		if err != nil {
			return err
		}
		visitor = models.Visitor{
			Name:          name,
			Gmail:         body.Gmail,
			ContactNumber: body.ContactNumber,
			ResidentID:    &rec.ID,
			Reason:        body.Reason,
			Status:        types.VISITOR_PENDING,
		}
		return tx.Create(&visitor).Error
	})
	if err != nil {
		return nil, err
	}
	return &visitor, nil
}

func residentCodes(tx *gorm.DB, userID uint) *gorm.DB {
	return tx.Model(&models.ResidentAccessCode{}).Select("id").Where("user_id = ?", userID)
}

// ActiveVisitors lists the resident's visitors that are on site.
func ActiveVisitors(userID uint) ([]models.Visitor, error) {
	db := db.GetDb()
	var visitors []models.Visitor
	err := db.
		Model(&models.Visitor{}).
		Where("resident_id IN (?)", residentCodes(db, userID)).
		Scopes(scopes.OnSite).
		Order("time_in DESC").
		Find(&visitors).
		Error
	return visitors, err
}

func PendingVisitors(userID uint) ([]models.Visitor, error) {
	db := db.GetDb()
	var visitors []models.Visitor
	err := db.
		Model(&models.Visitor{}).
		Where("resident_id IN (?)", residentCodes(db, userID)).
		Scopes(scopes.WithPendingStatus).
		Order("id ASC").
		Find(&visitors).
		Error
	return visitors, err
}

// ResidentVisitors lists every visitor of the resident, optionally narrowed by name and gmail.
func ResidentVisitors(userID uint, name, gmail string) ([]models.Visitor, error) {
	db := db.GetDb()
	var rec models.ResidentAccessCode
	if err := db.Where(&models.ResidentAccessCode{UserID: userID}).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.Visitor{}, nil
		}
		return nil, err
	}
	return VisitorsByResident(name, gmail, rec.ID)
}

func VisitorsByResident(name, gmail string, residentID uint) ([]models.Visitor, error) {
	db := db.GetDb()
	var visitors []models.Visitor
	err := db.
		Model(&models.Visitor{}).
		Scopes(scopes.WithResident(residentID), scopes.MatchingGuest(name, gmail)).
		Order("id DESC").
		Find(&visitors).
		Error
	return visitors, err
}

// VisitorStatus lets a guest poll their check-ins. All matches are returned.
func VisitorStatus(name, gmail, code string) ([]models.Visitor, error) {
	db := db.GetDb()
	if _, err := findAccessCode(db, code); err != nil {
		return nil, err
	}
	var visitors []models.Visitor
	err := db.
		Model(&models.Visitor{}).
		Where("resident_id IN (?)", db.Model(&models.ResidentAccessCode{}).Select("id").Where("code = ?", code)).
		Where("name = ? AND gmail = ?", name, gmail).
		Order("id ASC").
		Find(&visitors).
		Error
	return visitors, err
}

func ListAllVisitors() ([]models.Visitor, error) {
	db := db.GetDb()
	var visitors []models.Visitor
	err := db.
		Model(&models.Visitor{}).
		Order("time_in DESC").
		Order("id DESC").
		Find(&visitors).
		Error
	return visitors, err
}

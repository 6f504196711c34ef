package common

import (
	"fmt"
	"happyhomes/src/config"
	"happyhomes/src/lib/mailer"
	"happyhomes/src/models"
	"happyhomes/src/types"
	"happyhomes/src/utils"
	"strings"
	"time"
)

const signOff = "Thank you,\nHappy Homes Admin"

func BookingStatusMessage(b *models.Booking, previous types.BookingStatus) *mailer.Message {
	if b.User == nil || b.Facility == nil {
		return nil
	}
	facility := b.Facility.Label()
	body := fmt.Sprintf(
		"Hello %s,\n\n"+
			"Your booking for %s on %s from %s to %s has been %s by the admin (previously %s).\n\n"+
			"You can view your booking status here: %s/my-bookings\n\n%s",
		b.User.DisplayName(),
		facility,
		utils.FormatLongDate(b.Date),
		utils.FormatTwelveHour(b.StartTime),
		utils.FormatTwelveHour(b.EndTime),
		strings.ToUpper(string(b.Status)),
		previous,
		config.FrontendURL(),
		signOff,
	)
	return &mailer.Message{
		To:      []string{b.User.Email},
		Subject: fmt.Sprintf("Booking %s - %s", utils.Capitalize(string(b.Status)), facility),
		Body:    body,
	}
}

func VisitorPendingMessage(v *models.Visitor, resident *models.User) *mailer.Message {
	body := fmt.Sprintf(
		"Hello %s,\n\n"+
			"A new visitor has submitted a check-in request.\n"+
			"Details:\nName: %s\nGmail: %s\nContact: %s\n\n"+
			"Please approve or decline this visitor in the dashboard.",
		resident.Username, v.Name, orDash(v.Gmail), orDash(v.ContactNumber),
	)
	return &mailer.Message{
		To:      []string{resident.Email},
		Subject: "New Visitor Check-In Pending Approval",
		Body:    body,
	}
}

// VisitorDecisionMessage tells the resident who approved or declined their visitor.
func VisitorDecisionMessage(v *models.Visitor, resident *models.User, decidedBy string) *mailer.Message {
	word := "approved"
	subject := "Visitor Approved"
	if v.Status == types.VISITOR_DECLINED {
		word = "declined"
		subject = "Visitor Declined"
	}
	return &mailer.Message{
		To:      []string{resident.Email},
		Subject: subject,
		Body:    fmt.Sprintf("Visitor %s has been %s by %s.", v.Name, word, decidedBy),
	}
}

func VisitorApprovedGuestMessage(v *models.Visitor, decidedBy string) *mailer.Message {
	if v.Gmail == nil {
		return nil
	}
	body := fmt.Sprintf(
		"Hello %s,\n\n"+
			"Your visitor check-in has been approved by %s.\n"+
			"Details:\nName: %s\nGmail: %s\nContact: %s\nReason: %s\n\n"+
			"Time In: %s\nEnjoy your visit!",
		v.Name, decidedBy, v.Name, *v.Gmail, orDash(v.ContactNumber), orDash(v.Reason), formatStamp(v.TimeIn),
	)
	return &mailer.Message{
		To:      []string{*v.Gmail},
		Subject: "Your Visitor Check-In Has Been Approved",
		Body:    body,
	}
}

func VisitorCheckedOutMessage(v *models.Visitor, resident *models.User) *mailer.Message {
	return &mailer.Message{
		To:      []string{resident.Email},
		Subject: "Visitor Checked Out",
		Body:    fmt.Sprintf("Visitor %s has checked out successfully.", v.Name),
	}
}

func GuestCheckedOutMessage(v *models.Visitor) *mailer.Message {
	if v.Gmail == nil {
		return nil
	}
	return &mailer.Message{
		To:      []string{*v.Gmail},
		Subject: "You Checked Out",
		Body:    fmt.Sprintf("Hello %s, you have successfully checked out.", v.Name),
	}
}

func AccountReviewMessage(u *models.User, verified bool) *mailer.Message {
	if verified {
		return &mailer.Message{
			To:      []string{u.Email},
			Subject: "Document Verification Approved - Happy Homes System",
			Body: fmt.Sprintf("Hello %s,\n\n"+
				"We have reviewed your submitted verification document, and it has been approved.\n\n"+
				"Your account is now fully verified and you may continue using the system.\n\n"+
				"Best regards,\nHappy Homes Admin Team", u.Username),
		}
	}
	return &mailer.Message{
		To:      []string{u.Email},
		Subject: "Document Verification Rejected - Happy Homes System",
		Body: fmt.Sprintf("Hello %s,\n\n"+
			"Unfortunately, your submitted verification document could not be approved.\n"+
			"Please ensure the uploaded document is clear, complete, and legitimate, then re-upload for review.\n\n"+
			"If you have any questions, please contact the admin.\n\n"+
			"Best regards,\nHappy Homes Admin Team", u.Username),
	}
}

func VerificationCodeMessage(email, code string) *mailer.Message {
	return &mailer.Message{
		To:      []string{email},
		Subject: "Your Verification Code",
		Body:    fmt.Sprintf("Your Happy Homes verification code is: %s", code),
	}
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func formatStamp(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(time.RFC1123)
}

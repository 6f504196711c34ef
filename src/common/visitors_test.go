package common

import (
	"context"
	"happyhomes/src/models"
	"happyhomes/src/types"
	"time"
)

func (s *CommonSuite) TestApplyVisitorAction() {
	now := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)
	later := now.Add(2 * time.Hour)

	cases := []struct {
		name    string
		status  types.VisitorStatus
		timeOut *time.Time
		action  types.VisitorAction
		want    types.VisitorStatus
		wantErr error
	}{
		{"approve pending", types.VISITOR_PENDING, nil, types.VISITOR_APPROVE, types.VISITOR_APPROVED, nil},
		{"decline pending", types.VISITOR_PENDING, nil, types.VISITOR_DECLINE, types.VISITOR_DECLINED, nil},
		{"approve approved", types.VISITOR_APPROVED, nil, types.VISITOR_APPROVE, "", ErrInvalidTransition},
		{"approve declined", types.VISITOR_DECLINED, nil, types.VISITOR_APPROVE, "", ErrInvalidTransition},
		{"decline approved", types.VISITOR_APPROVED, nil, types.VISITOR_DECLINE, "", ErrInvalidTransition},
		{"checkout pending", types.VISITOR_PENDING, nil, types.VISITOR_CHECKOUT, "", ErrInvalidTransition},
		{"checkout declined", types.VISITOR_DECLINED, nil, types.VISITOR_CHECKOUT, "", ErrInvalidTransition},
		{"checkout approved", types.VISITOR_APPROVED, nil, types.VISITOR_CHECKOUT, types.VISITOR_APPROVED, nil},
		{"checkout twice", types.VISITOR_APPROVED, &now, types.VISITOR_CHECKOUT, "", ErrInvalidTransition},
		{"time in approved", types.VISITOR_APPROVED, nil, types.VISITOR_TIME_IN, types.VISITOR_APPROVED, nil},
		{"time in after checkout", types.VISITOR_APPROVED, &now, types.VISITOR_TIME_IN, "", ErrInvalidTransition},
		{"time in pending", types.VISITOR_PENDING, nil, types.VISITOR_TIME_IN, "", ErrInvalidTransition},
		{"timeout pending", types.VISITOR_PENDING, nil, types.VISITOR_FORCE_TIMEOUT, types.VISITOR_PENDING, nil},
		{"unknown", types.VISITOR_PENDING, nil, types.VisitorAction("wave"), "", ErrInvalidInput},
	}
	for _, tc := range cases {
		v := &models.Visitor{Name: "Guest", Status: tc.status, TimeOut: tc.timeOut}
		err := ApplyVisitorAction(v, tc.action, later)
		if tc.wantErr != nil {
			s.ErrorIs(err, tc.wantErr, tc.name)
			s.Equal(tc.status, v.Status, tc.name)
			continue
		}
		s.Nil(err, tc.name)
		s.Equal(tc.want, v.Status, tc.name)
	}

	v := &models.Visitor{Status: types.VISITOR_PENDING}
	s.Nil(ApplyVisitorAction(v, types.VISITOR_APPROVE, now))
	s.Equal(now, *v.TimeIn)
	s.Nil(v.TimeOut)
	s.Nil(ApplyVisitorAction(v, types.VISITOR_TIME_IN, later))
	s.Equal(later, *v.TimeIn)
	s.Nil(ApplyVisitorAction(v, types.VISITOR_CHECKOUT, later))
	s.Equal(later, *v.TimeOut)

	err := ApplyVisitorAction(&models.Visitor{Status: types.VISITOR_PENDING}, types.VISITOR_CHECKOUT, now)
	s.Equal("Cannot check out unapproved visitor", err.Error())
}

func (s *CommonSuite) TestVisitorGates() {
	code := "111111"
	mine := &models.Visitor{Resident: &models.ResidentAccessCode{UserID: s.resident.ID, Code: &code}}
	orphan := &models.Visitor{}

	gate := ResidentGate(s.actor(s.resident))
	s.Nil(gate(mine, types.VISITOR_APPROVE))
	s.Nil(gate(mine, types.VISITOR_DECLINE))
	s.ErrorIs(gate(mine, types.VISITOR_FORCE_TIMEOUT), ErrForbidden)
	s.ErrorIs(gate(orphan, types.VISITOR_APPROVE), ErrForbidden)
	s.ErrorIs(ResidentGate(s.actor(s.neighbor))(mine, types.VISITOR_APPROVE), ErrForbidden)

	s.Nil(AdminGate(s.actor(s.admin))(orphan, types.VISITOR_FORCE_TIMEOUT))
	s.ErrorIs(AdminGate(s.actor(s.admin))(orphan, types.VISITOR_CHECKOUT), ErrForbidden)
	s.ErrorIs(AdminGate(s.actor(s.resident))(mine, types.VISITOR_APPROVE), ErrForbidden)

	s.Nil(GuestGate(orphan, types.VISITOR_CHECKOUT))
	s.Nil(GuestGate(orphan, types.VISITOR_TIME_IN))
	s.ErrorIs(GuestGate(orphan, types.VISITOR_APPROVE), ErrForbidden)
}

func (s *CommonSuite) TestSelfCheckinValidation() {
	code := s.residentCode(s.resident)

	_, err := SelfCheckin(context.Background(), &types.GuestCheckinRequestBody{Name: "Dana", Code: code})
	s.ErrorIs(err, ErrInvalidInput)
	s.Equal("Missing name, gmail, or access code", err.Error())

	_, err = SelfCheckin(context.Background(), &types.GuestCheckinRequestBody{Name: "  ", Gmail: "dana@gmail.com", Code: code})
	s.ErrorIs(err, ErrInvalidInput)

	_, err = SelfCheckin(context.Background(), &types.GuestCheckinRequestBody{Name: "Dana", Gmail: "not-an-email", Code: code})
	s.ErrorIs(err, ErrInvalidInput)

	_, err = SelfCheckin(context.Background(), &types.GuestCheckinRequestBody{Name: "Dana", Gmail: "dana@gmail.com", Code: "12"})
	s.ErrorIs(err, ErrInvalidInput)
	s.Equal(400, StatusCode(err))

	wrong := "000000"
	if code == wrong {
		wrong = "000001"
	}
	_, err = SelfCheckin(context.Background(), &types.GuestCheckinRequestBody{Name: "Dana", Gmail: "dana@gmail.com", Code: wrong})
	s.ErrorIs(err, ErrInvalidCode)
	s.Equal("Invalid access code", err.Error())

	var count int64
	s.DB.Model(&models.Visitor{}).Count(&count)
	s.Zero(count)
	s.Empty(s.mail.sent)
}

func (s *CommonSuite) TestSelfCheckinCreatesPendingVisitor() {
	code := s.residentCode(s.resident)
	reason := "Delivery"

	v, err := SelfCheckin(context.Background(), &types.GuestCheckinRequestBody{
		Name:   " Dana ",
		Gmail:  "dana@gmail.com",
		Code:   code,
		Reason: &reason,
	})
	s.Nil(err)
	s.Equal("Dana", v.Name)
	s.Equal(types.VISITOR_PENDING, v.Status)
	s.Equal(code, *v.CodeEntered)
	s.Nil(v.TimeIn)
	s.Nil(v.TimeOut)

	s.Require().Len(s.mail.sent, 1)
	s.Equal([]string{"alice@example.com"}, s.mail.sent[0].To)
	s.Equal("New Visitor Check-In Pending Approval", s.mail.sent[0].Subject)
	s.Contains(s.mail.sent[0].Body, "Name: Dana")

	pending, err := PendingVisitors(s.resident.ID)
	s.Nil(err)
	s.Require().Len(pending, 1)
	s.Equal(v.ID, pending[0].ID)

	pending, err = PendingVisitors(s.neighbor.ID)
	s.Nil(err)
	s.Empty(pending)
}

func (s *CommonSuite) TestVisitorApproveAndCheckout() {
	code := s.residentCode(s.resident)
	v := s.guestCheckin("Dana", "dana@gmail.com", code)
	s.mail.sent = nil

	approved, err := TransitionVisitor(context.Background(), ResidentGate(s.actor(s.resident)), v.ID, types.VISITOR_APPROVE, "alice")
	s.Nil(err)
	s.Equal(types.VISITOR_APPROVED, approved.Status)
	s.NotNil(approved.TimeIn)
	s.Nil(approved.TimeOut)
	s.ElementsMatch([]string{"Visitor Approved", "Your Visitor Check-In Has Been Approved"}, s.mail.subjects())

	active, err := ActiveVisitors(s.resident.ID)
	s.Nil(err)
	s.Len(active, 1)

	_, err = TransitionVisitor(context.Background(), ResidentGate(s.actor(s.resident)), v.ID, types.VISITOR_APPROVE, "alice")
	s.ErrorIs(err, ErrInvalidTransition)

	s.mail.sent = nil
	out, err := TransitionVisitor(context.Background(), GuestGate, v.ID, types.VISITOR_CHECKOUT, "")
	s.Nil(err)
	s.NotNil(out.TimeOut)
	s.ElementsMatch([]string{"Visitor Checked Out", "You Checked Out"}, s.mail.subjects())

	_, err = TransitionVisitor(context.Background(), GuestGate, v.ID, types.VISITOR_CHECKOUT, "")
	s.ErrorIs(err, ErrInvalidTransition)
	s.Equal("Visitor has already checked out", err.Error())

	active, err = ActiveVisitors(s.resident.ID)
	s.Nil(err)
	s.Empty(active)

	var stored models.Visitor
	s.Nil(s.DB.First(&stored, v.ID).Error)
	s.Equal(types.VISITOR_APPROVED, stored.Status)
	s.NotNil(stored.TimeIn)
	s.NotNil(stored.TimeOut)
}

func (s *CommonSuite) TestVisitorDecline() {
	code := s.residentCode(s.resident)
	v := s.guestCheckin("Eve", "eve@gmail.com", code)
	s.mail.sent = nil

	_, err := TransitionVisitor(context.Background(), ResidentGate(s.actor(s.neighbor)), v.ID, types.VISITOR_DECLINE, "bob")
	s.ErrorIs(err, ErrForbidden)

	declined, err := TransitionVisitor(context.Background(), AdminGate(s.actor(s.admin)), v.ID, types.VISITOR_DECLINE, "admin")
	s.Nil(err)
	s.Equal(types.VISITOR_DECLINED, declined.Status)
	s.Nil(declined.TimeOut)
	s.Require().Len(s.mail.sent, 1)
	s.Equal("Visitor Declined", s.mail.sent[0].Subject)
	s.Equal("Visitor Eve has been declined by admin.", s.mail.sent[0].Body)

	_, err = TransitionVisitor(context.Background(), GuestGate, v.ID, types.VISITOR_CHECKOUT, "")
	s.ErrorIs(err, ErrInvalidTransition)
	s.Equal("Cannot check out unapproved visitor", err.Error())

	_, err = TransitionVisitor(context.Background(), GuestGate, 999, types.VISITOR_CHECKOUT, "")
	s.ErrorIs(err, ErrNotFound)
}

func (s *CommonSuite) TestAdminForcedTimeout() {
	code := s.residentCode(s.resident)
	v := s.guestCheckin("Finn", "finn@gmail.com", code)
	s.mail.sent = nil

	out, err := TransitionVisitor(context.Background(), AdminGate(s.actor(s.admin)), v.ID, types.VISITOR_FORCE_TIMEOUT, "admin")
	s.Nil(err)
	s.Equal(types.VISITOR_PENDING, out.Status)
	s.NotNil(out.TimeOut)
	s.Empty(s.mail.sent)

	_, err = TransitionVisitor(context.Background(), AdminGate(s.actor(s.resident)), v.ID, types.VISITOR_FORCE_TIMEOUT, "alice")
	s.ErrorIs(err, ErrForbidden)
}

func (s *CommonSuite) TestResidentCheckin() {
	gmail := "gus@gmail.com"
	v, err := ResidentCheckin(s.actor(s.neighbor), &types.ResidentCheckinRequestBody{Name: "Gus", Gmail: &gmail})
	s.Nil(err)
	s.Equal(types.VISITOR_PENDING, v.Status)
	s.Nil(v.CodeEntered)

	rec, err := GetOrCreateAccessCode(s.neighbor.ID)
	s.Nil(err)
	s.Equal(rec.ID, *v.ResidentID)

	visitors, err := ResidentVisitors(s.neighbor.ID, "", "")
	s.Nil(err)
	s.Len(visitors, 1)

	visitors, err = ResidentVisitors(s.neighbor.ID, "Someone", "")
	s.Nil(err)
	s.Empty(visitors)

	// no access code record yet
	visitors, err = ResidentVisitors(s.resident.ID, "", "")
	s.Nil(err)
	s.NotNil(visitors)
	s.Empty(visitors)

	_, err = ResidentCheckin(s.actor(s.neighbor), &types.ResidentCheckinRequestBody{Name: " "})
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *CommonSuite) TestVisitorStatus() {
	code := s.residentCode(s.resident)
	first := s.guestCheckin("Hana", "hana@gmail.com", code)
	second := s.guestCheckin("Hana", "hana@gmail.com", code)
	s.guestCheckin("Ivan", "ivan@gmail.com", code)

	_, err := TransitionVisitor(context.Background(), ResidentGate(s.actor(s.resident)), first.ID, types.VISITOR_DECLINE, "alice")
	s.Require().Nil(err)

	visitors, err := VisitorStatus("Hana", "hana@gmail.com", code)
	s.Nil(err)
	s.Require().Len(visitors, 2)
	s.Equal(first.ID, visitors[0].ID)
	s.Equal(types.VISITOR_DECLINED, visitors[0].Status)
	s.Equal(second.ID, visitors[1].ID)
	s.Equal(types.VISITOR_PENDING, visitors[1].Status)

	visitors, err = VisitorStatus("Nobody", "nobody@gmail.com", code)
	s.Nil(err)
	s.Empty(visitors)

	_, err = VisitorStatus("Hana", "hana@gmail.com", "12ab56")
	s.ErrorIs(err, ErrInvalidInput)

	all, err := ListAllVisitors()
	s.Nil(err)
	s.Len(all, 3)

	byResident, err := VisitorsByResident("Ivan", "", *first.ResidentID)
	s.Nil(err)
	s.Len(byResident, 1)
}

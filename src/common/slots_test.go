package common

import (
	"happyhomes/src/types"
	"happyhomes/src/utils"
)

func (s *CommonSuite) TestSeedFacilitiesIsIdempotent() {
	s.Nil(SeedFacilities())
	facilities, err := ListFacilities()
	s.Nil(err)
	s.Len(facilities, 2)
	s.Equal("Basketball Court", facilities[0].Label())
	s.Equal("Swimming Pool", facilities[1].Label())
}

func (s *CommonSuite) TestCreateFacilityRejectsUnknownKind() {
	_, err := CreateFacility(types.FacilityKind("Gym"))
	s.ErrorIs(err, ErrInvalidInput)

	_, err = GetFacility(999)
	s.ErrorIs(err, ErrNotFound)
}

func (s *CommonSuite) TestParseWindow() {
	_, err := ParseWindow(s.court.ID, "2025/06/01", "09:00", "10:00")
	s.ErrorIs(err, ErrInvalidInput)

	_, err = ParseWindow(s.court.ID, "2025-06-01", "9am", "10:00")
	s.ErrorIs(err, ErrInvalidInput)

	_, err = ParseWindow(s.court.ID, "2025-06-01", "10:00", "10:00")
	s.ErrorIs(err, ErrInvalidInput)

	w, err := ParseWindow(s.court.ID, "2025-06-01", "09:00", "10:30")
	s.Nil(err)
	s.Equal("2025-06-01", utils.FormatDate(w.Date))
	s.Equal("10:30:00", utils.FormatClock(w.EndTime))
}

func (s *CommonSuite) TestCreateSlot() {
	slot, err := CreateSlot(s.window(s.court, "2025-06-01", "09:00", "10:00"))
	s.Nil(err)
	s.NotZero(slot.ID)
	s.Equal("Basketball Court", slot.Response().Facility)

	_, err = CreateSlot(s.window(s.court, "2025-06-01", "09:00", "10:00"))
	s.ErrorIs(err, ErrDuplicateSlot)
	s.Equal(409, StatusCode(err))

	// same window on another facility is a different slot
	_, err = CreateSlot(s.window(s.pool, "2025-06-01", "09:00", "10:00"))
	s.Nil(err)

	// overlapping but not identical windows are allowed
	_, err = CreateSlot(s.window(s.court, "2025-06-01", "09:30", "10:30"))
	s.Nil(err)

	_, err = CreateSlot(&Window{FacilityID: 999, Date: slot.Date, StartTime: slot.StartTime, EndTime: slot.EndTime})
	s.ErrorIs(err, ErrNotFound)
}

func (s *CommonSuite) TestListSlotsOrderedAndFiltered() {
	_, err := CreateSlot(s.window(s.court, "2025-06-02", "08:00", "09:00"))
	s.Require().Nil(err)
	_, err = CreateSlot(s.window(s.pool, "2025-06-01", "14:00", "15:00"))
	s.Require().Nil(err)
	_, err = CreateSlot(s.window(s.court, "2025-06-01", "10:00", "11:00"))
	s.Require().Nil(err)

	slots, err := ListSlots(nil)
	s.Nil(err)
	s.Require().Len(slots, 3)
	s.Equal("2025-06-01", utils.FormatDate(slots[0].Date))
	s.Equal("10:00:00", utils.FormatClock(slots[0].StartTime))
	s.Equal("14:00:00", utils.FormatClock(slots[1].StartTime))
	s.Equal("2025-06-02", utils.FormatDate(slots[2].Date))

	slots, err = ListSlots(&s.pool.ID)
	s.Nil(err)
	s.Require().Len(slots, 1)
	s.Equal(s.pool.ID, slots[0].FacilityID)
}

func (s *CommonSuite) TestUpdateSlot() {
	first, err := CreateSlot(s.window(s.court, "2025-06-01", "09:00", "10:00"))
	s.Require().Nil(err)
	second, err := CreateSlot(s.window(s.court, "2025-06-01", "10:00", "11:00"))
	s.Require().Nil(err)

	// saving a slot onto itself is not a duplicate
	start := "09:00"
	updated, err := UpdateSlot(first.ID, &types.UpdateSlotRequestBody{StartTime: &start})
	s.Nil(err)
	s.Equal("09:00:00", utils.FormatClock(updated.StartTime))

	end := "10:00"
	startClash := "09:00"
	_, err = UpdateSlot(second.ID, &types.UpdateSlotRequestBody{StartTime: &startClash, EndTime: &end})
	s.ErrorIs(err, ErrDuplicateSlot)

	badEnd := "08:00"
	_, err = UpdateSlot(second.ID, &types.UpdateSlotRequestBody{EndTime: &badEnd})
	s.ErrorIs(err, ErrInvalidInput)

	updated, err = UpdateSlot(second.ID, &types.UpdateSlotRequestBody{FacilityID: &s.pool.ID})
	s.Nil(err)
	s.Equal(s.pool.ID, updated.FacilityID)
	s.Equal("Swimming Pool", updated.Response().Facility)

	_, err = UpdateSlot(999, &types.UpdateSlotRequestBody{})
	s.ErrorIs(err, ErrNotFound)
}

func (s *CommonSuite) TestDeleteSlot() {
	slot, err := CreateSlot(s.window(s.court, "2025-06-01", "09:00", "10:00"))
	s.Require().Nil(err)

	s.Nil(DeleteSlot(slot.ID))
	_, err = GetSlot(slot.ID)
	s.ErrorIs(err, ErrNotFound)
	s.ErrorIs(DeleteSlot(slot.ID), ErrNotFound)

	// the window is free again
	_, err = CreateSlot(s.window(s.court, "2025-06-01", "09:00", "10:00"))
	s.Nil(err)
}

package models_test

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"TimeTrackGo/models"
)

func TestNewTimeEntryResponse_ClosedEntry(t *testing.T) {
	c := qt.New(t)

	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(3661 * time.Second)
	entry := models.TimeEntry{
		ID:          "e1",
		UserID:      "u1",
		StartTime:   start,
		EndTime:     &end,
		Description: "deep work",
		Association: models.TaskAssociation("t1"),
		Billable:    true,
	}

	resp := models.NewTimeEntryResponse(&entry)

	c.Assert(resp.Duration, qt.Equals, "01:01:01")
	c.Assert(resp.Billable, qt.IsTrue)
	c.Assert(resp.Association, qt.Equals, models.TaskAssociation("t1"))
}

func TestNewTimeEntryResponse_OpenEntryHasNoDuration(t *testing.T) {
	c := qt.New(t)

	entry := models.TimeEntry{
		ID:        "e1",
		UserID:    "u1",
		StartTime: time.Now().UTC().Add(-time.Hour),
	}

	resp := models.NewTimeEntryResponse(&entry)

	// Elapsed time of a running timer is derived client-side from StartTime,
	// the server reports no duration until the entry closes.
	c.Assert(resp.Duration, qt.Equals, "")
	c.Assert(resp.EndTime, qt.IsNil)
}

func TestErrorKinds(t *testing.T) {
	c := qt.New(t)

	kind, ok := models.KindOf(models.NewConflict("busy"))
	c.Assert(ok, qt.IsTrue)
	c.Assert(kind, qt.Equals, models.ErrConflict)

	verr := models.NewValidation("endTime", "end time must be after start time")
	c.Assert(verr.Error(), qt.Equals, "validation: endTime: end time must be after start time")
	c.Assert(verr.HTTPStatus(), qt.Equals, 400)
	c.Assert(models.NewConflict("x").HTTPStatus(), qt.Equals, 409)
	c.Assert(models.NewInvalidState("x").HTTPStatus(), qt.Equals, 409)
	c.Assert(models.NewNotFound("x").HTTPStatus(), qt.Equals, 404)

	_, ok = models.KindOf(nil)
	c.Assert(ok, qt.IsFalse)
}

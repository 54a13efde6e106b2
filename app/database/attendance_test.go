package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devasathya74/pmsrbl/app/models"
	"github.com/devasathya74/pmsrbl/app/store"
)

func TestSaveAttendanceComputesCounts(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()

	rec := &models.AttendanceRecord{
		Class:       "5",
		Date:        "2026-03-02",
		TeacherName: "Kavita Rao",
		// caller-supplied counts are ignored
		PresentCount:  99,
		TotalStudents: 99,
		Records: map[string]models.PresenceStatus{
			"s1": models.Present,
			"s2": models.Absent,
			"s3": models.Present,
		},
	}
	require.NoError(t, SaveAttendance(ctx, s, rec))

	got, err := LoadAttendance(ctx, s, "5", "2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, 2, got.PresentCount)
	assert.Equal(t, 3, got.TotalStudents)
	assert.Equal(t, "5_2026-03-02", got.ID)
	assert.Equal(t, models.Absent, got.Records["s2"])
	assert.NotEmpty(t, got.Timestamp)
}

func TestSaveAttendanceValidation(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()

	assert.Error(t, SaveAttendance(ctx, s, &models.AttendanceRecord{
		Date:    "2026-03-02",
		Records: map[string]models.PresenceStatus{"s1": models.Present},
	}))
	assert.Error(t, SaveAttendance(ctx, s, &models.AttendanceRecord{
		Class: "5", Date: "2026-03-02",
	}))
	assert.Error(t, SaveAttendance(ctx, s, &models.AttendanceRecord{
		Class: "5", Date: "2026-03-02",
		Records: map[string]models.PresenceStatus{"s1": "late"},
	}))
}

func TestResaveReplacesWholesale(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()

	require.NoError(t, SaveAttendance(ctx, s, &models.AttendanceRecord{
		Class: "5", Date: "2026-03-02",
		Records: map[string]models.PresenceStatus{
			"s1": models.Present,
			"s2": models.Present,
		},
	}))
	require.NoError(t, SaveAttendance(ctx, s, &models.AttendanceRecord{
		Class: "5", Date: "2026-03-02",
		Records: map[string]models.PresenceStatus{
			"s1": models.Absent,
		},
	}))

	got, err := LoadAttendance(ctx, s, "5", "2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, 0, got.PresentCount)
	assert.Equal(t, 1, got.TotalStudents)
	// a student dropped from the resubmitted roster leaves no stale mark
	assert.NotContains(t, got.Records, "s2")
}

func TestLoadAttendanceUnmarkedDay(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()

	_, err := LoadAttendance(ctx, s, "5", "2026-03-02")
	assert.ErrorIs(t, err, store.ErrNotFound)

	// records are keyed per class and date, a neighbour never leaks
	require.NoError(t, SaveAttendance(ctx, s, &models.AttendanceRecord{
		Class: "5", Date: "2026-03-03",
		Records: map[string]models.PresenceStatus{"s1": models.Present},
	}))
	_, err = LoadAttendance(ctx, s, "5", "2026-03-02")
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = LoadAttendance(ctx, s, "6", "2026-03-03")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

//go:build unit

package booking_test

import (
	"testing"
	"time"

	"booking-console/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) booking.Date {
	t.Helper()
	d, err := booking.ParseDate(s)
	require.NoError(t, err)
	return d
}

func mustTime(t *testing.T, s string) booking.TimeOfDay {
	t.Helper()
	tod, err := booking.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func TestDate(t *testing.T) {
	t.Run("表示フォーマット", func(t *testing.T) {
		d := mustDate(t, "2026-03-07")
		assert.Equal(t, "2026-03-07", d.String())
		assert.Equal(t, "07-03-2026", d.DisplayDMY())
		assert.Equal(t, "--", booking.Date{}.DisplayDMY())
		assert.Equal(t, "", booking.Date{}.String())
	})

	t.Run("不正な日付NG", func(t *testing.T) {
		for _, s := range []string{"", "2026-13-01", "07-03-2026", "2026/03/07"} {
			_, err := booking.ParseDate(s)
			assert.ErrorIs(t, err, booking.ErrInvalidDate, s)
		}
	})

	t.Run("前後比較", func(t *testing.T) {
		assert.True(t, mustDate(t, "2025-12-31").Before(mustDate(t, "2026-01-01")))
		assert.True(t, mustDate(t, "2026-01-31").Before(mustDate(t, "2026-02-01")))
		assert.False(t, mustDate(t, "2026-02-01").Before(mustDate(t, "2026-02-01")))
	})
}

func TestTimeOfDay(t *testing.T) {
	t.Run("HH:MM:SS と HH:MM を受け付ける", func(t *testing.T) {
		tod := mustTime(t, "09:30:15")
		assert.Equal(t, "09:30:15", tod.String())
		assert.Equal(t, "09:30", tod.Short())
		assert.Equal(t, 9*60+30, tod.MinuteOfDay())

		assert.Equal(t, "14:05:00", mustTime(t, "14:05").String())
	})

	t.Run("範囲外NG", func(t *testing.T) {
		for _, s := range []string{"24:00:00", "10:60", "aa:bb", "10", ""} {
			_, err := booking.ParseTimeOfDay(s)
			assert.ErrorIs(t, err, booking.ErrInvalidTimeOfDay, s)
		}
	})

	t.Run("未設定は--", func(t *testing.T) {
		assert.Equal(t, "--", booking.TimeOfDay{}.Short())
	})
}

func TestSlotIsElapsed(t *testing.T) {
	now := time.Date(2026, 3, 7, 10, 15, 40, 0, time.UTC)
	today := booking.DateOf(now)
	tomorrow := mustDate(t, "2026-03-08")

	slot := func(start string) booking.Slot {
		return booking.Slot{ID: 1, Date: today, Start: mustTime(t, start), End: mustTime(t, "23:00:00")}
	}

	t.Run("当日の過去枠は選択不可", func(t *testing.T) {
		assert.True(t, slot("09:00:00").IsElapsed(today, now))
	})

	t.Run("現在の分と同じ開始は選択不可", func(t *testing.T) {
		assert.True(t, slot("10:15:00").IsElapsed(today, now))
	})

	t.Run("当日の未来枠は選択可", func(t *testing.T) {
		assert.False(t, slot("10:16:00").IsElapsed(today, now))
	})

	t.Run("翌日なら同じ開始時刻でも選択可", func(t *testing.T) {
		assert.False(t, slot("09:00:00").IsElapsed(tomorrow, now))
	})

	t.Run("ラベル", func(t *testing.T) {
		assert.Equal(t, "09:00 - 23:00", slot("09:00:00").Label())
	})
}

func TestCancelRules(t *testing.T) {
	now := time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC)
	schedule := func(date, start string) booking.Schedule {
		return booking.Schedule{Date: mustDate(t, date), Start: mustTime(t, start), End: mustTime(t, "23:00")}
	}

	testCases := []struct {
		name    string
		booking booking.Booking
		errIs   error
	}{
		{
			name:    "未来の予約はキャンセル可",
			booking: booking.Booking{Status: booking.StatusPending, Schedule: schedule("2026-03-07", "10:01")},
		},
		{
			name:    "確定済みでも未来ならキャンセル可",
			booking: booking.Booking{Status: booking.StatusConfirmed, Schedule: schedule("2026-03-09", "08:00")},
		},
		{
			name:    "キャンセル済みNG",
			booking: booking.Booking{Status: booking.StatusCancelled, Schedule: schedule("2026-03-09", "08:00")},
			errIs:   booking.ErrAlreadyCancelled,
		},
		{
			name:    "開始済みNG",
			booking: booking.Booking{Status: booking.StatusPending, Schedule: schedule("2026-03-07", "10:00")},
			errIs:   booking.ErrInPast,
		},
		{
			name:    "日程不明NG",
			booking: booking.Booking{Status: booking.StatusPending},
			errIs:   booking.ErrUnknownSchedule,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := booking.CheckOwnerCancel(tc.booking, now)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}

	t.Run("管理者は過去の予約もキャンセル可", func(t *testing.T) {
		b := booking.Booking{Status: booking.StatusConfirmed, Schedule: schedule("2020-01-01", "08:00")}
		assert.NoError(t, booking.CheckAdminCancel(b))
		b.Status = booking.StatusCancelled
		assert.ErrorIs(t, booking.CheckAdminCancel(b), booking.ErrAlreadyCancelled)
	})

	t.Run("確定は保留中のみ", func(t *testing.T) {
		assert.NoError(t, booking.CheckConfirm(booking.Booking{Status: booking.StatusPending}))
		assert.ErrorIs(t, booking.CheckConfirm(booking.Booking{Status: booking.StatusConfirmed}), booking.ErrNotPending)
		assert.ErrorIs(t, booking.CheckConfirm(booking.Booking{Status: booking.StatusCancelled}), booking.ErrNotPending)
	})

	t.Run("ヒント", func(t *testing.T) {
		assert.Equal(t, "", booking.CancelHint(nil))
		assert.Equal(t, "Already cancelled", booking.CancelHint(booking.ErrAlreadyCancelled))
		assert.Equal(t, "Past bookings cannot be cancelled", booking.CancelHint(booking.ErrInPast))
	})
}

func TestSelectableDate(t *testing.T) {
	now := time.Date(2026, 3, 7, 23, 59, 0, 0, time.UTC)
	assert.NoError(t, booking.CheckSelectableDate(mustDate(t, "2026-03-07"), now))
	assert.ErrorIs(t, booking.CheckSelectableDate(mustDate(t, "2026-03-06"), now), booking.ErrDateInPast)
}

func TestServiceName(t *testing.T) {
	services := []booking.Service{{ID: 1, Name: "Haircut"}}
	assert.Equal(t, "Haircut", booking.ServiceName(services, 1))
	assert.Equal(t, "Service #9", booking.ServiceName(services, 9))
}

func TestNewStatus(t *testing.T) {
	s, err := booking.NewStatus("pending")
	require.NoError(t, err)
	assert.Equal(t, booking.StatusPending, s)

	_, err = booking.NewStatus("done")
	assert.ErrorIs(t, err, booking.ErrInvalidStatus)
}

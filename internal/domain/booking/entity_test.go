//go:build unit

package booking_test

import (
	"testing"
	"time"

	"slotbooker/internal/domain/booking"
	"slotbooker/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookingRequest(t *testing.T) {
	base := builder.NewBookingBuilder()

	t.Run("正常ケース", func(t *testing.T) {
		req, slots, err := base.Clone().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, req)

		assert.Equal(t, "Kickoff interviews", req.Title())
		assert.Equal(t, "organizer@example.com", req.OrganizerEmail())
		assert.Equal(t, 1, req.MaxSelections())
		assert.Len(t, slots, 3)
		for _, s := range slots {
			assert.Equal(t, req.ID(), s.RequestID())
			assert.True(t, s.IsAvailable())
		}
	})

	t.Run("タイトル空はエラー", func(t *testing.T) {
		_, _, err := base.Clone().WithTitle("   ").BuildDomain()
		assert.ErrorIs(t, err, booking.ErrMissingTitle)
	})

	t.Run("主催者メール空はエラー", func(t *testing.T) {
		b := base.Clone()
		b.OrganizerEmail = ""
		_, _, err := b.BuildDomain()
		assert.ErrorIs(t, err, booking.ErrMissingOrganizerEmail)
	})

	t.Run("所要時間ゼロ以下はエラー", func(t *testing.T) {
		b := base.Clone()
		b.DurationMinutes = 0
		_, _, err := b.BuildDomain()
		assert.ErrorIs(t, err, booking.ErrNonPositiveDuration)
	})

	t.Run("maxSelections 未指定は 1 に既定", func(t *testing.T) {
		req, _, err := base.Clone().WithMaxSelections(0).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, 1, req.MaxSelections())
	})

	t.Run("maxSelections 負はエラー", func(t *testing.T) {
		_, _, err := base.Clone().WithMaxSelections(-1).BuildDomain()
		assert.ErrorIs(t, err, booking.ErrInvalidSelectionLimit)
	})

	t.Run("候補スロットなしはエラー", func(t *testing.T) {
		_, _, err := base.Clone().WithSlotWindows(nil).BuildDomain()
		assert.ErrorIs(t, err, booking.ErrNoCandidateSlots)
	})

	t.Run("タイムゾーン空は UTC に既定", func(t *testing.T) {
		b := base.Clone()
		b.Timezone = "  "
		req, _, err := b.BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "UTC", req.Timezone())
	})

	t.Run("ウィンドウは全スロットを覆う", func(t *testing.T) {
		req, _, err := base.Clone().BuildDomain()
		require.NoError(t, err)

		want := time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)
		assert.Equal(t, want, req.Window().Start())
		assert.Equal(t, want.Add(90*time.Minute), req.Window().End())
	})
}

func TestBookingRequest_AppendSlots(t *testing.T) {
	base := builder.NewBookingBuilder()

	t.Run("追加スロットでウィンドウが広がる", func(t *testing.T) {
		req, _, err := base.Clone().BuildDomain()
		require.NoError(t, err)

		later := time.Date(2026, 9, 8, 14, 0, 0, 0, time.UTC)
		added, err := req.AppendSlots([]booking.SlotWindow{
			{Start: later, End: later.Add(30 * time.Minute)},
		})
		require.NoError(t, err)
		require.Len(t, added, 1)
		assert.Equal(t, later.Add(30*time.Minute), req.Window().End())
	})

	t.Run("既存より早いスロットで開始側が広がる", func(t *testing.T) {
		req, _, err := base.Clone().BuildDomain()
		require.NoError(t, err)
		end := req.Window().End()

		earlier := time.Date(2026, 9, 6, 8, 0, 0, 0, time.UTC)
		_, err = req.AppendSlots([]booking.SlotWindow{
			{Start: earlier, End: earlier.Add(30 * time.Minute)},
		})
		require.NoError(t, err)
		assert.Equal(t, earlier, req.Window().Start())
		assert.Equal(t, end, req.Window().End())
	})

	t.Run("既存ウィンドウ内のスロットでは境界が動かない", func(t *testing.T) {
		req, _, err := base.Clone().BuildDomain()
		require.NoError(t, err)
		start := req.Window().Start()
		end := req.Window().End()

		inner := start.Add(30 * time.Minute)
		_, err = req.AppendSlots([]booking.SlotWindow{
			{Start: inner, End: inner.Add(30 * time.Minute)},
		})
		require.NoError(t, err)
		assert.Equal(t, start, req.Window().Start())
		assert.Equal(t, end, req.Window().End())
	})

	t.Run("不正なウィンドウはエラー", func(t *testing.T) {
		req, _, err := base.Clone().BuildDomain()
		require.NoError(t, err)

		start := time.Date(2026, 9, 8, 14, 0, 0, 0, time.UTC)
		_, err = req.AppendSlots([]booking.SlotWindow{
			{Start: start, End: start},
		})
		assert.ErrorIs(t, err, booking.ErrInvalidSlotWindow)
	})
}

func TestSlot_Claim(t *testing.T) {
	newSlot := func(t *testing.T) *booking.Slot {
		t.Helper()
		start := time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)
		slot, err := booking.NewSlot(uuid.New(), start, start.Add(30*time.Minute))
		require.NoError(t, err)
		return slot
	}

	guest := func(t *testing.T) booking.GuestDetails {
		t.Helper()
		g, err := booking.NewGuestDetails("Taro Yamada", "taro@example.com", "", "")
		require.NoError(t, err)
		return g
	}

	t.Run("available なスロットは claim できる", func(t *testing.T) {
		slot := newSlot(t)
		inviteID := uuid.New()
		now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

		err := slot.Claim(inviteID, guest(t), now)
		require.NoError(t, err)

		assert.Equal(t, booking.StatusBooked, slot.Status())
		assert.False(t, slot.IsAvailable())
		require.NotNil(t, slot.ClaimedBy())
		assert.Equal(t, inviteID, *slot.ClaimedBy())
		require.NotNil(t, slot.BookedAt())
		assert.Equal(t, now, *slot.BookedAt())
	})

	t.Run("二重 claim はエラー", func(t *testing.T) {
		slot := newSlot(t)
		now := time.Now().UTC()

		require.NoError(t, slot.Claim(uuid.New(), guest(t), now))
		err := slot.Claim(uuid.New(), guest(t), now)
		assert.ErrorIs(t, err, booking.ErrSlotAlreadyBooked)
	})
}

func TestNewGuestDetails(t *testing.T) {
	t.Run("名前とメールは必須", func(t *testing.T) {
		_, err := booking.NewGuestDetails("", "taro@example.com", "", "")
		assert.ErrorIs(t, err, booking.ErrMissingGuestName)

		_, err = booking.NewGuestDetails("Taro", "  ", "", "")
		assert.ErrorIs(t, err, booking.ErrMissingGuestEmail)
	})

	t.Run("前後の空白は除去される", func(t *testing.T) {
		g, err := booking.NewGuestDetails("  Taro  ", " taro@example.com ", " 090-0000-0000 ", " memo ")
		require.NoError(t, err)
		assert.Equal(t, "Taro", g.Name())
		assert.Equal(t, "taro@example.com", g.Email())
		assert.Equal(t, "090-0000-0000", g.Phone())
		assert.Equal(t, "memo", g.Notes())
	})
}

//go:build e2e

package booking_test

import (
	"net/http"
	"testing"

	reqdto "slotbooker/internal/handler/dto/request"
	resdto "slotbooker/internal/handler/dto/response"
	"slotbooker/tests/common/builder"
	"slotbooker/tests/common/dbtest"
	"slotbooker/tests/common/httptest"
	"slotbooker/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL    = "/api/auth/login"
	bookingsURL = "/api/bookings"
)

type bookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

// login は参照データとして投入済みの主催者でログインし、アクセストークンを返す
func (s *bookingSuite) login() string {
	t := s.T()

	reqBody := reqdto.LoginRequest{
		Email:    dbtest.DefaultOrganizerEmail,
		Password: "password123",
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
	require.Equal(t, http.StatusOK, w.Code, "ログインに失敗")

	var login resdto.LoginResponse
	httptest.DecodeResponseBody(t, w.Body, &login)
	require.NotEmpty(t, login.AccessToken)
	return login.AccessToken
}

func (s *bookingSuite) createRequest(token string) resdto.RequestResponse {
	t := s.T()

	reqBody := builder.NewBookingBuilder().BuildCreateDTO()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
	require.Equal(t, http.StatusCreated, w.Code, "予約リクエストの作成に失敗")

	var created resdto.RequestResponse
	httptest.DecodeResponseBody(t, w.Body, &created)
	require.NotEmpty(t, created.ID)
	return created
}

func (s *bookingSuite) listSlots(token string, requestID string) []resdto.SlotResponse {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+requestID+"/slots", nil, token)
	require.Equal(t, http.StatusOK, w.Code, "スロット一覧の取得に失敗")

	var slots []resdto.SlotResponse
	httptest.DecodeResponseBody(t, w.Body, &slots)
	return slots
}

func (s *bookingSuite) createInvite(token string, requestID string, email string) resdto.InviteResponse {
	t := s.T()

	reqBody := reqdto.CreateInvitesRequest{Emails: []string{email}}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+requestID+"/invites", reqBody, token)
	require.Equal(t, http.StatusCreated, w.Code, "招待の作成に失敗")

	var invites []resdto.InviteResponse
	httptest.DecodeResponseBody(t, w.Body, &invites)
	require.Len(t, invites, 1)
	require.NotEmpty(t, invites[0].Token)
	return invites[0]
}

func (s *bookingSuite) TestBookingFlow() {
	s.Run("予約リクエスト作成からスロット確定までの一連の流れ", func() {
		t := s.T()
		token := s.login()

		created := s.createRequest(token)
		slots := s.listSlots(token, created.ID.String())
		require.NotEmpty(t, slots, "パターン展開でスロットが生成されていない")

		invite := s.createInvite(token, created.ID.String(), "guest@example.com")

		// 招待トークンで公開ビューを解決
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/p/"+invite.Token, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var page resdto.PublicBookingResponse
		httptest.DecodeResponseBody(t, w.Body, &page)
		require.Equal(t, created.Title, page.Title)
		require.Equal(t, 1, page.RemainingQuota)
		require.Len(t, page.Slots, len(slots))

		// スロットを確定
		claim := builder.NewClaimBuilder(slots[0].ID).BuildDTO()
		claim.GuestEmail = "guest@example.com"
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/p/"+invite.Token+"/claim", claim, "")
		require.Equal(t, http.StatusOK, w.Code, "スロットの確定に失敗")

		var booked resdto.SlotResponse
		httptest.DecodeResponseBody(t, w.Body, &booked)
		require.Equal(t, "booked", booked.Status)
		require.Equal(t, slots[0].StartAtMs, booked.StartAtMs)
		require.NotNil(t, booked.BookedAtMs)

		// 確定後の公開ビュー: 残数 0、自分の予約に mine フラグ
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/p/"+invite.Token, nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		httptest.DecodeResponseBody(t, w.Body, &page)
		require.Equal(t, 0, page.RemainingQuota)
		foundMine := false
		for _, slot := range page.Slots {
			if slot.ID == slots[0].ID {
				require.True(t, slot.Mine)
				require.Equal(t, "booked", slot.Status)
				foundMine = true
			}
		}
		require.True(t, foundMine, "自分の予約が公開ビューに表示されていない")
	})

	s.Run("前倒しパターンの追記でウィンドウ開始だけが前に動く", func() {
		t := s.T()
		token := s.login()

		created := s.createRequest(token)
		require.NotNil(t, created.WindowStartMs)
		require.NotNil(t, created.WindowEndMs)

		appendBody := reqdto.AppendSlotsRequest{
			Pattern: reqdto.SlotPattern{
				StartDate:       "2026-09-01",
				EndDate:         "2026-09-04",
				Weekdays:        []int{1, 2, 3, 4, 5},
				DayStart:        "08:00",
				DayEnd:          "09:00",
				IntervalMinutes: 30,
			},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+created.ID.String()+"/slots", appendBody, token)
		require.Equal(t, http.StatusOK, w.Code, "スロットの追記に失敗")

		var updated resdto.RequestResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		httptest.DecodeResponseBody(t, w.Body, &updated)
		require.NotNil(t, updated.WindowStartMs)
		require.NotNil(t, updated.WindowEndMs)
		require.Less(t, *updated.WindowStartMs, *created.WindowStartMs, "ウィンドウ開始が前に広がっていない")
		require.Equal(t, *created.WindowEndMs, *updated.WindowEndMs, "ウィンドウ終端が変わってしまった")
	})

	s.Run("クォータ消費後の再確定は 409", func() {
		t := s.T()
		token := s.login()

		created := s.createRequest(token)
		slots := s.listSlots(token, created.ID.String())
		require.GreaterOrEqual(t, len(slots), 2)
		invite := s.createInvite(token, created.ID.String(), "guest@example.com")

		claim := builder.NewClaimBuilder(slots[0].ID).BuildDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/p/"+invite.Token+"/claim", claim, "")
		require.Equal(t, http.StatusOK, w.Code)

		claim = builder.NewClaimBuilder(slots[1].ID).BuildDTO()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/p/"+invite.Token+"/claim", claim, "")
		require.Equal(t, http.StatusConflict, w.Code, "クォータ超過が 409 になっていない")
	})

	s.Run("確定済みスロットへの別招待からの確定は 409", func() {
		t := s.T()
		token := s.login()

		created := s.createRequest(token)
		slots := s.listSlots(token, created.ID.String())
		first := s.createInvite(token, created.ID.String(), "first@example.com")
		second := s.createInvite(token, created.ID.String(), "second@example.com")

		claim := builder.NewClaimBuilder(slots[0].ID).BuildDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/p/"+first.Token+"/claim", claim, "")
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/p/"+second.Token+"/claim", claim, "")
		require.Equal(t, http.StatusConflict, w.Code, "二重予約が 409 になっていない")
	})

	s.Run("他の招待者が確定したスロットは公開ビューから消える", func() {
		t := s.T()
		token := s.login()

		created := s.createRequest(token)
		slots := s.listSlots(token, created.ID.String())
		first := s.createInvite(token, created.ID.String(), "first@example.com")
		second := s.createInvite(token, created.ID.String(), "second@example.com")

		claim := builder.NewClaimBuilder(slots[0].ID).BuildDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/p/"+first.Token+"/claim", claim, "")
		require.Equal(t, http.StatusOK, w.Code)

		var page resdto.PublicBookingResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/p/"+second.Token, nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		httptest.DecodeResponseBody(t, w.Body, &page)
		require.Len(t, page.Slots, len(slots)-1, "他人の予約済みスロットが公開ビューに残っている")
		for _, slot := range page.Slots {
			require.NotEqual(t, slots[0].ID, slot.ID)
		}
	})

	s.Run("不正なトークンは 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/p/not-a-token", nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/p/0123456789abcdef0123456789abcdef", nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("共有リンク招待でも確定できる", func() {
		t := s.T()
		token := s.login()

		created := s.createRequest(token)
		slots := s.listSlots(token, created.ID.String())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+created.ID.String()+"/invites/shareable", nil, token)
		require.Equal(t, http.StatusCreated, w.Code)

		var invite resdto.InviteResponse
		httptest.DecodeResponseBody(t, w.Body, &invite)
		require.Nil(t, invite.Email)

		claim := builder.NewClaimBuilder(slots[0].ID).BuildDTO()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/p/"+invite.Token+"/claim", claim, "")
		require.Equal(t, http.StatusOK, w.Code)
	})

	s.Run("認証なしでは予約リクエストを作成できない", func() {
		t := s.T()

		reqBody := builder.NewBookingBuilder().BuildCreateDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

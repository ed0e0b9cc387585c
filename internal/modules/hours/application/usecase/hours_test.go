package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"negociosHorarios/internal/modules/hours/application/port"
	"negociosHorarios/internal/modules/hours/domain"
	realtime "negociosHorarios/internal/modules/realtime/domain"
	"negociosHorarios/internal/shared/auth"
)

func owner(id string) *auth.Claims {
	c := &auth.Claims{Roles: []string{"owner"}}
	c.Subject = id
	return c
}

func admin(id string) *auth.Claims {
	c := &auth.Claims{Roles: []string{auth.RoleAdmin}}
	c.Subject = id
	return c
}

func mondayOnly(opensAt, closesAt domain.LocalTime) domain.WeeklySchedule {
	s := domain.WeeklySchedule{}
	for _, day := range domain.DayOrder() {
		s[day] = domain.DaySchedule{}
	}
	s[domain.Monday] = domain.DaySchedule{IsOpen: true, OpensAt: opensAt, ClosesAt: closesAt}
	return s
}

type fixture struct {
	uc          *HoursUseCase
	store       *memoryStore
	publisher   *recordingPublisher
	broadcaster *recordingBroadcaster
	clock       *fixedClock
}

func newFixture(records ...port.ListingHours) *fixture {
	f := &fixture{
		store:       newMemoryStore(records...),
		publisher:   &recordingPublisher{},
		broadcaster: &recordingBroadcaster{},
		clock:       &fixedClock{at: mondayAt(10, 0)},
	}
	f.uc = NewHoursUseCase(f.store, f.publisher, f.broadcaster, domain.Spanish)
	f.uc.now = f.clock.now
	f.uc.newID = func() string { return "evt-1" }
	return f
}

func TestHoursUseCase_Status(t *testing.T) {
	t.Parallel()

	f := newFixture(
		port.ListingHours{ListingID: "structured", Schedule: mondayOnly("09:00", "18:00")},
		port.ListingHours{ListingID: "legacy", Legacy: "Lun-Vie 10:15-18:00"},
		port.ListingHours{ListingID: "broken", Legacy: "llamar antes de venir"},
	)

	cases := []struct {
		listing string
		locale  domain.Locale
		label   string
		open    bool
	}{
		{listing: "structured", locale: domain.Spanish, label: "Abierto (hasta 18:00)", open: true},
		{listing: "structured", locale: domain.English, label: "Open (until 18:00)", open: true},
		{listing: "legacy", locale: domain.Spanish, label: "Cerrado – Abre en 15 minutos"},
		{listing: "broken", locale: domain.Spanish, label: "Horario no disponible"},
	}
	for _, tc := range cases {
		status, err := f.uc.Status(context.Background(), tc.listing, tc.locale)
		require.NoError(t, err, tc.listing)
		assert.Equal(t, tc.label, status.Label, tc.listing)
		assert.Equal(t, tc.open, status.IsOpen, tc.listing)
	}

	_, err := f.uc.Status(context.Background(), "missing", domain.Spanish)
	assert.ErrorIs(t, err, port.ErrListingNotFound)

	_, err = f.uc.Status(context.Background(), "  ", domain.Spanish)
	assert.ErrorIs(t, err, ErrMissingListing)
}

func TestHoursUseCase_WeekRendersLegacyRecords(t *testing.T) {
	t.Parallel()

	f := newFixture(port.ListingHours{ListingID: "l1", Legacy: "Lun-Vie 09:00-18:00; Sáb 09:00-14:00"})

	view, err := f.uc.Week(context.Background(), "l1", domain.Spanish)
	require.NoError(t, err)
	assert.Equal(t, "Lun–Vie 09:00–18:00; Sáb 09:00–14:00", view.Compact)
	assert.Equal(t, "Lun-Vie 09:00-18:00; Sáb 09:00-14:00", view.Legacy)
	assert.Equal(t, view.Compact, view.Summary)
	assert.True(t, view.Schedule[domain.Saturday].IsOpen)
	assert.False(t, view.Schedule[domain.Sunday].IsOpen)

	f = newFixture(port.ListingHours{ListingID: "l2", Legacy: "consultar por teléfono"})
	view, err = f.uc.Week(context.Background(), "l2", domain.English)
	require.NoError(t, err)
	assert.Nil(t, view.Schedule)
	assert.Empty(t, view.Compact)
	assert.Equal(t, "Hours unavailable", view.Summary)
	assert.Equal(t, "consultar por teléfono", view.Legacy)
}

func TestHoursUseCase_UpdateByOwner(t *testing.T) {
	t.Parallel()

	f := newFixture(port.ListingHours{ListingID: "l1", OwnerID: "u-1", Legacy: "Lun 08:00-12:00"})

	view, err := f.uc.Update(context.Background(), owner("u-1"), "l1", mondayOnly("9:00", "18:00"))
	require.NoError(t, err)

	assert.Equal(t, "Lun 09:00–18:00", view.Compact)
	assert.Equal(t, "Lun 09:00-18:00", view.Legacy)

	stored := f.store.records["l1"]
	assert.Equal(t, "u-1", stored.OwnerID)
	assert.Equal(t, domain.LocalTime("09:00"), stored.Schedule[domain.Monday].OpensAt)
	assert.Equal(t, "Lun 09:00-18:00", stored.Legacy)
	assert.Equal(t, mondayAt(10, 0), stored.UpdatedAt)

	require.Len(t, f.publisher.events, 1)
	event := f.publisher.events[0]
	assert.Equal(t, "evt-1", event.ID)
	assert.Equal(t, "l1", event.ListingID)
	assert.Equal(t, "u-1", event.ActorID)

	require.Len(t, f.broadcaster.messages, 2)
	msg := f.broadcaster.messages[0]
	assert.Equal(t, "hours.l1.status.es", msg.Topic)
	assert.Equal(t, realtime.ActionStatus, msg.Action)
	status, ok := msg.Data.(domain.StatusResult)
	require.True(t, ok)
	assert.True(t, status.IsOpen)
	assert.Equal(t, "Abierto (hasta 18:00)", status.Label)

	english := f.broadcaster.messages[1]
	assert.Equal(t, "hours.l1.status.en", english.Topic)
	assert.Equal(t, "Open (until 18:00)", english.Data.(domain.StatusResult).Label)
}

func TestHoursUseCase_UpdateAuthorization(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		claims  *auth.Claims
		records []port.ListingHours
		wantErr error
	}{
		{name: "stranger", claims: owner("u-2"), records: []port.ListingHours{{ListingID: "l1", OwnerID: "u-1"}}, wantErr: ErrForbidden},
		{name: "anonymous", claims: nil, records: []port.ListingHours{{ListingID: "l1", OwnerID: "u-1"}}, wantErr: ErrForbidden},
		{name: "admin", claims: admin("root"), records: []port.ListingHours{{ListingID: "l1", OwnerID: "u-1"}}},
		{name: "first editor claims listing", claims: owner("u-9")},
		{name: "ownerless legacy record", claims: owner("u-3"), records: []port.ListingHours{{ListingID: "l1", Legacy: "Lun 09:00-18:00"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(tc.records...)
			_, err := f.uc.Update(context.Background(), tc.claims, "l1", mondayOnly("09:00", "18:00"))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Zero(t, f.store.saves)
				assert.Empty(t, f.publisher.events)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, f.store.saves)
		})
	}

	f := newFixture()
	_, err := f.uc.Update(context.Background(), owner("u-9"), "l1", mondayOnly("09:00", "18:00"))
	require.NoError(t, err)
	assert.Equal(t, "u-9", f.store.records["l1"].OwnerID)
}

func TestHoursUseCase_FirstEditorClaimsOwnerlessRecord(t *testing.T) {
	t.Parallel()

	f := newFixture()
	require.NoError(t, f.uc.Ingest(context.Background(), port.ListingHours{ListingID: "biz-1", Legacy: "Lun 09:00-18:00"}))
	assert.Empty(t, f.store.records["biz-1"].OwnerID)

	_, err := f.uc.Update(context.Background(), owner("user-a"), "biz-1", mondayOnly("09:00", "18:00"))
	require.NoError(t, err)
	assert.Equal(t, "user-a", f.store.records["biz-1"].OwnerID)

	_, err = f.uc.Update(context.Background(), owner("user-b"), "biz-1", mondayOnly("10:00", "11:00"))
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, domain.LocalTime("09:00"), f.store.records["biz-1"].Schedule[domain.Monday].OpensAt)

	_, err = f.uc.Update(context.Background(), admin("root"), "biz-1", mondayOnly("10:00", "11:00"))
	require.NoError(t, err)
	assert.Equal(t, "user-a", f.store.records["biz-1"].OwnerID)
}

func TestHoursUseCase_AdminDoesNotClaimOwnerlessRecord(t *testing.T) {
	t.Parallel()

	f := newFixture(port.ListingHours{ListingID: "l1", Legacy: "Lun 09:00-18:00"})
	_, err := f.uc.Update(context.Background(), admin("root"), "l1", mondayOnly("09:00", "18:00"))
	require.NoError(t, err)
	assert.Empty(t, f.store.records["l1"].OwnerID)
}

func TestHoursUseCase_UpdateRejectsInvalidSchedule(t *testing.T) {
	t.Parallel()

	f := newFixture()
	_, err := f.uc.Update(context.Background(), owner("u-1"), "l1", mondayOnly("18:00", "09:00"))
	assert.ErrorIs(t, err, domain.ErrInvalidSchedule)
	assert.ErrorIs(t, err, domain.ErrWindowOrder)
	assert.Zero(t, f.store.saves)
}

func TestHoursUseCase_UpdateSurvivesPublishFailure(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.publisher.err = errors.New("kafka down")
	_, err := f.uc.Update(context.Background(), owner("u-1"), "l1", mondayOnly("09:00", "18:00"))
	require.NoError(t, err)
	assert.Equal(t, 1, f.store.saves)
}

func TestHoursUseCase_Seed(t *testing.T) {
	t.Parallel()

	f := newFixture(
		port.ListingHours{ListingID: "structured", Schedule: mondayOnly("07:00", "15:00")},
		port.ListingHours{ListingID: "legacy", Legacy: "Lun, Mié 10:00-19:00"},
		port.ListingHours{ListingID: "freeform", Legacy: "Atendemos de 08:00 a 20:00"},
		port.ListingHours{ListingID: "empty", Legacy: "consultar"},
	)

	seed, err := f.uc.Seed(context.Background(), "structured")
	require.NoError(t, err)
	assert.Equal(t, domain.LocalTime("07:00"), seed[domain.Monday].OpensAt)

	seed, err = f.uc.Seed(context.Background(), "legacy")
	require.NoError(t, err)
	assert.True(t, seed[domain.Wednesday].IsOpen)
	assert.False(t, seed[domain.Tuesday].IsOpen)

	seed, err = f.uc.Seed(context.Background(), "freeform")
	require.NoError(t, err)
	for _, day := range domain.DayOrder()[:6] {
		assert.Equal(t, domain.DaySchedule{IsOpen: true, OpensAt: "08:00", ClosesAt: "20:00"}, seed[day], day)
	}
	assert.False(t, seed[domain.Sunday].IsOpen)

	seed, err = f.uc.Seed(context.Background(), "empty")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSchedule(), seed)

	seed, err = f.uc.Seed(context.Background(), "missing")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSchedule(), seed)
}

func TestHoursUseCase_ApplyPreset(t *testing.T) {
	t.Parallel()

	f := newFixture(port.ListingHours{ListingID: "l1", OwnerID: "u-1", Schedule: mondayOnly("08:00", "16:00")})

	view, err := f.uc.ApplyPreset(context.Background(), owner("u-1"), "l1", "copy-monday-all")
	require.NoError(t, err)
	assert.Equal(t, "Lun–Dom 08:00–16:00", view.Compact)

	_, err = f.uc.ApplyPreset(context.Background(), owner("u-1"), "l1", "everything")
	assert.ErrorIs(t, err, domain.ErrUnknownPreset)
}

func TestHoursUseCase_Ingest(t *testing.T) {
	t.Parallel()

	f := newFixture(port.ListingHours{ListingID: "l1", OwnerID: "u-1"})

	err := f.uc.Ingest(context.Background(), port.ListingHours{ListingID: " l1 ", Schedule: mondayOnly("09:00", "18:00")})
	require.NoError(t, err)

	stored := f.store.records["l1"]
	assert.Equal(t, "u-1", stored.OwnerID)
	assert.Equal(t, "Lun 09:00-18:00", stored.Legacy)
	assert.Equal(t, len(domain.Locales()), f.broadcaster.count())
	assert.Empty(t, f.publisher.events)

	assert.ErrorIs(t, f.uc.Ingest(context.Background(), port.ListingHours{}), ErrMissingListing)
}

func TestHoursUseCase_Remove(t *testing.T) {
	t.Parallel()

	f := newFixture(port.ListingHours{ListingID: "l1", Schedule: mondayOnly("09:00", "18:00")})

	require.NoError(t, f.uc.Remove(context.Background(), "l1"))
	assert.NotContains(t, f.store.records, "l1")
	require.Equal(t, 2, f.broadcaster.count())
	status := f.broadcaster.messages[0].Data.(domain.StatusResult)
	assert.Equal(t, "Horario no disponible", status.Label)
	status = f.broadcaster.messages[1].Data.(domain.StatusResult)
	assert.Equal(t, "Hours unavailable", status.Label)

	require.NoError(t, f.uc.Remove(context.Background(), "l1"))
}

func TestHoursUseCase_StatusMessageForUnknownListing(t *testing.T) {
	t.Parallel()

	f := newFixture()
	msg, status, err := f.uc.StatusMessage(context.Background(), "ghost", domain.English)
	require.NoError(t, err)
	assert.Equal(t, "Hours unavailable", status.Label)
	assert.Equal(t, "hours.ghost.status.en", msg.Topic)
	assert.Equal(t, "en", msg.Metadata["lang"])

	f.store.err = errors.New("redis down")
	_, _, err = f.uc.StatusMessage(context.Background(), "ghost", domain.English)
	assert.Error(t, err)
}

package usecases_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"booking-engine/internal/module/booking/engine"
	"booking-engine/internal/module/booking/mocks"
	"booking-engine/internal/module/booking/models/entity"
	"booking-engine/internal/module/booking/models/request"
	"booking-engine/internal/module/booking/models/response"
	"booking-engine/internal/module/booking/usecases"
	"booking-engine/internal/pkg/errors"
	"booking-engine/internal/pkg/log"
	log_internal "booking-engine/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
	logMock  log.Logger
	p        *mockPublisher

	now      = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	friday   = time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	tomorrow = "2026-10-16"

	client1 = engine.Actor{ID: "c1", Role: engine.RoleClient}
	admin   = engine.Actor{ID: "a1", Role: engine.RoleAdmin}
	photog  = engine.Actor{ID: "p1", Role: engine.RolePhotographer}

	site = request.Location{Address: "Rua XV de Novembro, 100", City: "Curitiba", Lat: -25.43, Lng: -49.27}

	settings = usecases.Settings{
		NegativeBalanceLimit:     decimal.NewFromInt(500),
		PhotographerShareRatio:   decimal.RequireFromString("0.6"),
		HomeCity:                 "Curitiba",
		Location:                 time.UTC,
		WeatherInsuranceDiscount: decimal.NewFromInt(50),
		ChargeDueHours:           24,
	}
)

type mockPublisher struct {
	topics []string
}

// Close implements message.Publisher.
func (m *mockPublisher) Close() error {
	return nil
}

// Publish implements message.Publisher.
func (m *mockPublisher) Publish(topic string, messages ...*message.Message) error {
	m.topics = append(m.topics, topic)
	return nil
}

func setup(t *testing.T) {
	repoMock = mocks.NewRepositories(t)
	p = &mockPublisher{}
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logMock = log_internal.GetLogger()
	uc = usecases.New(repoMock, logMock, p, settings, usecases.WithClock(func() time.Time { return now }))
}

func teardown() {
	repoMock = nil
	uc = nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decEq(s string) interface{} {
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(dec(s)) })
}

func valid(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func catalogServices() []entity.Service {
	return []entity.Service{
		{ID: "foto", Name: "Foto", Kind: entity.ServiceRegular, DurationMinutes: 60, Price: dec("80"), IsVisible: true, IsActive: true},
		{ID: "video", Name: "Vídeo", Kind: entity.ServiceRegular, DurationMinutes: 45, Price: dec("40"), IsVisible: true, IsActive: true},
		{ID: "keys", Name: "Retirada de chaves", Kind: entity.ServiceKeyPickup, DurationMinutes: 15, Price: dec("10"), IsVisible: true, IsActive: true},
		{ID: "travel", Name: "Deslocamento", Kind: entity.ServiceTravelSurcharge, Price: dec("30"), IsSystemManaged: true, IsActive: true},
		{ID: "rush", Name: "Urgência", Kind: entity.ServiceRushFee, Price: dec("25"), IsSystemManaged: true, IsActive: true},
		{ID: "insurance", Name: "Seguro chuva", Kind: entity.ServiceWeatherInsurance, Price: dec("20"), IsSystemManaged: true, IsActive: true},
	}
}

func photographer() entity.Photographer {
	return entity.Photographer{
		ID:              "p1",
		Name:            "Ana",
		IsActive:        true,
		BaseLat:         -25.43,
		BaseLng:         -49.27,
		RadiusKm:        10,
		EnabledServices: entity.NewStringSet("foto", "video", "keys"),
		Availability: entity.WeeklyAvailability{
			time.Thursday: {"09:00", "10:00", "14:00"},
			time.Friday:   {"09:00", "10:00", "14:00"},
		},
	}
}

func prePaidClient(balance string) entity.Client {
	return entity.Client{ID: "c1", Name: "Imobiliária Sol", PaymentType: entity.PrePaid, Balance: dec(balance), PaymentCustomerID: "cus_1"}
}

func confirmedBooking() entity.Booking {
	return entity.Booking{
		ID:             "b1",
		ClientID:       "c1",
		PhotographerID: valid("p1"),
		ServiceIDs:     entity.NewStringSet("foto"),
		Date:           sql.NullTime{Time: friday, Valid: true},
		StartTime:      valid("10:00"),
		EndTime:        valid("11:00"),
		Address:        site.Address,
		City:           site.City,
		Lat:            site.Lat,
		Lng:            site.Lng,
		Status:         entity.StatusConfirmed,
		TotalPrice:     dec("80"),
		DiscountAmount: decimal.Zero,
		TipAmount:      decimal.Zero,
		WalletDebited:  dec("80"),
		KeyState:       entity.KeyNone,
		CreatedAt:      now.Add(-48 * time.Hour),
	}
}

func expectTransaction() {
	repoMock.On("WithTransaction", mock.Anything, mock.Anything).Return(func(ctx context.Context, fn func(ctx context.Context) error) error {
		return fn(ctx)
	})
}

func expectLocks() {
	release := func() {}
	repoMock.On("Lock", mock.Anything, mock.Anything).Return(release, nil).Maybe()
	repoMock.On("Lock", mock.Anything, mock.Anything, mock.Anything).Return(release, nil).Maybe()
}

func expectAgenda(bookings ...entity.Booking) {
	repoMock.On("FindBookingsByPhotographerRange", mock.Anything, "p1", mock.Anything, mock.Anything).Return(bookings, nil)
	repoMock.On("FindTimeOffsByPhotographerRange", mock.Anything, "p1", mock.Anything, mock.Anything).Return([]entity.TimeOff{}, nil)
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	req := func() *request.CreateBooking {
		return &request.CreateBooking{
			PhotographerID: "p1",
			ServiceIDs:     []string{"foto"},
			Location:       site,
			Date:           tomorrow,
			StartTime:      "10:00",
		}
	}

	t.Run("pre-paid client with enough balance is confirmed and debited", func(t *testing.T) {
		setup(t)
		defer teardown()

		var saved entity.Booking
		repoMock.On("FindServices", mock.Anything).Return(catalogServices(), nil)
		repoMock.On("FindClientByID", mock.Anything, "c1").Return(prePaidClient("200"), nil)
		repoMock.On("FindPhotographerByID", mock.Anything, "p1").Return(photographer(), nil)
		repoMock.On("Lock", mock.Anything, "slot:p1:2026-10-16", "wallet:c1").Return(func() {}, nil)
		expectTransaction()
		expectAgenda()
		repoMock.On("FindClientForUpdate", mock.Anything, "c1").Return(prePaidClient("200"), nil)
		repoMock.On("UpdateClientBalance", mock.Anything, "c1", decEq("120")).Return(nil)
		repoMock.On("InsertWalletTransaction", mock.Anything, mock.MatchedBy(func(tx entity.WalletTransaction) bool {
			return tx.Kind == entity.WalletDebit && tx.Amount.Equal(dec("80")) && tx.BalanceAfter.Equal(dec("120"))
		})).Return(nil)
		repoMock.On("InsertBooking", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			saved = args.Get(1).(entity.Booking)
		}).Return(nil)
		repoMock.On("InvalidateSlots", mock.Anything, "p1").Return(nil)

		res, err := uc.CreateBooking(ctx, client1, req())

		require.NoError(t, err)
		assert.Equal(t, entity.StatusConfirmed, res.Status)
		assert.Equal(t, "11:00", res.EndTime)
		assert.True(t, res.TotalPrice.Equal(dec("80")))
		assert.True(t, saved.WalletDebited.Equal(dec("80")))
		assert.Len(t, saved.History, 1)
		assert.Equal(t, "client:c1", saved.History[0].Actor)
		assert.Equal(t, []string{usecases.TopicBookingTransitions}, p.topics)
	})

	t.Run("site outside the home city gets the travel surcharge", func(t *testing.T) {
		setup(t)
		defer teardown()

		outside := req()
		outside.Location.City = "São José dos Pinhais"
		repoMock.On("FindServices", mock.Anything).Return(catalogServices(), nil)
		repoMock.On("FindClientByID", mock.Anything, "c1").Return(entity.Client{ID: "c1", PaymentType: entity.PostPaid}, nil)
		repoMock.On("FindPhotographerByID", mock.Anything, "p1").Return(photographer(), nil)
		expectLocks()
		expectTransaction()
		expectAgenda()
		repoMock.On("FindClientForUpdate", mock.Anything, "c1").Return(entity.Client{ID: "c1", PaymentType: entity.PostPaid}, nil)
		repoMock.On("InsertBooking", mock.Anything, mock.Anything).Return(nil)
		repoMock.On("InvalidateSlots", mock.Anything, "p1").Return(nil)

		res, err := uc.CreateBooking(ctx, client1, outside)

		require.NoError(t, err)
		assert.Equal(t, []string{"foto", "travel"}, res.ServiceIDs)
		assert.True(t, res.TotalPrice.Equal(dec("110")))
		assert.Equal(t, entity.StatusConfirmed, res.Status)
	})

	t.Run("pay now opens a charge for the deficit and waits", func(t *testing.T) {
		setup(t)
		defer teardown()

		payNow := req()
		payNow.PaymentChoice = string(entity.PaymentPayNow)
		var saved entity.Booking
		repoMock.On("FindServices", mock.Anything).Return(catalogServices(), nil)
		repoMock.On("FindClientByID", mock.Anything, "c1").Return(prePaidClient("30"), nil)
		repoMock.On("FindPhotographerByID", mock.Anything, "p1").Return(photographer(), nil)
		expectLocks()
		expectTransaction()
		expectAgenda()
		repoMock.On("FindClientForUpdate", mock.Anything, "c1").Return(prePaidClient("30"), nil)
		repoMock.On("CreateCharge", mock.Anything, mock.MatchedBy(func(c request.Charge) bool {
			return c.Amount.Equal(dec("50")) && c.CustomerID == "cus_1" && c.DueDate == "2026-10-16"
		})).Return(response.Charge{ChargeID: "pay_1", Status: "PENDING", QRPayload: "000201"}, nil)
		repoMock.On("InsertBooking", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			saved = args.Get(1).(entity.Booking)
		}).Return(nil)
		repoMock.On("InvalidateSlots", mock.Anything, "p1").Return(nil)

		res, err := uc.CreateBooking(ctx, client1, payNow)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusPending, res.Status)
		require.NotNil(t, res.Charge)
		assert.Equal(t, "000201", res.Charge.QRPayload)
		assert.Equal(t, valid("pay_1"), saved.ChargeID)
		assert.True(t, saved.WalletDebited.IsZero())
		repoMock.AssertNotCalled(t, "UpdateClientBalance", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("pay later below the negative limit is rejected", func(t *testing.T) {
		setup(t)
		defer teardown()

		payLater := req()
		payLater.PaymentChoice = string(entity.PaymentPayLater)
		repoMock.On("FindServices", mock.Anything).Return(catalogServices(), nil)
		repoMock.On("FindClientByID", mock.Anything, "c1").Return(prePaidClient("-450"), nil)
		repoMock.On("FindPhotographerByID", mock.Anything, "p1").Return(photographer(), nil)
		expectLocks()
		expectTransaction()
		expectAgenda()
		repoMock.On("FindClientForUpdate", mock.Anything, "c1").Return(prePaidClient("-450"), nil)

		_, err := uc.CreateBooking(ctx, client1, payLater)

		require.Error(t, err)
		assert.True(t, errors.IsConflict(err))
		repoMock.AssertNotCalled(t, "InsertBooking", mock.Anything, mock.Anything)
		assert.Empty(t, p.topics)
	})

	t.Run("slot taken by a concurrent booking", func(t *testing.T) {
		setup(t)
		defer teardown()

		other := confirmedBooking()
		other.ID = "b9"
		other.StartTime, other.EndTime = valid("09:30"), valid("10:30")
		repoMock.On("FindServices", mock.Anything).Return(catalogServices(), nil)
		repoMock.On("FindClientByID", mock.Anything, "c1").Return(prePaidClient("200"), nil)
		repoMock.On("FindPhotographerByID", mock.Anything, "p1").Return(photographer(), nil)
		expectLocks()
		expectTransaction()
		expectAgenda(other)

		_, err := uc.CreateBooking(ctx, client1, req())

		require.Error(t, err)
		assert.True(t, errors.IsConflict(err))
		repoMock.AssertNotCalled(t, "FindClientForUpdate", mock.Anything, mock.Anything)
		repoMock.AssertNotCalled(t, "InsertBooking", mock.Anything, mock.Anything)
	})

	t.Run("coupon spent by a concurrent booking is not redeemed twice", func(t *testing.T) {
		setup(t)
		defer teardown()

		coupon := entity.Coupon{
			Code:           "ULTIMOS5",
			DiscountType:   entity.DiscountFixed,
			Value:          dec("10"),
			ExpirationDate: now.AddDate(0, 1, 0),
			MaxUses:        5,
			UsedCount:      4,
			IsActive:       true,
		}
		spent := coupon
		spent.UsedCount = 5

		withCoupon := req()
		withCoupon.CouponCode = "ultimos5"
		repoMock.On("FindServices", mock.Anything).Return(catalogServices(), nil)
		repoMock.On("FindCouponByCode", mock.Anything, "ULTIMOS5").Return(coupon, nil)
		repoMock.On("CountCouponUses", mock.Anything, "ULTIMOS5", "c1").Return(0, nil)
		repoMock.On("FindClientByID", mock.Anything, "c1").Return(prePaidClient("200"), nil)
		repoMock.On("FindPhotographerByID", mock.Anything, "p1").Return(photographer(), nil)
		expectLocks()
		expectTransaction()
		expectAgenda()
		repoMock.On("FindClientForUpdate", mock.Anything, "c1").Return(prePaidClient("200"), nil)
		repoMock.On("UpdateClientBalance", mock.Anything, "c1", decEq("130")).Return(nil)
		repoMock.On("InsertWalletTransaction", mock.Anything, mock.Anything).Return(nil)
		repoMock.On("FindCouponForUpdate", mock.Anything, "ULTIMOS5").Return(spent, nil)

		_, err := uc.CreateBooking(ctx, client1, withCoupon)

		require.Error(t, err)
		assert.True(t, errors.IsConflict(err))
		repoMock.AssertNotCalled(t, "RedeemCoupon", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		repoMock.AssertNotCalled(t, "InsertBooking", mock.Anything, mock.Anything)
		assert.Empty(t, p.topics)
	})

	t.Run("client cannot book for another client", func(t *testing.T) {
		setup(t)
		defer teardown()

		forOther := req()
		forOther.ClientID = "c2"

		_, err := uc.CreateBooking(ctx, client1, forOther)

		require.Error(t, err)
		assert.True(t, errors.IsAuthorization(err))
	})

	t.Run("date without start time is malformed", func(t *testing.T) {
		setup(t)
		defer teardown()

		partial := req()
		partial.StartTime = ""

		_, err := uc.CreateBooking(ctx, client1, partial)

		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
	})
}

func TestQuote(t *testing.T) {
	ctx := context.Background()
	coupon := entity.Coupon{
		Code:             "DESCONTO10",
		DiscountType:     entity.DiscountPercentage,
		Value:            dec("10"),
		ExpirationDate:   now.AddDate(0, 1, 0),
		MaxUsesPerClient: 1,
		IsActive:         true,
	}

	t.Run("coupon discount and wallet projection", func(t *testing.T) {
		setup(t)
		defer teardown()

		repoMock.On("FindServices", mock.Anything).Return(catalogServices(), nil)
		repoMock.On("FindCouponByCode", mock.Anything, "DESCONTO10").Return(coupon, nil)
		repoMock.On("CountCouponUses", mock.Anything, "DESCONTO10", "c1").Return(0, nil)
		repoMock.On("FindClientByID", mock.Anything, "c1").Return(prePaidClient("50"), nil)

		res, err := uc.Quote(ctx, client1, &request.Quote{ServiceIDs: []string{"foto"}, City: "Curitiba", CouponCode: " desconto10 "})

		require.NoError(t, err)
		assert.True(t, res.Subtotal.Equal(dec("80")))
		assert.True(t, res.Discount.Equal(dec("8")))
		assert.True(t, res.Total.Equal(dec("72")))
		require.NotNil(t, res.Coupon)
		assert.True(t, res.Coupon.Valid)
		require.NotNil(t, res.Wallet)
		assert.True(t, res.Wallet.ProjectedBalance.Equal(dec("-22")))
		assert.False(t, res.Wallet.Covered)
		assert.True(t, res.Wallet.PayLaterAllowed)
	})

	t.Run("coupon already used by the client", func(t *testing.T) {
		setup(t)
		defer teardown()

		repoMock.On("FindServices", mock.Anything).Return(catalogServices(), nil)
		repoMock.On("FindCouponByCode", mock.Anything, "DESCONTO10").Return(coupon, nil)
		repoMock.On("CountCouponUses", mock.Anything, "DESCONTO10", "c1").Return(1, nil)
		repoMock.On("FindClientByID", mock.Anything, "c1").Return(prePaidClient("50"), nil)

		res, err := uc.Quote(ctx, client1, &request.Quote{ServiceIDs: []string{"foto"}, CouponCode: "DESCONTO10"})

		require.NoError(t, err)
		require.NotNil(t, res.Coupon)
		assert.False(t, res.Coupon.Valid)
		assert.True(t, res.Total.Equal(dec("80")))
	})

	t.Run("clients cannot select system-managed services", func(t *testing.T) {
		setup(t)
		defer teardown()

		repoMock.On("FindServices", mock.Anything).Return(catalogServices(), nil)

		_, err := uc.Quote(ctx, client1, &request.Quote{ServiceIDs: []string{"foto", "rush"}})

		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
	})
}

func TestEditServices(t *testing.T) {
	ctx := context.Background()

	t.Run("confirmed pre-paid booking is debited by the price delta only", func(t *testing.T) {
		setup(t)
		defer teardown()

		var saved entity.Booking
		repoMock.On("FindBookingByID", mock.Anything, "b1").Return(confirmedBooking(), nil)
		repoMock.On("FindServices", mock.Anything).Return(catalogServices(), nil)
		repoMock.On("Lock", mock.Anything, "wallet:c1", "slot:p1:2026-10-16").Return(func() {}, nil)
		expectTransaction()
		repoMock.On("FindBookingForUpdate", mock.Anything, "b1").Return(confirmedBooking(), nil)
		expectAgenda(confirmedBooking())
		repoMock.On("FindClientForUpdate", mock.Anything, "c1").Return(prePaidClient("50"), nil)
		repoMock.On("UpdateClientBalance", mock.Anything, "c1", decEq("10")).Return(nil)
		repoMock.On("InsertWalletTransaction", mock.Anything, mock.MatchedBy(func(tx entity.WalletTransaction) bool {
			return tx.Kind == entity.WalletDebit && tx.Amount.Equal(dec("40"))
		})).Return(nil)
		repoMock.On("UpdateBooking", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			saved = args.Get(1).(entity.Booking)
		}).Return(nil)
		repoMock.On("InvalidateSlots", mock.Anything, "p1").Return(nil)

		res, err := uc.EditServices(ctx, client1, "b1", &request.EditServices{ServiceIDs: []string{"foto", "video"}})

		require.NoError(t, err)
		assert.True(t, res.TotalPrice.Equal(dec("120")))
		assert.Equal(t, "11:45", res.EndTime)
		assert.True(t, saved.WalletDebited.Equal(dec("120")))
	})

	t.Run("longer session collides with the next booking", func(t *testing.T) {
		setup(t)
		defer teardown()

		next := confirmedBooking()
		next.ID = "b2"
		next.StartTime, next.EndTime = valid("11:30"), valid("12:30")
		repoMock.On("FindBookingByID", mock.Anything, "b1").Return(confirmedBooking(), nil)
		repoMock.On("FindServices", mock.Anything).Return(catalogServices(), nil)
		expectLocks()
		expectTransaction()
		repoMock.On("FindBookingForUpdate", mock.Anything, "b1").Return(confirmedBooking(), nil)
		expectAgenda(confirmedBooking(), next)

		_, err := uc.EditServices(ctx, client1, "b1", &request.EditServices{ServiceIDs: []string{"foto", "video"}})

		require.Error(t, err)
		assert.True(t, errors.IsConflict(err))
		repoMock.AssertNotCalled(t, "UpdateBooking", mock.Anything, mock.Anything)
	})

	t.Run("photographer may not edit services", func(t *testing.T) {
		setup(t)
		defer teardown()

		repoMock.On("FindBookingByID", mock.Anything, "b1").Return(confirmedBooking(), nil)

		_, err := uc.EditServices(ctx, photog, "b1", &request.EditServices{ServiceIDs: []string{"foto"}})

		require.Error(t, err)
		assert.True(t, errors.IsAuthorization(err))
	})
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()
	weather := func(retention string) *request.Cancel {
		return &request.Cancel{ReasonCode: "weather", ReasonDetail: "storm forecast", Retention: retention}
	}

	t.Run("weather cancellation is answered with a retention offer", func(t *testing.T) {
		setup(t)
		defer teardown()

		repoMock.On("FindBookingByID", mock.Anything, "b1").Return(confirmedBooking(), nil)
		repoMock.On("FindServices", mock.Anything).Return(catalogServices(), nil)

		res, err := uc.CancelBooking(ctx, client1, "b1", weather(""))

		require.NoError(t, err)
		assert.False(t, res.Cancelled)
		require.NotNil(t, res.Offer)
		assert.Equal(t, "insurance", res.Offer.ServiceID)
		assert.True(t, res.Offer.Price.Equal(dec("10")))
		repoMock.AssertNotCalled(t, "UpdateBooking", mock.Anything, mock.Anything)
	})

	t.Run("declining the offer cancels and refunds the wallet", func(t *testing.T) {
		setup(t)
		defer teardown()

		var saved entity.Booking
		repoMock.On("FindBookingByID", mock.Anything, "b1").Return(confirmedBooking(), nil)
		repoMock.On("FindServices", mock.Anything).Return(catalogServices(), nil)
		expectLocks()
		expectTransaction()
		repoMock.On("FindBookingForUpdate", mock.Anything, "b1").Return(confirmedBooking(), nil)
		repoMock.On("FindClientForUpdate", mock.Anything, "c1").Return(prePaidClient("0"), nil)
		repoMock.On("UpdateClientBalance", mock.Anything, "c1", decEq("80")).Return(nil)
		repoMock.On("InsertWalletTransaction", mock.Anything, mock.MatchedBy(func(tx entity.WalletTransaction) bool {
			return tx.Kind == entity.WalletRefund && tx.Amount.Equal(dec("80"))
		})).Return(nil)
		repoMock.On("UpdateBooking", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			saved = args.Get(1).(entity.Booking)
		}).Return(nil)
		repoMock.On("InvalidateSlots", mock.Anything, "p1").Return(nil)

		res, err := uc.CancelBooking(ctx, client1, "b1", weather(request.RetentionDecline))

		require.NoError(t, err)
		assert.True(t, res.Cancelled)
		assert.Equal(t, entity.StatusCancelled, saved.Status)
		assert.Equal(t, "weather", saved.CancelReason.Code)
		assert.True(t, saved.WalletDebited.IsZero())
		repoMock.AssertNotCalled(t, "CancelCharge", mock.Anything, mock.Anything)
	})

	t.Run("accepting the offer keeps the booking with discounted insurance", func(t *testing.T) {
		setup(t)
		defer teardown()

		var saved entity.Booking
		repoMock.On("FindBookingByID", mock.Anything, "b1").Return(confirmedBooking(), nil)
		repoMock.On("FindServices", mock.Anything).Return(catalogServices(), nil)
		expectLocks()
		expectTransaction()
		repoMock.On("FindBookingForUpdate", mock.Anything, "b1").Return(confirmedBooking(), nil)
		expectAgenda(confirmedBooking())
		repoMock.On("FindClientForUpdate", mock.Anything, "c1").Return(prePaidClient("50"), nil)
		repoMock.On("UpdateClientBalance", mock.Anything, "c1", decEq("40")).Return(nil)
		repoMock.On("InsertWalletTransaction", mock.Anything, mock.Anything).Return(nil)
		repoMock.On("UpdateBooking", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			saved = args.Get(1).(entity.Booking)
		}).Return(nil)
		repoMock.On("InvalidateSlots", mock.Anything, "p1").Return(nil)

		res, err := uc.CancelBooking(ctx, client1, "b1", weather(request.RetentionAccept))

		require.NoError(t, err)
		assert.False(t, res.Cancelled)
		require.NotNil(t, res.Booking)
		assert.Equal(t, entity.StatusConfirmed, saved.Status)
		assert.True(t, saved.ServiceIDs.Contains("insurance"))
		assert.True(t, saved.TotalPrice.Equal(dec("90")))
		assert.True(t, saved.WalletDebited.Equal(dec("90")))
	})

	t.Run("pending pay-now booking cancels its provider charge", func(t *testing.T) {
		setup(t)
		defer teardown()

		pending := confirmedBooking()
		pending.Status = entity.StatusPending
		pending.PaymentChoice = entity.PaymentPayNow
		pending.WalletDebited = decimal.Zero
		pending.ChargeID = valid("pay_1")
		repoMock.On("FindBookingByID", mock.Anything, "b1").Return(pending, nil)
		repoMock.On("FindServices", mock.Anything).Return(catalogServices(), nil)
		expectLocks()
		expectTransaction()
		repoMock.On("FindBookingForUpdate", mock.Anything, "b1").Return(pending, nil)
		repoMock.On("UpdateBooking", mock.Anything, mock.Anything).Return(nil)
		repoMock.On("CancelCharge", mock.Anything, "pay_1").Return(nil)
		repoMock.On("InvalidateSlots", mock.Anything, "p1").Return(nil)

		res, err := uc.CancelBooking(ctx, client1, "b1", &request.Cancel{ReasonCode: "client_request"})

		require.NoError(t, err)
		assert.True(t, res.Cancelled)
		repoMock.AssertNotCalled(t, "UpdateClientBalance", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("delivered booking cannot be cancelled", func(t *testing.T) {
		setup(t)
		defer teardown()

		done := confirmedBooking()
		done.Status = entity.StatusDelivered
		repoMock.On("FindBookingByID", mock.Anything, "b1").Return(done, nil)

		_, err := uc.CancelBooking(ctx, admin, "b1", &request.Cancel{ReasonCode: "other"})

		require.Error(t, err)
		assert.True(t, errors.IsConflict(err))
	})
}

func TestConsumeCreditPosted(t *testing.T) {
	ctx := context.Background()
	pendingBooking := func(id string, total string, created time.Time) entity.Booking {
		b := confirmedBooking()
		b.ID = id
		b.Status = entity.StatusPending
		b.PaymentChoice = entity.PaymentPayNow
		b.TotalPrice = dec(total)
		b.WalletDebited = decimal.Zero
		b.CreatedAt = created
		return b
	}

	t.Run("credit confirms pending bookings in creation order while covered", func(t *testing.T) {
		setup(t)
		defer teardown()

		var saved []entity.Booking
		expectLocks()
		expectTransaction()
		repoMock.On("CreditReferenceExists", mock.Anything, "charge:pay_1").Return(false, nil)
		repoMock.On("FindClientForUpdate", mock.Anything, "c1").Return(prePaidClient("50"), nil)
		repoMock.On("UpdateClientBalance", mock.Anything, "c1", decEq("150")).Return(nil)
		repoMock.On("UpdateClientBalance", mock.Anything, "c1", decEq("0")).Return(nil)
		repoMock.On("InsertWalletTransaction", mock.Anything, mock.Anything).Return(nil)
		repoMock.On("FindPendingPayNowBookings", mock.Anything, "c1").Return([]entity.Booking{
			pendingBooking("b1", "150", now.Add(-2*time.Hour)),
			pendingBooking("b2", "80", now.Add(-time.Hour)),
		}, nil)
		repoMock.On("UpdateBooking", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			saved = append(saved, args.Get(1).(entity.Booking))
		}).Return(nil)
		repoMock.On("InvalidateSlots", mock.Anything, "p1").Return(nil)

		err := uc.ConsumeCreditPosted(ctx, &request.CreditPosted{EventID: "evt_1", ClientID: "c1", ChargeID: "pay_1", Amount: dec("100")})

		require.NoError(t, err)
		require.Len(t, saved, 1)
		assert.Equal(t, "b1", saved[0].ID)
		assert.Equal(t, entity.StatusConfirmed, saved[0].Status)
		assert.True(t, saved[0].WalletDebited.Equal(dec("150")))
		assert.Equal(t, []string{usecases.TopicBookingTransitions}, p.topics)
	})

	t.Run("a once-per-client coupon discounts only the first confirmed booking", func(t *testing.T) {
		setup(t)
		defer teardown()

		coupon := entity.Coupon{
			Code:             "DESCONTO10",
			DiscountType:     entity.DiscountPercentage,
			Value:            dec("10"),
			ExpirationDate:   now.AddDate(0, 1, 0),
			MaxUsesPerClient: 1,
			IsActive:         true,
		}
		discounted := func(id string, created time.Time) entity.Booking {
			b := pendingBooking(id, "72", created)
			b.CouponCode = valid("DESCONTO10")
			b.DiscountAmount = dec("8")
			return b
		}

		var saved []entity.Booking
		expectLocks()
		expectTransaction()
		repoMock.On("CreditReferenceExists", mock.Anything, "charge:pay_2").Return(false, nil)
		repoMock.On("FindClientForUpdate", mock.Anything, "c1").Return(prePaidClient("0"), nil)
		repoMock.On("UpdateClientBalance", mock.Anything, "c1", mock.Anything).Return(nil)
		repoMock.On("InsertWalletTransaction", mock.Anything, mock.Anything).Return(nil)
		repoMock.On("FindPendingPayNowBookings", mock.Anything, "c1").Return([]entity.Booking{
			discounted("b1", now.Add(-2*time.Hour)),
			discounted("b2", now.Add(-time.Hour)),
		}, nil)
		repoMock.On("FindCouponForUpdate", mock.Anything, "DESCONTO10").Return(coupon, nil)
		// b1 is checked before and at redemption, b2 after b1's use is recorded
		repoMock.On("CountCouponUses", mock.Anything, "DESCONTO10", "c1").Return(0, nil).Twice()
		repoMock.On("CountCouponUses", mock.Anything, "DESCONTO10", "c1").Return(1, nil).Once()
		repoMock.On("RedeemCoupon", mock.Anything, "DESCONTO10", "c1", "b1").Return(nil).Once()
		repoMock.On("UpdateBooking", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			saved = append(saved, args.Get(1).(entity.Booking))
		}).Return(nil)
		repoMock.On("InvalidateSlots", mock.Anything, "p1").Return(nil)

		err := uc.ConsumeCreditPosted(ctx, &request.CreditPosted{EventID: "evt_4", ClientID: "c1", ChargeID: "pay_2", Amount: dec("200")})

		require.NoError(t, err)
		require.Len(t, saved, 2)
		assert.Equal(t, entity.StatusConfirmed, saved[0].Status)
		assert.True(t, saved[0].CouponRedeemed)
		assert.True(t, saved[0].WalletDebited.Equal(dec("72")))

		assert.Equal(t, entity.StatusConfirmed, saved[1].Status)
		assert.False(t, saved[1].CouponCode.Valid)
		assert.False(t, saved[1].CouponRedeemed)
		assert.True(t, saved[1].DiscountAmount.IsZero())
		assert.True(t, saved[1].TotalPrice.Equal(dec("80")))
		assert.True(t, saved[1].WalletDebited.Equal(dec("80")))
		repoMock.AssertNumberOfCalls(t, "RedeemCoupon", 1)
	})

	t.Run("the same charge is credited once", func(t *testing.T) {
		setup(t)
		defer teardown()

		expectLocks()
		expectTransaction()
		repoMock.On("CreditReferenceExists", mock.Anything, "charge:pay_1").Return(true, nil)

		err := uc.ConsumeCreditPosted(ctx, &request.CreditPosted{EventID: "evt_2", ClientID: "c1", ChargeID: "pay_1", Amount: dec("100")})

		require.NoError(t, err)
		repoMock.AssertNotCalled(t, "FindClientForUpdate", mock.Anything, mock.Anything)
	})

	t.Run("non positive credit is rejected", func(t *testing.T) {
		setup(t)
		defer teardown()

		err := uc.ConsumeCreditPosted(ctx, &request.CreditPosted{EventID: "evt_3", ClientID: "c1", Amount: dec("0")})

		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
	})
}

func TestRecheckPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("unpaid charge is retried later", func(t *testing.T) {
		setup(t)
		defer teardown()

		repoMock.On("GetCharge", mock.Anything, "pay_1").Return(response.Charge{ChargeID: "pay_1", Status: "PENDING"}, nil)

		err := uc.RecheckPayment(ctx, &request.PaymentRecheck{BookingID: "b1", ChargeID: "pay_1", ClientID: "c1"})

		require.Error(t, err)
		assert.True(t, errors.IsConflict(err))
	})

	t.Run("paid charge already credited is a no-op", func(t *testing.T) {
		setup(t)
		defer teardown()

		repoMock.On("GetCharge", mock.Anything, "pay_1").Return(response.Charge{ChargeID: "pay_1", Status: "RECEIVED", Amount: dec("50")}, nil)
		expectLocks()
		expectTransaction()
		repoMock.On("CreditReferenceExists", mock.Anything, "charge:pay_1").Return(true, nil)

		err := uc.RecheckPayment(ctx, &request.PaymentRecheck{BookingID: "b1", ChargeID: "pay_1", ClientID: "c1"})

		require.NoError(t, err)
	})

	t.Run("only staff may request a recheck", func(t *testing.T) {
		setup(t)
		defer teardown()

		_, err := uc.RequestPaymentRecheck(ctx, client1, "b1")

		require.Error(t, err)
		assert.True(t, errors.IsAuthorization(err))
	})

	t.Run("pending booking is enqueued", func(t *testing.T) {
		setup(t)
		defer teardown()

		pending := confirmedBooking()
		pending.Status = entity.StatusPending
		pending.ChargeID = valid("pay_1")
		repoMock.On("FindBookingByID", mock.Anything, "b1").Return(pending, nil)
		repoMock.On("EnqueuePaymentRecheck", mock.Anything, request.PaymentRecheck{BookingID: "b1", ChargeID: "pay_1", ClientID: "c1"}).Return("task_1", nil)

		res, err := uc.RequestPaymentRecheck(ctx, admin, "b1")

		require.NoError(t, err)
		assert.Equal(t, "task_1", res.TaskID)
	})
}

func TestAddTip(t *testing.T) {
	ctx := context.Background()

	t.Run("pre-paid tip is debited and added to the booking", func(t *testing.T) {
		setup(t)
		defer teardown()

		var saved entity.Booking
		repoMock.On("FindBookingByID", mock.Anything, "b1").Return(confirmedBooking(), nil)
		expectLocks()
		expectTransaction()
		repoMock.On("FindBookingForUpdate", mock.Anything, "b1").Return(confirmedBooking(), nil)
		repoMock.On("FindClientForUpdate", mock.Anything, "c1").Return(prePaidClient("20"), nil)
		repoMock.On("UpdateClientBalance", mock.Anything, "c1", decEq("5")).Return(nil)
		repoMock.On("InsertWalletTransaction", mock.Anything, mock.MatchedBy(func(tx entity.WalletTransaction) bool {
			return tx.Kind == entity.WalletTip
		})).Return(nil)
		repoMock.On("UpdateBooking", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			saved = args.Get(1).(entity.Booking)
		}).Return(nil)

		_, err := uc.AddTip(ctx, client1, "b1", &request.Tip{Amount: dec("15")})

		require.NoError(t, err)
		assert.True(t, saved.TipAmount.Equal(dec("15")))
	})

	t.Run("tip must be positive", func(t *testing.T) {
		setup(t)
		defer teardown()

		_, err := uc.AddTip(ctx, client1, "b1", &request.Tip{Amount: dec("-1")})

		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
	})
}

func TestPayout(t *testing.T) {
	ctx := context.Background()
	b := confirmedBooking()
	b.Status = entity.StatusDelivered
	b.ServiceIDs = entity.NewStringSet("foto", "video")
	b.CouponCode = valid("DESCONTO10")
	b.DiscountAmount = dec("12")
	b.TipAmount = dec("10")
	ph := photographer()
	ph.CustomPrices = entity.PriceTable{"foto": dec("50")}

	t.Run("photographer prices less the shared discount plus tips", func(t *testing.T) {
		setup(t)
		defer teardown()

		repoMock.On("FindBookingByID", mock.Anything, "b1").Return(b, nil)
		repoMock.On("FindPhotographerByID", mock.Anything, "p1").Return(ph, nil)
		repoMock.On("FindServices", mock.Anything).Return(catalogServices(), nil)

		res, err := uc.Payout(ctx, photog, "b1")

		require.NoError(t, err)
		assert.True(t, res.Amount.Equal(dec("92.8")), res.Amount.String())
	})

	t.Run("clients cannot see payouts", func(t *testing.T) {
		setup(t)
		defer teardown()

		repoMock.On("FindBookingByID", mock.Anything, "b1").Return(b, nil)

		_, err := uc.Payout(ctx, client1, "b1")

		require.Error(t, err)
		assert.True(t, errors.IsAuthorization(err))
	})
}

func TestAvailableSlots(t *testing.T) {
	ctx := context.Background()

	t.Run("cached listing is served as is", func(t *testing.T) {
		setup(t)
		defer teardown()

		repoMock.On("GetCachedSlots", mock.Anything, "p1", mock.Anything, 60).Return([]string{"14:00"}, true)

		res, err := uc.AvailableSlots(ctx, "p1", tomorrow, 60)

		require.NoError(t, err)
		assert.Equal(t, []string{"14:00"}, res.Slots)
		repoMock.AssertNotCalled(t, "FindPhotographerByID", mock.Anything, mock.Anything)
	})

	t.Run("miss computes free slots and caches them", func(t *testing.T) {
		setup(t)
		defer teardown()

		repoMock.On("GetCachedSlots", mock.Anything, "p1", mock.Anything, 60).Return(nil, false)
		repoMock.On("FindPhotographerByID", mock.Anything, "p1").Return(photographer(), nil)
		expectAgenda(confirmedBooking())
		repoMock.On("SetCachedSlots", mock.Anything, "p1", mock.Anything, 60, []string{"09:00", "14:00"}).Return(nil)

		res, err := uc.AvailableSlots(ctx, "p1", tomorrow, 60)

		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "14:00"}, res.Slots)
	})

	t.Run("duration must be positive", func(t *testing.T) {
		setup(t)
		defer teardown()

		_, err := uc.AvailableSlots(ctx, "p1", tomorrow, 0)

		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
	})
}

func TestFlashSearch(t *testing.T) {
	setup(t)
	defer teardown()
	ctx := context.Background()

	repoMock.On("FindServices", mock.Anything).Return(catalogServices(), nil)
	repoMock.On("FindClientByID", mock.Anything, "c1").Return(prePaidClient("0"), nil)
	repoMock.On("FindActivePhotographers", mock.Anything).Return([]entity.Photographer{photographer()}, nil)
	repoMock.On("FindBookingsByDate", mock.Anything, mock.Anything).Return([]entity.Booking{}, nil)
	repoMock.On("FindTimeOffsByRange", mock.Anything, mock.Anything, mock.Anything).Return([]entity.TimeOff{}, nil)

	res, err := uc.FlashSearch(ctx, client1, &request.Flash{ServiceIDs: []string{"foto"}, Location: site})

	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, "p1", res.PhotographerID)
	assert.Equal(t, "10:00", res.Slot, "09:00 starts right now")
	assert.Equal(t, []string{"foto", "rush"}, res.ServiceIDs)
}

func TestCreateFlashBooking(t *testing.T) {
	ctx := context.Background()
	postPaid := entity.Client{ID: "c1", PaymentType: entity.PostPaid}

	t.Run("client books the slot the flash search found", func(t *testing.T) {
		setup(t)
		defer teardown()

		repoMock.On("FindServices", mock.Anything).Return(catalogServices(), nil)
		repoMock.On("FindClientByID", mock.Anything, "c1").Return(postPaid, nil)
		repoMock.On("FindActivePhotographers", mock.Anything).Return([]entity.Photographer{photographer()}, nil)
		repoMock.On("FindBookingsByDate", mock.Anything, mock.Anything).Return([]entity.Booking{}, nil)
		repoMock.On("FindTimeOffsByRange", mock.Anything, mock.Anything, mock.Anything).Return([]entity.TimeOff{}, nil)
		repoMock.On("FindPhotographerByID", mock.Anything, "p1").Return(photographer(), nil)
		expectLocks()
		expectTransaction()
		expectAgenda()
		repoMock.On("FindClientForUpdate", mock.Anything, "c1").Return(postPaid, nil)
		repoMock.On("InsertBooking", mock.Anything, mock.Anything).Return(nil)
		repoMock.On("InvalidateSlots", mock.Anything, "p1").Return(nil)

		found, err := uc.FlashSearch(ctx, client1, &request.Flash{ServiceIDs: []string{"foto"}, Location: site})
		require.NoError(t, err)
		require.True(t, found.Found)

		res, err := uc.CreateBooking(ctx, client1, &request.CreateBooking{
			PhotographerID: found.PhotographerID,
			ServiceIDs:     found.ServiceIDs,
			Location:       site,
			Date:           found.Date,
			StartTime:      found.Slot,
			Flash:          true,
		})

		require.NoError(t, err)
		assert.Equal(t, entity.StatusConfirmed, res.Status)
		assert.Equal(t, []string{"foto", "rush"}, res.ServiceIDs)
		assert.True(t, res.TotalPrice.Equal(dec("105")))
	})

	t.Run("rush fee is added when the client sends only its services", func(t *testing.T) {
		setup(t)
		defer teardown()

		repoMock.On("FindServices", mock.Anything).Return(catalogServices(), nil)
		repoMock.On("FindClientByID", mock.Anything, "c1").Return(postPaid, nil)
		repoMock.On("FindPhotographerByID", mock.Anything, "p1").Return(photographer(), nil)
		expectLocks()
		expectTransaction()
		expectAgenda()
		repoMock.On("FindClientForUpdate", mock.Anything, "c1").Return(postPaid, nil)
		repoMock.On("InsertBooking", mock.Anything, mock.Anything).Return(nil)
		repoMock.On("InvalidateSlots", mock.Anything, "p1").Return(nil)

		res, err := uc.CreateBooking(ctx, client1, &request.CreateBooking{
			PhotographerID: "p1",
			ServiceIDs:     []string{"foto"},
			Location:       site,
			Date:           "2026-10-15",
			StartTime:      "14:00",
			Flash:          true,
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"foto", "rush"}, res.ServiceIDs)
	})

	t.Run("flash booking for another day is rejected", func(t *testing.T) {
		setup(t)
		defer teardown()

		_, err := uc.CreateBooking(ctx, client1, &request.CreateBooking{
			PhotographerID: "p1",
			ServiceIDs:     []string{"foto", "rush"},
			Location:       site,
			Date:           tomorrow,
			StartTime:      "10:00",
			Flash:          true,
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
	})

	t.Run("rush fee stays system-managed outside flash", func(t *testing.T) {
		setup(t)
		defer teardown()

		repoMock.On("FindServices", mock.Anything).Return(catalogServices(), nil)
		repoMock.On("FindClientByID", mock.Anything, "c1").Return(postPaid, nil)

		_, err := uc.CreateBooking(ctx, client1, &request.CreateBooking{
			PhotographerID: "p1",
			ServiceIDs:     []string{"foto", "rush"},
			Location:       site,
			Date:           "2026-10-15",
			StartTime:      "14:00",
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
	})
}

func TestUpdateKeyState(t *testing.T) {
	ctx := context.Background()
	withKeys := confirmedBooking()
	withKeys.ServiceIDs = entity.NewStringSet("foto", "keys")
	withKeys.KeyState = entity.KeyPickedUp

	t.Run("key state only moves forward", func(t *testing.T) {
		setup(t)
		defer teardown()

		repoMock.On("FindServices", mock.Anything).Return(catalogServices(), nil)
		expectTransaction()
		repoMock.On("FindBookingForUpdate", mock.Anything, "b1").Return(withKeys, nil)

		_, err := uc.UpdateKeyState(ctx, photog, "b1", &request.KeyState{State: string(entity.KeyAwaitingPickup)})

		require.Error(t, err)
		assert.True(t, errors.IsConflict(err))
	})

	t.Run("photographer returns the key", func(t *testing.T) {
		setup(t)
		defer teardown()

		repoMock.On("FindServices", mock.Anything).Return(catalogServices(), nil)
		expectTransaction()
		repoMock.On("FindBookingForUpdate", mock.Anything, "b1").Return(withKeys, nil)
		repoMock.On("UpdateBooking", mock.Anything, mock.Anything).Return(nil)

		res, err := uc.UpdateKeyState(ctx, photog, "b1", &request.KeyState{State: string(entity.KeyReturned)})

		require.NoError(t, err)
		assert.Equal(t, entity.KeyReturned, res.KeyState)
	})
}

func TestCompleteBooking(t *testing.T) {
	setup(t)
	defer teardown()
	ctx := context.Background()

	expectTransaction()
	repoMock.On("FindBookingForUpdate", mock.Anything, "b1").Return(confirmedBooking(), nil)
	repoMock.On("UpdateBooking", mock.Anything, mock.Anything).Return(nil)

	res, err := uc.CompleteBooking(ctx, photog, "b1", &request.Complete{InternalNotes: "portão azul", CommonAreaID: "gallery_7"})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusDone, res.Status)
	assert.Equal(t, "portão azul", res.InternalNotes)
	assert.Equal(t, "gallery_7", res.CommonAreaID)
}

func TestCreateTimeOff(t *testing.T) {
	ctx := context.Background()

	t.Run("overlapping an assigned booking is a conflict", func(t *testing.T) {
		setup(t)
		defer teardown()

		repoMock.On("FindPhotographerByID", mock.Anything, "p1").Return(photographer(), nil)
		expectLocks()
		expectTransaction()
		repoMock.On("FindBookingsByPhotographerRange", mock.Anything, "p1", mock.Anything, mock.Anything).Return([]entity.Booking{confirmedBooking()}, nil)

		_, err := uc.CreateTimeOff(ctx, photog, &request.TimeOff{PhotographerID: "p1", StartAt: "2026-10-16T08:00", EndAt: "2026-10-16T12:00"})

		require.Error(t, err)
		assert.True(t, errors.IsConflict(err))
		repoMock.AssertNotCalled(t, "InsertTimeOff", mock.Anything, mock.Anything)
	})

	t.Run("free interval is stored approved", func(t *testing.T) {
		setup(t)
		defer teardown()

		repoMock.On("FindPhotographerByID", mock.Anything, "p1").Return(photographer(), nil)
		expectLocks()
		expectTransaction()
		repoMock.On("FindBookingsByPhotographerRange", mock.Anything, "p1", mock.Anything, mock.Anything).Return([]entity.Booking{confirmedBooking()}, nil)
		repoMock.On("InsertTimeOff", mock.Anything, mock.MatchedBy(func(t entity.TimeOff) bool { return t.Approved })).Return(nil)
		repoMock.On("InvalidateSlots", mock.Anything, "p1").Return(nil)

		res, err := uc.CreateTimeOff(ctx, photog, &request.TimeOff{PhotographerID: "p1", StartAt: "2026-10-16T12:00", EndAt: "2026-10-16T18:00"})

		require.NoError(t, err)
		assert.True(t, res.Approved)
	})
}

func TestUpdateAvailability(t *testing.T) {
	ctx := context.Background()
	off := false

	t.Run("toggling a day off clears its slots", func(t *testing.T) {
		setup(t)
		defer teardown()

		repoMock.On("FindPhotographerByID", mock.Anything, "p1").Return(photographer(), nil)
		repoMock.On("UpdatePhotographerAvailability", mock.Anything, "p1", mock.Anything).Return(nil)
		repoMock.On("InvalidateSlots", mock.Anything, "p1").Return(nil)

		res, err := uc.UpdateAvailability(ctx, photog, "p1", &request.DayAvailability{Weekday: int(time.Friday), Enabled: &off})

		require.NoError(t, err)
		_, ok := res.Availability[time.Friday]
		assert.False(t, ok)
	})

	t.Run("another photographer may not change it", func(t *testing.T) {
		setup(t)
		defer teardown()

		_, err := uc.UpdateAvailability(ctx, engine.Actor{ID: "p2", Role: engine.RolePhotographer}, "p1", &request.DayAvailability{Weekday: 1, Enabled: &off})

		require.Error(t, err)
		assert.True(t, errors.IsAuthorization(err))
	})
}

func TestReschedule(t *testing.T) {
	ctx := context.Background()

	t.Run("client moves the session later the same day", func(t *testing.T) {
		setup(t)
		defer teardown()

		var saved entity.Booking
		repoMock.On("FindBookingByID", mock.Anything, "b1").Return(confirmedBooking(), nil)
		repoMock.On("FindServices", mock.Anything).Return(catalogServices(), nil)
		repoMock.On("FindPhotographerByID", mock.Anything, "p1").Return(photographer(), nil)
		expectLocks()
		expectTransaction()
		repoMock.On("FindBookingForUpdate", mock.Anything, "b1").Return(confirmedBooking(), nil)
		expectAgenda(confirmedBooking())
		repoMock.On("UpdateBooking", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			saved = args.Get(1).(entity.Booking)
		}).Return(nil)
		repoMock.On("InvalidateSlots", mock.Anything, "p1").Return(nil)

		res, err := uc.Reschedule(ctx, client1, "b1", &request.Reschedule{Date: tomorrow, StartTime: "14:00"})

		require.NoError(t, err)
		assert.Equal(t, "14:00", res.StartTime)
		assert.Equal(t, "15:00", res.EndTime)
		assert.Equal(t, entity.StatusConfirmed, saved.Status)
		assert.Contains(t, saved.History[len(saved.History)-1].Note, "rescheduled to 2026-10-16 14:00")
	})

	t.Run("only staff reassign the photographer", func(t *testing.T) {
		setup(t)
		defer teardown()

		repoMock.On("FindBookingByID", mock.Anything, "b1").Return(confirmedBooking(), nil)

		_, err := uc.Reschedule(ctx, client1, "b1", &request.Reschedule{PhotographerID: "p2", Date: tomorrow, StartTime: "14:00"})

		assert.True(t, errors.IsAuthorization(err))
	})

	remote := func() entity.Photographer {
		p2 := photographer()
		p2.ID = "p2"
		p2.BaseLat, p2.BaseLng = -23.55, -46.63
		return p2
	}

	t.Run("reassignment keeps the new photographer's radius", func(t *testing.T) {
		setup(t)
		defer teardown()

		repoMock.On("FindBookingByID", mock.Anything, "b1").Return(confirmedBooking(), nil)
		repoMock.On("FindServices", mock.Anything).Return(catalogServices(), nil)
		repoMock.On("FindPhotographerByID", mock.Anything, "p2").Return(remote(), nil)
		repoMock.On("FindClientByID", mock.Anything, "c1").Return(prePaidClient("0"), nil)

		_, err := uc.Reschedule(ctx, admin, "b1", &request.Reschedule{PhotographerID: "p2", Date: tomorrow, StartTime: "14:00"})

		assert.True(t, errors.IsConflict(err))
		repoMock.AssertNotCalled(t, "WithTransaction", mock.Anything, mock.Anything)
	})

	t.Run("staff may reassign outside coverage explicitly", func(t *testing.T) {
		setup(t)
		defer teardown()

		var saved entity.Booking
		repoMock.On("FindBookingByID", mock.Anything, "b1").Return(confirmedBooking(), nil)
		repoMock.On("FindServices", mock.Anything).Return(catalogServices(), nil)
		repoMock.On("FindPhotographerByID", mock.Anything, "p2").Return(remote(), nil)
		repoMock.On("FindClientByID", mock.Anything, "c1").Return(prePaidClient("0"), nil)
		expectLocks()
		expectTransaction()
		repoMock.On("FindBookingForUpdate", mock.Anything, "b1").Return(confirmedBooking(), nil)
		repoMock.On("FindBookingsByPhotographerRange", mock.Anything, "p2", mock.Anything, mock.Anything).Return([]entity.Booking{}, nil)
		repoMock.On("FindTimeOffsByPhotographerRange", mock.Anything, "p2", mock.Anything, mock.Anything).Return([]entity.TimeOff{}, nil)
		repoMock.On("UpdateBooking", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			saved = args.Get(1).(entity.Booking)
		}).Return(nil)
		repoMock.On("InvalidateSlots", mock.Anything, mock.Anything).Return(nil)

		_, err := uc.Reschedule(ctx, admin, "b1", &request.Reschedule{PhotographerID: "p2", Date: tomorrow, StartTime: "14:00", BypassRadius: true})

		require.NoError(t, err)
		assert.Equal(t, valid("p2"), saved.PhotographerID)
	})

	t.Run("clients cannot bypass the radius", func(t *testing.T) {
		setup(t)
		defer teardown()

		_, err := uc.Reschedule(ctx, client1, "b1", &request.Reschedule{Date: tomorrow, StartTime: "14:00", BypassRadius: true})

		assert.True(t, errors.IsAuthorization(err))
	})

	t.Run("target slot is taken", func(t *testing.T) {
		setup(t)
		defer teardown()

		other := confirmedBooking()
		other.ID = "b2"
		other.ClientID = "c2"
		other.StartTime = valid("14:00")
		other.EndTime = valid("15:00")

		repoMock.On("FindBookingByID", mock.Anything, "b1").Return(confirmedBooking(), nil)
		repoMock.On("FindServices", mock.Anything).Return(catalogServices(), nil)
		repoMock.On("FindPhotographerByID", mock.Anything, "p1").Return(photographer(), nil)
		expectLocks()
		expectTransaction()
		repoMock.On("FindBookingForUpdate", mock.Anything, "b1").Return(confirmedBooking(), nil)
		expectAgenda(confirmedBooking(), other)

		_, err := uc.Reschedule(ctx, client1, "b1", &request.Reschedule{Date: tomorrow, StartTime: "14:00"})

		assert.True(t, errors.IsConflict(err))
		assert.Empty(t, p.topics)
	})
}

func TestScheduleDraft(t *testing.T) {
	ctx := context.Background()
	draft := func() entity.Booking {
		return entity.Booking{
			ID:         "b3",
			ClientID:   "c1",
			ServiceIDs: entity.NewStringSet("foto"),
			Address:    site.Address,
			City:       site.City,
			Lat:        site.Lat,
			Lng:        site.Lng,
			Status:     entity.StatusDraft,
			KeyState:   entity.KeyNone,
			CreatedAt:  now.Add(-time.Hour),
		}
	}
	postPaid := entity.Client{ID: "c1", PaymentType: entity.PostPaid}
	req := &request.ScheduleDraft{PhotographerID: "p1", Date: tomorrow, StartTime: "09:00"}

	t.Run("post-paid draft is confirmed on scheduling", func(t *testing.T) {
		setup(t)
		defer teardown()

		var saved entity.Booking
		repoMock.On("FindBookingByID", mock.Anything, "b3").Return(draft(), nil)
		repoMock.On("FindServices", mock.Anything).Return(catalogServices(), nil)
		repoMock.On("FindClientByID", mock.Anything, "c1").Return(postPaid, nil)
		repoMock.On("FindPhotographerByID", mock.Anything, "p1").Return(photographer(), nil)
		repoMock.On("Lock", mock.Anything, "slot:p1:2026-10-16", "wallet:c1").Return(func() {}, nil)
		expectTransaction()
		repoMock.On("FindBookingForUpdate", mock.Anything, "b3").Return(draft(), nil)
		expectAgenda(confirmedBooking())
		repoMock.On("FindClientForUpdate", mock.Anything, "c1").Return(postPaid, nil)
		repoMock.On("UpdateBooking", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			saved = args.Get(1).(entity.Booking)
		}).Return(nil)
		repoMock.On("InvalidateSlots", mock.Anything, "p1").Return(nil)

		res, err := uc.ScheduleDraft(ctx, client1, "b3", req)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusConfirmed, res.Status)
		assert.Equal(t, "09:00", res.StartTime)
		assert.True(t, saved.TotalPrice.Equal(dec("80")))
		assert.Equal(t, []string{usecases.TopicBookingTransitions}, p.topics)
	})

	t.Run("a draft scheduled concurrently is rejected", func(t *testing.T) {
		setup(t)
		defer teardown()

		scheduled := draft()
		scheduled.Status = entity.StatusConfirmed
		repoMock.On("FindBookingByID", mock.Anything, "b3").Return(draft(), nil)
		repoMock.On("FindServices", mock.Anything).Return(catalogServices(), nil)
		repoMock.On("FindClientByID", mock.Anything, "c1").Return(postPaid, nil)
		repoMock.On("FindPhotographerByID", mock.Anything, "p1").Return(photographer(), nil)
		expectLocks()
		expectTransaction()
		repoMock.On("FindBookingForUpdate", mock.Anything, "b3").Return(scheduled, nil)

		_, err := uc.ScheduleDraft(ctx, client1, "b3", req)

		assert.True(t, errors.IsConflict(err))
	})
}

func TestSearchPhotographers(t *testing.T) {
	ctx := context.Background()

	t.Run("candidates within reach with their free slots", func(t *testing.T) {
		setup(t)
		defer teardown()

		far := photographer()
		far.ID = "p2"
		far.BaseLat, far.BaseLng = -23.55, -46.63

		repoMock.On("FindServices", mock.Anything).Return(catalogServices(), nil)
		repoMock.On("FindClientByID", mock.Anything, "c1").Return(entity.Client{ID: "c1", PaymentType: entity.PostPaid}, nil)
		repoMock.On("FindActivePhotographers", mock.Anything).Return([]entity.Photographer{far, photographer()}, nil)
		repoMock.On("FindBookingsByDate", mock.Anything, mock.Anything).Return([]entity.Booking{confirmedBooking()}, nil)
		repoMock.On("FindTimeOffsByRange", mock.Anything, mock.Anything, mock.Anything).Return([]entity.TimeOff{}, nil)

		res, err := uc.SearchPhotographers(ctx, client1, &request.Search{ServiceIDs: []string{"foto"}, Location: site, Date: tomorrow})

		require.NoError(t, err)
		require.Len(t, res.Candidates, 1)
		assert.Equal(t, "p1", res.Candidates[0].PhotographerID)
		assert.Equal(t, []string{"09:00", "14:00"}, res.Candidates[0].Slots)
		assert.Equal(t, 60, res.DurationMinutes)
	})

	t.Run("clients cannot bypass the radius", func(t *testing.T) {
		setup(t)
		defer teardown()

		_, err := uc.SearchPhotographers(ctx, client1, &request.Search{ServiceIDs: []string{"foto"}, Location: site, Date: tomorrow, BypassRadius: true})

		assert.True(t, errors.IsAuthorization(err))
	})

	t.Run("past dates are rejected", func(t *testing.T) {
		setup(t)
		defer teardown()

		_, err := uc.SearchPhotographers(ctx, client1, &request.Search{ServiceIDs: []string{"foto"}, Location: site, Date: "2026-10-14"})

		assert.True(t, errors.IsValidation(err))
	})
}

func TestRequestPaymentRecheck(t *testing.T) {
	ctx := context.Background()
	pending := confirmedBooking()
	pending.Status = entity.StatusPending
	pending.ChargeID = valid("pay_1")

	t.Run("staff enqueue the task", func(t *testing.T) {
		setup(t)
		defer teardown()

		repoMock.On("FindBookingByID", mock.Anything, "b1").Return(pending, nil)
		repoMock.On("EnqueuePaymentRecheck", mock.Anything, request.PaymentRecheck{BookingID: "b1", ChargeID: "pay_1", ClientID: "c1"}).
			Return("task-1", nil)

		res, err := uc.RequestPaymentRecheck(ctx, admin, "b1")

		require.NoError(t, err)
		assert.Equal(t, "task-1", res.TaskID)
	})

	t.Run("clients may not", func(t *testing.T) {
		setup(t)
		defer teardown()

		_, err := uc.RequestPaymentRecheck(ctx, client1, "b1")

		assert.True(t, errors.IsAuthorization(err))
	})

	t.Run("confirmed bookings have nothing to recheck", func(t *testing.T) {
		setup(t)
		defer teardown()

		repoMock.On("FindBookingByID", mock.Anything, "b1").Return(confirmedBooking(), nil)

		_, err := uc.RequestPaymentRecheck(ctx, admin, "b1")

		assert.True(t, errors.IsConflict(err))
	})
}

func TestShowBooking(t *testing.T) {
	ctx := context.Background()
	setup(t)
	defer teardown()

	repoMock.On("FindBookingByID", mock.Anything, "b1").Return(confirmedBooking(), nil)

	res, err := uc.ShowBooking(ctx, photog, "b1")
	require.NoError(t, err)
	assert.Equal(t, "b1", res.ID)

	_, err = uc.ShowBooking(ctx, engine.Actor{ID: "c2", Role: engine.RoleClient}, "b1")
	assert.True(t, errors.IsAuthorization(err))
}

func TestForceStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("admin overrides the status", func(t *testing.T) {
		setup(t)
		defer teardown()

		var saved entity.Booking
		expectTransaction()
		repoMock.On("FindBookingForUpdate", mock.Anything, "b1").Return(confirmedBooking(), nil)
		repoMock.On("UpdateBooking", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			saved = args.Get(1).(entity.Booking)
		}).Return(nil)
		repoMock.On("InvalidateSlots", mock.Anything, "p1").Return(nil)

		res, err := uc.ForceStatus(ctx, admin, "b1", &request.ForceStatus{Status: string(entity.StatusDone), Note: "shot on site"})

		require.NoError(t, err)
		assert.Equal(t, entity.StatusDone, res.Status)
		require.Len(t, saved.History, 2)
		assert.Equal(t, "shot on site", saved.History[1].Note)
		assert.True(t, saved.WalletDebited.Equal(dec("80")))
	})

	t.Run("unknown status", func(t *testing.T) {
		setup(t)
		defer teardown()

		_, err := uc.ForceStatus(ctx, admin, "b1", &request.ForceStatus{Status: "lost"})

		assert.True(t, errors.IsValidation(err))
	})

	t.Run("clients may not", func(t *testing.T) {
		setup(t)
		defer teardown()

		expectTransaction()
		repoMock.On("FindBookingForUpdate", mock.Anything, "b1").Return(confirmedBooking(), nil)

		_, err := uc.ForceStatus(ctx, client1, "b1", &request.ForceStatus{Status: string(entity.StatusDone)})

		assert.True(t, errors.IsAuthorization(err))
	})
}

func TestConfirmBooking(t *testing.T) {
	ctx := context.Background()
	primeira := entity.Coupon{
		Code:             "PRIMEIRA",
		DiscountType:     entity.DiscountFixed,
		Value:            dec("10"),
		ExpirationDate:   now.AddDate(0, 1, 0),
		MaxUses:          50,
		MaxUsesPerClient: 1,
		IsActive:         true,
	}

	t.Run("confirming redeems the coupon once", func(t *testing.T) {
		setup(t)
		defer teardown()

		pending := confirmedBooking()
		pending.Status = entity.StatusPending
		pending.CouponCode = valid("PRIMEIRA")
		var saved entity.Booking
		expectTransaction()
		repoMock.On("FindBookingForUpdate", mock.Anything, "b1").Return(pending, nil)
		repoMock.On("FindCouponForUpdate", mock.Anything, "PRIMEIRA").Return(primeira, nil)
		repoMock.On("CountCouponUses", mock.Anything, "PRIMEIRA", "c1").Return(0, nil)
		repoMock.On("RedeemCoupon", mock.Anything, "PRIMEIRA", "c1", "b1").Return(nil).Once()
		repoMock.On("UpdateBooking", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			saved = args.Get(1).(entity.Booking)
		}).Return(nil)

		res, err := uc.ConfirmBooking(ctx, admin, "b1")

		require.NoError(t, err)
		assert.Equal(t, entity.StatusConfirmed, res.Status)
		assert.True(t, saved.CouponRedeemed)
	})

	t.Run("coupon spent since pricing blocks the confirmation", func(t *testing.T) {
		setup(t)
		defer teardown()

		pending := confirmedBooking()
		pending.Status = entity.StatusPending
		pending.CouponCode = valid("PRIMEIRA")
		spent := primeira
		spent.UsedCount = spent.MaxUses
		expectTransaction()
		repoMock.On("FindBookingForUpdate", mock.Anything, "b1").Return(pending, nil)
		repoMock.On("FindCouponForUpdate", mock.Anything, "PRIMEIRA").Return(spent, nil)
		repoMock.On("CountCouponUses", mock.Anything, "PRIMEIRA", "c1").Return(0, nil)

		_, err := uc.ConfirmBooking(ctx, admin, "b1")

		assert.True(t, errors.IsConflict(err))
		repoMock.AssertNotCalled(t, "RedeemCoupon", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		repoMock.AssertNotCalled(t, "UpdateBooking", mock.Anything, mock.Anything)
	})

	t.Run("clients cannot confirm", func(t *testing.T) {
		setup(t)
		defer teardown()

		pending := confirmedBooking()
		pending.Status = entity.StatusPending
		expectTransaction()
		repoMock.On("FindBookingForUpdate", mock.Anything, "b1").Return(pending, nil)

		_, err := uc.ConfirmBooking(ctx, client1, "b1")

		assert.True(t, errors.IsAuthorization(err))
	})
}

func TestDeliverMaterial(t *testing.T) {
	ctx := context.Background()

	t.Run("done session is delivered", func(t *testing.T) {
		setup(t)
		defer teardown()

		done := confirmedBooking()
		done.Status = entity.StatusDone
		expectTransaction()
		repoMock.On("FindBookingForUpdate", mock.Anything, "b1").Return(done, nil)
		repoMock.On("UpdateBooking", mock.Anything, mock.Anything).Return(nil)

		res, err := uc.DeliverMaterial(ctx, admin, "b1")

		require.NoError(t, err)
		assert.Equal(t, entity.StatusDelivered, res.Status)
	})

	t.Run("confirmed session cannot skip completion", func(t *testing.T) {
		setup(t)
		defer teardown()

		expectTransaction()
		repoMock.On("FindBookingForUpdate", mock.Anything, "b1").Return(confirmedBooking(), nil)

		_, err := uc.DeliverMaterial(ctx, admin, "b1")

		assert.True(t, errors.IsConflict(err))
	})
}

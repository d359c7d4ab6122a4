package booking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"teerenta/models"
	"teerenta/services/booking"
	"teerenta/services/promo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// --- stateful fakes over the repository interfaces ---

type fakeTourists struct {
	tourist *models.Tourist
}

func (f *fakeTourists) GetByID(id string) (*models.Tourist, error) {
	if f.tourist != nil && f.tourist.ID == id {
		cp := *f.tourist
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeTourists) Update(t *models.Tourist) error { return nil }

func (f *fakeTourists) DebitWallet(id string, amount float64) (bool, error) {
	if f.tourist == nil || f.tourist.ID != id {
		return false, nil
	}
	if f.tourist.Wallet < amount {
		return false, nil
	}
	f.tourist.Wallet -= amount
	return true, nil
}

func (f *fakeTourists) CreditWallet(id string, amount float64) error {
	f.tourist.Wallet += amount
	return nil
}

func (f *fakeTourists) AddLoyaltyPoints(id string, points float64) error {
	if f.tourist != nil && f.tourist.ID == id {
		f.tourist.LoyaltyPoints += points
	}
	return nil
}

type fakeItems struct {
	items map[string]*models.BookableItem
}

func (f *fakeItems) Create(it *models.BookableItem) error { return nil }

func (f *fakeItems) GetActiveByID(kind models.ItemKind, id string) (*models.BookableItem, error) {
	it, ok := f.items[id]
	if !ok || !it.IsActive || it.Kind != kind {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (f *fakeItems) ListActive(kind models.ItemKind) ([]models.BookableItem, error) {
	return nil, nil
}
func (f *fakeItems) ListUpcoming(kind models.ItemKind, from time.Time) ([]models.BookableItem, error) {
	return nil, nil
}
func (f *fakeItems) ListByCreator(kind models.ItemKind, creatorID string) ([]models.BookableItem, error) {
	return nil, nil
}
func (f *fakeItems) Update(it *models.BookableItem) error { return nil }
func (f *fakeItems) Deactivate(kind models.ItemKind, id string) (bool, error) {
	return false, nil
}

type fakeBookings struct {
	bookings  []models.Booking
	createErr error
}

func (f *fakeBookings) Create(b *models.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeBookings) GetByID(kind models.ItemKind, id string) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id && f.bookings[i].Kind == kind {
			cp := f.bookings[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeBookings) FindPendingByTouristAndItem(kind models.ItemKind, itemID, touristID string) (*models.Booking, error) {
	for i := range f.bookings {
		b := &f.bookings[i]
		if b.Kind == kind && b.ItemID == itemID && b.TouristID == touristID &&
			b.Status == models.BookingPending && b.IsActive {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeBookings) ListByTourist(kind models.ItemKind, touristID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Kind == kind && b.TouristID == touristID && b.IsActive {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookings) TransitionStatus(kind models.ItemKind, id string, from, to models.BookingStatus) (bool, error) {
	for i := range f.bookings {
		b := &f.bookings[i]
		if b.ID == id && b.Kind == kind && b.Status == from {
			b.Status = to
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookings) CompletePastDue(kind models.ItemKind, before time.Time) (int64, error) {
	var n int64
	for i := range f.bookings {
		b := &f.bookings[i]
		if b.Kind == kind && b.IsActive && b.Status == models.BookingPending && b.Date.Before(before) {
			b.Status = models.BookingCompleted
			n++
		}
	}
	return n, nil
}

type fakePromoRepo struct {
	promo *models.PromoCode
}

func (f *fakePromoRepo) Create(p *models.PromoCode) error { return nil }

func (f *fakePromoRepo) GetByCode(code string) (*models.PromoCode, error) {
	if f.promo != nil && f.promo.Code == code {
		cp := *f.promo
		return &cp, nil
	}
	return nil, nil
}

func (f *fakePromoRepo) ReserveUsage(code string, now time.Time) (bool, error) {
	if f.promo == nil || f.promo.Code != code ||
		!f.promo.ExpiryDate.After(now) || f.promo.UsageLimit <= 0 {
		return false, nil
	}
	f.promo.UsageLimit--
	return true, nil
}

func (f *fakePromoRepo) ReleaseUsage(code string) error {
	f.promo.UsageLimit++
	return nil
}

type fakeGateway struct {
	chargeFn func(ctx context.Context, req models.ChargeRequest) (*models.ChargeReceipt, error)
	charges  int
}

func (f *fakeGateway) Charge(ctx context.Context, req models.ChargeRequest) (*models.ChargeReceipt, error) {
	f.charges++
	if f.chargeFn != nil {
		return f.chargeFn(ctx, req)
	}
	return &models.ChargeReceipt{TransactionID: "pi_test", AmountMinor: req.AmountMinor, Currency: req.Currency}, nil
}

// --- fixture ---

type fixture struct {
	svc      *booking.DefaultBookingService
	tourists *fakeTourists
	items    *fakeItems
	bookings *fakeBookings
	promos   *fakePromoRepo
	gateway  *fakeGateway
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	adultDOB := time.Now().AddDate(-30, 0, 0)
	f := &fixture{
		tourists: &fakeTourists{tourist: &models.Tourist{
			ID:          "t1",
			DateOfBirth: adultDOB,
			Wallet:      100,
			IsActive:    true,
		}},
		items: &fakeItems{items: map[string]*models.BookableItem{
			"item1": {
				ID:       "item1",
				Kind:     models.KindTransportation,
				Price:    100,
				Date:     time.Now().AddDate(0, 0, 7),
				IsActive: true,
			},
		}},
		bookings: &fakeBookings{},
		promos:   &fakePromoRepo{},
		gateway:  &fakeGateway{},
	}

	promoSvc := &promo.DefaultPromoService{Repo: f.promos, Logger: zap.NewNop()}
	f.svc = &booking.DefaultBookingService{
		Items:       f.items,
		Bookings:    f.bookings,
		Tourists:    f.tourists,
		Promos:      promoSvc,
		Gateway:     f.gateway,
		Currency:    "EGP",
		LoyaltyRate: 1,
		Logger:      zap.NewNop(),
	}
	return f
}

func walletRequest() booking.BookRequest {
	return booking.BookRequest{
		Kind:          models.KindTransportation,
		ItemID:        "item1",
		TouristID:     "t1",
		PaymentMethod: models.PaymentWallet,
	}
}

// --- tests ---

func TestBook_WalletExactBalance(t *testing.T) {
	f := newFixture(t)

	conf, err := f.svc.Book(context.Background(), walletRequest())
	require.NoError(t, err)
	assert.Equal(t, 100.0, conf.FinalPrice)
	assert.Equal(t, 0.0, f.tourists.tourist.Wallet)

	require.Len(t, f.bookings.bookings, 1)
	b := f.bookings.bookings[0]
	assert.Equal(t, models.BookingPending, b.Status)
	assert.Equal(t, 100.0, b.Price)
	assert.True(t, b.IsActive)
}

func TestBook_InsufficientFundsLeavesWalletUntouched(t *testing.T) {
	f := newFixture(t)
	f.items.items["item1"].Price = 101

	_, err := f.svc.Book(context.Background(), walletRequest())
	assert.ErrorIs(t, err, booking.ErrInsufficientFunds)
	assert.Equal(t, 100.0, f.tourists.tourist.Wallet)
	assert.Empty(t, f.bookings.bookings)
}

func TestBook_PromoDiscountApplied(t *testing.T) {
	f := newFixture(t)
	f.promos.promo = &models.PromoCode{
		Code:            "SAVE20",
		DiscountPercent: 20,
		ExpiryDate:      time.Now().AddDate(0, 1, 0),
		UsageLimit:      5,
		IsActive:        true,
	}

	req := walletRequest()
	req.PromoCode = "SAVE20"
	conf, err := f.svc.Book(context.Background(), req)
	require.NoError(t, err)
	assert.InDelta(t, 80.0, conf.FinalPrice, 1e-9)
	assert.InDelta(t, 20.0, f.tourists.tourist.Wallet, 1e-9)
	assert.Equal(t, 4, f.promos.promo.UsageLimit)
}

func TestBook_LoyaltyPointsAwarded(t *testing.T) {
	f := newFixture(t)
	f.promos.promo = &models.PromoCode{
		Code:            "SAVE20",
		DiscountPercent: 20,
		ExpiryDate:      time.Now().AddDate(0, 1, 0),
		UsageLimit:      5,
		IsActive:        true,
	}

	req := walletRequest()
	req.PromoCode = "SAVE20"
	conf, err := f.svc.Book(context.Background(), req)
	require.NoError(t, err)
	// Accrual follows the discounted price actually charged.
	assert.InDelta(t, conf.FinalPrice*f.svc.LoyaltyRate, f.tourists.tourist.LoyaltyPoints, 1e-9)
}

func TestBook_NoLoyaltyPointsOnFailedBooking(t *testing.T) {
	f := newFixture(t)
	f.items.items["item1"].Price = 101

	_, err := f.svc.Book(context.Background(), walletRequest())
	assert.ErrorIs(t, err, booking.ErrInsufficientFunds)
	assert.Equal(t, 0.0, f.tourists.tourist.LoyaltyPoints)
}

func TestBook_PromoSingleUse(t *testing.T) {
	f := newFixture(t)
	f.tourists.tourist.Wallet = 1000
	f.items.items["item2"] = &models.BookableItem{
		ID:       "item2",
		Kind:     models.KindTransportation,
		Price:    50,
		Date:     time.Now().AddDate(0, 0, 3),
		IsActive: true,
	}
	f.promos.promo = &models.PromoCode{
		Code:            "ONCE",
		DiscountPercent: 10,
		ExpiryDate:      time.Now().AddDate(0, 1, 0),
		UsageLimit:      1,
		IsActive:        true,
	}

	req := walletRequest()
	req.PromoCode = "ONCE"
	_, err := f.svc.Book(context.Background(), req)
	require.NoError(t, err)

	// Second use fails regardless of item.
	req.ItemID = "item2"
	_, err = f.svc.Book(context.Background(), req)
	assert.ErrorIs(t, err, promo.ErrUsageLimitExceeded)
}

func TestBook_ExpiredPromoRejected(t *testing.T) {
	f := newFixture(t)
	f.promos.promo = &models.PromoCode{
		Code:            "OLD",
		DiscountPercent: 50,
		ExpiryDate:      time.Now().AddDate(0, 0, -1),
		UsageLimit:      10,
		IsActive:        true,
	}

	req := walletRequest()
	req.PromoCode = "OLD"
	_, err := f.svc.Book(context.Background(), req)
	assert.ErrorIs(t, err, promo.ErrInvalidPromoCode)
	assert.Equal(t, 100.0, f.tourists.tourist.Wallet)
}

func TestBook_DuplicatePendingRejectedAndPromoReleased(t *testing.T) {
	f := newFixture(t)
	f.tourists.tourist.Wallet = 1000
	f.promos.promo = &models.PromoCode{
		Code:            "SAVE20",
		DiscountPercent: 20,
		ExpiryDate:      time.Now().AddDate(0, 1, 0),
		UsageLimit:      5,
		IsActive:        true,
	}

	_, err := f.svc.Book(context.Background(), walletRequest())
	require.NoError(t, err)

	req := walletRequest()
	req.PromoCode = "SAVE20"
	_, err = f.svc.Book(context.Background(), req)
	assert.ErrorIs(t, err, booking.ErrDuplicateBooking)
	// The reserved use was given back.
	assert.Equal(t, 5, f.promos.promo.UsageLimit)
	assert.Len(t, f.bookings.bookings, 1)
}

func TestBook_AgeGate(t *testing.T) {
	f := newFixture(t)

	// 18th birthday is tomorrow: still 17.
	f.tourists.tourist.DateOfBirth = time.Now().AddDate(-18, 0, 1)
	_, err := f.svc.Book(context.Background(), walletRequest())
	assert.ErrorIs(t, err, booking.ErrIneligible)

	// Exactly 18 today: accepted.
	f.tourists.tourist.DateOfBirth = time.Now().AddDate(-18, 0, 0)
	_, err = f.svc.Book(context.Background(), walletRequest())
	assert.NoError(t, err)
}

func TestBook_NoAgeGateForActivities(t *testing.T) {
	f := newFixture(t)
	f.tourists.tourist.DateOfBirth = time.Now().AddDate(-16, 0, 0)
	f.items.items["act1"] = &models.BookableItem{
		ID:       "act1",
		Kind:     models.KindActivity,
		Price:    40,
		Date:     time.Now().AddDate(0, 0, 2),
		IsActive: true,
	}

	req := walletRequest()
	req.Kind = models.KindActivity
	req.ItemID = "act1"
	_, err := f.svc.Book(context.Background(), req)
	assert.NoError(t, err)
}

func TestBook_InvalidPaymentMethodBeforeAnyMutation(t *testing.T) {
	f := newFixture(t)
	f.promos.promo = &models.PromoCode{
		Code:            "SAVE20",
		DiscountPercent: 20,
		ExpiryDate:      time.Now().AddDate(0, 1, 0),
		UsageLimit:      5,
		IsActive:        true,
	}

	req := walletRequest()
	req.PaymentMethod = "cash_on_delivery"
	req.PromoCode = "SAVE20"
	_, err := f.svc.Book(context.Background(), req)
	assert.ErrorIs(t, err, booking.ErrInvalidPaymentMethod)
	assert.Equal(t, 5, f.promos.promo.UsageLimit)
	assert.Equal(t, 100.0, f.tourists.tourist.Wallet)
}

func TestBook_CardCharge(t *testing.T) {
	f := newFixture(t)
	f.items.items["item1"].Price = 49.99

	var captured models.ChargeRequest
	f.gateway.chargeFn = func(ctx context.Context, req models.ChargeRequest) (*models.ChargeReceipt, error) {
		captured = req
		return &models.ChargeReceipt{TransactionID: "pi_abc", AmountMinor: req.AmountMinor, Currency: req.Currency}, nil
	}

	req := walletRequest()
	req.PaymentMethod = models.PaymentCard
	conf, err := f.svc.Book(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(4999), captured.AmountMinor)
	assert.Equal(t, "EGP", captured.Currency)
	assert.InDelta(t, 49.99, conf.FinalPrice, 1e-9)
	// Wallet untouched on card payments.
	assert.Equal(t, 100.0, f.tourists.tourist.Wallet)
	require.Len(t, f.bookings.bookings, 1)
	assert.Equal(t, "pi_abc", f.bookings.bookings[0].TransactionID)
}

func TestBook_GatewayRejectionReleasesPromo(t *testing.T) {
	f := newFixture(t)
	f.promos.promo = &models.PromoCode{
		Code:            "SAVE20",
		DiscountPercent: 20,
		ExpiryDate:      time.Now().AddDate(0, 1, 0),
		UsageLimit:      3,
		IsActive:        true,
	}
	f.gateway.chargeFn = func(ctx context.Context, req models.ChargeRequest) (*models.ChargeReceipt, error) {
		return nil, errors.New("card declined")
	}

	req := walletRequest()
	req.PaymentMethod = models.PaymentCard
	req.PromoCode = "SAVE20"
	_, err := f.svc.Book(context.Background(), req)
	assert.ErrorIs(t, err, booking.ErrPaymentFailed)
	assert.Equal(t, 3, f.promos.promo.UsageLimit)
	assert.Empty(t, f.bookings.bookings)
}

func TestBook_PersistenceFailureRefundsWallet(t *testing.T) {
	f := newFixture(t)
	f.bookings.createErr = errors.New("write concern error")

	_, err := f.svc.Book(context.Background(), walletRequest())
	require.Error(t, err)
	// The debit was compensated.
	assert.Equal(t, 100.0, f.tourists.tourist.Wallet)
}

func TestBook_InactiveItemNotFound(t *testing.T) {
	f := newFixture(t)
	f.items.items["item1"].IsActive = false

	_, err := f.svc.Book(context.Background(), walletRequest())
	assert.ErrorIs(t, err, booking.ErrNotFound)
}

func TestBook_UnknownTouristNotFound(t *testing.T) {
	f := newFixture(t)

	req := walletRequest()
	req.TouristID = "ghost"
	_, err := f.svc.Book(context.Background(), req)
	assert.ErrorIs(t, err, booking.ErrNotFound)
}

func TestCancel_PendingOnly(t *testing.T) {
	f := newFixture(t)

	conf, err := f.svc.Book(context.Background(), walletRequest())
	require.NoError(t, err)
	assert.Equal(t, 0.0, f.tourists.tourist.Wallet)

	require.NoError(t, f.svc.Cancel(models.KindTransportation, conf.BookingID, "t1"))
	// Wallet payment refunded on cancellation.
	assert.Equal(t, 100.0, f.tourists.tourist.Wallet)
	assert.Equal(t, models.BookingCancelled, f.bookings.bookings[0].Status)

	// A second cancel finds the booking already out of Pending.
	err = f.svc.Cancel(models.KindTransportation, conf.BookingID, "t1")
	assert.ErrorIs(t, err, booking.ErrAlreadyFinalized)
	assert.Equal(t, 100.0, f.tourists.tourist.Wallet)
}

func TestCancel_OtherTouristsBookingHidden(t *testing.T) {
	f := newFixture(t)

	conf, err := f.svc.Book(context.Background(), walletRequest())
	require.NoError(t, err)

	err = f.svc.Cancel(models.KindTransportation, conf.BookingID, "someone-else")
	assert.ErrorIs(t, err, booking.ErrNotFound)
}

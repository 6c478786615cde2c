package services

import (
	"context"
	"errors"
	"testing"

	"fartburger/models"
	"fartburger/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPromoValidator struct {
	mock.Mock
}

func (m *mockPromoValidator) Validate(ctx context.Context, code string) (models.PromoValidation, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(models.PromoValidation), args.Error(1)
}

type mockSupportSender struct {
	mock.Mock
}

func (m *mockSupportSender) Send(ctx context.Context, userName, message string) error {
	args := m.Called(ctx, userName, message)
	return args.Error(0)
}

func newTestCatalog(t *testing.T) *repositories.CatalogRepository {
	t.Helper()
	catalog, err := repositories.NewCatalogRepository()
	require.NoError(t, err)
	return catalog
}

func newTestStorefront(t *testing.T) (*Storefront, *mockPromoValidator, *mockSupportSender) {
	t.Helper()
	promo := &mockPromoValidator{}
	support := &mockSupportSender{}
	s := NewStorefront("test-session", StorefrontDeps{
		Catalog: newTestCatalog(t),
		Promo:   promo,
		Support: support,
		Cards:   NewCardValidator(),
	})
	return s, promo, support
}

func addFries(t *testing.T, s *Storefront) {
	t.Helper()
	_, err := s.OpenItem("fries")
	require.NoError(t, err)
	_, err = s.AddToCart()
	require.NoError(t, err)
}

func TestStorefront_InitialState(t *testing.T) {
	s, _, _ := newTestStorefront(t)

	state := s.State()
	assert.Equal(t, "test-session", state.SessionID)
	assert.Equal(t, 0, state.Balance)
	assert.Empty(t, state.Cart.Lines)
	assert.False(t, state.Dialog.Open)
	assert.Equal(t, models.PaymentBalance, state.Form.PaymentMethod)
	assert.Equal(t, []int{100, 500, 1000}, state.QuickTopUps)
}

func TestStorefront_OpenUnknownItem(t *testing.T) {
	s, _, _ := newTestStorefront(t)

	_, err := s.OpenItem("pizza")
	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.False(t, s.Dialog().Open)
}

func TestStorefront_DialogEditsNeedOpenDialog(t *testing.T) {
	s, _, _ := newTestStorefront(t)

	_, err := s.ToggleIngredient("Две булочки")
	assert.ErrorIs(t, err, ErrDialogClosed)
	_, err = s.AddIngredient("Две булочки")
	assert.ErrorIs(t, err, ErrDialogClosed)
	_, err = s.RemoveIngredient("Две булочки")
	assert.ErrorIs(t, err, ErrDialogClosed)
	_, err = s.AddToCart()
	assert.ErrorIs(t, err, ErrDialogClosed)
}

func TestStorefront_CustomizeAndAddToCart(t *testing.T) {
	s, _, _ := newTestStorefront(t)

	_, err := s.OpenItem("hamburger")
	require.NoError(t, err)
	_, err = s.ToggleIngredient("Соус классический")
	require.NoError(t, err)
	state, err := s.AddIngredient("Котлета говяжья")
	require.NoError(t, err)
	assert.Equal(t, 89+30, state.Price)

	line, err := s.AddToCart()
	require.NoError(t, err)
	assert.Equal(t, 119, line.UnitPrice)
	assert.Equal(t, []string{"Без: Соус классический", "Добавлено: Котлета говяжья x1"}, line.Summary)
	assert.False(t, s.Dialog().Open)

	_, err = s.OpenItem("hamburger")
	require.NoError(t, err)
	s.CloseDialog()

	cart := s.Cart()
	assert.Equal(t, 1, cart.ItemCount)
	assert.Equal(t, 119, cart.Total)
}

func TestStorefront_SelectOptionChangesPrice(t *testing.T) {
	s, _, _ := newTestStorefront(t)

	_, err := s.OpenItem("nuggets")
	require.NoError(t, err)

	state, err := s.SelectOption(models.OptionCount, "9шт")
	require.NoError(t, err)
	assert.Equal(t, 249, state.Price)

	state, err = s.SelectOption(models.OptionCount, "7шт")
	assert.ErrorIs(t, err, ErrInvalidOption)
	assert.Equal(t, 249, state.Price)
}

func TestStorefront_TopUpWithCard(t *testing.T) {
	s, _, _ := newTestStorefront(t)

	balance, applied, err := s.TopUpWithCard(models.CardTopUpRequest{
		CardNumber: "4111 1111 1111 1111", Expiry: "12/25", CVV: "123", Amount: "500",
	})
	assert.ErrorIs(t, err, ErrPaymentFormatInvalid)
	assert.False(t, applied)
	assert.Equal(t, 0, balance)

	balance, applied, err = s.TopUpWithCard(models.CardTopUpRequest{
		CardNumber: "2202 1234 5678 9012", Expiry: "12/25", CVV: "123", Amount: "500",
	})
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, 500, balance)

	balance, applied, err = s.TopUpWithCard(models.CardTopUpRequest{
		CardNumber: "2202 1234 5678 9012", Expiry: "12/25", CVV: "123", Amount: "abc",
	})
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, 500, balance)
}

func TestStorefront_ApplyPromoEmptyCode(t *testing.T) {
	s, promo, _ := newTestStorefront(t)

	s.SetPromoCode("   ")
	_, err := s.ApplyPromo(context.Background())

	assert.ErrorIs(t, err, ErrInvalidPromoFormat)
	promo.AssertNotCalled(t, "Validate", mock.Anything, mock.Anything)
}

func TestStorefront_ApplyPromoValid(t *testing.T) {
	s, promo, _ := newTestStorefront(t)
	promo.On("Validate", mock.Anything, "FART10").
		Return(models.PromoValidation{Valid: true, Code: "FART10", DiscountPercent: 10}, nil).Once()

	addFries(t, s)
	s.SetPromoCode(" FART10 ")
	state, err := s.ApplyPromo(context.Background())

	require.NoError(t, err)
	assert.True(t, state.Applied)
	assert.Equal(t, 10, state.DiscountPercent)
	assert.Equal(t, 99-10, s.State().Preview)
	promo.AssertExpectations(t)
}

func TestStorefront_ApplyPromoRejected(t *testing.T) {
	s, promo, _ := newTestStorefront(t)
	promo.On("Validate", mock.Anything, "FART10").
		Return(models.PromoValidation{Valid: true, DiscountPercent: 10}, nil).Once()
	promo.On("Validate", mock.Anything, "NOPE").
		Return(models.PromoValidation{Valid: false, Error: "Промокод не найден"}, nil).Once()

	s.SetPromoCode("FART10")
	_, err := s.ApplyPromo(context.Background())
	require.NoError(t, err)

	s.SetPromoCode("NOPE")
	state, err := s.ApplyPromo(context.Background())

	assert.ErrorIs(t, err, ErrPromoRejected)
	assert.ErrorContains(t, err, "Промокод не найден")
	assert.False(t, state.Applied)
	assert.Equal(t, 0, state.DiscountPercent)
}

func TestStorefront_ApplyPromoNetworkFailureKeepsState(t *testing.T) {
	s, promo, _ := newTestStorefront(t)
	promo.On("Validate", mock.Anything, "FART10").
		Return(models.PromoValidation{Valid: true, DiscountPercent: 10}, nil).Once()
	promo.On("Validate", mock.Anything, "FART10").
		Return(models.PromoValidation{}, errors.New("connection refused")).Once()

	s.SetPromoCode("FART10")
	_, err := s.ApplyPromo(context.Background())
	require.NoError(t, err)

	state, err := s.ApplyPromo(context.Background())
	assert.ErrorIs(t, err, ErrNetworkFailure)
	assert.True(t, state.Applied)
	assert.Equal(t, 10, state.DiscountPercent)
}

func TestStorefront_EditingPromoResetsDiscount(t *testing.T) {
	s, promo, _ := newTestStorefront(t)
	promo.On("Validate", mock.Anything, "FART10").
		Return(models.PromoValidation{Valid: true, DiscountPercent: 10}, nil).Once()

	s.SetPromoCode("FART10")
	_, err := s.ApplyPromo(context.Background())
	require.NoError(t, err)

	unchanged := s.SetPromoCode("FART10")
	assert.True(t, unchanged.Applied)

	state := s.SetPromoCode("FART1")
	assert.False(t, state.Applied)
	assert.Equal(t, 0, state.DiscountPercent)
}

func TestStorefront_StalePromoVerdictIgnored(t *testing.T) {
	s, promo, _ := newTestStorefront(t)
	promo.On("Validate", mock.Anything, "FART10").
		Run(func(mock.Arguments) { s.SetPromoCode("OTHER") }).
		Return(models.PromoValidation{Valid: true, DiscountPercent: 10}, nil).Once()

	s.SetPromoCode("FART10")
	state, err := s.ApplyPromo(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "OTHER", state.Code)
	assert.False(t, state.Applied)
	assert.Equal(t, 0, state.DiscountPercent)
}

func TestStorefront_CheckoutSuccessResetsForm(t *testing.T) {
	s, promo, _ := newTestStorefront(t)
	promo.On("Validate", mock.Anything, "FART10").
		Return(models.PromoValidation{Valid: true, DiscountPercent: 10}, nil).Once()

	s.TopUp(500)
	addFries(t, s)
	s.SetPromoCode("FART10")
	_, err := s.ApplyPromo(context.Background())
	require.NoError(t, err)

	result, err := s.Checkout(models.CheckoutRequest{
		DeliveryAddress: "ул. Ленина, 5",
		TipAmount:       "20",
		PaymentMethod:   models.PaymentBalance,
	})
	require.NoError(t, err)
	assert.Equal(t, 99-10+20, result.FinalTotal)
	assert.Equal(t, 500-109, result.NewBalance)

	state := s.State()
	assert.Equal(t, 391, state.Balance)
	assert.Empty(t, state.Cart.Lines)
	assert.Equal(t, models.CheckoutForm{PaymentMethod: models.PaymentBalance}, state.Form)
	assert.Equal(t, models.PromoState{}, state.Promo)
}

func TestStorefront_CheckoutCashKeepsPaymentMethod(t *testing.T) {
	s, _, _ := newTestStorefront(t)
	addFries(t, s)

	result, err := s.Checkout(models.CheckoutRequest{
		DeliveryAddress: "дом 7",
		PaymentMethod:   models.PaymentCash,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.NewBalance)
	assert.Equal(t, models.PaymentCash, s.State().Form.PaymentMethod)
}

func TestStorefront_CheckoutFailureKeepsCart(t *testing.T) {
	s, _, _ := newTestStorefront(t)
	s.TopUp(50)
	addFries(t, s)

	_, err := s.Checkout(models.CheckoutRequest{DeliveryAddress: "дом 7"})
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	_, err = s.Checkout(models.CheckoutRequest{DeliveryAddress: "без номера"})
	assert.ErrorIs(t, err, ErrInvalidAddress)

	state := s.State()
	assert.Equal(t, 50, state.Balance)
	assert.Equal(t, 1, state.Cart.ItemCount)
	assert.Equal(t, "без номера", state.Form.DeliveryAddress)
}

func TestStorefront_CheckoutEmptyCart(t *testing.T) {
	s, _, _ := newTestStorefront(t)
	s.TopUp(500)

	_, err := s.Checkout(models.CheckoutRequest{DeliveryAddress: "дом 7"})
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, 500, s.State().Balance)
}

func TestStorefront_SendSupport(t *testing.T) {
	s, _, support := newTestStorefront(t)
	support.On("Send", mock.Anything, DefaultSupportUser, "Где мой заказ?").Return(nil).Once()
	support.On("Send", mock.Anything, DefaultSupportUser, "Ещё вопрос").Return(errors.New("status 500")).Once()

	assert.ErrorIs(t, s.SendSupport(context.Background(), "  "), ErrSupportMessageEmpty)
	assert.NoError(t, s.SendSupport(context.Background(), " Где мой заказ? "))
	assert.ErrorIs(t, s.SendSupport(context.Background(), "Ещё вопрос"), ErrNetworkFailure)

	support.AssertExpectations(t)
}

package services

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"
	"sync"
	"time"

	"fartburger/models"
)

// DefaultSupportUser is sent as the author of storefront support messages.
const DefaultSupportUser = "Пользователь"

type Catalog interface {
	FindByID(id string) (models.MenuItem, bool)
}

type PromoValidator interface {
	Validate(ctx context.Context, code string) (models.PromoValidation, error)
}

type SupportSender interface {
	Send(ctx context.Context, userName, message string) error
}

type StorefrontDeps struct {
	Catalog Catalog
	Promo   PromoValidator
	Support SupportSender
	Cards   *CardValidator
}

// Storefront is the whole state of one browsing session. Every method holds the
// session lock for its full transition, except while waiting on a remote call.
type Storefront struct {
	mu       sync.Mutex
	id       string
	lastSeen time.Time
	deps     StorefrontDeps

	wallet Wallet
	cart   *Cart
	dialog ItemDialog
	form   models.CheckoutForm

	discount     int
	promoApplied bool
	// promoGen changes on every edit of the promo text so late verdicts for an old
	// code are discarded.
	promoGen uint64
}

func NewStorefront(id string, deps StorefrontDeps) *Storefront {
	return &Storefront{
		id:       id,
		lastSeen: time.Now(),
		deps:     deps,
		cart:     NewCart(),
		form:     models.CheckoutForm{PaymentMethod: models.PaymentBalance},
	}
}

func (s *Storefront) ID() string {
	return s.id
}

func (s *Storefront) State() models.StorefrontState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Storefront) stateLocked() models.StorefrontState {
	total := s.cart.Total()
	tip := max(0, ParseLeadingInt(s.form.TipAmount))
	return models.StorefrontState{
		SessionID:   s.id,
		Balance:     s.wallet.Balance(),
		Cart:        s.cart.State(),
		Dialog:      s.dialog.State(),
		Form:        s.form,
		Promo:       s.promoLocked(),
		Preview:     total - DiscountAmount(total, s.discount) + tip,
		QuickTopUps: slices.Clone(QuickTopUps),
	}
}

func (s *Storefront) OpenItem(itemID string) (models.DialogState, error) {
	item, ok := s.deps.Catalog.FindByID(itemID)
	if !ok {
		return models.DialogState{}, fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialog.Open(item)
	return s.dialog.State(), nil
}

func (s *Storefront) Dialog() models.DialogState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dialog.State()
}

func (s *Storefront) SelectOption(t models.OptionType, label string) (models.DialogState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.dialog.SelectOption(t, label); err != nil {
		return s.dialog.State(), err
	}
	return s.dialog.State(), nil
}

func (s *Storefront) ToggleIngredient(name string) (models.DialogState, error) {
	return s.editDialog(func(d *ItemDialog) { d.ToggleIngredient(name) })
}

func (s *Storefront) AddIngredient(name string) (models.DialogState, error) {
	return s.editDialog(func(d *ItemDialog) { d.AddIngredient(name) })
}

func (s *Storefront) RemoveIngredient(name string) (models.DialogState, error) {
	return s.editDialog(func(d *ItemDialog) { d.RemoveIngredient(name) })
}

func (s *Storefront) editDialog(edit func(*ItemDialog)) (models.DialogState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dialog.IsOpen() {
		return models.DialogState{}, ErrDialogClosed
	}
	edit(&s.dialog)
	return s.dialog.State(), nil
}

func (s *Storefront) AddToCart() (models.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	line, ok := s.dialog.AddToCart(s.cart)
	if !ok {
		return models.CartLine{}, ErrDialogClosed
	}
	return line, nil
}

func (s *Storefront) CloseDialog() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialog.Close()
}

func (s *Storefront) Cart() models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.State()
}

// TopUp credits the wallet; non-positive amounts are ignored.
func (s *Storefront) TopUp(amount int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	applied := s.wallet.TopUp(amount)
	return s.wallet.Balance(), applied
}

// TopUpWithCard checks the card form format and then tops up the parsed amount.
func (s *Storefront) TopUpWithCard(req models.CardTopUpRequest) (int, bool, error) {
	card := NormalizeCard(req.CardNumber, req.Expiry, req.CVV)
	if err := s.deps.Cards.Validate(card); err != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.wallet.Balance(), false, err
	}
	balance, applied := s.TopUp(ParseLeadingInt(req.Amount))
	return balance, applied, nil
}

// SetPromoCode stores the promo text. Any edit drops a previously applied discount.
func (s *Storefront) SetPromoCode(code string) models.PromoState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if code != s.form.PromoCode {
		s.form.PromoCode = code
		s.resetPromoLocked()
	}
	return s.promoLocked()
}

// ApplyPromo validates the current promo text remotely. The session is unlocked
// while the request is in flight. A verdict for text that was edited in the
// meantime is ignored.
func (s *Storefront) ApplyPromo(ctx context.Context) (models.PromoState, error) {
	s.mu.Lock()
	code := strings.TrimSpace(s.form.PromoCode)
	gen := s.promoGen
	s.mu.Unlock()

	if code == "" {
		return s.promoState(), ErrInvalidPromoFormat
	}

	result, err := s.deps.Promo.Validate(ctx, code)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		log.Printf("Promo validation failed for session %s: %v", s.id, err)
		return s.promoLocked(), fmt.Errorf("%w: %v", ErrNetworkFailure, err)
	}
	if gen != s.promoGen {
		return s.promoLocked(), nil
	}
	if !result.Valid {
		s.discount = 0
		s.promoApplied = false
		reason := result.Error
		if reason == "" {
			reason = "code is not valid"
		}
		return s.promoLocked(), fmt.Errorf("%w: %s", ErrPromoRejected, reason)
	}

	s.discount = clampPercent(result.DiscountPercent)
	s.promoApplied = true
	return s.promoLocked(), nil
}

func (s *Storefront) promoState() models.PromoState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.promoLocked()
}

func (s *Storefront) promoLocked() models.PromoState {
	return models.PromoState{
		Code:            s.form.PromoCode,
		DiscountPercent: s.discount,
		Applied:         s.promoApplied,
	}
}

func (s *Storefront) resetPromoLocked() {
	s.discount = 0
	s.promoApplied = false
	s.promoGen++
}

// Checkout stores the submitted form fields and settles the cart.
func (s *Storefront) Checkout(req models.CheckoutRequest) (models.CheckoutResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.form.DeliveryAddress = req.DeliveryAddress
	s.form.TipAmount = req.TipAmount
	if req.PaymentMethod != "" {
		s.form.PaymentMethod = req.PaymentMethod
	}

	if s.cart.IsEmpty() {
		return models.CheckoutResult{}, ErrEmptyCart
	}

	result, err := Checkout(CheckoutInput{
		DeliveryAddress: s.form.DeliveryAddress,
		TipAmount:       s.form.TipAmount,
		PaymentMethod:   s.form.PaymentMethod,
		WalletBalance:   s.wallet.Balance(),
		CartTotal:       s.cart.Total(),
		DiscountPercent: s.discount,
	})
	if err != nil {
		return models.CheckoutResult{}, err
	}

	s.wallet.settle(result.NewBalance)
	s.cart.Clear()
	s.form = models.CheckoutForm{PaymentMethod: s.form.PaymentMethod}
	s.resetPromoLocked()

	log.Printf("Order placed in session %s: total %d via %s", s.id, result.FinalTotal, result.PaymentMethod)
	return result, nil
}

// SendSupport forwards a message to the support endpoint. No session state is touched.
func (s *Storefront) SendSupport(ctx context.Context, message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return ErrSupportMessageEmpty
	}
	if err := s.deps.Support.Send(ctx, DefaultSupportUser, message); err != nil {
		log.Printf("Support message failed for session %s: %v", s.id, err)
		return fmt.Errorf("%w: %v", ErrNetworkFailure, err)
	}
	return nil
}

func (s *Storefront) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Storefront) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

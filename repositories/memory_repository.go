package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"fartburger/models"
)

// MemorySupportRepository backs the support inbox when no database is configured.
type MemorySupportRepository struct {
	mu       sync.Mutex
	messages []models.SupportMessage
	nextID   int
	now      func() time.Time
}

func NewMemorySupportRepository(seed []models.SupportMessage) *MemorySupportRepository {
	r := &MemorySupportRepository{nextID: 1, now: time.Now}
	for _, msg := range seed {
		r.messages = append(r.messages, msg)
		if msg.ID >= r.nextID {
			r.nextID = msg.ID + 1
		}
	}
	return r
}

func (r *MemorySupportRepository) Create(_ context.Context, userName, message string) (*models.SupportMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg := models.SupportMessage{
		ID:        r.nextID,
		UserName:  userName,
		Message:   message,
		Status:    models.MessagePending,
		CreatedAt: r.now(),
	}
	r.nextID++
	r.messages = append(r.messages, msg)
	return &msg, nil
}

func (r *MemorySupportRepository) FindAll(_ context.Context) ([]models.SupportMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.SupportMessage, len(r.messages))
	copy(out, r.messages)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemorySupportRepository) Respond(_ context.Context, id int, response string) (*models.SupportMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.messages {
		if r.messages[i].ID != id {
			continue
		}
		now := r.now()
		reply := response
		r.messages[i].AdminResponse = &reply
		r.messages[i].Status = models.MessageAnswered
		r.messages[i].RespondedAt = &now
		msg := r.messages[i]
		return &msg, nil
	}
	return nil, ErrNotFound
}

// MemoryPromoRepository is a fixed promo code table keyed by upper-cased code.
type MemoryPromoRepository struct {
	codes map[string]models.PromoCode
}

func NewMemoryPromoRepository(codes []models.PromoCode) *MemoryPromoRepository {
	r := &MemoryPromoRepository{codes: make(map[string]models.PromoCode, len(codes))}
	for _, c := range codes {
		r.codes[strings.ToUpper(c.Code)] = c
	}
	return r
}

func (r *MemoryPromoRepository) FindByCode(_ context.Context, code string) (*models.PromoCode, error) {
	promo, ok := r.codes[strings.ToUpper(code)]
	if !ok {
		return nil, ErrNotFound
	}
	return &promo, nil
}

func seedTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultSupportMessages is the inbox a fresh in-memory deployment starts with.
func DefaultSupportMessages() []models.SupportMessage {
	answer := "Обычно доставка занимает 30-45 минут в пределах города"
	responded := seedTime("2024-11-02T09:20:00Z")
	return []models.SupportMessage{
		{
			ID:        1,
			UserName:  "Иван",
			Message:   "Не могу оформить заказ, выдает ошибку при оплате",
			Status:    models.MessagePending,
			CreatedAt: seedTime("2024-11-02T10:30:00Z"),
		},
		{
			ID:            2,
			UserName:      "Мария",
			Message:       "Как долго доставка обычно занимает?",
			AdminResponse: &answer,
			Status:        models.MessageAnswered,
			CreatedAt:     seedTime("2024-11-02T09:15:00Z"),
			RespondedAt:   &responded,
		},
		{
			ID:        3,
			UserName:  "Гость",
			Message:   "Можно ли использовать несколько промокодов одновременно?",
			Status:    models.MessagePending,
			CreatedAt: seedTime("2024-11-02T11:00:00Z"),
		},
	}
}

// DefaultPromoCodes mirrors the rows inserted by the seed migration.
func DefaultPromoCodes() []models.PromoCode {
	return []models.PromoCode{
		{Code: "FART10", DiscountPercent: 10, Active: true},
		{Code: "BURGER20", DiscountPercent: 20, Active: true},
		{Code: "WELCOME5", DiscountPercent: 5, Active: true},
		{Code: "SUMMER50", DiscountPercent: 50, Active: false},
	}
}

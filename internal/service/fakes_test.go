package service

import (
	"context"
	"sync"

	"aventura-gamer-service/internal/mercadopago"
	"aventura-gamer-service/internal/model"
	"aventura-gamer-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

// Fakes en memoria para los tests de los servicios.

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*model.Order
	seq    []string // preserva el orden de inserción
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*model.Order{}}
}

func (f *fakeOrderRepo) Save(_ context.Context, o *model.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.orders[o.OrderID]; !ok {
		f.seq = append(f.seq, o.OrderID)
	}
	cp := *o
	f.orders[o.OrderID] = &cp
	return nil
}

func (f *fakeOrderRepo) FindByOrderID(_ context.Context, orderID string) (*model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[orderID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, orderID, newStatus string, record model.StatusRecord, extra bson.M) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[orderID]
	if !ok {
		return repository.ErrNotFound
	}
	o.ShippingStatus = newStatus
	o.History = append(o.History, record)
	if v, ok := extra["tracking_number"]; ok {
		o.TrackingNumber = v.(string)
	}
	return nil
}

func (f *fakeOrderRepo) all() []*model.Order {
	var out []*model.Order
	for _, id := range f.seq {
		out = append(out, f.orders[id])
	}
	return out
}

func (f *fakeOrderRepo) FindAll(_ context.Context) ([]*model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.all(), nil
}

func (f *fakeOrderRepo) FindByStatus(_ context.Context, st string) ([]*model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.Order
	for _, o := range f.all() {
		if o.ShippingStatus == st {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) FindByUserID(_ context.Context, userID string) ([]*model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.Order
	for _, o := range f.all() {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) CountByUserID(ctx context.Context, userID string) (int64, error) {
	orders, _ := f.FindByUserID(ctx, userID)
	return int64(len(orders)), nil
}

type fakeNotifier struct {
	mu     sync.Mutex
	events []string
}

func (f *fakeNotifier) OrderChanged(orderID, userID, newStatus string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, orderID+":"+newStatus)
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*model.UserProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]*model.UserProfile{}}
}

func (f *fakeProfileRepo) FindByUserID(_ context.Context, userID string) (*model.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) Save(_ context.Context, p *model.UserProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *p
	f.profiles[p.UserID] = &cp
	return nil
}

func (f *fakeProfileRepo) UpdatePoints(_ context.Context, userID string, points, level int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[userID]
	if !ok {
		return repository.ErrNotFound
	}
	p.Points = points
	p.Level = level
	return nil
}

type fakeAchievementRepo struct {
	mu     sync.Mutex
	defs   map[string]*model.Achievement
	claims map[string]map[string]bool // userID -> achievementID
}

func newFakeAchievementRepo() *fakeAchievementRepo {
	return &fakeAchievementRepo{
		defs:   map[string]*model.Achievement{},
		claims: map[string]map[string]bool{},
	}
}

func (f *fakeAchievementRepo) Save(_ context.Context, a *model.Achievement) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *a
	f.defs[a.AchievementID] = &cp
	return nil
}

func (f *fakeAchievementRepo) FindByID(_ context.Context, id string) (*model.Achievement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.defs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAchievementRepo) FindAll(_ context.Context) ([]*model.Achievement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.Achievement
	for _, a := range f.defs {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAchievementRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.defs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.defs, id)
	return nil
}

func (f *fakeAchievementRepo) FindClaimedIDs(_ context.Context, userID string) (map[string]bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := map[string]bool{}
	for id := range f.claims[userID] {
		out[id] = true
	}
	return out, nil
}

func (f *fakeAchievementRepo) InsertClaim(_ context.Context, claim model.AchievementClaim) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.claims[claim.UserID] == nil {
		f.claims[claim.UserID] = map[string]bool{}
	}
	if f.claims[claim.UserID][claim.AchievementID] {
		return repository.ErrDuplicate
	}
	f.claims[claim.UserID][claim.AchievementID] = true
	return nil
}

type fakePaymentRepo struct {
	mu   sync.Mutex
	seen map[string]bool
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{seen: map[string]bool{}}
}

func (f *fakePaymentRepo) InsertIfAbsent(_ context.Context, rec model.PaymentRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.seen[rec.PaymentID] {
		return repository.ErrDuplicate
	}
	f.seen[rec.PaymentID] = true
	return nil
}

type fakeCheckoutRepo struct {
	mu        sync.Mutex
	checkouts map[string]*model.Checkout
}

func newFakeCheckoutRepo() *fakeCheckoutRepo {
	return &fakeCheckoutRepo{checkouts: map[string]*model.Checkout{}}
}

func (f *fakeCheckoutRepo) Save(_ context.Context, c *model.Checkout) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *c
	f.checkouts[c.CheckoutID] = &cp
	return nil
}

func (f *fakeCheckoutRepo) FindByCheckoutID(_ context.Context, checkoutID string) (*model.Checkout, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.checkouts[checkoutID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

type fakeGateway struct {
	mu          sync.Mutex
	payments    map[string]*mercadopago.Payment
	preferences int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{payments: map[string]*mercadopago.Payment{}}
}

func (f *fakeGateway) CreatePreference(_ context.Context, pref mercadopago.PreferenceRequest, _ string) (*mercadopago.Preference, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.preferences++
	return &mercadopago.Preference{
		ID:        "pref-" + pref.ExternalReference,
		InitPoint: "https://mp.example/checkout/" + pref.ExternalReference,
	}, nil
}

func (f *fakeGateway) GetPayment(_ context.Context, paymentID string) (*mercadopago.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.payments[paymentID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

package services

import (
	"context"
	"sort"
	"time"

	"davetiye.store/models"
	"davetiye.store/pkg/queryparams"
	"davetiye.store/repositories"
	"davetiye.store/storage"
)

// --- In-memory fake repository'ler ---

type fakeInvitationRepo struct {
	invitations map[uint]*models.UserInvitation
	nextID      uint
	updates     []map[string]interface{}
	failWith    error
}

func newFakeInvitationRepo() *fakeInvitationRepo {
	return &fakeInvitationRepo{invitations: map[uint]*models.UserInvitation{}, nextID: 1}
}

func (f *fakeInvitationRepo) add(inv *models.UserInvitation) *models.UserInvitation {
	if inv.ID == 0 {
		inv.ID = f.nextID
		f.nextID++
	}
	f.invitations[inv.ID] = inv
	return inv
}

func (f *fakeInvitationRepo) Create(_ context.Context, inv *models.UserInvitation) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.add(inv)
	return nil
}

func (f *fakeInvitationRepo) FindByID(_ context.Context, id uint) (*models.UserInvitation, error) {
	inv, ok := f.invitations[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return inv, nil
}

func (f *fakeInvitationRepo) FindBySubdomain(_ context.Context, subdomain string) (*models.UserInvitation, error) {
	for _, inv := range f.invitations {
		if inv.Subdomain == subdomain {
			return inv, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeInvitationRepo) FindAllByUserID(_ context.Context, userID uint) ([]models.UserInvitation, error) {
	var out []models.UserInvitation
	for _, inv := range f.invitations {
		if inv.UserID == userID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (f *fakeInvitationRepo) SubdomainExists(_ context.Context, subdomain string) (bool, error) {
	for _, inv := range f.invitations {
		if inv.Subdomain == subdomain {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeInvitationRepo) Update(_ context.Context, id uint, data map[string]interface{}) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.invitations[id]; !ok {
		return repositories.ErrNotFound
	}
	f.updates = append(f.updates, data)
	return nil
}

func (f *fakeInvitationRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.invitations[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.invitations, id)
	return nil
}

type fakeRsvpRepo struct {
	rsvps    []models.Rsvp
	nextID   uint
	failWith error
}

func (f *fakeRsvpRepo) Create(_ context.Context, rsvp *models.Rsvp) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.nextID++
	rsvp.ID = f.nextID
	rsvp.CreatedAt = time.Now().Add(time.Duration(f.nextID) * time.Second)
	f.rsvps = append(f.rsvps, *rsvp)
	return nil
}

func (f *fakeRsvpRepo) FindByInvitationID(_ context.Context, invitationID uint) ([]models.Rsvp, error) {
	var out []models.Rsvp
	for _, r := range f.rsvps {
		if r.InvitationID == invitationID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type fakeProductRepo struct {
	products map[uint]*models.Product
	findAlls int
	findByID int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[uint]*models.Product{}}
}

func (f *fakeProductRepo) Create(_ context.Context, p *models.Product) error {
	if p.ID == 0 {
		p.ID = uint(len(f.products) + 1)
	}
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id uint) (*models.Product, error) {
	f.findByID++
	p, ok := f.products[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return p, nil
}

func (f *fakeProductRepo) FindAll(_ context.Context, filter repositories.ProductFilter) ([]models.Product, error) {
	f.findAlls++
	var out []models.Product
	for _, p := range f.products {
		if filter.OnlyActive && !p.IsActive {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProductRepo) FindAllPaginated(_ context.Context, _ queryparams.ListParams) ([]models.Product, int64, error) {
	var out []models.Product
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (f *fakeProductRepo) Update(_ context.Context, id uint, _ map[string]interface{}) error {
	if _, ok := f.products[id]; !ok {
		return repositories.ErrNotFound
	}
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.products[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.products, id)
	return nil
}

type fakeCartRepo struct {
	cart    *models.Cart
	cleared bool
}

func (f *fakeCartRepo) FindOrCreateByUserID(_ context.Context, userID uint) (*models.Cart, error) {
	if f.cart == nil {
		f.cart = &models.Cart{BaseModel: models.BaseModel{ID: 1}, UserID: userID}
	}
	return f.cart, nil
}

func (f *fakeCartRepo) AddItem(_ context.Context, _, productID uint, quantity int) error {
	f.cart.Items = append(f.cart.Items, models.CartItem{ProductID: productID, Quantity: quantity})
	return nil
}

func (f *fakeCartRepo) RemoveItem(_ context.Context, _, productID uint) error {
	for i, item := range f.cart.Items {
		if item.ProductID == productID {
			f.cart.Items = append(f.cart.Items[:i], f.cart.Items[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (f *fakeCartRepo) ClearItems(_ context.Context, _ uint) error {
	f.cleared = true
	f.cart.Items = nil
	return nil
}

type fakeOrderRepo struct {
	orders   map[uint]*models.Order
	nextID   uint
	statuses []models.OrderStatus
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[uint]*models.Order{}, nextID: 1}
}

func (f *fakeOrderRepo) add(o *models.Order) *models.Order {
	if o.ID == 0 {
		o.ID = f.nextID
		f.nextID++
	}
	f.orders[o.ID] = o
	return o
}

func (f *fakeOrderRepo) Create(_ context.Context, o *models.Order) error {
	f.add(o)
	for i := range o.Items {
		o.Items[i].ID = uint(100 + i)
	}
	return nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, id uint) (*models.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return o, nil
}

func (f *fakeOrderRepo) FindByOrderNumber(_ context.Context, orderNumber string) (*models.Order, error) {
	for _, o := range f.orders {
		if o.OrderNumber == orderNumber {
			return o, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeOrderRepo) FindAllByUserID(_ context.Context, userID uint) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) FindAllPaginated(_ context.Context, _ queryparams.ListParams) ([]models.Order, int64, error) {
	var out []models.Order
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id uint, status models.OrderStatus) error {
	o, ok := f.orders[id]
	if !ok {
		return repositories.ErrNotFound
	}
	o.Status = status
	f.statuses = append(f.statuses, status)
	return nil
}

type fakeAddressRepo struct {
	addresses map[uint]*models.Address
	nextID    uint
}

func newFakeAddressRepo() *fakeAddressRepo {
	return &fakeAddressRepo{addresses: map[uint]*models.Address{}, nextID: 1}
}

func (f *fakeAddressRepo) Create(_ context.Context, a *models.Address) error {
	a.ID = f.nextID
	f.nextID++
	f.addresses[a.ID] = a
	return nil
}

func (f *fakeAddressRepo) FindByID(_ context.Context, id uint) (*models.Address, error) {
	a, ok := f.addresses[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return a, nil
}

func (f *fakeAddressRepo) FindAllByUserID(_ context.Context, userID uint) ([]models.Address, error) {
	var out []models.Address
	for _, a := range f.addresses {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAddressRepo) CountByUserID(_ context.Context, userID uint) (int64, error) {
	var count int64
	for _, a := range f.addresses {
		if a.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeAddressRepo) Update(_ context.Context, id uint, _ map[string]interface{}) error {
	if _, ok := f.addresses[id]; !ok {
		return repositories.ErrNotFound
	}
	return nil
}

func (f *fakeAddressRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.addresses[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.addresses, id)
	return nil
}

// --- Diğer fake'ler ---

type fakeStorageProvider struct {
	lastPath string
	lastType string
	failWith error
}

func (f *fakeStorageProvider) SignUpload(_ context.Context, filePath, fileType string) (*storage.SignedUpload, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.lastPath = filePath
	f.lastType = fileType
	return &storage.SignedUpload{
		UploadURL: "https://upload.example.com/" + filePath,
		PublicURL: "https://cdn.example.com/" + filePath,
		FilePath:  filePath,
	}, nil
}

type fakeMailService struct {
	sent     []string
	failWith error
}

func (f *fakeMailService) SendOrderConfirmation(to string, _ *models.Order) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.sent = append(f.sent, to)
	return nil
}

// passthroughTx fake repo'ları transaction'mış gibi kullanan runner.
func passthroughTx(orders repositories.IOrderRepository, invitations repositories.IInvitationRepository, carts repositories.ICartRepository) txRunner {
	return func(_ context.Context, fn func(r txRepos) error) error {
		return fn(txRepos{orders: orders, invitations: invitations, carts: carts})
	}
}

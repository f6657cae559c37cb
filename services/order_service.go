package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"davetiye.store/configs/configslog"
	"davetiye.store/formschema"
	"davetiye.store/mail"
	"davetiye.store/models"
	"davetiye.store/payment"
	"davetiye.store/pkg/queryparams"
	"davetiye.store/repositories"
)

// OrderServiceError özel servis hataları.
type OrderServiceError string

func (e OrderServiceError) Error() string { return string(e) }

const (
	ErrOrderNotFound       OrderServiceError = "sipariş bulunamadı"
	ErrOrderEmptyCart      OrderServiceError = "sepet boş, sipariş oluşturulamaz"
	ErrOrderCreationFailed OrderServiceError = "sipariş oluşturulamadı"
	ErrOrderInvalidStatus  OrderServiceError = "geçersiz sipariş durumu"
	ErrOrderImmutable      OrderServiceError = "ödenmiş sipariş değiştirilemez"
)

// IOrderService sipariş işlemleri için arayüz.
type IOrderService interface {
	Checkout(ctx context.Context, userID uint) (*models.Order, error)
	GetMyOrders(ctx context.Context, userID uint) ([]models.Order, error)
	GetOrderByID(ctx context.Context, id uint, requestingUserID uint, isAdmin bool) (*models.Order, error)
	HandlePaymentEvent(ctx context.Context, event *payment.WebhookEvent) error
	GetAllOrdersPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateOrderStatus(ctx context.Context, id uint, status models.OrderStatus) error
}

// txRepos bir transaction'a bağlı repository kümesi.
type txRepos struct {
	orders      repositories.IOrderRepository
	invitations repositories.IInvitationRepository
	carts       repositories.ICartRepository
}

// txRunner verilen işi tek transaction içinde çalıştırır.
type txRunner func(ctx context.Context, fn func(r txRepos) error) error

// OrderService IOrderService arayüzünü uygular.
type OrderService struct {
	repo          repositories.IOrderRepository
	cartRepo      repositories.ICartRepository
	invitationSvc IInvitationService
	mailSvc       mail.IMailService
	runTx         txRunner
}

// NewOrderService bağımlılıkları ile bir OrderService oluşturur.
// db, checkout ve fulfillment adımlarının atomikliği için kullanılır.
func NewOrderService(
	db *gorm.DB,
	repo repositories.IOrderRepository,
	cartRepo repositories.ICartRepository,
	invitationSvc IInvitationService,
	mailSvc mail.IMailService,
) IOrderService {
	return &OrderService{
		repo:          repo,
		cartRepo:      cartRepo,
		invitationSvc: invitationSvc,
		mailSvc:       mailSvc,
		runTx: func(ctx context.Context, fn func(r txRepos) error) error {
			return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
				return fn(txRepos{
					orders:      repositories.NewOrderRepositoryTx(tx),
					invitations: repositories.NewInvitationRepositoryTx(tx),
					carts:       repositories.NewCartRepositoryTx(tx),
				})
			})
		},
	}
}

// Checkout kullanıcının sepetinden PENDING bir sipariş üretir.
// Kalem fiyatları sipariş anında snapshot'lanır; ödeme dış gateway'de
// tamamlanır, durum geçişini webhook sürer.
func (s *OrderService) Checkout(ctx context.Context, userID uint) (*models.Order, error) {
	cart, err := s.cartRepo.FindOrCreateByUserID(ctx, userID)
	if err != nil {
		return nil, ErrOrderCreationFailed
	}
	if len(cart.Items) == 0 {
		return nil, ErrOrderEmptyCart
	}

	order := &models.Order{
		UserID:      userID,
		OrderNumber: newOrderNumber(),
		Status:      models.OrderStatusPending,
		TotalAmount: decimal.Zero,
	}
	for _, item := range cart.Items {
		line := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		order.TotalAmount = order.TotalAmount.Add(line)
		order.Items = append(order.Items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.Product.Price,
		})
	}

	txErr := s.runTx(ctx, func(r txRepos) error {
		if err := r.orders.Create(ctx, order); err != nil {
			return err
		}
		return r.carts.ClearItems(ctx, cart.ID)
	})
	if txErr != nil {
		configslog.Log.Error("Checkout başarısız", zap.Uint("userID", userID), zap.Error(txErr))
		return nil, ErrOrderCreationFailed
	}

	configslog.SLog.Infof("Sipariş oluşturuldu: %s, tutar: %s", order.OrderNumber, order.TotalAmount.StringFixed(2))
	return order, nil
}

func (s *OrderService) GetMyOrders(ctx context.Context, userID uint) ([]models.Order, error) {
	return s.repo.FindAllByUserID(ctx, userID)
}

func (s *OrderService) GetOrderByID(ctx context.Context, id uint, requestingUserID uint, isAdmin bool) (*models.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if !isAdmin && order.UserID != requestingUserID {
		// Başkasının siparişi "yok" gibi davranır
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// HandlePaymentEvent imzası doğrulanmış webhook olayını siparişe uygular.
// payment.succeeded: PENDING → PAID, davetiye üreten kalemler fulfill
// edilir ve onay maili gönderilir. Zaten PAID olan sipariş için olay
// yoksayılır; gateway retry'ları bu sayede idempotenttir.
func (s *OrderService) HandlePaymentEvent(ctx context.Context, event *payment.WebhookEvent) error {
	order, err := s.repo.FindByOrderNumber(ctx, event.OrderNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	switch event.Type {
	case payment.EventPaymentSucceeded:
		if order.Status == models.OrderStatusPaid {
			configslog.SLog.Infof("Sipariş zaten PAID, olay yoksayıldı: %s", order.OrderNumber)
			return nil
		}
		if order.Status != models.OrderStatusPending {
			return fmt.Errorf("%w: %s siparişi %s durumunda", ErrOrderInvalidStatus, order.OrderNumber, order.Status)
		}
		return s.markPaidAndFulfill(ctx, order)

	case payment.EventPaymentFailed:
		if order.Status != models.OrderStatusPending {
			return nil
		}
		return s.repo.UpdateStatus(ctx, order.ID, models.OrderStatusFailed)

	case payment.EventPaymentCancelled:
		if order.Status != models.OrderStatusPending {
			return nil
		}
		return s.repo.UpdateStatus(ctx, order.ID, models.OrderStatusCancelled)

	default:
		configslog.SLog.Warnf("Bilinmeyen webhook olay tipi: %s", event.Type)
		return nil
	}
}

// markPaidAndFulfill siparişi PAID yapar ve davetiye üreten her kalem
// için bir UserInvitation oluşturur. Her davetiye tam olarak bir ödenmiş
// sipariş kalemine bağlanır; geçiş ve fulfillment tek transaction'dır.
func (s *OrderService) markPaidAndFulfill(ctx context.Context, order *models.Order) error {
	txErr := s.runTx(ctx, func(r txRepos) error {
		if err := r.orders.UpdateStatus(ctx, order.ID, models.OrderStatusPaid); err != nil {
			return err
		}

		for i := range order.Items {
			item := &order.Items[i]
			if !producesInvitation(item.Product) {
				continue
			}
			invitation, err := s.buildInvitation(ctx, order.UserID, item)
			if err != nil {
				return err
			}
			if err := r.invitations.Create(ctx, invitation); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		configslog.Log.Error("Sipariş fulfill edilemedi",
			zap.String("orderNumber", order.OrderNumber), zap.Error(txErr))
		return txErr
	}

	configslog.SLog.Infof("Sipariş ödendi ve fulfill edildi: %s", order.OrderNumber)

	// Mail hatası webhook akışını bloklamaz
	if s.mailSvc != nil && order.User.Email != "" {
		order.Status = models.OrderStatusPaid
		if err := s.mailSvc.SendOrderConfirmation(order.User.Email, order); err != nil {
			configslog.Log.Warn("Sipariş onay maili gönderilemedi",
				zap.String("orderNumber", order.OrderNumber), zap.Error(err))
		}
	}
	return nil
}

// producesInvitation kalemin kişiselleştirilebilir davetiye üretip
// üretmediğini söyler: teması olan her ürün davetiye üretir.
func producesInvitation(product models.Product) bool {
	return product.ThemeID != nil && *product.ThemeID != ""
}

func (s *OrderService) buildInvitation(ctx context.Context, userID uint, item *models.OrderItem) (*models.UserInvitation, error) {
	subdomain, err := s.invitationSvc.GenerateSubdomain(ctx, item.Product.Name)
	if err != nil {
		return nil, err
	}

	themeID := ""
	if item.Product.ThemeID != nil {
		themeID = *item.Product.ThemeID
	}
	formData, err := formschema.NewEnvelope(themeID, nil).Encode()
	if err != nil {
		return nil, err
	}

	invitation := &models.UserInvitation{
		UserID:      userID,
		Subdomain:   subdomain,
		Status:      models.InvitationStatusActive,
		OrderItemID: item.ID,
		FormData:    datatypes.JSON(formData),
	}
	// Ürünle gelen başlangıç tasarımı varsa kopyalanır
	if item.Product.DesignTemplate != nil {
		invitation.DesignData = item.Product.DesignTemplate.Document
	}
	return invitation, nil
}

// GetAllOrdersPaginated admin sipariş listesi.
func (s *OrderService) GetAllOrdersPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	orders, total, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data:       orders,
		Total:      total,
		Page:       params.Page,
		PerPage:    params.PerPage,
		TotalPages: queryparams.CalculateTotalPages(total, params.PerPage),
	}, nil
}

// UpdateOrderStatus admin durum güncellemesi. PAID sonrası yalnızca
// kargo/teslim geçişlerine izin verilir; sipariş içeriği hiç değişmez.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uint, status models.OrderStatus) error {
	if !status.Valid() {
		return ErrOrderInvalidStatus
	}
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	if order.Status == models.OrderStatusPaid &&
		status != models.OrderStatusShipped && status != models.OrderStatusDelivered {
		return ErrOrderImmutable
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func newOrderNumber() string {
	return "DVT-" + strings.ToUpper(uuid.NewString()[:13])
}

package services

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"davetiye.store/models"
	"davetiye.store/payment"
)

func newOrderServiceForTest(orders *fakeOrderRepo, carts *fakeCartRepo, invitations *fakeInvitationRepo, mailSvc *fakeMailService) *OrderService {
	return &OrderService{
		repo:          orders,
		cartRepo:      carts,
		invitationSvc: NewInvitationService(invitations),
		mailSvc:       mailSvc,
		runTx:         passthroughTx(orders, invitations, carts),
	}
}

func cartWith(items ...models.CartItem) *fakeCartRepo {
	return &fakeCartRepo{cart: &models.Cart{BaseModel: models.BaseModel{ID: 1}, UserID: 10, Items: items}}
}

func digitalProduct(id uint, name string, price int64, themeID string) models.Product {
	p := models.Product{
		BaseModel: models.BaseModel{ID: id},
		Name:      name,
		Category:  models.ProductCategoryDigital,
		Price:     decimal.NewFromInt(price),
		IsActive:  true,
	}
	if themeID != "" {
		p.ThemeID = &themeID
	}
	return p
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("boş sepet sipariş üretmez", func(t *testing.T) {
		service := newOrderServiceForTest(newFakeOrderRepo(), cartWith(), newFakeInvitationRepo(), &fakeMailService{})
		_, err := service.Checkout(ctx, 10)
		assert.ErrorIs(t, err, ErrOrderEmptyCart)
	})

	t.Run("tutar kalem fiyatlarından hesaplanır", func(t *testing.T) {
		wedding := digitalProduct(1, "Düğün Davetiyesi", 150, "WEDDING_V1")
		print3 := digitalProduct(2, "Baskı Paketi", 80, "")
		carts := cartWith(
			models.CartItem{ProductID: 1, Quantity: 2, Product: wedding},
			models.CartItem{ProductID: 2, Quantity: 1, Product: print3},
		)
		orders := newFakeOrderRepo()
		service := newOrderServiceForTest(orders, carts, newFakeInvitationRepo(), &fakeMailService{})

		order, err := service.Checkout(ctx, 10)
		require.NoError(t, err)
		assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(380)), "2x150 + 1x80 = 380, got %s", order.TotalAmount)
		assert.Equal(t, models.OrderStatusPending, order.Status)
		assert.True(t, strings.HasPrefix(order.OrderNumber, "DVT-"))
		require.Len(t, order.Items, 2)
		assert.True(t, order.Items[0].UnitPrice.Equal(wedding.Price), "birim fiyat snapshot'lanmalı")
	})

	t.Run("checkout sepeti boşaltır", func(t *testing.T) {
		carts := cartWith(models.CartItem{ProductID: 1, Quantity: 1, Product: digitalProduct(1, "Davetiye", 100, "")})
		service := newOrderServiceForTest(newFakeOrderRepo(), carts, newFakeInvitationRepo(), &fakeMailService{})

		_, err := service.Checkout(ctx, 10)
		require.NoError(t, err)
		assert.True(t, carts.cleared)
		assert.Empty(t, carts.cart.Items)
	})
}

func paidableOrder(orders *fakeOrderRepo, items ...models.OrderItem) *models.Order {
	for i := range items {
		items[i].ID = uint(100 + i)
	}
	return orders.add(&models.Order{
		UserID:      10,
		User:        models.User{Email: "musteri@example.com"},
		OrderNumber: "DVT-TEST0001",
		Status:      models.OrderStatusPending,
		Items:       items,
	})
}

func TestHandlePaymentSucceeded(t *testing.T) {
	ctx := context.Background()

	t.Run("PENDING sipariş PAID olur ve temalı kalemler fulfill edilir", func(t *testing.T) {
		orders := newFakeOrderRepo()
		invitations := newFakeInvitationRepo()
		mailSvc := &fakeMailService{}
		paidableOrder(orders,
			models.OrderItem{ProductID: 1, Quantity: 2, Product: digitalProduct(1, "Düğün Davetiyesi", 150, "WEDDING_V1")},
			models.OrderItem{ProductID: 2, Quantity: 1, Product: digitalProduct(2, "Baskı Paketi", 80, "")},
		)
		service := newOrderServiceForTest(orders, &fakeCartRepo{}, invitations, mailSvc)

		err := service.HandlePaymentEvent(ctx, &payment.WebhookEvent{
			Type: payment.EventPaymentSucceeded, OrderNumber: "DVT-TEST0001",
		})
		require.NoError(t, err)
		assert.Equal(t, []models.OrderStatus{models.OrderStatusPaid}, orders.statuses)

		// Temalı kalem başına tam bir davetiye; temasız kalem davetiye üretmez
		require.Len(t, invitations.invitations, 1)
		for _, inv := range invitations.invitations {
			assert.Equal(t, uint(10), inv.UserID)
			assert.Equal(t, models.InvitationStatusActive, inv.Status)
			assert.NotEmpty(t, inv.Subdomain)
			assert.NotEmpty(t, inv.FormData, "boş şema zarfı yazılmış olmalı")
		}

		assert.Equal(t, []string{"musteri@example.com"}, mailSvc.sent)
	})

	t.Run("ürünün başlangıç tasarımı davetiyeye kopyalanır", func(t *testing.T) {
		document := datatypes.JSON(`{"version":"5.3.0","objects":[{"type":"text","text":"Davetlisiniz"}]}`)
		product := digitalProduct(1, "Düğün Davetiyesi", 150, "WEDDING_V1")
		product.DesignTemplate = &models.DesignTemplate{
			BaseModel: models.BaseModel{ID: 5},
			Name:      "Klasik Düğün Düzeni",
			Document:  document,
		}
		orders := newFakeOrderRepo()
		invitations := newFakeInvitationRepo()
		paidableOrder(orders, models.OrderItem{ProductID: 1, Quantity: 1, Product: product})
		service := newOrderServiceForTest(orders, &fakeCartRepo{}, invitations, &fakeMailService{})

		err := service.HandlePaymentEvent(ctx, &payment.WebhookEvent{
			Type: payment.EventPaymentSucceeded, OrderNumber: "DVT-TEST0001",
		})
		require.NoError(t, err)

		require.Len(t, invitations.invitations, 1)
		for _, inv := range invitations.invitations {
			assert.Equal(t, document, inv.DesignData)
		}
	})

	t.Run("zaten PAID sipariş için olay yoksayılır", func(t *testing.T) {
		orders := newFakeOrderRepo()
		invitations := newFakeInvitationRepo()
		order := paidableOrder(orders, models.OrderItem{ProductID: 1, Quantity: 1, Product: digitalProduct(1, "Davetiye", 100, "WEDDING_V1")})
		order.Status = models.OrderStatusPaid
		service := newOrderServiceForTest(orders, &fakeCartRepo{}, invitations, &fakeMailService{})

		err := service.HandlePaymentEvent(ctx, &payment.WebhookEvent{
			Type: payment.EventPaymentSucceeded, OrderNumber: "DVT-TEST0001",
		})
		assert.NoError(t, err, "gateway retry'ı idempotent olmalı")
		assert.Empty(t, invitations.invitations, "yeniden fulfillment olmamalı")
		assert.Empty(t, orders.statuses)
	})

	t.Run("CANCELLED siparişe succeeded uygulanamaz", func(t *testing.T) {
		orders := newFakeOrderRepo()
		order := paidableOrder(orders)
		order.Status = models.OrderStatusCancelled
		service := newOrderServiceForTest(orders, &fakeCartRepo{}, newFakeInvitationRepo(), &fakeMailService{})

		err := service.HandlePaymentEvent(ctx, &payment.WebhookEvent{
			Type: payment.EventPaymentSucceeded, OrderNumber: "DVT-TEST0001",
		})
		assert.ErrorIs(t, err, ErrOrderInvalidStatus)
	})

	t.Run("bilinmeyen sipariş numarası", func(t *testing.T) {
		service := newOrderServiceForTest(newFakeOrderRepo(), &fakeCartRepo{}, newFakeInvitationRepo(), &fakeMailService{})
		err := service.HandlePaymentEvent(ctx, &payment.WebhookEvent{
			Type: payment.EventPaymentSucceeded, OrderNumber: "DVT-YOK",
		})
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("mail hatası akışı bozmaz", func(t *testing.T) {
		orders := newFakeOrderRepo()
		paidableOrder(orders, models.OrderItem{ProductID: 1, Quantity: 1, Product: digitalProduct(1, "Davetiye", 100, "WEDDING_V1")})
		mailSvc := &fakeMailService{failWith: assert.AnError}
		service := newOrderServiceForTest(orders, &fakeCartRepo{}, newFakeInvitationRepo(), mailSvc)

		err := service.HandlePaymentEvent(ctx, &payment.WebhookEvent{
			Type: payment.EventPaymentSucceeded, OrderNumber: "DVT-TEST0001",
		})
		assert.NoError(t, err)
	})
}

func TestHandlePaymentFailedAndCancelled(t *testing.T) {
	ctx := context.Background()

	t.Run("failed PENDING siparişi FAILED yapar", func(t *testing.T) {
		orders := newFakeOrderRepo()
		paidableOrder(orders)
		service := newOrderServiceForTest(orders, &fakeCartRepo{}, newFakeInvitationRepo(), &fakeMailService{})

		err := service.HandlePaymentEvent(ctx, &payment.WebhookEvent{
			Type: payment.EventPaymentFailed, OrderNumber: "DVT-TEST0001",
		})
		require.NoError(t, err)
		assert.Equal(t, []models.OrderStatus{models.OrderStatusFailed}, orders.statuses)
	})

	t.Run("PAID siparişe failed dokunmaz", func(t *testing.T) {
		orders := newFakeOrderRepo()
		order := paidableOrder(orders)
		order.Status = models.OrderStatusPaid
		service := newOrderServiceForTest(orders, &fakeCartRepo{}, newFakeInvitationRepo(), &fakeMailService{})

		err := service.HandlePaymentEvent(ctx, &payment.WebhookEvent{
			Type: payment.EventPaymentFailed, OrderNumber: "DVT-TEST0001",
		})
		require.NoError(t, err)
		assert.Empty(t, orders.statuses)
	})

	t.Run("cancelled PENDING siparişi CANCELLED yapar", func(t *testing.T) {
		orders := newFakeOrderRepo()
		paidableOrder(orders)
		service := newOrderServiceForTest(orders, &fakeCartRepo{}, newFakeInvitationRepo(), &fakeMailService{})

		err := service.HandlePaymentEvent(ctx, &payment.WebhookEvent{
			Type: payment.EventPaymentCancelled, OrderNumber: "DVT-TEST0001",
		})
		require.NoError(t, err)
		assert.Equal(t, []models.OrderStatus{models.OrderStatusCancelled}, orders.statuses)
	})

	t.Run("bilinmeyen olay tipi sessizce yoksayılır", func(t *testing.T) {
		orders := newFakeOrderRepo()
		paidableOrder(orders)
		service := newOrderServiceForTest(orders, &fakeCartRepo{}, newFakeInvitationRepo(), &fakeMailService{})

		err := service.HandlePaymentEvent(ctx, &payment.WebhookEvent{
			Type: payment.EventType("payment.refunded"), OrderNumber: "DVT-TEST0001",
		})
		assert.NoError(t, err)
		assert.Empty(t, orders.statuses)
	})
}

func TestGetOrderByIDOwnership(t *testing.T) {
	ctx := context.Background()
	orders := newFakeOrderRepo()
	paidableOrder(orders)
	service := newOrderServiceForTest(orders, &fakeCartRepo{}, newFakeInvitationRepo(), &fakeMailService{})

	t.Run("sahibi görür", func(t *testing.T) {
		order, err := service.GetOrderByID(ctx, 1, 10, false)
		require.NoError(t, err)
		assert.Equal(t, "DVT-TEST0001", order.OrderNumber)
	})

	t.Run("başkasının siparişi yok gibi davranır", func(t *testing.T) {
		_, err := service.GetOrderByID(ctx, 1, 99, false)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("admin herkesinkini görür", func(t *testing.T) {
		_, err := service.GetOrderByID(ctx, 1, 99, true)
		assert.NoError(t, err)
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("PAID sonrası sadece kargo geçişleri", func(t *testing.T) {
		orders := newFakeOrderRepo()
		order := paidableOrder(orders)
		order.Status = models.OrderStatusPaid
		service := newOrderServiceForTest(orders, &fakeCartRepo{}, newFakeInvitationRepo(), &fakeMailService{})

		assert.ErrorIs(t, service.UpdateOrderStatus(ctx, 1, models.OrderStatusPending), ErrOrderImmutable)
		assert.ErrorIs(t, service.UpdateOrderStatus(ctx, 1, models.OrderStatusCancelled), ErrOrderImmutable)
		assert.NoError(t, service.UpdateOrderStatus(ctx, 1, models.OrderStatusShipped))
		assert.NoError(t, service.UpdateOrderStatus(ctx, 1, models.OrderStatusDelivered))
	})

	t.Run("geçersiz durum reddedilir", func(t *testing.T) {
		orders := newFakeOrderRepo()
		paidableOrder(orders)
		service := newOrderServiceForTest(orders, &fakeCartRepo{}, newFakeInvitationRepo(), &fakeMailService{})

		assert.ErrorIs(t, service.UpdateOrderStatus(ctx, 1, models.OrderStatus("KAYIP")), ErrOrderInvalidStatus)
	})
}

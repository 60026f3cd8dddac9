package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Gunvolt24/shop_backend/internal/domain"
	"github.com/Gunvolt24/shop_backend/internal/ports/mocks"
	"github.com/Gunvolt24/shop_backend/internal/usecase"
	"github.com/golang/mock/gomock"
)

func TestPlace_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	orders := mocks.NewMockOrderRepository(ctrl)
	customers := mocks.NewMockCustomerRepository(ctrl)
	publisher := mocks.NewMockOrderEventPublisher(ctrl)

	gomock.InOrder(
		customers.EXPECT().IDByUsername(gomock.Any(), custUsername).Return(int64(7), nil),
		orders.EXPECT().Add(gomock.Any(), int64(7)).Return(int64(42), nil),
		publisher.EXPECT().PublishOrderCreated(gomock.Any(), gomock.AssignableToTypeOf(domain.OrderCreatedEvent{})).
			DoAndReturn(func(_ context.Context, e domain.OrderCreatedEvent) error {
				if e.OrderID != 42 || e.CustomerID != 7 {
					t.Fatalf("unexpected event: %+v", e)
				}
				return nil
			}),
	)

	svc := usecase.NewOrderService(orders, customers, publisher, noopLogger{})

	id, err := svc.Place(context.Background(), custUsername)
	if err != nil || id != 42 {
		t.Fatalf("want id=42, got id=%d err=%v", id, err)
	}
}

func TestPlace_UnknownCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)

	orders := mocks.NewMockOrderRepository(ctrl)
	customers := mocks.NewMockCustomerRepository(ctrl)
	publisher := mocks.NewMockOrderEventPublisher(ctrl)

	customers.EXPECT().IDByUsername(gomock.Any(), "ghost").Return(int64(0), domain.ErrInvalidCustomer)
	orders.EXPECT().Add(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewOrderService(orders, customers, publisher, noopLogger{})

	_, err := svc.Place(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrInvalidCustomer) {
		t.Fatalf("want ErrInvalidCustomer, got %v", err)
	}
}

func TestPlace_PublishFailureDoesNotFailOrder(t *testing.T) {
	ctrl := gomock.NewController(t)

	orders := mocks.NewMockOrderRepository(ctrl)
	customers := mocks.NewMockCustomerRepository(ctrl)
	publisher := mocks.NewMockOrderEventPublisher(ctrl)

	customers.EXPECT().IDByUsername(gomock.Any(), custUsername).Return(int64(7), nil)
	orders.EXPECT().Add(gomock.Any(), int64(7)).Return(int64(42), nil)
	publisher.EXPECT().PublishOrderCreated(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	svc := usecase.NewOrderService(orders, customers, publisher, noopLogger{})

	id, err := svc.Place(context.Background(), custUsername)
	if err != nil || id != 42 {
		t.Fatalf("order must survive broker failure, got id=%d err=%v", id, err)
	}
}

func TestGet_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	orders := mocks.NewMockOrderRepository(ctrl)
	customers := mocks.NewMockCustomerRepository(ctrl)
	publisher := mocks.NewMockOrderEventPublisher(ctrl)

	stored := &domain.Order{ID: 42, CustomerID: 7}

	gomock.InOrder(
		customers.EXPECT().IDByUsername(gomock.Any(), custUsername).Return(int64(7), nil),
		orders.EXPECT().IsValid(gomock.Any(), int64(7), int64(42)).Return(true, nil),
		orders.EXPECT().GetByID(gomock.Any(), int64(42)).Return(stored, nil),
	)

	svc := usecase.NewOrderService(orders, customers, publisher, noopLogger{})

	got, err := svc.Get(context.Background(), custUsername, 42)
	if err != nil || got == nil || got.ID != 42 {
		t.Fatalf("want order 42, got order=%+v err=%v", got, err)
	}
}

func TestGet_ForeignOrder(t *testing.T) {
	ctrl := gomock.NewController(t)

	orders := mocks.NewMockOrderRepository(ctrl)
	customers := mocks.NewMockCustomerRepository(ctrl)
	publisher := mocks.NewMockOrderEventPublisher(ctrl)

	customers.EXPECT().IDByUsername(gomock.Any(), custUsername).Return(int64(7), nil)
	orders.EXPECT().IsValid(gomock.Any(), int64(7), int64(42)).Return(false, nil)
	orders.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewOrderService(orders, customers, publisher, noopLogger{})

	_, err := svc.Get(context.Background(), custUsername, 42)
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("want ErrOrderNotFound, got %v", err)
	}
}

func TestGet_DeletedBetweenChecks(t *testing.T) {
	ctrl := gomock.NewController(t)

	orders := mocks.NewMockOrderRepository(ctrl)
	customers := mocks.NewMockCustomerRepository(ctrl)
	publisher := mocks.NewMockOrderEventPublisher(ctrl)

	customers.EXPECT().IDByUsername(gomock.Any(), custUsername).Return(int64(7), nil)
	orders.EXPECT().IsValid(gomock.Any(), int64(7), int64(42)).Return(true, nil)
	orders.EXPECT().GetByID(gomock.Any(), int64(42)).Return(nil, nil)

	svc := usecase.NewOrderService(orders, customers, publisher, noopLogger{})

	_, err := svc.Get(context.Background(), custUsername, 42)
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("want ErrOrderNotFound, got %v", err)
	}
}

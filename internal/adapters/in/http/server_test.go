package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "storefront/internal/adapters/in/http"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/rider"
	"storefront/internal/generated/servers"
	"storefront/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

type handlerFunc[In, Out any] func(ctx context.Context, in In) (Out, error)

func (f handlerFunc[In, Out]) Handle(ctx context.Context, in In) (Out, error) {
	return f(ctx, in)
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRouter(t *testing.T, handlers httpadapter.Handlers) *echo.Echo {
	t.Helper()
	e, err := httpadapter.NewRouter(httpadapter.NewServer(handlers, discard()), secret, discard())
	require.NoError(t, err)
	return e
}

func bearer(t *testing.T, role string, subject kernel.UUID) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, httpadapter.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return "Bearer " + signed
}

func do(e *echo.Echo, method, path, auth, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if auth != "" {
		req.Header.Set(echo.HeaderAuthorization, auth)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()
	var body servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func sampleOrder(t *testing.T, owner kernel.UUID) *order.Order {
	t.Helper()
	price, err := kernel.NewMoney(decimal.RequireFromString("12.50"))
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Margherita", 2, price)
	require.NoError(t, err)
	delivery, err := order.NewDelivery(order.HomeDelivery, "12 Baker St", "+15550100")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), owner, []order.Item{item}, delivery, order.Card, time.Now().UTC())
	require.NoError(t, err)
	return o
}

func TestHealth_IsPublic(t *testing.T) {
	rec := do(newRouter(t, httpadapter.Handlers{}), http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestSwaggerDoc_IsServed(t *testing.T) {
	rec := do(newRouter(t, httpadapter.Handlers{}), http.MethodGet, "/swagger/doc.json", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Storefront orders")
}

func TestAPI_RequiresBearerToken(t *testing.T) {
	e := newRouter(t, httpadapter.Handlers{})

	rec := do(e, http.MethodGet, "/api/v1/orders/my", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(e, http.MethodGet, "/api/v1/orders/my", bearer(t, "guest", kernel.NewUUID()), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateOrder_CallerBecomesOwner(t *testing.T) {
	customer := kernel.NewUUID()
	var received commands.CreateOrderCommand

	e := newRouter(t, httpadapter.Handlers{
		CreateOrder: handlerFunc[commands.CreateOrderCommand, *order.Order](
			func(_ context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
				received = cmd
				return order.NewOrder(cmd.OrderID(), cmd.OwnerID(), cmd.Items(), cmd.Delivery(), cmd.PaymentMethod(), time.Now())
			}),
	})

	body := `{
		"items": [{"productId": "` + kernel.NewUUID().String() + `", "name": "Margherita", "quantity": 2, "unitPrice": "12.50"}],
		"delivery": {"type": "home", "address": "12 Baker St", "contactPhone": "+15550100"}
	}`
	rec := do(e, http.MethodPost, "/api/v1/orders", bearer(t, "customer", customer), body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	assert.Equal(t, customer, received.OwnerID())
	assert.Equal(t, order.CashOnDelivery, received.PaymentMethod())

	var created servers.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, servers.OrderStatusPending, created.Status)
	assert.Equal(t, "25.00", created.Total)
	assert.Equal(t, customer.String(), created.OwnerId.String())
	require.Len(t, created.Items, 1)
	assert.Equal(t, "12.50", created.Items[0].UnitPrice)
}

func TestCreateOrder_RejectedByContract(t *testing.T) {
	e := newRouter(t, httpadapter.Handlers{})

	body := `{
		"items": [{"productId": "` + kernel.NewUUID().String() + `", "name": "Margherita", "quantity": 0, "unitPrice": "12.50"}],
		"delivery": {"type": "home", "address": "12 Baker St", "contactPhone": "+15550100"}
	}`
	rec := do(e, http.MethodPost, "/api/v1/orders", bearer(t, "customer", kernel.NewUUID()), body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, http.StatusBadRequest, decodeError(t, rec).Code)
}

func TestCreateOrder_RejectsUnstorablePrice(t *testing.T) {
	called := false
	e := newRouter(t, httpadapter.Handlers{
		CreateOrder: handlerFunc[commands.CreateOrderCommand, *order.Order](
			func(context.Context, commands.CreateOrderCommand) (*order.Order, error) {
				called = true
				return nil, nil
			}),
	})

	body := `{
		"items": [{"productId": "` + kernel.NewUUID().String() + `", "name": "Yacht", "quantity": 1, "unitPrice": "10000000000.00"}],
		"delivery": {"type": "pickup", "contactPhone": "+15550100"}
	}`
	rec := do(e, http.MethodPost, "/api/v1/orders", bearer(t, "customer", kernel.NewUUID()), body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called)
}

func TestCreateOrder_HomeDeliveryNeedsAddress(t *testing.T) {
	e := newRouter(t, httpadapter.Handlers{})

	body := `{
		"items": [{"productId": "` + kernel.NewUUID().String() + `", "name": "Margherita", "quantity": 1, "unitPrice": "12.50"}],
		"delivery": {"type": "home", "contactPhone": "+15550100"}
	}`
	rec := do(e, http.MethodPost, "/api/v1/orders", bearer(t, "customer", kernel.NewUUID()), body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetOrders_AdminOnly(t *testing.T) {
	var received queries.GetOrdersQuery
	e := newRouter(t, httpadapter.Handlers{
		GetOrders: handlerFunc[queries.GetOrdersQuery, []queries.OrderView](
			func(_ context.Context, q queries.GetOrdersQuery) ([]queries.OrderView, error) {
				received = q
				return []queries.OrderView{}, nil
			}),
	})

	rec := do(e, http.MethodGet, "/api/v1/orders?status=paid&status=out_for_delivery", bearer(t, "rider", kernel.NewUUID()), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(e, http.MethodGet, "/api/v1/orders?status=paid&status=out_for_delivery", bearer(t, "admin", kernel.NewUUID()), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, []order.Status{order.Paid, order.OutForDelivery}, received.Statuses())
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = do(e, http.MethodGet, "/api/v1/orders?status=lost", bearer(t, "admin", kernel.NewUUID()), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetMyOrders_UsesCaller(t *testing.T) {
	customer := kernel.NewUUID()
	view := queries.OrderView{ID: kernel.NewUUID(), OwnerID: customer, Status: order.Paid, Total: kernel.ZeroMoney()}

	e := newRouter(t, httpadapter.Handlers{
		GetOrders: handlerFunc[queries.GetOrdersQuery, []queries.OrderView](
			func(_ context.Context, q queries.GetOrdersQuery) ([]queries.OrderView, error) {
				require.NotNil(t, q.OwnerID())
				assert.Equal(t, customer, *q.OwnerID())
				return []queries.OrderView{view}, nil
			}),
	})

	rec := do(e, http.MethodGet, "/api/v1/orders/my", bearer(t, "customer", customer), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []servers.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, servers.OrderStatusPaid, listed[0].Status)
}

func TestPayOrder_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", errs.NewObjectNotFoundError("order", "x"), http.StatusNotFound},
		{"lost race", errs.NewVersionIsInvalidError("order", 3), http.StatusConflict},
		{"already paid", order.ErrAlreadyPaid, http.StatusBadRequest},
		{"not owner", commands.ErrNotOrderOwner, http.StatusForbidden},
		{"infrastructure", io.ErrUnexpectedEOF, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newRouter(t, httpadapter.Handlers{
				MarkOrderPaid: handlerFunc[commands.MarkOrderPaidCommand, *order.Order](
					func(context.Context, commands.MarkOrderPaidCommand) (*order.Order, error) {
						return nil, tt.err
					}),
			})

			path := "/api/v1/orders/" + kernel.NewUUID().String() + "/pay"
			rec := do(e, http.MethodPut, path, bearer(t, "customer", kernel.NewUUID()), "")
			assert.Equal(t, tt.want, rec.Code)
			assert.Equal(t, tt.want, decodeError(t, rec).Code)
		})
	}
}

func TestPayOrder_InvalidPathParameter(t *testing.T) {
	rec := do(newRouter(t, httpadapter.Handlers{}), http.MethodPut, "/api/v1/orders/not-a-uuid/pay", bearer(t, "admin", kernel.NewUUID()), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateOrderStatus_PassesActorAndTarget(t *testing.T) {
	admin := kernel.NewUUID()
	o := sampleOrder(t, kernel.NewUUID())

	e := newRouter(t, httpadapter.Handlers{
		UpdateOrderStatus: handlerFunc[commands.UpdateOrderStatusCommand, *order.Order](
			func(_ context.Context, cmd commands.UpdateOrderStatusCommand) (*order.Order, error) {
				assert.Equal(t, commands.Actor{Role: commands.RoleAdmin, ID: admin}, cmd.Actor())
				if cmd.Target() == order.OutForDelivery {
					return nil, commands.ErrNoRiderAvailable
				}
				_, err := o.ChangeStatus(cmd.Target(), time.Now())
				return o, err
			}),
	})

	path := "/api/v1/orders/" + o.ID().String() + "/status"

	rec := do(e, http.MethodPut, path, bearer(t, "admin", admin), `{"status": "out_for_delivery"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(e, http.MethodPut, path, bearer(t, "admin", admin), `{"status": "delivered"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "pending -> delivered")

	rec = do(e, http.MethodPut, path, bearer(t, "admin", admin), `{"status": "cancelled"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated servers.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, servers.OrderStatusCancelled, updated.Status)
}

func TestRiderActions(t *testing.T) {
	riderID := kernel.NewUUID()
	replacement := kernel.NewUUID()
	o := sampleOrder(t, kernel.NewUUID())
	require.NoError(t, o.MarkPaid(time.Now()))
	require.NoError(t, o.AssignRider(riderID, time.Now()))

	e := newRouter(t, httpadapter.Handlers{
		AcceptDelivery: handlerFunc[commands.AcceptDeliveryCommand, *order.Order](
			func(_ context.Context, cmd commands.AcceptDeliveryCommand) (*order.Order, error) {
				return o, o.Accept(cmd.RiderID(), time.Now())
			}),
		RejectDelivery: handlerFunc[commands.RejectDeliveryCommand, *order.Order](
			func(_ context.Context, cmd commands.RejectDeliveryCommand) (*order.Order, error) {
				return o, o.ReassignRider(cmd.RiderID(), replacement, time.Now())
			}),
	})

	path := "/api/v1/rider/orders/" + o.ID().String()

	rec := do(e, http.MethodPut, path+"/accept", bearer(t, "rider", kernel.NewUUID()), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(e, http.MethodPut, path+"/accept", bearer(t, "customer", riderID), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(e, http.MethodPut, path+"/accept", bearer(t, "rider", riderID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	var accepted servers.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &accepted))
	require.NotNil(t, accepted.Delivery.RiderId)
	assert.Equal(t, riderID.String(), accepted.Delivery.RiderId.String())
	assert.NotNil(t, accepted.Delivery.AcceptedAt)

	rec = do(e, http.MethodPut, path+"/reject", bearer(t, "rider", riderID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	var reassigned servers.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reassigned))
	require.NotNil(t, reassigned.Delivery.RiderId)
	assert.Equal(t, replacement.String(), reassigned.Delivery.RiderId.String())
	assert.Nil(t, reassigned.Delivery.AcceptedAt)
}

func TestGetRiderOrders_ScopedToCaller(t *testing.T) {
	riderID := kernel.NewUUID()
	e := newRouter(t, httpadapter.Handlers{
		GetRiderOrders: handlerFunc[queries.GetRiderOrdersQuery, []queries.OrderView](
			func(_ context.Context, q queries.GetRiderOrdersQuery) ([]queries.OrderView, error) {
				assert.Equal(t, riderID, q.RiderID())
				assert.Equal(t, []order.Status{order.OutForDelivery}, q.Statuses())
				return nil, nil
			}),
	})

	rec := do(e, http.MethodGet, "/api/v1/rider/orders?status=out_for_delivery", bearer(t, "rider", riderID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestRiders_AdminProvisioningAndListing(t *testing.T) {
	e := newRouter(t, httpadapter.Handlers{
		CreateRider: handlerFunc[commands.CreateRiderCommand, *rider.Rider](
			func(_ context.Context, cmd commands.CreateRiderCommand) (*rider.Rider, error) {
				return rider.NewRider(cmd.RiderID(), cmd.Name(), cmd.Phone())
			}),
		GetAllRiders: handlerFunc[queries.GetAllRidersQuery, []queries.GetAllRidersQueryResponse](
			func(context.Context, queries.GetAllRidersQuery) ([]queries.GetAllRidersQueryResponse, error) {
				return []queries.GetAllRidersQueryResponse{
					{ID: kernel.NewUUID(), Name: "Ana", Phone: "+15550101", ActiveOrders: 2},
				}, nil
			}),
	})
	admin := bearer(t, "admin", kernel.NewUUID())

	rec := do(e, http.MethodPost, "/api/v1/riders", admin, `{"name": "Ana", "phone": "+15550101"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created servers.Rider
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Ana", created.Name)
	assert.True(t, created.Available)

	rec = do(e, http.MethodPost, "/api/v1/riders", bearer(t, "customer", kernel.NewUUID()), `{"name": "Ana", "phone": "+15550101"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(e, http.MethodGet, "/api/v1/riders", admin, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []servers.Rider
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, 2, listed[0].ActiveOrders)
}

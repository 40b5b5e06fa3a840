package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pizzeriahttp "pizzeria/internal/adapters/in/http"
	"pizzeria/internal/adapters/out/inmem"
	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/actor"
	"pizzeria/internal/core/domain/model/auditlog"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/core/ports"
)

var testSecret = []byte("test-signing-secret")

type funcOrderUoWFactory func() commands.OrderUoW

func (f funcOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type funcUoWFactory func() commands.UoW

func (f funcUoWFactory) Create() commands.UoW {
	return f()
}

type staticSettings struct {
	settings ports.StoreSettings
}

func (s staticSettings) Settings(_ context.Context) ports.StoreSettings {
	return s.settings
}

// noopDispatcher satisfies ports.NotificationDispatcher without side effects.
type noopDispatcher struct{}

func (noopDispatcher) DispatchOrderPlaced(context.Context, *order.Order) bool { return true }

func (noopDispatcher) DispatchOrderStatusChanged(context.Context, *order.Order) bool { return true }

type testEnv struct {
	echo   *echo.Echo
	orders *inmem.InMemoryOrderRepository
	audit  *inmem.InMemoryAuditRepository
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	orders := inmem.NewInMemoryOrderRepository()
	audit := inmem.NewInMemoryAuditRepository()
	uowFactory := inmem.NewInMemoryUnitOfWorkFactory(orders, audit)

	orderFactory := funcOrderUoWFactory(func() commands.OrderUoW {
		return uowFactory.Create()
	})
	auditedFactory := funcUoWFactory(func() commands.UoW {
		return uowFactory.Create()
	})

	settings := staticSettings{settings: ports.StoreSettings{
		SendCustomerNotifications: false,
		DefaultDeliveryFee:        kernel.NewMoneyFromCents(399),
	}}
	dispatcher := noopDispatcher{}
	policy := services.NewAccessPolicy()

	server := pizzeriahttp.NewServer(
		commands.NewPlaceOrderCommandHandler(orderFactory, settings, dispatcher),
		commands.NewChangeOrderStatusCommandHandler(auditedFactory, policy, dispatcher),
		commands.NewRemoveOrderCommandHandler(auditedFactory, policy),
		queries.NewGetOrderQueryHandler(orders, policy),
		queries.NewListOrdersQueryHandler(orders, policy),
		queries.NewListAuditEntriesQueryHandler(nil, policy),
	)

	e := echo.New()
	server.RegisterRoutes(e, testSecret)

	return testEnv{echo: e, orders: orders, audit: audit}
}

func tokenFor(t *testing.T, userID kernel.UUID, role actor.Role) string {
	t.Helper()

	token, err := pizzeriahttp.GenerateToken(testSecret, userID, role, time.Hour)
	require.NoError(t, err)
	return token
}

func doRequest(env testEnv, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)
	return rec
}

func placeOrderBody(deliveryAddress string) pizzeriahttp.PlaceOrderRequest {
	return pizzeriahttp.PlaceOrderRequest{
		Items: []pizzeriahttp.LineItemRequest{
			{ID: "margherita", Name: "Margherita", UnitPrice: 12.50, Quantity: 2},
		},
		PaymentMethod:   "card",
		DeliveryAddress: deliveryAddress,
	}
}

func decodeOrder(t *testing.T, rec *httptest.ResponseRecorder) pizzeriahttp.OrderResponse {
	t.Helper()

	var resp pizzeriahttp.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestServer_Health(t *testing.T) {
	env := newTestEnv(t)

	rec := doRequest(env, stdhttp.MethodGet, "/health", "", nil)

	assert.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServer_PlaceOrder_GuestOrder(t *testing.T) {
	env := newTestEnv(t)

	rec := doRequest(env, stdhttp.MethodPost, "/api/v1/orders", "", placeOrderBody("12 Via Roma"))

	require.Equal(t, stdhttp.StatusCreated, rec.Code)
	resp := decodeOrder(t, rec)
	assert.Nil(t, resp.OwnerID)
	assert.Equal(t, "pending", resp.Status)
	assert.InDelta(t, 25.00, resp.Subtotal, 0.001)
	assert.InDelta(t, 3.99, resp.DeliveryFee, 0.001)
	assert.InDelta(t, 28.99, resp.Total, 0.001)
}

func TestServer_PlaceOrder_AuthenticatedCallerBecomesOwner(t *testing.T) {
	env := newTestEnv(t)
	userID := kernel.NewUUID()
	token := tokenFor(t, userID, actor.RoleCustomer)

	rec := doRequest(env, stdhttp.MethodPost, "/api/v1/orders", token, placeOrderBody("12 Via Roma"))

	require.Equal(t, stdhttp.StatusCreated, rec.Code)
	resp := decodeOrder(t, rec)
	require.NotNil(t, resp.OwnerID)
	assert.Equal(t, userID.String(), *resp.OwnerID)
}

func TestServer_PlaceOrder_PickupSkipsDeliveryFee(t *testing.T) {
	env := newTestEnv(t)

	rec := doRequest(env, stdhttp.MethodPost, "/api/v1/orders", "", placeOrderBody("pickup"))

	require.Equal(t, stdhttp.StatusCreated, rec.Code)
	resp := decodeOrder(t, rec)
	assert.InDelta(t, 0.0, resp.DeliveryFee, 0.001)
	assert.InDelta(t, 25.00, resp.Total, 0.001)
}

func TestServer_PlaceOrder_InvalidPaymentMethod(t *testing.T) {
	env := newTestEnv(t)
	body := placeOrderBody("12 Via Roma")
	body.PaymentMethod = "iou"

	rec := doRequest(env, stdhttp.MethodPost, "/api/v1/orders", "", body)

	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)
}

func TestServer_PlaceOrder_NoItems(t *testing.T) {
	env := newTestEnv(t)
	body := placeOrderBody("12 Via Roma")
	body.Items = nil

	rec := doRequest(env, stdhttp.MethodPost, "/api/v1/orders", "", body)

	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)
}

func TestServer_GetOrder(t *testing.T) {
	env := newTestEnv(t)
	ownerID := kernel.NewUUID()
	ownerToken := tokenFor(t, ownerID, actor.RoleCustomer)

	created := decodeOrder(t, doRequest(
		env, stdhttp.MethodPost, "/api/v1/orders", ownerToken, placeOrderBody("12 Via Roma"),
	))

	t.Run("owner sees own order", func(t *testing.T) {
		rec := doRequest(env, stdhttp.MethodGet, "/api/v1/orders/"+created.ID, ownerToken, nil)

		require.Equal(t, stdhttp.StatusOK, rec.Code)
		assert.Equal(t, created.ID, decodeOrder(t, rec).ID)
	})

	t.Run("admin sees any order", func(t *testing.T) {
		adminToken := tokenFor(t, kernel.NewUUID(), actor.RoleAdmin)

		rec := doRequest(env, stdhttp.MethodGet, "/api/v1/orders/"+created.ID, adminToken, nil)

		assert.Equal(t, stdhttp.StatusOK, rec.Code)
	})

	t.Run("foreign customer is forbidden", func(t *testing.T) {
		otherToken := tokenFor(t, kernel.NewUUID(), actor.RoleCustomer)

		rec := doRequest(env, stdhttp.MethodGet, "/api/v1/orders/"+created.ID, otherToken, nil)

		assert.Equal(t, stdhttp.StatusForbidden, rec.Code)
	})

	t.Run("anonymous is unauthorized", func(t *testing.T) {
		rec := doRequest(env, stdhttp.MethodGet, "/api/v1/orders/"+created.ID, "", nil)

		assert.Equal(t, stdhttp.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown order is not found", func(t *testing.T) {
		rec := doRequest(env, stdhttp.MethodGet, "/api/v1/orders/"+kernel.NewUUID().String(), ownerToken, nil)

		assert.Equal(t, stdhttp.StatusNotFound, rec.Code)
	})

	t.Run("malformed order id is a bad request", func(t *testing.T) {
		rec := doRequest(env, stdhttp.MethodGet, "/api/v1/orders/not-a-uuid", ownerToken, nil)

		assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)
	})
}

func TestServer_ListOrders(t *testing.T) {
	env := newTestEnv(t)
	ownerID := kernel.NewUUID()
	ownerToken := tokenFor(t, ownerID, actor.RoleCustomer)

	doRequest(env, stdhttp.MethodPost, "/api/v1/orders", ownerToken, placeOrderBody("12 Via Roma"))
	doRequest(env, stdhttp.MethodPost, "/api/v1/orders", "", placeOrderBody("34 Via Milano"))

	t.Run("admin sees every order", func(t *testing.T) {
		adminToken := tokenFor(t, kernel.NewUUID(), actor.RoleAdmin)

		rec := doRequest(env, stdhttp.MethodGet, "/api/v1/orders", adminToken, nil)

		require.Equal(t, stdhttp.StatusOK, rec.Code)
		var resp []pizzeriahttp.OrderResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
	})

	t.Run("customer is scoped to own orders", func(t *testing.T) {
		rec := doRequest(env, stdhttp.MethodGet, "/api/v1/orders", ownerToken, nil)

		require.Equal(t, stdhttp.StatusOK, rec.Code)
		var resp []pizzeriahttp.OrderResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		require.NotNil(t, resp[0].OwnerID)
		assert.Equal(t, ownerID.String(), *resp[0].OwnerID)
	})

	t.Run("anonymous is unauthorized", func(t *testing.T) {
		rec := doRequest(env, stdhttp.MethodGet, "/api/v1/orders", "", nil)

		assert.Equal(t, stdhttp.StatusUnauthorized, rec.Code)
	})
}

func TestServer_ChangeOrderStatus(t *testing.T) {
	env := newTestEnv(t)
	adminID := kernel.NewUUID()
	adminToken := tokenFor(t, adminID, actor.RoleAdmin)

	created := decodeOrder(t, doRequest(
		env, stdhttp.MethodPost, "/api/v1/orders", "", placeOrderBody("12 Via Roma"),
	))

	t.Run("admin moves the order forward", func(t *testing.T) {
		rec := doRequest(env, stdhttp.MethodPut, "/api/v1/orders/"+created.ID+"/status",
			adminToken, pizzeriahttp.ChangeStatusRequest{Status: "preparing"})

		require.Equal(t, stdhttp.StatusOK, rec.Code)
		assert.Equal(t, "preparing", decodeOrder(t, rec).Status)

		entries, err := env.audit.GetAll(context.Background())
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, auditlog.ActionOrderStatusChanged, entries[0].Action())
		assert.Equal(t, adminID, entries[0].AdminID())
	})

	t.Run("leaving a terminal status is a conflict", func(t *testing.T) {
		doRequest(env, stdhttp.MethodPut, "/api/v1/orders/"+created.ID+"/status",
			adminToken, pizzeriahttp.ChangeStatusRequest{Status: "cancelled"})

		rec := doRequest(env, stdhttp.MethodPut, "/api/v1/orders/"+created.ID+"/status",
			adminToken, pizzeriahttp.ChangeStatusRequest{Status: "preparing"})

		assert.Equal(t, stdhttp.StatusConflict, rec.Code)
	})

	t.Run("customer is forbidden", func(t *testing.T) {
		customerToken := tokenFor(t, kernel.NewUUID(), actor.RoleCustomer)

		rec := doRequest(env, stdhttp.MethodPut, "/api/v1/orders/"+created.ID+"/status",
			customerToken, pizzeriahttp.ChangeStatusRequest{Status: "preparing"})

		assert.Equal(t, stdhttp.StatusForbidden, rec.Code)
	})

	t.Run("unknown status is a bad request", func(t *testing.T) {
		rec := doRequest(env, stdhttp.MethodPut, "/api/v1/orders/"+created.ID+"/status",
			adminToken, pizzeriahttp.ChangeStatusRequest{Status: "teleported"})

		assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)
	})
}

func TestServer_RemoveOrder(t *testing.T) {
	env := newTestEnv(t)
	masterToken := tokenFor(t, kernel.NewUUID(), actor.RoleAdminMaster)

	created := decodeOrder(t, doRequest(
		env, stdhttp.MethodPost, "/api/v1/orders", "", placeOrderBody("12 Via Roma"),
	))

	t.Run("regular admin is forbidden", func(t *testing.T) {
		adminToken := tokenFor(t, kernel.NewUUID(), actor.RoleAdmin)

		rec := doRequest(env, stdhttp.MethodDelete, "/api/v1/orders/"+created.ID, adminToken, nil)

		assert.Equal(t, stdhttp.StatusForbidden, rec.Code)
	})

	t.Run("master admin removes the order", func(t *testing.T) {
		rec := doRequest(env, stdhttp.MethodDelete, "/api/v1/orders/"+created.ID, masterToken, nil)

		require.Equal(t, stdhttp.StatusNoContent, rec.Code)

		recAfter := doRequest(env, stdhttp.MethodGet, "/api/v1/orders/"+created.ID, masterToken, nil)
		assert.Equal(t, stdhttp.StatusNotFound, recAfter.Code)

		entries, err := env.audit.GetAll(context.Background())
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, auditlog.ActionOrderHardDeleted, entries[0].Action())
	})
}

func TestServer_ListAuditEntries_AccessControl(t *testing.T) {
	env := newTestEnv(t)

	t.Run("customer is forbidden", func(t *testing.T) {
		customerToken := tokenFor(t, kernel.NewUUID(), actor.RoleCustomer)

		rec := doRequest(env, stdhttp.MethodGet, "/api/v1/audit", customerToken, nil)

		assert.Equal(t, stdhttp.StatusForbidden, rec.Code)
	})

	t.Run("anonymous is unauthorized", func(t *testing.T) {
		rec := doRequest(env, stdhttp.MethodGet, "/api/v1/audit", "", nil)

		assert.Equal(t, stdhttp.StatusUnauthorized, rec.Code)
	})
}

func TestAuthMiddleware_RejectsBadTokens(t *testing.T) {
	env := newTestEnv(t)

	t.Run("malformed authorization header", func(t *testing.T) {
		req := httptest.NewRequest(stdhttp.MethodGet, "/api/v1/orders", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()

		env.echo.ServeHTTP(rec, req)

		assert.Equal(t, stdhttp.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with the wrong secret", func(t *testing.T) {
		token, err := pizzeriahttp.GenerateToken(
			[]byte("some-other-secret"), kernel.NewUUID(), actor.RoleAdmin, time.Hour,
		)
		require.NoError(t, err)

		rec := doRequest(env, stdhttp.MethodGet, "/api/v1/orders", token, nil)

		assert.Equal(t, stdhttp.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := pizzeriahttp.GenerateToken(
			testSecret, kernel.NewUUID(), actor.RoleAdmin, -time.Minute,
		)
		require.NoError(t, err)

		rec := doRequest(env, stdhttp.MethodGet, "/api/v1/orders", token, nil)

		assert.Equal(t, stdhttp.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown role claim", func(t *testing.T) {
		claims := &pizzeriahttp.Claims{
			Role: "superuser",
			StandardClaims: jwt.StandardClaims{
				Subject:   kernel.NewUUID().String(),
				ExpiresAt: time.Now().Add(time.Hour).Unix(),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
		require.NoError(t, err)

		rec := doRequest(env, stdhttp.MethodGet, "/api/v1/orders", token, nil)

		assert.Equal(t, stdhttp.StatusUnauthorized, rec.Code)
	})

	t.Run("subject that is not a uuid", func(t *testing.T) {
		claims := &pizzeriahttp.Claims{
			Role: "admin",
			StandardClaims: jwt.StandardClaims{
				Subject:   "42",
				ExpiresAt: time.Now().Add(time.Hour).Unix(),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
		require.NoError(t, err)

		rec := doRequest(env, stdhttp.MethodGet, "/api/v1/orders", token, nil)

		assert.Equal(t, stdhttp.StatusUnauthorized, rec.Code)
	})
}

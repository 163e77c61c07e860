package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/model"
	"storefront/internal/infra/api"
	repo "storefront/internal/repository"
	"storefront/internal/transport"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testCartID = model.CartID("ABCDEFGHIJKL123456789012345678")

// リモートのストアフロントサービスをechoでスタブする
type stubService struct {
	e *echo.Echo

	lastUpsertForm map[string]string
	deletedPath    string
}

func newStubService() *stubService {
	s := &stubService{e: echo.New()}

	items := []model.CartItem{
		{ID: 10, ProductID: 1, Title: "Running Shoes", Quantity: 2, Price: 4500, SubTotal: 9000},
	}
	totals := map[string]any{
		"sub_total":   100,
		"shipping":    10,
		"tax":         5,
		"service_fee": nil,
		"total":       115,
	}

	s.e.GET("/cart-list/:cart/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, items)
	})
	s.e.GET("/cart-list/:cart/:user/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, items)
	})
	s.e.GET("/cart-detail/:cart/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, totals)
	})
	s.e.POST("/cart-view/", func(c echo.Context) error {
		form := map[string]string{}
		for _, k := range []string{"product_id", "user_id", "qty", "price", "shipping_amount", "country", "size", "color", "cart_id"} {
			form[k] = c.FormValue(k)
		}
		s.lastUpsertForm = form
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	s.e.DELETE("/cart-delete/:cart/:item/", func(c echo.Context) error {
		s.deletedPath = c.Request().URL.Path
		return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
	})
	s.e.DELETE("/cart-delete/:cart/:item/:user/", func(c echo.Context) error {
		s.deletedPath = c.Request().URL.Path
		return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
	})
	s.e.GET("/products/", func(c echo.Context) error {
		//絞り込みクエリをそのまま検証できるよう一部を返す
		if c.QueryParam("category") != "footwear" || c.QueryParam("min_price") != "100.00" {
			return c.JSON(http.StatusOK, []model.Product{})
		}
		return c.JSON(http.StatusOK, []model.Product{
			{ID: 1, Title: "Running Shoes", Price: 4500, Sizes: []string{"40", "41"}},
		})
	})
	s.e.GET("/product-detail/:id/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, model.Product{ID: 1, Title: "Running Shoes", Price: 4500})
	})
	s.e.POST("/create-order/", func(c echo.Context) error {
		if c.FormValue("first_name") == "" || c.FormValue("cart_id") == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid"})
		}
		return c.JSON(http.StatusOK, map[string]string{"order_id": "ORD-1001"})
	})

	return s
}

func newTestTransport(t *testing.T, base string) *transport.Client {
	t.Helper()
	return transport.New(base, transport.DefaultRetryPolicy(), zap.NewNop())
}

func TestCartAPIClient_FetchItemsAndTotals(t *testing.T) {
	stub := newStubService()
	srv := httptest.NewServer(stub.e)
	defer srv.Close()

	ctx := context.Background()
	c := api.NewCartAPIClient(newTestTransport(t, srv.URL))

	items, err := c.FetchItems(ctx, testCartID, model.Guest{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].ProductID)
	assert.Equal(t, int64(2), items[0].Quantity)

	//ログイン済みはuserId付きのパスが使われる
	items, err = c.FetchItems(ctx, testCartID, model.AuthenticatedUser{ID: "42"})
	require.NoError(t, err)
	require.Len(t, items, 1)

	totals, err := c.FetchTotals(ctx, testCartID, model.Guest{})
	require.NoError(t, err)
	require.NotNil(t, totals.SubTotal)
	assert.Equal(t, 100.0, *totals.SubTotal)
	//未計算の項目はnullのまま
	assert.Nil(t, totals.ServiceFee)
	require.NotNil(t, totals.Total)
	assert.Equal(t, 115.0, *totals.Total)
}

func TestCartAPIClient_UpsertItemSendsAllFields(t *testing.T) {
	stub := newStubService()
	srv := httptest.NewServer(stub.e)
	defer srv.Close()

	c := api.NewCartAPIClient(newTestTransport(t, srv.URL))

	err := c.UpsertItem(context.Background(), repo.UpsertItemInput{
		CartID:         testCartID,
		Shopper:        model.AuthenticatedUser{ID: "42"},
		ProductID:      7,
		Quantity:       3,
		Price:          4500,
		ShippingAmount: 100,
		Country:        "Nepal",
		Size:           "M",
		Color:          "red",
	})
	require.NoError(t, err)

	form := stub.lastUpsertForm
	assert.Equal(t, "7", form["product_id"])
	assert.Equal(t, "42", form["user_id"])
	assert.Equal(t, "3", form["qty"])
	assert.Equal(t, "4500.00", form["price"])
	assert.Equal(t, "100.00", form["shipping_amount"])
	assert.Equal(t, "Nepal", form["country"])
	assert.Equal(t, "M", form["size"])
	assert.Equal(t, "red", form["color"])
	assert.Equal(t, string(testCartID), form["cart_id"])
}

func TestCartAPIClient_DeleteItemPaths(t *testing.T) {
	stub := newStubService()
	srv := httptest.NewServer(stub.e)
	defer srv.Close()

	ctx := context.Background()
	c := api.NewCartAPIClient(newTestTransport(t, srv.URL))

	require.NoError(t, c.DeleteItem(ctx, testCartID, 10, model.Guest{}))
	assert.Equal(t, "/cart-delete/"+string(testCartID)+"/10/", stub.deletedPath)

	require.NoError(t, c.DeleteItem(ctx, testCartID, 10, model.AuthenticatedUser{ID: "42"}))
	assert.Equal(t, "/cart-delete/"+string(testCartID)+"/10/42/", stub.deletedPath)
}

func TestCatalogAPIClient_ListProductsComposesQuery(t *testing.T) {
	stub := newStubService()
	srv := httptest.NewServer(stub.e)
	defer srv.Close()

	c := api.NewCatalogAPIClient(newTestTransport(t, srv.URL))

	min := 100.0
	products, err := c.ListProducts(context.Background(), model.ProductQuery{
		Category: "footwear",
		MinPrice: &min,
		Page:     1,
		Limit:    20,
	})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Running Shoes", products[0].Title)
}

func TestOrderAPIClient_CreateOrder(t *testing.T) {
	stub := newStubService()
	srv := httptest.NewServer(stub.e)
	defer srv.Close()

	c := api.NewOrderAPIClient(newTestTransport(t, srv.URL))

	orderID, err := c.CreateOrder(context.Background(), model.OrderInput{
		FirstName: "Sita",
		LastName:  "Sharma",
		Email:     "sita@example.com",
		Phone:     "9800000000",
		Address:   "Thamel Marg 12",
		City:      "Kathmandu",
		Country:   "Nepal",
		CartID:    testCartID,
		Shopper:   model.AuthenticatedUser{ID: "42"},
	})
	require.NoError(t, err)
	assert.Equal(t, "ORD-1001", orderID)
}

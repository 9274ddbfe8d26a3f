package client_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stocklink/internal/apierror"
	"stocklink/internal/catalogtest"
	"stocklink/internal/client"
	"stocklink/internal/config"
	"stocklink/internal/model"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		BaseURL:            baseURL,
		HTTPTimeoutSeconds: 5,
		Env:                "development",
	}
}

func openGateway(t *testing.T) (*client.Gateway, *catalogtest.Server) {
	t.Helper()
	srv := catalogtest.New(map[string]string{"alice": "s3cret"})
	t.Cleanup(srv.Close)

	gw, err := client.Open(context.Background(), testConfig(srv.URL), "alice", "s3cret")
	require.NoError(t, err)
	return gw, srv
}

func TestOpen(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		gw, _ := openGateway(t)
		assert.Equal(t, "alice", gw.Username())
	})

	t.Run("rejected credentials", func(t *testing.T) {
		srv := catalogtest.New(map[string]string{"alice": "s3cret"})
		defer srv.Close()

		gw, err := client.Open(context.Background(), testConfig(srv.URL), "alice", "wrong")
		assert.Nil(t, gw)
		assert.Equal(t, apierror.Service, apierror.KindOf(err))
	})

	t.Run("unreachable service", func(t *testing.T) {
		srv := catalogtest.New(map[string]string{"alice": "s3cret"})
		baseURL := srv.URL
		srv.Close()

		gw, err := client.Open(context.Background(), testConfig(baseURL), "alice", "s3cret")
		assert.Nil(t, gw)
		assert.Equal(t, apierror.Transport, apierror.KindOf(err))
	})
}

func TestHeadersOnEveryCall(t *testing.T) {
	gw, srv := openGateway(t)

	_, err := gw.Permissions(context.Background())
	require.NoError(t, err)

	last := srv.LastRequest()
	assert.Equal(t, "/permissions", last.Path)
	assert.Equal(t, "alice", last.Username)
	assert.Equal(t, "s3cret", last.Password)
}

func TestSignUp(t *testing.T) {
	gw, _ := openGateway(t)

	t.Run("new account", func(t *testing.T) {
		err := gw.SignUp(context.Background(), "bob", "hunter2")
		assert.NoError(t, err)
	})

	t.Run("taken username reported as service error", func(t *testing.T) {
		err := gw.SignUp(context.Background(), "alice", "whatever")
		require.Error(t, err)
		assert.Equal(t, apierror.Service, apierror.KindOf(err))
		assert.Contains(t, apierror.Message(err), "could not be created")
	})
}

func TestProductLifecycle(t *testing.T) {
	gw, _ := openGateway(t)
	ctx := context.Background()

	id, err := gw.NewProduct(ctx, client.NewProductParams{
		UPC:                 "012345678905",
		Name:                "Oat Milk",
		Description:         "1L carton",
		CostPricePerUnit:    decimal.RequireFromString("1.50"),
		SellingPricePerUnit: decimal.RequireFromString("2.99"),
		BuyLevel:            4,
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	got, err := gw.GetProduct(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Oat Milk", got.Name)
	assert.Equal(t, "012345678905", got.UPC)
	assert.True(t, got.CostPricePerUnit.Equal(decimal.RequireFromString("1.50")))
	assert.True(t, got.SellingPricePerUnit.Equal(decimal.RequireFromString("2.99")))

	got.Name = "Oat Milk Barista"
	require.NoError(t, gw.UpdateProduct(ctx, got))

	updated, err := gw.GetProduct(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Oat Milk Barista", updated.Name)

	require.NoError(t, gw.RemoveProduct(ctx, id))

	_, err = gw.GetProduct(ctx, id)
	assert.Equal(t, apierror.Decode, apierror.KindOf(err))

	// Second remove of the same id still succeeds.
	assert.NoError(t, gw.RemoveProduct(ctx, id))
}

func TestProductNamesTupleDecoding(t *testing.T) {
	gw, srv := openGateway(t)
	srv.SeedProduct(model.Product{ID: 7, Name: "Rye Bread", UPC: "036000291452"})

	names, err := gw.ProductNames(context.Background())
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Equal(t, model.ProductName{Name: "Rye Bread", UPC: "036000291452", ID: 7}, names[0])
}

func TestProductBrandRelation(t *testing.T) {
	gw, srv := openGateway(t)
	ctx := context.Background()

	productID := int64(11)
	srv.SeedProduct(model.Product{ID: productID, Name: "Espresso Beans"})
	srv.SeedBrand(model.Brand{ID: 30, Name: "Roastery", Products: []*int64{&productID}})

	brand, err := gw.ProductBrand(ctx, productID)
	require.NoError(t, err)
	require.NotNil(t, brand)
	assert.Equal(t, "Roastery", brand.Name)

	// A product without a brand yields nil, not an error.
	srv.SeedProduct(model.Product{ID: 12, Name: "Store Salt"})
	brand, err = gw.ProductBrand(ctx, 12)
	require.NoError(t, err)
	assert.Nil(t, brand)
}

func TestBrandUpdateEncoding(t *testing.T) {
	gw, srv := openGateway(t)
	ctx := context.Background()

	id, err := gw.NewBrand(ctx, "Roastery")
	require.NoError(t, err)

	productID := int64(5)
	err = gw.UpdateBrand(ctx, &model.Brand{ID: id, Name: "Roastery Co", Products: []*int64{&productID}})
	require.NoError(t, err)

	// The entity travels as a JSON document in the brand_info parameter.
	last := srv.LastRequest()
	assert.Equal(t, "/update_brand", last.Path)
	assert.JSONEq(t,
		`{"id":1,"name":"Roastery Co","products":[5]}`,
		last.Query.Get("brand_info"))

	got, err := gw.GetBrand(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Roastery Co", got.Name)
}

func TestGetBrandMissing(t *testing.T) {
	gw, _ := openGateway(t)

	_, err := gw.GetBrand(context.Background(), 404)
	assert.Equal(t, apierror.Decode, apierror.KindOf(err))
}

func TestPagination(t *testing.T) {
	gw, srv := openGateway(t)
	for i := int64(1); i <= 5; i++ {
		srv.SeedProduct(model.Product{ID: i, Name: "P"})
	}

	page, err := gw.GetProducts(context.Background(), 2, 3)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, int64(4), page[0].ID)
	assert.Equal(t, int64(5), page[1].ID)
}

func TestMarkAsReceived(t *testing.T) {
	gw, srv := openGateway(t)
	ctx := context.Background()

	srv.SeedPendingOrder(model.PendingOrder{ID: 9, ProductID: 2, Amount: 10})

	date := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	receivedID, err := gw.MarkAsReceived(ctx, 9, date, 9, 1)
	require.NoError(t, err)
	require.NotZero(t, receivedID)

	// The date rides as Unix seconds.
	last := srv.LastRequest()
	assert.Equal(t, "/mark_order_as_received", last.Path)
	assert.Equal(t, "1710374400", last.Query.Get("date"))

	received, err := gw.GetReceivedOrders(ctx, 50, 0)
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, float64(10), received[0].GrossAmount)
	assert.Equal(t, float64(9), received[0].ActuallyReceived)
	assert.Equal(t, float64(1), received[0].Damaged)
	require.NotNil(t, received[0].Received)
	assert.True(t, received[0].Received.Time.Equal(date))

	// The pending side is consumed by the conversion.
	pending, err := gw.GetPendingOrders(ctx, 50, 0)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestUpdateUserPathEncoding(t *testing.T) {
	gw, srv := openGateway(t)

	err := gw.UpdateUser(context.Background(), &model.User{
		ID: 1, Name: "alice", Email: "alice@acme.example", Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, "/update_user/{\"id\":1,\"name\":\"alice\",\"email\":\"alice@acme.example\",\"password\":\"s3cret\"}",
		srv.LastRequest().Path)
}

package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/catalog"
)

var (
	testProdA = catalog.Product{ID: 1, Article: 100, Title: "A", URL: "a", Price: 10}
	testProdB = catalog.Product{ID: 2, Article: 200, Title: "B", URL: "b", Price: 5}
)

func newCartUC() (*CartUsecase, *fakeCartRepo) {
	carts := newFakeCartRepo()
	products := newFakeProductRepo(testProdA, testProdB)
	return NewCartUsecaseWithClock(carts, products, fixedClock{testNow}), carts
}

func TestCartGetValidation(t *testing.T) {
	uc, _ := newCartUC()

	_, err := uc.Get(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrCartInvalidArgument)

	_, err = uc.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestCartGetOrCreatePersistsEmptyCart(t *testing.T) {
	uc, carts := newCartUC()

	c, err := uc.GetOrCreate(context.Background(), "s1")
	require.NoError(t, err)
	assert.Empty(t, c.Items())
	assert.NotNil(t, carts.carts["s1"])

	again, err := uc.GetOrCreate(context.Background(), "s1")
	require.NoError(t, err)
	assert.Same(t, carts.carts["s1"], again)
}

func TestCartAddProductMerges(t *testing.T) {
	uc, _ := newCartUC()
	ctx := context.Background()

	_, err := uc.AddProduct(ctx, "s1", testProdA.ID)
	require.NoError(t, err)
	c, err := uc.AddProduct(ctx, "s1", testProdA.ID)
	require.NoError(t, err)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 20.0, c.Price())
	assert.Equal(t, 2, c.Size())
	assert.Equal(t, testNow, c.UpdatedAt)
}

func TestCartAddUnknownProduct(t *testing.T) {
	uc, _ := newCartUC()
	_, err := uc.AddProduct(context.Background(), "s1", 999)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestCartRemoveProduct(t *testing.T) {
	uc, _ := newCartUC()
	ctx := context.Background()

	_, err := uc.AddProduct(ctx, "s1", testProdA.ID)
	require.NoError(t, err)
	_, err = uc.AddProduct(ctx, "s1", testProdB.ID)
	require.NoError(t, err)

	c, err := uc.RemoveProduct(ctx, "s1", testProdA.ID)
	require.NoError(t, err)
	require.Len(t, c.Items(), 1)
	assert.Equal(t, "B", c.Items()[0].Product.Title)

	// unknown product: no-op, cart returned
	c, err = uc.RemoveProduct(ctx, "s1", 999)
	require.NoError(t, err)
	assert.Len(t, c.Items(), 1)
}

func TestCartClearKeepsDocument(t *testing.T) {
	uc, carts := newCartUC()
	ctx := context.Background()

	_, err := uc.AddProduct(ctx, "s1", testProdA.ID)
	require.NoError(t, err)

	require.NoError(t, uc.Clear(ctx, "s1"))
	c := carts.carts["s1"]
	require.NotNil(t, c)
	assert.Empty(t, c.Items())

	// clearing an absent cart is a no-op
	require.NoError(t, uc.Clear(ctx, "s2"))
}

func TestCartDrop(t *testing.T) {
	uc, carts := newCartUC()
	ctx := context.Background()

	_, err := uc.AddProduct(ctx, "s1", testProdA.ID)
	require.NoError(t, err)
	require.NoError(t, uc.Drop(ctx, "s1"))
	assert.Nil(t, carts.carts["s1"])
}

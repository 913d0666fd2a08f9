package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderdom "storefront/internal/domain/order"
	userdom "storefront/internal/domain/user"
)

func testClient() *userdom.User {
	return &userdom.User{ID: 7, Name: "C", Email: "c@x", Phone: "1", Role: userdom.Role{Title: userdom.RoleClient}}
}

type checkoutEnv struct {
	uc       *CheckoutUsecase
	carts    *fakeCartRepo
	orders   *fakeOrderRepo
	statuses *fakeStatusRepo
	notifier *fakeNotifier
	events   *fakePublisher
}

func newCheckoutEnv() *checkoutEnv {
	env := &checkoutEnv{
		carts:    newFakeCartRepo(),
		orders:   newFakeOrderRepo(),
		statuses: newFakeStatusRepo(),
		notifier: newFakeNotifier(),
		events:   newFakePublisher(),
	}
	env.uc = NewCheckoutUsecaseWithClock(env.carts, env.orders, env.statuses,
		env.notifier, env.events, fixedClock{testNow})
	return env
}

func (env *checkoutEnv) fillCart(t *testing.T) {
	t.Helper()
	cartUC := NewCartUsecaseWithClock(env.carts, newFakeProductRepo(testProdA, testProdB), fixedClock{testNow})
	_, err := cartUC.AddProduct(context.Background(), "s1", testProdA.ID)
	require.NoError(t, err)
	_, err = cartUC.AddProduct(context.Background(), "s1", testProdB.ID)
	require.NoError(t, err)
	_, err = cartUC.AddProduct(context.Background(), "s1", testProdB.ID)
	require.NoError(t, err)
	_, err = cartUC.AddProduct(context.Background(), "s1", testProdB.ID)
	require.NoError(t, err)
}

func awaitSideEffects(t *testing.T, env *checkoutEnv) {
	t.Helper()
	select {
	case <-env.notifier.done:
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was not invoked")
	}
	select {
	case <-env.events.done:
	case <-time.After(2 * time.Second):
		t.Fatal("publisher was not invoked")
	}
}

func TestCheckoutCreatesOrderAndClearsCart(t *testing.T) {
	env := newCheckoutEnv()
	env.fillCart(t)

	o, err := env.uc.Checkout(context.Background(), "s1", testClient())
	require.NoError(t, err)

	// A: 10 x 1, B: 5 x 3
	assert.Equal(t, 25.0, o.Price())
	assert.Equal(t, orderdom.StatusNew, o.Status.Title)
	assert.Nil(t, o.Manager)
	assert.NotZero(t, o.ID)
	require.NotNil(t, o.Client)
	assert.Equal(t, int64(7), o.Client.ID)

	// cart is emptied but the session document survives
	c := env.carts.carts["s1"]
	require.NotNil(t, c)
	assert.Empty(t, c.Items())

	awaitSideEffects(t, env)
	assert.Equal(t, 1, env.notifier.count())
}

func TestCheckoutSnapshotIndependence(t *testing.T) {
	env := newCheckoutEnv()
	env.fillCart(t)

	o, err := env.uc.Checkout(context.Background(), "s1", testClient())
	require.NoError(t, err)

	// the cart was cleared at checkout; the order keeps its own copies
	assert.Len(t, o.Items(), 2)
	assert.Equal(t, 25.0, o.Price())
	for _, li := range o.Items() {
		assert.Equal(t, o.Number, li.OrderNumber)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	env := newCheckoutEnv()

	_, err := env.uc.Checkout(context.Background(), "s1", testClient())
	assert.ErrorIs(t, err, ErrCheckoutEmptyCart)

	// present but empty cart
	cartUC := NewCartUsecaseWithClock(env.carts, newFakeProductRepo(), fixedClock{testNow})
	_, err = cartUC.GetOrCreate(context.Background(), "s2")
	require.NoError(t, err)
	_, err = env.uc.Checkout(context.Background(), "s2", testClient())
	assert.ErrorIs(t, err, ErrCheckoutEmptyCart)
}

func TestCheckoutValidation(t *testing.T) {
	env := newCheckoutEnv()

	_, err := env.uc.Checkout(context.Background(), "", testClient())
	assert.ErrorIs(t, err, ErrCheckoutInvalidArgument)

	_, err = env.uc.Checkout(context.Background(), "s1", nil)
	assert.ErrorIs(t, err, ErrCheckoutInvalidArgument)
}

func TestCheckoutSurvivesNotificationFailure(t *testing.T) {
	env := newCheckoutEnv()
	env.fillCart(t)
	env.notifier.err = errors.New("smtp down")
	env.events.err = errors.New("broker down")

	o, err := env.uc.Checkout(context.Background(), "s1", testClient())
	require.NoError(t, err)
	assert.NotZero(t, o.ID)

	awaitSideEffects(t, env)
}

func TestCheckoutFailsWhenOrderSaveFails(t *testing.T) {
	env := newCheckoutEnv()
	env.fillCart(t)
	env.orders.err = errors.New("db down")

	_, err := env.uc.Checkout(context.Background(), "s1", testClient())
	require.Error(t, err)

	// cart untouched on failure
	c := env.carts.carts["s1"]
	require.NotNil(t, c)
	assert.Len(t, c.Items(), 2)
}

package services_test

import (
	"strconv"
	"testing"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/stretchr/testify/assert"
)

func newCartFixture(t *testing.T) (*services.CartService, string) {
	t.Helper()
	repo := repositories.NewMockUserRepository()
	user := &models.User{
		Name:     "Cart User",
		Email:    "cart@x.com",
		Password: "hashed",
		CartData: models.NewCart(),
	}
	assert.NoError(t, repo.Create(user))
	return services.NewCartService(repo), user.ID
}

func TestCartService_FreshCartIsZeroFilled(t *testing.T) {
	cartService, userID := newCartFixture(t)

	cart, err := cartService.GetCart(userID)
	assert.NoError(t, err)
	assert.Len(t, cart, models.CartSlots)
	for i := 0; i < models.CartSlots; i++ {
		assert.Equal(t, 0, cart.Quantity(i), "slot %d should start at zero", i)
	}
}

func TestCartService_AddToCart(t *testing.T) {
	cartService, userID := newCartFixture(t)

	assert.NoError(t, cartService.AddToCart(userID, 5))
	assert.NoError(t, cartService.AddToCart(userID, 5))
	assert.NoError(t, cartService.AddToCart(userID, 0))
	assert.NoError(t, cartService.AddToCart(userID, models.CartSlots-1))

	cart, err := cartService.GetCart(userID)
	assert.NoError(t, err)
	assert.Equal(t, 2, cart.Quantity(5))
	assert.Equal(t, 1, cart.Quantity(0))
	assert.Equal(t, 1, cart.Quantity(models.CartSlots-1))
}

func TestCartService_RemoveFromCartNeverGoesNegative(t *testing.T) {
	cartService, userID := newCartFixture(t)

	// Decrementing an empty slot is a successful no-op
	assert.NoError(t, cartService.RemoveFromCart(userID, 7))
	cart, err := cartService.GetCart(userID)
	assert.NoError(t, err)
	assert.Equal(t, 0, cart.Quantity(7))

	// Arbitrary increment/decrement sequences keep quantities >= 0
	ops := []struct {
		add    bool
		itemID int
	}{
		{true, 7}, {true, 7}, {false, 7}, {false, 7}, {false, 7},
		{true, 12}, {false, 12}, {false, 12}, {true, 12},
	}
	for _, op := range ops {
		if op.add {
			assert.NoError(t, cartService.AddToCart(userID, op.itemID))
		} else {
			assert.NoError(t, cartService.RemoveFromCart(userID, op.itemID))
		}
		cart, err := cartService.GetCart(userID)
		assert.NoError(t, err)
		for key, qty := range cart {
			assert.GreaterOrEqual(t, qty, 0, "slot %s went negative", key)
		}
	}

	cart, err = cartService.GetCart(userID)
	assert.NoError(t, err)
	assert.Equal(t, 0, cart.Quantity(7))
	assert.Equal(t, 1, cart.Quantity(12))
}

func TestCartService_ItemIDRange(t *testing.T) {
	cartService, userID := newCartFixture(t)

	for _, itemID := range []int{-1, models.CartSlots, models.CartSlots + 100} {
		assert.ErrorIs(t, cartService.AddToCart(userID, itemID), services.ErrItemOutOfRange, "itemID %d", itemID)
		assert.ErrorIs(t, cartService.RemoveFromCart(userID, itemID), services.ErrItemOutOfRange, "itemID %d", itemID)
	}

	// Boundary ids are accepted
	assert.NoError(t, cartService.AddToCart(userID, 0))
	assert.NoError(t, cartService.AddToCart(userID, models.CartSlots-1))
}

func TestCartService_UnknownUser(t *testing.T) {
	cartService := services.NewCartService(repositories.NewMockUserRepository())

	assert.ErrorIs(t, cartService.AddToCart("missing", 1), services.ErrUserNotFound)
	assert.ErrorIs(t, cartService.RemoveFromCart("missing", 1), services.ErrUserNotFound)
	_, err := cartService.GetCart("missing")
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestCartService_CartKeysAreStringifiedIntegers(t *testing.T) {
	cartService, userID := newCartFixture(t)

	assert.NoError(t, cartService.AddToCart(userID, 42))
	cart, err := cartService.GetCart(userID)
	assert.NoError(t, err)

	qty, ok := cart[strconv.Itoa(42)]
	assert.True(t, ok)
	assert.Equal(t, 1, qty)
}

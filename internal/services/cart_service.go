package services

import (
	"errors"
	"fmt"
	"strconv"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrItemOutOfRange = errors.New("item id out of range")
)

// CartService applies bounded quantity mutations to a user's cart. Every
// mutation is a read-modify-write of the full cart map with no optimistic
// concurrency check; concurrent mutations from the same user can lose
// updates (last write wins on the whole map).
type CartService struct {
	userRepo repositories.UserRepository
}

// NewCartService creates a new CartService.
func NewCartService(userRepo repositories.UserRepository) *CartService {
	return &CartService{
		userRepo: userRepo,
	}
}

// AddToCart increments the quantity at itemID by one. There is no upper bound.
func (s *CartService) AddToCart(userID string, itemID int) error {
	if !models.ValidItemID(itemID) {
		return fmt.Errorf("%w: %d", ErrItemOutOfRange, itemID)
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return ErrUserNotFound
	}

	cart := user.CartData
	if cart == nil {
		cart = models.NewCart()
	}
	cart[strconv.Itoa(itemID)]++
	return s.userRepo.UpdateCart(userID, cart)
}

// RemoveFromCart decrements the quantity at itemID by one, but only when it
// is strictly positive; decrementing an empty slot is a successful no-op.
// Quantities never go negative.
func (s *CartService) RemoveFromCart(userID string, itemID int) error {
	if !models.ValidItemID(itemID) {
		return fmt.Errorf("%w: %d", ErrItemOutOfRange, itemID)
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return ErrUserNotFound
	}

	cart := user.CartData
	key := strconv.Itoa(itemID)
	if cart == nil || cart[key] <= 0 {
		return nil
	}
	cart[key]--
	return s.userRepo.UpdateCart(userID, cart)
}

// GetCart returns the full cart snapshot for a user.
func (s *CartService) GetCart(userID string) (models.Cart, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if user.CartData == nil {
		return models.NewCart(), nil
	}
	return user.CartData, nil
}

package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"venue-webapp/database"
	"venue-webapp/model"
	"venue-webapp/seed"
)

const (
	CartsKey = "swan-dive-carts"

	MaxCartQuantity = 20
)

// Shop serves the merchandise catalog and keeps one cart per user. There
// is no checkout.
type Shop struct {
	catalog []model.Product
	carts   *Collection[model.Cart]
}

func NewShop(kv database.KeyValue, log zerolog.Logger) *Shop {
	return &Shop{
		catalog: seed.Products(),
		carts:   NewCollection[model.Cart](kv, CartsKey, nil, log),
	}
}

// Products lists the catalog, narrowed to category unless it is empty or
// "All".
func (s *Shop) Products(category string) []model.Product {
	products := []model.Product{}
	for _, product := range s.catalog {
		if category == "" || category == AllGenres || product.Category == category {
			products = append(products, product)
		}
	}
	return products
}

func (s *Shop) Categories() []string {
	seen := map[string]bool{}
	categories := []string{}
	for _, product := range s.catalog {
		if !seen[product.Category] {
			seen[product.Category] = true
			categories = append(categories, product.Category)
		}
	}
	sort.Strings(categories)
	return categories
}

func (s *Shop) product(id string) (model.Product, error) {
	for _, product := range s.catalog {
		if product.Id == id {
			return product, nil
		}
	}
	return model.Product{}, fmt.Errorf("product %v: %w", id, ErrNotFound)
}

func (s *Shop) Cart(ctx context.Context, userID string) (model.Cart, error) {
	carts, err := s.carts.Load(ctx)
	if err != nil {
		return model.Cart{}, err
	}
	for _, cart := range carts {
		if cart.UserId == userID {
			return withTotals(cart), nil
		}
	}
	return withTotals(model.Cart{UserId: userID}), nil
}

// AddToCart puts a product in the user's cart. Size and color default to the
// product's first option and quantity defaults to one.
func (s *Shop) AddToCart(ctx context.Context, userID string, add model.CartAddition) (model.Cart, error) {
	product, err := s.product(add.ProductId)
	if err != nil {
		return model.Cart{}, err
	}
	if !product.InStock {
		return model.Cart{}, fmt.Errorf("product %v: %w", product.Id, ErrOutOfStock)
	}

	v := &ValidationError{}
	if add.Size == "" && len(product.Sizes) > 0 {
		add.Size = product.Sizes[0]
	} else if len(product.Sizes) > 0 && !contains(product.Sizes, add.Size) {
		v.add("size", fmt.Sprintf("%q is not offered", add.Size))
	}
	if add.Color == "" && len(product.Colors) > 0 {
		add.Color = product.Colors[0]
	} else if len(product.Colors) > 0 && !contains(product.Colors, add.Color) {
		v.add("color", fmt.Sprintf("%q is not offered", add.Color))
	}
	if add.Quantity == 0 {
		add.Quantity = 1
	}
	if add.Quantity < 1 || add.Quantity > MaxCartQuantity {
		v.add("quantity", fmt.Sprintf("must be between 1 and %d", MaxCartQuantity))
	}
	if err := v.orNil(); err != nil {
		return model.Cart{}, err
	}

	item := model.CartItem{
		CartId:    newID("cart-"),
		ProductId: product.Id,
		Name:      product.Name,
		Price:     product.Price,
		Size:      add.Size,
		Color:     add.Color,
		Quantity:  add.Quantity,
	}
	return s.modifyCart(ctx, userID, func(cart *model.Cart) error {
		cart.Items = append(cart.Items, item)
		return nil
	})
}

func (s *Shop) RemoveFromCart(ctx context.Context, userID, cartID string) (model.Cart, error) {
	return s.modifyCart(ctx, userID, func(cart *model.Cart) error {
		kept := []model.CartItem{}
		for _, item := range cart.Items {
			if item.CartId != cartID {
				kept = append(kept, item)
			}
		}
		if len(kept) == len(cart.Items) {
			return fmt.Errorf("cart item %v: %w", cartID, ErrNotFound)
		}
		cart.Items = kept
		return nil
	})
}

func (s *Shop) ClearCart(ctx context.Context, userID string) (model.Cart, error) {
	return s.modifyCart(ctx, userID, func(cart *model.Cart) error {
		cart.Items = []model.CartItem{}
		return nil
	})
}

func (s *Shop) modifyCart(ctx context.Context, userID string, fn func(*model.Cart) error) (model.Cart, error) {
	var updated model.Cart
	err := s.carts.Update(ctx, func(carts []model.Cart) ([]model.Cart, error) {
		idx := -1
		for i := range carts {
			if carts[i].UserId == userID {
				idx = i
				break
			}
		}
		if idx == -1 {
			carts = append(carts, model.Cart{UserId: userID, Items: []model.CartItem{}})
			idx = len(carts) - 1
		}
		if err := fn(&carts[idx]); err != nil {
			return nil, err
		}
		carts[idx] = withTotals(carts[idx])
		updated = carts[idx]
		return carts, nil
	})
	if err != nil {
		return model.Cart{}, err
	}
	return updated, nil
}

func withTotals(cart model.Cart) model.Cart {
	if cart.Items == nil {
		cart.Items = []model.CartItem{}
	}
	cart.TotalItems = 0
	total := 0.0
	for _, item := range cart.Items {
		cart.TotalItems += item.Quantity
		total += item.Price * float64(item.Quantity)
	}
	cart.TotalPrice = roundCents(total)
	return cart
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

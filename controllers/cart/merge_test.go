package cartControllers

import (
	"testing"
	"time"

	"github.com/Kris1027/e-commerce-beta-sub000/models"
	"gorm.io/gorm"
)

func seedGuestCart(t *testing.T, db *gorm.DB, guestID string, items map[uint]int) models.GuestCart {
	t.Helper()
	cart := models.GuestCart{GuestID: guestID}
	if err := db.Create(&cart).Error; err != nil {
		t.Fatalf("seed guest cart: %v", err)
	}
	for pid, qty := range items {
		var p models.Product
		if err := db.First(&p, pid).Error; err != nil {
			t.Fatalf("product %d: %v", pid, err)
		}
		item := models.GuestCartItem{
			CartID: cart.CartID, ProductID: p.ID, ProductName: p.Name,
			ProductSlug: p.Slug, ProductImage: p.Image, Price: p.Price,
			Quantity: qty, AddedAt: time.Now(),
		}
		if err := db.Create(&item).Error; err != nil {
			t.Fatalf("seed guest item: %v", err)
		}
	}
	return cart
}

func seedUserCart(t *testing.T, db *gorm.DB, userID string, items map[uint]int) models.Cart {
	t.Helper()
	cart := models.Cart{UserID: userID}
	if err := db.Create(&cart).Error; err != nil {
		t.Fatalf("seed user cart: %v", err)
	}
	for pid, qty := range items {
		var p models.Product
		if err := db.First(&p, pid).Error; err != nil {
			t.Fatalf("product %d: %v", pid, err)
		}
		item := models.CartItem{
			CartID: cart.CartID, ProductID: p.ID, ProductName: p.Name,
			ProductSlug: p.Slug, ProductImage: p.Image, Price: p.Price,
			Quantity: qty, AddedAt: time.Now(),
		}
		if err := db.Create(&item).Error; err != nil {
			t.Fatalf("seed user item: %v", err)
		}
	}
	return cart
}

func TestMergeSumsSharedAndAppendsRest(t *testing.T) {
	db := newTestDB(t)
	a := seedProduct(t, db, "mug", "8.00", 20)
	b := seedProduct(t, db, "tee", "15.00", 20)

	seedGuestCart(t, db, "g1", map[uint]int{a.ID: 2})
	seedUserCart(t, db, "u1", map[uint]int{a.ID: 1, b.ID: 1})

	merged, err := MergeGuestCartIntoUserCart(db, "g1", "u1")
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if !merged {
		t.Fatal("merge reported nothing merged")
	}

	cart := loadCart(t, db, "u1")
	got := map[uint]int{}
	for _, it := range cart.Items {
		got[it.ProductID] = it.Quantity
	}
	if got[a.ID] != 3 || got[b.ID] != 1 || len(got) != 2 {
		t.Errorf("merged quantities = %v, want {%d:3, %d:1}", got, a.ID, b.ID)
	}

	// Summary was recomputed inside the merge transaction.
	// 3*8 + 1*15 = 39.00, flat shipping, 10% tax.
	if got := cart.ItemsPrice.StringFixed(2); got != "39.00" {
		t.Errorf("items_price = %s, want 39.00", got)
	}
	if got := cart.TotalPrice.StringFixed(2); got != "52.90" {
		t.Errorf("total_price = %s, want 52.90", got)
	}

	// The guest cart no longer exists.
	var count int64
	db.Model(&models.GuestCart{}).Where("guest_id = ?", "g1").Count(&count)
	if count != 0 {
		t.Error("guest cart still present after merge")
	}
	db.Model(&models.GuestCartItem{}).Count(&count)
	if count != 0 {
		t.Error("guest cart items still present after merge")
	}
}

func TestMergeCreatesUserCartWhenAbsent(t *testing.T) {
	db := newTestDB(t)
	a := seedProduct(t, db, "mug", "8.00", 20)
	seedGuestCart(t, db, "g1", map[uint]int{a.ID: 2})

	merged, err := MergeGuestCartIntoUserCart(db, "g1", "newuser")
	if err != nil || !merged {
		t.Fatalf("merge = %v, %v", merged, err)
	}

	cart := loadCart(t, db, "newuser")
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 2 {
		t.Errorf("items = %+v", cart.Items)
	}
}

func TestMergeClampsSummedQuantity(t *testing.T) {
	db := newTestDB(t)
	a := seedProduct(t, db, "mug", "8.00", 50)
	seedGuestCart(t, db, "g1", map[uint]int{a.ID: 7})
	seedUserCart(t, db, "u1", map[uint]int{a.ID: 6})

	if _, err := MergeGuestCartIntoUserCart(db, "g1", "u1"); err != nil {
		t.Fatalf("merge: %v", err)
	}

	cart := loadCart(t, db, "u1")
	if cart.Items[0].Quantity != 10 {
		t.Errorf("quantity = %d, want clamp to 10", cart.Items[0].Quantity)
	}
}

func TestMergeWithoutGuestCartIsNoop(t *testing.T) {
	db := newTestDB(t)
	merged, err := MergeGuestCartIntoUserCart(db, "ghost", "u1")
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if merged {
		t.Error("merge reported success with no guest cart")
	}
	var count int64
	db.Model(&models.Cart{}).Count(&count)
	if count != 0 {
		t.Error("no-op merge should not create a user cart")
	}
}

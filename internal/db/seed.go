package db

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// demo catalogue; categories line up by index
var demoRestaurants = [][3]string{
	{"Sushi Go", "Japanese", "Downtown"},
	{"Pasta Republic", "Italian", "Riverside"},
	{"Taco Verde", "Mexican", "Old Town"},
	{"Pho Station", "Vietnamese", "Market Square"},
	{"Burger Barn", "American", "Midtown"},
	{"Falafel House", "Middle Eastern", "University District"},
	{"Curry Leaf", "Indian", "Harbor"},
	{"Dim Sum Palace", "Chinese", "Chinatown"},
	{"Le Petit Bistro", "French", "Arts District"},
	{"Souvlaki Stop", "Greek", "Waterfront"},
	{"Seoul Kitchen", "Korean", "North End"},
	{"Bratwurst & Co", "German", "Brewery Row"},
}

// SeedDemoData resets the database and populates it with demo users,
// restaurants and reactions.
//
// Behavior:
//  1. Clears reactions, restaurants and users.
//  2. Creates 12 users with hashed passwords and 12 restaurants.
//  3. Generates random reactions (~70% likes) and writes restaurant counters
//     consistent with them, so every invariant holds from the first request.
func SeedDemoData(gdb *gorm.DB) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for _, table := range []string{"reactions", "restaurants", "users"} {
		if err := gdb.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	log.Println("Cleared existing data")

	// Users
	for i := 1; i <= 12; i++ {
		hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		user := User{
			ID:           uint64(i),
			Username:     fmt.Sprintf("user%d", i),
			Email:        fmt.Sprintf("user%d@example.com", i),
			PasswordHash: string(hash),
			Active:       true,
		}
		if err := gdb.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}
	}
	log.Println("Seeded 12 users.")

	// Restaurants
	for i, entry := range demoRestaurants {
		rest := Restaurant{
			ID:       uint64(i + 1),
			Name:     entry[0],
			Category: entry[1],
			Location: entry[2],
			Logo:     fmt.Sprintf("logos/%02d.png", i+1),
		}
		if err := gdb.Create(&rest).Error; err != nil {
			return fmt.Errorf("failed to seed restaurant: %w", err)
		}
	}
	log.Printf("Seeded %d restaurants.", len(demoRestaurants))

	// Reactions, with counters tallied alongside so the derived state is
	// consistent with the snapshot rows.
	type tally struct{ likes, dislikes, net int64 }
	tallies := make(map[uint64]*tally)

	for userID := uint64(1); userID <= 12; userID++ {
		for j := 0; j < 6; j++ {
			restaurantID := uint64(r.Intn(len(demoRestaurants)) + 1)

			liked := int8(1)
			if r.Intn(100) >= 70 {
				liked = -1
			}

			reaction := Reaction{
				UserID:       userID,
				RestaurantID: restaurantID,
				Liked:        &liked,
			}
			res := gdb.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "restaurant_id"}},
				DoNothing: true,
			}).Create(&reaction)
			if res.Error != nil {
				return fmt.Errorf("failed to seed reaction: %w", res.Error)
			}
			if res.RowsAffected == 0 {
				continue // pair already decided, keep tallies in sync with rows
			}

			t := tallies[restaurantID]
			if t == nil {
				t = &tally{}
				tallies[restaurantID] = t
			}
			if liked > 0 {
				t.likes++
				t.net++
			} else {
				t.dislikes++
				t.net--
			}
		}
	}

	for restaurantID, t := range tallies {
		err := gdb.Model(&Restaurant{}).
			Where("id = ?", restaurantID).
			UpdateColumns(map[string]interface{}{
				"likes":        t.likes,
				"dislikes":     t.dislikes,
				"net_score":    t.net,
				"weekly_likes": t.net,
			}).Error
		if err != nil {
			return fmt.Errorf("failed to seed counters: %w", err)
		}
	}

	return nil
}

// SeedMinimalData loads a small deterministic dataset for tests.
//
// Dataset:
//   - Users: user1, user2, user3
//   - Restaurants: Sushi Go (1), Pasta Republic (2), both with zero counters
//     except where reactions below imply otherwise:
//   - user2 liked restaurant 2 → likes=1, net=1, weekly=1
func SeedMinimalData(gdb *gorm.DB) error {
	for _, table := range []string{"reactions", "restaurants", "users"} {
		if err := gdb.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}

	users := []User{
		{ID: 1, Username: "user1", Email: "u1@test.com", PasswordHash: "x"},
		{ID: 2, Username: "user2", Email: "u2@test.com", PasswordHash: "x"},
		{ID: 3, Username: "user3", Email: "u3@test.com", PasswordHash: "x"},
	}
	if err := gdb.Create(&users).Error; err != nil {
		return err
	}

	restaurants := []Restaurant{
		{ID: 1, Name: "Sushi Go", Category: "Japanese", Location: "Downtown"},
		{ID: 2, Name: "Pasta Republic", Category: "Italian", Location: "Riverside",
			Likes: 1, NetScore: 1, WeeklyLikes: 1},
	}
	if err := gdb.Create(&restaurants).Error; err != nil {
		return err
	}

	like := int8(1)
	reactions := []Reaction{
		{UserID: 2, RestaurantID: 2, Liked: &like},
	}
	return gdb.Create(&reactions).Error
}

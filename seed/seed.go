// Package seed loads a small sample catalog and an admin account so a fresh
// database is browsable immediately. Runs only behind SEED_DB=true and never
// overwrites existing rows.
package seed

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/furqanahmad03/bookstore-api/models"
)

var sampleBooks = []models.Product{
	{
		Name:         "To Kill a Mockingbird",
		Slug:         "to-kill-a-mockingbird",
		Author:       "Harper Lee",
		Description:  "Mockingbird was published in 1960 and became an immediate classic of literature. The novel examines racism in the American South through the innocent wide eyes of a clever young girl named Jean Louise (Scout) Finch.",
		Image:        "/images/To-Kill-a-Mockingbird.webp",
		Category:     "Fiction",
		Price:        49,
		Rating:       4.8,
		NumReviews:   115,
		CountInStock: 15,
	},
	{
		Name:         "Thinking, Fast and Slow",
		Slug:         "thinking-fast-and-slow",
		Author:       "Daniel Kahneman",
		Description:  "Your success in life depends upon mastering your brain's two systems, one of which is fast, intuitive, and emotional, and the other of which is slow, deliberate, and logical.",
		Image:        "/images/thinkfast.jpg",
		Category:     "Health and fitness",
		Price:        59,
		Rating:       4.2,
		NumReviews:   45,
		CountInStock: 5,
	},
	{
		Name:         "The Alchemist",
		Slug:         "the-alchemist",
		Author:       "Paulo Coelho",
		Description:  "Combining magic, mysticism, wisdom and wonder into an inspiring tale of self-discovery, The Alchemist has become a modern classic, selling millions of copies around the world.",
		Image:        "/images/The-Alchemist.jpg",
		Category:     "Fiction",
		Price:        40,
		Rating:       4.7,
		NumReviews:   85,
		CountInStock: 15,
	},
	{
		Name:         "Atomic Habits",
		Slug:         "atomic-habits",
		Author:       "James Clear",
		Description:  "Atomic Habits is the definitive guide to breaking bad behaviors and adopting good ones in four steps, showing you how small, incremental, everyday routines compound into massive, positive change over time.",
		Image:        "/images/atomic-habits.jpg",
		Category:     "Health and fitness",
		Price:        69,
		Rating:       4.8,
		NumReviews:   95,
		CountInStock: 15,
	},
	{
		Name:         "The Namesake",
		Slug:         "the-namesake",
		Author:       "Jhumpa Lahiri",
		Description:  "The story unfolds with Ashima's grandmother coming to know that Ashima is pregnant, and follows the family's first Sahib through complex Indian situations.",
		Image:        "/images/The-Namesake.jpg",
		Category:     "Fiction",
		Price:        59,
		Rating:       4.5,
		NumReviews:   25,
		CountInStock: 5,
	},
	{
		Name:         "The Power of Positive Thinking",
		Slug:         "the-power-of-positive-thinking",
		Author:       "Dr. Norman Vincent Peale",
		Description:  "In this phenomenal bestseller, Dr. Peale demonstrates the power of faith in action. With the practical techniques outlined in this book, you can energize your life and give yourself the initiative needed to carry out your ambitions and hopes.",
		Image:        "/images/positive_thinking.jpg",
		Category:     "Health and fitness",
		Price:        45,
		Rating:       4.2,
		NumReviews:   45,
		CountInStock: 8,
	},
}

// Run inserts missing sample books and ensures an admin user exists. The
// admin credentials come from ADMIN_EMAIL / ADMIN_PASSWORD.
func Run(db *gorm.DB, adminEmail, adminPassword string) error {
	for _, book := range sampleBooks {
		var existing models.Product
		err := db.Where("slug = ?", book.Slug).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&book).Error; err != nil {
			return err
		}
		log.Printf("✅ Seeded book: %s", book.Name)
	}

	if adminEmail == "" || adminPassword == "" {
		return nil
	}

	var admin models.User
	err := db.Where("email = ?", adminEmail).First(&admin).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin = models.User{
		Name:         "Admin",
		Email:        adminEmail,
		PasswordHash: string(hash),
		IsAdmin:      true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("✅ Seeded admin user: %s", adminEmail)
	return nil
}

package configs

import (
	"log"

	"backend/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first moderator account from env, once.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}

// SeedTagOptions fills the admin-controlled tag list with defaults.
func SeedTagOptions() error {
	db := DB()

	defaults := []entity.TagOption{
		{Name: "Backend", SortOrder: 1, Active: true},
		{Name: "Frontend", SortOrder: 2, Active: true},
		{Name: "Mobile", SortOrder: 3, Active: true},
		{Name: "DevOps", SortOrder: 4, Active: true},
		{Name: "Data", SortOrder: 5, Active: true},
		{Name: "Product", SortOrder: 6, Active: true},
		{Name: "Design", SortOrder: 7, Active: true},
		{Name: "Career", SortOrder: 8, Active: true},
	}
	for _, t := range defaults {
		if err := db.FirstOrCreate(&entity.TagOption{}, entity.TagOption{Name: t.Name}).Error; err != nil {
			return err
		}
		db.Model(&entity.TagOption{}).Where("name = ?", t.Name).
			Updates(map[string]any{"sort_order": t.SortOrder, "active": true})
	}

	log.Println("tag options seeded")
	return nil
}

package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"ecommerce/internal/config"
	"ecommerce/internal/db"
	"ecommerce/internal/model"
	"ecommerce/internal/repository"
)

const defaultSeedFile = "seed.json"

// seedData is the on-disk demo dataset.
type seedData struct {
	Users []struct {
		Name    string `json:"name"`
		Address string `json:"address"`
		Email   string `json:"email"`
	} `json:"users"`
	Products []struct {
		ProductName string          `json:"product_name"`
		Price       decimal.Decimal `json:"price"`
	} `json:"products"`
}

func main() {
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Product{}, &model.Order{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	path := os.Getenv("SEED_FILE")
	if path == "" {
		path = defaultSeedFile
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read seed file %s: %v", path, err)
	}

	var data seedData
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Fatalf("parse seed file: %v", err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)

	users := 0
	for _, u := range data.Users {
		existing, err := userRepo.FindByEmail(ctx, u.Email)
		if err != nil && err != gorm.ErrRecordNotFound {
			log.Fatalf("look up user %s: %v", u.Email, err)
		}
		if existing != nil {
			continue
		}
		if err := userRepo.Create(ctx, &model.User{Name: u.Name, Address: u.Address, Email: u.Email}); err != nil {
			log.Fatalf("create user %s: %v", u.Email, err)
		}
		users++
	}

	products := 0
	for _, p := range data.Products {
		existing, err := productRepo.FindByName(ctx, p.ProductName)
		if err != nil && err != gorm.ErrRecordNotFound {
			log.Fatalf("look up product %s: %v", p.ProductName, err)
		}
		if existing != nil {
			continue
		}
		if err := productRepo.Create(ctx, &model.Product{ProductName: p.ProductName, Price: p.Price}); err != nil {
			log.Fatalf("create product %s: %v", p.ProductName, err)
		}
		products++
	}

	log.Printf("seeded %d users and %d products from %s", users, products, path)
}

package main

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/freshmart/grocery-backend/internal/address"
	"github.com/freshmart/grocery-backend/internal/category"
	"github.com/freshmart/grocery-backend/internal/config"
	"github.com/freshmart/grocery-backend/internal/order"
	"github.com/freshmart/grocery-backend/internal/product"
	"github.com/freshmart/grocery-backend/internal/suggest"
	"github.com/freshmart/grocery-backend/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()

	if err := ensureSchema(db); err != nil {
		panic(err)
	}
	seedProducts(db)

	app := fiber.New()
	setupCORS(app)

	// user routes first so sign-up/sign-in stay public
	userService := user.NewService(user.NewPostgresRepository(db))
	userHandler := user.NewHandler(userService)
	userHandler.RegisterPublicRoutes(app)

	productHandler := product.NewHandler(product.NewService(product.NewPostgresRepository(db)))
	productHandler.RegisterPublicRoutes(app)

	categoryHandler := category.NewHandler(category.NewService(category.NewPostgresRepository(db)))
	categoryHandler.RegisterPublicRoutes(app)

	suggestHandler := suggest.NewHandler(suggest.NewService(suggest.NewPostgresRepository(db)))
	suggestHandler.RegisterPublicRoutes(app)

	// checkout is public: guest orders carry no user id
	orderHandler := order.NewHandler(order.NewService(order.NewPostgresRepository(db)))
	orderHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	userHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)

	addressHandler := address.NewHandler(address.NewService(address.NewPostgresRepository(db)))
	addressHandler.RegisterProtectedRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func mustOpenDB(url string) *sql.DB {
	if url == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", url)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

func ensureSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			category TEXT,
			price INT NOT NULL,
			image TEXT,
			stock INT NOT NULL DEFAULT 0,
			description TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			reference TEXT NOT NULL,
			user_id INT REFERENCES users(id),
			total INT NOT NULL,
			status TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id INT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			product_id INT NOT NULL,
			quantity INT NOT NULL,
			price INT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS addresses (
			id SERIAL PRIMARY KEY,
			user_id INT NOT NULL REFERENCES users(id),
			label TEXT,
			line1 TEXT NOT NULL,
			city TEXT NOT NULL,
			phone TEXT
		)`,
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// seedProducts fills an empty catalog with a small starter assortment so a
// fresh deployment has something to browse.
func seedProducts(db *sql.DB) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&count); err != nil || count > 0 {
		return
	}

	seed := []product.Product{
		{Name: "Bananas", Category: "Fruit", Price: 3, Image: "/img/bananas.jpg", Stock: 120, Description: "Bunch of ripe bananas"},
		{Name: "Green Apples", Category: "Fruit", Price: 5, Image: "/img/apples.jpg", Stock: 80, Description: "Crisp Granny Smith apples, 1 kg"},
		{Name: "Whole Milk", Category: "Dairy", Price: 4, Image: "/img/milk.jpg", Stock: 60, Description: "Fresh whole milk, 1 liter"},
		{Name: "Cheddar Cheese", Category: "Dairy", Price: 9, Image: "/img/cheddar.jpg", Stock: 30, Description: "Mature cheddar, 400 g block"},
		{Name: "Sourdough Bread", Category: "Bakery", Price: 6, Image: "/img/sourdough.jpg", Stock: 25, Description: "Stone-baked sourdough loaf"},
		{Name: "Free-Range Eggs", Category: "Dairy", Price: 7, Image: "/img/eggs.jpg", Stock: 45, Description: "Dozen free-range eggs"},
		{Name: "Basmati Rice", Category: "Pantry", Price: 12, Image: "/img/rice.jpg", Stock: 50, Description: "Basmati rice, 2 kg bag"},
		{Name: "Olive Oil", Category: "Pantry", Price: 15, Image: "/img/olive-oil.jpg", Stock: 20, Description: "Extra virgin olive oil, 750 ml"},
	}
	for _, p := range seed {
		if _, err := db.Exec(
			`INSERT INTO products (name, category, price, image, stock, description) VALUES ($1,$2,$3,$4,$5,$6)`,
			p.Name, p.Category, p.Price, p.Image, p.Stock, p.Description,
		); err != nil {
			fmt.Printf("warning: could not seed product %q: %v\n", p.Name, err)
		}
	}
}

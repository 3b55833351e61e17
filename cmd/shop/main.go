package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/freshmart/grocery-backend/internal/apiclient"
	"github.com/freshmart/grocery-backend/internal/cart"
	"github.com/freshmart/grocery-backend/internal/config"
	"github.com/freshmart/grocery-backend/internal/product"
	"github.com/freshmart/grocery-backend/internal/suggest"
)

// main wires up a terminal storefront against a running API server. The
// cart lives here, on the client, and only its snapshot ever crosses the
// wire at checkout.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	base := os.Getenv("GROCERY_API_URL")
	if base == "" {
		base = "http://localhost:8080"
	}

	client := apiclient.New(base)
	basket := cart.New()
	checkout := cart.NewCheckout(client)

	var suggester cart.Suggester
	if cfg.SuggestURL != "" {
		suggester = suggest.NewHTTPSuggester(cfg.SuggestURL)
	}

	ctx := context.Background()
	catalog, err := client.Products(ctx)
	if err != nil {
		fmt.Printf("could not load catalog: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("loaded %d products. commands: list, search <q>, add <id>, remove <id>, cart, login <email> <password>, checkout, orders, quit\n", len(catalog))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "list":
			printProducts(catalog)
		case "search":
			printProducts(product.Filter(catalog, strings.Join(fields[1:], " "), ""))
		case "add":
			if p, ok := findProduct(catalog, fields[1:]); ok {
				basket.AddLine(p)
				fmt.Printf("added %s (%d items in cart)\n", p.Name, basket.Count())
				if suggester != nil {
					for _, s := range cart.Suggestions(ctx, basket, suggester) {
						fmt.Printf("  you might also like: %s\n", s)
					}
				}
			}
		case "remove":
			if p, ok := findProduct(catalog, fields[1:]); ok {
				basket.RemoveLine(p.ID)
				fmt.Printf("removed %s (%d items in cart)\n", p.Name, basket.Count())
			}
		case "cart":
			for _, line := range basket.Lines() {
				fmt.Printf("%3dx %-24s %6d\n", line.Quantity, line.Product.Name, line.Product.Price*line.Quantity)
			}
			fmt.Printf("total %d (+%d handling at checkout)\n", basket.Total(), basket.Snapshot().HandlingFee)
		case "login":
			if len(fields) != 3 {
				fmt.Println("usage: login <email> <password>")
				continue
			}
			u, err := client.Login(ctx, fields[1], fields[2])
			if err != nil {
				fmt.Printf("login failed: %v\n", err)
				continue
			}
			fmt.Printf("hello, %s\n", u.Name)
		case "checkout":
			var userID *int
			if id := client.UserID(); id > 0 {
				userID = &id
			}
			orderID, err := checkout.Submit(ctx, basket, userID)
			if err != nil {
				// cart is untouched; the user can fix the problem and retry
				fmt.Printf("checkout failed: %v\n", err)
				continue
			}
			fmt.Printf("order %d placed, thank you!\n", orderID)
		case "orders":
			if client.UserID() == 0 {
				fmt.Println("log in first")
				continue
			}
			orders, err := client.OrdersForUser(ctx, client.UserID())
			if err != nil {
				fmt.Printf("could not load orders: %v\n", err)
				continue
			}
			for _, ord := range orders {
				fmt.Printf("#%d  %s  %s  total %d\n", ord.ID, ord.CreatedAt, ord.Status, ord.Total)
			}
		case "quit", "exit":
			return
		default:
			fmt.Println("unknown command")
		}
	}
}

func printProducts(products []product.Product) {
	if len(products) == 0 {
		fmt.Println("no results")
		return
	}
	for _, p := range products {
		fmt.Printf("%3d  %-24s %-10s %6d\n", p.ID, p.Name, p.Category, p.Price)
	}
}

func findProduct(catalog []product.Product, args []string) (product.Product, bool) {
	if len(args) != 1 {
		fmt.Println("usage: add|remove <id>")
		return product.Product{}, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Println("product id must be a number")
		return product.Product{}, false
	}
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	fmt.Println("no such product")
	return product.Product{}, false
}

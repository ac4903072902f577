package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.session == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", a.session.Email, a.session.Role)
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to the e-store back-office CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	a.Login(ctx)

	for {
		fmt.Printf("pos %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: profile, products, orders, setstatus, invoices, pdf, logout, exit")
			} else {
				fmt.Println("Available commands: register, login, exit")
			}
		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)
		case "profile":
			a.profile(ctx)
		case "products":
			a.products(ctx)
		case "orders":
			a.orders(ctx)
		case "setstatus":
			if len(args) < 2 {
				fmt.Println("Usage: setstatus <order_id> <status>")
				continue
			}
			a.setOrderStatus(ctx, args[0], args[1])
		case "invoices":
			a.invoices(ctx)
		case "pdf":
			if len(args) == 0 {
				fmt.Println("Usage: pdf <invoice_id>")
				continue
			}
			a.invoicePDF(ctx, args[0])
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}

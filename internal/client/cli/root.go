package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

func (a *App) getStatus(ctx context.Context) string {
	s := ""
	if u := a.session.User(); u != nil {
		s = u.Username + fmt.Sprintf(" %.2f", a.session.Balance())
	}
	if a.prefs.Dark(ctx) {
		s += " dark"
	}
	s = strings.TrimSpace(s)
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root runs the REPL until EOF or exit. Command handlers report their own
// errors through alert; the loop itself never fails.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to roamer (type 'help' for commands)")

	for {
		fmt.Printf("roamer %s> ", a.getStatus(ctx))
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.printHelp()

		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)

		case "countries":
			a.listCountries(ctx)
		case "country":
			a.showCountry(ctx, args)
		case "city":
			a.showCity(ctx, args)
		case "hotels":
			a.listHotels(ctx)
		case "hotel":
			a.showHotel(ctx, args)
		case "attractions":
			a.listAttractions(ctx)
		case "trips":
			a.listTrips(ctx)
		case "trip":
			a.showTrip(ctx, args)
		case "guides":
			a.listGuides(ctx, args)

		case "fav":
			a.toggleFavourite(ctx, args)
		case "review":
			a.addReview(ctx, args)
		case "reviews":
			a.listReviews(ctx, args)

		case "bookroom":
			a.bookRoom(ctx)
		case "booktrip":
			a.bookTrip(ctx, args)
		case "plantrip":
			a.planCustomTrip(ctx)

		case "wallet":
			a.showWallet(ctx)
		case "topup":
			a.requestTopUp(ctx, args)
		case "transactions":
			a.listTransactions(ctx)
		case "orders":
			a.listOrders(ctx)
		case "cancel":
			a.cancelOrder(ctx, args)
		case "notifications":
			a.listNotifications(ctx)

		case "theme":
			a.toggleTheme(ctx)

		case "exit", "quit":
			fmt.Println("Bye!")
			return

		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}

func (a *App) printHelp() {
	if a.isLoggedIn() {
		fmt.Println("Browse:   countries, country <id>, city <id>, hotels, hotel <id>, attractions, trips, trip <id>, guides [cityId]")
		fmt.Println("Actions:  fav <hotel|attraction|trip> <id>, review <type> <id>, reviews <type> <id>")
		fmt.Println("Booking:  bookroom, booktrip <id> <seats>, plantrip")
		fmt.Println("Account:  wallet, topup <amount>, transactions, orders, cancel <id>, notifications, logout")
		fmt.Println("Other:    theme, exit")
	} else {
		fmt.Println("Available commands: register, login, countries, country <id>, city <id>, hotels, hotel <id>, attractions, trips, trip <id>, theme, exit")
	}
}

// parseID reads the first argument as an int64 id.
func parseID(args []string) (int64, bool) {
	if len(args) == 0 {
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

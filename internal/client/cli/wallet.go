package cli

import (
	"context"
	"fmt"
	"strconv"
)

func (a *App) showWallet(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Println("Sign in first.")
		return
	}
	if err := a.session.RefreshBalance(ctx); err != nil {
		a.alert(err)
		return
	}
	fmt.Printf("Balance: %.2f\n", a.session.Balance())

	requests, err := a.api.WalletRequests(ctx)
	if err != nil {
		a.alert(err)
		return
	}
	for _, r := range requests {
		fmt.Printf("  request #%d  %.2f  %s  %s\n", r.ID, r.Amount, r.Status, r.CreatedAt.Format("2006-01-02"))
	}
}

func (a *App) requestTopUp(ctx context.Context, args []string) {
	if !a.isLoggedIn() {
		fmt.Println("Sign in first.")
		return
	}
	if len(args) < 1 {
		fmt.Println("Usage: topup <amount>")
		return
	}
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil || amount <= 0 {
		fmt.Println("Usage: topup <amount>")
		return
	}

	req, err := a.api.CreateWalletRequest(ctx, amount)
	if err != nil {
		a.alert(err)
		return
	}
	fmt.Printf("Top-up request #%d for %.2f submitted (%s).\n", req.ID, req.Amount, req.Status)
}

func (a *App) listTransactions(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Println("Sign in first.")
		return
	}
	txs, err := a.api.WalletTransactions(ctx, 1, defaultPageSize)
	if err != nil {
		a.alert(err)
		return
	}
	if len(txs) == 0 {
		fmt.Println("No transactions yet.")
		return
	}
	for _, t := range txs {
		fmt.Printf("%4d  %-10s  %+9.2f  %s  %s\n", t.ID, t.Kind, t.Amount, t.CreatedAt.Format("2006-01-02"), t.Note)
	}
}

func (a *App) listOrders(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Println("Sign in first.")
		return
	}
	orders, err := a.api.Orders(ctx, 1, defaultPageSize)
	if err != nil {
		a.alert(err)
		return
	}
	if len(orders) == 0 {
		fmt.Println("No orders yet.")
		return
	}
	for _, o := range orders {
		fmt.Printf("%4d  %-12s  ref %-4d  %9.2f  %s\n", o.ID, o.Kind, o.RefID, o.Total, o.Status)
	}
}

func (a *App) cancelOrder(ctx context.Context, args []string) {
	if !a.isLoggedIn() {
		fmt.Println("Sign in first.")
		return
	}
	id, ok := parseID(args)
	if !ok {
		fmt.Println("Usage: cancel <order id>")
		return
	}

	order, err := a.api.CancelOrder(ctx, id)
	if err != nil {
		a.alert(err)
		return
	}
	fmt.Printf("Order #%d is now %s.\n", order.ID, order.Status)

	// Cancellation may have refunded the wallet.
	if err := a.session.RefreshBalance(ctx); err == nil {
		fmt.Printf("Balance: %.2f\n", a.session.Balance())
	}
}

func (a *App) listNotifications(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Println("Sign in first.")
		return
	}
	notes, err := a.api.Notifications(ctx, 1, defaultPageSize)
	if err != nil {
		a.alert(err)
		return
	}
	if len(notes) == 0 {
		fmt.Println("No notifications.")
		return
	}
	for _, n := range notes {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		fmt.Printf("%s %4d  %s", marker, n.ID, n.Title)
		if n.Body != "" {
			fmt.Printf(": %s", n.Body)
		}
		fmt.Println()
	}
}

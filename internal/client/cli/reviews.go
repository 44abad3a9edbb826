package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/vpotapovs/roamer/internal/client/api"
)

func (a *App) addReview(ctx context.Context, args []string) {
	if !a.isLoggedIn() {
		fmt.Println("Sign in first.")
		return
	}
	if len(args) < 2 {
		fmt.Println("Usage: review <hotel|attraction|trip> <id>")
		return
	}
	kind, ok := parseFavouriteKind(args[0])
	if !ok {
		fmt.Println("Usage: review <hotel|attraction|trip> <id>")
		return
	}
	id, ok := parseID(args[1:])
	if !ok {
		fmt.Println("Usage: review <hotel|attraction|trip> <id>")
		return
	}

	rating, err := GetInt(a.reader, "Rating (1-5)", os.Stdout)
	if err != nil {
		a.alert(err)
		return
	}
	if rating < 1 || rating > 5 {
		fmt.Println("Rating must be between 1 and 5.")
		return
	}
	comment, err := getSimpleText(a.reader, "Comment (optional)", os.Stdout)
	if err != nil {
		a.alert(err)
		return
	}

	review, err := a.api.CreateReview(ctx, api.CreateReviewParams{
		Kind:     kind,
		EntityID: id,
		Rating:   rating,
		Comment:  comment,
	})
	if err != nil {
		a.alert(err)
		return
	}
	fmt.Printf("Review #%d saved.\n", review.ID)
}

func (a *App) listReviews(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Println("Usage: reviews <hotel|attraction|trip> <id>")
		return
	}
	kind, ok := parseFavouriteKind(args[0])
	if !ok {
		fmt.Println("Usage: reviews <hotel|attraction|trip> <id>")
		return
	}
	id, ok := parseID(args[1:])
	if !ok {
		fmt.Println("Usage: reviews <hotel|attraction|trip> <id>")
		return
	}

	reviews, err := a.api.Reviews(ctx, kind, id, 1, defaultPageSize)
	if err != nil {
		a.alert(err)
		return
	}
	if len(reviews) == 0 {
		fmt.Println("No reviews yet.")
		return
	}
	for _, r := range reviews {
		stars := strings.Repeat("*", r.Rating)
		fmt.Printf("%-5s %-20s %s\n", stars, r.UserName, r.Comment)
	}
}

func (a *App) toggleTheme(ctx context.Context) {
	dark, err := a.prefs.Toggle(ctx)
	if err != nil {
		a.alert(err)
		return
	}
	if dark {
		fmt.Println("Dark mode on.")
	} else {
		fmt.Println("Dark mode off.")
	}
}

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/vpotapovs/roamer/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the signup form and creates an account. The avatar is
// optional; an empty path sends a plain JSON body.
func (a *App) Register(ctx context.Context) {
	name, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		a.alert(err)
		return
	}
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		a.alert(err)
		return
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		a.alert(err)
		return
	}
	avatar, err := getSimpleText(a.reader, "Avatar image path (optional)", os.Stdout)
	if err != nil {
		a.alert(err)
		return
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		a.alert(err)
		return
	}

	err = a.session.Register(ctx, api.RegisterParams{
		Name:       name,
		Username:   username,
		Email:      email,
		Password:   password,
		AvatarPath: avatar,
	})
	if err != nil {
		a.alert(err)
		return
	}
	fmt.Println("Account created. You are signed in.")
}

// Login prompts for credentials and authenticates.
func (a *App) Login(ctx context.Context) {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		a.alert(err)
		return
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		a.alert(err)
		return
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		a.alert(err)
		return
	}
	fmt.Printf("Signed in as %s.\n", a.session.User().Username)
}

// Logout signs out. Safe to call when already signed out.
func (a *App) Logout(ctx context.Context) {
	if err := a.session.Logout(ctx); err != nil {
		a.alert(err)
		return
	}
	fmt.Println("Signed out.")
}

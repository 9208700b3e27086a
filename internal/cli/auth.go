package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mssbox/blindboxctl/internal/gate"
	"github.com/mssbox/blindboxctl/internal/models"
	"github.com/mssbox/blindboxctl/internal/storage"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

const loginFallbackMsg = "Login failed. Please check your credentials."

// Login prompts for credentials and authenticates against the backend.
//
// Field validation happens before any network call: a missing or malformed
// email and an empty password are reported inline and abort the submission.
// On envelope success the token and account are committed to the state
// container in one step, and the view navigates by role: administrators land
// on the admin dashboard, everyone else on the blind-box list.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if email == "" || !strings.Contains(email, "@") {
		printlnFn("Please enter a valid email address.")
		return nil
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	if password == "" {
		printlnFn("Password is required.")
		return nil
	}

	resp, err := a.api.Login(ctx, email, password)
	if err != nil {
		a.state.Notify(loginFallbackMsg, models.NotifyError)
		return nil
	}

	if !resp.Success || resp.Data.Token == "" {
		msg := resp.Message
		if msg == "" {
			msg = loginFallbackMsg
		}
		a.state.Notify(msg, models.NotifyError)
		return nil
	}

	user := models.User{
		ID:    resp.Data.AccountID,
		Email: resp.Data.Email,
		Role:  models.Role(resp.Data.Role),
	}
	if err := a.state.Login(ctx, resp.Data.Token, user); err != nil {
		a.state.Notify(loginFallbackMsg, models.NotifyError)
		return nil
	}

	if user.IsAdmin() {
		return a.Open(ctx, "/admin/dashboard")
	}
	return a.Open(ctx, "/dashboard")
}

// Logout tears the session down and returns to the login view. Safe to call
// with no session present.
func (a *App) Logout(ctx context.Context) error {
	a.state.Logout(ctx)
	a.currentPath = gate.LoginPath
	a.history = nil
	return nil
}

// Session shows what the held token claims about itself. The claims are
// decoded without verification and are display-only; they have no bearing on
// any authentication decision, which remains the token+user conjunction.
func (a *App) Session(ctx context.Context) error {
	token, ok, _ := a.store.Get(ctx, storage.KeyToken)
	if !ok || token == "" {
		printlnFn("No active session.")
		return nil
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		printlnFn("Session token held (opaque).")
		return nil
	}

	if sub, err := parsed.Claims.GetSubject(); err == nil && sub != "" {
		printlnFn("Subject:", sub)
	}
	if exp, err := parsed.Claims.GetExpirationTime(); err == nil && exp != nil {
		printlnFn(fmt.Sprintf("Expires: %s", exp.Format(time.RFC3339)))
	}
	if u, ok := a.state.CurrentUser(); ok {
		printlnFn("Account:", u.Email)
	}
	return nil
}

// Theme flips the light/dark preference and persists it.
func (a *App) Theme(ctx context.Context) error {
	printlnFn("Theme:", string(a.state.ToggleTheme(ctx)))
	return nil
}

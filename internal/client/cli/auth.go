package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/hrconsole/internal/client/session"
	"github.com/dmitrijs2005/hrconsole/internal/client/table"
	"github.com/dmitrijs2005/hrconsole/internal/common"
)

func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.in, "Enter username", a.out)
	if err != nil {
		return err
	}
	if username == "" {
		return errors.New("username is required")
	}

	password, err := GetPassword(a.in, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	acc, err := a.session.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			return err
		}
		a.log.Error(ctx, "login failed", "error", err)
		return errors.New(table.Category(err))
	}

	printlnFn(fmt.Sprintf("Welcome, %s (%s)", acc.DisplayName(), acc.Role))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out.")
	return nil
}

func (a *App) WhoAmI() error {
	acc, err := a.account()
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("%s <%s> id=%s role=%s", acc.DisplayName(), acc.Username, acc.ID, acc.Role))
	return nil
}

package cli

import (
	"context"
	"errors"
	"fmt"

	"passvault/internal/auth"
	"passvault/internal/common"
	"passvault/internal/repository"
)

func (a *App) createAdmin(ctx context.Context) error {
	fmt.Fprintln(a.out, "Creating the vault administrator.")

	username, err := getSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		return err
	}
	master, err := getPassword("Choose a master password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(master)

	fmt.Fprintln(a.out, "Optionally set a second-factor password (leave empty to skip).")
	twoFactor, err := getPassword("Second-factor password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(twoFactor)

	admin, err := a.flow.CreateAdmin(ctx, username, string(master), string(twoFactor))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Administrator %q created.\n", admin.Username)
	return nil
}

// login asks for credentials until authentication succeeds, running the
// second-factor dialogue when one is configured, then loads the account
// repository under the fresh session key.
func (a *App) login(ctx context.Context) error {
	for {
		username, err := getSimpleText(a.reader, "Username", a.out)
		if err != nil {
			return err
		}
		password, err := getPassword("Master password", a.out)
		if err != nil {
			return err
		}

		_, sess, err := a.flow.Authenticate(ctx, username, string(password))
		common.WipeByteArray(password)
		if errors.Is(err, common.ErrAuthentication) {
			fmt.Fprintln(a.out, "Wrong username or password.")
			continue
		}
		if err != nil {
			return err
		}

		if sess == nil {
			if err := a.secondFactor(ctx); err != nil {
				if errors.Is(err, common.ErrAuthentication) {
					fmt.Fprintln(a.out, "Second factor failed, starting over.")
					a.flow.Logout(ctx)
					continue
				}
				return err
			}
		}

		repo, err := repository.New(ctx, a.store, a.flow.Session(), a.log)
		if err != nil {
			return err
		}
		a.repo = repo
		fmt.Fprintln(a.out, "Vault unlocked.")
		return nil
	}
}

// secondFactor runs the challenge: verify the 2FA password, show the issued
// code, and require the user to type it back exactly.
func (a *App) secondFactor(ctx context.Context) error {
	for a.flow.State() == auth.StateAwaitingSecondFactor {
		password, err := getPassword("Second-factor password", a.out)
		if err != nil {
			return err
		}
		code, err := a.flow.VerifyTwoFactor(ctx, string(password))
		common.WipeByteArray(password)
		if errors.Is(err, common.ErrAuthentication) {
			fmt.Fprintln(a.out, "Wrong second-factor password.")
			continue
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(a.out, "Your verification code is: %s\n", code.Code)
		entered, err := getSimpleText(a.reader, "Enter the verification code", a.out)
		if err != nil {
			return err
		}

		if _, err := a.flow.ConfirmCode(ctx, entered); err != nil {
			if errors.Is(err, common.ErrAuthentication) {
				fmt.Fprintln(a.out, "Code mismatch or expired, try again.")
				continue
			}
			return err
		}
	}
	return nil
}

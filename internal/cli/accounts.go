package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"passvault/internal/common"
	"passvault/internal/cryptox"
	"passvault/internal/models"
)

func (a *App) printAccounts(accounts []*models.Account) {
	if len(accounts) == 0 {
		fmt.Fprintln(a.out, "No accounts.")
		return
	}
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PLATFORM\tIDENTIFIER\tCATEGORY\tUPDATED")
	for _, acc := range accounts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			acc.Platform, acc.Identifier, acc.Category, acc.UpdatedAt.Format("2006-01-02 15:04"))
	}
	w.Flush()
}

func (a *App) list(ctx context.Context) error {
	a.printAccounts(a.repo.All(ctx))
	return nil
}

func (a *App) add(ctx context.Context) error {
	platform, err := getSimpleText(a.reader, "Platform", a.out)
	if err != nil {
		return err
	}
	identifier, err := getSimpleText(a.reader, "Email or username", a.out)
	if err != nil {
		return err
	}
	secret, err := getPassword("Password (empty to generate one)", a.out)
	if err != nil {
		return err
	}
	if len(secret) == 0 {
		generated, err := cryptox.GeneratePassword(cryptox.DefaultPasswordLength, cryptox.DefaultPasswordOptions())
		if err != nil {
			return err
		}
		secret = []byte(generated)
		fmt.Fprintf(a.out, "Generated password: %s\n", generated)
	}
	category, err := getSimpleText(a.reader, "Category", a.out)
	if err != nil {
		return err
	}
	notes, err := getSimpleText(a.reader, "Notes (optional)", a.out)
	if err != nil {
		return err
	}

	account, err := a.repo.Create(ctx, platform, identifier, string(secret), category, notes)
	common.WipeByteArray(secret)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Account for %q saved.\n", account.Platform)
	return nil
}

func (a *App) platformArg(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	return getSimpleText(a.reader, prompt, a.out)
}

func (a *App) show(ctx context.Context, args []string) error {
	platform, err := a.platformArg(args, "Platform")
	if err != nil {
		return err
	}
	account, err := a.repo.FindByPlatform(ctx, platform)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Platform:   %s\n", account.Platform)
	fmt.Fprintf(a.out, "Identifier: %s\n", account.Identifier)
	fmt.Fprintf(a.out, "Secret:     %s\n", account.Secret)
	fmt.Fprintf(a.out, "Category:   %s\n", account.Category)
	if account.Notes != "" {
		fmt.Fprintf(a.out, "Notes:      %s\n", account.Notes)
	}
	fmt.Fprintf(a.out, "Created:    %s\n", account.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(a.out, "Updated:    %s\n", account.UpdatedAt.Format("2006-01-02 15:04"))
	return nil
}

func (a *App) update(ctx context.Context, args []string) error {
	platform, err := a.platformArg(args, "Platform")
	if err != nil {
		return err
	}
	if _, err := a.repo.FindByPlatform(ctx, platform); err != nil {
		return err
	}

	var upd models.AccountUpdate

	identifier, err := getSimpleText(a.reader, "New email or username (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if identifier != "" {
		upd.Identifier = &identifier
	}

	secret, err := getPassword("New password (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if len(secret) > 0 {
		s := string(secret)
		upd.Secret = &s
	}

	category, err := getSimpleText(a.reader, "New category (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if category != "" {
		upd.Category = &category
	}

	notes, err := getSimpleText(a.reader, "New notes (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if notes != "" {
		upd.Notes = &notes
	}

	account, err := a.repo.Update(ctx, platform, upd)
	common.WipeByteArray(secret)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Account for %q updated.\n", account.Platform)
	return nil
}

func (a *App) delete(ctx context.Context, args []string) error {
	platform, err := a.platformArg(args, "Platform")
	if err != nil {
		return err
	}
	if err := a.repo.Delete(ctx, platform); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Account for %q deleted.\n", platform)
	return nil
}

func (a *App) search(ctx context.Context, args []string) error {
	query := strings.Join(args, " ")
	if query == "" {
		var err error
		if query, err = getSimpleText(a.reader, "Search for", a.out); err != nil {
			return err
		}
	}
	a.printAccounts(a.repo.Search(ctx, query))
	return nil
}

func (a *App) categories(ctx context.Context) error {
	for _, c := range a.repo.ListCategories(ctx) {
		if c == "" {
			c = "(uncategorized)"
		}
		fmt.Fprintln(a.out, c)
	}
	return nil
}

func (a *App) summary(ctx context.Context) error {
	s := a.repo.Summary(ctx)
	fmt.Fprintf(a.out, "Total accounts: %d\n", s.Total)
	for _, c := range a.repo.ListCategories(ctx) {
		name := c
		if name == "" {
			name = "(uncategorized)"
		}
		fmt.Fprintf(a.out, "  %s: %d\n", name, s.ByCategory[c])
	}
	return nil
}

func (a *App) suggest(ctx context.Context) error {
	pw, err := cryptox.GeneratePassword(cryptox.DefaultPasswordLength, cryptox.DefaultPasswordOptions())
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Suggested password: %s\n", pw)
	return nil
}

func (a *App) importLegacy(ctx context.Context, args []string) error {
	path, err := a.platformArg(args, "Path to legacy JSON file")
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	n, err := a.repo.ImportLegacy(ctx, data)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Imported %d account(s).\n", n)
	return nil
}

package cli

import (
	"errors"
	"fmt"

	"habitmini/internal/keyring"
)

// AuthCmd manages the Telegram init-data token the API authenticates with.
type AuthCmd struct {
	Login  *AuthLoginCmd  `cmd:"" help:"Store the Telegram init-data token in the system keyring."`
	Logout *AuthLogoutCmd `cmd:"" help:"Remove the stored token."`
	Status *AuthStatusCmd `cmd:"" help:"Show whether a token is stored and whether the backend accepts it."`
}

type AuthLoginCmd struct {
	Token string `arg:"" help:"Raw init-data string from the Telegram client."`
}

func (c *AuthLoginCmd) Run(ctx *Context) error {
	if c.Token == "" {
		return fmt.Errorf("token must not be empty")
	}
	if err := keyring.SetInitData(c.Token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	fmt.Println("Token stored. New sessions will authenticate with it.")
	return nil
}

type AuthLogoutCmd struct{}

func (c *AuthLogoutCmd) Run(ctx *Context) error {
	if err := keyring.DeleteInitData(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("No token stored.")
			return nil
		}
		return fmt.Errorf("failed to remove token: %w", err)
	}
	fmt.Println("Token removed.")
	return nil
}

type AuthStatusCmd struct{}

func (c *AuthStatusCmd) Run(ctx *Context) error {
	if _, err := keyring.GetInitData(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("No token stored. Run 'habitmini auth login <token>'.")
			return nil
		}
		return fmt.Errorf("keyring error: %w", err)
	}
	fmt.Println("Token stored.")

	rctx, cancel := reqContext()
	defer cancel()

	if _, err := ctx.API.Me(rctx); err != nil {
		fmt.Printf("Backend check failed: %v\n", err)
		return nil
	}
	fmt.Println("Backend accepts the token.")
	return nil
}

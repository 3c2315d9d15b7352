package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/footy-tipping/internal/logger"
	"github.com/MKhiriev/footy-tipping/internal/service"
	"github.com/MKhiriev/footy-tipping/models"
)

const usage = `usage: footy-client [flags] <command> [args]

commands:
  register          create an account
  login             sign in and remember the session
  logout            forget the saved session
  whoami            show the signed-in user
  users             list all users
  user <id>         show one user
  update <id>       change a user's names, username or password
  delete <id>       delete a user
  token [-copy]     print the session token, or copy it to the clipboard
  version           show client and server versions`

type command struct {
	run func(ctx context.Context, args []string) error
	// signedIn commands restore the saved session before running.
	signedIn bool
}

type App struct {
	users     service.ClientUserService
	prompt    Prompter
	clipboard Clipboard
	view      *view
	buildInfo models.AppBuildInfo

	commands map[string]command
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, prompt Prompter, out io.Writer, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	if services == nil || services.UserService == nil {
		return nil, errors.New("client services are not initialized")
	}

	a := &App{
		users:     services.UserService,
		prompt:    prompt,
		clipboard: systemClipboard{},
		view:      newView(out),
		buildInfo: buildInfo,
		logger:    logger,
	}
	a.commands = map[string]command{
		"register": {run: a.register},
		"login":    {run: a.login},
		"logout":   {run: a.logout},
		"version":  {run: a.version},
		"help":     {run: a.help},
		"whoami":   {run: a.whoami, signedIn: true},
		"users":    {run: a.listUsers, signedIn: true},
		"user":     {run: a.showUser, signedIn: true},
		"update":   {run: a.updateUser, signedIn: true},
		"delete":   {run: a.deleteUser, signedIn: true},
		"token":    {run: a.token, signedIn: true},
	}

	return a, nil
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.view.line(usage)
		return ErrNoCommand
	}

	name, rest := args[0], args[1:]
	cmd, ok := a.commands[name]
	if !ok {
		a.view.line(usage)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	ctx = a.logger.WithContext(ctx)
	a.logger.Debug().Str("command", name).Msg("running command")

	if cmd.signedIn {
		if _, err := a.users.RestoreSession(ctx); err != nil {
			return err
		}
	}

	return cmd.run(ctx, rest)
}

func (a *App) help(context.Context, []string) error {
	a.view.line(usage)
	return nil
}

func (a *App) register(ctx context.Context, _ []string) error {
	var req models.RegisterRequest
	var err error

	if req.FirstName, err = a.prompt.Prompt("First name: "); err != nil {
		return err
	}
	if req.LastName, err = a.prompt.Prompt("Last name: "); err != nil {
		return err
	}
	if req.Username, err = a.prompt.Prompt("Username: "); err != nil {
		return err
	}
	if req.Password, err = a.prompt.PromptPassword("Password: "); err != nil {
		return err
	}

	if err = a.users.Register(ctx, req); err != nil {
		return err
	}

	a.view.message(models.MessageRegistrationSuccessful)
	return nil
}

func (a *App) login(ctx context.Context, _ []string) error {
	var req models.AuthenticateRequest
	var err error

	if req.Username, err = a.prompt.Prompt("Username: "); err != nil {
		return err
	}
	if req.Password, err = a.prompt.PromptPassword("Password: "); err != nil {
		return err
	}

	session, err := a.users.Login(ctx, req)
	if err != nil {
		return err
	}

	a.view.message(fmt.Sprintf("Signed in as %s %s (%s).", session.User.FirstName, session.User.LastName, session.User.Username))
	return nil
}

func (a *App) logout(ctx context.Context, _ []string) error {
	if err := a.users.Logout(ctx); err != nil {
		return err
	}

	a.view.message("Signed out.")
	return nil
}

func (a *App) whoami(context.Context, []string) error {
	a.view.user(a.users.CurrentSession().User)
	return nil
}

func (a *App) listUsers(ctx context.Context, _ []string) error {
	users, err := a.users.GetAll(ctx)
	if err != nil {
		return err
	}

	a.view.users(users)
	return nil
}

func (a *App) showUser(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	user, err := a.users.GetByID(ctx, id)
	if err != nil {
		return err
	}

	a.view.user(user)
	return nil
}

// updateUser prompts for each field showing the current value; an empty
// answer keeps it. An empty password keeps the current password.
func (a *App) updateUser(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	current, err := a.users.GetByID(ctx, id)
	if err != nil {
		return err
	}

	req := models.UpdateRequest{}
	if req.FirstName, err = a.promptDefault("First name", current.FirstName); err != nil {
		return err
	}
	if req.LastName, err = a.promptDefault("Last name", current.LastName); err != nil {
		return err
	}
	if req.Username, err = a.promptDefault("Username", current.Username); err != nil {
		return err
	}
	if req.Password, err = a.prompt.PromptPassword("New password (empty keeps the current one): "); err != nil {
		return err
	}

	if err = a.users.Update(ctx, id, req); err != nil {
		return err
	}

	a.view.message(models.MessageUserUpdated)
	return nil
}

func (a *App) deleteUser(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	user, err := a.users.GetByID(ctx, id)
	if err != nil {
		return err
	}

	answer, err := a.prompt.Prompt(fmt.Sprintf("Delete user %s (id %d)? [y/N]: ", user.Username, user.ID))
	if err != nil {
		return err
	}
	if !strings.EqualFold(strings.TrimSpace(answer), "y") {
		return ErrAborted
	}

	if err = a.users.Delete(ctx, id); err != nil {
		return err
	}

	a.view.message(models.MessageUserDeleted)
	return nil
}

func (a *App) token(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	toClipboard := fs.Bool("copy", false, "copy the token to the clipboard")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	token := a.users.CurrentSession().Token
	if !*toClipboard {
		a.view.line("%s", token)
		return nil
	}

	if err := a.clipboard.WriteAll(token); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	a.view.message("Token copied to the clipboard.")
	return nil
}

func (a *App) version(ctx context.Context, _ []string) error {
	serverVersion, err := a.users.ServerVersion(ctx)
	if err != nil {
		a.logger.Err(err).Str("func", "*App.version").Msg("error getting server version")
		serverVersion = ""
	}

	a.view.buildInfo(a.buildInfo, serverVersion)
	return nil
}

func (a *App) promptDefault(label, current string) (string, error) {
	answer, err := a.prompt.Prompt(fmt.Sprintf("%s [%s]: ", label, current))
	if err != nil {
		return "", err
	}
	if answer = strings.TrimSpace(answer); answer == "" {
		return current, nil
	}
	return answer, nil
}

func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: expected exactly one user id", ErrUsage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q is not a valid user id", ErrUsage, args[0])
	}
	return id, nil
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

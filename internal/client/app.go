package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/MKhiriev/go-table-order/internal/adapter"
	"github.com/MKhiriev/go-table-order/internal/logger"
	"github.com/MKhiriev/go-table-order/models"
)

// ErrUsage is returned for an unknown command or wrong arguments.
var ErrUsage = errors.New("usage error")

const Usage = `usage: tablectl [flags] <command> [args]

commands:
  tables                       list tables
  set-table <id> <pin> [name]  create or replace a table
  qr <id>                      print the customer link of a table
  summary                      print ordered quantities per item
  version                      print the server build
`

type App struct {
	server   adapter.ServerAdapter
	username string
	password string
	out      io.Writer
	logger   *logger.Logger
}

func NewApp(server adapter.ServerAdapter, username, password string, out io.Writer, logger *logger.Logger) *App {
	return &App{
		server:   server,
		username: username,
		password: password,
		out:      out,
		logger:   logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	command, rest := args[0], args[1:]

	// version is public
	if command == "version" {
		return a.version(ctx)
	}

	if err := a.server.Login(ctx, a.username, a.password); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	defer func() {
		if err := a.server.Logout(context.WithoutCancel(ctx)); err != nil {
			a.logger.Warn().Err(err).Msg("logout failed")
		}
	}()

	switch command {
	case "tables":
		return a.tables(ctx)
	case "set-table":
		return a.setTable(ctx, rest)
	case "qr":
		return a.qr(ctx, rest)
	case "summary":
		return a.summary(ctx)
	default:
		return fmt.Errorf("%w: unknown command %q", ErrUsage, command)
	}
}

func (a *App) version(ctx context.Context) error {
	info, err := a.server.Version(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.out, "version %s, built %s, commit %s\n", info.Version, info.Date, info.Commit)
	return err
}

func (a *App) tables(ctx context.Context) error {
	tables, err := a.server.ListTables(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPIN")
	for _, t := range tables {
		pin := "no"
		if t.HasPin {
			pin = "yes"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", t.ID, t.Name, pin)
	}
	return tw.Flush()
}

func (a *App) setTable(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: set-table <id> <pin> [name]", ErrUsage)
	}

	id, err := parseTableID(args[0])
	if err != nil {
		return err
	}

	req := models.SaveTableRequest{ID: id, PIN: args[1]}
	if len(args) > 2 {
		req.Name = strings.Join(args[2:], " ")
	}

	if err = a.server.SaveTable(ctx, req); err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.out, "table %d saved\n", id)
	return err
}

func (a *App) qr(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: qr <id>", ErrUsage)
	}

	id, err := parseTableID(args[0])
	if err != nil {
		return err
	}

	link, err := a.server.GenerateQR(ctx, id)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, link)
	return err
}

func (a *App) summary(ctx context.Context) error {
	items, err := a.server.Summary(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ITEM\tQTY\tTABLES")
	for _, item := range items {
		tables := make([]string, 0, len(item.Tables))
		for _, id := range item.Tables {
			tables = append(tables, strconv.FormatInt(int64(id), 10))
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", item.ItemName, item.TotalQty, strings.Join(tables, ","))
	}
	return tw.Flush()
}

func parseTableID(s string) (models.TableID, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: table id must be a positive integer, got %q", ErrUsage, s)
	}
	return models.TableID(id), nil
}

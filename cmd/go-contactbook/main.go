package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"

	"fyne.io/fyne/v2/app"
	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tartampluch/go-contactbook/internal/command"
	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/tartampluch/go-contactbook/internal/entity"
	"github.com/tartampluch/go-contactbook/internal/exchange"
	"github.com/tartampluch/go-contactbook/internal/i18n"
	"github.com/tartampluch/go-contactbook/internal/model"
	"github.com/tartampluch/go-contactbook/internal/server"
	"github.com/tartampluch/go-contactbook/internal/storage"
	"github.com/tartampluch/go-contactbook/internal/ui"
)

// options holds the parsed command line.
type options struct {
	debug       bool
	plain       bool
	tui         bool
	configPath  string
	dataPath    string
	setPassword string
}

// main delegates to runMain so that deferred calls run before os.Exit.
func main() {
	os.Exit(runMain())
}

// runMain manages the application lifecycle, argument parsing, and exit codes.
func runMain() int {
	// -------------------------------------------------------------------------
	// 1. CLI Argument Parsing
	// -------------------------------------------------------------------------
	var opts options
	showVersion := flag.Bool(config.FlagVersion, false, config.FlagDescVersion)
	flag.BoolVar(&opts.debug, config.FlagDebug, false, config.FlagDescDebug)
	flag.BoolVar(&opts.plain, config.FlagPlain, false, config.FlagDescPlain)
	flag.BoolVar(&opts.tui, config.FlagTUI, false, config.FlagDescTUI)
	flag.StringVar(&opts.configPath, config.FlagConfig, "", config.FlagDescConfig)
	flag.StringVar(&opts.dataPath, config.FlagData, "", config.FlagDescData)
	flag.StringVar(&opts.setPassword, config.FlagSetPassword, "", config.FlagDescSetPassword)
	flag.Parse()

	if *showVersion {
		printVersion()
		return config.ExitCodeSuccess
	}

	// -------------------------------------------------------------------------
	// 2. Logging Initialization
	// -------------------------------------------------------------------------
	// The full-screen terminal UI owns the terminal, so logs only reach
	// the console in the other modes.
	mode := ui.ChooseMode(opts.plain, opts.tui, stdinPiped(),
		isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd()))
	logCloser := setupLogging(opts.debug, mode != ui.ModeTerminal)
	if logCloser != nil {
		defer func() {
			_ = logCloser.Close()
		}()
	}

	// -------------------------------------------------------------------------
	// 3. Context & Signal Handling
	// -------------------------------------------------------------------------
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo()
	slog.Info(config.MsgUIMode, config.LogKeyComponent, config.CompMain, config.LogKeyMode, mode)

	// -------------------------------------------------------------------------
	// 4. Application Logic
	// -------------------------------------------------------------------------
	var err error
	if opts.setPassword != "" {
		err = storePassword(opts.setPassword, os.Stdin, os.Stdout)
	} else {
		err = run(ctx, opts, mode)
	}
	if err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		fmt.Fprintln(os.Stderr, err)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// run loads the address book, wires the collaborators and blocks in the
// user interface. The book is saved when the interface returns.
func run(ctx context.Context, opts options, mode ui.Mode) error {
	settingsPath := opts.configPath
	if settingsPath == "" {
		p, err := config.DefaultSettingsPath()
		if err != nil {
			return err
		}
		settingsPath = p
	}
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return err
	}
	// The settings window edits the file as written, without -data.
	saved := settings
	if opts.dataPath != "" {
		settings.DataFile = opts.dataPath
	}

	palette := entity.NewTagPalette(settings.Palette)
	store := storage.NewJSONStorage(settings.DataFile, palette)
	book, err := store.Load()
	if err != nil {
		return err
	}
	m, err := model.New(book)
	if err != nil {
		return err
	}

	policy, err := command.PolicyFromNames(settings.Undoable)
	if err != nil {
		return err
	}

	svc := exchange.NewService(palette, settings.Reminder)
	env := &command.Env{
		Model:             m,
		Importer:          svc,
		Exporter:          svc,
		Collator:          collate.New(language.Make(settings.Language), collate.IgnoreCase),
		DefaultImportUser: settings.ImportUser,
	}

	var listeners []command.ChangeListener
	var publisher *server.Publisher
	if settings.ServerPort != "" {
		feed := server.NewFeedServer(settings.ServerPort)
		publisher = &server.Publisher{Server: feed, Generator: svc.Calendar}
		publisher.AddressBookChanged(m.AddressBook())
		listeners = append(listeners, publisher)

		go func() {
			if err := feed.Start(ctx); err != nil {
				slog.Error(config.ErrServerStartup,
					config.LogKeyComponent, config.CompServer,
					config.LogKeyError, err,
				)
			}
		}()
	}

	exec := command.NewExecutor(env, command.NewParser(palette), policy, listeners...)
	render := ui.NewRenderer(i18n.NewTranslator(settings.Language))

	switch mode {
	case ui.ModeDesktop:
		desk := ui.NewDesktop(ctx, app.NewWithID(config.AppID), exec, render)
		desk.Settings = saved
		desk.SettingsPath = settingsPath
		desk.Credentials = exchange.NewKeyringStore()
		desk.OnSettingsSaved = func(s config.Settings) {
			svc.Calendar.Reminder = s.Reminder
			env.DefaultImportUser = s.ImportUser
			env.Collator = collate.New(language.Make(s.Language), collate.IgnoreCase)
			if publisher != nil {
				publisher.AddressBookChanged(m.AddressBook())
			}
		}
		desk.Run()
	case ui.ModeTerminal:
		err = ui.RunTUI(ctx, exec, render)
	default:
		sh := &ui.Shell{Exec: exec, Render: render, In: os.Stdin, Out: os.Stdout}
		err = sh.Run(ctx)
	}

	if saveErr := store.Save(m.AddressBook()); saveErr != nil {
		return errors.Join(err, saveErr)
	}
	return err
}

// stdinPiped reports whether commands are piped or redirected in, as
// opposed to a terminal or a character device such as /dev/null.
func stdinPiped() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice == 0
}

// storePassword reads one line from in and stores it in the keyring for user.
// Echo is disabled when in is a terminal.
func storePassword(user string, in *os.File, out io.Writer) error {
	fmt.Fprintf(out, config.MsgPasswordPrompt, user)

	var pass string
	if term.IsTerminal(in.Fd()) {
		b, err := term.ReadPassword(in.Fd())
		fmt.Fprintln(out)
		if err != nil {
			return fmt.Errorf("%s: %w", config.ErrReadInput, err)
		}
		pass = string(b)
	} else {
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("%s: %w", config.ErrReadInput, err)
		}
		pass = strings.TrimRight(line, "\r\n")
	}

	if err := exchange.NewKeyringStore().SetPassword(user, pass); err != nil {
		return err
	}
	fmt.Fprint(out, config.MsgPasswordStored)
	return nil
}

// printVersion outputs the build information to stdout.
func printVersion() {
	fmt.Printf(config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger to write JSON to the log
// file in the user cache directory, and to stderr when console is set.
func setupLogging(debugMode, console bool) io.Closer {
	var writers []io.Writer
	var logFile *os.File

	if console {
		writers = append(writers, os.Stderr)
	}

	if logPath, err := getLogFilePath(); err == nil {
		// O_TRUNC resets logs on restart to prevent indefinite growth.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}

	logger := slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), opts))
	slog.SetDefault(logger)

	if logFile == nil {
		return nil
	}
	return logFile
}

// getLogFilePath determines the platform-specific cache directory for logs.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}

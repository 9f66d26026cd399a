package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/charmbracelet/log"

	"inkboard/internal/audio"
	"inkboard/internal/config"
	"inkboard/internal/export"
	"inkboard/internal/pen"
	"inkboard/internal/sheet"
	"inkboard/internal/store"
	"inkboard/internal/sync"
	"inkboard/internal/ui"
)

const (
	customURLScheme = "inkboard://"
	port            = 8888

	sheetWidth  = 2000
	sheetHeight = 2000
)

func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           log.InfoLevel,
	})
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "inkboard.toml"
	}
	return filepath.Join(dir, "inkboard", "inkboard.toml")
}

func main() {
	logger := newLogger()

	args := os.Args
	if len(args) > 1 && strings.HasPrefix(args[1], customURLScheme) {
		runClient(logger, args[1])
	} else {
		runHost(logger)
	}
}

// buildBoard assembles the engine pieces every mode shares.
func buildBoard(logger *log.Logger) (*ui.Surface, *store.Store, *pen.Brush) {
	cfg, err := config.Load(configPath())
	if err != nil {
		logger.Warn("loading config failed, using defaults", "err", err)
	}

	st := store.New(logger)

	brush := pen.NewBrush(logger)
	brush.Style = cfg.BrushStyle
	brush.SmoothOptions = cfg.SmoothOptions
	brush.TexturedOptions = cfg.TexturedOptions

	sh := sheet.New(sheetWidth, sheetHeight)
	cam := sheet.NewCamera()
	player := audio.NewPlayer(logger)

	surface := ui.NewSurface(brush, sh, st, cam, player, logger)
	return surface, st, brush
}

func runHost(logger *log.Logger) {
	logger.Info("starting as host")
	surface, st, brush := buildBoard(logger)

	host := sync.NewHost(st, logger)
	host.OnChange = func() { fyne.Do(surface.Refresh) }
	host.ImageScale = surface.Camera.ImageScale
	go func() {
		if err := host.ListenAndServe(port); err != nil {
			logger.Error("sync host stopped", "err", err)
		}
	}()

	mdnsServer, err := sync.Advertise(port)
	if err != nil {
		logger.Warn("mDNS advertise failed, peers must use the share link", "err", err)
	} else {
		defer mdnsServer.Shutdown()
	}

	shareLink := ""
	if ip, err := sync.OutgoingIP(); err == nil {
		shareLink = fmt.Sprintf("%s%s:%d", customURLScheme, ip, port)
	}

	runBoard(logger, surface, st, brush, shareLink)
}

func runClient(logger *log.Logger, link string) {
	logger.Info("starting as client")
	surface, st, brush := buildBoard(logger)

	address := strings.TrimPrefix(link, customURLScheme)
	address = strings.TrimSuffix(address, "/")

	client := sync.NewClient(st, logger)
	client.OnChange = func() { fyne.Do(surface.Refresh) }
	client.ImageScale = surface.Camera.ImageScale
	go func() {
		if err := client.Connect(address); err != nil {
			logger.Error("connecting to host failed", "err", err)
			surface.SetStatus("Connection failed: " + address)
		}
	}()

	runBoard(logger, surface, st, brush, "")
}

func runBoard(logger *log.Logger, surface *ui.Surface, st *store.Store, brush *pen.Brush, shareLink string) {
	toolbar := ui.NewToolbar(surface, func() {
		if err := export.WritePDF("inkboard.pdf", st); err != nil {
			logger.Error("PDF export failed", "err", err)
			surface.SetStatus("PDF export failed")
			return
		}
		surface.SetStatus("Exported inkboard.pdf")
	})

	ui.RunApp(shareLink, surface, toolbar)

	// Window closed: persist the brush configuration and drain the store.
	cfg := config.Config{
		BrushStyle:      brush.Style,
		SmoothOptions:   brush.SmoothOptions,
		TexturedOptions: brush.TexturedOptions,
	}
	path := configPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
		if err := config.Save(path, cfg); err != nil {
			logger.Warn("saving config failed", "err", err)
		}
	}
	st.Close()
}

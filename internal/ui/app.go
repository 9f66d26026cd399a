package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
)

// RunApp opens the main window and blocks until it closes. shareLink, when
// non-empty, is shown in the status bar so peers can join.
func RunApp(shareLink string, surface *Surface, toolbar fyne.CanvasObject) {
	myApp := app.New()
	myWindow := myApp.NewWindow("InkBoard")
	myWindow.Resize(fyne.NewSize(1024, 768))

	if shareLink != "" {
		surface.SetStatus("Share link: " + shareLink)
	}

	content := container.NewBorder(toolbar, surface.StatusBar(), nil, nil, surface)
	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}

package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func Start() {
	browser := CreateImageBrowser()
	if err := tea.NewProgram(&browser).Start(); err != nil {
		panic(err)
	}
}

package ui

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"efiextract/zboot"
	"efiextract/zboot/zheader"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type (
	// Entry is one regular file in the browsed directory, with the
	// outcome of probing it as a zboot image.
	Entry struct {
		Name   string
		Header *zheader.Header
		Err    error
	}
	ImageBrowser struct {
		cwd     string
		entries []Entry
	}
)

func CreateImageBrowser() ImageBrowser {
	cwd, err := os.Getwd()
	if err != nil {
		err := errors.Wrap(err, "CreateImageBrowser get current working directory error")
		log.Panic(err)
	}
	return ImageBrowser{
		cwd:     cwd,
		entries: ReadEntries(cwd),
	}
}

func ReadEntries(path string) []Entry {
	files, err := os.ReadDir(path)
	if err != nil {
		log.Fatal(err)
	}

	files = lo.Filter(
		files,
		func(file fs.DirEntry, _ int) bool {
			return file.Type().IsRegular()
		},
	)
	entries := lo.Map(
		files,
		func(file fs.DirEntry, _ int) Entry {
			return probe(path, file.Name())
		},
	)
	return entries
}

func probe(dir string, name string) Entry {
	fin, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return Entry{Name: name, Err: err}
	}
	defer fin.Close()

	header, err := zboot.Inspect(fin)
	return Entry{Name: name, Header: header, Err: err}
}

func (s Entry) Describe() string {
	if s.Err != nil {
		return "-"
	}
	return fmt.Sprintf(
		"%s, %d bytes at %d",
		s.Header.CompressionType,
		s.Header.PayloadSize,
		s.Header.PayloadOffset,
	)
}

func (s ImageBrowser) View() string {
	output := "EFI ZBOOT IMAGES\n\n"
	output += "Current directory: " + s.cwd + "\n\n"

	zbootEntries := lo.Filter(
		s.entries,
		func(entry Entry, _ int) bool {
			return entry.Err == nil
		},
	)
	if len(zbootEntries) == 0 {
		output += "No zboot images in this directory\n"
	}
	lo.ForEach(
		s.entries,
		func(entry Entry, _ int) {
			output += fmt.Sprintf("  %-32s %s\n", entry.Name, entry.Describe())
		},
	)

	output += "\nPress r to reload; q to quit\n"
	return output
}

func (s ImageBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return s, tea.Quit
		case "r":
			s.entries = ReadEntries(s.cwd)
			return s, nil
		}
	}
	return s, nil
}

func (s ImageBrowser) Init() tea.Cmd {
	return nil
}

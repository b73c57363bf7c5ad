package cli

import (
	"encoding/json"
	"os"
	"strings"

	"efiextract/ui"
	"efiextract/zboot"
	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
)

type (
	Args struct {
		Interactive *InteractiveCmd `arg:"subcommand:interactive"`
		Info        *InfoCmd        `arg:"subcommand:info"`
		Extract     *ExtractCmd     `arg:"subcommand:extract"`
	}
	InteractiveCmd struct{}
	InfoCmd        struct {
		Path string `arg:"positional,required" help:"path to an EFI zboot image" placeholder:"vmlinuz.efi"`
		JSON bool   `help:"print the header as JSON"`
	}
	ExtractCmd struct {
		From   string `arg:"required" help:"path to source image" placeholder:"vmlinuz.efi"`
		To     string `arg:"required" help:"path to destination file" placeholder:"vmlinux.gz"`
		Force  bool   `help:"overwrite the destination file"`
		Verify bool   `help:"check the payload against the declared compression"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Inspect EFI zboot kernel images in the command line.\n",
			"Reports the compression metadata embedded in an image, and can",
			"extract the compressed kernel payload for external decompression.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

func runInfo(path string, asJSON bool) (string, error) {
	fin, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, `runInfo error: open "%s"`, path)
	}
	defer fin.Close()

	header, err := zboot.Inspect(fin)
	if err != nil {
		return "", err
	}

	if asJSON {
		bs, err := json.MarshalIndent(zboot.ToOrderedMap(*header), "", "  ")
		if err != nil {
			return "", errors.Wrap(err, "runInfo error: marshal header to JSON")
		}
		return string(bs) + "\n", nil
	}
	return zboot.Report(*header), nil
}

func runExtract(from string, to string, verify bool) error {
	fin, err := os.Open(from)
	if err != nil {
		return errors.Wrapf(err, `runExtract error: open "%s"`, from)
	}
	defer fin.Close()

	header, err := zboot.Inspect(fin)
	if err != nil {
		return err
	}
	if verify {
		if err := zboot.VerifyCompression(fin, *header); err != nil {
			return err
		}
	}

	// the output is only created after the header parsed, so a bad image
	// does not leave an empty file behind
	fout, err := os.Create(to)
	if err != nil {
		return errors.Wrapf(err, `runExtract error: open "%s"`, to)
	}
	defer fout.Close()

	return zboot.CopyPayload(
		fin,
		fout,
		uint64(header.PayloadOffset),
		uint64(header.PayloadSize),
	)
}

func StartInteractive() {
	ui.Start()
}

func StartInfo(path string, asJSON bool) int {
	if !CheckExistence(path) {
		println("Input file does not exist!")
		return 1
	}
	output, err := runInfo(path, asJSON)
	if err != nil {
		println(err.Error())
		return 1
	}
	print(output)
	return 0
}

func StartExtracting(from string, to string, force bool, verify bool) int {
	if !CheckExistence(from) {
		println("Source file does not exist!")
		return 1
	}
	if CheckExistence(to) && !force {
		println("Destination file existed. Please type the command again with --force to allow overwriting!")
		return 1
	}
	if err := runExtract(from, to, verify); err != nil {
		println(err.Error())
		return 1
	}
	println("Done extracting. Please check your payload file at: " + to)
	return 0
}

func Start() {
	args := Args{}
	parser := arg.MustParse(&args)

	code := 0
	switch {
	case args.Interactive != nil:
		StartInteractive()
	case args.Info != nil:
		code = StartInfo(args.Info.Path, args.Info.JSON)
	case args.Extract != nil:
		code = StartExtracting(
			args.Extract.From,
			args.Extract.To,
			args.Extract.Force,
			args.Extract.Verify,
		)
	default:
		parser.WriteHelp(os.Stdout)
	}
	os.Exit(code)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-stego/internal/imaging"
	"github.com/MKhiriev/go-stego/models"
)

// commonFlags are shared by the commands that talk to a backend.
type commonFlags struct {
	input       string
	remote      string
	bytesPerBit int
}

func (a *App) newFlagSet(name, usage string, common *commonFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = func() {
		fmt.Fprintf(a.stderr, "usage: %s %s %s\n", appName, name, usage)
		fs.PrintDefaults()
	}

	if common != nil {
		fs.StringVar(&common.input, "i", "", "input image path")
		fs.StringVar(&common.remote, "remote", a.cfg.Adapter.HTTPAddress, "remote server address (empty works locally)")
		fs.IntVar(&common.bytesPerBit, "bytes-per-bit", 0, "carrier bytes reserved per embedded bit (local only)")
	}

	return fs
}

func (a *App) hide(ctx context.Context, args []string) error {
	var (
		common   commonFlags
		output   string
		message  string
		password string
	)
	fs := a.newFlagSet("hide", `-i in.png -m "message" [-o out.png] [-p password]`, &common)
	fs.StringVar(&output, "o", "", "output image path (default <input>_encoded.png)")
	fs.StringVar(&message, "m", "", "message to hide")
	fs.StringVar(&password, "p", "", "password to encrypt the message with")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if common.input == "" {
		fs.Usage()
		return ErrMissingInput
	}
	if output == "" {
		output = defaultOutputPath(common.input)
	}

	// Refuse lossy targets before doing any work.
	if _, err := imaging.FormatFromPath(output); err != nil {
		return err
	}

	image, format, err := imaging.Load(common.input)
	if err != nil {
		return fmt.Errorf("error loading %s: %w", common.input, err)
	}
	a.printer.Info("Loaded %s (%s, %dx%d)", common.input, format, image.Width, image.Height)

	backend, err := a.backend(common.remote, common.bytesPerBit)
	if err != nil {
		return err
	}

	encoded, err := backend.Encode(ctx, models.EncodeRequest{
		Image:    image,
		Message:  message,
		Password: password,
	})
	if err != nil {
		return err
	}

	if err = imaging.Save(output, encoded); err != nil {
		return fmt.Errorf("error saving %s: %w", output, err)
	}

	if password != "" {
		a.printer.Success("Encrypted message hidden in %s", output)
	} else {
		a.printer.Success("Message hidden in %s", output)
	}
	return nil
}

func (a *App) reveal(ctx context.Context, args []string) error {
	var (
		common   commonFlags
		password string
		copyText bool
	)
	fs := a.newFlagSet("reveal", "-i image.png [-p password] [-copy]", &common)
	fs.StringVar(&password, "p", "", "password the message was encrypted with")
	fs.BoolVar(&copyText, "copy", false, "copy the recovered message to the clipboard")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if common.input == "" {
		fs.Usage()
		return ErrMissingInput
	}

	image, _, err := imaging.Load(common.input)
	if err != nil {
		return fmt.Errorf("error loading %s: %w", common.input, err)
	}

	backend, err := a.backend(common.remote, common.bytesPerBit)
	if err != nil {
		return err
	}

	message, err := backend.Decode(ctx, models.DecodeRequest{Image: image, Password: password})
	if err != nil {
		return err
	}

	a.printer.Success("Hidden message found:")
	a.printer.Plain(message)

	if copyText {
		if err = a.copyText(message); err != nil {
			a.printer.Warning("Could not copy to clipboard: %v", err)
			return nil
		}
		a.printer.Info("Message copied to clipboard")
	}
	return nil
}

func (a *App) capacity(ctx context.Context, args []string) error {
	var common commonFlags
	fs := a.newFlagSet("capacity", "-i image.png", &common)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if common.input == "" {
		fs.Usage()
		return ErrMissingInput
	}

	image, format, err := imaging.Load(common.input)
	if err != nil {
		return fmt.Errorf("error loading %s: %w", common.input, err)
	}

	backend, err := a.backend(common.remote, common.bytesPerBit)
	if err != nil {
		return err
	}

	capacity, err := backend.Capacity(ctx, image)
	if err != nil {
		return err
	}

	a.printer.Info("%s: %s, %dx%d, %d samples", common.input, format, image.Width, image.Height, capacity.BufferBytes)
	a.printer.Info("Policy: %d carrier bytes per bit, up to %d frame bits", capacity.BytesPerBit, capacity.MaxFrameBits)
	a.printer.Success("Plain message: up to %d characters", capacity.MaxPayloadBytes)
	a.printer.Success("Encrypted message: up to %d bytes", capacity.MaxSealedMessageBytes)
	return nil
}

func (a *App) version(ctx context.Context, args []string) error {
	var remote string
	fs := a.newFlagSet("version", "[-remote addr]", nil)
	fs.StringVar(&remote, "remote", a.cfg.Adapter.HTTPAddress, "also query the version of this server")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a.printer.Info("Build version: %s", orNA(a.buildInfo.BuildVersion()))
	a.printer.Info("Build date: %s", orNA(a.buildInfo.BuildDate()))
	a.printer.Info("Build commit: %s", orNA(a.buildInfo.BuildCommit()))

	if remote == "" {
		return nil
	}

	adapterCfg := a.cfg.Adapter
	adapterCfg.HTTPAddress = remote
	remoteAdapter, err := a.newRemote(adapterCfg, a.logger)
	if err != nil {
		return err
	}

	serverVersion, err := remoteAdapter.Version(ctx)
	if err != nil {
		return fmt.Errorf("error querying server version: %w", err)
	}
	a.printer.Info("Server version: %s", serverVersion)
	return nil
}

// defaultOutputPath turns dir/name.ext into dir/name_encoded.png.
func defaultOutputPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_encoded.png"
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/faiface/mainthread"
	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/digest"
	"github.com/jetsetilly/gopherboy/disassembly"
	"github.com/jetsetilly/gopherboy/govern"
	"github.com/jetsetilly/gopherboy/gui/sdlplay"
	"github.com/jetsetilly/gopherboy/gui/termplay"
	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/hardware/instance"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/hardware/serial"
	"github.com/jetsetilly/gopherboy/hardware/television"
	"github.com/jetsetilly/gopherboy/logger"
	"github.com/jetsetilly/gopherboy/modalflag"
	"github.com/jetsetilly/gopherboy/performance"
	"github.com/jetsetilly/gopherboy/playmode"
	"github.com/jetsetilly/gopherboy/prefs"
	"github.com/jetsetilly/gopherboy/statsview"
	"github.com/jetsetilly/gopherboy/userinput"
)

// exit values returned to the operating system.
const (
	exitParseError = 10
	exitModeError  = 20
)

// test ROMs report their result over the serial port with one of these
// strings.
const (
	testPassed = "Passed"
	testFailed = "Failed"
)

func main() {
	var exitVal int

	// SDL must be driven from the main thread. mainthread.Run() locks the
	// thread and runs the launch function in a separate goroutine
	mainthread.Run(func() {
		exitVal = launch(os.Args[1:], os.Stdout)
	})

	os.Exit(exitVal)
}

func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("PLAY", "TERM", "RUN", "LINK", "DISASM", "INFO", "PERFORMANCE")

	log := md.AddBool("log", false, "echo debugging log to stdout")
	prefsOverride := md.AddString("prefs", "", "override preferences for this session (eg. 'tv.fpscap::false; tv.scale::2')")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
			}
		}()
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md)

	case "TERM":
		err = term(md)

	case "RUN":
		err = run(md, output)

	case "LINK":
		err = link(md, output)

	case "DISASM":
		err = disasm(md, output)

	case "INFO":
		err = info(md, output)

	case "PERFORMANCE":
		err = perform(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return 0
}

// cartridgeArg returns the single remaining argument, which should name a
// cartridge file.
func cartridgeArg(md *modalflag.Modes) (cartridgeloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return cartridgeloader.Loader{}, fmt.Errorf("cartridge required for %s mode", md)
	case 1:
		return cartridgeloader.NewLoader(md.GetArg(0)), nil
	}
	return cartridgeloader.Loader{}, fmt.Errorf("too many arguments for %s mode", md)
}

// createGameBoy prepares a GameBoy instance with the cartridge attached and,
// if the address is not empty, connected to a serial link.
func createGameBoy(cartload cartridgeloader.Loader, linkAddr string) (*hardware.GameBoy, *television.Television, error) {
	ins, err := instance.NewInstance(nil)
	if err != nil {
		return nil, nil, err
	}

	tv := television.NewTelevision(ins)
	gb := hardware.NewGameBoy(ins, tv)

	err = gb.AttachCartridge(cartload)
	if err != nil {
		return nil, nil, err
	}

	if linkAddr != "" {
		l, err := serial.NewTCPLink(linkAddr)
		if err != nil {
			return nil, nil, err
		}
		gb.AttachLink(l)
	}

	return gb, tv, nil
}

// frontend flags shared by PLAY and TERM modes.
type frontendFlags struct {
	fpsCap    *bool
	link      *string
	statsview *bool
	crashdump *string
}

func addFrontendFlags(md *modalflag.Modes) frontendFlags {
	return frontendFlags{
		fpsCap:    md.AddBool("fpscap", true, "cap fps to the refresh rate of the LCD"),
		link:      md.AddString("link", "", "connect serial port to relay at address (eg. "+serial.DefaultAddress+")"),
		statsview: md.AddBool("statsview", false, "run stats server (requires statsview build tag)"),
		crashdump: md.AddString("crashdump", "", "write graph of emulation to file on panic"),
	}
}

// prepare the GameBoy instance for a frontend according to the flags.
func (ff frontendFlags) prepare(md *modalflag.Modes) (*hardware.GameBoy, *television.Television, error) {
	cartload, err := cartridgeArg(md)
	if err != nil {
		return nil, nil, err
	}

	gb, tv, err := createGameBoy(cartload, *ff.link)
	if err != nil {
		return nil, nil, err
	}

	err = gb.Instance.Prefs.FPSCap.Set(*ff.fpsCap)
	if err != nil {
		return nil, nil, err
	}

	gb.CrashDump = *ff.crashdump

	if *ff.statsview {
		if statsview.Available() {
			statsview.Launch(modeOutput(md))
		} else {
			logger.Log(logger.Allow, "statsview", "not available in this build")
		}
	}

	return gb, tv, nil
}

func modeOutput(md *modalflag.Modes) io.Writer {
	if md.Output == nil {
		return io.Discard
	}
	return md.Output
}

// playFrontend runs the emulation until the frontend asks to quit.
func playFrontend(gb *hardware.GameBoy, tv *television.Television, events <-chan userinput.Event) error {
	err := playmode.Play(gb, tv, events)
	if err != nil && !curated.Is(err, playmode.UserInterrupt) {
		return err
	}
	return nil
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	ff := addFrontendFlags(md)
	scale := md.AddInt("scale", 0, "integer scaling of the screen (0 for preference value)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	gb, tv, err := ff.prepare(md)
	if err != nil {
		return err
	}
	defer tv.End()

	if *scale <= 0 {
		*scale = gb.Instance.Prefs.Scale.Get().(int)
	}

	scr, err := sdlplay.NewSdlPlay(tv, gb.Mem.Cart.Header.Title, *scale)
	if err != nil {
		return err
	}

	return playFrontend(gb, tv, scr.Events())
}

func term(md *modalflag.Modes) error {
	md.NewMode()

	ff := addFrontendFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	gb, tv, err := ff.prepare(md)
	if err != nil {
		return err
	}
	defer tv.End()

	scr, err := termplay.NewTermPlay(tv, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	return playFrontend(gb, tv, scr.Events())
}

// run the emulation without a display. the serial port is connected to a
// printer so that test ROMs can report their results.
func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	frames := md.AddInt("frames", 3600, "maximum number of frames to run for")
	videoDigest := md.AddBool("digest", false, "print digest of video output after running")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	gb, tv, err := createGameBoy(cartload, "")
	if err != nil {
		return err
	}
	defer tv.End()

	err = gb.Instance.Prefs.FPSCap.Set(false)
	if err != nil {
		return err
	}

	var dig *digest.Video
	if *videoDigest {
		dig = digest.NewVideo()
		tv.AddFrameRenderer(dig)
	}

	var serialOutput bytes.Buffer
	gb.AttachLink(serial.NewPrinter(io.MultiWriter(output, &serialOutput)))

	var steps int
	err = gb.RunForFrameCount(*frames, func(_ int) (govern.State, error) {
		steps++
		if steps%hardware.PerformanceBrake != 0 {
			return govern.Running, nil
		}
		if bytes.Contains(serialOutput.Bytes(), []byte(testPassed)) ||
			bytes.Contains(serialOutput.Bytes(), []byte(testFailed)) {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	if err != nil {
		return err
	}

	if dig != nil {
		fmt.Fprintf(output, "digest: %s (%d frames)\n", dig.Hash(), dig.Frames())
	}

	if bytes.Contains(serialOutput.Bytes(), []byte(testFailed)) {
		return fmt.Errorf("%s reports failure", cartload.Name())
	}

	return gb.Save()
}

// link starts a relay that serial links from other instances can connect to.
func link(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	addr := md.AddString("addr", serial.DefaultAddress, "address to listen on")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	relay, err := serial.NewRelay(*addr)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Fprintf(output, "! relay listening on %s\n", relay.Addr())

	return relay.Run(ctx)
}

func disasm(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	bank := md.AddInt("bank", -1, "show disassembly for a specific bank")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromCartridge(cartload)
	if err != nil {
		// print what disassembly output we do have
		if dsm != nil {
			_ = dsm.Write(output)
		}
		return err
	}

	if *bank < 0 {
		return dsm.Write(output)
	}
	return dsm.WriteBank(output, *bank)
}

// info prints a summary of the cartridge header.
func info(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	err = cartload.Load()
	if err != nil {
		return err
	}

	h, err := cartridge.ReadHeader(cartload.Data)
	if err != nil {
		return err
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("title: %s\n", h.Title))
	s.WriteString(fmt.Sprintf("type:  %s\n", h.TypeDescription()))
	s.WriteString(fmt.Sprintf("rom:   %dKB\n", h.ROMSize/1024))
	s.WriteString(fmt.Sprintf("ram:   %dKB\n", h.RAMSize/1024))
	s.WriteString(fmt.Sprintf("sha1:  %s\n", cartload.Hash))

	_, err = io.WriteString(output, s.String())
	return err
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	fpsCap := md.AddBool("fpscap", false, "cap fps to the refresh rate of the LCD")
	duration := md.AddString("duration", "5s", "run duration (with an additional 2s leadtime)")
	profile := md.AddString("profile", "NONE", "run performance check with profiling: NONE, CPU, MEM, TRACE, ALL (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	return performance.Check(output, prf, cartload, !*fpsCap, *duration)
}

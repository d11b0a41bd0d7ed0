// This file is part of Gruesome.
//
// Gruesome is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gruesome is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gruesome.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gruesome/curated"
	"github.com/jetsetilly/gruesome/disassembly"
	"github.com/jetsetilly/gruesome/logger"
	"github.com/jetsetilly/gruesome/modalflag"
	"github.com/jetsetilly/gruesome/paths"
	"github.com/jetsetilly/gruesome/prefs"
	"github.com/jetsetilly/gruesome/screen"
	"github.com/jetsetilly/gruesome/statsview"
	"github.com/jetsetilly/gruesome/trace"
	"github.com/jetsetilly/gruesome/version"
	"github.com/jetsetilly/gruesome/zmachine"
	"github.com/jetsetilly/gruesome/zmachine/govern"
	"github.com/jetsetilly/gruesome/zmachine/memory"
)

// special value for the -trace flag. the trace file is created in the traces
// directory of the resource path with a unique name
const autoTrace = "AUTO"

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. Returns the exit
// status for the program.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "DISASM", "TRACE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* %s\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)
	case "DISASM":
		err = disasm(md, output)
	case "TRACE":
		err = showTrace(md, output)
	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

func loadStory(filename string) ([]uint8, error) {
	image, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf("story: %v", err)
	}
	return image, nil
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo log to stdout")
	limit := md.AddInt("limit", -1, "maximum number of instructions to execute (0 = no limit, -1 = use preference)")
	width := md.AddInt("width", -1, "screen width for word wrapping (0 = detect, -1 = use preference)")
	traceFile := md.AddString("trace", "", fmt.Sprintf("record execution trace to file (%s = unique file in resource path)", autoTrace))
	stats := md.AddBool("statsview", false, "run stats server")
	memvizFile := md.AddString("memviz", "", "write graphviz dump of machine memory to file after run")
	cmdlinePrefs := md.AddString("prefs", "", "preferences for this run (eg. \"screen.width::60; run.limit::1000\")")
	savePrefs := md.AddBool("saveprefs", false, "save preferences after run")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf("story file required")
	}

	if *cmdlinePrefs != "" {
		prefs.PushCommandLineStack(*cmdlinePrefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
			}
		}()
	}

	pr, err := newPreferences(output)
	if err != nil {
		return err
	}
	defer logger.SetEcho(nil)

	if *log {
		if err := pr.logEcho.Set(true); err != nil {
			return err
		}
	}
	if *limit >= 0 {
		if err := pr.limit.Set(*limit); err != nil {
			return err
		}
	}
	if *width >= 0 {
		if err := pr.screenWidth.Set(*width); err != nil {
			return err
		}
	}

	if *stats {
		if !statsview.Available() {
			return curated.Errorf("statsview not available in this build")
		}
		stop := statsview.Launch(output)
		defer stop()
	}

	image, err := loadStory(md.GetArg(0))
	if err != nil {
		return err
	}

	// screen width of zero means detect. the screen type only detects when
	// its width argument is zero so the preference value can be used as is
	scr := screen.NewScreen(output, pr.screenWidth.Get().(int))

	m, err := zmachine.NewMachine(image, scr)
	if err != nil {
		return err
	}

	if *traceFile != "" {
		fn := *traceFile
		if fn == autoTrace {
			fn, err = paths.ResourcePath("traces", paths.UniqueFilename("trace", md.GetArg(0))+".cbor")
			if err != nil {
				return err
			}
		}

		f, err := os.Create(fn)
		if err != nil {
			return curated.Errorf("trace: %v", err)
		}
		defer f.Close()

		rec := trace.NewRecorder(f)
		m.AttachTracer(rec)
		defer func() {
			logger.Logf(logger.Allow, "trace", "%d records written to %s", rec.Count(), fn)
		}()
	}

	// stop on interrupt. the signal is checked by the continue check
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	maxInstructions := pr.limit.Get().(int)

	err = m.Run(func() (govern.State, error) {
		select {
		case <-intChan:
			logger.Log(logger.Allow, "zmachine", "interrupted")
			return govern.Ending, nil
		default:
		}

		if maxInstructions > 0 && m.Count >= maxInstructions {
			logger.Logf(logger.Allow, "zmachine", "instruction limit reached (%d)", maxInstructions)
			return govern.Ending, nil
		}

		return govern.Running, nil
	})

	// flush any text buffered by the screen regardless of the run error
	if ferr := scr.Flush(); ferr != nil && err == nil {
		err = ferr
	}
	if err != nil {
		return err
	}

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return curated.Errorf("memviz: %v", err)
		}
		defer f.Close()
		memviz.Map(f, m.Mem)
	}

	if *savePrefs {
		if err := pr.dsk.Save(); err != nil {
			return err
		}
	}

	return nil
}

func disasm(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	count := md.AddInt("count", 20, "number of instructions to disassemble")
	at := md.AddString("at", "", "address to start disassembly (default is the initial PC)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf("story file required")
	}

	image, err := loadStory(md.GetArg(0))
	if err != nil {
		return err
	}

	mem, err := memory.NewMemory(image)
	if err != nil {
		return err
	}

	start := mem.PC.Address()
	if *at != "" {
		a, err := strconv.ParseUint(*at, 0, 32)
		if err != nil {
			return curated.Errorf("disassembly: invalid address (%s)", *at)
		}
		start = uint32(a)
	}

	entries, err := disassembly.Linear(mem, start, *count)

	// entries decoded before any error are still useful
	if werr := disassembly.Write(output, entries, disassembly.WriteAttr{ByteCode: *bytecode}); werr != nil {
		return werr
	}

	return err
}

func showTrace(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf("trace file required")
	}

	f, err := os.Open(md.GetArg(0))
	if err != nil {
		return curated.Errorf("trace: %v", err)
	}
	defer f.Close()

	records, err := trace.Read(f)
	for _, r := range records {
		fmt.Fprintln(output, r)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%d records\n", len(records))

	return nil
}

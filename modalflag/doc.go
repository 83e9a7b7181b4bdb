// This file is part of GopherAdvance.
//
// GopherAdvance is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherAdvance is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherAdvance.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package,
// with some differences. Whereas with flag.FlagSet you call Parse() with
// the array of strings as the only argument, with modalflag you first call
// NewArgs() with the array of arguments and then Parse() with no
// arguments. For example (error handling of the Parse() function not
// shown):
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Once the arguments have been parsed, non-flag arguments can be
// retrieved with the RemainingArgs() or GetArg() functions. The emulation
// expects exactly one such argument, the cartridge file:
//
//	switch len(md.RemainingArgs()) {
//	case 0:
//		return fmt.Errorf("no cartridge file specified")
//	case 1:
//		attach(md.GetArg(0))
//	default:
//		return fmt.Errorf("too many arguments")
//	}
//
// Adding flags is similar to the flag package. The flag functions return a
// pointer to a variable of the specified type, which Parse() fills in:
//
//	log := md.AddBool("log", false, "echo log to stderr")
//
// The reason for the difference in how arguments are supplied is the
// handling of program modes. A mode is a special command line argument
// that puts the program into a different mode of operation, with its own
// flags and expected arguments, in the manner of the go command's build,
// doc and test modes. Sub-modes are declared with the AddSubModes()
// function and the first mode in the list is the default. All sub-mode
// comparisons are case insensitive.
//
//	md.AddSubModes("DEBUG", "RUN", "VERSION")
//	_, _ = md.Parse()
//	switch md.Mode() {
//	case "DEBUG":
//		debugMode(md)
//	case "RUN":
//		runMode(md)
//	case "VERSION":
//		showVersion()
//	}
//
// Once the mode is decided, NewMode() begins a fresh flag set and a second
// call to Parse() processes the remaining arguments:
//
//	func runMode(md *modalflag.Modes) {
//		md.NewMode()
//		prof := md.AddString("profile", "none", "cpu, mem or all")
//		p, err := md.Parse()
//		switch p {
//		case modalflag.ParseError:
//			fmt.Println(err)
//			return
//		case modalflag.ParseHelp:
//			return
//		}
//		run(md.GetArg(0), *prof)
//	}
//
// Modes can be chained as deeply as required: each call to NewMode() may
// itself declare further sub-modes.
package modalflag

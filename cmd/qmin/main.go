package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	qmcluskey "github.com/quinecrunch/qmcluskey"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "-v":
		fmt.Println(qmcluskey.Version())
	case "version":
		fmt.Println(qmcluskey.Version())
	case "simplify":
		if err := cmdSimplify(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
	case "convert":
		if err := cmdConvert(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintln(os.Stderr, "unknown command:", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("qmin - Quine-McCluskey Boolean function minimizer")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  qmin simplify --init <hex16> [--greedy]")
	fmt.Println("  qmin simplify --sop '<expr>' [--greedy]")
	fmt.Println("  qmin convert --init <hex16>")
	fmt.Println("  qmin convert --sop '<expr>'")
	fmt.Println("  qmin version")
	fmt.Println("  qmin -v")
}

func cmdSimplify(args []string) error {
	init, sop, greedy, rest, err := parseSimplifyArgs(args)
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		return errors.New("simplify takes no positional arguments")
	}
	if (init == "") == (sop == "") {
		return errors.New("simplify requires exactly one of --init or --sop")
	}

	if init != "" {
		return simplifyInit(init, greedy)
	}
	return simplifySOP(sop, greedy)
}

func simplifyInit(init string, greedy bool) error {
	if greedy {
		out, termCount, err := qmcluskey.SimplifyInitGreedy(init)
		if err != nil {
			return err
		}
		fmt.Printf("%s\n(%d terms)\n", out, termCount)
		return nil
	}
	out, termCount, report, err := qmcluskey.SimplifyInit(init)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n(%d terms)\n", out, termCount)
	fmt.Println(report.String())
	return nil
}

func simplifySOP(sop string, greedy bool) error {
	init, err := qmcluskey.SOPStringToInit(sop)
	if err != nil {
		return err
	}
	return simplifyInit(init, greedy)
}

func parseSimplifyArgs(args []string) (init, sop string, greedy bool, rest []string, err error) {
	fs := flag.NewFlagSet("simplify", flag.ContinueOnError)
	initVal := fs.String("init", "", "16-hex-char INIT string")
	sopVal := fs.String("sop", "", "SOP expression")
	greedyVal := fs.Bool("greedy", false, "use the greedy (not guaranteed minimum) selector")

	rest = make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--init" || arg == "-init":
			if i+1 >= len(args) {
				return "", "", false, nil, errors.New("missing value for --init")
			}
			if err := fs.Set("init", args[i+1]); err != nil {
				return "", "", false, nil, err
			}
			i++
		case strings.HasPrefix(arg, "--init="):
			if err := fs.Set("init", strings.TrimPrefix(arg, "--init=")); err != nil {
				return "", "", false, nil, err
			}
		case arg == "--sop" || arg == "-sop":
			if i+1 >= len(args) {
				return "", "", false, nil, errors.New("missing value for --sop")
			}
			if err := fs.Set("sop", args[i+1]); err != nil {
				return "", "", false, nil, err
			}
			i++
		case strings.HasPrefix(arg, "--sop="):
			if err := fs.Set("sop", strings.TrimPrefix(arg, "--sop=")); err != nil {
				return "", "", false, nil, err
			}
		case arg == "--greedy" || arg == "-greedy":
			if err := fs.Set("greedy", "true"); err != nil {
				return "", "", false, nil, err
			}
		default:
			rest = append(rest, arg)
		}
	}
	return *initVal, *sopVal, *greedyVal, rest, nil
}

func cmdConvert(args []string) error {
	init, sop, _, rest, err := parseSimplifyArgs(args)
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		return errors.New("convert takes no positional arguments")
	}
	if (init == "") == (sop == "") {
		return errors.New("convert requires exactly one of --init or --sop")
	}

	if init != "" {
		out, err := qmcluskey.InitHexToSOPString(init, false)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	out, err := qmcluskey.SOPStringToInit(sop)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

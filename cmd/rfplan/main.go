// cmd/rfplan/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"rfbringup-go/drivers"
	"rfbringup-go/profiles"
	"rfbringup-go/services/bringup"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "rfplan - Print the bring-up transaction plan of a profile.\n\tUsage:\n")
		flag.PrintDefaults()
	}
	name := flag.String("profile", profiles.DefaultName(), "Profile name.")
	policyName := flag.String("acquire", "tabled", "Bus ownership policy: tabled, stage or frame.")
	frames := flag.Bool("frames-only", false, "Print only transact steps.")
	list := flag.Bool("list", false, "List profile names and exit.")
	flag.Parse()

	if *list {
		fmt.Println(strings.Join(profiles.Names(), "\n"))
		return
	}
	policy, ok := bringup.ParseAcquirePolicy(*policyName)
	if !ok {
		fatalf("unknown acquire policy %q", *policyName)
	}
	p, err := profiles.Lookup(*name)
	if err != nil {
		fatalf("%v (have %s)", err, strings.Join(profiles.Names(), ", "))
	}

	fmt.Printf("# profile %s v%s  bus %d Hz mode %d %s-first  frames %d\n",
		p.Name, p.Version, p.Bus.ClockHz, p.Bus.Mode(), p.Bus.Order, p.Transactions())

	// Times exclude bus transfer time.
	var at time.Duration
	n := 0
	for _, st := range bringup.Plan(p, policy) {
		switch st.Kind {
		case bringup.StepSleep:
			at += st.Delay
		case bringup.StepTransact:
			n++
			fmt.Printf("%10s  %3d  %-8s %-11s %-8s %s\n", at, n, st.Pos.Family, st.Stage.Label(),
				st.Data, drivers.Describe(st.Pos.Family, st.Data))
			continue
		}
		if !*frames {
			fmt.Printf("%10s  ---  %s\n", at, st)
		}
	}
	fmt.Printf("# total %s\n", at)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "rfplan: "+format+"\n", args...)
	os.Exit(1)
}

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"rfbringup-go/profiles"
	"rfbringup-go/services/bringup"

	"github.com/soypat/saleae"
	"github.com/soypat/saleae/analyzers"
)

func main() {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(handler))
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "rfanalyze - Check a Saleae digital capture of the RF bring-up bus against a profile.\n\tUsage:\n")
		flag.PrintDefaults()
	}
	sdo := flag.String("f-sd", "digital_1.bin", "Input filename: SPI SDO data.")
	enable := flag.String("f-cs", "digital_0.bin", "Input filename: SPI CS data (the multiplexer input).")
	clk := flag.String("f-clk", "digital_2.bin", "Input filename: SPI SCK data.")
	name := flag.String("profile", profiles.DefaultName(), "Profile the capture should follow.")
	output := flag.String("o", "", "Output report filename (stdout when empty).")
	all := flag.Bool("all", false, "Report matching frames too.")
	flag.Parse()

	p, err := profiles.Lookup(*name)
	if err != nil {
		fatal(err)
	}
	start := time.Now()
	obs, err := processSpiFiles(*sdo, *clk, *enable)
	if err != nil {
		fatal(err)
	}
	findings, ok := compare(expectations(bringup.Plan(p, bringup.AcquireAsTabled)), obs)

	out := os.Stdout
	if *output != "" {
		fp, err := os.Create(*output)
		if err != nil {
			fatal(err)
		}
		defer fp.Close()
		out = fp
	}
	bad := 0
	for _, f := range findings {
		if f.V != match {
			bad++
		}
		if *all || f.V != match {
			fmt.Fprintln(out, f)
		}
	}
	slog.Info("rfanalyze:done", slog.String("profile", p.Name), slog.Int("observed", len(obs)),
		slog.Int("planned", p.Transactions()), slog.Int("findings", bad), slog.Duration("took", time.Since(start)))
	if !ok {
		os.Exit(2)
	}
}

func processSpiFiles(fsdo, fclk, fenable string) ([]observed, error) {
	sdo, err := opendigital(fsdo)
	if err != nil {
		return nil, err
	}
	clk, err := opendigital(fclk)
	if err != nil {
		return nil, err
	}
	enable, err := opendigital(fenable)
	if err != nil {
		return nil, err
	}
	spi := analyzers.SPI{}
	// Write-only bus: SDI is not wired, decode SDO on both lanes.
	txs, _ := spi.Scan(clk, enable, sdo, sdo)
	out := make([]observed, 0, len(txs))
	for _, tx := range txs {
		out = append(out, observed{Data: tx.SDO, Start: tx.StartTime()})
	}
	return out, nil
}

func opendigital(filename string) (*saleae.DigitalFile, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return saleae.ReadDigitalFile(fp)
}

func fatal(err error) {
	slog.Error("rfanalyze", slog.String("err", err.Error()))
	os.Exit(1)
}

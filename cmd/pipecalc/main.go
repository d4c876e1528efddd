// pipecalc runs a system calculation from the command line: segments in as
// xlsx, results out as xlsx and optionally pdf.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"PipeFlow/internal/calc/report"
	"PipeFlow/internal/calc/system"
)

func main() {
	in := flag.String("in", "", "input xlsx with one segment per row")
	out := flag.String("out", "result.xlsx", "output xlsx path")
	pdf := flag.String("pdf", "", "optional pdf report path")
	method := flag.String("method", "", "fitting method: crane_ld (default) or 3k")
	title := flag.String("title", "Pressure Drop Report", "pdf report title")
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(*in)
	if err != nil {
		log.Fatalf("open %s: %v", *in, err)
	}
	segs, err := report.ReadSegmentsXLSX(f)
	f.Close()
	if err != nil {
		log.Fatalf("read %s: %v", *in, err)
	}
	if len(segs) == 0 {
		log.Fatalf("%s: no parsable segment rows", *in)
	}

	sysIn, err := system.BuildInput(system.Request{Segments: segs, FittingMethod: *method})
	if err != nil {
		log.Fatalf("resolve segments: %v", err)
	}
	res, err := system.Calculate(sysIn)
	if err != nil {
		log.Fatalf("calculate: %v", err)
	}

	outF, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create %s: %v", *out, err)
	}
	if err := report.WriteXLSX(outF, res); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	outF.Close()

	if *pdf != "" {
		pdfF, err := os.Create(*pdf)
		if err != nil {
			log.Fatalf("create %s: %v", *pdf, err)
		}
		if err := report.WritePDF(pdfF, report.Meta{Title: *title}, res); err != nil {
			log.Fatalf("write %s: %v", *pdf, err)
		}
		pdfF.Close()
	}

	fmt.Printf("%d segments: dP total %.1f Pa, head %.3f m\n", len(segs), res.DPTotalPa, res.HeadTotalM)
	for _, warn := range res.Warnings {
		fmt.Printf("  [%s] %s\n", warn.Severity, warn.Message)
	}
}

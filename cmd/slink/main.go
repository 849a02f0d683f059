// Command slink clusters the image segmentation dataset with single-link
// clustering and reports the purity of the clusters.
//
//	slink run   --input segment.arff --k 7
//	slink sweep --input segment.arff --ks 1,2,7,50
//	slink mst   --input segment.arff
//
// Settings come from --config (YAML), SLINK_* variables and flags, in
// increasing priority. When --k or --input is missing and stdin is a
// terminal, slink asks for them.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp(os.Stdin, os.Stdout, os.Stderr).root().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

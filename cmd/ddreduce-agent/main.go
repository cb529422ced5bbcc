// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/tliron/commonlog"

	"ddreduce/internal/ddreduce/exectester"
	"ddreduce/internal/ddreduce/rpctester"
)

const agentName = "ddreduce-agent"

func main() {
	var (
		addr     = flag.String("addr", "127.0.0.1:8787", "address to listen on")
		path     = flag.String("path", "/rpc", "HTTP path to serve the RPC endpoint on")
		script   = flag.String("test", "", "interestingness test script, exit 0 means FAIL (required)")
		workDir  = flag.String("workdir", "", "scratch directory for per-call input files (defaults to a temp dir)")
		fileName = flag.String("file", "input", "base name given to each candidate input file")
		verbose  = flag.Int("v", 1, "log verbosity")
	)
	flag.Parse()

	if *script == "" {
		log.Fatal("ddreduce-agent: -test is required")
	}

	commonlog.Configure(*verbose, nil)

	dir := *workDir
	if dir == "" {
		var err error
		dir, err = defaultWorkDir()
		if err != nil {
			log.Fatalf("ddreduce-agent: %s", err)
		}
	}

	t := exectester.New(*script, dir, *fileName)
	handler := rpctester.NewHandler(t)

	http.HandleFunc(*path, rpctester.ServeHTTP(handler))

	log.Printf("%s listening on %s%s, testing via %s", agentName, *addr, *path, *script)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.Fatalf("%s: %s", agentName, err)
	}
}

func defaultWorkDir() (string, error) {
	return os.MkdirTemp("", agentName+"-")
}

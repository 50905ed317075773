// Command flaget shows how a command line is parsed by the flaget package.
//
//	flaget parse --array files --alias f=files -- -f a.go b.go --port 80 build
//	flaget parse --format yaml --line "--name 'hello world' -- rest"
//	flaget flat --format toml -- --tag a --tag b x
package main

import (
	"os"

	flagetio "github.com/dzonerzy/go-flaget/io"
)

func main() {
	os.Exit(run(os.Args[1:], flagetio.New()))
}

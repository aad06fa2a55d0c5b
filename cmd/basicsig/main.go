// Command basicsig signs and verifies messages with ECDSA over secp256k1 and
// converts public keys between the raw and DER encodings.
//
// Binary arguments and results are hex by default; set --encoding base64 to
// switch. The secret scalar is only ever read from a file inside the working
// directory, never from flags or the environment.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

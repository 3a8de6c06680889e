// hashgen prints the bcrypt hash of a password, for seeding accounts or
// support work. The password is taken from the first argument or, when
// absent, prompted for without echo.
package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	"github.com/avelichko/authgate/internal/server/password"
)

func main() {
	var plaintext string

	if len(os.Args) > 1 {
		plaintext = os.Args[1]
	} else {
		fmt.Fprint(os.Stderr, "Password: ")
		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read password: %v\n", err)
			os.Exit(1)
		}
		plaintext = string(b)
	}

	h, err := bcrypt.GenerateFromPassword([]byte(plaintext), password.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(h))
}

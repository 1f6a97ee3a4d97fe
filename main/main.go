package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"github.com/synqronlabs/mailcheck"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	logger.Info("email checker", "tlds", "embedded IANA snapshot")

	fmt.Println("Enter an email address per line (Ctrl-D to quit):")

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		addr := sc.Text()
		switch mailcheck.Validate(addr) {
		case mailcheck.Valid:
			fmt.Printf("%-40s valid\n", addr)
		case mailcheck.InvalidFormat:
			fmt.Printf("%-40s invalid format\n", addr)
		case mailcheck.RFCViolation:
			fmt.Printf("%-40s violates RFC 5321/5322\n", addr)
		case mailcheck.InvalidTLD:
			fmt.Printf("%-40s unknown top-level domain\n", addr)
		}
	}
	if err := sc.Err(); err != nil {
		logger.Error("reading stdin", "error", err)
		os.Exit(1)
	}
}
